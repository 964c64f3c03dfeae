package types

import "time"

// Timeframe selects a trailing window of a series, measured back from its last date.
type Timeframe string

const (
	TimeframeAll Timeframe = "All"
	OneMonth     Timeframe = "1M"
	ThreeMonths  Timeframe = "3M"
	SixMonths    Timeframe = "6M"
	OneYear      Timeframe = "1Y"
)

var TimeframeToDuration = map[Timeframe]time.Duration{
	OneMonth:    time.Hour * 24 * 30,
	ThreeMonths: time.Hour * 24 * 90,
	SixMonths:   time.Hour * 24 * 180,
	OneYear:     time.Hour * 24 * 365,
}

var ConvertTimeframe = map[string]Timeframe{
	"All": TimeframeAll,
	"1M":  OneMonth,
	"3M":  ThreeMonths,
	"6M":  SixMonths,
	"1Y":  OneYear,
}
