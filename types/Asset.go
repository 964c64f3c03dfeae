package types

import (
	"time"
)

type AssetType string

const (
	AssetTypeStock AssetType = "STOCK"
	AssetTypeEtf   AssetType = "ETF"
	AssetTypeForex AssetType = "FOREX"
)

// InstrumentRole decides how an instrument takes part in portfolio aggregation.
// Equity positions count towards invested capital, the hedge only contributes profit.
type InstrumentRole string

const (
	RoleEquity InstrumentRole = "equity"
	RoleHedge  InstrumentRole = "hedge"
)

var ConvertRole = map[string]InstrumentRole{
	"equity": RoleEquity,
	"hedge":  RoleHedge,
}

type Asset struct {
	Id         int       `json:"id"`
	Ticker     string    `json:"ticker"`
	Name       string    `json:"name"`
	Type       AssetType `json:"type"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}
