package engine

import (
	"fmt"
	"io"
	"portfoliotracker/types"
	"time"
)

// UnmatchedTradePolicy decides what happens to a buy whose day is not on the price axis.
type UnmatchedTradePolicy string

const (
	// UnmatchedSkip never absorbs the trade into the cost basis.
	UnmatchedSkip UnmatchedTradePolicy = "skip"
	// UnmatchedRollForward absorbs the trade at the first axis date after it.
	UnmatchedRollForward UnmatchedTradePolicy = "roll_forward"
)

var ConvertUnmatchedTradePolicy = map[string]UnmatchedTradePolicy{
	"skip":         UnmatchedSkip,
	"roll_forward": UnmatchedRollForward,
}

type InstrumentConfig struct {
	ticker string
	symbol string
	role   types.InstrumentRole
}

// NewInstrumentConfig tracks the ledger ticker priced by the market-data symbol.
// An empty symbol means the ticker is used for market data too.
func NewInstrumentConfig(ticker, symbol string, role types.InstrumentRole) *InstrumentConfig {
	if symbol == "" {
		symbol = ticker
	}
	return &InstrumentConfig{
		ticker: ticker,
		symbol: symbol,
		role:   role,
	}
}

func (c *InstrumentConfig) Ticker() string             { return c.ticker }
func (c *InstrumentConfig) Symbol() string             { return c.symbol }
func (c *InstrumentConfig) Role() types.InstrumentRole { return c.role }

type PortfolioConfig struct {
	instruments        []*InstrumentConfig
	start              time.Time
	end                time.Time
	includeHedgeProfit bool
	unmatchedPolicy    UnmatchedTradePolicy
}

func NewPortfolioConfig(instruments []*InstrumentConfig, start, end time.Time, includeHedgeProfit bool, policy UnmatchedTradePolicy) *PortfolioConfig {
	if policy == "" {
		policy = UnmatchedSkip
	}
	return &PortfolioConfig{
		instruments:        instruments,
		start:              start,
		end:                end,
		includeHedgeProfit: includeHedgeProfit,
		unmatchedPolicy:    policy,
	}
}

func (c *PortfolioConfig) Instruments() []*InstrumentConfig { return c.instruments }
func (c *PortfolioConfig) IncludeHedgeProfit() bool        { return c.includeHedgeProfit }

// Tickers returns every tracked ledger ticker, in configuration order.
func (c *PortfolioConfig) Tickers() []string {
	out := make([]string, 0, len(c.instruments))
	for _, inst := range c.instruments {
		out = append(out, inst.ticker)
	}
	return out
}

// EquityTickers returns the tickers that count towards invested capital.
func (c *PortfolioConfig) EquityTickers() []string {
	var out []string
	for _, inst := range c.instruments {
		if inst.role == types.RoleEquity {
			out = append(out, inst.ticker)
		}
	}
	return out
}

// ProfitTickers returns the tickers summed into portfolio profit.
func (c *PortfolioConfig) ProfitTickers(includeHedge bool) []string {
	var out []string
	for _, inst := range c.instruments {
		if inst.role == types.RoleHedge && !includeHedge {
			continue
		}
		out = append(out, inst.ticker)
	}
	return out
}

func (c *PortfolioConfig) Validate() error {
	if len(c.instruments) == 0 {
		return fmt.Errorf("%w: no instruments tracked", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.instruments))
	hedges := 0
	for _, inst := range c.instruments {
		if inst.ticker == "" {
			return fmt.Errorf("%w: instrument without ticker", ErrInvalidConfig)
		}
		if seen[inst.ticker] {
			return fmt.Errorf("%w: ticker %s tracked twice", ErrInvalidConfig, inst.ticker)
		}
		seen[inst.ticker] = true
		switch inst.role {
		case types.RoleEquity:
		case types.RoleHedge:
			hedges++
		default:
			return fmt.Errorf("%w: ticker %s has unknown role %q", ErrInvalidConfig, inst.ticker, inst.role)
		}
	}
	if hedges > 1 {
		return fmt.Errorf("%w: only one hedge instrument is supported, got %d", ErrInvalidConfig, hedges)
	}
	if !c.end.IsZero() && c.end.Before(c.start) {
		return fmt.Errorf("%w: end %s before start %s", ErrInvalidConfig, c.end.Format(time.DateOnly), c.start.Format(time.DateOnly))
	}
	if _, ok := ConvertUnmatchedTradePolicy[string(c.unmatchedPolicy)]; !ok {
		return fmt.Errorf("%w: unknown unmatched trade policy %q", ErrInvalidConfig, c.unmatchedPolicy)
	}
	return nil
}

type ReportingConfig struct {
	currency string
	progress io.Writer
}

// NewReportingConfig sets the display currency. A nil progress writer disables the progress bar.
func NewReportingConfig(currency string, progress io.Writer) *ReportingConfig {
	if currency == "" {
		currency = "EUR"
	}
	return &ReportingConfig{
		currency: currency,
		progress: progress,
	}
}

func (c *ReportingConfig) Currency() string { return c.currency }
