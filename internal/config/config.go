// Package config loads the tracker configuration from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"portfoliotracker/internal/engine"
	"portfoliotracker/internal/logger"
	"portfoliotracker/types"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const dateLayout = time.DateOnly

type Instrument struct {
	Ticker string `yaml:"ticker"`
	Symbol string `yaml:"symbol"`
	Role   string `yaml:"role"`
}

type Config struct {
	DatabaseURL        string           `yaml:"database_url"`
	StartDate          string           `yaml:"start_date"`
	EndDate            string           `yaml:"end_date"`
	Currency           string           `yaml:"currency"`
	IncludeHedgeProfit bool             `yaml:"include_hedge_profit"`
	UnmatchedTrades    string           `yaml:"unmatched_trades"`
	Instruments        []Instrument     `yaml:"instruments"`
	ListenAddr         string           `yaml:"listen_addr"`
	MetricsNamespace   string           `yaml:"metrics_namespace"`
	Log                logger.LogConfig `yaml:"log"`
}

// Default is the tracked portfolio used when no file is given.
func Default() *Config {
	return &Config{
		StartDate:       "2024-06-01",
		Currency:        "EUR",
		UnmatchedTrades: string(engine.UnmatchedSkip),
		Instruments: []Instrument{
			{Ticker: "VUAA.EU", Symbol: "VUAA.L", Role: string(types.RoleEquity)},
			{Ticker: "EQAC.EU", Symbol: "EQAC.SW", Role: string(types.RoleEquity)},
			{Ticker: "USD/EUR", Symbol: "EUR=X", Role: string(types.RoleHedge)},
		},
		ListenAddr:       ":8080",
		MetricsNamespace: "portfoliotracker",
		Log:              logger.LogConfig{Level: "info", Format: "json"},
	}
}

// LoadConfig reads path on top of the defaults. An empty path uses the defaults only.
// A .env file in the working directory is loaded first when present.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	c.Log = c.Log.FromEnv()
}

func (c *Config) Validate() error {
	if len(c.Instruments) == 0 {
		return errors.New("at least one instrument is required")
	}
	seen := make(map[string]bool, len(c.Instruments))
	hedges := 0
	for i, inst := range c.Instruments {
		if strings.TrimSpace(inst.Ticker) == "" {
			return fmt.Errorf("instruments[%d].ticker is required", i)
		}
		if seen[inst.Ticker] {
			return fmt.Errorf("instrument %s is listed twice", inst.Ticker)
		}
		seen[inst.Ticker] = true
		role, ok := types.ConvertRole[strings.ToLower(inst.Role)]
		if !ok {
			return fmt.Errorf("instrument %s: role must be 'equity' or 'hedge', got '%s'", inst.Ticker, inst.Role)
		}
		if role == types.RoleHedge {
			hedges++
		}
	}
	if hedges > 1 {
		return fmt.Errorf("at most one hedge instrument is supported, got %d", hedges)
	}

	start, end, err := c.dates()
	if err != nil {
		return err
	}
	if !end.IsZero() && end.Before(start) {
		return fmt.Errorf("end_date %s is before start_date %s", c.EndDate, c.StartDate)
	}
	if _, ok := engine.ConvertUnmatchedTradePolicy[c.UnmatchedTrades]; !ok {
		return fmt.Errorf("unmatched_trades must be 'skip' or 'roll_forward', got '%s'", c.UnmatchedTrades)
	}
	return nil
}

func (c *Config) dates() (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, c.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date: %w", err)
	}
	var end time.Time
	if c.EndDate != "" {
		end, err = time.Parse(dateLayout, c.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end_date: %w", err)
		}
	}
	return start, end, nil
}

// Portfolio converts the configuration into the engine's portfolio settings.
// An empty end date means up to today.
func (c *Config) Portfolio() (*engine.PortfolioConfig, error) {
	start, end, err := c.dates()
	if err != nil {
		return nil, err
	}
	instruments := make([]*engine.InstrumentConfig, 0, len(c.Instruments))
	for _, inst := range c.Instruments {
		instruments = append(instruments, engine.NewInstrumentConfig(inst.Ticker, inst.Symbol, types.ConvertRole[strings.ToLower(inst.Role)]))
	}
	cfg := engine.NewPortfolioConfig(instruments, start, end, c.IncludeHedgeProfit, engine.ConvertUnmatchedTradePolicy[c.UnmatchedTrades])
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
