package main

import (
	"bytes"
	"portfoliotracker/types"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTicker(t *testing.T) {
	snap := testSnapshot()
	inst := snap.Instruments[0]
	trades := []types.Trade{
		types.NewTrade(snap.Dates[0], "AAA", decimal.NewFromInt(100), decimal.NewFromInt(10), types.DirectionBuy),
	}

	var buf bytes.Buffer
	require.NoError(t, printTicker(&buf, inst, trades, types.TimeframeAll, "USD"))

	out := buf.String()
	assert.Contains(t, out, "AAA (equity)")
	assert.Contains(t, out, "-- Extremes (All) --")
	assert.Contains(t, out, "Max Profit:            100.00 on 2024-01-02")
	assert.Contains(t, out, "High:                  110.00 on 2024-01-02")
	assert.Contains(t, out, "Low:                   100.00 on 2024-01-01")
	assert.Contains(t, out, "P&L 100.00")
	assert.Contains(t, out, "Total P&L:             100.00")
}

func TestPrintTicker_NoTrades(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printTicker(&buf, testSnapshot().Instruments[0], nil, types.OneMonth, "USD"))
	assert.NotContains(t, buf.String(), "-- Trades --")
}
