package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"portfoliotracker/types"
	"strconv"
	"time"
)

// WriteSeriesCSVFile writes the snapshot series to a CSV file at the given path.
func WriteSeriesCSVFile(path string, snap *types.PortfolioSnapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create series file: %w", err)
	}
	defer f.Close()

	return WriteSeriesCSV(f, snap)
}

// WriteSeriesCSV writes one row per axis date: the portfolio series followed by close,
// dca, shares and profit of every instrument. Undefined dca is an empty cell.
func WriteSeriesCSV(w io.Writer, snap *types.PortfolioSnapshot) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"date",
		"total_profit",
		"invested",
		"yield_pct",
		"value",
	}
	for _, inst := range snap.Instruments {
		header = append(header,
			inst.Ticker+"_close",
			inst.Ticker+"_dca",
			inst.Ticker+"_shares",
			inst.Ticker+"_profit",
		)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, d := range snap.Dates {
		record := []string{
			d.Format(time.DateOnly),
			formatFloat(snap.TotalProfit[i]),
			formatFloat(snap.Invested[i]),
			formatFloat(snap.Yield[i] * 100),
			formatFloat(snap.Value[i]),
		}
		for _, inst := range snap.Instruments {
			record = append(record,
				inst.Prices.Candles[i].Close.String(),
				formatFloat(inst.DCA[i]),
				formatFloat(inst.Shares[i]),
				formatFloat(inst.Profit[i]),
			)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", d.Format(time.DateOnly), err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
