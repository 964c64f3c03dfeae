package types

import (
	"fmt"
	"strings"
)

// Direction is the side of a ledger trade as it was recorded, e.g. " Buy ".
type Direction string

const (
	DirectionBuy  Direction = "Buy"
	DirectionSell Direction = "Sell"
)

// IsBuy matches the direction against "buy" ignoring case and surrounding whitespace.
func (d Direction) IsBuy() bool {
	return strings.EqualFold(strings.TrimSpace(string(d)), string(DirectionBuy))
}

// IsSell matches the direction against "sell" ignoring case and surrounding whitespace.
func (d Direction) IsSell() bool {
	return strings.EqualFold(strings.TrimSpace(string(d)), string(DirectionSell))
}

// ParseDirection normalizes a raw ledger direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	switch {
	case d.IsBuy():
		return DirectionBuy, nil
	case d.IsSell():
		return DirectionSell, nil
	}
	return "", fmt.Errorf("unknown trade direction %q", s)
}
