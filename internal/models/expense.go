package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MaxItemNameLen = 255
	AmountScale    = 2
)

// MaxAmount is the largest value a NUMERIC(10,2) column holds.
var MaxAmount = decimal.RequireFromString("99999999.99")

// Amount text is bounded before parsing. Rounding or comparing a decimal
// rescales it by 10^|exponent|, so exponents are bounded as well.
const (
	maxAmountText = 32

	// with at most maxAmountText digits, anything below this exponent
	// rounds to zero at AmountScale
	minAmountExp = -(maxAmountText + AmountScale + 1)

	// any non-zero coefficient above this exponent exceeds MaxAmount
	maxAmountExp = 10
)

var (
	ErrAmountSyntax   = errors.New("amount is not a number")
	ErrAmountTooLarge = errors.New("amount is too large")
)

type Expense struct {
	ID        int64     `json:"id"`
	ItemName  string    `json:"item_name"`
	Amount    Amount    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExpenseInput is the mutable part of an expense (create and update bodies).
type ExpenseInput struct {
	ItemName string
	Amount   Amount
}

// Amount is a currency value with two decimal places. It encodes to JSON as
// a bare number and decodes from either a number or a numeric string.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount { return Amount{d.Round(AmountScale)} }

func MustAmount(s string) Amount { return NewAmount(decimal.RequireFromString(s)) }

// ParseAmount parses s and rounds it to AmountScale. Values too small to
// survive rounding come back as zero; positive values past maxAmountExp
// return ErrAmountTooLarge. Only the sign of larger non-positive values is
// kept.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxAmountText {
		return Amount{}, ErrAmountSyntax
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrAmountSyntax
	}
	switch exp := d.Exponent(); {
	case exp < minAmountExp:
		return Amount{}, nil
	case exp > maxAmountExp:
		if d.Sign() > 0 {
			return Amount{}, ErrAmountTooLarge
		}
		return Amount{decimal.NewFromInt(int64(d.Sign()))}, nil
	}
	return NewAmount(d), nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(AmountScale)), nil
}

// Equal reports whether a and b are the same value regardless of scale.
func (a Amount) Equal(b Amount) bool { return a.Decimal.Equal(b.Decimal) }

func (a Amount) Add(b Amount) Amount { return Amount{a.Decimal.Add(b.Decimal)} }
