package ui

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/expense-tracker/internal/client"
	"github.com/baharkarakas/expense-tracker/internal/models"
)

// Stats are derived on every render and never stored.
type Stats struct {
	Total   models.Amount
	Count   int
	Average models.Amount
}

func ComputeStats(list []models.Expense) Stats {
	var st Stats
	for _, e := range list {
		st.Total = st.Total.Add(e.Amount)
	}
	st.Count = len(list)
	if st.Count > 0 {
		st.Average = models.Amount{Decimal: st.Total.DivRound(decimal.NewFromInt(int64(st.Count)), models.AmountScale)}
	}
	return st
}

var (
	ErrNameRequired   = errors.New("item name is required")
	ErrAmountRequired = errors.New("amount is required")
	ErrAmountInvalid  = errors.New("amount must be a positive number")
	ErrAmountTooLarge = errors.New("amount is too large")
)

// ParseInput applies the form checks before anything is sent: trimmed
// name and amount present, amount a number above zero and within the
// column maximum.
func ParseInput(name, amount string) (client.ExpenseRequest, error) {
	name = strings.TrimSpace(name)
	amount = strings.TrimSpace(amount)
	switch {
	case name == "":
		return client.ExpenseRequest{}, ErrNameRequired
	case amount == "":
		return client.ExpenseRequest{}, ErrAmountRequired
	}
	a, err := models.ParseAmount(amount)
	switch {
	case errors.Is(err, models.ErrAmountTooLarge):
		return client.ExpenseRequest{}, ErrAmountTooLarge
	case err != nil, !a.IsPositive():
		return client.ExpenseRequest{}, ErrAmountInvalid
	case a.GreaterThan(models.MaxAmount):
		return client.ExpenseRequest{}, ErrAmountTooLarge
	}
	return client.ExpenseRequest{ItemName: name, Amount: a}, nil
}

func FormatMoney(a models.Amount) string { return "$" + a.StringFixed(models.AmountScale) }

func FormatDate(t time.Time) string { return t.Local().Format("Jan 2, 2006") }
