package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/baharkarakas/expense-tracker/internal/models"
)

func TestComputeStats(t *testing.T) {
	st := ComputeStats(nil)
	if st.Count != 0 || !st.Total.IsZero() || !st.Average.IsZero() {
		t.Fatalf("empty stats = %+v", st)
	}
	if FormatMoney(st.Total) != "$0.00" || FormatMoney(st.Average) != "$0.00" {
		t.Fatalf("empty stats should render as $0.00")
	}

	list := []models.Expense{
		{Amount: models.MustAmount("85.50")},
		{Amount: models.MustAmount("45.00")},
		{Amount: models.MustAmount("4.75")},
	}
	st = ComputeStats(list)
	if st.Count != 3 {
		t.Fatalf("count = %d", st.Count)
	}
	if FormatMoney(st.Total) != "$135.25" {
		t.Fatalf("total = %s", FormatMoney(st.Total))
	}
	// 135.25 / 3 = 45.0833...
	if FormatMoney(st.Average) != "$45.08" {
		t.Fatalf("average = %s", FormatMoney(st.Average))
	}
}

func TestParseInput(t *testing.T) {
	got, err := ParseInput("  Coffee ", " 4.75 ")
	if err != nil || got.ItemName != "Coffee" || !got.Amount.Equal(models.MustAmount("4.75")) {
		t.Fatalf("ParseInput = %+v, %v", got, err)
	}

	cases := []struct {
		name, amount string
		want         error
	}{
		{"", "1", ErrNameRequired},
		{"  ", "1", ErrNameRequired},
		{"Coffee", "", ErrAmountRequired},
		{"Coffee", "abc", ErrAmountInvalid},
		{"Coffee", "0", ErrAmountInvalid},
		{"Coffee", "-2", ErrAmountInvalid},
		{"Coffee", "0.001", ErrAmountInvalid},
		{"Coffee", "1e-200000000", ErrAmountInvalid},
		{"Coffee", "1e999999999", ErrAmountTooLarge},
		{"Coffee", "100000000", ErrAmountTooLarge},
	}
	for _, tc := range cases {
		if _, err := ParseInput(tc.name, tc.amount); !errors.Is(err, tc.want) {
			t.Errorf("ParseInput(%q, %q) = %v, want %v", tc.name, tc.amount, err, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 1, 13, 12, 0, 0, 0, time.Local)
	if got := FormatDate(ts); got != "Jan 13, 2024" {
		t.Fatalf("FormatDate = %q", got)
	}
}
