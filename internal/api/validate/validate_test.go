package validate

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCollect(t *testing.T) {
	errs := Collect(
		Required("item_name", "  "),
		Required("amount", "4.75"),
		MaxLen("note", strings.Repeat("a", 4), 3),
	)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if errs[0].Field != "item_name" || errs[1].Field != "note" {
		t.Fatalf("unexpected fields: %v", errs)
	}
	if got := errs.Error(); got != "item_name: required; note: must be at most 3 characters" {
		t.Fatalf("Error() = %q", got)
	}
	if Collect(nil, nil) != nil {
		t.Fatalf("no failures should collect to nil")
	}
}

func TestMaxLenCountsRunes(t *testing.T) {
	if MaxLen("n", "ççç", 3) != nil {
		t.Fatalf("three runes should fit a limit of three")
	}
}

func TestDecimalChecks(t *testing.T) {
	d := decimal.RequireFromString("12.50")
	if Positive("amount", decimal.Zero) == nil {
		t.Fatalf("zero is not positive")
	}
	if Positive("amount", d) != nil {
		t.Fatalf("12.50 is positive")
	}
	max := decimal.RequireFromString("99.99")
	if MaxDecimal("amount", max, max) != nil {
		t.Fatalf("max itself is allowed")
	}
	if MaxDecimal("amount", decimal.RequireFromString("100"), max) == nil {
		t.Fatalf("100 exceeds 99.99")
	}
}
