package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/baharkarakas/expense-tracker/internal/models"
	repo "github.com/baharkarakas/expense-tracker/internal/repository"
	"github.com/baharkarakas/expense-tracker/internal/repository/memory"
)

func newService() *ExpenseService {
	t0 := time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC)
	return NewExpenseService(memory.NewWithClock(func() time.Time {
		t0 = t0.Add(time.Minute)
		return t0
	}))
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name    string
		in      ExpenseParams
		want    models.ExpenseInput
		wantMsg string
	}{
		{name: "ok", in: ExpenseParams{"Coffee", "4.75"}, want: models.ExpenseInput{ItemName: "Coffee", Amount: models.MustAmount("4.75")}},
		{name: "trims name", in: ExpenseParams{"  Gas ", "45"}, want: models.ExpenseInput{ItemName: "Gas", Amount: models.MustAmount("45")}},
		{name: "rounds half up", in: ExpenseParams{"Tea", "1.005"}, want: models.ExpenseInput{ItemName: "Tea", Amount: models.MustAmount("1.01")}},
		{name: "max amount", in: ExpenseParams{"Car", "99999999.99"}, want: models.ExpenseInput{ItemName: "Car", Amount: models.MustAmount("99999999.99")}},
		{name: "name at limit", in: ExpenseParams{strings.Repeat("é", 255), "1"}, want: models.ExpenseInput{ItemName: strings.Repeat("é", 255), Amount: models.MustAmount("1")}},
		{name: "missing name", in: ExpenseParams{"", "1"}, wantMsg: MsgRequired},
		{name: "blank name", in: ExpenseParams{" \t", "1"}, wantMsg: MsgRequired},
		{name: "missing amount", in: ExpenseParams{"Coffee", ""}, wantMsg: MsgRequired},
		{name: "zero", in: ExpenseParams{"Coffee", "0"}, wantMsg: MsgAmountPositive},
		{name: "negative", in: ExpenseParams{"Coffee", "-5"}, wantMsg: MsgAmountPositive},
		{name: "rounds to zero", in: ExpenseParams{"Coffee", "0.004"}, wantMsg: MsgAmountPositive},
		{name: "not a number", in: ExpenseParams{"Coffee", "ten"}, wantMsg: MsgAmountPositive},
		{name: "over max", in: ExpenseParams{"Car", "100000000"}, wantMsg: MsgAmountTooLarge},
		{name: "tiny exponent", in: ExpenseParams{"Car", "1e-200000000"}, wantMsg: MsgAmountPositive},
		{name: "huge exponent", in: ExpenseParams{"Car", "1e999999999"}, wantMsg: MsgAmountTooLarge},
		{name: "negative huge exponent", in: ExpenseParams{"Car", "-1e999999999"}, wantMsg: MsgAmountPositive},
		{name: "scientific within range", in: ExpenseParams{"Car", "4.75e1"}, want: models.ExpenseInput{ItemName: "Car", Amount: models.MustAmount("47.5")}},
		{name: "name too long", in: ExpenseParams{strings.Repeat("x", 256), "1"}, wantMsg: MsgNameTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Normalize()
			if tc.wantMsg != "" {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if ve.Msg != tc.wantMsg {
					t.Fatalf("msg = %q, want %q", ve.Msg, tc.wantMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ItemName != tc.want.ItemName || !got.Amount.Equal(tc.want.Amount) {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestCreateListDelete(t *testing.T) {
	ctx := context.Background()
	s := newService()

	a, err := s.Create(ctx, ExpenseParams{"Groceries", "85.50"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := s.Create(ctx, ExpenseParams{"Coffee", "4.75"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("ids must be unique, both %d", a.ID)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != b.ID || list[1].ID != a.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}

	if err := s.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err = s.Delete(ctx, a.ID)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != a.ID {
		t.Fatalf("second delete: expected NotFoundError, got %v", err)
	}
	if !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("NotFoundError should unwrap to repository.ErrNotFound")
	}

	list, _ = s.List(ctx)
	if len(list) != 1 || list[0].ID != b.ID {
		t.Fatalf("unexpected list after delete: %+v", list)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := newService()
	orig, err := s.Create(ctx, ExpenseParams{"Coffee", "4.75"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Update(ctx, orig.ID, ExpenseParams{"Latte", "5.5"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ItemName != "Latte" || !got.Amount.Equal(models.MustAmount("5.50")) {
		t.Fatalf("unexpected update result %+v", got)
	}
	if !got.CreatedAt.Equal(orig.CreatedAt) || !got.UpdatedAt.After(orig.UpdatedAt) {
		t.Fatalf("timestamps: created %v -> %v, updated %v -> %v", orig.CreatedAt, got.CreatedAt, orig.UpdatedAt, got.UpdatedAt)
	}

	_, err = s.Update(ctx, 999, ExpenseParams{"Latte", "5.5"})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	// validation wins over lookup
	_, err = s.Update(ctx, 999, ExpenseParams{"Latte", "0"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	_, err = s.Update(ctx, orig.ID, ExpenseParams{"", "1"})
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	list, _ := s.List(ctx)
	if list[0].ItemName != "Latte" {
		t.Fatalf("rejected update must not change the row, got %+v", list[0])
	}
}

type failingRepo struct{ repo.Expenses }

var errStore = errors.New("disk full")

func (failingRepo) List(context.Context) ([]models.Expense, error) { return nil, errStore }
func (failingRepo) Update(context.Context, int64, models.ExpenseInput) (models.Expense, error) {
	return models.Expense{}, errStore
}

func TestStoreErrorsPassThrough(t *testing.T) {
	s := NewExpenseService(failingRepo{})
	if _, err := s.List(context.Background()); !errors.Is(err, errStore) {
		t.Fatalf("list: expected wrapped store error, got %v", err)
	}
	_, err := s.Update(context.Background(), 1, ExpenseParams{"x", "1"})
	if !errors.Is(err, errStore) {
		t.Fatalf("update: expected store error, got %v", err)
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		t.Fatalf("store failure must not look like not found")
	}
}
