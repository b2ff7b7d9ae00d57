// Package repotest holds the behaviour every repository.Expenses backend
// must share. Backend packages call Run from their own tests.
package repotest

import (
	"context"
	"errors"
	"testing"

	"github.com/baharkarakas/expense-tracker/internal/models"
	"github.com/baharkarakas/expense-tracker/internal/repository"
)

// Run exercises r, which must start empty.
func Run(t *testing.T, r repository.Expenses) {
	t.Helper()
	ctx := context.Background()

	t.Run("empty list", func(t *testing.T) {
		list, err := r.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if list == nil || len(list) != 0 {
			t.Fatalf("expected empty non-nil list, got %#v", list)
		}
	})

	var coffee models.Expense
	t.Run("create and get", func(t *testing.T) {
		var err error
		coffee, err = r.Create(ctx, models.ExpenseInput{ItemName: "Coffee", Amount: models.MustAmount("4.75")})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if coffee.ID <= 0 || coffee.ItemName != "Coffee" || !coffee.Amount.Equal(models.MustAmount("4.75")) {
			t.Fatalf("unexpected row %+v", coffee)
		}
		if coffee.CreatedAt.IsZero() || !coffee.UpdatedAt.Equal(coffee.CreatedAt) {
			t.Fatalf("timestamps: created=%v updated=%v", coffee.CreatedAt, coffee.UpdatedAt)
		}
		got, err := r.GetByID(ctx, coffee.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != coffee.ID || got.ItemName != coffee.ItemName || !got.Amount.Equal(coffee.Amount) || !got.CreatedAt.Equal(coffee.CreatedAt) {
			t.Fatalf("get = %+v, want %+v", got, coffee)
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		gas, err := r.Create(ctx, models.ExpenseInput{ItemName: "Gas", Amount: models.MustAmount("45.00")})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		list, err := r.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 2 || list[0].ID != gas.ID || list[1].ID != coffee.ID {
			t.Fatalf("unexpected order: %+v", list)
		}
		if err := r.Delete(ctx, gas.ID); err != nil {
			t.Fatalf("cleanup: %v", err)
		}
	})

	t.Run("update", func(t *testing.T) {
		got, err := r.Update(ctx, coffee.ID, models.ExpenseInput{ItemName: "Latte", Amount: models.MustAmount("5.25")})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.ID != coffee.ID || got.ItemName != "Latte" || !got.Amount.Equal(models.MustAmount("5.25")) {
			t.Fatalf("unexpected row %+v", got)
		}
		if !got.CreatedAt.Equal(coffee.CreatedAt) || got.UpdatedAt.Before(coffee.UpdatedAt) {
			t.Fatalf("timestamps: created %v -> %v, updated %v -> %v",
				coffee.CreatedAt, got.CreatedAt, coffee.UpdatedAt, got.UpdatedAt)
		}
	})

	t.Run("missing ids", func(t *testing.T) {
		const missing = 987654
		if _, err := r.GetByID(ctx, missing); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("get: expected ErrNotFound, got %v", err)
		}
		if _, err := r.Update(ctx, missing, models.ExpenseInput{ItemName: "x", Amount: models.MustAmount("1")}); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("update: expected ErrNotFound, got %v", err)
		}
		if err := r.Delete(ctx, missing); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("delete: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := r.Delete(ctx, coffee.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := r.Delete(ctx, coffee.ID); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("second delete: expected ErrNotFound, got %v", err)
		}
		list, err := r.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 0 {
			t.Fatalf("expected empty list, got %+v", list)
		}
	})

	t.Run("ping", func(t *testing.T) {
		if err := r.Ping(ctx); err != nil {
			t.Fatalf("ping: %v", err)
		}
	})
}
