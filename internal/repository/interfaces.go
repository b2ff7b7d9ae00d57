package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/expense-tracker/internal/models"
)

// ErrNotFound is returned when no expense row matches the given id.
var ErrNotFound = errors.New("expense not found")

// Expenses is the storage contract shared by the postgres, sqlite and memory
// backends. List returns rows newest first (created_at desc, id desc).
type Expenses interface {
	List(ctx context.Context) ([]models.Expense, error)
	GetByID(ctx context.Context, id int64) (models.Expense, error)
	Create(ctx context.Context, in models.ExpenseInput) (models.Expense, error)
	Update(ctx context.Context, id int64, in models.ExpenseInput) (models.Expense, error)
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}
