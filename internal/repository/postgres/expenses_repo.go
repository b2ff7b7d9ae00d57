package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/expense-tracker/internal/models"
	"github.com/baharkarakas/expense-tracker/internal/repository"
)

type expensesRepo struct{ pool *pgxpool.Pool }

const expenseColumns = `id, item_name, amount, created_at, updated_at`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var e models.Expense
	err := row.Scan(&e.ID, &e.ItemName, &e.Amount, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Expense{}, repository.ErrNotFound
	}
	return e, err
}

func (r *expensesRepo) List(ctx context.Context) ([]models.Expense, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+expenseColumns+`
		   FROM expenses
		  ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	out := make([]models.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *expensesRepo) GetByID(ctx context.Context, id int64) (models.Expense, error) {
	return scanExpense(r.pool.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id=$1`, id))
}

func (r *expensesRepo) Create(ctx context.Context, in models.ExpenseInput) (models.Expense, error) {
	e, err := scanExpense(r.pool.QueryRow(ctx,
		`INSERT INTO expenses (item_name, amount)
		 VALUES ($1, $2)
		 RETURNING `+expenseColumns,
		in.ItemName, in.Amount.StringFixed(models.AmountScale),
	))
	if err != nil {
		return models.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	return e, nil
}

func (r *expensesRepo) Update(ctx context.Context, id int64, in models.ExpenseInput) (models.Expense, error) {
	e, err := scanExpense(r.pool.QueryRow(ctx,
		`UPDATE expenses
		    SET item_name = $2,
		        amount = $3,
		        updated_at = now()
		  WHERE id = $1
		  RETURNING `+expenseColumns,
		id, in.ItemName, in.Amount.StringFixed(models.AmountScale),
	))
	if err != nil {
		return models.Expense{}, fmt.Errorf("update expense %d: %w", id, err)
	}
	return e, nil
}

func (r *expensesRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *expensesRepo) Ping(ctx context.Context) error { return r.pool.Ping(ctx) }
