// Package sqlite stores expenses in a local SQLite file via modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/baharkarakas/expense-tracker/internal/models"
	"github.com/baharkarakas/expense-tracker/internal/repository"
)

// timeLayout is fixed width so that text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type expensesRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewExpenses(db *sql.DB) repository.Expenses {
	return &expensesRepo{db: db, now: time.Now}
}

const expenseColumns = `id, item_name, amount, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (models.Expense, error) {
	var e models.Expense
	var created, updated string
	err := row.Scan(&e.ID, &e.ItemName, &e.Amount, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Expense{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Expense{}, err
	}
	if e.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return models.Expense{}, fmt.Errorf("parse created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return models.Expense{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return e, nil
}

func (r *expensesRepo) timestamp() string { return r.now().UTC().Format(timeLayout) }

func (r *expensesRepo) List(ctx context.Context) ([]models.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses ORDER BY created_at DESC, id DESC`)
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
	return scanExpense(r.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id))
}

func (r *expensesRepo) Create(ctx context.Context, in models.ExpenseInput) (models.Expense, error) {
	ts := r.timestamp()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (item_name, amount, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		in.ItemName, in.Amount.StringFixed(models.AmountScale), ts, ts)
	if err != nil {
		return models.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Expense{}, fmt.Errorf("last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *expensesRepo) Update(ctx context.Context, id int64, in models.ExpenseInput) (models.Expense, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET item_name = ?, amount = ?, updated_at = ? WHERE id = ?`,
		in.ItemName, in.Amount.StringFixed(models.AmountScale), r.timestamp(), id)
	if err != nil {
		return models.Expense{}, fmt.Errorf("update expense %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return models.Expense{}, fmt.Errorf("update expense %d: %w", id, err)
	} else if n == 0 {
		return models.Expense{}, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *expensesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *expensesRepo) Ping(ctx context.Context) error { return r.db.PingContext(ctx) }
