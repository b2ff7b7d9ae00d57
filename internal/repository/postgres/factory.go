package postgres

import (
	repo "github.com/baharkarakas/expense-tracker/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Expenses repo.Expenses
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Expenses: &expensesRepo{pool},
	}
}
