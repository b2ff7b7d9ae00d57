// Command seed fills the configured store with fake expenses for demos.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/baharkarakas/expense-tracker/internal/config"
	"github.com/baharkarakas/expense-tracker/internal/db"
	"github.com/baharkarakas/expense-tracker/internal/logger"
	"github.com/baharkarakas/expense-tracker/internal/repository"
	"github.com/baharkarakas/expense-tracker/internal/repository/postgres"
	"github.com/baharkarakas/expense-tracker/internal/repository/sqlite"
	"github.com/baharkarakas/expense-tracker/internal/services"
	"github.com/baharkarakas/expense-tracker/internal/worker"
)

func main() {
	n := flag.Int("n", 25, "number of expenses to create")
	workers := flag.Int("workers", 4, "concurrent inserts")
	seed := flag.Int64("seed", 0, "faker seed (0 = random)")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if err := run(cfg, log, *n, *workers, *seed); err != nil {
		log.Error("seed failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger, n, workers int, seed int64) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	ctx := context.Background()

	var expenses repository.Expenses
	switch cfg.DBDriver {
	case config.DriverSQLite:
		conn, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer conn.Close()
		expenses = sqlite.NewExpenses(conn)
	case config.DriverPostgres:
		pool, err := db.NewPool(ctx, cfg.PostgresURL())
		if err != nil {
			return err
		}
		defer pool.Close()
		expenses = postgres.NewRepositories(pool).Expenses
	default:
		return fmt.Errorf("seeding needs a persistent store, DB_DRIVER=%s", cfg.DBDriver)
	}
	if cfg.Migrate {
		if err := db.RunMigrations(cfg.DBDriver, cfg.MigrationURL()); err != nil {
			return err
		}
	}

	svc := services.NewExpenseService(expenses)
	faker := gofakeit.New(seed)
	wp := worker.NewPool(workers)
	for i := 0; i < n; i++ {
		// faker is not safe for concurrent use; draw values before submitting
		p := services.ExpenseParams{
			ItemName: faker.ProductName(),
			Amount:   strconv.FormatFloat(faker.Price(0.5, 250), 'f', 2, 64),
		}
		wp.Submit(func() error {
			e, err := svc.Create(ctx, p)
			if err != nil {
				return fmt.Errorf("create %q: %w", p.ItemName, err)
			}
			log.Debug("expense created", "id", e.ID, "item_name", e.ItemName, "amount", e.Amount.StringFixed(2))
			return nil
		})
	}
	if err := wp.Stop(); err != nil {
		return err
	}
	log.Info("seed complete", "count", n, "driver", cfg.DBDriver)
	return nil
}
