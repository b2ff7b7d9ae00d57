package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/baharkarakas/expense-tracker/internal/api"
	"github.com/baharkarakas/expense-tracker/internal/config"
	"github.com/baharkarakas/expense-tracker/internal/db"
	"github.com/baharkarakas/expense-tracker/internal/logger"
	"github.com/baharkarakas/expense-tracker/internal/repository"
	"github.com/baharkarakas/expense-tracker/internal/repository/memory"
	"github.com/baharkarakas/expense-tracker/internal/repository/postgres"
	"github.com/baharkarakas/expense-tracker/internal/repository/sqlite"
	"github.com/baharkarakas/expense-tracker/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	expenses, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := services.NewExpenseService(expenses)
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.NewRouter(cfg, log, svc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", "port", cfg.HTTPPort, "driver", cfg.DBDriver, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openStore builds the repository for cfg.DBDriver, applying migrations
// once the connection is up. The returned func releases the connection.
func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (repository.Expenses, func(), error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		conn, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite connect: %w", err)
		}
		if err := migrate(cfg, log); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return sqlite.NewExpenses(conn), func() { _ = conn.Close() }, nil
	case config.DriverMemory:
		log.Warn("using in-memory store; data is lost on restart")
		return memory.New(), func() {}, nil
	default:
		pool, err := db.NewPool(ctx, cfg.PostgresURL())
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		if err := migrate(cfg, log); err != nil {
			pool.Close()
			return nil, nil, err
		}
		repos := postgres.NewRepositories(pool)
		return repos.Expenses, pool.Close, nil
	}
}

func migrate(cfg config.Config, log *slog.Logger) error {
	if !cfg.Migrate {
		return nil
	}
	if err := db.RunMigrations(cfg.DBDriver, cfg.MigrationURL()); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	log.Info("migrations applied", "driver", cfg.DBDriver)
	return nil
}
