// Package ui holds the frontend state: a local mirror of the server's
// expense list plus the values derived from it for rendering.
package ui

import (
	"context"
	"sync"

	"github.com/baharkarakas/expense-tracker/internal/client"
	"github.com/baharkarakas/expense-tracker/internal/models"
)

// API is the subset of client.Client the store needs.
type API interface {
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	CreateExpense(ctx context.Context, req client.ExpenseRequest) (models.Expense, error)
	UpdateExpense(ctx context.Context, id int64, req client.ExpenseRequest) (models.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
}

var _ API = (*client.Client)(nil)

// Store caches the server list. Mutations wait for the API and touch the
// cache only after the server confirmed them, so the cache never holds a
// row the server does not have.
type Store struct {
	api API

	mu       sync.RWMutex
	expenses []models.Expense
}

func NewStore(api API) *Store { return &Store{api: api} }

// Expenses returns a copy of the cached list, newest first.
func (s *Store) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Expense(nil), s.expenses...)
}

func (s *Store) Stats() Stats { return ComputeStats(s.Expenses()) }

// Refresh replaces the cache with the server list.
func (s *Store) Refresh(ctx context.Context) error {
	list, err := s.api.ListExpenses(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.expenses = list
	s.mu.Unlock()
	return nil
}

// Add creates the expense and prepends the stored record.
func (s *Store) Add(ctx context.Context, req client.ExpenseRequest) (models.Expense, error) {
	e, err := s.api.CreateExpense(ctx, req)
	if err != nil {
		return models.Expense{}, err
	}
	s.mu.Lock()
	s.expenses = append([]models.Expense{e}, s.expenses...)
	s.mu.Unlock()
	return e, nil
}

// Edit updates the expense and swaps in the server's copy.
func (s *Store) Edit(ctx context.Context, id int64, req client.ExpenseRequest) (models.Expense, error) {
	e, err := s.api.UpdateExpense(ctx, id, req)
	if err != nil {
		if client.IsNotFound(err) {
			s.drop(id)
		}
		return models.Expense{}, err
	}
	s.mu.Lock()
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses[i] = e
			break
		}
	}
	s.mu.Unlock()
	return e, nil
}

// Remove deletes the expense. A 404 still drops the cached row, since the
// server no longer has it, and the error is returned to the caller.
func (s *Store) Remove(ctx context.Context, id int64) error {
	err := s.api.DeleteExpense(ctx, id)
	if err != nil && !client.IsNotFound(err) {
		return err
	}
	s.drop(id)
	return err
}

func (s *Store) drop(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.expenses[:0:0]
	for _, e := range s.expenses {
		if e.ID != id {
			out = append(out, e)
		}
	}
	s.expenses = out
}
