// Package memory is an in-process expense store used by tests and by
// DB_DRIVER=memory for demos. Data is lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/baharkarakas/expense-tracker/internal/models"
	"github.com/baharkarakas/expense-tracker/internal/repository"
)

type Store struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]models.Expense
	now    func() time.Time
}

func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock lets tests control created_at/updated_at.
func NewWithClock(now func() time.Time) *Store {
	return &Store{items: make(map[int64]models.Expense), now: now}
}

var _ repository.Expenses = (*Store)(nil)

func (s *Store) List(_ context.Context) ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Expense, 0, len(s.items))
	for _, e := range s.items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) GetByID(_ context.Context, id int64) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		return models.Expense{}, repository.ErrNotFound
	}
	return e, nil
}

func (s *Store) Create(_ context.Context, in models.ExpenseInput) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	ts := s.now().UTC()
	e := models.Expense{
		ID:        s.nextID,
		ItemName:  in.ItemName,
		Amount:    in.Amount,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	s.items[e.ID] = e
	return e, nil
}

func (s *Store) Update(_ context.Context, id int64, in models.ExpenseInput) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		return models.Expense{}, repository.ErrNotFound
	}
	e.ItemName = in.ItemName
	e.Amount = in.Amount
	e.UpdatedAt = s.now().UTC()
	s.items[id] = e
	return e, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }
