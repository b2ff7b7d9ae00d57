package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/baharkarakas/expense-tracker/internal/models"
	"github.com/baharkarakas/expense-tracker/internal/repository/repotest"
)

func TestContract(t *testing.T) {
	repotest.Run(t, New())
}

func TestListTieBreaksOnID(t *testing.T) {
	fixed := time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC)
	s := NewWithClock(func() time.Time { return fixed })
	ctx := context.Background()
	for _, n := range []string{"a", "b", "c"} {
		if _, err := s.Create(ctx, models.ExpenseInput{ItemName: n, Amount: models.MustAmount("1")}); err != nil {
			t.Fatal(err)
		}
	}
	list, _ := s.List(ctx)
	if list[0].ItemName != "c" || list[2].ItemName != "a" {
		t.Fatalf("equal timestamps should order by id desc: %+v", list)
	}
}

func TestConcurrentCreatesGetUniqueIDs(t *testing.T) {
	s := New()
	ctx := context.Background()
	const n = 50

	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := s.Create(ctx, models.ExpenseInput{ItemName: "x", Amount: models.MustAmount("1")})
			if err != nil {
				t.Error(err)
				return
			}
			ids <- e.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d ids, got %d", n, len(seen))
	}
}
