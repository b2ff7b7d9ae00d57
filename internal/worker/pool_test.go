package worker

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestPoolRunsEveryTask(t *testing.T) {
	p := NewPool(4)
	var n atomic.Int64
	for i := 0; i < 100; i++ {
		p.Submit(func() error {
			n.Add(1)
			return nil
		})
	}
	if err := p.Stop(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Load() != 100 {
		t.Fatalf("ran %d tasks, want 100", n.Load())
	}
}

func TestPoolJoinsErrors(t *testing.T) {
	p := NewPool(0)
	errA, errB := errors.New("a"), errors.New("b")
	p.Submit(func() error { return errA })
	p.Submit(func() error { return nil })
	p.Submit(func() error { return errB })

	err := p.Stop()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("expected both errors, got %v", err)
	}
}
