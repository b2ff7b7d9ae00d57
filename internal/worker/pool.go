package worker

import (
	"errors"
	"sync"
)

type task func() error

// Pool runs submitted tasks on a fixed number of goroutines and keeps
// every error they return.
type Pool struct {
	wg   sync.WaitGroup
	jobs chan task

	mu   sync.Mutex
	errs []error
}

func NewPool(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{jobs: make(chan task, 1024)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if err := job(); err != nil {
					p.mu.Lock()
					p.errs = append(p.errs, err)
					p.mu.Unlock()
				}
			}
		}()
	}
	return p
}

// Submit blocks when the queue is full. It must not be called after Stop.
func (p *Pool) Submit(f task) { p.jobs <- f }

// Stop drains the queue, waits for the workers and returns the joined
// task errors.
func (p *Pool) Stop() error {
	close(p.jobs)
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}
