package server

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Spawner runs connection workers.
type Spawner interface {
	// Spawn starts task, possibly waiting for a free slot first. It fails
	// only when ctx is done before the task could start.
	Spawn(ctx context.Context, task func()) error
	// Wait blocks until every spawned task returned.
	Wait()
}

// NewSpawner returns a spawner running at most limit tasks at once, or any
// number of them when limit is not positive.
func NewSpawner(limit int) Spawner {
	if limit <= 0 {
		return &unboundedSpawner{}
	}
	return &boundedSpawner{sem: semaphore.NewWeighted(int64(limit))}
}

type unboundedSpawner struct {
	wg sync.WaitGroup
}

func (s *unboundedSpawner) Spawn(_ context.Context, task func()) error {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		task()
	}()
	return nil
}

func (s *unboundedSpawner) Wait() {
	s.wg.Wait()
}

type boundedSpawner struct {
	wg  sync.WaitGroup
	sem *semaphore.Weighted
}

func (s *boundedSpawner) Spawn(ctx context.Context, task func()) error {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.sem.Release(1)
		task()
	}()
	return nil
}

func (s *boundedSpawner) Wait() {
	s.wg.Wait()
}
