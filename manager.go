package systemctl

import (
	"context"
	"sync"
	"time"
)

// Manager handles operations on multiple units concurrently. It provides
// bulk operations with configurable concurrency and timeouts. Concurrent
// use is safe because every underlying parse is a pure function over its
// own captured text.
type Manager struct {
	// Ctl is the client used for every operation
	Ctl *SystemCtl
	// Concurrency is the maximum number of concurrent operations
	Concurrency int
	// Timeout is the per-operation timeout
	Timeout time.Duration
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithConcurrency sets the maximum number of concurrent operations
func WithConcurrency(n int) ManagerOption {
	return func(m *Manager) {
		m.Concurrency = n
	}
}

// WithManagerTimeout sets the per-operation timeout
func WithManagerTimeout(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.Timeout = d
	}
}

// WithClient sets the SystemCtl client used for the operations
func WithClient(ctl *SystemCtl) ManagerOption {
	return func(m *Manager) {
		m.Ctl = ctl
	}
}

// NewManager creates a new Manager with default settings
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		Ctl:         New(),
		Concurrency: 10,
		Timeout:     5 * time.Second,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.Concurrency < 1 {
		m.Concurrency = 1
	}

	return m
}

func (m *Manager) execute(ctx context.Context, units []string, op func(context.Context, string) error) error {
	if len(units) == 0 {
		return nil
	}

	// Semaphore for concurrency control
	sem := make(chan struct{}, m.Concurrency)

	var wg sync.WaitGroup
	var mu sync.Mutex
	merr := &MultiError{}

	for _, unit := range units {
		wg.Add(1)
		go func(unit string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				mu.Lock()
				merr.Add(ctx.Err())
				mu.Unlock()
				return
			}

			opCtx := ctx
			if m.Timeout > 0 {
				var cancel context.CancelFunc
				opCtx, cancel = context.WithTimeout(ctx, m.Timeout)
				defer cancel()
			}

			if err := op(opCtx, unit); err != nil {
				mu.Lock()
				merr.Add(err)
				mu.Unlock()
			}
		}(unit)
	}

	wg.Wait()
	return merr.Err()
}

// Start starts all given units concurrently
func (m *Manager) Start(ctx context.Context, units ...string) error {
	return m.execute(ctx, units, func(ctx context.Context, unit string) error {
		_, err := m.Ctl.Start(ctx, unit)
		return err
	})
}

// Stop stops all given units concurrently
func (m *Manager) Stop(ctx context.Context, units ...string) error {
	return m.execute(ctx, units, func(ctx context.Context, unit string) error {
		_, err := m.Ctl.Stop(ctx, unit)
		return err
	})
}

// Restart restarts all given units concurrently
func (m *Manager) Restart(ctx context.Context, units ...string) error {
	return m.execute(ctx, units, func(ctx context.Context, unit string) error {
		_, err := m.Ctl.Restart(ctx, unit)
		return err
	})
}

// Enable enables all given units concurrently
func (m *Manager) Enable(ctx context.Context, units ...string) error {
	return m.execute(ctx, units, func(ctx context.Context, unit string) error {
		_, err := m.Ctl.Enable(ctx, unit)
		return err
	})
}

// Disable disables all given units concurrently
func (m *Manager) Disable(ctx context.Context, units ...string) error {
	return m.execute(ctx, units, func(ctx context.Context, unit string) error {
		_, err := m.Ctl.Disable(ctx, unit)
		return err
	})
}

// Units builds typed snapshots for all given units concurrently. Results
// keep the argument order; a failed unit leaves a nil entry and its error
// in the returned MultiError.
func (m *Manager) Units(ctx context.Context, units ...string) ([]*Unit, error) {
	results := make([]*Unit, len(units))
	index := make(map[string]int, len(units))
	for i, unit := range units {
		index[unit] = i
	}

	var mu sync.Mutex
	err := m.execute(ctx, units, func(ctx context.Context, unit string) error {
		u, err := m.Ctl.Unit(ctx, unit)
		if err != nil {
			return err
		}
		mu.Lock()
		results[index[unit]] = u
		mu.Unlock()
		return nil
	})

	return results, err
}
