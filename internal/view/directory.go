package view

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/hance08/tally/internal/model"
	"github.com/rs/zerolog"
)

// EmployeeDirectory caches the employee roster.
type EmployeeDirectory struct {
	src EmployeeSource
	log zerolog.Logger

	mu       sync.RWMutex
	data     []model.Employee
	inflight int
	gen      uint64
}

func NewEmployeeDirectory(src EmployeeSource, log zerolog.Logger) *EmployeeDirectory {
	return &EmployeeDirectory{src: src, log: log}
}

// FetchAll loads the roster. The load is all-or-nothing: on failure the
// previously cached roster (if any) is kept. When fetches overlap, the
// result of the most recently started one wins.
func (d *EmployeeDirectory) FetchAll(ctx context.Context) error {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	d.inflight++
	d.mu.Unlock()

	employees, err := d.src.FetchEmployees(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.inflight--

	if gen != d.gen {
		d.log.Debug().Uint64("gen", gen).Msg("stale employee roster discarded")
		return nil
	}
	if err != nil {
		d.log.Warn().Err(err).Msg("employee roster fetch failed")
		return fmt.Errorf("employees: %w: %w", ErrFetchFailed, err)
	}
	if employees == nil {
		employees = []model.Employee{}
	}

	d.data = slices.Clone(employees)

	d.log.Debug().Int("employees", len(employees)).Msg("employee roster loaded")
	return nil
}

// Data returns the roster, or nil when it has not been loaded yet.
func (d *EmployeeDirectory) Data() []model.Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.data)
}

func (d *EmployeeDirectory) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.data != nil
}

func (d *EmployeeDirectory) Loading() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.inflight > 0
}
