package view

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/hance08/tally/internal/model"
	"github.com/rs/zerolog"
)

// EmployeeTransactionFilter holds one employee's complete transaction
// history. The endpoint behind it is unpaginated.
type EmployeeTransactionFilter struct {
	src EmployeeTransactionSource
	log zerolog.Logger

	mu         sync.RWMutex
	data       []model.Transaction
	employeeID string
	inflight   int
	gen        uint64
}

func NewEmployeeTransactionFilter(src EmployeeTransactionSource, log zerolog.Logger) *EmployeeTransactionFilter {
	return &EmployeeTransactionFilter{src: src, log: log}
}

// FetchByID replaces the cached result with employeeID's history. Only the
// latest call may publish: an older response arriving late is dropped.
// On failure the previous result is left as it was.
func (f *EmployeeTransactionFilter) FetchByID(ctx context.Context, employeeID string) error {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.inflight++
	f.mu.Unlock()

	txs, err := f.src.FetchTransactionsByEmployee(ctx, employeeID)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inflight--

	log := f.log.With().Str("employee_id", employeeID).Logger()
	if err != nil {
		log.Warn().Err(err).Msg("employee transactions fetch failed")
		return fmt.Errorf("transactions for employee %q: %w: %w", employeeID, ErrFetchFailed, err)
	}
	if gen != f.gen {
		log.Debug().Msg("discarding stale employee transactions")
		return nil
	}

	f.data = append([]model.Transaction{}, txs...)
	f.employeeID = employeeID

	log.Debug().Int("rows", len(f.data)).Msg("employee transactions loaded")
	return nil
}

// InvalidateData clears the cached result without fetching.
func (f *EmployeeTransactionFilter) InvalidateData() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gen++
	f.data = nil
	f.employeeID = ""
}

// Data returns the filtered history, or nil when no filter result is held.
func (f *EmployeeTransactionFilter) Data() []model.Transaction {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.data)
}

// EmployeeID names the employee whose history Data holds.
func (f *EmployeeTransactionFilter) EmployeeID() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.employeeID
}

func (f *EmployeeTransactionFilter) Loading() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.inflight > 0
}
