package view

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/hance08/tally/internal/model"
	"github.com/rs/zerolog"
)

type Mode int

const (
	// ModeNone is the state before the first selection.
	ModeNone Mode = iota
	// ModeAll shows the paginated all-employees feed.
	ModeAll
	// ModeEmployee shows one employee's full history.
	ModeEmployee
)

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeEmployee:
		return "employee"
	default:
		return "none"
	}
}

// View is a point-in-time copy of what the presentation layer renders.
type View struct {
	Transactions  []model.Transaction
	Loading       bool
	MoreAvailable bool
	Mode          Mode
	EmployeeID    string
}

// Orchestrator keeps the feed and the filter mutually exclusive and exposes
// the single transaction list the presentation layer renders.
//
// Transitions (SelectAll, SelectEmployee, LoadMore) do not overlap: one
// started while another is running fails with ErrTransitionInFlight.
type Orchestrator struct {
	employees *EmployeeDirectory
	feed      *PaginatedTransactionFeed
	filter    *EmployeeTransactionFilter
	approvals *ApprovalOverlay
	log       zerolog.Logger

	busy atomic.Bool

	mu         sync.RWMutex
	mode       Mode
	employeeID string
	loading    bool
	showMore   bool
}

func NewOrchestrator(
	employees EmployeeSource,
	pages PageSource,
	byEmployee EmployeeTransactionSource,
	log zerolog.Logger,
) *Orchestrator {
	log = log.With().Str("component", "view").Logger()
	return &Orchestrator{
		employees: NewEmployeeDirectory(employees, log),
		feed:      NewPaginatedTransactionFeed(pages, log),
		filter:    NewEmployeeTransactionFilter(byEmployee, log),
		approvals: NewApprovalOverlay(),
		log:       log,
	}
}

// Bootstrap runs SelectAll on first use: when no roster is cached and none
// is being loaded.
func (o *Orchestrator) Bootstrap(ctx context.Context) error {
	if o.employees.Loaded() || o.employees.Loading() {
		return nil
	}
	return o.SelectAll(ctx)
}

// SelectAll switches to the all-employees feed and reloads it from page 0.
func (o *Orchestrator) SelectAll(ctx context.Context) error {
	if !o.busy.CompareAndSwap(false, true) {
		return ErrTransitionInFlight
	}
	defer o.busy.Store(false)

	o.filter.InvalidateData()

	o.mu.Lock()
	o.mode = ModeAll
	o.employeeID = ""
	o.showMore = false
	o.loading = true
	o.mu.Unlock()

	defer o.setLoading(false)

	if !o.employees.Loaded() {
		if err := o.employees.FetchAll(ctx); err != nil {
			return err
		}
	}

	if err := o.feed.FetchAll(ctx); err != nil {
		return err
	}

	o.mu.Lock()
	o.showMore = !o.feed.Exhausted()
	more := o.showMore
	o.mu.Unlock()

	o.log.Debug().
		Int("rows", len(o.feed.Data())).
		Bool("more_available", more).
		Msg("selected all employees")
	return nil
}

// SelectEmployee switches to employeeID's full history. The empty id is the
// "all employees" selection and behaves as SelectAll.
//
// Switching from one employee to another clears the previous employee's
// history first, so a failed fetch shows nothing rather than the wrong
// person's transactions. Re-selecting the same employee keeps the current
// history if the refresh fails.
func (o *Orchestrator) SelectEmployee(ctx context.Context, employeeID string) error {
	if employeeID == model.EmptyEmployee.ID {
		return o.SelectAll(ctx)
	}

	if !o.busy.CompareAndSwap(false, true) {
		return ErrTransitionInFlight
	}
	defer o.busy.Store(false)

	o.feed.InvalidateData()
	if current := o.filter.EmployeeID(); current != "" && current != employeeID {
		o.filter.InvalidateData()
	}

	o.mu.Lock()
	o.mode = ModeEmployee
	o.employeeID = employeeID
	o.showMore = false
	o.mu.Unlock()

	if err := o.filter.FetchByID(ctx, employeeID); err != nil {
		return err
	}

	o.log.Debug().
		Str("employee_id", employeeID).
		Int("rows", len(o.filter.Data())).
		Msg("selected employee")
	return nil
}

// LoadMore appends the next page of the all-employees feed. Once the feed
// reports no further pages, "more available" stays false until the next
// SelectAll.
func (o *Orchestrator) LoadMore(ctx context.Context) error {
	if !o.busy.CompareAndSwap(false, true) {
		return ErrTransitionInFlight
	}
	defer o.busy.Store(false)

	o.mu.RLock()
	mode, show := o.mode, o.showMore
	o.mu.RUnlock()

	if mode != ModeAll {
		return ErrInvalidTransition
	}
	if !show {
		return nil
	}

	if err := o.feed.FetchMore(ctx); err != nil {
		return err
	}

	exhausted := o.feed.Exhausted()
	if exhausted {
		o.mu.Lock()
		o.showMore = false
		o.mu.Unlock()
	}

	o.log.Debug().
		Int("pages", o.feed.PageCount()).
		Int("rows", len(o.feed.Data())).
		Bool("exhausted", exhausted).
		Msg("loaded more transactions")
	return nil
}

// Transactions prefers the filtered history and falls back to the feed.
// Nil means neither side holds data.
func (o *Orchestrator) Transactions() []model.Transaction {
	if txs := o.filter.Data(); txs != nil {
		return txs
	}
	return o.feed.Data()
}

// Loading reports the global flag that brackets the roster and first-page
// loads of SelectAll.
func (o *Orchestrator) Loading() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.loading
}

func (o *Orchestrator) MoreAvailable() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.mode == ModeAll && o.showMore
}

func (o *Orchestrator) Mode() Mode {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.mode
}

// EmployeeID is the selected employee, empty in the all-employees view.
func (o *Orchestrator) EmployeeID() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.employeeID
}

// Employees returns the cached roster; nil before it has loaded.
func (o *Orchestrator) Employees() []model.Employee {
	return o.employees.Data()
}

// FeedLoading reports whether a page fetch is in flight.
func (o *Orchestrator) FeedLoading() bool {
	return o.feed.Loading()
}

func (o *Orchestrator) Snapshot() View {
	txs := o.Transactions()

	o.mu.RLock()
	defer o.mu.RUnlock()
	return View{
		Transactions:  txs,
		Loading:       o.loading,
		MoreAvailable: o.mode == ModeAll && o.showMore,
		Mode:          o.mode,
		EmployeeID:    o.employeeID,
	}
}

func (o *Orchestrator) SetApproval(transactionID string, approved bool) {
	o.approvals.SetApproval(transactionID, approved)
}

func (o *Orchestrator) IsApproved(transactionID string) bool {
	return o.approvals.IsApproved(transactionID)
}

func (o *Orchestrator) ToggleApproval(transactionID string) bool {
	return o.approvals.Toggle(transactionID)
}

func (o *Orchestrator) setLoading(v bool) {
	o.mu.Lock()
	o.loading = v
	o.mu.Unlock()
}
