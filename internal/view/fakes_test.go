package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/rs/zerolog"
)

var (
	james = model.Employee{ID: "e1", FirstName: "James", LastName: "Smith"}
	mary  = model.Employee{ID: "e2", FirstName: "Mary", LastName: "Johnson"}
	linda = model.Employee{ID: "e3", FirstName: "Linda", LastName: "Brown"}

	roster = []model.Employee{james, mary, linda}
)

func tx(id string, e model.Employee, cents int64) model.Transaction {
	return model.Transaction{
		ID:       id,
		Amount:   cents,
		Employee: e,
		Merchant: "Merchant " + id,
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Two pages: 5 + 3 transactions.
func defaultPages() [][]model.Transaction {
	return [][]model.Transaction{
		{tx("t1", james, 100), tx("t2", mary, 200), tx("t3", linda, 300), tx("t4", mary, 400), tx("t5", linda, 500)},
		{tx("t6", james, 600), tx("t7", mary, 700), tx("t8", linda, 800)},
	}
}

func historyOf(pages [][]model.Transaction, employeeID string) []model.Transaction {
	out := []model.Transaction{}
	for _, p := range pages {
		for _, t := range p {
			if t.Employee.ID == employeeID {
				out = append(out, t)
			}
		}
	}
	return out
}

type fakeEmployees struct {
	mu                 sync.Mutex
	calls              int
	FetchEmployeesFunc func(ctx context.Context) ([]model.Employee, error)
}

func (f *fakeEmployees) FetchEmployees(ctx context.Context) ([]model.Employee, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.FetchEmployeesFunc != nil {
		return f.FetchEmployeesFunc(ctx)
	}
	return roster, nil
}

func (f *fakeEmployees) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakePages struct {
	mu        sync.Mutex
	pages     [][]model.Transaction
	requested []int
	// FetchFunc, when set, runs before the canned page is served; a non-nil
	// error is returned instead of the page.
	FetchFunc func(ctx context.Context, page int) error
}

func newFakePages(pages [][]model.Transaction) *fakePages {
	return &fakePages{pages: pages}
}

func (f *fakePages) FetchTransactionPage(ctx context.Context, page int) (model.TransactionPage, error) {
	f.mu.Lock()
	f.requested = append(f.requested, page)
	hook := f.FetchFunc
	f.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, page); err != nil {
			return model.TransactionPage{}, err
		}
	}

	if page < 0 || page >= len(f.pages) {
		return model.TransactionPage{}, fmt.Errorf("page %d out of range", page)
	}

	result := model.TransactionPage{Data: f.pages[page]}
	if page+1 < len(f.pages) {
		next := page + 1
		result.NextPage = &next
	}
	return result, nil
}

func (f *fakePages) Requested() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.requested...)
}

type fakeByEmployee struct {
	mu        sync.Mutex
	pages     [][]model.Transaction
	requested []string
	FetchFunc func(ctx context.Context, employeeID string) error
}

func (f *fakeByEmployee) FetchTransactionsByEmployee(ctx context.Context, employeeID string) ([]model.Transaction, error) {
	f.mu.Lock()
	f.requested = append(f.requested, employeeID)
	hook := f.FetchFunc
	f.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, employeeID); err != nil {
			return nil, err
		}
	}
	return historyOf(f.pages, employeeID), nil
}

func (f *fakeByEmployee) Requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requested...)
}

// gate blocks a fake fetch until released, so tests can act while it is in flight.
type gate struct {
	entered chan struct{}
	release chan struct{}
}

func newGate() *gate {
	return &gate{entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gate) wait() {
	close(g.entered)
	<-g.release
}

type harness struct {
	employees  *fakeEmployees
	pages      *fakePages
	byEmployee *fakeByEmployee
	orch       *Orchestrator
}

func newHarness() *harness {
	pages := defaultPages()
	h := &harness{
		employees:  &fakeEmployees{},
		pages:      newFakePages(pages),
		byEmployee: &fakeByEmployee{pages: pages},
	}
	h.orch = NewOrchestrator(h.employees, h.pages, h.byEmployee, zerolog.Nop())
	return h
}
