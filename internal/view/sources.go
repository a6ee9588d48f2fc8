package view

import (
	"context"

	"github.com/hance08/tally/internal/model"
)

type EmployeeSource interface {
	FetchEmployees(ctx context.Context) ([]model.Employee, error)
}

// PageSource serves the all-employees feed. Page 0 is the first page.
type PageSource interface {
	FetchTransactionPage(ctx context.Context, page int) (model.TransactionPage, error)
}

// EmployeeTransactionSource returns one employee's full, unpaginated history.
type EmployeeTransactionSource interface {
	FetchTransactionsByEmployee(ctx context.Context, employeeID string) ([]model.Transaction, error)
}
