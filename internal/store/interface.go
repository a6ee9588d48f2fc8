package store

import (
	"context"

	"github.com/hance08/tally/internal/model"
)

type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, e model.Employee, position int) error
	GetAllEmployees(ctx context.Context) ([]model.Employee, error)
	GetEmployeeByID(ctx context.Context, id string) (*model.Employee, error)
	CountEmployees(ctx context.Context) (int, error)
}

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx model.Transaction, position int) error
	// GetTransactionsPage returns up to limit rows starting at offset, and whether more rows follow.
	GetTransactionsPage(ctx context.Context, offset, limit int) ([]model.Transaction, bool, error)
	GetTransactionsByEmployee(ctx context.Context, employeeID string) ([]model.Transaction, error)
	CountTransactions(ctx context.Context) (int, error)
}

type Repository interface {
	EmployeeRepository
	TransactionRepository

	// DeleteAll wipes transactions and employees.
	DeleteAll(ctx context.Context) error
	ExecTx(ctx context.Context, fn func(Repository) error) error
	Close() error
}
