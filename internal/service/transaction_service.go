package service

import (
	"context"
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/view"
)

type TransactionService struct {
	repo     store.TransactionRepository
	pageSize int
}

var (
	_ view.PageSource                = (*TransactionService)(nil)
	_ view.EmployeeTransactionSource = (*TransactionService)(nil)
)

func NewTransactionService(repo store.TransactionRepository, pageSize int) *TransactionService {
	return &TransactionService{repo: repo, pageSize: pageSize}
}

func (ts *TransactionService) PageSize() int {
	return ts.pageSize
}

// FetchTransactionPage serves page-th slice of all transactions. NextPage is
// set only when at least one more row exists.
func (ts *TransactionService) FetchTransactionPage(ctx context.Context, page int) (model.TransactionPage, error) {
	if page < 0 {
		return model.TransactionPage{}, fmt.Errorf("page %d: %w", page, store.ErrInvalidPage)
	}

	rows, hasMore, err := ts.repo.GetTransactionsPage(ctx, page*ts.pageSize, ts.pageSize)
	if err != nil {
		return model.TransactionPage{}, fmt.Errorf("failed to get transactions page %d: %w", page, err)
	}

	result := model.TransactionPage{Data: rows}
	if hasMore {
		next := page + 1
		result.NextPage = &next
	}
	return result, nil
}

// FetchTransactionsByEmployee returns the employee's complete history. An
// unknown employee simply has no transactions.
func (ts *TransactionService) FetchTransactionsByEmployee(ctx context.Context, employeeID string) ([]model.Transaction, error) {
	if employeeID == "" {
		return nil, ErrEmployeeIDRequired
	}

	transactions, err := ts.repo.GetTransactionsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction history: %w", err)
	}
	return transactions, nil
}

func (ts *TransactionService) CountTransactions(ctx context.Context) (int, error) {
	return ts.repo.CountTransactions(ctx)
}
