package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
)

const transactionColumns = `
        t.id, t.amount, t.merchant, t.date,
        e.id, e.first_name, e.last_name
`

func (s *Store) CreateTransaction(ctx context.Context, tx model.Transaction, position int) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO transactions (id, amount, employee_id, merchant, date, position)
        VALUES (?, ?, ?, ?, ?, ?)
    `, tx.ID, tx.Amount, tx.Employee.ID, tx.Merchant, tx.Date.Format(constants.DateFormat), position)
	if err != nil {
		if sentinel := classifyConstraint(err); sentinel != nil {
			return fmt.Errorf("failed to create transaction '%s' (employee_id: %s): %w", tx.ID, tx.Employee.ID, sentinel)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (s *Store) GetTransactionsPage(ctx context.Context, offset, limit int) ([]model.Transaction, bool, error) {
	if offset < 0 || limit <= 0 {
		return nil, false, fmt.Errorf("offset %d, limit %d: %w", offset, limit, ErrInvalidPage)
	}

	// One extra row tells us whether another page exists.
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+transactionColumns+`
        FROM transactions t
        INNER JOIN employees e ON e.id = t.employee_id
        ORDER BY t.position, t.id
        LIMIT ? OFFSET ?
    `, limit+1, offset)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	transactions, err := scanTransactions(rows)
	if err != nil {
		return nil, false, err
	}

	hasMore := len(transactions) > limit
	if hasMore {
		transactions = transactions[:limit]
	}
	return transactions, hasMore, nil
}

func (s *Store) GetTransactionsByEmployee(ctx context.Context, employeeID string) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+transactionColumns+`
        FROM transactions t
        INNER JOIN employees e ON e.id = t.employee_id
        WHERE t.employee_id = ?
        ORDER BY t.position, t.id
    `, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for employee '%s': %w", employeeID, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

func (s *Store) CountTransactions(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	transactions := []model.Transaction{}
	for rows.Next() {
		var (
			tx   model.Transaction
			date string
		)
		err := rows.Scan(
			&tx.ID, &tx.Amount, &tx.Merchant, &date,
			&tx.Employee.ID, &tx.Employee.FirstName, &tx.Employee.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		tx.Date, err = time.Parse(constants.DateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("transaction '%s' has malformed date %q: %w", tx.ID, date, err)
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return transactions, nil
}
