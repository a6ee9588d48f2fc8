package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/tally/internal/model"
)

func (s *Store) CreateEmployee(ctx context.Context, e model.Employee, position int) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO employees (id, first_name, last_name, position)
        VALUES (?, ?, ?, ?)
    `, e.ID, e.FirstName, e.LastName, position)
	if err != nil {
		if sentinel := classifyConstraint(err); sentinel != nil {
			return fmt.Errorf("failed to create employee '%s': %w", e.ID, sentinel)
		}
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

func (s *Store) GetAllEmployees(ctx context.Context) ([]model.Employee, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, first_name, last_name
        FROM employees
        ORDER BY position, id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	employees := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (s *Store) GetEmployeeByID(ctx context.Context, id string) (*model.Employee, error) {
	var e model.Employee
	err := s.db.QueryRowContext(ctx, `
        SELECT id, first_name, last_name
        FROM employees
        WHERE id = ?
    `, id).Scan(&e.ID, &e.FirstName, &e.LastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee '%s': %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query employee '%s': %w", id, err)
	}
	return &e, nil
}

func (s *Store) CountEmployees(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return n, nil
}
