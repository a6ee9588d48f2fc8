package service

import (
	"context"
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/view"
)

type EmployeeService struct {
	repo store.EmployeeRepository
}

var _ view.EmployeeSource = (*EmployeeService)(nil)

func NewEmployeeService(repo store.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// FetchEmployees returns the whole roster in import order.
func (es *EmployeeService) FetchEmployees(ctx context.Context) ([]model.Employee, error) {
	employees, err := es.repo.GetAllEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	return employees, nil
}

func (es *EmployeeService) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	if id == "" {
		return nil, ErrEmployeeIDRequired
	}
	return es.repo.GetEmployeeByID(ctx, id)
}

func (es *EmployeeService) CountEmployees(ctx context.Context) (int, error) {
	return es.repo.CountEmployees(ctx)
}
