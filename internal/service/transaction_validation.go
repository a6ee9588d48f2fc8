package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/validation"
)

// normalizeDataset validates ds and converts it into model values. Every
// problem found is reported, joined into one error. Transactions without an
// id get a generated one.
func normalizeDataset(ds Dataset) ([]model.Employee, []model.Transaction, int, error) {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidDataset, fmt.Sprintf(format, args...)))
	}

	employees := make([]model.Employee, 0, len(ds.Employees))
	byID := make(map[string]model.Employee, len(ds.Employees))

	for i, rec := range ds.Employees {
		e := model.Employee{
			ID:        strings.TrimSpace(rec.ID),
			FirstName: strings.TrimSpace(rec.FirstName),
			LastName:  strings.TrimSpace(rec.LastName),
		}

		if err := validation.ValidateEmployeeID(e.ID); err != nil {
			invalid("employee #%d: %v", i+1, err)
			continue
		}
		if err := validation.ValidateEmployeeName(e.FirstName, e.LastName); err != nil {
			invalid("employee '%s': %v", e.ID, err)
			continue
		}
		if _, dup := byID[e.ID]; dup {
			invalid("duplicate employee id '%s'", e.ID)
			continue
		}

		byID[e.ID] = e
		employees = append(employees, e)
	}

	transactions := make([]model.Transaction, 0, len(ds.Transactions))
	seen := make(map[string]bool, len(ds.Transactions))
	generated := 0

	for i, rec := range ds.Transactions {
		id := strings.TrimSpace(rec.ID)
		if id == "" {
			id = uuid.NewString()
			generated++
		}
		if seen[id] {
			invalid("duplicate transaction id '%s'", id)
			continue
		}
		seen[id] = true

		employee, ok := byID[strings.TrimSpace(rec.Employee.ID)]
		if !ok {
			invalid("transaction #%d (%s) references unknown employee '%s'", i+1, id, rec.Employee.ID)
			continue
		}

		amount, err := validation.ParseAmount(rec.Amount.String())
		if err != nil {
			invalid("transaction '%s': %v", id, err)
			continue
		}

		date, err := validation.ParseDate(rec.Date)
		if err != nil {
			invalid("transaction '%s': %v", id, err)
			continue
		}

		merchant := strings.TrimSpace(rec.Merchant)
		if err := validation.ValidateMerchant(merchant); err != nil {
			invalid("transaction '%s': %v", id, err)
			continue
		}

		transactions = append(transactions, model.Transaction{
			ID:       id,
			Amount:   amount,
			Employee: employee,
			Merchant: merchant,
			Date:     date,
		})
	}

	if len(errs) > 0 {
		return nil, nil, 0, errors.Join(errs...)
	}
	return employees, transactions, generated, nil
}
