package service

import (
	"encoding/json"
	"fmt"
	"io"
)

// EmployeeRecord is an employee as it appears in an import file.
type EmployeeRecord struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// TransactionRecord is a transaction as it appears in an import file.
// Amount accepts a JSON number or a numeric string.
type TransactionRecord struct {
	ID       string         `json:"id"`
	Amount   json.Number    `json:"amount"`
	Employee EmployeeRecord `json:"employee"`
	Merchant string         `json:"merchant"`
	Date     string         `json:"date"`
}

type Dataset struct {
	Employees    []EmployeeRecord    `json:"employees"`
	Transactions []TransactionRecord `json:"transactions"`
}

type ImportOptions struct {
	// Replace wipes existing employees and transactions first.
	Replace bool
}

type ImportResult struct {
	Employees    int
	Transactions int
	GeneratedIDs int
}

func DecodeDataset(r io.Reader) (Dataset, error) {
	var ds Dataset

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	return ds, nil
}
