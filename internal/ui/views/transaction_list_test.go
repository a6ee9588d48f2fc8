package views

import (
	"testing"
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNewTransactionListItems(t *testing.T) {
	e := model.Employee{ID: "e1", FirstName: "James", LastName: "Smith"}
	txs := []model.Transaction{
		{ID: "t1", Amount: 1250, Employee: e, Merchant: "Coffee", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "t2", Amount: -500, Employee: e, Merchant: "Refund", Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
	}

	items := NewTransactionListItems(txs, func(id string) bool { return id == "t2" })

	assert.Equal(t, []TransactionListItem{
		{ID: "t1", Date: "2024-01-02", Employee: "James Smith", Merchant: "Coffee", Amount: "12.50", Approved: false},
		{ID: "t2", Date: "2024-01-03", Employee: "James Smith", Merchant: "Refund", Amount: "-5.00", Approved: true},
	}, items)
}

func TestNewTransactionListItems_Empty(t *testing.T) {
	items := NewTransactionListItems(nil, func(string) bool { return false })
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
