package views

import (
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListItem struct {
	ID       string
	Date     string
	Employee string
	Merchant string
	Amount   string
	Approved bool
}

// TransactionListStatus describes the view around the table.
type TransactionListStatus struct {
	Title         string
	Loaded        bool
	MoreAvailable bool
}

// NewTransactionListItems formats transactions for display. approved reads
// the session's approval overlay.
func NewTransactionListItems(txs []model.Transaction, approved func(id string) bool) []TransactionListItem {
	items := make([]TransactionListItem, 0, len(txs))
	for _, tx := range txs {
		items = append(items, TransactionListItem{
			ID:       tx.ID,
			Date:     tx.Date.Format(constants.DateFormat),
			Employee: tx.Employee.FullName(),
			Merchant: tx.Merchant,
			Amount:   utils.FormatFromCents(tx.Amount),
			Approved: approved(tx.ID),
		})
	}
	return items
}

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(items []TransactionListItem, status TransactionListStatus) error {
	pterm.DefaultSection.Println(status.Title)

	if !status.Loaded {
		pterm.Warning.Println("Transactions have not been loaded")
		return nil
	}
	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Employee", "Merchant", "Amount", "Approved"},
	}

	approvedCount := 0
	for _, item := range items {
		amount := item.Amount
		if len(amount) > 0 && amount[0] == '-' {
			amount = pterm.Green(amount)
		}

		approved := pterm.Gray("-")
		if item.Approved {
			approved = pterm.Green("✓")
			approvedCount++
		}

		tableData = append(tableData, []string{
			item.ID,
			item.Date,
			item.Employee,
			item.Merchant,
			amount,
			approved,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Showing %d transactions (%d approved)\n", len(items), approvedCount)
	if status.MoreAvailable {
		pterm.Info.Println("More transactions are available")
	}
	return nil
}
