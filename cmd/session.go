package cmd

import (
	"context"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/view"
	"github.com/pterm/pterm"
)

// withSpinner runs fn while a spinner is shown.
func withSpinner(ctx context.Context, text string, fn func(context.Context) error) error {
	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(text)
	err := fn(ctx)
	if spinner != nil {
		_ = spinner.Stop()
	}
	return err
}

func sessionTitle(session *view.Orchestrator, v view.View) string {
	switch v.Mode {
	case view.ModeAll:
		return constants.AllEmployeesLabel
	case view.ModeEmployee:
		for _, e := range session.Employees() {
			if e.ID == v.EmployeeID {
				return e.FullName()
			}
		}
		return v.EmployeeID
	default:
		return "Transactions"
	}
}

func renderSession(session *view.Orchestrator) error {
	v := session.Snapshot()

	items := views.NewTransactionListItems(v.Transactions, session.IsApproved)
	status := views.TransactionListStatus{
		Title:         sessionTitle(session, v),
		Loaded:        v.Transactions != nil,
		MoreAvailable: v.MoreAvailable,
	}

	return views.NewTransactionListView().Render(items, status)
}
