package cmd

import (
	"context"

	"github.com/hance08/tally/internal/errhandler"
	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/view"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type browseRunner struct {
	svc *service.Service
}

func NewBrowseCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and approve transactions interactively",
		Long: `Browse transactions page by page across all employees, or filter
down to one employee's full history. Approvals last for the session only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &browseRunner{
				svc: svc,
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *browseRunner) Run(ctx context.Context) error {
	if err := r.ensureData(ctx); err != nil {
		return err
	}

	ui.PrintL1Title("Tally")

	session := r.svc.NewSession()

	err := withSpinner(ctx, "Loading transactions...", session.Bootstrap)
	if err := r.warn(ctx, err); err != nil {
		return err
	}

	for {
		if err := renderSession(session); err != nil {
			return err
		}

		v := session.Snapshot()
		action, err := prompts.PromptBrowseAction(prompts.BrowseOptions{
			CanFilter:     !v.Loading && session.Employees() != nil,
			MoreAvailable: v.MoreAvailable,
			HasRows:       len(v.Transactions) > 0,
		})
		if err != nil {
			return err
		}

		switch action {
		case prompts.ActionFilter:
			id, err := prompts.PromptEmployee(session.Employees(), v.EmployeeID)
			if err != nil {
				return err
			}
			err = withSpinner(ctx, "Loading transactions...", func(ctx context.Context) error {
				return session.SelectEmployee(ctx, id)
			})
			if err := r.warn(ctx, err); err != nil {
				return err
			}

		case prompts.ActionViewMore:
			err = withSpinner(ctx, "Loading more transactions...", session.LoadMore)
			if err := r.warn(ctx, err); err != nil {
				return err
			}

		case prompts.ActionApprove:
			if err := r.approve(session, v); err != nil {
				return err
			}

		case prompts.ActionRefresh:
			err = withSpinner(ctx, "Refreshing...", func(ctx context.Context) error {
				if v.Mode == view.ModeEmployee {
					return session.SelectEmployee(ctx, v.EmployeeID)
				}
				return session.SelectAll(ctx)
			})
			if err := r.warn(ctx, err); err != nil {
				return err
			}

		case prompts.ActionQuit:
			return nil
		}

		pterm.Println()
	}
}

// ensureData offers to import a dataset when the database is empty.
func (r *browseRunner) ensureData(ctx context.Context) error {
	hasData, err := r.svc.Import.HasData(ctx)
	if err != nil {
		return err
	}
	if hasData {
		return nil
	}

	path, err := prompts.PromptInitDataset()
	if err != nil || path == "" {
		return err
	}

	result, err := importFile(ctx, r.svc, path, false)
	if err != nil {
		return err
	}
	printImportResult(result)
	return nil
}

func (r *browseRunner) approve(session *view.Orchestrator, v view.View) error {
	items := views.NewTransactionListItems(v.Transactions, session.IsApproved)

	selected, err := prompts.PromptApprovals(items)
	if err != nil {
		return err
	}

	approved := make(map[string]bool, len(selected))
	for _, id := range selected {
		approved[id] = true
	}
	for _, item := range items {
		session.SetApproval(item.ID, approved[item.ID])
	}

	pterm.Success.Printf("%d of %d transactions approved\n", len(selected), len(items))
	return nil
}

// warn reports a failed transition and keeps the session alive so the user
// can retry. Cancellation is returned as is.
func (r *browseRunner) warn(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errhandler.IsInterrupt(err) || ctx.Err() != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Warn().Err(err).Msg("transition failed")
	pterm.Warning.Println(errhandler.Capitalize(err.Error()))
	return nil
}
