package cmd

import (
	"context"
	"fmt"

	"github.com/hance08/tally/internal/service"
	"github.com/spf13/cobra"
)

type listFlags struct {
	EmployeeID string
	Pages      int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List transactions across all employees, one or more pages at a time,
or the full history of a single employee.`,
		Example: `  tally list
  tally list -p 3
  tally list -e 4f0c2a`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.EmployeeID, "employee", "e", "", "Show the full history of one employee")
	cmd.Flags().IntVarP(&flags.Pages, "pages", "p", 1, "Number of pages to load across all employees")

	return cmd
}

func (r *listRunner) Run(ctx context.Context) error {
	if r.flags.Pages < 1 {
		return fmt.Errorf("pages must be at least 1, got %d", r.flags.Pages)
	}

	session := r.svc.NewSession()

	if r.flags.EmployeeID != "" {
		if _, err := r.svc.Employee.GetEmployee(ctx, r.flags.EmployeeID); err != nil {
			return fmt.Errorf("employee %q: %w", r.flags.EmployeeID, err)
		}
	}

	err := withSpinner(ctx, "Loading transactions...", func(ctx context.Context) error {
		if err := session.Bootstrap(ctx); err != nil {
			return err
		}

		if r.flags.EmployeeID != "" {
			return session.SelectEmployee(ctx, r.flags.EmployeeID)
		}

		for i := 1; i < r.flags.Pages && session.MoreAvailable(); i++ {
			if err := session.LoadMore(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return renderSession(session)
}
