package employee

import (
	"context"
	"fmt"

	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type ListCommandRunner struct {
	svc *service.Service
}

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all employees",
		Long:  `List all employees in import order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc: svc,
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *ListCommandRunner) Run(ctx context.Context) error {
	employees, err := r.svc.Employee.FetchEmployees(ctx)
	if err != nil {
		return fmt.Errorf("failed to get employees: %w", err)
	}

	return views.NewEmployeeListView().Render(employees)
}
