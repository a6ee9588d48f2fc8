package employee

import (
	"github.com/hance08/tally/internal/service"
	"github.com/spf13/cobra"
)

func NewEmployeeCmd(svc *service.Service) *cobra.Command {
	employeeCmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee"},
		Short:   "Show the employee roster.",
		Long:    `Show the employee roster. Running it without a subcommand lists all employees.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{svc: svc}
			return runner.Run(cmd.Context())
		},
	}

	employeeCmd.AddCommand(NewListCmd(svc))

	return employeeCmd
}
