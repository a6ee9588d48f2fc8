package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type seedFlags struct {
	Force bool
}

type seedRunner struct {
	svc   *service.Service
	flags *seedFlags
}

func NewSeedCmd(svc *service.Service) *cobra.Command {
	flags := &seedFlags{}

	cmd := &cobra.Command{
		Use:   "seed <file.json>",
		Short: "Import employees and transactions from a JSON file",
		Long: `Import a dataset of employees and transactions from a JSON file.

The file holds an "employees" array and a "transactions" array. Existing
data is replaced after confirmation, or straight away with --force.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &seedRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().BoolVarP(&flags.Force, "force", "f", false, "Replace existing data without asking")

	return cmd
}

func (r *seedRunner) Run(ctx context.Context, path string) error {
	hasData, err := r.svc.Import.HasData(ctx)
	if err != nil {
		return err
	}

	if hasData && !r.flags.Force {
		confirm := false
		prompt := &survey.Confirm{
			Message: "The database already has data. Replace it?",
			Default: false,
		}
		if err := survey.AskOne(prompt, &confirm, ui.IconOption()); err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Import cancelled")
			return nil
		}
	}

	result, err := importFile(ctx, r.svc, path, hasData)
	if err != nil {
		return err
	}

	printImportResult(result)
	return nil
}

func importFile(ctx context.Context, svc *service.Service, path string, replace bool) (service.ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return service.ImportResult{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := service.DecodeDataset(f)
	if err != nil {
		return service.ImportResult{}, err
	}

	return svc.Import.Import(ctx, ds, service.ImportOptions{Replace: replace})
}

func printImportResult(result service.ImportResult) {
	pterm.Success.Printf("Imported %d employees and %d transactions\n", result.Employees, result.Transactions)
	if result.GeneratedIDs > 0 {
		pterm.Info.Printf("%d transactions had no id and were assigned one\n", result.GeneratedIDs)
	}
	ui.Separator()
}
