package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc *service.Service
}

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc: svc,
			}

			return runner.Run(cmd.Context())
		},
	}
}

func (r *infoRunner) Run(ctx context.Context) error {
	configPath := r.svc.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	appDir := getAppDataDirOrUnknown()

	rawDBPath := r.svc.Config.Database.Path
	if rawDBPath == "" {
		rawDBPath = filepath.Join(appDir, "tally.db")
	}
	expandedDBPath, _ := app.ExpandPath(rawDBPath)

	dbExists := false
	if _, err := os.Stat(expandedDBPath); err == nil {
		dbExists = true
	}

	employees, err := r.svc.Employee.CountEmployees(ctx)
	if err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}
	transactions, err := r.svc.Transaction.CountTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to count transactions: %w", err)
	}

	items := views.SystemInfoItem{
		ConfigPath:   configPath,
		DBPath:       expandedDBPath,
		DBExists:     dbExists,
		PageSize:     r.svc.Transaction.PageSize(),
		LogLevel:     r.svc.Config.Log.Level,
		Employees:    employees,
		Transactions: transactions,
		AppDataDir:   appDir,
	}

	ui.PrintL2Title("System Info")
	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
