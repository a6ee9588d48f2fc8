package service

import (
	"context"
	"fmt"

	"github.com/hance08/tally/internal/store"
	"github.com/rs/zerolog"
)

// ImportService loads a dataset of employees and transactions into the store.
type ImportService struct {
	repo store.Repository
	log  zerolog.Logger
}

func NewImportService(repo store.Repository, log zerolog.Logger) *ImportService {
	return &ImportService{repo: repo, log: log.With().Str("component", "import").Logger()}
}

// HasData reports whether any employee or transaction is stored.
func (is *ImportService) HasData(ctx context.Context) (bool, error) {
	employees, err := is.repo.CountEmployees(ctx)
	if err != nil {
		return false, err
	}
	transactions, err := is.repo.CountTransactions(ctx)
	if err != nil {
		return false, err
	}
	return employees+transactions > 0, nil
}

// Import validates ds and writes it in a single database transaction. Unless
// opts.Replace is set, importing into a non-empty database fails with
// ErrDatasetExists.
func (is *ImportService) Import(ctx context.Context, ds Dataset, opts ImportOptions) (ImportResult, error) {
	employees, transactions, generated, err := normalizeDataset(ds)
	if err != nil {
		return ImportResult{}, err
	}

	err = is.repo.ExecTx(ctx, func(repo store.Repository) error {
		if opts.Replace {
			if err := repo.DeleteAll(ctx); err != nil {
				return err
			}
		} else {
			n, err := repo.CountEmployees(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				return ErrDatasetExists
			}
		}

		for i, e := range employees {
			if err := repo.CreateEmployee(ctx, e, i); err != nil {
				return err
			}
		}
		for i, tx := range transactions {
			if err := repo.CreateTransaction(ctx, tx, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("import failed: %w", err)
	}

	result := ImportResult{
		Employees:    len(employees),
		Transactions: len(transactions),
		GeneratedIDs: generated,
	}
	is.log.Info().
		Int("employees", result.Employees).
		Int("transactions", result.Transactions).
		Int("generated_ids", result.GeneratedIDs).
		Bool("replace", opts.Replace).
		Msg("dataset imported")
	return result, nil
}
