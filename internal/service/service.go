package service

import (
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/view"
	"github.com/rs/zerolog"
)

type Service struct {
	Employee    *EmployeeService
	Transaction *TransactionService
	Import      *ImportService
	Config      *config.Config

	log zerolog.Logger
}

func NewService(repo store.Repository, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		Employee:    NewEmployeeService(repo),
		Transaction: NewTransactionService(repo, cfg.EffectivePageSize()),
		Import:      NewImportService(repo, log),
		Config:      cfg,
		log:         log,
	}
}

// NewSession returns a fresh review session over the stored data. Each
// session has its own pages, filter and approvals.
func (s *Service) NewSession() *view.Orchestrator {
	return view.NewOrchestrator(s.Employee, s.Transaction, s.Transaction, s.log)
}
