package verify

import (
	"context"
	"io"

	"firestore-export-verify/internal/shared/logger"
	"firestore-export-verify/internal/verify/config"
	"firestore-export-verify/internal/verify/domain/model"
	"firestore-export-verify/internal/verify/usecase"
)

// Module represents the complete export verification module
type Module struct {
	usecase usecase.VerifyUsecase
	config  *config.Config
}

// NewModule creates a new verification module instance writing its
// transcript to out. It verifies against the sample dataset the seed
// script generates; use NewModuleWithDataset for a different one.
func NewModule(cfg *config.Config, out io.Writer, log logger.Logger) *Module {
	return NewModuleWithDataset(cfg, model.DefaultExpectedData(), out, log)
}

// NewModuleWithDataset creates a verification module for an explicit
// expected dataset.
func NewModuleWithDataset(cfg *config.Config, expected model.ExpectedData, out io.Writer, log logger.Logger) *Module {
	return &Module{
		usecase: usecase.NewVerifyUsecase(cfg, expected, out, log),
		config:  cfg,
	}
}

// Run executes one complete verification pass. Each invocation is a fresh
// pass; no state persists between runs.
func (m *Module) Run(ctx context.Context) *model.Report {
	return m.usecase.Verify(ctx)
}

// GetUsecase returns the verify usecase for external access
func (m *Module) GetUsecase() usecase.VerifyUsecase {
	return m.usecase
}
