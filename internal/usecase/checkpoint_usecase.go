package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"oliadmin/internal/domain/repository"
	"oliadmin/internal/domain/service"
	"oliadmin/pkg/errors"
	"oliadmin/pkg/logger"
)

// CheckpointUseCase gates the "save changes" workflow: nothing gets
// committed while the catalog has validation errors, and a commit never
// runs concurrently with another commit or with a mutation.
type CheckpointUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	changes      ChangeDetector
	committer    Committer
	store        sync.Locker

	// committing is the non-reentrancy latch: a checkpoint attempted while
	// one is in flight is rejected instead of queued.
	committing atomic.Bool
}

func NewCheckpointUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	changes ChangeDetector,
	committer Committer,
	store sync.Locker,
) *CheckpointUseCase {
	return &CheckpointUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		changes:      changes,
		committer:    committer,
		store:        store,
	}
}

type CheckpointResult struct {
	Success   bool                      `json:"success"`
	Committed bool                      `json:"committed"`
	Message   string                    `json:"message"`
	Report    *service.ValidationReport `json:"report,omitempty"`
}

type PendingChanges struct {
	HasChanges bool     `json:"has_changes"`
	Changes    []string `json:"changes"`
}

// Validate runs the catalog consistency check against the current persisted
// state.
func (uc *CheckpointUseCase) Validate(ctx context.Context) (*service.ValidationReport, error) {
	uc.store.Lock()
	defer uc.store.Unlock()

	return uc.validateLocked(ctx)
}

// PendingChanges reports what has been modified since the last checkpoint.
func (uc *CheckpointUseCase) PendingChanges(ctx context.Context) (*PendingChanges, error) {
	uc.store.Lock()
	defer uc.store.Unlock()

	return &PendingChanges{
		HasChanges: uc.changes.HasPendingChanges(ctx),
		Changes:    uc.changes.ListPendingChanges(ctx),
	}, nil
}

// Checkpoint runs the two-phase gate: detect pending changes, validate, then
// commit. A clean store is a successful no-op, distinct from a commit. On
// validation errors or commit failure the store stays dirty and the result
// carries the reason.
func (uc *CheckpointUseCase) Checkpoint(ctx context.Context) (*CheckpointResult, error) {
	if !uc.committing.CompareAndSwap(false, true) {
		return nil, errors.Conflict("Ya hay un guardado en curso")
	}
	defer uc.committing.Store(false)

	uc.store.Lock()
	defer uc.store.Unlock()

	if !uc.changes.HasPendingChanges(ctx) {
		return &CheckpointResult{
			Success: true,
			Message: "No hay cambios pendientes",
		}, nil
	}

	report, err := uc.validateLocked(ctx)
	if err != nil {
		return nil, err
	}
	if !report.Valid {
		return &CheckpointResult{
			Success: false,
			Message: "La base de datos tiene errores",
			Report:  report,
		}, nil
	}

	message := fmt.Sprintf("Actualización de productos/categorías - %s", time.Now().Format("2006-01-02 15:04"))
	ok, commitMsg := uc.committer.Commit(ctx, message)
	if !ok {
		logger.Warn("checkpoint: commit failed: %s", commitMsg)
		return &CheckpointResult{
			Success: false,
			Message: commitMsg,
			Report:  report,
		}, nil
	}

	return &CheckpointResult{
		Success:   true,
		Committed: true,
		Message:   commitMsg,
		Report:    report,
	}, nil
}

func (uc *CheckpointUseCase) validateLocked(ctx context.Context) (*service.ValidationReport, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return service.ValidateCatalog(products, categories), nil
}
