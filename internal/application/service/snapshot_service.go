package service

import (
	"context"
	"time"

	"github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/apperror"
	"go.uber.org/zap"
)

// SnapshotService handles full-store backup, restore and reset
type SnapshotService struct {
	snapshotRepo repository.SnapshotRepository
	log          *zap.Logger
}

// NewSnapshotService creates a new snapshot service
func NewSnapshotService(snapshotRepo repository.SnapshotRepository, log *zap.Logger) *SnapshotService {
	return &SnapshotService{snapshotRepo: snapshotRepo, log: log}
}

// ExportResult wraps a snapshot with export metadata
type ExportResult struct {
	ExportedAt time.Time           `json:"exported_at"`
	Data       repository.Snapshot `json:"data"`
}

// Export reads every collection into one backup payload
func (s *SnapshotService) Export(ctx context.Context) (*ExportResult, error) {
	snapshot, err := s.snapshotRepo.Export(ctx)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		ExportedAt: time.Now().UTC(),
		Data:       snapshot,
	}, nil
}

// Import overwrites the collections present in the payload. Unknown keys are
// rejected before anything is written, so a typo cannot silently drop data.
func (s *SnapshotService) Import(ctx context.Context, data map[string]interface{}) error {
	if len(data) == 0 {
		return apperror.NewBadRequestError("Snapshot is empty")
	}

	for name := range data {
		if !knownCollection(name) {
			return apperror.NewBadRequestError("Unknown collection: " + name)
		}
	}

	if err := s.snapshotRepo.Import(ctx, data); err != nil {
		return err
	}

	s.log.Info("snapshot imported", zap.Int("collections", len(data)))
	return nil
}

// Reset wipes every domain collection and reseeds the stock singletons and
// default expense categories. Confirmation is enforced at the handler.
func (s *SnapshotService) Reset(ctx context.Context) error {
	if err := s.snapshotRepo.Reset(ctx); err != nil {
		return err
	}
	s.log.Warn("all application data reset")
	return nil
}

func knownCollection(name string) bool {
	switch name {
	case repository.CollectionIngredients,
		repository.CollectionIngredientStocks,
		repository.CollectionPurchases,
		repository.CollectionFormulas,
		repository.CollectionFormulaLines,
		repository.CollectionFeedProductions,
		repository.CollectionFeedStock,
		repository.CollectionFeedConsumptions,
		repository.CollectionSheds,
		repository.CollectionMortalities,
		repository.CollectionHusbandry,
		repository.CollectionEggProductions,
		repository.CollectionEggStock,
		repository.CollectionSales,
		repository.CollectionExpenses,
		repository.CollectionExpenseCategories:
		return true
	}
	return false
}
