package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// ShedRepository defines the interface for shed master data and per-shed logs
type ShedRepository interface {
	Create(ctx context.Context, shed *entity.Shed) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Shed, error)
	Update(ctx context.Context, shed *entity.Shed) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Shed, int64, error)

	// AddMortality appends the event and debits the shed's bird count
	// (clamped at zero) while crediting its cumulative losses, in one
	// transaction.
	AddMortality(ctx context.Context, event *entity.MortalityEvent) error
	ListMortalities(ctx context.Context, shedID uuid.UUID, params *pagination.PaginationParams) ([]entity.MortalityEvent, int64, error)
	// MortalitiesBetween returns all mortality events dated within
	// [start, end] inclusive, for report aggregation.
	MortalitiesBetween(ctx context.Context, start, end time.Time) ([]entity.MortalityEvent, error)

	AddHusbandry(ctx context.Context, event *entity.HusbandryEvent) error
	ListHusbandry(ctx context.Context, shedID uuid.UUID, params *pagination.PaginationParams) ([]entity.HusbandryEvent, int64, error)
}
