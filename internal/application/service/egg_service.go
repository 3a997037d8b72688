package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/apperror"
	"github.com/granjatech/granja-api/pkg/events"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// EggService handles egg production logging
type EggService struct {
	eggRepo  repository.EggRepository
	shedRepo repository.ShedRepository
	bus      *events.Bus
}

// NewEggService creates a new egg service
func NewEggService(eggRepo repository.EggRepository, shedRepo repository.ShedRepository, bus *events.Bus) *EggService {
	return &EggService{
		eggRepo:  eggRepo,
		shedRepo: shedRepo,
		bus:      bus,
	}
}

// RecordProductionInput represents the record egg production input
type RecordProductionInput struct {
	ShedID     uuid.UUID
	Date       time.Time
	GoodEggs   int
	BrokenEggs int
}

// RecordProduction appends a day's collection for a shed and credits the
// central egg stock: quantity by good eggs, losses by broken eggs.
func (s *EggService) RecordProduction(ctx context.Context, input *RecordProductionInput) (*entity.EggProductionRecord, error) {
	if input.GoodEggs < 0 || input.BrokenEggs < 0 {
		return nil, apperror.NewBadRequestError("Egg counts cannot be negative")
	}
	if input.GoodEggs == 0 && input.BrokenEggs == 0 {
		return nil, apperror.NewBadRequestError("At least one egg count must be greater than zero")
	}

	shed, err := s.shedRepo.GetByID(ctx, input.ShedID)
	if err != nil {
		return nil, err
	}
	if shed == nil {
		return nil, apperror.NewNotFoundError("Shed")
	}

	record := &entity.EggProductionRecord{
		ShedID:     shed.ID,
		ShedName:   shed.Name,
		Date:       input.Date,
		GoodEggs:   input.GoodEggs,
		BrokenEggs: input.BrokenEggs,
	}

	if err := s.eggRepo.CreateProduction(ctx, record); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TypeEggStock, map[string]interface{}{
		"good_eggs":   input.GoodEggs,
		"broken_eggs": input.BrokenEggs,
		"shed_id":     shed.ID,
	})

	return record, nil
}

// ListProductions lists egg production records, optionally filtered by shed
// and date range
func (s *EggService) ListProductions(ctx context.Context, shedID *uuid.UUID, params *pagination.PaginationParams, startDate, endDate *time.Time) (*pagination.PaginatedResult[entity.EggProductionRecord], error) {
	records, total, err := s.eggRepo.ListProductions(ctx, shedID, params, startDate, endDate)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}
