package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/apperror"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// ShedService handles shed master data and per-shed husbandry logs
type ShedService struct {
	shedRepo repository.ShedRepository
}

// NewShedService creates a new shed service
func NewShedService(shedRepo repository.ShedRepository) *ShedService {
	return &ShedService{shedRepo: shedRepo}
}

// CreateShedInput represents the create shed input
type CreateShedInput struct {
	Name       string
	BatchLabel string
	BirdCount  int
}

// CreateShed creates a new shed
func (s *ShedService) CreateShed(ctx context.Context, input *CreateShedInput) (*entity.Shed, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Shed name is required")
	}
	if input.BirdCount < 0 {
		return nil, apperror.NewBadRequestError("Bird count cannot be negative")
	}

	shed := &entity.Shed{
		Name:       input.Name,
		BatchLabel: input.BatchLabel,
		BirdCount:  input.BirdCount,
	}

	if err := s.shedRepo.Create(ctx, shed); err != nil {
		return nil, err
	}
	return shed, nil
}

// GetShed gets a shed by ID
func (s *ShedService) GetShed(ctx context.Context, id uuid.UUID) (*entity.Shed, error) {
	shed, err := s.shedRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shed == nil {
		return nil, apperror.NewNotFoundError("Shed")
	}
	return shed, nil
}

// UpdateShedInput represents the update shed input
type UpdateShedInput struct {
	Name       *string
	BatchLabel *string
	BirdCount  *int
}

// UpdateShed updates a shed's master data. The bird count may be corrected
// directly here; mortality events adjust it through their own path.
func (s *ShedService) UpdateShed(ctx context.Context, id uuid.UUID, input *UpdateShedInput) (*entity.Shed, error) {
	shed, err := s.shedRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shed == nil {
		return nil, apperror.NewNotFoundError("Shed")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("Shed name cannot be empty")
		}
		shed.Name = *input.Name
	}
	if input.BatchLabel != nil {
		shed.BatchLabel = *input.BatchLabel
	}
	if input.BirdCount != nil {
		if *input.BirdCount < 0 {
			return nil, apperror.NewBadRequestError("Bird count cannot be negative")
		}
		shed.BirdCount = *input.BirdCount
	}

	if err := s.shedRepo.Update(ctx, shed); err != nil {
		return nil, err
	}
	return shed, nil
}

// DeleteShed deletes a shed. Its log entries survive with the recorded shed
// name denormalized on them.
func (s *ShedService) DeleteShed(ctx context.Context, id uuid.UUID) error {
	shed, err := s.shedRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if shed == nil {
		return apperror.NewNotFoundError("Shed")
	}
	return s.shedRepo.Delete(ctx, id)
}

// ListSheds lists sheds with optional name search
func (s *ShedService) ListSheds(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Shed], error) {
	sheds, total, err := s.shedRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sheds, pag), nil
}

// RecordMortalityInput represents the record mortality input
type RecordMortalityInput struct {
	ShedID uuid.UUID
	Date   time.Time
	Count  int
	Cause  *string
}

// RecordMortality logs bird deaths for a shed. The shed's bird count is
// decremented (clamped at zero) and its cumulative losses incremented in
// the same transaction as the event.
func (s *ShedService) RecordMortality(ctx context.Context, input *RecordMortalityInput) (*entity.MortalityEvent, error) {
	if input.Count <= 0 {
		return nil, apperror.NewBadRequestError("Mortality count must be greater than zero")
	}

	shed, err := s.shedRepo.GetByID(ctx, input.ShedID)
	if err != nil {
		return nil, err
	}
	if shed == nil {
		return nil, apperror.NewNotFoundError("Shed")
	}

	event := &entity.MortalityEvent{
		ShedID:   shed.ID,
		ShedName: shed.Name,
		Date:     input.Date,
		Count:    input.Count,
		Cause:    input.Cause,
	}

	if err := s.shedRepo.AddMortality(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListMortalities lists mortality events for a shed
func (s *ShedService) ListMortalities(ctx context.Context, shedID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.MortalityEvent], error) {
	events, total, err := s.shedRepo.ListMortalities(ctx, shedID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(events, pag), nil
}

// RecordHusbandryInput represents the record husbandry input
type RecordHusbandryInput struct {
	ShedID      uuid.UUID
	Date        time.Time
	Activity    string
	Description *string
}

// RecordHusbandry logs a care activity for a shed
func (s *ShedService) RecordHusbandry(ctx context.Context, input *RecordHusbandryInput) (*entity.HusbandryEvent, error) {
	if input.Activity == "" {
		return nil, apperror.NewBadRequestError("Activity is required")
	}

	shed, err := s.shedRepo.GetByID(ctx, input.ShedID)
	if err != nil {
		return nil, err
	}
	if shed == nil {
		return nil, apperror.NewNotFoundError("Shed")
	}

	event := &entity.HusbandryEvent{
		ShedID:      shed.ID,
		Date:        input.Date,
		Activity:    input.Activity,
		Description: input.Description,
	}

	if err := s.shedRepo.AddHusbandry(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListHusbandry lists husbandry events for a shed
func (s *ShedService) ListHusbandry(ctx context.Context, shedID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.HusbandryEvent], error) {
	events, total, err := s.shedRepo.ListHusbandry(ctx, shedID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(events, pag), nil
}
