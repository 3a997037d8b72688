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

// ExpenseService handles operational expense logging and categories
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateCategoryInput represents the create category input
type CreateCategoryInput struct {
	Name string
}

// CreateCategory creates a new expense category
func (s *ExpenseService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.ExpenseCategory, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}

	category := &entity.ExpenseCategory{Name: input.Name}
	if err := s.expenseRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lists all expense categories
func (s *ExpenseService) ListCategories(ctx context.Context) ([]entity.ExpenseCategory, error) {
	return s.expenseRepo.ListCategories(ctx)
}

// DeleteCategory deletes an expense category. Existing expenses keep their
// category id; reads resolve it to nil.
func (s *ExpenseService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.expenseRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.expenseRepo.DeleteCategory(ctx, id)
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	CategoryID  *uuid.UUID
	Date        time.Time
	Description string
	Amount      float64
}

// CreateExpense records an operational expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.ExpenseRecord, error) {
	if input.Description == "" {
		return nil, apperror.NewBadRequestError("Description is required")
	}
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be greater than zero")
	}

	if input.CategoryID != nil {
		category, err := s.expenseRepo.GetCategoryByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	expense := &entity.ExpenseRecord{
		CategoryID:  input.CategoryID,
		Date:        input.Date,
		Description: input.Description,
		Amount:      input.Amount,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense gets an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.ExpenseRecord, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// DeleteExpense deletes an expense record
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}

// ListExpenses lists expenses with optional category and date filters
func (s *ExpenseService) ListExpenses(ctx context.Context, params *pagination.PaginationParams, categoryID *uuid.UUID, startDate, endDate *time.Time) (*pagination.PaginatedResult[entity.ExpenseRecord], error) {
	expenses, total, err := s.expenseRepo.List(ctx, params, categoryID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}
