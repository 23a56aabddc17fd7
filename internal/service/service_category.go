package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-mgr/internal/logger"
	"github.com/MKhiriev/go-account-mgr/internal/store"
	"github.com/MKhiriev/go-account-mgr/internal/validators"
	"github.com/MKhiriev/go-account-mgr/models"
)

type categoryService struct {
	repository store.AccountRepository
	validator  validators.Validator

	logger *logger.Logger
}

func NewCategoryService(repository store.AccountRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		repository: repository,
		validator:  validators.NewEntityValidator(),
		logger:     logger,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.CategoryModel, error) {
	return s.repository.GetAllCategories(ctx)
}

func (s *categoryService) CreateCategory(ctx context.Context, name string) (models.CategoryModel, error) {
	name = strings.TrimSpace(name)

	candidate := models.CategoryModel{CategoryID: models.UnassignedID, CategoryName: name}
	if err := s.validator.Validate(ctx, candidate); err != nil {
		return models.CategoryModel{}, err
	}

	taken, err := s.repository.IsCategoryNameTaken(ctx, name)
	if err != nil {
		return models.CategoryModel{}, fmt.Errorf("error checking category name before insert: %w", err)
	}
	if taken {
		return models.CategoryModel{}, ErrDuplicateCategoryName
	}

	categoryID, err := s.repository.InsertCategory(ctx, name)
	if err != nil {
		return models.CategoryModel{}, fmt.Errorf("error inserting category: %w", err)
	}

	s.logger.Info().Int64("category_id", categoryID).Msg("category created")

	return models.CategoryModel{CategoryID: categoryID, CategoryName: name}, nil
}

// RenameCategory validates and persists a new name for an existing category.
// The duplicate-name check does not exclude the category being renamed, so
// renaming a category to its own current name is rejected as a duplicate.
func (s *categoryService) RenameCategory(ctx context.Context, categoryID int64, name string) (models.CategoryModel, error) {
	name = strings.TrimSpace(name)

	candidate := models.CategoryModel{CategoryID: categoryID, CategoryName: name}
	if err := s.validator.Validate(ctx, candidate); err != nil {
		return models.CategoryModel{}, err
	}

	taken, err := s.repository.IsCategoryNameTaken(ctx, name)
	if err != nil {
		return models.CategoryModel{}, fmt.Errorf("error checking category name before rename: %w", err)
	}
	if taken {
		return models.CategoryModel{}, ErrDuplicateCategoryName
	}

	if err := s.repository.UpdateCategory(ctx, categoryID, name); err != nil {
		return models.CategoryModel{}, fmt.Errorf("error renaming category %d: %w", categoryID, err)
	}

	s.logger.Info().Int64("category_id", categoryID).Msg("category renamed")

	return candidate, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	if err := s.repository.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("error deleting category %d: %w", categoryID, err)
	}

	s.logger.Info().Int64("category_id", categoryID).Msg("category deleted with its accounts")

	return nil
}

func (s *categoryService) CategoryHasAccounts(ctx context.Context, categoryID int64) (bool, error) {
	return s.repository.CategoryHasChildren(ctx, categoryID)
}
