package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-account-mgr/internal/logger"
	"github.com/MKhiriev/go-account-mgr/internal/store"
	"github.com/MKhiriev/go-account-mgr/internal/validators"
	"github.com/MKhiriev/go-account-mgr/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockRepository struct {
	getAllCategoriesFn    func(ctx context.Context) ([]models.CategoryModel, error)
	getAccountsFn         func(ctx context.Context, categoryID int64) ([]models.AccountModel, error)
	getAccountByIDFn      func(ctx context.Context, accountID int64) (models.AccountModel, error)
	getPasswordFn         func(ctx context.Context, accountID int64) (string, error)
	insertAccountFn       func(ctx context.Context, account models.AccountModel) (int64, error)
	updateAccountFn       func(ctx context.Context, account models.AccountModel) error
	deleteAccountFn       func(ctx context.Context, accountID int64) error
	isCategoryNameTakenFn func(ctx context.Context, name string) (bool, error)
	categoryHasChildrenFn func(ctx context.Context, categoryID int64) (bool, error)
	insertCategoryFn      func(ctx context.Context, name string) (int64, error)
	updateCategoryFn      func(ctx context.Context, categoryID int64, name string) error
	deleteCategoryFn      func(ctx context.Context, categoryID int64) error
}

func (m *mockRepository) GetAllCategories(ctx context.Context) ([]models.CategoryModel, error) {
	if m.getAllCategoriesFn != nil {
		return m.getAllCategoriesFn(ctx)
	}
	return nil, nil
}

func (m *mockRepository) GetAccountsByCategoryID(ctx context.Context, categoryID int64) ([]models.AccountModel, error) {
	if m.getAccountsFn != nil {
		return m.getAccountsFn(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockRepository) GetAccountByID(ctx context.Context, accountID int64) (models.AccountModel, error) {
	if m.getAccountByIDFn != nil {
		return m.getAccountByIDFn(ctx, accountID)
	}
	return models.AccountModel{}, nil
}

func (m *mockRepository) GetPassword(ctx context.Context, accountID int64) (string, error) {
	if m.getPasswordFn != nil {
		return m.getPasswordFn(ctx, accountID)
	}
	return "", nil
}

func (m *mockRepository) InsertAccount(ctx context.Context, account models.AccountModel) (int64, error) {
	if m.insertAccountFn != nil {
		return m.insertAccountFn(ctx, account)
	}
	return 0, nil
}

func (m *mockRepository) UpdateAccount(ctx context.Context, account models.AccountModel) error {
	if m.updateAccountFn != nil {
		return m.updateAccountFn(ctx, account)
	}
	return nil
}

func (m *mockRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	if m.deleteAccountFn != nil {
		return m.deleteAccountFn(ctx, accountID)
	}
	return nil
}

func (m *mockRepository) IsCategoryNameTaken(ctx context.Context, name string) (bool, error) {
	if m.isCategoryNameTakenFn != nil {
		return m.isCategoryNameTakenFn(ctx, name)
	}
	return false, nil
}

func (m *mockRepository) CategoryHasChildren(ctx context.Context, categoryID int64) (bool, error) {
	if m.categoryHasChildrenFn != nil {
		return m.categoryHasChildrenFn(ctx, categoryID)
	}
	return false, nil
}

func (m *mockRepository) InsertCategory(ctx context.Context, name string) (int64, error) {
	if m.insertCategoryFn != nil {
		return m.insertCategoryFn(ctx, name)
	}
	return 0, nil
}

func (m *mockRepository) UpdateCategory(ctx context.Context, categoryID int64, name string) error {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(ctx, categoryID, name)
	}
	return nil
}

func (m *mockRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(ctx, categoryID)
	}
	return nil
}

var _ store.AccountRepository = (*mockRepository)(nil)

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestCategoryService_CreateCategory(t *testing.T) {
	repo := &mockRepository{
		insertCategoryFn: func(_ context.Context, name string) (int64, error) {
			assert.Equal(t, "Finance", name)
			return 7, nil
		},
	}
	svc := NewCategoryService(repo, logger.Nop())

	created, err := svc.CreateCategory(context.Background(), "  Finance  ")
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.CategoryID)
	assert.Equal(t, "Finance", created.CategoryName)
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	insertCalled := false
	repo := &mockRepository{
		isCategoryNameTakenFn: func(_ context.Context, name string) (bool, error) {
			return true, nil
		},
		insertCategoryFn: func(_ context.Context, name string) (int64, error) {
			insertCalled = true
			return 0, nil
		},
	}
	svc := NewCategoryService(repo, logger.Nop())

	_, err := svc.CreateCategory(context.Background(), "Finance")
	require.ErrorIs(t, err, ErrDuplicateCategoryName)
	assert.False(t, insertCalled, "insert must not be attempted for a duplicate name")
}

func TestCategoryService_CreateCategory_Validation(t *testing.T) {
	tests := []struct {
		name         string
		categoryName string
	}{
		{name: "empty", categoryName: ""},
		{name: "whitespace only", categoryName: "   "},
		{name: "too short", categoryName: "ab"},
		{name: "too long", categoryName: strings.Repeat("x", 51)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoCalled := false
			repo := &mockRepository{
				insertCategoryFn: func(_ context.Context, name string) (int64, error) {
					repoCalled = true
					return 0, nil
				},
			}
			svc := NewCategoryService(repo, logger.Nop())

			_, err := svc.CreateCategory(context.Background(), tt.categoryName)
			require.Error(t, err)
			_, ok := validators.AsFieldError(err)
			assert.True(t, ok, "expected a field validation error, got %v", err)
			assert.False(t, repoCalled)
		})
	}
}

func TestCategoryService_RenameCategory(t *testing.T) {
	repo := &mockRepository{
		updateCategoryFn: func(_ context.Context, categoryID int64, name string) error {
			assert.Equal(t, int64(2), categoryID)
			assert.Equal(t, "Socials", name)
			return nil
		},
	}
	svc := NewCategoryService(repo, logger.Nop())

	renamed, err := svc.RenameCategory(context.Background(), 2, "Socials")
	require.NoError(t, err)
	assert.Equal(t, int64(2), renamed.CategoryID)
	assert.Equal(t, "Socials", renamed.CategoryName)
}

func TestCategoryService_RenameCategory_OwnNameIsStillDuplicate(t *testing.T) {
	// The existence check does not exclude the category being renamed, so
	// renaming "Finance" to "Finance" is rejected like any other duplicate.
	repo := &mockRepository{
		isCategoryNameTakenFn: func(_ context.Context, name string) (bool, error) {
			return name == "Finance", nil
		},
	}
	svc := NewCategoryService(repo, logger.Nop())

	_, err := svc.RenameCategory(context.Background(), 1, "Finance")
	require.ErrorIs(t, err, ErrDuplicateCategoryName)
}

func TestCategoryService_RenameCategory_NotFound(t *testing.T) {
	repo := &mockRepository{
		updateCategoryFn: func(_ context.Context, categoryID int64, name string) error {
			return store.ErrCategoryNotFound
		},
	}
	svc := NewCategoryService(repo, logger.Nop())

	_, err := svc.RenameCategory(context.Background(), 99, "Ghost category")
	require.ErrorIs(t, err, store.ErrCategoryNotFound)
}

func TestCategoryService_DeleteCategory_WrapsRepositoryError(t *testing.T) {
	repoErr := errors.New("disk is sad")
	repo := &mockRepository{
		deleteCategoryFn: func(_ context.Context, categoryID int64) error {
			return repoErr
		},
	}
	svc := NewCategoryService(repo, logger.Nop())

	err := svc.DeleteCategory(context.Background(), 3)
	require.ErrorIs(t, err, repoErr)
}

func TestCategoryService_CategoryHasAccounts(t *testing.T) {
	repo := &mockRepository{
		categoryHasChildrenFn: func(_ context.Context, categoryID int64) (bool, error) {
			return categoryID == 1, nil
		},
	}
	svc := NewCategoryService(repo, logger.Nop())

	has, err := svc.CategoryHasAccounts(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = svc.CategoryHasAccounts(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, has)
}
