package service

import (
	"context"

	"github.com/MKhiriev/go-account-mgr/models"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.CategoryModel, error)
	CreateCategory(ctx context.Context, name string) (models.CategoryModel, error)
	RenameCategory(ctx context.Context, categoryID int64, name string) (models.CategoryModel, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
	CategoryHasAccounts(ctx context.Context, categoryID int64) (bool, error)
}

type AccountService interface {
	ListAccountsByCategory(ctx context.Context, categoryID int64) ([]models.AccountModel, error)
	GetAccount(ctx context.Context, accountID int64) (models.AccountModel, error)
	GetStoredPassword(ctx context.Context, accountID int64) (string, error)
	CreateAccount(ctx context.Context, account models.AccountModel) (models.AccountModel, error)
	UpdateAccount(ctx context.Context, account models.AccountModel) (models.AccountModel, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}
