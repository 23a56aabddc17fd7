package store

import (
	"context"

	"github.com/MKhiriev/go-account-mgr/models"
)

// AccountRepository is the sole gateway to persistent category/account state.
// All operations are synchronous and single-item-returning; any of them may
// fail with one of the sentinel errors of this package or a wrapped driver
// error.
//
// Passwords cross this boundary as plaintext: InsertAccount and
// UpdateAccount encrypt before writing, reads decrypt rows whose
// is_password_encrypted flag says so and pass legacy plaintext rows through
// unchanged.
type AccountRepository interface {
	// GetAllCategories returns every category ordered by name.
	GetAllCategories(ctx context.Context) ([]models.CategoryModel, error)

	// GetAccountsByCategoryID returns the accounts of one category
	// ordered by account name.
	GetAccountsByCategoryID(ctx context.Context, categoryID int64) ([]models.AccountModel, error)

	// GetAccountByID returns one full account record.
	// Returns ErrAccountNotFound when no row matches.
	GetAccountByID(ctx context.Context, accountID int64) (models.AccountModel, error)

	// GetPassword returns the raw stored password column (ciphertext for
	// encrypted rows) without decrypting it.
	GetPassword(ctx context.Context, accountID int64) (string, error)

	// InsertAccount persists a new account and returns the assigned id.
	// date_created is set by the store; the password is encrypted.
	InsertAccount(ctx context.Context, account models.AccountModel) (int64, error)

	// UpdateAccount rewrites every mutable column of an existing account.
	// date_modified is set by the store; the password is re-encrypted.
	// Returns ErrAccountNotFound when no row matches.
	UpdateAccount(ctx context.Context, account models.AccountModel) error

	// DeleteAccount removes one account row.
	DeleteAccount(ctx context.Context, accountID int64) error

	// IsCategoryNameTaken reports whether a category with the given name
	// already exists. The comparison trims surrounding whitespace and does
	// not exclude any particular row.
	IsCategoryNameTaken(ctx context.Context, name string) (bool, error)

	// CategoryHasChildren reports whether any account references the
	// category.
	CategoryHasChildren(ctx context.Context, categoryID int64) (bool, error)

	// InsertCategory persists a new category and returns the assigned id.
	InsertCategory(ctx context.Context, name string) (int64, error)

	// UpdateCategory renames an existing category.
	// Returns ErrCategoryNotFound when no row matches.
	UpdateCategory(ctx context.Context, categoryID int64, name string) error

	// DeleteCategory removes the category and, in the same transaction,
	// every account that references it.
	DeleteCategory(ctx context.Context, categoryID int64) error
}
