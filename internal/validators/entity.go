package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-account-mgr/models"
)

const (
	FieldAccountName     = "account_name"
	FieldAccountLoginID  = "account_login_id"
	FieldAccountPassword = "account_password"
	FieldCategoryID      = "category_id"
	FieldCategoryName    = "category_name"
)

// Display-name length constraints shared by account and category names.
const (
	nameLenMin = 3
	nameLenMax = 50
)

// EntityValidator validates the two grid entities, [models.CategoryModel]
// and [models.AccountModel].
type EntityValidator struct {
}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccountModel:
		return v.validateAccount(ctx, value, fields...)
	case *models.AccountModel:
		return v.validateAccount(ctx, *value, fields...)

	case models.CategoryModel:
		return v.validateCategory(ctx, value, fields...)
	case *models.CategoryModel:
		return v.validateCategory(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func nameLengthValid(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= nameLenMin && n <= nameLenMax
}

func (v *EntityValidator) validateAccount(_ context.Context, account models.AccountModel, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountName, FieldAccountLoginID, FieldAccountPassword, FieldCategoryID}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountName:
			if account.AccountName == "" {
				return NewFieldError(FieldAccountName, "Account Name is required!")
			}
			if !nameLengthValid(account.AccountName) {
				return NewFieldError(FieldAccountName, "Account Name Should be minimum 3 characters and a maximum of 50 characters")
			}
		case FieldAccountLoginID:
			if account.AccountLoginID == "" {
				return NewFieldError(FieldAccountLoginID, "Account LoginId is required!")
			}
		case FieldAccountPassword:
			if account.AccountPassword == "" {
				return NewFieldError(FieldAccountPassword, "Account Password is required!")
			}
		case FieldCategoryID:
			if account.CategoryID <= 0 {
				return NewFieldError(FieldCategoryID, "Category is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateCategory(_ context.Context, category models.CategoryModel, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategoryName}
	}

	for _, f := range fields {
		switch f {
		case FieldCategoryName:
			if category.CategoryName == "" {
				return NewFieldError(FieldCategoryName, "Category Name is required!")
			}
			if !nameLengthValid(category.CategoryName) {
				return NewFieldError(FieldCategoryName, "Category Name Should be minimum 3 characters and a maximum of 50 characters")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
