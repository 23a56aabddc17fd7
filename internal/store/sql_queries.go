package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-mgr/models"
)

// qb is the shared statement builder. SQLite uses ? placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var accountColumns = []string{
	"id",
	"acct_name",
	"acct_login_id",
	"acct_password",
	"acct_notes",
	"date_created",
	"date_modified",
	"category_id",
	"is_password_encrypted",
}

func selectAllCategoriesQuery() (string, []any, error) {
	return qb.
		Select("category_id", "category_name").
		From("acct_category").
		OrderBy("category_name").
		ToSql()
}

func selectAccountsByCategoryQuery(categoryID int64) (string, []any, error) {
	return qb.
		Select(accountColumns...).
		From("acct_mgr").
		Where(sq.Eq{"category_id": categoryID}).
		OrderBy("acct_name").
		ToSql()
}

func selectAccountByIDQuery(accountID int64) (string, []any, error) {
	return qb.
		Select(accountColumns...).
		From("acct_mgr").
		Where(sq.Eq{"id": accountID}).
		ToSql()
}

func selectPasswordQuery(accountID int64) (string, []any, error) {
	return qb.
		Select("acct_password").
		From("acct_mgr").
		Where(sq.Eq{"id": accountID}).
		ToSql()
}

func insertAccountQuery(account models.AccountModel) (string, []any, error) {
	return qb.
		Insert("acct_mgr").
		Columns(
			"acct_name",
			"acct_login_id",
			"acct_password",
			"acct_notes",
			"date_created",
			"date_modified",
			"category_id",
			"is_password_encrypted",
		).
		Values(
			account.AccountName,
			account.AccountLoginID,
			account.AccountPassword,
			nullableText(account.Notes),
			account.DateCreated,
			nil,
			account.CategoryID,
			account.IsPasswordEncrypted,
		).
		ToSql()
}

func updateAccountQuery(account models.AccountModel) (string, []any, error) {
	return qb.
		Update("acct_mgr").
		Set("acct_name", account.AccountName).
		Set("acct_login_id", account.AccountLoginID).
		Set("acct_password", account.AccountPassword).
		Set("acct_notes", nullableText(account.Notes)).
		Set("category_id", account.CategoryID).
		Set("date_modified", account.DateModified).
		Set("is_password_encrypted", account.IsPasswordEncrypted).
		Where(sq.Eq{"id": account.AccountID}).
		ToSql()
}

func deleteAccountQuery(accountID int64) (string, []any, error) {
	return qb.
		Delete("acct_mgr").
		Where(sq.Eq{"id": accountID}).
		ToSql()
}

func deleteAccountsByCategoryQuery(categoryID int64) (string, []any, error) {
	return qb.
		Delete("acct_mgr").
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
}

func countCategoryByNameQuery(name string) (string, []any, error) {
	return qb.
		Select("COUNT(*)").
		From("acct_category").
		Where(sq.Eq{"category_name": name}).
		ToSql()
}

func countAccountsByCategoryQuery(categoryID int64) (string, []any, error) {
	return qb.
		Select("COUNT(*)").
		From("acct_mgr").
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
}

func insertCategoryQuery(name string) (string, []any, error) {
	return qb.
		Insert("acct_category").
		Columns("category_name").
		Values(name).
		ToSql()
}

func updateCategoryQuery(categoryID int64, name string) (string, []any, error) {
	return qb.
		Update("acct_category").
		Set("category_name", name).
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
}

func deleteCategoryQuery(categoryID int64) (string, []any, error) {
	return qb.
		Delete("acct_category").
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
}

// nullableText maps the empty string to SQL NULL, matching the optional
// acct_notes column.
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}
