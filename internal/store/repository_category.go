package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-mgr/models"
)

func (r *accountRepository) GetAllCategories(ctx context.Context) ([]models.CategoryModel, error) {
	query, args, err := selectAllCategoriesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var categories []models.CategoryModel
	for rows.Next() {
		var category models.CategoryModel
		if scanErr := rows.Scan(&category.CategoryID, &category.CategoryName); scanErr != nil {
			r.logger.Err(scanErr).Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

func (r *accountRepository) IsCategoryNameTaken(ctx context.Context, name string) (bool, error) {
	query, args, err := countCategoryByNameQuery(strings.TrimSpace(name))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *accountRepository) CategoryHasChildren(ctx context.Context, categoryID int64) (bool, error) {
	query, args, err := countAccountsByCategoryQuery(categoryID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *accountRepository) InsertCategory(ctx context.Context, name string) (int64, error) {
	query, args, err := insertCategoryQuery(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("category_name", name).
			Msg("failed to insert category")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *accountRepository) UpdateCategory(ctx context.Context, categoryID int64, name string) error {
	query, args, err := updateCategoryQuery(categoryID, name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Int64("category_id", categoryID).
			Msg("failed to update category")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// DeleteCategory removes the category and all of its accounts in one
// transaction, mirroring the cascade semantics of the persistence contract.
func (r *accountRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	accountsQuery, accountsArgs, err := deleteAccountsByCategoryQuery(categoryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, accountsQuery, accountsArgs...); err != nil {
		r.logger.Err(err).
			Int64("category_id", categoryID).
			Msg("failed to cascade-delete accounts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	categoryQuery, categoryArgs, err := deleteCategoryQuery(categoryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, categoryQuery, categoryArgs...); err != nil {
		r.logger.Err(err).
			Int64("category_id", categoryID).
			Msg("failed to delete category")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
