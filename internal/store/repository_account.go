package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-mgr/internal/crypto"
	"github.com/MKhiriev/go-account-mgr/internal/logger"
	"github.com/MKhiriev/go-account-mgr/models"
)

type accountRepository struct {
	*DB
	cipher crypto.CipherService
	logger *logger.Logger
}

// NewAccountRepository constructs the SQLite-backed [AccountRepository].
// The cipher is applied at this boundary only: passwords enter and leave the
// repository as plaintext while the acct_password column always holds
// ciphertext for rows written by this application.
func NewAccountRepository(db *DB, cipher crypto.CipherService, logger *logger.Logger) AccountRepository {
	return &accountRepository{
		DB:     db,
		cipher: cipher,
		logger: logger,
	}
}

func (r *accountRepository) GetAccountsByCategoryID(ctx context.Context, categoryID int64) ([]models.AccountModel, error) {
	query, args, err := selectAccountsByCategoryQuery(categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Int64("category_id", categoryID).
			Msg("failed to query accounts by category")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var accounts []models.AccountModel
	for rows.Next() {
		account, scanErr := r.scanAccount(rows.Scan)
		if scanErr != nil {
			r.logger.Err(scanErr).
				Int64("category_id", categoryID).
				Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

func (r *accountRepository) GetAccountByID(ctx context.Context, accountID int64) (models.AccountModel, error) {
	query, args, err := selectAccountByIDQuery(accountID)
	if err != nil {
		return models.AccountModel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	account, err := r.scanAccount(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AccountModel{}, ErrAccountNotFound
		}
		r.logger.Err(err).
			Int64("account_id", accountID).
			Msg("failed to scan account row")
		return models.AccountModel{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

func (r *accountRepository) GetPassword(ctx context.Context, accountID int64) (string, error) {
	query, args, err := selectPasswordQuery(accountID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stored, nil
}

func (r *accountRepository) InsertAccount(ctx context.Context, account models.AccountModel) (int64, error) {
	encryptedPassword, err := r.cipher.Encrypt(account.AccountPassword)
	if err != nil {
		return 0, fmt.Errorf("failed to encrypt password: %w", err)
	}

	now := time.Now()
	account.AccountPassword = encryptedPassword
	account.DateCreated = &now
	account.IsPasswordEncrypted = models.PasswordEncrypted

	query, args, err := insertAccountQuery(account)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("acct_name", account.AccountName).
			Msg("failed to insert account")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return 0, ErrAccountNotSaved
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *accountRepository) UpdateAccount(ctx context.Context, account models.AccountModel) error {
	encryptedPassword, err := r.cipher.Encrypt(account.AccountPassword)
	if err != nil {
		return fmt.Errorf("failed to encrypt password: %w", err)
	}

	now := time.Now()
	account.AccountPassword = encryptedPassword
	account.DateModified = &now
	account.IsPasswordEncrypted = models.PasswordEncrypted

	query, args, err := updateAccountQuery(account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Int64("account_id", account.AccountID).
			Msg("failed to update account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	query, args, err := deleteAccountQuery(accountID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Int64("account_id", accountID).
			Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// scanAccount reads one account row and decrypts the password column when
// the row is flagged encrypted. Rows written before encryption was
// introduced keep their stored text as-is; a row that fails to decrypt is
// also passed through raw, matching that legacy behavior.
func (r *accountRepository) scanAccount(scan func(dest ...any) error) (models.AccountModel, error) {
	var account models.AccountModel
	var notes sql.NullString
	var dateCreated, dateModified sql.NullTime

	err := scan(
		&account.AccountID,
		&account.AccountName,
		&account.AccountLoginID,
		&account.AccountPassword,
		&notes,
		&dateCreated,
		&dateModified,
		&account.CategoryID,
		&account.IsPasswordEncrypted,
	)
	if err != nil {
		return models.AccountModel{}, err
	}

	account.Notes = notes.String
	if dateCreated.Valid {
		created := dateCreated.Time
		account.DateCreated = &created
	}
	if dateModified.Valid {
		modified := dateModified.Time
		account.DateModified = &modified
	}

	if account.IsPasswordEncrypted == models.PasswordEncrypted {
		plaintext, decErr := r.cipher.Decrypt(account.AccountPassword)
		if decErr != nil {
			r.logger.Warn().
				Err(decErr).
				Int64("account_id", account.AccountID).
				Msg("stored password could not be decrypted, passing through raw")
		} else {
			account.AccountPassword = plaintext
		}
	}

	return account, nil
}
