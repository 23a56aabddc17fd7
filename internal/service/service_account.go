package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-mgr/internal/logger"
	"github.com/MKhiriev/go-account-mgr/internal/store"
	"github.com/MKhiriev/go-account-mgr/internal/validators"
	"github.com/MKhiriev/go-account-mgr/models"
)

type accountService struct {
	repository store.AccountRepository
	validator  validators.Validator

	logger *logger.Logger
}

func NewAccountService(repository store.AccountRepository, logger *logger.Logger) AccountService {
	return &accountService{
		repository: repository,
		validator:  validators.NewEntityValidator(),
		logger:     logger,
	}
}

func (s *accountService) ListAccountsByCategory(ctx context.Context, categoryID int64) ([]models.AccountModel, error) {
	return s.repository.GetAccountsByCategoryID(ctx, categoryID)
}

func (s *accountService) GetAccount(ctx context.Context, accountID int64) (models.AccountModel, error) {
	return s.repository.GetAccountByID(ctx, accountID)
}

func (s *accountService) GetStoredPassword(ctx context.Context, accountID int64) (string, error) {
	return s.repository.GetPassword(ctx, accountID)
}

// CreateAccount validates and persists a new account, then re-reads the row so
// the returned record carries the assigned id and the store-set creation
// timestamp.
func (s *accountService) CreateAccount(ctx context.Context, account models.AccountModel) (models.AccountModel, error) {
	if err := s.validator.Validate(ctx, account); err != nil {
		return models.AccountModel{}, err
	}

	accountID, err := s.repository.InsertAccount(ctx, account)
	if err != nil {
		return models.AccountModel{}, fmt.Errorf("error inserting account: %w", err)
	}

	s.logger.Info().Int64("account_id", accountID).Int64("category_id", account.CategoryID).Msg("account created")

	return s.repository.GetAccountByID(ctx, accountID)
}

// UpdateAccount validates and persists the edited account, then re-reads the
// row so the returned record carries the store-set modification timestamp.
func (s *accountService) UpdateAccount(ctx context.Context, account models.AccountModel) (models.AccountModel, error) {
	if err := s.validator.Validate(ctx, account); err != nil {
		return models.AccountModel{}, err
	}

	if err := s.repository.UpdateAccount(ctx, account); err != nil {
		return models.AccountModel{}, fmt.Errorf("error updating account %d: %w", account.AccountID, err)
	}

	s.logger.Info().Int64("account_id", account.AccountID).Msg("account updated")

	return s.repository.GetAccountByID(ctx, account.AccountID)
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	if err := s.repository.DeleteAccount(ctx, accountID); err != nil {
		return fmt.Errorf("error deleting account %d: %w", accountID, err)
	}

	s.logger.Info().Int64("account_id", accountID).Msg("account deleted")

	return nil
}
