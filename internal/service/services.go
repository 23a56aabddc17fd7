package service

import (
	"github.com/MKhiriev/go-account-mgr/internal/logger"
	"github.com/MKhiriev/go-account-mgr/internal/store"
)

type Services struct {
	CategoryService CategoryService
	AccountService  AccountService
}

func NewServices(repository store.AccountRepository, logger *logger.Logger) *Services {
	return &Services{
		CategoryService: NewCategoryService(repository, logger),
		AccountService:  NewAccountService(repository, logger),
	}
}
