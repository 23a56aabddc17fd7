package tui

import (
	"context"

	"github.com/MKhiriev/go-account-mgr/internal/service"
	"github.com/MKhiriev/go-account-mgr/models"
)

// accountDraft holds the fields collected by the account editor form before
// the coordinator is driven.
type accountDraft struct {
	name       string
	loginID    string
	password   string
	notes      string
	categoryID int64
}

// categoryDraft holds the name collected by the category editor form.
type categoryDraft struct {
	name string
}

// editorDriver bridges the coordinator's synchronous editor workflow and the
// form models. The form collects input first; on submit the model places the
// draft here and invokes the coordinator, whose editor callback lands in
// EditAccount/EditCategory below. The driver applies the draft to the seed and
// persists through the services. A validation or duplicate-name failure is
// recorded in lastErr and reported as committed=false, which leaves the form
// open so the user can correct the input.
type editorDriver struct {
	services *service.Services

	accountDraft  *accountDraft
	categoryDraft *categoryDraft
	lastErr       error
}

func newEditorDriver(services *service.Services) *editorDriver {
	return &editorDriver{services: services}
}

func (d *editorDriver) EditAccount(ctx context.Context, seed *models.AccountModel, _ []models.CategoryModel, _ bool) (models.AccountModel, bool, error) {
	draft := d.accountDraft
	if draft == nil {
		return models.AccountModel{}, false, nil
	}
	d.accountDraft = nil
	d.lastErr = nil

	candidate := *seed
	candidate.AccountName = draft.name
	candidate.AccountLoginID = draft.loginID
	candidate.AccountPassword = draft.password
	candidate.Notes = draft.notes
	candidate.CategoryID = draft.categoryID

	var (
		saved models.AccountModel
		err   error
	)
	if candidate.AccountID == models.UnassignedID {
		saved, err = d.services.AccountService.CreateAccount(ctx, candidate)
	} else {
		saved, err = d.services.AccountService.UpdateAccount(ctx, candidate)
	}
	if err != nil {
		d.lastErr = err
		return models.AccountModel{}, false, nil
	}
	return saved, true, nil
}

func (d *editorDriver) EditCategory(ctx context.Context, seed models.CategoryModel, isNew bool) (models.CategoryModel, bool, error) {
	draft := d.categoryDraft
	if draft == nil {
		return models.CategoryModel{}, false, nil
	}
	d.categoryDraft = nil
	d.lastErr = nil

	var (
		saved models.CategoryModel
		err   error
	)
	if isNew {
		saved, err = d.services.CategoryService.CreateCategory(ctx, draft.name)
	} else {
		saved, err = d.services.CategoryService.RenameCategory(ctx, seed.CategoryID, draft.name)
	}
	if err != nil {
		d.lastErr = err
		return models.CategoryModel{}, false, nil
	}
	return saved, true, nil
}

// takeError returns and clears the last editor failure.
func (d *editorDriver) takeError() error {
	err := d.lastErr
	d.lastErr = nil
	return err
}
