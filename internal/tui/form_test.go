package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-account-mgr/internal/service"
	"github.com/MKhiriev/go-account-mgr/internal/validators"
	"github.com/MKhiriev/go-account-mgr/models"
	"github.com/stretchr/testify/assert"
)

func TestCategoryForm_TitleIsFixedAtOpen(t *testing.T) {
	form := newCategoryForm(models.CategoryModel{CategoryID: models.UnassignedID}, true)
	assert.Equal(t, "Create new category", form.title)

	// Typing a name must not change the title.
	form.input.SetValue("Finance")
	assert.Equal(t, "Create new category", form.title)
}

func TestCategoryForm_EditTitleNamesTheID(t *testing.T) {
	form := newCategoryForm(models.CategoryModel{CategoryID: 12, CategoryName: "Finance"}, false)
	assert.Equal(t, "Editing category: 12", form.title)
	assert.Equal(t, "Finance", form.input.Value())
}

func TestCategoryForm_DirtyGuard(t *testing.T) {
	form := newCategoryForm(models.CategoryModel{CategoryID: 12, CategoryName: "Finance"}, false)
	assert.False(t, form.dirty())

	form.input.SetValue("Money")
	assert.True(t, form.dirty())

	blank := newCategoryForm(models.CategoryModel{CategoryID: models.UnassignedID}, true)
	assert.False(t, blank.dirty())
	blank.input.SetValue("   ")
	assert.False(t, blank.dirty(), "whitespace-only input loses nothing")
}

func TestAccountForm_DirtyTracksCategoryPick(t *testing.T) {
	categories := []models.CategoryModel{
		{CategoryID: 1, CategoryName: "Finance"},
		{CategoryID: 2, CategoryName: "Social"},
	}
	seed := models.AccountModel{
		AccountID:      7,
		AccountName:    "Gmail",
		AccountLoginID: "me@example.com",
		CategoryID:     1,
	}

	form := newAccountForm(seed, categories, false)
	assert.False(t, form.dirty())
	assert.Equal(t, int64(1), form.pickedCategoryID())

	form.categoryIdx = 1
	assert.True(t, form.dirty(), "moving the account to another category is a change")
}

func TestArmedConfirmer_CapturesQuestionAndConsumesArm(t *testing.T) {
	confirmer := &armedConfirmer{}

	assert.False(t, confirmer.Confirm("Delete category", "Delete this category and all of its accounts?"))
	assert.Equal(t, "Delete this category and all of its accounts?", confirmer.lastQuestion)

	confirmer.armed = true
	assert.True(t, confirmer.Confirm("Delete category", "Delete this category?"))
	assert.False(t, confirmer.Confirm("Delete category", "Delete this category?"), "arming is single-use")
}

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, "A category with this name already exists", humanizeError(service.ErrDuplicateCategoryName))
	assert.Equal(t, "Account Name is required!", humanizeError(
		validators.NewFieldError(validators.FieldAccountName, "Account Name is required!"),
	))
	assert.Equal(t, "boom", humanizeError(errors.New("boom")))
}
