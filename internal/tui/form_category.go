package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-mgr/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// categoryFormModel is the category editor dialog. The title is computed once
// when the dialog opens and never tracks the name being typed.
type categoryFormModel struct {
	title string
	isNew bool
	seed  models.CategoryModel

	input          textinput.Model
	errMsg         string
	confirmDiscard bool
}

func newCategoryForm(seed models.CategoryModel, isNew bool) categoryFormModel {
	input := textinput.New()
	input.Placeholder = "Category name"
	input.Width = 40
	input.Focus()

	title := "Create new category"
	if !isNew {
		title = fmt.Sprintf("Editing category: %d", seed.CategoryID)
		input.SetValue(seed.CategoryName)
	}

	return categoryFormModel{title: title, isNew: isNew, seed: seed, input: input}
}

// dirty reports whether closing the dialog would lose user input.
func (m categoryFormModel) dirty() bool {
	if m.isNew {
		return strings.TrimSpace(m.input.Value()) != ""
	}
	return m.input.Value() != m.seed.CategoryName
}

func (m categoryFormModel) draft() categoryDraft {
	return categoryDraft{name: m.input.Value()}
}

func (m categoryFormModel) View() string {
	out := "Name      : [ " + m.input.View() + " ]\n"
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.confirmDiscard {
		out += "\n" + overlayBoxStyle.Render("Discard changes?\n\ny yes    n no")
		return renderPage(m.title, strings.TrimRight(out, "\n"), "")
	}

	return renderPage(m.title, strings.TrimRight(out, "\n"), "enter: save │ esc: cancel")
}
