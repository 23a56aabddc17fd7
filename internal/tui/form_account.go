package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-mgr/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	accountFieldName = iota
	accountFieldLogin
	accountFieldPassword
	accountFieldNotes
	accountFieldCategory
)

// accountFormModel is the account editor dialog: four text inputs plus a
// category picker navigated with left/right while focused. The title is
// computed once when the dialog opens.
type accountFormModel struct {
	title string
	isNew bool
	seed  models.AccountModel

	categories  []models.CategoryModel
	categoryIdx int

	inputs []textinput.Model
	focus  int

	errMsg         string
	confirmDiscard bool
}

func newAccountForm(seed models.AccountModel, categories []models.CategoryModel, isNew bool) accountFormModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[accountFieldName].Placeholder = "Account name"
	inputs[accountFieldLogin].Placeholder = "Login"
	inputs[accountFieldPassword].Placeholder = "Password"
	inputs[accountFieldPassword].EchoMode = textinput.EchoPassword
	inputs[accountFieldPassword].EchoCharacter = '*'
	inputs[accountFieldNotes].Placeholder = "Notes"
	inputs[accountFieldName].Focus()

	categoryIdx := 0
	for i, category := range categories {
		if category.CategoryID == seed.CategoryID {
			categoryIdx = i
			break
		}
	}

	title := "Create new account"
	if !isNew {
		title = fmt.Sprintf("Editing account: %d", seed.AccountID)
		inputs[accountFieldName].SetValue(seed.AccountName)
		inputs[accountFieldLogin].SetValue(seed.AccountLoginID)
		inputs[accountFieldPassword].SetValue(seed.AccountPassword)
		inputs[accountFieldNotes].SetValue(seed.Notes)
	}

	return accountFormModel{
		title:       title,
		isNew:       isNew,
		seed:        seed,
		categories:  categories,
		categoryIdx: categoryIdx,
		inputs:      inputs,
	}
}

func (m accountFormModel) fieldCount() int {
	return len(m.inputs) + 1 // text inputs plus the category picker
}

func (m *accountFormModel) setFocus(focus int) {
	m.focus = (focus + m.fieldCount()) % m.fieldCount()
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m accountFormModel) pickedCategoryID() int64 {
	if len(m.categories) == 0 {
		return m.seed.CategoryID
	}
	return m.categories[m.categoryIdx].CategoryID
}

func (m accountFormModel) draft() accountDraft {
	return accountDraft{
		name:       m.inputs[accountFieldName].Value(),
		loginID:    m.inputs[accountFieldLogin].Value(),
		password:   m.inputs[accountFieldPassword].Value(),
		notes:      m.inputs[accountFieldNotes].Value(),
		categoryID: m.pickedCategoryID(),
	}
}

// dirty reports whether closing the dialog would lose user input.
func (m accountFormModel) dirty() bool {
	draft := m.draft()
	if m.isNew {
		return strings.TrimSpace(draft.name) != "" ||
			strings.TrimSpace(draft.loginID) != "" ||
			draft.password != "" ||
			strings.TrimSpace(draft.notes) != ""
	}
	return draft.name != m.seed.AccountName ||
		draft.loginID != m.seed.AccountLoginID ||
		draft.password != m.seed.AccountPassword ||
		draft.notes != m.seed.Notes ||
		draft.categoryID != m.seed.CategoryID
}

func (m accountFormModel) pickedCategoryName() string {
	if len(m.categories) == 0 {
		return "-"
	}
	return m.categories[m.categoryIdx].CategoryName
}

func (m accountFormModel) View() string {
	picker := "  " + m.pickedCategoryName() + "  "
	if m.focus == accountFieldCategory {
		picker = selectedStyle.Render("< " + m.pickedCategoryName() + " >")
	}

	out := "Name      : [ " + m.inputs[accountFieldName].View() + " ]\n"
	out += "Login     : [ " + m.inputs[accountFieldLogin].View() + " ]\n"
	out += "Password  : [ " + m.inputs[accountFieldPassword].View() + " ]\n"
	out += "Notes     : [ " + m.inputs[accountFieldNotes].View() + " ]\n"
	out += "Category  : " + picker + "\n"
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.confirmDiscard {
		out += "\n" + overlayBoxStyle.Render("Discard changes?\n\ny yes    n no")
		return renderPage(m.title, strings.TrimRight(out, "\n"), "")
	}

	return renderPage(m.title, strings.TrimRight(out, "\n"), "tab: next field │ ←/→: pick category │ enter: save │ esc: cancel")
}
