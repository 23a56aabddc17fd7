package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-mgr/internal/state"
	"github.com/MKhiriev/go-account-mgr/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusVisibleFor = 3 * time.Second

// treeRow is one visible line of the flattened category/account tree.
type treeRow struct {
	kind       state.NodeKind
	categoryID int64
	accountID  int64
	label      string
	depth      int
	expanded   bool
	selected   bool
}

// browseModel is the single top-level bubbletea model: the tree pane on the
// left, the tab the coordinator selects on the right, and the editor forms,
// the delete confirmation and the search inputs as modal states on top.
type browseModel struct {
	ctx         context.Context
	coordinator *state.Coordinator
	entities    *state.Store
	filters     *state.FilterEngine
	driver      *editorDriver
	confirmer   *armedConfirmer
	sink        *statusSink

	rows   []treeRow
	cursor int

	searching    bool
	searchTarget state.View
	searchInput  textinput.Model

	categoryForm *categoryFormModel
	accountForm  *accountFormModel

	confirming    bool
	confirmDelete state.NodeKind
	confirm       confirmModel

	reveal bool
	status string
}

func newBrowseModel(ctx context.Context, coordinator *state.Coordinator, entities *state.Store, filters *state.FilterEngine, driver *editorDriver, confirmer *armedConfirmer, sink *statusSink) browseModel {
	m := browseModel{
		ctx:         ctx,
		coordinator: coordinator,
		entities:    entities,
		filters:     filters,
		driver:      driver,
		confirmer:   confirmer,
		sink:        sink,
	}
	m.refreshRows()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

// refreshRows flattens the coordinator's tree into visible lines. Children of
// a collapsed category are not emitted.
func (m *browseModel) refreshRows() {
	rows := make([]treeRow, 0, len(m.coordinator.Tree()))
	for _, categoryNode := range m.coordinator.Tree() {
		rows = append(rows, treeRow{
			kind:       state.NodeCategory,
			categoryID: categoryNode.CategoryID,
			label:      categoryNode.Name,
			expanded:   categoryNode.Expanded,
			selected:   categoryNode.Selected,
		})
		if !categoryNode.Expanded {
			continue
		}
		for _, accountNode := range categoryNode.Children {
			rows = append(rows, treeRow{
				kind:       state.NodeAccount,
				categoryID: accountNode.ParentCategoryID,
				accountID:  accountNode.AccountID,
				label:      accountNode.Name,
				depth:      1,
				expanded:   accountNode.Expanded,
				selected:   accountNode.Selected,
			})
		}
	}

	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// drainSink moves buffered coordinator notifications into the status line.
func (m *browseModel) drainSink() {
	if messages := m.sink.drain(); len(messages) > 0 {
		m.status = strings.Join(messages, "; ")
	}
}

func (m browseModel) currentRow() (treeRow, bool) {
	if len(m.rows) == 0 || m.cursor < 0 || m.cursor >= len(m.rows) {
		return treeRow{}, false
	}
	return m.rows[m.cursor], true
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		m.status = "Copied " + msg.what + " to clipboard"
		return m, tea.Tick(statusVisibleFor, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case copyFailedMsg:
		m.status = "Copy failed: " + msg.err.Error()
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)

	switch {
	case m.confirming:
		if !isKey {
			return m, nil
		}
		return m.updateConfirm(keyMsg)
	case m.categoryForm != nil:
		return m.updateCategoryForm(msg)
	case m.accountForm != nil:
		return m.updateAccountForm(msg)
	case m.searching:
		return m.updateSearch(msg)
	}

	if !isKey {
		return m, nil
	}
	return m.updateBrowse(keyMsg)
}

// ─── Browse mode ───

func (m browseModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.enter):
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		if row.kind == state.NodeCategory {
			m.coordinator.SelectCategory(m.ctx, row.categoryID)
		} else {
			m.coordinator.SelectAccount(m.ctx, row.accountID, row.categoryID)
		}
		m.reveal = false
		m.drainSink()
		m.refreshRows()

	case key.Matches(msg, keys.tab):
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		if row.kind == state.NodeCategory {
			m.coordinator.ToggleCategoryExpansion(m.ctx, row.categoryID)
		} else {
			m.coordinator.ToggleAccountDetails(row.accountID)
		}
		m.drainSink()
		m.refreshRows()

	case key.Matches(msg, keys.esc):
		m.coordinator.ClearSelection()
		m.refreshRows()

	case key.Matches(msg, keys.addCategory):
		m.openAddCategory()

	case key.Matches(msg, keys.addAccount):
		m.openAddAccount()

	case key.Matches(msg, keys.edit):
		m.openEdit()

	case key.Matches(msg, keys.delete):
		m.requestDelete()

	case key.Matches(msg, keys.reveal):
		if m.coordinator.Selection().Kind == state.NodeAccount {
			m.reveal = !m.reveal
		}

	case key.Matches(msg, keys.copyPass):
		return m, m.copySelected("password")

	case key.Matches(msg, keys.copyLogin):
		return m, m.copySelected("login")

	case key.Matches(msg, keys.searchCat):
		m.openSearch(state.ViewCategories)

	case key.Matches(msg, keys.searchAcct):
		m.openSearch(state.ViewAccounts)
	}

	return m, nil
}

func (m *browseModel) openSearch(view state.View) {
	input := textinput.New()
	input.Placeholder = "Search " + view.String()
	input.Width = 40
	input.SetValue(m.filters.FilterText(view))
	input.Focus()

	m.searching = true
	m.searchTarget = view
	m.searchInput = input
}

func (m *browseModel) openAddCategory() {
	if !m.coordinator.CanAddCategory() {
		m.status = "Close the open dialog first"
		return
	}
	form := newCategoryForm(models.CategoryModel{CategoryID: models.UnassignedID}, true)
	m.categoryForm = &form
}

func (m *browseModel) openAddAccount() {
	if !m.coordinator.CanAddAccount() {
		m.status = "Select a category first"
		return
	}
	seed := models.AccountModel{
		AccountID:  models.UnassignedID,
		CategoryID: m.coordinator.Selection().CategoryID,
	}
	form := newAccountForm(seed, m.entities.Categories(), true)
	m.accountForm = &form
}

func (m *browseModel) openEdit() {
	selection := m.coordinator.Selection()
	switch selection.Kind {
	case state.NodeCategory:
		if !m.coordinator.CanEditCategory() {
			return
		}
		seed, ok := m.entities.CategoryByID(selection.CategoryID)
		if !ok {
			m.status = "Selected category no longer exists"
			return
		}
		form := newCategoryForm(seed, false)
		m.categoryForm = &form

	case state.NodeAccount:
		if !m.coordinator.CanEditAccount() {
			return
		}
		live, ok := m.entities.AccountByID(selection.AccountID)
		if !ok {
			m.status = "Selected account no longer exists"
			return
		}
		form := newAccountForm(*live, m.entities.Categories(), false)
		m.accountForm = &form

	default:
		m.status = "Nothing selected"
	}
}

// requestDelete runs the delete command once against the unarmed confirmer:
// the coordinator declines to delete but its confirmation question is
// captured, and the overlay opens with it.
func (m *browseModel) requestDelete() {
	kind := m.coordinator.Selection().Kind
	switch kind {
	case state.NodeCategory:
		if !m.coordinator.CanDeleteCategory() {
			return
		}
		m.coordinator.DeleteCategory(m.ctx)
	case state.NodeAccount:
		if !m.coordinator.CanDeleteAccount() {
			return
		}
		m.coordinator.DeleteAccount(m.ctx)
	default:
		m.status = "Nothing selected"
		return
	}

	m.confirming = true
	m.confirmDelete = kind
	m.confirm = confirmModel{title: m.confirmer.lastTitle, question: m.confirmer.lastQuestion}
}

func (m browseModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmer.armed = true
		if m.confirmDelete == state.NodeCategory {
			m.coordinator.DeleteCategory(m.ctx)
		} else {
			m.coordinator.DeleteAccount(m.ctx)
		}
		m.confirming = false
		m.drainSink()
		m.refreshRows()
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirming = false
	}
	return m, nil
}

func (m browseModel) copySelected(what string) tea.Cmd {
	selection := m.coordinator.Selection()
	if selection.Kind != state.NodeAccount {
		return nil
	}
	live, ok := m.entities.AccountByID(selection.AccountID)
	if !ok {
		return nil
	}

	value := live.AccountPassword
	if what == "login" {
		value = live.AccountLoginID
	}

	return func() tea.Msg {
		if err := clipboard.WriteAll(value); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{what: what}
	}
}

// ─── Search mode ───

func (m browseModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
			m.searching = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	// Filters apply as the user types.
	m.filters.SetFilterText(m.searchTarget, m.searchInput.Value())
	m.drainSink()
	m.refreshRows()
	return m, cmd
}

// ─── Category form ───

func (m browseModel) updateCategoryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.categoryForm

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if form.confirmDiscard {
			switch {
			case key.Matches(keyMsg, keys.yes):
				m.categoryForm = nil
			case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
				form.confirmDiscard = false
			}
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.esc):
			if form.dirty() {
				form.confirmDiscard = true
				return m, nil
			}
			m.categoryForm = nil
			return m, nil

		case key.Matches(keyMsg, keys.enter):
			m.submitCategoryForm()
			return m, nil
		}
	}

	var cmd tea.Cmd
	form.input, cmd = form.input.Update(msg)
	return m, cmd
}

func (m *browseModel) submitCategoryForm() {
	form := m.categoryForm
	draft := form.draft()
	m.driver.categoryDraft = &draft

	if form.isNew {
		m.coordinator.AddCategory(m.ctx)
	} else {
		m.coordinator.EditCategory(m.ctx)
	}

	if err := m.driver.takeError(); err != nil {
		// Validation and duplicate-name failures keep the dialog open.
		form.errMsg = humanizeError(err)
		return
	}

	m.categoryForm = nil
	m.drainSink()
	m.refreshRows()
}

// ─── Account form ───

func (m browseModel) updateAccountForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.accountForm

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if form.confirmDiscard {
			switch {
			case key.Matches(keyMsg, keys.yes):
				m.accountForm = nil
			case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
				form.confirmDiscard = false
			}
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.esc):
			if form.dirty() {
				form.confirmDiscard = true
				return m, nil
			}
			m.accountForm = nil
			return m, nil

		case key.Matches(keyMsg, keys.enter):
			m.submitAccountForm()
			return m, nil

		case key.Matches(keyMsg, keys.tab):
			form.setFocus(form.focus + 1)
			return m, nil

		case keyMsg.String() == "shift+tab":
			form.setFocus(form.focus - 1)
			return m, nil

		case keyMsg.String() == "left" && form.focus == accountFieldCategory:
			if form.categoryIdx > 0 {
				form.categoryIdx--
			}
			return m, nil

		case keyMsg.String() == "right" && form.focus == accountFieldCategory:
			if form.categoryIdx < len(form.categories)-1 {
				form.categoryIdx++
			}
			return m, nil
		}
	}

	if form.focus == accountFieldCategory {
		return m, nil
	}

	var cmd tea.Cmd
	form.inputs[form.focus], cmd = form.inputs[form.focus].Update(msg)
	return m, cmd
}

func (m *browseModel) submitAccountForm() {
	form := m.accountForm
	draft := form.draft()
	m.driver.accountDraft = &draft

	if form.isNew {
		m.coordinator.AddAccount(m.ctx)
	} else {
		m.coordinator.EditAccount(m.ctx)
	}

	if err := m.driver.takeError(); err != nil {
		form.errMsg = humanizeError(err)
		return
	}

	m.accountForm = nil
	m.drainSink()
	m.refreshRows()
}

// ─── View ───

func (m browseModel) View() string {
	if m.categoryForm != nil {
		return appStyle.Render(m.categoryForm.View())
	}
	if m.accountForm != nil {
		return appStyle.Render(m.accountForm.View())
	}
	if m.confirming {
		return appStyle.Render(m.confirm.View())
	}

	left := m.viewTree()
	right := m.viewDetailPane()
	body := lipgloss.JoinHorizontal(lipgloss.Top, treePaneStyle.Render(left), right)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Account Manager"))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString("Search " + m.searchTarget.String() + ": [ " + m.searchInput.View() + " ]\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: select │ tab: expand │ A: new category │ a: new account │ e: edit │ d: delete │ /: find category │ f: find account │ c/u: copy │ r: reveal │ q: quit"))

	return appStyle.Render(b.String())
}

func (m browseModel) viewTree() string {
	if len(m.rows) == 0 {
		return "No categories"
	}

	var b strings.Builder
	for i, row := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := cursor + strings.Repeat("  ", row.depth)
		if row.kind == state.NodeCategory {
			marker := "▸ "
			if row.expanded {
				marker = "▾ "
			}
			line += marker + row.label
		} else {
			line += "· " + fitText(row.label, 30)
		}

		if row.selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")

		if row.kind == state.NodeAccount && row.expanded {
			if account, ok := m.entities.AccountByID(row.accountID); ok {
				b.WriteString(cursorPad + strings.Repeat("  ", row.depth+1) + helpStyle.Render("login: "+account.AccountLoginID) + "\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

const cursorPad = "  "

func (m browseModel) viewDetailPane() string {
	switch m.coordinator.ActiveTab() {
	case state.TabCategoryDetail:
		return m.viewCategoriesGrid()
	case state.TabAccountDetail:
		return m.viewAccountsGrid()
	default:
		return helpStyle.Render("Select a node to see details")
	}
}

func (m browseModel) viewCategoriesGrid() string {
	var b strings.Builder
	b.WriteString("Categories")
	if text := m.filters.FilterText(state.ViewCategories); text != "" {
		b.WriteString("  (filter: " + text + ")")
	}
	b.WriteString("\n\n")

	b.WriteString("ID   │ Name\n")
	b.WriteString("─────┼──────────────────────────────\n")
	selection := m.coordinator.Selection()
	for _, category := range m.filters.VisibleCategories() {
		line := fmt.Sprintf("%-4d │ %s", category.CategoryID, fitText(category.CategoryName, 30))
		if selection.Kind == state.NodeCategory && selection.CategoryID == category.CategoryID {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m browseModel) viewAccountsGrid() string {
	var b strings.Builder
	b.WriteString("Accounts")
	if text := m.filters.FilterText(state.ViewAccounts); text != "" {
		b.WriteString("  (filter: " + text + ")")
	}
	b.WriteString("\n\n")

	b.WriteString("ID   │ Name                 │ Login\n")
	b.WriteString("─────┼──────────────────────┼──────────────────────\n")
	selection := m.coordinator.Selection()
	for _, account := range m.filters.VisibleAccounts() {
		line := fmt.Sprintf("%-4d │ %-20s │ %s",
			account.AccountID,
			fitText(account.AccountName, 20),
			fitText(account.AccountLoginID, 22),
		)
		if selection.Kind == state.NodeAccount && selection.AccountID == account.AccountID {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if selection.Kind == state.NodeAccount {
		if account, ok := m.entities.AccountByID(selection.AccountID); ok {
			b.WriteString("\n")
			b.WriteString("Name      : " + account.AccountName + "\n")
			b.WriteString("Login     : " + account.AccountLoginID + "\n")
			b.WriteString("Password  : " + maskSecret(account.AccountPassword, m.reveal) + "  [r: reveal]\n")
			b.WriteString("Notes     : " + account.Notes + "\n")
			b.WriteString("Created   : " + timeOrDash(account.DateCreated) + "\n")
			b.WriteString("Modified  : " + timeOrDash(account.DateModified) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
