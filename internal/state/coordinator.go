package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-mgr/internal/logger"
	"github.com/MKhiriev/go-account-mgr/internal/service"
	"github.com/MKhiriev/go-account-mgr/internal/store"
	"github.com/MKhiriev/go-account-mgr/models"
)

// NodeKind identifies what the selected tree node wraps.
type NodeKind int

const (
	NodeNone NodeKind = iota
	NodeCategory
	NodeAccount
)

// Selection is the currently selected tree node. For an account selection
// CategoryID carries the parent category key.
type Selection struct {
	Kind       NodeKind
	CategoryID int64
	AccountID  int64
}

// Tab names the detail tab the UI should display for the current selection.
type Tab int

const (
	TabBrowse Tab = iota
	TabCategoryDetail
	TabAccountDetail
)

// EntityKind distinguishes the two editor workflows.
type EntityKind int

const (
	KindCategory EntityKind = iota
	KindAccount
)

// Ports groups the external capabilities the coordinator drives but does not
// implement: the two editor workflows, the destructive-action confirmer and
// the notification sink.
type Ports struct {
	AccountEditor  AccountEditor
	CategoryEditor CategoryEditor
	Confirmer      Confirmer
	Sink           MessageSink
}

// Coordinator drives the add/edit/delete workflows and reconciles their
// results into the entity store, the filter engine and the tree, keeping the
// three views of the same snapshot from diverging.
//
// Per-kind editor state machine: Idle → EditorOpen → {Committed, Cancelled}
// → Idle. While any editor is open every add/edit/delete command is
// disabled; the Can* methods derive enablement from selection and editor
// state. All in-memory mutation happens only after the repository call
// behind it succeeded; local-only operations (filter, expansion, selection)
// never touch the repository.
type Coordinator struct {
	categories service.CategoryService
	accounts   service.AccountService

	store   *Store
	filters *FilterEngine
	ports   Ports

	logger *logger.Logger

	tree       []*CategoryNode
	selection  Selection
	activeTab  Tab
	editorOpen map[EntityKind]bool
}

func NewCoordinator(entityStore *Store, filters *FilterEngine, services *service.Services, ports Ports, logger *logger.Logger) *Coordinator {
	c := &Coordinator{
		categories: services.CategoryService,
		accounts:   services.AccountService,
		store:      entityStore,
		filters:    filters,
		ports:      ports,
		logger:     logger,
		editorOpen: map[EntityKind]bool{},
	}

	// The tree is a pure function of (store snapshot, filter text, previous
	// tree); re-derive it on every store change and on every categories
	// filter change instead of patching nodes in place.
	entityStore.Subscribe(func(Change) { c.rebuild() })
	filters.Subscribe(func(view View) {
		if view == ViewCategories {
			c.rebuild()
		}
	})

	return c
}

// LoadData replaces the category snapshot from the repository and re-derives
// the tree. The account working set is left untouched.
func (c *Coordinator) LoadData(ctx context.Context) error {
	categories, err := c.categories.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("error loading categories: %w", err)
	}
	c.logger.Debug().Int("categories", len(categories)).Msg("category snapshot reloaded")
	c.store.SetCategories(categories)
	return nil
}

// Tree returns the current derived tree.
func (c *Coordinator) Tree() []*CategoryNode {
	return c.tree
}

// Selection returns the currently selected node.
func (c *Coordinator) Selection() Selection {
	return c.selection
}

// ActiveTab returns the detail tab the current selection calls for.
func (c *Coordinator) ActiveTab() Tab {
	return c.activeTab
}

func (c *Coordinator) rebuild() {
	c.tree = RebuildTree(c.store.Categories(), c.store.Accounts(), c.filters.FilterText(ViewCategories), c.tree)
	c.applySelectionMarks()
}

func (c *Coordinator) applySelectionMarks() {
	for _, categoryNode := range c.tree {
		categoryNode.Selected = c.selection.Kind == NodeCategory && categoryNode.CategoryID == c.selection.CategoryID
		for _, accountNode := range categoryNode.Children {
			accountNode.Selected = c.selection.Kind == NodeAccount && accountNode.AccountID == c.selection.AccountID
		}
	}
}

// refreshStale re-derives everything after a stale reference was detected.
// Best effort: a reload failure is notified, never fatal.
func (c *Coordinator) refreshStale(ctx context.Context) {
	if err := c.LoadData(ctx); err != nil {
		c.ports.Sink.NotifyError(err)
	}
}

// ─── Selection ───

// SelectCategory reacts to a category tree node becoming selected: the
// accounts grid is cleared and the category detail tab activates. A stale id
// degrades to a no-op plus refresh.
func (c *Coordinator) SelectCategory(ctx context.Context, categoryID int64) {
	if _, ok := c.store.CategoryByID(categoryID); !ok {
		c.ports.Sink.Notify("Selected category no longer exists")
		c.refreshStale(ctx)
		return
	}

	c.selection = Selection{Kind: NodeCategory, CategoryID: categoryID}
	c.activeTab = TabCategoryDetail
	c.store.ClearAccounts()
}

// SelectAccount reacts to an account tree node becoming selected: the parent
// category's accounts are loaded unless the target row is already
// materialized, the full record is fetched and merged, and the account
// detail tab activates. A vanished account degrades to a no-op plus refresh.
func (c *Coordinator) SelectAccount(ctx context.Context, accountID, parentCategoryID int64) {
	if _, loaded := c.store.AccountByID(accountID); !loaded {
		accounts, err := c.accounts.ListAccountsByCategory(ctx, parentCategoryID)
		if err != nil {
			c.ports.Sink.NotifyError(err)
			return
		}
		c.store.SetAccounts(accounts)
	}

	full, err := c.accounts.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			c.ports.Sink.Notify("Selected account no longer exists")
			c.refreshStale(ctx)
			return
		}
		c.ports.Sink.NotifyError(err)
		return
	}

	c.selection = Selection{Kind: NodeAccount, CategoryID: parentCategoryID, AccountID: accountID}
	c.activeTab = TabAccountDetail
	if !c.store.UpdateAccount(full) {
		c.store.AppendAccount(full)
	}
}

// ToggleCategoryExpansion flips a category node's expansion flag, loading
// the category's accounts on first expansion so the children can attach.
func (c *Coordinator) ToggleCategoryExpansion(ctx context.Context, categoryID int64) {
	node := FindCategoryNode(c.tree, categoryID)
	if node == nil {
		return
	}

	if !node.Expanded && len(node.Children) == 0 {
		accounts, err := c.accounts.ListAccountsByCategory(ctx, categoryID)
		if err != nil {
			c.ports.Sink.NotifyError(err)
			return
		}
		node.Expanded = true
		c.store.SetAccounts(accounts) // notifies; rebuild reattaches children
		return
	}

	node.Expanded = !node.Expanded
}

// ToggleAccountDetails flips an account node's details-shown flag.
func (c *Coordinator) ToggleAccountDetails(accountID int64) {
	if node := FindAccountNode(c.tree, accountID); node != nil {
		node.Expanded = !node.Expanded
	}
}

// ClearSelection resets the selection and returns to the browse tab.
func (c *Coordinator) ClearSelection() {
	c.selection = Selection{}
	c.activeTab = TabBrowse
	c.applySelectionMarks()
}

// ─── Command enablement ───

func (c *Coordinator) dialogOpen() bool {
	return c.editorOpen[KindCategory] || c.editorOpen[KindAccount]
}

// CanAddCategory reports whether the add-category command is enabled.
func (c *Coordinator) CanAddCategory() bool {
	return !c.dialogOpen()
}

// CanEditCategory reports whether the edit-category command is enabled.
func (c *Coordinator) CanEditCategory() bool {
	return !c.dialogOpen() && c.selection.Kind == NodeCategory
}

// CanDeleteCategory reports whether the delete-category command is enabled.
func (c *Coordinator) CanDeleteCategory() bool {
	return !c.dialogOpen() && c.selection.Kind == NodeCategory
}

// CanAddAccount reports whether the add-account command is enabled; a parent
// category must be determinable from the selection.
func (c *Coordinator) CanAddAccount() bool {
	return !c.dialogOpen() && c.selection.Kind != NodeNone
}

// CanEditAccount reports whether the edit-account command is enabled.
func (c *Coordinator) CanEditAccount() bool {
	return !c.dialogOpen() && c.selection.Kind == NodeAccount
}

// CanDeleteAccount reports whether the delete-account command is enabled.
func (c *Coordinator) CanDeleteAccount() bool {
	return !c.dialogOpen() && c.selection.Kind == NodeAccount
}

// ─── Category workflows ───

// AddCategory runs the add-category workflow: a blank category carrying the
// unassigned-id sentinel seeds the editor; the editor performs its own save
// and returns the persisted record, which is appended to the snapshot and
// becomes the selection.
func (c *Coordinator) AddCategory(ctx context.Context) {
	if !c.CanAddCategory() {
		return
	}
	c.editorOpen[KindCategory] = true
	defer func() { c.editorOpen[KindCategory] = false }()

	seed := models.CategoryModel{CategoryID: models.UnassignedID}
	result, committed, err := c.ports.CategoryEditor.EditCategory(ctx, seed, true)
	if err != nil {
		c.ports.Sink.NotifyError(err)
		return
	}
	if !committed {
		return
	}

	c.store.AppendCategory(result)
	c.selection = Selection{Kind: NodeCategory, CategoryID: result.CategoryID}
	c.activeTab = TabCategoryDetail
	c.applySelectionMarks()
}

// EditCategory runs the rename workflow for the selected category.
func (c *Coordinator) EditCategory(ctx context.Context) {
	if !c.CanEditCategory() {
		return
	}

	seed, ok := c.store.CategoryByID(c.selection.CategoryID)
	if !ok {
		c.ports.Sink.Notify("Selected category no longer exists")
		c.refreshStale(ctx)
		return
	}

	c.editorOpen[KindCategory] = true
	defer func() { c.editorOpen[KindCategory] = false }()

	result, committed, err := c.ports.CategoryEditor.EditCategory(ctx, seed, false)
	if err != nil {
		c.ports.Sink.NotifyError(err)
		return
	}
	if !committed {
		return
	}

	if !c.store.UpdateCategory(result) {
		c.refreshStale(ctx)
	}
}

// DeleteCategory deletes the selected category after confirmation. The
// persistence layer cascades to the category's accounts; on success the
// snapshot is purged the same way, the selection cleared and the category
// list reloaded so combobox sources stay in sync.
func (c *Coordinator) DeleteCategory(ctx context.Context) {
	if !c.CanDeleteCategory() {
		return
	}
	categoryID := c.selection.CategoryID

	question := "Delete this category?"
	if has, err := c.categories.CategoryHasAccounts(ctx, categoryID); err == nil && has {
		question = "Delete this category and all of its accounts?"
	}
	if !c.ports.Confirmer.Confirm("Delete category", question) {
		return
	}

	if err := c.categories.DeleteCategory(ctx, categoryID); err != nil {
		c.ports.Sink.NotifyError(err)
		return
	}

	c.logger.Info().Int64("category_id", categoryID).Msg("category purged from views after cascade delete")
	c.store.RemoveCategory(categoryID)
	c.ClearSelection()

	categories, err := c.categories.ListCategories(ctx)
	if err != nil {
		c.ports.Sink.NotifyError(err)
		return
	}
	c.store.SetCategories(categories)
}

// ─── Account workflows ───

// parentCategoryID resolves the category an added account should belong to.
func (c *Coordinator) parentCategoryID() int64 {
	return c.selection.CategoryID
}

// AddAccount runs the add-account workflow under the selected category.
func (c *Coordinator) AddAccount(ctx context.Context) {
	if !c.CanAddAccount() {
		return
	}
	c.editorOpen[KindAccount] = true
	defer func() { c.editorOpen[KindAccount] = false }()

	seed := &models.AccountModel{
		AccountID:  models.UnassignedID,
		CategoryID: c.parentCategoryID(),
	}
	result, committed, err := c.ports.AccountEditor.EditAccount(ctx, seed, c.store.Categories(), true)
	if err != nil {
		c.ports.Sink.NotifyError(err)
		return
	}
	if !committed {
		return
	}

	c.store.AppendAccount(result)
	c.selection = Selection{Kind: NodeAccount, CategoryID: result.CategoryID, AccountID: result.AccountID}
	c.activeTab = TabAccountDetail
	c.applySelectionMarks()
}

// EditAccount runs the edit workflow for the selected account. The editor is
// seeded with the live record under an edit snapshot: mutations it performs
// are visible to every holder before commit, and cancelling restores the
// snapshot.
func (c *Coordinator) EditAccount(ctx context.Context) {
	if !c.CanEditAccount() {
		return
	}

	live, ok := c.store.AccountByID(c.selection.AccountID)
	if !ok {
		c.ports.Sink.Notify("Selected account no longer exists")
		c.refreshStale(ctx)
		return
	}

	c.editorOpen[KindAccount] = true
	defer func() { c.editorOpen[KindAccount] = false }()

	live.BeginEdit()
	result, committed, err := c.ports.AccountEditor.EditAccount(ctx, live, c.store.Categories(), false)
	if err != nil {
		live.CancelEdit()
		c.ports.Sink.NotifyError(err)
		return
	}
	if !committed {
		live.CancelEdit()
		return
	}

	live.EndEdit()
	c.store.UpdateAccount(result)
}

// DeleteAccount deletes the selected account after confirmation.
func (c *Coordinator) DeleteAccount(ctx context.Context) {
	if !c.CanDeleteAccount() {
		return
	}
	accountID := c.selection.AccountID

	if !c.ports.Confirmer.Confirm("Delete account", "Delete this account?") {
		return
	}

	if err := c.accounts.DeleteAccount(ctx, accountID); err != nil {
		c.ports.Sink.NotifyError(err)
		return
	}

	c.store.RemoveAccount(accountID)
	c.ClearSelection()
}
