package state

import (
	"strings"

	"github.com/MKhiriev/go-account-mgr/models"
)

// View names one of the two filterable grids.
type View int

const (
	ViewCategories View = iota
	ViewAccounts
)

// String returns the view name used in log entries and error messages.
func (v View) String() string {
	switch v {
	case ViewCategories:
		return "categories"
	case ViewAccounts:
		return "accounts"
	default:
		return "unknown"
	}
}

// CategoryPredicate is one row test of the categories view.
type CategoryPredicate func(models.CategoryModel) bool

// AccountPredicate is one row test of the accounts view.
type AccountPredicate func(*models.AccountModel) bool

// FilterEngine maintains the per-view predicate sets and derives each grid's
// visible row set from the Store snapshot. A view's visible set is the
// conjunction of its predicates; an empty predicate list keeps every row.
//
// Filtering is a purely local operation: it never touches the repository and
// never mutates the Store.
type FilterEngine struct {
	store *Store
	sink  MessageSink

	categoryFilterText string
	accountFilterText  string

	categoryPredicates []CategoryPredicate
	accountPredicates  []AccountPredicate

	// Grid collections that can hold an in-progress row edit register
	// themselves here so pending edits are settled before a predicate swap.
	collections map[View]EditableCollection

	subscribers []func(View)
}

func NewFilterEngine(store *Store, sink MessageSink) *FilterEngine {
	return &FilterEngine{
		store:       store,
		sink:        sink,
		collections: map[View]EditableCollection{},
	}
}

// BindCollection registers the editable grid collection behind a view.
// Views without a bound collection skip the edit-settling step.
func (f *FilterEngine) BindCollection(view View, collection EditableCollection) {
	f.collections[view] = collection
}

// Subscribe registers fn to be called after every visible-set refresh of a
// view.
func (f *FilterEngine) Subscribe(fn func(View)) {
	f.subscribers = append(f.subscribers, fn)
}

func (f *FilterEngine) refresh(view View) {
	for _, fn := range f.subscribers {
		fn(view)
	}
}

// FilterText returns the current filter text of a view.
func (f *FilterEngine) FilterText(view View) string {
	if view == ViewCategories {
		return f.categoryFilterText
	}
	return f.accountFilterText
}

// SetFilterText replaces a view's predicate set from free-form search text.
// Empty text clears the predicates and refreshes unfiltered; non-empty text
// installs a single case-insensitive substring predicate over the row's
// display name. Setting the text a view already has is a no-op.
//
// Before the swap any in-progress row edit on the view's bound collection is
// committed; a commit failure is reported to the message sink as a
// FilterApplicationError and the predicate is applied regardless.
func (f *FilterEngine) SetFilterText(view View, text string) {
	if f.FilterText(view) == text {
		return
	}

	f.settlePendingEdit(view)

	switch view {
	case ViewCategories:
		f.categoryFilterText = text
		f.categoryPredicates = nil
		if text != "" {
			wanted := strings.ToLower(text)
			f.categoryPredicates = []CategoryPredicate{func(c models.CategoryModel) bool {
				return strings.Contains(strings.ToLower(c.CategoryName), wanted)
			}}
		}
	case ViewAccounts:
		f.accountFilterText = text
		f.accountPredicates = nil
		if text != "" {
			wanted := strings.ToLower(text)
			f.accountPredicates = []AccountPredicate{func(a *models.AccountModel) bool {
				return strings.Contains(strings.ToLower(a.AccountName), wanted)
			}}
		}
	}

	f.refresh(view)
}

func (f *FilterEngine) settlePendingEdit(view View) {
	collection, ok := f.collections[view]
	if !ok || collection == nil {
		return
	}

	var err error
	switch {
	case collection.IsAddingNew():
		err = collection.CommitNew()
	case collection.IsEditingItem():
		err = collection.CommitEdit()
	}
	if err != nil {
		f.sink.NotifyError(&FilterApplicationError{View: view, Err: err})
	}
}

// AddCategoryPredicate appends one more AND-composed predicate to the
// categories view and refreshes it.
func (f *FilterEngine) AddCategoryPredicate(p CategoryPredicate) {
	f.categoryPredicates = append(f.categoryPredicates, p)
	f.refresh(ViewCategories)
}

// AddAccountPredicate appends one more AND-composed predicate to the
// accounts view and refreshes it.
func (f *FilterEngine) AddAccountPredicate(p AccountPredicate) {
	f.accountPredicates = append(f.accountPredicates, p)
	f.refresh(ViewAccounts)
}

// VisibleCategories returns the categories passing every predicate of the
// categories view, in store order. Evaluation short-circuits on the first
// failing predicate.
func (f *FilterEngine) VisibleCategories() []models.CategoryModel {
	visible := make([]models.CategoryModel, 0, len(f.store.Categories()))
	for _, category := range f.store.Categories() {
		if categoryPasses(category, f.categoryPredicates) {
			visible = append(visible, category)
		}
	}
	return visible
}

// VisibleAccounts returns the loaded accounts passing every predicate of the
// accounts view, in store order. Evaluation short-circuits on the first
// failing predicate.
func (f *FilterEngine) VisibleAccounts() []*models.AccountModel {
	visible := make([]*models.AccountModel, 0, len(f.store.Accounts()))
	for _, account := range f.store.Accounts() {
		if accountPasses(account, f.accountPredicates) {
			visible = append(visible, account)
		}
	}
	return visible
}

func categoryPasses(category models.CategoryModel, predicates []CategoryPredicate) bool {
	for _, p := range predicates {
		if !p(category) {
			return false
		}
	}
	return true
}

func accountPasses(account *models.AccountModel, predicates []AccountPredicate) bool {
	for _, p := range predicates {
		if !p(account) {
			return false
		}
	}
	return true
}
