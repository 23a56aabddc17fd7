package state

import "github.com/MKhiriev/go-account-mgr/models"

// ChangeKind identifies the kind of mutation a Store notification describes.
type ChangeKind int

const (
	ChangeCategoriesReset ChangeKind = iota
	ChangeAccountsReset
	ChangeCategoryAdded
	ChangeCategoryUpdated
	ChangeCategoryRemoved
	ChangeAccountAdded
	ChangeAccountUpdated
	ChangeAccountRemoved
)

// Change describes one Store mutation. CategoryID/AccountID are set when the
// change concerns a single entity.
type Change struct {
	Kind       ChangeKind
	CategoryID int64
	AccountID  int64
}

// Store holds the current in-memory snapshot of categories and accounts.
// The accounts slice is the lazily loaded working set of the selected
// category, not the full table. Every mutation notifies subscribers, so the
// tree and the grid views are re-derived rather than patched in place.
//
// The Store is confined to a single goroutine; it performs no locking.
type Store struct {
	categories []models.CategoryModel
	accounts   []*models.AccountModel

	subscribers []func(Change)
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers fn to be called synchronously after every mutation.
// Subscriptions cannot be removed; the Store lives as long as the session.
func (s *Store) Subscribe(fn func(Change)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify(change Change) {
	for _, fn := range s.subscribers {
		fn(change)
	}
}

// Categories returns the current category snapshot. Callers must not mutate
// the returned slice.
func (s *Store) Categories() []models.CategoryModel {
	return s.categories
}

// Accounts returns the currently loaded account working set. Callers must
// not add or remove elements; field mutation happens only through the edit
// snapshot protocol on the models.
func (s *Store) Accounts() []*models.AccountModel {
	return s.accounts
}

// CategoryByID looks a category up in the snapshot.
func (s *Store) CategoryByID(categoryID int64) (models.CategoryModel, bool) {
	for _, c := range s.categories {
		if c.CategoryID == categoryID {
			return c, true
		}
	}
	return models.CategoryModel{}, false
}

// AccountByID looks an account up in the loaded working set.
func (s *Store) AccountByID(accountID int64) (*models.AccountModel, bool) {
	for _, a := range s.accounts {
		if a.AccountID == accountID {
			return a, true
		}
	}
	return nil, false
}

// SetCategories replaces the category snapshot wholesale.
func (s *Store) SetCategories(categories []models.CategoryModel) {
	s.categories = categories
	s.notify(Change{Kind: ChangeCategoriesReset})
}

// SetAccounts replaces the account working set wholesale.
func (s *Store) SetAccounts(accounts []models.AccountModel) {
	s.accounts = make([]*models.AccountModel, 0, len(accounts))
	for i := range accounts {
		account := accounts[i]
		s.accounts = append(s.accounts, &account)
	}
	s.notify(Change{Kind: ChangeAccountsReset})
}

// ClearAccounts empties the account working set.
func (s *Store) ClearAccounts() {
	s.accounts = nil
	s.notify(Change{Kind: ChangeAccountsReset})
}

// AppendCategory adds a freshly persisted category to the snapshot.
func (s *Store) AppendCategory(category models.CategoryModel) {
	s.categories = append(s.categories, category)
	s.notify(Change{Kind: ChangeCategoryAdded, CategoryID: category.CategoryID})
}

// UpdateCategory replaces the stored fields of an existing category.
// Reports false when the id is not in the snapshot; the snapshot is left
// unchanged in that case.
func (s *Store) UpdateCategory(category models.CategoryModel) bool {
	for i := range s.categories {
		if s.categories[i].CategoryID == category.CategoryID {
			s.categories[i] = category
			s.notify(Change{Kind: ChangeCategoryUpdated, CategoryID: category.CategoryID})
			return true
		}
	}
	return false
}

// RemoveCategory drops a category from the snapshot together with every
// loaded account that references it, mirroring the persistence-layer cascade.
// Reports false when the id is not in the snapshot.
func (s *Store) RemoveCategory(categoryID int64) bool {
	found := false
	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.CategoryID == categoryID {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return false
	}
	s.categories = kept

	keptAccounts := s.accounts[:0]
	for _, a := range s.accounts {
		if a.CategoryID == categoryID {
			a.Deleted = true
			continue
		}
		keptAccounts = append(keptAccounts, a)
	}
	s.accounts = keptAccounts

	s.notify(Change{Kind: ChangeCategoryRemoved, CategoryID: categoryID})
	return true
}

// AppendAccount adds a freshly persisted account to the working set and
// returns the stored pointer, which is the identity every view shares.
func (s *Store) AppendAccount(account models.AccountModel) *models.AccountModel {
	stored := &account
	s.accounts = append(s.accounts, stored)
	s.notify(Change{Kind: ChangeAccountAdded, CategoryID: account.CategoryID, AccountID: account.AccountID})
	return stored
}

// UpdateAccount merges every mutable field of src into the already-loaded
// account with the same id, so all holders of the shared pointer observe the
// update. Reports false when the id is not loaded.
func (s *Store) UpdateAccount(src models.AccountModel) bool {
	existing, ok := s.AccountByID(src.AccountID)
	if !ok {
		return false
	}
	existing.MergeFrom(src)
	s.notify(Change{Kind: ChangeAccountUpdated, CategoryID: src.CategoryID, AccountID: src.AccountID})
	return true
}

// RemoveAccount drops one account from the working set, marking the record
// inert for any stale holder. Reports false when the id is not loaded.
func (s *Store) RemoveAccount(accountID int64) bool {
	for i, a := range s.accounts {
		if a.AccountID == accountID {
			a.Deleted = true
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			s.notify(Change{Kind: ChangeAccountRemoved, CategoryID: a.CategoryID, AccountID: accountID})
			return true
		}
	}
	return false
}
