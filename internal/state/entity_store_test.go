package state

import (
	"testing"

	"github.com/MKhiriev/go-account-mgr/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SubscribersSeeEveryMutation(t *testing.T) {
	s := NewStore()

	var seen []ChangeKind
	s.Subscribe(func(change Change) {
		seen = append(seen, change.Kind)
	})

	s.SetCategories([]models.CategoryModel{{CategoryID: 1, CategoryName: "Finance"}})
	s.AppendCategory(models.CategoryModel{CategoryID: 2, CategoryName: "Social"})
	s.SetAccounts([]models.AccountModel{{AccountID: 10, AccountName: "Gmail", CategoryID: 2}})
	s.RemoveAccount(10)

	assert.Equal(t, []ChangeKind{
		ChangeCategoriesReset,
		ChangeCategoryAdded,
		ChangeAccountsReset,
		ChangeAccountRemoved,
	}, seen)
}

func TestStore_UpdateAccountMergesIntoSharedPointer(t *testing.T) {
	s := NewStore()
	s.SetAccounts([]models.AccountModel{{AccountID: 10, AccountName: "Gmail", AccountLoginID: "me", CategoryID: 2}})

	held, ok := s.AccountByID(10)
	require.True(t, ok)

	updated := s.UpdateAccount(models.AccountModel{AccountID: 10, AccountName: "Gmail work", AccountLoginID: "me@work", CategoryID: 2})
	require.True(t, updated)

	// Every holder of the pointer observes the merge.
	assert.Equal(t, "Gmail work", held.AccountName)
	assert.Equal(t, "me@work", held.AccountLoginID)
}

func TestStore_UpdateAccount_UnknownIDIsRejected(t *testing.T) {
	s := NewStore()
	assert.False(t, s.UpdateAccount(models.AccountModel{AccountID: 99}))
}

func TestStore_RemoveCategoryPurgesItsAccounts(t *testing.T) {
	s := NewStore()
	s.SetCategories([]models.CategoryModel{
		{CategoryID: 1, CategoryName: "Finance"},
		{CategoryID: 2, CategoryName: "Social"},
	})
	s.SetAccounts([]models.AccountModel{
		{AccountID: 10, AccountName: "Gmail", CategoryID: 2},
		{AccountID: 11, AccountName: "Bank", CategoryID: 1},
		{AccountID: 12, AccountName: "Forum", CategoryID: 2},
	})

	stale, ok := s.AccountByID(10)
	require.True(t, ok)

	require.True(t, s.RemoveCategory(2))

	_, found := s.CategoryByID(2)
	assert.False(t, found)
	require.Len(t, s.Accounts(), 1)
	assert.Equal(t, int64(11), s.Accounts()[0].AccountID)

	// Stale holders see the record marked inert.
	assert.True(t, stale.Deleted)
}

func TestStore_RemoveCategory_UnknownIDIsRejected(t *testing.T) {
	s := NewStore()
	s.SetCategories([]models.CategoryModel{{CategoryID: 1, CategoryName: "Finance"}})

	assert.False(t, s.RemoveCategory(99))
	assert.Len(t, s.Categories(), 1)
}

func TestStore_AppendAccountReturnsSharedIdentity(t *testing.T) {
	s := NewStore()

	stored := s.AppendAccount(models.AccountModel{AccountID: 10, AccountName: "Gmail", CategoryID: 2})

	loaded, ok := s.AccountByID(10)
	require.True(t, ok)
	assert.Same(t, stored, loaded)
}
