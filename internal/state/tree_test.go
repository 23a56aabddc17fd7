package state

import (
	"testing"

	"github.com/MKhiriev/go-account-mgr/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCategories() []models.CategoryModel {
	return []models.CategoryModel{
		{CategoryID: 1, CategoryName: "Finance"},
		{CategoryID: 2, CategoryName: "Social"},
	}
}

func TestRebuildTree_CategoryNameFilter(t *testing.T) {
	// Two categories, no accounts loaded, search text "fin": exactly one
	// node survives.
	tree := RebuildTree(testCategories(), nil, "fin", nil)

	require.Len(t, tree, 1)
	assert.Equal(t, "Finance", tree[0].Name)
	assert.Empty(t, tree[0].Children)
}

func TestRebuildTree_EmptyFilterKeepsEveryCategory(t *testing.T) {
	tree := RebuildTree(testCategories(), nil, "", nil)
	require.Len(t, tree, 2)
}

func TestRebuildTree_PreservesExpansionByName(t *testing.T) {
	prev := RebuildTree(testCategories(), nil, "", nil)
	prev[0].Expanded = true // Finance

	tree := RebuildTree(testCategories(), nil, "", prev)

	require.Len(t, tree, 2)
	assert.True(t, tree[0].Expanded, "Finance was expanded before the rebuild")
	assert.False(t, tree[1].Expanded)
}

func TestRebuildTree_ExpansionSurvivesIDChange(t *testing.T) {
	// Matching is by name: the category keeps its expansion even though its
	// id changed between rebuilds.
	prev := RebuildTree(testCategories(), nil, "", nil)
	prev[0].Expanded = true

	renumbered := []models.CategoryModel{{CategoryID: 7, CategoryName: "Finance"}}
	tree := RebuildTree(renumbered, nil, "", prev)

	require.Len(t, tree, 1)
	assert.True(t, tree[0].Expanded)
}

func TestRebuildTree_AttachesLoadedAccountsOnly(t *testing.T) {
	accounts := []*models.AccountModel{
		{AccountID: 10, AccountName: "Gmail", CategoryID: 2},
		{AccountID: 11, AccountName: "Forum", CategoryID: 2},
	}

	tree := RebuildTree(testCategories(), accounts, "", nil)

	require.Len(t, tree, 2)
	assert.Empty(t, tree[0].Children, "no accounts loaded for Finance")
	require.Len(t, tree[1].Children, 2)
	assert.Equal(t, int64(2), tree[1].Children[0].ParentCategoryID)
}

func TestRebuildTree_ReexpandsPreviouslyPresentAccounts(t *testing.T) {
	accounts := []*models.AccountModel{{AccountID: 10, AccountName: "Gmail", CategoryID: 2}}

	prev := RebuildTree(testCategories(), accounts, "", nil)
	require.Len(t, prev[1].Children, 1)

	tree := RebuildTree(testCategories(), accounts, "", prev)

	// Account capture records every traversed child name, so an account
	// present in the previous tree comes back expanded.
	assert.True(t, tree[1].Children[0].Expanded)
}

func TestRebuildTree_IsPureWithRespectToInputs(t *testing.T) {
	categories := testCategories()
	accounts := []*models.AccountModel{{AccountID: 10, AccountName: "Gmail", CategoryID: 2}}
	prev := RebuildTree(categories, accounts, "", nil)
	prev[0].Expanded = true

	_ = RebuildTree(categories, accounts, "fin", prev)

	assert.True(t, prev[0].Expanded, "previous tree must not be mutated")
	assert.Len(t, categories, 2)
	assert.Equal(t, "Gmail", accounts[0].AccountName)
}

func TestFindNodes(t *testing.T) {
	accounts := []*models.AccountModel{{AccountID: 10, AccountName: "Gmail", CategoryID: 2}}
	tree := RebuildTree(testCategories(), accounts, "", nil)

	require.NotNil(t, FindCategoryNode(tree, 2))
	assert.Nil(t, FindCategoryNode(tree, 99))
	require.NotNil(t, FindAccountNode(tree, 10))
	assert.Nil(t, FindAccountNode(tree, 99))
}
