package state

import (
	"strings"

	"github.com/MKhiriev/go-account-mgr/models"
)

// CategoryNode is a transient tree-rendering wrapper around a category.
// Nodes are rebuilt from scratch on every RebuildTree call; only the
// expansion and selection flags are carried across rebuilds, and those by
// name matching, never by node identity.
type CategoryNode struct {
	CategoryID int64
	Name       string
	Children   []*AccountNode
	Expanded   bool
	Selected   bool
}

// AccountNode is a transient tree-rendering wrapper around an account. The
// parent link is a category id key rather than a pointer, so the two node
// types never form an ownership cycle. Expanded doubles as the
// "details shown" flag for the account row.
type AccountNode struct {
	AccountID        int64
	Name             string
	ParentCategoryID int64
	Expanded         bool
	Selected         bool
}

// treeMemory is the expansion state captured from a previous tree.
//
// Matching is by name. This is deliberate: the original behavior keeps a
// node expanded across a rename-free rebuild even when ids change, and
// collapses nothing as long as names are stable. With duplicate names the
// state bleeds between same-named nodes; that trade-off is kept as is.
type treeMemory struct {
	expandedCategories map[string]bool
	childAccounts      map[string]bool
	populatedParents   map[string]bool
}

func captureTreeMemory(prev []*CategoryNode) treeMemory {
	memory := treeMemory{
		expandedCategories: map[string]bool{},
		childAccounts:      map[string]bool{},
		populatedParents:   map[string]bool{},
	}
	for _, categoryNode := range prev {
		if categoryNode.Expanded {
			memory.expandedCategories[categoryNode.Name] = true
		}
		if len(categoryNode.Children) > 0 {
			memory.populatedParents[categoryNode.Name] = true
		}
		// Every traversed child name is captured, not only expanded ones;
		// re-expansion therefore matches any account that was present in
		// the previous tree. Preserved source behavior.
		for _, accountNode := range categoryNode.Children {
			memory.childAccounts[accountNode.Name] = true
		}
	}
	return memory
}

// RebuildTree derives a fresh category/account tree from a flat snapshot.
//
// nameFilter is matched as a case-insensitive substring of the category
// name; an empty filter keeps every category. Account children attach only
// for categories whose accounts are present in the accounts slice; the
// slice is the lazily loaded working set, so unselected categories stay
// childless until they are selected. Expansion state is restored from prev
// by name (see treeMemory).
//
// The function is pure: it never mutates its inputs and has no side
// effects beyond the returned tree.
func RebuildTree(categories []models.CategoryModel, accounts []*models.AccountModel, nameFilter string, prev []*CategoryNode) []*CategoryNode {
	memory := captureTreeMemory(prev)

	wantedName := strings.ToLower(strings.TrimSpace(nameFilter))

	childrenByCategory := map[int64][]*models.AccountModel{}
	for _, account := range accounts {
		childrenByCategory[account.CategoryID] = append(childrenByCategory[account.CategoryID], account)
	}

	tree := make([]*CategoryNode, 0, len(categories))
	for _, category := range categories {
		if wantedName != "" && !strings.Contains(strings.ToLower(category.CategoryName), wantedName) {
			continue
		}

		node := &CategoryNode{
			CategoryID: category.CategoryID,
			Name:       category.CategoryName,
			Expanded:   memory.expandedCategories[category.CategoryName],
		}
		for _, account := range childrenByCategory[category.CategoryID] {
			node.Children = append(node.Children, &AccountNode{
				AccountID:        account.AccountID,
				Name:             account.AccountName,
				ParentCategoryID: category.CategoryID,
				Expanded:         memory.childAccounts[account.AccountName],
			})
		}
		tree = append(tree, node)
	}
	return tree
}

// FindCategoryNode returns the node wrapping categoryID, or nil.
func FindCategoryNode(tree []*CategoryNode, categoryID int64) *CategoryNode {
	for _, node := range tree {
		if node.CategoryID == categoryID {
			return node
		}
	}
	return nil
}

// FindAccountNode returns the node wrapping accountID, or nil.
func FindAccountNode(tree []*CategoryNode, accountID int64) *AccountNode {
	for _, categoryNode := range tree {
		for _, accountNode := range categoryNode.Children {
			if accountNode.AccountID == accountID {
				return accountNode
			}
		}
	}
	return nil
}
