package models

// UnassignedID is the sentinel identifier carried by an entity that has been
// created in memory but not yet persisted. The repository assigns the real
// identifier during insert.
const UnassignedID int64 = -999

// CategoryModel represents a top-level grouping of accounts.
// The category name is intended to be unique, but uniqueness is only checked
// at insert/rename time by the service layer, never enforced structurally.
type CategoryModel struct {
	// CategoryID is the unique identifier of the category.
	CategoryID int64

	// CategoryName is the display name of the category.
	CategoryName string
}

// TableName returns the name of the database table
// associated with the CategoryModel.
func (c CategoryModel) TableName() string {
	return "acct_category"
}
