package state

import (
	"context"

	"github.com/MKhiriev/go-account-mgr/models"
)

// AccountEditor runs the external account editor workflow. The editor owns
// its own save step: when committed is true the returned account has already
// been persisted and carries its real id and store-set timestamps.
// Validation and persistence failures keep the editor open; err reports only
// failures of the workflow itself.
type AccountEditor interface {
	EditAccount(ctx context.Context, seed *models.AccountModel, categories []models.CategoryModel, isNew bool) (result models.AccountModel, committed bool, err error)
}

// CategoryEditor runs the external category editor workflow, with the same
// commit contract as AccountEditor.
type CategoryEditor interface {
	EditCategory(ctx context.Context, seed models.CategoryModel, isNew bool) (result models.CategoryModel, committed bool, err error)
}

// Confirmer asks the user a yes/no question before a destructive operation.
type Confirmer interface {
	Confirm(title, question string) bool
}

// MessageSink receives non-blocking user notifications. Implementations must
// not panic and must not block the calling goroutine.
type MessageSink interface {
	Notify(message string)
	NotifyError(err error)
}

// EditableCollection is implemented by grid collections that can hold an
// in-progress row edit. The filter engine settles pending edits through this
// interface before swapping a view's predicates.
type EditableCollection interface {
	IsAddingNew() bool
	IsEditingItem() bool
	CommitNew() error
	CommitEdit() error
}
