package models

import "time"

// Password encryption flag values stored in the is_password_encrypted column.
// The flag is passed through opaquely by everything above the store layer.
const (
	PasswordEncrypted    = "Y"
	PasswordNotEncrypted = "N"
)

// AccountModel represents a single stored credential owned by exactly one
// category. AccountPassword holds either ciphertext or plaintext depending on
// IsPasswordEncrypted; only the store layer interprets the flag.
type AccountModel struct {
	// AccountID is the unique identifier of the account.
	AccountID int64

	// AccountName is the display name of the account (e.g. "Gmail").
	AccountName string

	// AccountLoginID is the login identifier used for the account.
	AccountLoginID string

	// AccountPassword is the stored password. Treated as opaque text by all
	// layers except the store, which encrypts on write and decrypts on read.
	AccountPassword string

	// Notes is optional free-form text attached to the account.
	Notes string

	// DateCreated is set once by the store when the account is inserted.
	DateCreated *time.Time

	// DateModified is set by the store on every update.
	DateModified *time.Time

	// CategoryID references the owning category. After any successful
	// mutation it must resolve to a category present in the entity store.
	CategoryID int64

	// IsPasswordEncrypted is "Y" when AccountPassword is ciphertext.
	IsPasswordEncrypted string

	// Deleted marks the record inert after a confirmed delete. An inert
	// record is kept only by stale holders; collections drop it immediately.
	Deleted bool

	backup *AccountModel
	inEdit bool
}

// TableName returns the name of the database table
// associated with the AccountModel.
func (a AccountModel) TableName() string {
	return "acct_mgr"
}

// BeginEdit captures a shallow value-copy snapshot of the account so an
// in-row edit can be rolled back. Safe because the model owns no nested
// mutable state. At most one snapshot exists per entity; a second BeginEdit
// before commit/cancel is a no-op.
func (a *AccountModel) BeginEdit() {
	if a.inEdit {
		return
	}
	a.inEdit = true
	snapshot := *a
	snapshot.backup = nil
	a.backup = &snapshot
}

// CancelEdit restores every field from the snapshot taken at BeginEdit and
// discards it. A no-op when no edit is in progress.
func (a *AccountModel) CancelEdit() {
	if !a.inEdit {
		return
	}
	a.inEdit = false
	backup := a.backup
	a.AccountID = backup.AccountID
	a.AccountName = backup.AccountName
	a.AccountLoginID = backup.AccountLoginID
	a.AccountPassword = backup.AccountPassword
	a.Notes = backup.Notes
	a.DateCreated = backup.DateCreated
	a.DateModified = backup.DateModified
	a.CategoryID = backup.CategoryID
	a.IsPasswordEncrypted = backup.IsPasswordEncrypted
	a.backup = nil
}

// EndEdit commits the in-progress edit by discarding the snapshot.
// A no-op when no edit is in progress.
func (a *AccountModel) EndEdit() {
	if !a.inEdit {
		return
	}
	a.inEdit = false
	a.backup = nil
}

// InEdit reports whether an edit snapshot is currently held.
func (a *AccountModel) InEdit() bool {
	return a.inEdit
}

// MergeFrom copies every mutable field of src into the receiver, keeping the
// receiver's identity. Used to reconcile editor results into an existing
// in-memory record so every holder of the same pointer observes the update.
func (a *AccountModel) MergeFrom(src AccountModel) {
	a.AccountName = src.AccountName
	a.AccountLoginID = src.AccountLoginID
	a.AccountPassword = src.AccountPassword
	a.Notes = src.Notes
	a.CategoryID = src.CategoryID
	a.DateCreated = src.DateCreated
	a.DateModified = src.DateModified
	a.IsPasswordEncrypted = src.IsPasswordEncrypted
}
