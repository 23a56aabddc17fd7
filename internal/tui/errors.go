// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-account-mgr/internal/service"
	"github.com/MKhiriev/go-account-mgr/internal/store"
	"github.com/MKhiriev/go-account-mgr/internal/validators"
)

// humanizeError maps well-known errors to the short messages shown in the
// status line and inside editor dialogs.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if fieldErr, ok := validators.AsFieldError(err); ok {
		return fieldErr.Reason
	}

	switch {
	case errors.Is(err, service.ErrDuplicateCategoryName):
		return "A category with this name already exists"
	case errors.Is(err, store.ErrAccountNotFound):
		return "The account no longer exists"
	case errors.Is(err, store.ErrCategoryNotFound):
		return "The category no longer exists"
	}

	return err.Error()
}
