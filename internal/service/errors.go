package service

import "errors"

var (
	// ErrDuplicateCategoryName is returned when a category with the requested
	// name already exists. The name comparison trims surrounding whitespace.
	ErrDuplicateCategoryName = errors.New("category with this name already exists")
)
