package storage

import "errors"

// Sentinel errors returned by Provider implementations. Callers match
// them with errors.Is; the wrapped message carries the detail.
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("habit already exists")
	ErrDuplicateDate = errors.New("record already exists")
	ErrInvalidName   = errors.New("invalid habit name")
	ErrInvalidDate   = errors.New("invalid date")
)
