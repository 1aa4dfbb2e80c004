package docstore

import "errors"

var (
	// ErrNotFound - requested identifier absent from the collection
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey - caller supplied an identifier already in use
	ErrDuplicateKey = errors.New("record with this id already exists")
)
