package store

import (
	"errors"
	"fmt"
)

// ErrStorage matches every write failure of the credential store.
var ErrStorage = errors.New("credential storage failed")

// StorageError describes a failed write to the credential store. It matches
// ErrStorage with errors.Is and unwraps to the driver error.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}
