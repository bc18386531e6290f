package folio

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("post not found")

// StorageReadError reports a snapshot that could not be read or decoded.
// The store logs it and falls back to the default posts.
type StorageReadError struct {
	Key string
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("read snapshot %q: %v", e.Key, e.Err)
}

func (e *StorageReadError) Unwrap() error { return e.Err }

// StorageWriteError reports a snapshot that could not be encoded or written.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("write snapshot %q: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// ValidationError is returned by the composer when a required field is blank.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ContentFetchError reports a post body document that could not be loaded.
type ContentFetchError struct {
	ID  string
	Err error
}

func (e *ContentFetchError) Error() string {
	return fmt.Sprintf("fetch content for %q: %v", e.ID, e.Err)
}

func (e *ContentFetchError) Unwrap() error { return e.Err }
