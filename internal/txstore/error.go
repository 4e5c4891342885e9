package txstore

import "fmt"

// ErrorCode identifies a kind of error. ErrorCode implements error so that
// callers can match any Error by kind:
//
//	if errors.Is(err, txstore.ErrAccountNotFound) { ... }
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInvalidFingerprint indicates that the namespace identifier is not
	// lowercase hex decoding to exactly 32 bytes.
	ErrInvalidFingerprint ErrorCode = iota

	// ErrHomeDirectoryNotFound indicates that no base directory could be resolved.
	ErrHomeDirectoryNotFound

	// ErrPathIsNotValidUTF8 indicates that the base directory is not representable as text.
	ErrPathIsNotValidUTF8

	// ErrCreateDirectory indicates that the repository directory could not be created.
	ErrCreateDirectory

	// ErrOpenStore indicates that the key-value engine failed to open a store.
	ErrOpenStore

	// ErrCollectionNotInitialized indicates that the accounts store is not open.
	ErrCollectionNotInitialized

	// ErrStoreNotFound indicates that the accounts store is not open while
	// listing. The description carries the configured store path.
	ErrStoreNotFound

	// ErrAccountNotFound indicates that no record exists for the account key
	// and the policy forbids creating one.
	ErrAccountNotFound

	// ErrDeserializeAccount indicates that a stored record could not be decoded.
	ErrDeserializeAccount

	// ErrSerializeAccount indicates that a record could not be encoded.
	ErrSerializeAccount

	// ErrDatabase indicates a read or write failure of the underlying store.
	// The Err field holds the engine error.
	ErrDatabase

	// ErrFetchTransaction indicates that the transaction source failed.
	// The Err field holds the source error.
	ErrFetchTransaction
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidFingerprint:       "ErrInvalidFingerprint",
	ErrHomeDirectoryNotFound:    "ErrHomeDirectoryNotFound",
	ErrPathIsNotValidUTF8:       "ErrPathIsNotValidUTF8",
	ErrCreateDirectory:          "ErrCreateDirectory",
	ErrOpenStore:                "ErrOpenStore",
	ErrCollectionNotInitialized: "ErrCollectionNotInitialized",
	ErrStoreNotFound:            "ErrStoreNotFound",
	ErrAccountNotFound:          "ErrAccountNotFound",
	ErrDeserializeAccount:       "ErrDeserializeAccount",
	ErrSerializeAccount:         "ErrSerializeAccount",
	ErrDatabase:                 "ErrDatabase",
	ErrFetchTransaction:         "ErrFetchTransaction",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error satisfies the error interface.
func (e ErrorCode) Error() string {
	return e.String()
}

// Error is the single error type returned by repository operations.
type Error struct {
	Code        ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
	Err         error     // Underlying error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap exposes the underlying error.
func (e Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the ErrorCode of e.
func (e Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.Code
}

// storeError creates an Error given a set of arguments.
func storeError(c ErrorCode, desc string, err error) Error {
	return Error{Code: c, Description: desc, Err: err}
}
