// Package txstore persists wallet account records in an embedded key-value
// store, one namespace per wallet fingerprint.
//
// The on-disk layout for a base directory B and fingerprint F is:
//
//	B/PoseidonStore/F/               repository directory
//	B/PoseidonStore/F/transactions   accounts store
//	B/PoseidonStore/logs/F           logs store
//
// A repository goes through two states. New returns an Unopened repository
// which can create its directory; InitDatabases opens the stores and returns
// a Repository on which records are added and listed.
package txstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/poseidoncompute/poseidonstore/internal/pkg/logger"
	"github.com/poseidoncompute/poseidonstore/internal/pkg/validator"
	"github.com/poseidoncompute/poseidonstore/internal/pkg/x/keylock"
)

const (
	rootDirName      = "PoseidonStore"
	accountStoreName = "transactions"
	logsDirName      = "logs"

	dirPerm = 0o700
)

// Layout holds the resolved paths of a repository.
type Layout struct {
	Identifier string // wallet fingerprint naming the namespace
	BasePath   string // repository directory
	StorePath  string // accounts store
	LogsPath   string // logs store
}

// newLayout derives every path of the repository from baseDir and identifier.
func newLayout(baseDir, identifier string) Layout {
	root := filepath.Join(baseDir, rootDirName)
	base := filepath.Join(root, identifier)

	return Layout{
		Identifier: identifier,
		BasePath:   base,
		StorePath:  filepath.Join(base, accountStoreName),
		LogsPath:   filepath.Join(root, logsDirName, identifier),
	}
}

// HomeDir returns the user's home directory, the default base directory.
func HomeDir() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil || dir == "" {
		return "", storeError(ErrHomeDirectoryNotFound, "unable to resolve the home directory", err)
	}

	if !utf8.ValidString(dir) {
		return "", storeError(ErrPathIsNotValidUTF8, fmt.Sprintf("home directory %q is not valid UTF-8", dir), nil)
	}

	return dir, nil
}

// namespace is validated before any path is derived from it.
type namespace struct {
	Identifier string `validate:"required,fingerprint"`
}

// Unopened is a repository whose paths are resolved but whose stores are not
// open yet.
type Unopened struct {
	layout Layout
	source TransactionSource
}

// New resolves the repository for the wallet identified by the fingerprint
// identifier under baseDir. It touches nothing on disk.
//
// source is used by AddTransaction to fetch the payloads of new signatures.
func New(baseDir, identifier string, source TransactionSource) (*Unopened, error) {
	if err := validator.Validate(namespace{Identifier: identifier}); err != nil {
		return nil, storeError(ErrInvalidFingerprint, fmt.Sprintf("invalid fingerprint %q", identifier), err)
	}

	if baseDir == "" {
		return nil, storeError(ErrHomeDirectoryNotFound, "base directory is empty", nil)
	}

	if !utf8.ValidString(baseDir) {
		return nil, storeError(ErrPathIsNotValidUTF8, fmt.Sprintf("base directory %q is not valid UTF-8", baseDir), nil)
	}

	return &Unopened{
		layout: newLayout(baseDir, identifier),
		source: source,
	}, nil
}

// Layout returns the resolved paths of the repository.
func (u *Unopened) Layout() Layout {
	return u.layout
}

// InitRepo creates the repository directory and any missing parents.
// Calling it on an existing directory is a no-op.
func (u *Unopened) InitRepo(ctx context.Context) error {
	if err := os.MkdirAll(u.layout.BasePath, dirPerm); err != nil {
		return storeError(ErrCreateDirectory, fmt.Sprintf("unable to create %s", u.layout.BasePath), err)
	}

	logger.Debug(ctx, "repository directory ready", "repository.path", u.layout.BasePath)
	return nil
}

// InitDatabases opens the accounts store and then the logs store with open.
// If the logs store fails to open, the accounts store is closed before
// returning.
func (u *Unopened) InitDatabases(ctx context.Context, open StoreOpener) (*Repository, error) {
	store, err := open(u.layout.StorePath)
	if err != nil {
		return nil, storeError(ErrOpenStore, fmt.Sprintf("unable to open %s", u.layout.StorePath), err)
	}

	logs, err := open(u.layout.LogsPath)
	if err != nil {
		openErr := storeError(ErrOpenStore, fmt.Sprintf("unable to open %s", u.layout.LogsPath), err)
		if closeErr := store.Close(); closeErr != nil {
			return nil, errors.Join(openErr, closeErr)
		}
		return nil, openErr
	}

	logger.Info(ctx, "repository opened",
		"repository.identifier", u.layout.Identifier,
		"repository.store", u.layout.StorePath,
		"repository.logs", u.layout.LogsPath,
	)

	return &Repository{
		layout:  u.layout,
		store:   store,
		logs:    logs,
		source:  u.source,
		locks:   keylock.New(),
		metrics: newInstruments(),
	}, nil
}

// Repository is an opened repository. It is safe for concurrent use.
//
// AddTransaction calls on the same account key are serialized; calls on
// different keys run concurrently.
type Repository struct {
	layout Layout

	mu    sync.RWMutex // guards store and logs against Close
	store KVStore
	logs  KVStore // reserved, opened and closed with the repository

	source  TransactionSource
	locks   *keylock.Locker
	metrics instruments
}

// Layout returns the resolved paths of the repository.
func (r *Repository) Layout() Layout {
	return r.layout
}

// Close releases both stores. Operations on a closed repository fail with
// ErrCollectionNotInitialized or ErrStoreNotFound. Closing twice is a no-op.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	if r.store != nil {
		errs = append(errs, r.store.Close())
		r.store = nil
	}
	if r.logs != nil {
		errs = append(errs, r.logs.Close())
		r.logs = nil
	}

	if err := errors.Join(errs...); err != nil {
		return storeError(ErrDatabase, fmt.Sprintf("unable to close %s", r.layout.BasePath), err)
	}
	return nil
}
