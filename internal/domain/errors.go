package domain

import "errors"

// Domain errors represent error conditions shared by the crtools commands.
// They are returned wrapped and can be checked with errors.Is.
var (
	// ErrInvalidConfiguration is returned when a setting such as the fragment
	// size is out of range or cannot be parsed.
	ErrInvalidConfiguration = errors.New("crtools: invalid configuration")

	// ErrInvalidState is returned when a packer is used after Finalize.
	ErrInvalidState = errors.New("crtools: invalid packer state")

	// ErrNotFound is returned when an asset or catalog entry does not exist.
	ErrNotFound = errors.New("crtools: not found")

	// ErrLegacyChart is returned for bmson documents without a version field.
	ErrLegacyChart = errors.New("crtools: legacy bmson is not supported, please upgrade the file")

	// ErrCatalogLocked is returned when another editor holds the catalog lock.
	ErrCatalogLocked = errors.New("crtools: catalog is locked by another process")

	// ErrNotSupported is returned for commands that are not implemented.
	ErrNotSupported = errors.New("crtools: not supported yet")

	// ErrVerification is returned when packed output does not match its source.
	ErrVerification = errors.New("crtools: verification failed")

	// ErrAborted is returned when the user declines a required prompt.
	ErrAborted = errors.New("crtools: aborted")
)
