package storage

import "errors"

var (
	// ErrNotInitialized is returned when a store is used before 'vitalflow init'.
	ErrNotInitialized = errors.New("storage not initialized, run 'vitalflow init' first")
	// ErrAlreadyInitialized is returned when Init finds existing storage.
	ErrAlreadyInitialized = errors.New("storage already initialized")
	// ErrNotLoaded is returned when a store is accessed before Load.
	ErrNotLoaded = errors.New("storage not loaded")
)
