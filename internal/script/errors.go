package script

import "errors"

// Errors for engine operations.
var (
	// ErrEngineClosed is returned when evaluating on a closed engine.
	ErrEngineClosed = errors.New("script engine is closed")

	// ErrNilAssets is returned by New when no asset source is provided.
	ErrNilAssets = errors.New("script engine requires an asset source")

	// ErrWatcherClosed is returned when watching on a closed watcher.
	ErrWatcherClosed = errors.New("reload watcher is closed")
)
