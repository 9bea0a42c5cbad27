package catalog

import "errors"

var (
	// ErrNotConfigured means no credentials exist yet
	ErrNotConfigured = errors.New("remote store not configured")
	// ErrNotConnected means credentials exist but no working connection does
	ErrNotConnected = errors.New("remote store not connected")
	// ErrConnect wraps dial and probe failures
	ErrConnect = errors.New("failed to connect to remote store")
	// ErrStaleLoad is returned by a load that was overtaken by a newer one
	ErrStaleLoad = errors.New("load superseded by a newer request")
)
