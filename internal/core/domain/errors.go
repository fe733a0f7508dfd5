package domain

import "go.trai.ch/zerr"

var (
	// ErrBuildActive is returned when a build is started while another one
	// is still running.
	ErrBuildActive = zerr.New("a build is already active")

	// ErrNoActiveBuild is returned when stepping or cancelling without a
	// running build.
	ErrNoActiveBuild = zerr.New("no active build")

	// ErrNotInitialized is returned when querying a cache that has not
	// completed a build or a load.
	ErrNotInitialized = zerr.New("cache not initialized")

	// ErrCorruptCache is returned when the persisted cache file exists but
	// cannot be decoded or is structurally invalid.
	ErrCorruptCache = zerr.New("corrupt cache file")
)
