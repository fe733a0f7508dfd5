// Package build holds build-time metadata for the refdex binary.
package build

// Version is the refdex release version. The default marks a local build;
// release builds overwrite it with -ldflags "-X ...build.Version=".
var Version = "dev"
