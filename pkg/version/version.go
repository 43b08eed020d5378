// Package version holds the build version, overridable via ldflags.
package version

// Version is set at build time with -ldflags "-X .../pkg/version.Version=x.y.z".
var Version = "dev"
