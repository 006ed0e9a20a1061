// Package buildinfo holds values stamped at link time:
//
//	go build -ldflags "-X github.com/modoterra/stampline/internal/buildinfo.Version=v1.0.0"
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
