// Package version records build metadata injected at link time.
package version

import "fmt"

// Version is the semantic version of the verto binary. Overridden via
// -ldflags "-X verto/internal/version.Version=x.y.z" by release builds.
var Version = "1.0.0"

// CommitHash is the short git revision the binary was built from.
var CommitHash = "unknown"

// UserAgent returns the User-Agent header value sent with every
// upstream request.
func UserAgent() string {
	return fmt.Sprintf("verto/%s", Version)
}
