package version

import (
	"fmt"
)

// Release metadata. Release builds override these with
// -ldflags "-X github.com/faizmokh/jurnal/internal/version.Version=v0.2.0"
// (and likewise Commit and Date); local builds keep the placeholders.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info formats the metadata for `jurnal version` and `jurnal --version`.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
