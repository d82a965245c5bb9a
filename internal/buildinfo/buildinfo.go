package buildinfo

import "fmt"

// Set at link time with -ldflags "-X github.com/aalvaropc/byobox/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("byobox %s (commit=%s, date=%s)", Version, Commit, Date)
}

// UserAgent identifies byobox to storefronts.
func UserAgent() string {
	return "byobox/" + Version
}
