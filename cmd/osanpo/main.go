package main

import (
	"os"
	"runtime/debug"

	"github.com/yildizm/osanpo/internal/cli"
)

// Build variables set by ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// go install builds carry the module version instead of ldflags
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}

	if err := cli.NewRootCommand(version, commit, date).Execute(); err != nil {
		os.Exit(1)
	}
}
