package main

import (
	"runtime"

	"github.com/bnema/tiler/internal/cli/cmd"
	"github.com/bnema/tiler/internal/domain/build"
)

// Build information set via ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
