package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	info := Info{Version: "v0.3.0", Commit: "abc123", BuildDate: "2026-01-02", GoVersion: "go1.25.3"}
	assert.Equal(t, "tiler v0.3.0 (commit abc123, built 2026-01-02, go1.25.3)", info.String())

	assert.Contains(t, Info{}.String(), "tiler dev")
}
