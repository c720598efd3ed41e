package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/infrastructure/config"
	"github.com/bnema/tiler/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

var (
	fullArea  = entity.Rect{X: 0, Y: 24, W: 1920, H: 1056}
	leftHalf  = entity.Rect{X: 0, Y: 24, W: 960, H: 1056}
	rightHalf = entity.Rect{X: 960, Y: 24, W: 960, H: 1056}
)

const twoWindows = `
name = "two windows"

[[steps]]
action = "add"
window = "a"

[[steps]]
action = "add"
window = "b"
`

func runScenario(t *testing.T, src string) *Sim {
	t.Helper()
	sc, err := ParseScenario([]byte(src))
	require.NoError(t, err)
	sim, err := sc.Run(testCtx(), nil)
	require.NoError(t, err)
	return sim
}

func geometryOf(t *testing.T, sim *Sim, id entity.WindowID) entity.Rect {
	t.Helper()
	info, ok := sim.Host.Info(id)
	require.True(t, ok, "window %s", id)
	return info.Geometry
}

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(`
name = "grid"

[screen]
width = 1280
height = 720
reserved_top = 0
columns = 2

[tiling]
show_titles = false
split_mode = "vertical"

[[tiling.desktops]]
x = 1
stacks = 0

[[steps]]
action = "add"
window = "a"
desktop = [1, 0]
geometry = [10, 20, 300, 200]
`))
	require.NoError(t, err)

	assert.Equal(t, "grid", sc.Name)
	hc := sc.HostConfig()
	assert.Equal(t, entity.Rect{W: 1280, H: 720}, hc.Screen)
	assert.Equal(t, 0, hc.ReservedTop)
	assert.Equal(t, 2, hc.Columns)
	assert.Equal(t, 1, hc.Rows)

	require.NotNil(t, sc.Tiling)
	require.NotNil(t, sc.Tiling.ShowTitles)
	assert.False(t, *sc.Tiling.ShowTitles)
	require.Len(t, sc.Tiling.Desktops, 1)
	require.Len(t, sc.Steps, 1)
	assert.Equal(t, []int{10, 20, 300, 200}, sc.Steps[0].Geometry)

	cfg, err := sc.Config(config.DefaultConfig())
	require.NoError(t, err)
	assert.False(t, cfg.Tiling.ShowTitles)
	require.NotNil(t, cfg.Tiling.Desktops[0].Padding)
	assert.Equal(t, config.UnsetPadding, *cfg.Tiling.Desktops[0].Padding)
}

func TestParseScenario_RejectsUnknownKeys(t *testing.T) {
	_, err := ParseScenario([]byte(`
[[steps]]
action = "add"
colour = "red"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.toml")
	require.NoError(t, os.WriteFile(path, []byte(twoWindows), 0o600))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Len(t, sc.Steps, 2)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestScenario_ConfigRejectsInvalidOverrides(t *testing.T) {
	sc, err := ParseScenario([]byte(`
[tiling]
window_padding = 100
`))
	require.NoError(t, err)

	_, err = sc.Run(testCtx(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tiling.window_padding")
}

func TestScenario_TwoWindows(t *testing.T) {
	sim := runScenario(t, twoWindows)

	assert.Equal(t, leftHalf, geometryOf(t, sim, "a"))
	assert.Equal(t, rightHalf, geometryOf(t, sim, "b"))

	res := sim.Result()
	assert.Equal(t, entity.WindowID("b"), res.Focused)
	assert.Equal(t, "horizontal", res.SplitMode)
	require.Len(t, res.Windows, 2)
	assert.Equal(t, StateTiled, res.Windows[0].State)
	assert.Equal(t, entity.DefaultDecoration, res.Windows[0].Decoration)
	assert.True(t, res.Windows[1].Focused)
	require.Len(t, res.Desktops, 1)
	assert.Equal(t, 2, res.Desktops[0].Windows)
	require.NotNil(t, res.Desktops[0].Tree)
	assert.Equal(t, []entity.WindowID{"a", "b"}, res.Desktops[0].Tree.Windows())

	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"state":"tiled"`)
	assert.Contains(t, string(out), `"w":960`)
}

func TestScenario_SplitModeAndFocus(t *testing.T) {
	sim := runScenario(t, twoWindows+`
[[steps]]
action = "split"
mode = "vertical"

[[steps]]
action = "add"
window = "c"
`)

	assert.Equal(t, leftHalf, geometryOf(t, sim, "a"))
	assert.Equal(t, entity.Rect{X: 960, Y: 24, W: 960, H: 528}, geometryOf(t, sim, "b"))
	assert.Equal(t, entity.Rect{X: 960, Y: 552, W: 960, H: 528}, geometryOf(t, sim, "c"))
}

func TestScenario_NoFocusInsertsAtRoot(t *testing.T) {
	sim := runScenario(t, `
[[steps]]
action = "add"
window = "a"
no_focus = true

[[steps]]
action = "add"
window = "b"
no_focus = true
`)

	assert.Equal(t, entity.WindowID(""), sim.Host.Focused())
	assert.Equal(t, leftHalf, geometryOf(t, sim, "a"))
	assert.Equal(t, rightHalf, geometryOf(t, sim, "b"))
}

func TestScenario_ResizeMovesDivider(t *testing.T) {
	sim := runScenario(t, twoWindows+`
[[steps]]
action = "resize"
window = "a"
handle = "right"
geometry = [0, 24, 1152, 1056]
`)

	assert.Equal(t, entity.Rect{X: 0, Y: 24, W: 1120, H: 1056}, geometryOf(t, sim, "a"))
	assert.Equal(t, entity.Rect{X: 1120, Y: 24, W: 800, H: 1056}, geometryOf(t, sim, "b"))
}

func TestScenario_ResizeOuterEdgeSnapsBack(t *testing.T) {
	sim := runScenario(t, twoWindows+`
[[steps]]
action = "resize"
window = "b"
handle = "right"
dw = 140
`)

	assert.Equal(t, leftHalf, geometryOf(t, sim, "a"))
	assert.Equal(t, rightHalf, geometryOf(t, sim, "b"))
}

func TestScenario_FloatRestoresOriginalGeometry(t *testing.T) {
	sim := runScenario(t, `
[[steps]]
action = "add"
window = "a"
geometry = [100, 100, 640, 480]

[[steps]]
action = "add"
window = "b"

[[steps]]
action = "float"
window = "a"
`)

	assert.Equal(t, entity.Rect{X: 100, Y: 100, W: 640, H: 480}, geometryOf(t, sim, "a"))
	assert.Equal(t, fullArea, geometryOf(t, sim, "b"))
	assert.True(t, sim.Ctrl.IsFloating("a"))

	info, _ := sim.Host.Info("a")
	assert.Equal(t, StateFloating, sim.WindowState(info))
}

func TestScenario_SwapAndMove(t *testing.T) {
	sim := runScenario(t, twoWindows+`
[[steps]]
action = "swap"
window = "a"
other = "b"
`)
	assert.Equal(t, rightHalf, geometryOf(t, sim, "a"))
	assert.Equal(t, leftHalf, geometryOf(t, sim, "b"))

	sim = runScenario(t, twoWindows+`
[[steps]]
action = "move"
window = "b"
direction = "left"
`)
	assert.Equal(t, rightHalf, geometryOf(t, sim, "a"))
	assert.Equal(t, leftHalf, geometryOf(t, sim, "b"))
}

func TestScenario_StacksZeroRestoresEverything(t *testing.T) {
	sim := runScenario(t, `
[[steps]]
action = "add"
window = "a"
geometry = [100, 100, 640, 480]

[[steps]]
action = "stacks"
stacks = 0
`)

	assert.Equal(t, entity.Rect{X: 100, Y: 100, W: 640, H: 480}, geometryOf(t, sim, "a"))
	assert.False(t, sim.Ctrl.IsTiled("a"))

	res := sim.Result()
	require.Len(t, res.Desktops, 1)
	assert.Equal(t, 0, res.Desktops[0].Stacks)
	assert.Nil(t, res.Desktops[0].Tree)
}

func TestScenario_ConfigChangeAppliesPadding(t *testing.T) {
	sim := runScenario(t, twoWindows+`
[[steps]]
action = "config"
padding = 10
`)

	assert.Equal(t, entity.Rect{X: 0, Y: 24, W: 955, H: 1056}, geometryOf(t, sim, "a"))
	assert.Equal(t, entity.Rect{X: 965, Y: 24, W: 955, H: 1056}, geometryOf(t, sim, "b"))
	assert.Equal(t, 10, sim.Config().Tiling.WindowPadding)
}

func TestScenario_HiddenTitles(t *testing.T) {
	sim := runScenario(t, `
[tiling]
show_titles = false

[[steps]]
action = "add"
window = "a"
`)

	info, ok := sim.Host.Info("a")
	require.True(t, ok)
	assert.Equal(t, entity.PixelDecoration, info.Decoration)
}

func TestScenario_SendToOtherDesktop(t *testing.T) {
	sim := runScenario(t, `
[screen]
columns = 2

[[steps]]
action = "add"
window = "a"

[[steps]]
action = "add"
window = "b"

[[steps]]
action = "send"
window = "b"
desktop = [1, 0]
`)

	assert.Equal(t, fullArea, geometryOf(t, sim, "a"))
	assert.Equal(t, fullArea, geometryOf(t, sim, "b"))

	desk, _, err := sim.Ctrl.WindowLayout("b")
	require.NoError(t, err)
	assert.Equal(t, entity.DesktopID{X: 1}, desk)
}

func TestScenario_StickyLeavesTree(t *testing.T) {
	sim := runScenario(t, twoWindows+`
[[steps]]
action = "sticky"
window = "b"
`)

	assert.Equal(t, fullArea, geometryOf(t, sim, "a"))
	assert.False(t, sim.Ctrl.IsTiled("b"))

	info, _ := sim.Host.Info("b")
	assert.Equal(t, StateSticky, sim.WindowState(info))
}

func TestScenario_IconifyAndOutputResize(t *testing.T) {
	sim := runScenario(t, twoWindows+`
[[steps]]
action = "iconify"
window = "b"

[[steps]]
action = "output"
width = 1280
height = 1024
`)

	assert.Equal(t, entity.Rect{X: 0, Y: 24, W: 1280, H: 1000}, geometryOf(t, sim, "a"))
	info, _ := sim.Host.Info("b")
	assert.Equal(t, StateIconic, sim.WindowState(info))
}

func TestScenario_InvalidSteps(t *testing.T) {
	tests := []struct {
		name string
		step string
	}{
		{name: "unknown action", step: `action = "teleport"`},
		{name: "close without window", step: `action = "close"`},
		{name: "bad direction", step: `action = "move"
direction = "north"`},
		{name: "bad handle", step: `action = "resize"
window = "a"
handle = "middle"`},
		{name: "stacks without count", step: `action = "stacks"`},
		{name: "bad geometry", step: `action = "drag"
window = "a"
geometry = [1, 2]`},
		{name: "bad desktop", step: `action = "switch"
desktop = [1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := ParseScenario([]byte("[[steps]]\naction = \"add\"\nwindow = \"a\"\n\n[[steps]]\n" + tt.step + "\n"))
			require.NoError(t, err)

			_, err = sc.Run(testCtx(), nil)

			require.ErrorIs(t, err, ErrInvalidStep)
			assert.Contains(t, err.Error(), "step 2")
		})
	}
}

func TestScenario_GeneratedWindowIDs(t *testing.T) {
	sim := runScenario(t, `
[[steps]]
action = "add"
`)

	all := sim.Host.All()
	require.Len(t, all, 1)
	assert.Len(t, string(all[0].ID), 36)
	assert.True(t, sim.Ctrl.IsTiled(all[0].ID))
}
