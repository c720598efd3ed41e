package usecase_test

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/tiler/internal/application/port/mocks"
	"github.com/bnema/tiler/internal/application/usecase"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/infrastructure/simhost"
	"github.com/bnema/tiler/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// testConfig is a mutable port.TilingConfig.
type testConfig struct {
	global entity.GlobalSettings
	stacks int
	desks  map[entity.DesktopID]entity.DesktopSettings
}

func newTestConfig() *testConfig {
	return &testConfig{
		global: entity.GlobalSettings{ShowTitles: true, FloatingMode: true},
		stacks: 1,
		desks:  make(map[entity.DesktopID]entity.DesktopSettings),
	}
}

func (c *testConfig) Desktop(desk entity.DesktopID) entity.DesktopSettings {
	if s, ok := c.desks[desk]; ok {
		return s
	}
	return entity.DesktopSettings{Stacks: c.stacks, Padding: c.global.Padding}
}

func (c *testConfig) Global() entity.GlobalSettings {
	return c.global
}

type harness struct {
	t    *testing.T
	ctx  context.Context
	host *simhost.Host
	cfg  *testConfig
	ctrl *usecase.TilingController
}

func newHarness(t *testing.T, hostCfg simhost.Config, cfg *testConfig, opts ...usecase.ControllerOption) *harness {
	t.Helper()
	host := simhost.New(hostCfg)
	return &harness{
		t:    t,
		ctx:  testContext(),
		host: host,
		cfg:  cfg,
		ctrl: usecase.NewTilingController(host, cfg, opts...),
	}
}

func newDefaultHarness(t *testing.T, opts ...usecase.ControllerOption) *harness {
	return newHarness(t, simhost.DefaultConfig(), newTestConfig(), opts...)
}

func (h *harness) dispatch(ev entity.Event, err error) {
	h.t.Helper()
	require.NoError(h.t, err)
	require.NoError(h.t, h.ctrl.HandleEvent(h.ctx, ev))
}

// spawn maps a window, dispatches WindowAdded and focuses it.
func (h *harness) spawn(spec simhost.WindowSpec) entity.WindowID {
	h.t.Helper()
	info, ev, err := h.host.Spawn(spec)
	h.dispatch(ev, err)
	require.NoError(h.t, h.host.FocusWindow(h.ctx, info.ID))
	return info.ID
}

func (h *harness) geometry(id entity.WindowID) entity.Rect {
	h.t.Helper()
	info, ok := h.host.Info(id)
	require.True(h.t, ok, "window %s", id)
	return info.Geometry
}

var (
	fullArea  = entity.Rect{X: 0, Y: 24, W: 1920, H: 1056}
	leftHalf  = entity.Rect{X: 0, Y: 24, W: 960, H: 1056}
	rightHalf = entity.Rect{X: 960, Y: 24, W: 960, H: 1056}
)

func TestTilingController_AddWindow_FirstWindowFillsArea(t *testing.T) {
	h := newDefaultHarness(t)

	a := h.spawn(simhost.WindowSpec{ID: "a"})

	assert.True(t, h.ctrl.IsTiled(a))
	assert.Equal(t, fullArea, h.geometry(a))
	require.Len(t, h.host.CommandsFor(a, simhost.CommandMoveResize), 1)
}

func TestTilingController_AddWindow_SplitsFocusedLeaf(t *testing.T) {
	h := newDefaultHarness(t)

	a := h.spawn(simhost.WindowSpec{ID: "a"})
	b := h.spawn(simhost.WindowSpec{ID: "b"})

	assert.Equal(t, leftHalf, h.geometry(a))
	assert.Equal(t, rightHalf, h.geometry(b))

	require.NoError(t, h.host.FocusWindow(h.ctx, b))
	h.ctrl.SetSplitAxis(entity.SplitVertical)
	c := h.spawn(simhost.WindowSpec{ID: "c"})

	assert.Equal(t, leftHalf, h.geometry(a))
	assert.Equal(t, entity.Rect{X: 960, Y: 24, W: 960, H: 528}, h.geometry(b))
	assert.Equal(t, entity.Rect{X: 960, Y: 552, W: 960, H: 528}, h.geometry(c))
}

func TestTilingController_AddWindow_Idempotent(t *testing.T) {
	h := newDefaultHarness(t)

	a := h.spawn(simhost.WindowSpec{ID: "a"})
	h.host.ResetCommands()

	require.NoError(t, h.ctrl.AddWindow(h.ctx, a))

	assert.Empty(t, h.host.Commands())
	assert.Equal(t, fullArea, h.geometry(a))
}

func TestTilingController_AddWindow_SkipsIneligibleWindows(t *testing.T) {
	tests := []struct {
		name string
		spec simhost.WindowSpec
	}{
		{name: "sticky", spec: simhost.WindowSpec{ID: "w", Sticky: true}},
		{name: "dialog", spec: simhost.WindowSpec{ID: "w", Dialog: true}},
		{name: "transient", spec: simhost.WindowSpec{ID: "w", Transient: true}},
		{name: "fullscreen", spec: simhost.WindowSpec{ID: "w", Fullscreen: true}},
		{name: "centered", spec: simhost.WindowSpec{ID: "w", Centered: true}},
		{name: "static gravity", spec: simhost.WindowSpec{ID: "w", StaticGravity: true}},
		{name: "fixed height", spec: simhost.WindowSpec{ID: "w", MinH: 200, MaxH: 200}},
		{name: "ignored", spec: simhost.WindowSpec{ID: "w", Ignored: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newDefaultHarness(t)

			id := h.spawn(tt.spec)

			assert.False(t, h.ctrl.IsTiled(id))
			assert.Empty(t, h.host.CommandsFor(id, simhost.CommandMoveResize))
		})
	}
}

func TestTilingController_AddWindow_TilesDialogsWhenConfigured(t *testing.T) {
	cfg := newTestConfig()
	cfg.global.TileDialogs = true
	h := newHarness(t, simhost.DefaultConfig(), cfg)

	id := h.spawn(simhost.WindowSpec{ID: "d", Dialog: true})

	assert.True(t, h.ctrl.IsTiled(id))
}

func TestTilingController_AddWindow_CustomPredicate(t *testing.T) {
	onlyA := func(info entity.WindowInfo, _ entity.GlobalSettings) bool {
		return info.ID == "a"
	}
	h := newDefaultHarness(t, usecase.WithTilablePredicate(onlyA))

	a := h.spawn(simhost.WindowSpec{ID: "a"})
	b := h.spawn(simhost.WindowSpec{ID: "b"})

	assert.True(t, h.ctrl.IsTiled(a))
	assert.False(t, h.ctrl.IsTiled(b))
}

func TestTilingController_AddWindow_DisabledDesktop(t *testing.T) {
	cfg := newTestConfig()
	cfg.stacks = 0
	h := newHarness(t, simhost.DefaultConfig(), cfg)

	a := h.spawn(simhost.WindowSpec{ID: "a"})

	assert.False(t, h.ctrl.IsTiled(a))
	assert.Empty(t, h.host.CommandsFor(a, simhost.CommandMoveResize))
}

func TestTilingController_AddWindow_DisabledDesktopRecapturesOriginal(t *testing.T) {
	cfg := newTestConfig()
	cfg.stacks = 0
	h := newHarness(t, simhost.DefaultConfig(), cfg)

	a := h.spawn(simhost.WindowSpec{ID: "a", Geometry: entity.Rect{X: 10, Y: 40, W: 300, H: 200}})
	moved := entity.Rect{X: 500, Y: 300, W: 640, H: 480}
	_, err := h.host.MoveTo(a, moved)
	require.NoError(t, err)
	require.NoError(t, h.ctrl.AddWindow(h.ctx, a))
	require.False(t, h.ctrl.IsTiled(a))

	require.NoError(t, h.ctrl.SetDesktopStacks(h.ctx, h.host.Current(), 1))
	require.True(t, h.ctrl.IsTiled(a))
	assert.Equal(t, fullArea, h.geometry(a))

	require.NoError(t, h.ctrl.RestoreWindow(h.ctx, a))
	assert.Equal(t, moved, h.geometry(a))
}

func TestTilingController_AddWindow_FloatingWindowRecapturesOriginal(t *testing.T) {
	h := newDefaultHarness(t)
	h.spawn(simhost.WindowSpec{ID: "a"})
	b := h.spawn(simhost.WindowSpec{ID: "b"})
	require.NoError(t, h.ctrl.ToggleFloating(h.ctx, b))

	moved := entity.Rect{X: 200, Y: 150, W: 700, H: 500}
	_, err := h.host.MoveTo(b, moved)
	require.NoError(t, err)
	require.NoError(t, h.ctrl.AddWindow(h.ctx, b))
	require.False(t, h.ctrl.IsTiled(b))

	require.NoError(t, h.ctrl.ToggleFloating(h.ctx, b))
	require.True(t, h.ctrl.IsTiled(b))
	assert.Equal(t, rightHalf, h.geometry(b))

	require.NoError(t, h.ctrl.RestoreWindow(h.ctx, b))
	assert.Equal(t, moved, h.geometry(b))
}

func TestTilingController_AddWindow_UnmaximizesAndHidesTitles(t *testing.T) {
	cfg := newTestConfig()
	cfg.global.ShowTitles = false
	h := newHarness(t, simhost.DefaultConfig(), cfg)

	a := h.spawn(simhost.WindowSpec{ID: "a", Maximize: entity.MaximizeBoth})

	info, _ := h.host.Info(a)
	assert.Equal(t, entity.MaximizeNone, info.Maximize)
	assert.Equal(t, entity.PixelDecoration, info.Decoration)
	assert.Equal(t, fullArea, info.Geometry)
}

func TestTilingController_AddWindow_UnknownWindowIsNoop(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	cfg := portmocks.NewMockTilingConfig(t)

	host.EXPECT().Window(mock.Anything, entity.WindowID("ghost")).
		Return(entity.WindowInfo{}, false, nil)

	ctrl := usecase.NewTilingController(host, cfg)

	require.NoError(t, ctrl.AddWindow(ctx, "ghost"))
	assert.False(t, ctrl.IsTiled("ghost"))
}

func TestTilingController_AddWindow_HostLookupFails(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockWindowHost(t)
	cfg := portmocks.NewMockTilingConfig(t)
	boom := errors.New("connection lost")

	host.EXPECT().Window(mock.Anything, entity.WindowID("a")).
		Return(entity.WindowInfo{}, false, boom)

	ctrl := usecase.NewTilingController(host, cfg)

	err := ctrl.AddWindow(ctx, "a")
	require.ErrorIs(t, err, boom)
}

func TestTilingController_HostCommandFailuresDoNotAbortLayout(t *testing.T) {
	h := newDefaultHarness(t)
	a := h.spawn(simhost.WindowSpec{ID: "a"})

	boom := errors.New("protocol error")
	h.host.FailCommands(simhost.CommandMoveResize, boom)
	info, ev, err := h.host.Spawn(simhost.WindowSpec{ID: "b"})
	require.NoError(t, err)

	err = h.ctrl.HandleEvent(h.ctx, ev)

	require.ErrorIs(t, err, boom)
	assert.True(t, h.ctrl.IsTiled(info.ID))
	assert.Len(t, h.host.CommandsFor(a, simhost.CommandMoveResize), 2)
	assert.Len(t, h.host.CommandsFor(info.ID, simhost.CommandMoveResize), 1)
}

func TestTilingController_RemoveWindow_DoesNotRestore(t *testing.T) {
	h := newDefaultHarness(t)
	a := h.spawn(simhost.WindowSpec{ID: "a"})
	b := h.spawn(simhost.WindowSpec{ID: "b"})
	h.host.ResetCommands()

	require.NoError(t, h.ctrl.RemoveWindow(h.ctx, b))

	assert.False(t, h.ctrl.IsTiled(b))
	assert.Equal(t, fullArea, h.geometry(a))
	assert.Equal(t, rightHalf, h.geometry(b))
	assert.Empty(t, h.host.CommandsFor(b, simhost.CommandMoveResize))
}

func TestTilingController_RestoreWindow(t *testing.T) {
	cfg := newTestConfig()
	cfg.global.ShowTitles = false
	h := newHarness(t, simhost.DefaultConfig(), cfg)

	orig := entity.Rect{X: 100, Y: 100, W: 800, H: 600}
	a := h.spawn(simhost.WindowSpec{ID: "a", Geometry: orig, Maximize: entity.MaximizeVertical})

	require.NoError(t, h.ctrl.RestoreWindow(h.ctx, a))

	info, _ := h.host.Info(a)
	assert.Equal(t, entity.MaximizeVertical, info.Maximize)
	assert.Equal(t, entity.DefaultDecoration, info.Decoration)
	assert.True(t, h.ctrl.IsTiled(a), "restore leaves the tree alone")
}

func TestTilingController_RestoreWindow_NotTiledIsNoop(t *testing.T) {
	h := newDefaultHarness(t)
	info, _, err := h.host.Spawn(simhost.WindowSpec{ID: "a"})
	require.NoError(t, err)

	require.NoError(t, h.ctrl.RestoreWindow(h.ctx, info.ID))

	assert.Empty(t, h.host.Commands())
}

func TestTilingController_ToggleFloating(t *testing.T) {
	h := newDefaultHarness(t)
	a := h.spawn(simhost.WindowSpec{ID: "a"})
	origB := entity.Rect{X: 300, Y: 300, W: 500, H: 400}
	b := h.spawn(simhost.WindowSpec{ID: "b", Geometry: origB})

	require.NoError(t, h.ctrl.ToggleFloating(h.ctx, b))

	assert.True(t, h.ctrl.IsFloating(b))
	assert.False(t, h.ctrl.IsTiled(b))
	assert.Equal(t, origB, h.geometry(b))
	assert.Equal(t, fullArea, h.geometry(a))

	// A floating window is not picked up again by add.
	require.NoError(t, h.ctrl.AddWindow(h.ctx, b))
	assert.False(t, h.ctrl.IsTiled(b))

	require.NoError(t, h.ctrl.ToggleFloating(h.ctx, b))

	assert.False(t, h.ctrl.IsFloating(b))
	assert.True(t, h.ctrl.IsTiled(b))
	assert.Equal(t, rightHalf, h.geometry(b))
}

func TestTilingController_SplitModeFloat(t *testing.T) {
	h := newDefaultHarness(t)
	require.NoError(t, h.ctrl.SetSplitMode(entity.SplitModeFloat))

	a := h.spawn(simhost.WindowSpec{ID: "a"})

	assert.False(t, h.ctrl.IsTiled(a))
	assert.True(t, h.ctrl.IsFloating(a))
}

func TestTilingController_SetSplitMode_FloatDisabled(t *testing.T) {
	cfg := newTestConfig()
	cfg.global.FloatingMode = false
	h := newHarness(t, simhost.DefaultConfig(), cfg)

	err := h.ctrl.SetSplitMode(entity.SplitModeFloat)

	require.ErrorIs(t, err, usecase.ErrFloatingModeDisabled)
	assert.Equal(t, entity.SplitModeHorizontal, h.ctrl.SplitMode())
}

func TestTilingController_NextSplitMode(t *testing.T) {
	h := newDefaultHarness(t)

	assert.Equal(t, entity.SplitModeVertical, h.ctrl.NextSplitMode())
	assert.Equal(t, entity.SplitModeFloat, h.ctrl.NextSplitMode())
	assert.Equal(t, entity.SplitModeHorizontal, h.ctrl.NextSplitMode())

	h.cfg.global.FloatingMode = false
	assert.Equal(t, entity.SplitModeVertical, h.ctrl.NextSplitMode())
	assert.Equal(t, entity.SplitModeHorizontal, h.ctrl.NextSplitMode())
}

func TestTilingController_WithSplitMode(t *testing.T) {
	h := newDefaultHarness(t, usecase.WithSplitMode(entity.SplitModeVertical))

	a := h.spawn(simhost.WindowSpec{ID: "a"})
	b := h.spawn(simhost.WindowSpec{ID: "b"})

	assert.Equal(t, entity.Rect{X: 0, Y: 24, W: 1920, H: 528}, h.geometry(a))
	assert.Equal(t, entity.Rect{X: 0, Y: 552, W: 1920, H: 528}, h.geometry(b))
}

func TestTilingController_SwapWindows(t *testing.T) {
	h := newDefaultHarness(t)
	a := h.spawn(simhost.WindowSpec{ID: "a"})
	b := h.spawn(simhost.WindowSpec{ID: "b"})

	require.NoError(t, h.ctrl.SwapWindows(h.ctx, a, b))

	assert.Equal(t, rightHalf, h.geometry(a))
	assert.Equal(t, leftHalf, h.geometry(b))
}

func TestTilingController_SwapWindows_DifferentDesktops(t *testing.T) {
	hostCfg := simhost.DefaultConfig()
	hostCfg.Columns = 2
	h := newHarness(t, hostCfg, newTestConfig())
	other := entity.DesktopID{X: 1}

	a := h.spawn(simhost.WindowSpec{ID: "a"})
	b := h.spawn(simhost.WindowSpec{ID: "b", Desktop: &other})

	err := h.ctrl.SwapWindows(h.ctx, a, b)

	require.ErrorIs(t, err, usecase.ErrNotSameDesktop)
	assert.Equal(t, fullArea, h.geometry(a))
	assert.Equal(t, fullArea, h.geometry(b))
}

func TestTilingController_MouseSwap(t *testing.T) {
	h := newDefaultHarness(t)
	a := h.spawn(simhost.WindowSpec{ID: "a"})
	b := h.spawn(simhost.WindowSpec{ID: "b"})

	require.NoError(t, h.host.SetPointer(a))
	require.NoError(t, h.ctrl.BeginSwap(h.ctx, ""))
	require.NoError(t, h.host.SetPointer(b))
	require.NoError(t, h.ctrl.EndSwap(h.ctx, ""))

	assert.Equal(t, rightHalf, h.geometry(a))
	assert.Equal(t, leftHalf, h.geometry(b))

	// The remembered window is consumed by the first release.
	require.NoError(t, h.ctrl.EndSwap(h.ctx, a))
	assert.Equal(t, rightHalf, h.geometry(a))
}

func TestTilingController_MouseSwap_StartOnUntiledWindow(t *testing.T) {
	h := newDefaultHarness(t)
	a := h.spawn(simhost.WindowSpec{ID: "a"})
	f := h.spawn(simhost.WindowSpec{ID: "f", Dialog: true})

	require.NoError(t, h.ctrl.BeginSwap(h.ctx, f))
	require.NoError(t, h.ctrl.EndSwap(h.ctx, a))

	assert.Equal(t, fullArea, h.geometry(a))
}

func TestTilingController_MoveFocusAcrossEdge(t *testing.T) {
	h := newDefaultHarness(t)
	a := h.spawn(simhost.WindowSpec{ID: "a"})
	b := h.spawn(simhost.WindowSpec{ID: "b"})
	require.NoError(t, h.host.FocusWindow(h.ctx, a))

	require.NoError(t, h.ctrl.MoveFocusAcrossEdge(h.ctx, entity.DirRight))

	assert.Equal(t, rightHalf, h.geometry(a))
	assert.Equal(t, leftHalf, h.geometry(b))

	h.host.ResetCommands()
	require.NoError(t, h.ctrl.MoveFocusAcrossEdge(h.ctx, entity.DirRight))
	assert.Empty(t, h.host.CommandsFor(a, simhost.CommandMoveResize))
}

func TestTilingController_LayoutObserver(t *testing.T) {
	var changed []entity.DesktopID
	h := newDefaultHarness(t, usecase.WithLayoutObserver(func(desk entity.DesktopID) {
		changed = append(changed, desk)
	}))

	h.spawn(simhost.WindowSpec{ID: "a"})

	require.NotEmpty(t, changed)
	assert.Equal(t, entity.DesktopID{}, changed[len(changed)-1])
}

func TestTilingController_VanishedWindowIsPruned(t *testing.T) {
	h := newDefaultHarness(t)
	a := h.spawn(simhost.WindowSpec{ID: "a"})

	// Close without dispatching the event.
	_, err := h.host.Close(a)
	require.NoError(t, err)

	b := h.spawn(simhost.WindowSpec{ID: "b"})

	assert.False(t, h.ctrl.IsTiled(a))
	assert.Equal(t, fullArea, h.geometry(b))
}
