package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tiler/internal/application/port"
	"github.com/bnema/tiler/internal/domain/bsp"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/logging"
)

var (
	ErrWindowNotFound       = errors.New("window not found")
	ErrNotSameDesktop       = errors.New("windows are not on the same desktop")
	ErrTilingDisabled       = errors.New("tiling disabled on desktop")
	ErrFloatingModeDisabled = errors.New("floating mode is disabled")
)

// TilingController binds tiling trees to desktops and mediates host events.
//
// It must be driven from a single goroutine: every operation runs to
// completion before the next one starts, and nothing is locked.
type TilingController struct {
	host    port.WindowHost
	config  port.TilingConfig
	tilable port.TilablePredicate

	shadows   *ShadowTracker
	desktops  *desktopRegistry
	splitMode entity.SplitMode
	swapFrom  entity.WindowID

	onLayout func(entity.DesktopID)
}

// ControllerOption configures a TilingController.
type ControllerOption func(*TilingController)

// WithTilablePredicate replaces DefaultTilable.
func WithTilablePredicate(p port.TilablePredicate) ControllerOption {
	return func(c *TilingController) {
		if p != nil {
			c.tilable = p
		}
	}
}

// WithLayoutObserver registers fn to run after a desktop's layout changed.
func WithLayoutObserver(fn func(desk entity.DesktopID)) ControllerOption {
	return func(c *TilingController) {
		c.onLayout = fn
	}
}

// WithSplitMode sets the initial split mode.
func WithSplitMode(mode entity.SplitMode) ControllerOption {
	return func(c *TilingController) {
		c.splitMode = mode
	}
}

// NewTilingController creates a controller. Desktop states are created on
// first reference from cfg.
func NewTilingController(host port.WindowHost, cfg port.TilingConfig, opts ...ControllerOption) *TilingController {
	c := &TilingController{
		host:      host,
		config:    cfg,
		tilable:   DefaultTilable,
		shadows:   NewShadowTracker(),
		desktops:  newDesktopRegistry(cfg.Desktop),
		splitMode: entity.SplitModeHorizontal,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddWindow tiles a window next to the focused window.
// Windows that are not tilable, sticky, floating, already tiled or on a
// desktop without tiling are left alone.
func (c *TilingController) AddWindow(ctx context.Context, id entity.WindowID) error {
	info, ok, err := c.host.Window(ctx, id)
	if err != nil {
		return fmt.Errorf("get window %s: %w", id, err)
	}
	if !ok {
		logging.FromContext(ctx).Debug().Str("window", string(id)).Msg("add ignored, window unknown to host")
		return nil
	}
	return c.addWindow(ctx, info)
}

func (c *TilingController) addWindow(ctx context.Context, info entity.WindowInfo) error {
	st, inserted, err := c.insertWindow(ctx, info)
	if !inserted {
		return err
	}
	return errors.Join(err, c.reapply(ctx, st))
}

// insertWindow puts a window into its desktop tree without laying it out.
func (c *TilingController) insertWindow(ctx context.Context, info entity.WindowInfo) (*DesktopState, bool, error) {
	log := logging.FromContext(ctx)

	if !c.tilable(info, c.config.Global()) {
		return nil, false, nil
	}
	if st, _ := c.desktops.holding(info.ID); st != nil {
		return nil, false, nil
	}

	// Original is recaptured on every add, even when the checks below keep
	// the window out of the tree: restore always targets the state the
	// window had right before it last entered tiling.
	shadow := c.shadows.GetOrCreate(info, true)

	st := c.desktops.get(info.Desktop)
	if !st.Enabled() {
		return nil, false, nil
	}
	if info.Sticky || shadow.Floating {
		return nil, false, nil
	}
	if c.splitMode == entity.SplitModeFloat {
		shadow.Floating = true
		log.Debug().Str("window", string(info.ID)).Msg("split mode is float, window left floating")
		return nil, false, nil
	}

	anchor := c.anchorFor(ctx, st, info.ID)
	st.Tree.Insert(anchor, info.ID, c.splitMode.Axis())
	log.Debug().
		Str("window", string(info.ID)).
		Stringer("desktop", st.ID).
		Stringer("axis", c.splitMode.Axis()).
		Int("tiled", st.Tree.Len()).
		Msg("window tiled")

	return st, true, c.applyWindowSettings(ctx, info, shadow)
}

// anchorFor returns the leaf of the focused window, or NoNode for the root.
func (c *TilingController) anchorFor(ctx context.Context, st *DesktopState, id entity.WindowID) bsp.NodeID {
	log := logging.FromContext(ctx)

	focused, err := c.host.FocusedWindow(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("cannot read focused window, inserting at root")
		return bsp.NoNode
	}
	if focused == "" || focused == id {
		return bsp.NoNode
	}
	if leaf := st.Tree.Find(focused); leaf != bsp.NoNode {
		return leaf
	}

	if st.Tree.Empty() || c.shadows.IsFloating(focused) {
		return bsp.NoNode
	}
	if _, known := c.shadows.Get(focused); !known {
		return bsp.NoNode
	}
	info, ok, err := c.host.Window(ctx, focused)
	if err == nil && ok && !info.Sticky && info.Desktop == st.ID && c.tilable(info, c.config.Global()) {
		log.Warn().
			Str("window", string(id)).
			Str("focused", string(focused)).
			Msg("focused window has no leaf, inserting at root")
	}
	return bsp.NoNode
}

// applyWindowSettings unmaximizes a tiled window and sets its decoration
// according to the show-titles option.
func (c *TilingController) applyWindowSettings(ctx context.Context, info entity.WindowInfo, shadow *entity.WindowShadow) error {
	global := c.config.Global()

	var errs []error
	if info.Maximize != entity.MaximizeNone {
		errs = append(errs, hostErr(ctx, info.ID, "unmaximize",
			c.host.SetMaximize(ctx, info.ID, entity.MaximizeNone)))
	}
	switch {
	case !global.ShowTitles && info.Decoration != entity.PixelDecoration:
		errs = append(errs, hostErr(ctx, info.ID, "set decoration",
			c.host.SetDecoration(ctx, info.ID, entity.PixelDecoration)))
	case global.ShowTitles && info.Decoration == entity.PixelDecoration:
		errs = append(errs, hostErr(ctx, info.ID, "set decoration",
			c.host.SetDecoration(ctx, info.ID, originalDecoration(shadow))))
	}
	return errors.Join(errs...)
}

func originalDecoration(sh *entity.WindowShadow) string {
	if sh == nil || sh.Original.Decoration == "" {
		return entity.DefaultDecoration
	}
	return sh.Original.Decoration
}

// RemoveWindow takes a window out of its tree and lays out the rest.
// The window itself is not restored.
func (c *TilingController) RemoveWindow(ctx context.Context, id entity.WindowID) error {
	st, leaf := c.desktops.holding(id)
	if st == nil {
		return nil
	}
	st.Tree.Remove(leaf)
	logging.FromContext(ctx).Debug().
		Str("window", string(id)).
		Stringer("desktop", st.ID).
		Msg("window untiled")
	return c.reapply(ctx, st)
}

// RestoreWindow gives a tiled window back its pre-tiling geometry,
// maximize state and decoration. It does not change the tree.
func (c *TilingController) RestoreWindow(ctx context.Context, id entity.WindowID) error {
	if st, _ := c.desktops.holding(id); st == nil {
		return nil
	}
	return c.restore(ctx, id)
}

func (c *TilingController) restore(ctx context.Context, id entity.WindowID) error {
	sh, ok := c.shadows.Get(id)
	if !ok {
		logging.FromContext(ctx).Warn().Str("window", string(id)).Msg("tiled window has no shadow state")
		return nil
	}
	info, ok, err := c.host.Window(ctx, id)
	if err != nil {
		return fmt.Errorf("get window %s: %w", id, err)
	}
	if !ok {
		return nil
	}

	orig := sh.Original
	errs := []error{hostErr(ctx, id, "move/resize", c.host.MoveResize(ctx, id, orig.Geometry))}
	c.shadows.SetExpected(id, orig.Geometry)
	c.shadows.SetFrameAdjustment(id, info.FrameAdjustment())

	if orig.Maximize != info.Maximize {
		errs = append(errs, hostErr(ctx, id, "maximize", c.host.SetMaximize(ctx, id, orig.Maximize)))
	}
	if deco := originalDecoration(sh); deco != info.Decoration {
		errs = append(errs, hostErr(ctx, id, "set decoration", c.host.SetDecoration(ctx, id, deco)))
	}
	return errors.Join(errs...)
}

// ToggleFloating flips a window between tiled and floating.
func (c *TilingController) ToggleFloating(ctx context.Context, id entity.WindowID) error {
	info, ok, err := c.host.Window(ctx, id)
	if err != nil {
		return fmt.Errorf("get window %s: %w", id, err)
	}
	if !ok || !c.tilable(info, c.config.Global()) {
		return nil
	}

	st, _ := c.desktops.holding(id)
	shadow := c.shadows.GetOrCreate(info, st == nil)
	shadow.Floating = !shadow.Floating
	logging.FromContext(ctx).Debug().
		Str("window", string(id)).
		Bool("floating", shadow.Floating).
		Msg("floating toggled")

	if !c.desktops.get(info.Desktop).Enabled() {
		return nil
	}
	if shadow.Floating {
		return errors.Join(c.RestoreWindow(ctx, id), c.RemoveWindow(ctx, id))
	}
	return c.addWindow(ctx, info)
}

// IsFloating reports whether a window opted out of tiling.
func (c *TilingController) IsFloating(id entity.WindowID) bool {
	return c.shadows.IsFloating(id)
}

// IsTiled reports whether a window holds a leaf in some desktop tree.
func (c *TilingController) IsTiled(id entity.WindowID) bool {
	st, _ := c.desktops.holding(id)
	return st != nil
}

// SwapWindows exchanges the positions of two tiled windows of one desktop.
func (c *TilingController) SwapWindows(ctx context.Context, a, b entity.WindowID) error {
	sa, la := c.desktops.holding(a)
	sb, lb := c.desktops.holding(b)
	if sa == nil || sb == nil {
		logging.FromContext(ctx).Debug().
			Str("first", string(a)).
			Str("second", string(b)).
			Msg("swap ignored, window not tiled")
		return nil
	}
	if sa != sb {
		return fmt.Errorf("swap %s with %s: %w", a, b, ErrNotSameDesktop)
	}
	if la == lb {
		return nil
	}
	sa.Tree.Swap(la, lb)
	return c.reapply(ctx, sa)
}

// BeginSwap remembers the window a mouse swap starts from. An empty id
// means the window under the pointer.
func (c *TilingController) BeginSwap(ctx context.Context, id entity.WindowID) error {
	c.swapFrom = ""
	if id == "" {
		var err error
		if id, err = c.host.WindowUnderPointer(ctx); err != nil {
			return fmt.Errorf("window under pointer: %w", err)
		}
	}
	if !c.IsTiled(id) {
		return nil
	}
	c.swapFrom = id
	return nil
}

// EndSwap swaps the window remembered by BeginSwap with id, or with the
// window under the pointer when id is empty. Windows on different desktops
// are left alone.
func (c *TilingController) EndSwap(ctx context.Context, id entity.WindowID) error {
	from := c.swapFrom
	c.swapFrom = ""
	if from == "" {
		return nil
	}
	if id == "" {
		var err error
		if id, err = c.host.WindowUnderPointer(ctx); err != nil {
			return fmt.Errorf("window under pointer: %w", err)
		}
	}

	sa, _ := c.desktops.holding(from)
	sb, _ := c.desktops.holding(id)
	if sa == nil || sb == nil || sa != sb {
		return nil
	}
	return c.SwapWindows(ctx, from, id)
}

// MoveFocusAcrossEdge swaps the focused window with its neighbour in dir.
func (c *TilingController) MoveFocusAcrossEdge(ctx context.Context, dir entity.Direction) error {
	focused, err := c.host.FocusedWindow(ctx)
	if err != nil {
		return fmt.Errorf("focused window: %w", err)
	}
	current, err := c.host.CurrentDesktop(ctx)
	if err != nil {
		return fmt.Errorf("current desktop: %w", err)
	}

	st, leaf := c.desktops.holding(focused)
	if st == nil || st.ID != current {
		return nil
	}
	if !st.Tree.Move(leaf, dir) {
		logging.FromContext(ctx).Debug().
			Str("window", string(focused)).
			Str("direction", string(dir)).
			Msg("window already at the edge")
		return nil
	}
	return c.reapply(ctx, st)
}

// SplitMode returns the mode used for the next inserted window.
func (c *TilingController) SplitMode() entity.SplitMode {
	return c.splitMode
}

// SetSplitMode selects the mode used for the next inserted window.
func (c *TilingController) SetSplitMode(mode entity.SplitMode) error {
	if mode == entity.SplitModeFloat && !c.config.Global().FloatingMode {
		return ErrFloatingModeDisabled
	}
	c.splitMode = mode
	return nil
}

// SetSplitAxis selects a tiling split mode from an axis.
func (c *TilingController) SetSplitAxis(axis entity.SplitAxis) {
	if axis == entity.SplitVertical {
		c.splitMode = entity.SplitModeVertical
		return
	}
	c.splitMode = entity.SplitModeHorizontal
}

// NextSplitMode cycles horizontal, vertical and float. Float is skipped
// unless floating mode is enabled.
func (c *TilingController) NextSplitMode() entity.SplitMode {
	c.splitMode = c.splitMode.Next(c.config.Global().FloatingMode)
	return c.splitMode
}

// reapply lays out a desktop tree into the usable area and sends the
// resulting geometry to the host. Leaves whose window the host no longer
// knows are dropped first.
func (c *TilingController) reapply(ctx context.Context, st *DesktopState) error {
	if !st.Enabled() || st.Tree.Empty() {
		return nil
	}
	log := logging.FromContext(ctx)

	infos := make(map[entity.WindowID]entity.WindowInfo, st.Tree.Len())
	var errs []error
	for _, w := range st.Tree.Windows() {
		info, ok, err := c.host.Window(ctx, w)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("get window %s: %w", w, err))
		case !ok:
			log.Warn().Str("window", string(w)).Msg("tiled window vanished from host, dropping leaf")
			st.Tree.RemoveWindow(w)
			c.shadows.Remove(w)
		default:
			infos[w] = info
		}
	}
	if st.Tree.Empty() {
		c.notify(st.ID)
		return errors.Join(errs...)
	}

	area, err := c.host.UsableArea(ctx, st.ID)
	if err != nil {
		return errors.Join(append(errs, fmt.Errorf("usable area of %s: %w", st.ID, err))...)
	}
	st.Tree.Layout(area, st.Settings.Padding)

	st.Tree.Walk(func(leaf bsp.NodeID, w entity.WindowID) {
		info, ok := infos[w]
		if !ok {
			return
		}
		rect := st.Tree.Rect(leaf)
		c.shadows.SetExpected(w, rect)
		c.shadows.SetFrameAdjustment(w, info.FrameAdjustment())
		if info.Geometry == rect {
			return
		}
		errs = append(errs, hostErr(ctx, w, "move/resize", c.host.MoveResize(ctx, w, rect)))
	})

	c.notify(st.ID)
	return errors.Join(errs...)
}

func (c *TilingController) notify(desk entity.DesktopID) {
	if c.onLayout != nil {
		c.onLayout(desk)
	}
}

// hostErr logs a failed host command and wraps it.
func hostErr(ctx context.Context, id entity.WindowID, op string, err error) error {
	if err == nil {
		return nil
	}
	logging.FromContext(ctx).Error().
		Err(err).
		Str("window", string(id)).
		Str("op", op).
		Msg("host command failed")
	return fmt.Errorf("%s %s: %w", op, id, err)
}
