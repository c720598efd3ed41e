package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/bnema/tiler/internal/domain/bsp"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/logging"
)

// Start tiles the windows already present on every desktop that has tiling
// enabled.
func (c *TilingController) Start(ctx context.Context) error {
	desks, err := c.host.Desktops(ctx)
	if err != nil {
		return fmt.Errorf("list desktops: %w", err)
	}

	var errs []error
	for _, desk := range desks {
		st := c.desktops.get(desk)
		if !st.Enabled() {
			continue
		}
		errs = append(errs, c.addAll(ctx, st))
	}
	logging.FromContext(ctx).Info().
		Int("desktops", len(desks)).
		Int("windows", c.shadows.Len()).
		Msg("tiling started")
	return errors.Join(errs...)
}

// SetDesktopStacks changes the stack count of one desktop. Zero disables
// tiling there and restores every window; any other count enables it.
func (c *TilingController) SetDesktopStacks(ctx context.Context, desk entity.DesktopID, stacks int) error {
	st := c.desktops.get(desk)
	settings := st.Settings
	settings.Stacks = max(stacks, 0)
	return c.applyDesktopSettings(ctx, st, settings)
}

// OnConfigurationChanged re-reads the settings of every desktop and applies
// stack and padding changes.
func (c *TilingController) OnConfigurationChanged(ctx context.Context) error {
	if !c.config.Global().FloatingMode && c.splitMode == entity.SplitModeFloat {
		c.splitMode = entity.SplitModeHorizontal
	}

	desks, err := c.host.Desktops(ctx)
	if err != nil {
		return fmt.Errorf("list desktops: %w", err)
	}
	for _, id := range c.desktops.ids() {
		if !slices.Contains(desks, id) {
			desks = append(desks, id)
		}
	}
	sortDesktops(desks)

	var errs []error
	for _, desk := range desks {
		st, ok := c.desktops.lookup(desk)
		if !ok {
			st = c.desktops.get(desk)
			st.Settings = entity.DesktopSettings{}
		}
		errs = append(errs, c.applyDesktopSettings(ctx, st, c.config.Desktop(desk)))
	}
	return errors.Join(errs...)
}

// applyDesktopSettings moves a desktop from its current settings to next.
func (c *TilingController) applyDesktopSettings(ctx context.Context, st *DesktopState, next entity.DesktopSettings) error {
	ctx = logging.WithDesktop(ctx, st.ID)
	log := logging.FromContext(ctx)
	prev := st.Settings
	st.Settings = next

	switch {
	case !next.Enabled():
		if !prev.Enabled() {
			return nil
		}
		log.Info().Msg("tiling disabled")
		return c.teardown(ctx, st)

	case prev.Stacks == next.Stacks:
		var errs []error
		for _, w := range st.Tree.Windows() {
			info, ok, err := c.host.Window(ctx, w)
			if err != nil {
				errs = append(errs, fmt.Errorf("get window %s: %w", w, err))
				continue
			}
			if !ok {
				continue
			}
			sh, _ := c.shadows.Get(w)
			errs = append(errs, c.applyWindowSettings(ctx, info, sh))
		}
		errs = append(errs, c.reapply(ctx, st))
		return errors.Join(errs...)

	default:
		if !prev.Enabled() {
			log.Info().Int("stacks", next.Stacks).Msg("tiling enabled")
		}
		return c.addAll(ctx, st)
	}
}

// addAll inserts every eligible window of a desktop and lays the tree out
// once at the end.
func (c *TilingController) addAll(ctx context.Context, st *DesktopState) error {
	windows, err := c.host.Windows(ctx, st.ID)
	if err != nil {
		return fmt.Errorf("list windows of %s: %w", st.ID, err)
	}

	var errs []error
	for _, info := range windows {
		if info.Desktop != st.ID {
			continue
		}
		_, _, err := c.insertWindow(ctx, info)
		errs = append(errs, err)
	}
	errs = append(errs, c.reapply(ctx, st))
	return errors.Join(errs...)
}

// teardown restores every window of a desktop and frees its tree.
func (c *TilingController) teardown(ctx context.Context, st *DesktopState) error {
	var errs []error
	st.Tree.Walk(func(_ bsp.NodeID, w entity.WindowID) {
		errs = append(errs, c.restore(ctx, w))
	})
	st.Tree.Free()
	c.notify(st.ID)
	return errors.Join(errs...)
}

// Shutdown restores every tiled window and drops all tiling state.
func (c *TilingController) Shutdown(ctx context.Context) error {
	var errs []error
	for _, id := range c.desktops.ids() {
		st, _ := c.desktops.lookup(id)
		errs = append(errs, c.teardown(logging.WithDesktop(ctx, id), st))
	}
	c.desktops.reset()
	c.shadows = NewShadowTracker()
	c.swapFrom = ""
	logging.FromContext(ctx).Info().Msg("tiling stopped")
	return errors.Join(errs...)
}

// DesktopInfo summarises the tiling state of one desktop.
type DesktopInfo struct {
	ID       entity.DesktopID
	Settings entity.DesktopSettings
	Windows  int
}

// Desktops lists every desktop the controller has state for.
func (c *TilingController) Desktops() []DesktopInfo {
	ids := c.desktops.ids()
	out := make([]DesktopInfo, 0, len(ids))
	for _, id := range ids {
		st, _ := c.desktops.lookup(id)
		out = append(out, DesktopInfo{ID: id, Settings: st.Settings, Windows: st.Tree.Len()})
	}
	return out
}

// DesktopSettings returns the settings currently applied to a desktop.
func (c *TilingController) DesktopSettings(desk entity.DesktopID) entity.DesktopSettings {
	if st, ok := c.desktops.lookup(desk); ok {
		return st.Settings
	}
	return c.config.Desktop(desk)
}

// DesktopLayout returns the last computed rectangle of every tiled window.
func (c *TilingController) DesktopLayout(desk entity.DesktopID) map[entity.WindowID]entity.Rect {
	st, ok := c.desktops.lookup(desk)
	if !ok {
		return map[entity.WindowID]entity.Rect{}
	}
	return st.Tree.Rects()
}

// WindowLayout returns the desktop and rectangle of a tiled window.
func (c *TilingController) WindowLayout(id entity.WindowID) (entity.DesktopID, entity.Rect, error) {
	st, leaf := c.desktops.holding(id)
	if st == nil {
		return entity.DesktopID{}, entity.Rect{}, fmt.Errorf("%s: %w", id, ErrWindowNotFound)
	}
	return st.ID, st.Tree.Rect(leaf), nil
}

// Snapshot captures the tree of a desktop. ok is false when nothing is tiled.
func (c *TilingController) Snapshot(desk entity.DesktopID) (*entity.LayoutSnapshot, bool) {
	st, ok := c.desktops.lookup(desk)
	if !ok || st.Tree.Empty() {
		return nil, false
	}
	return &entity.LayoutSnapshot{
		Version:     entity.LayoutSnapshotVersion,
		Desktop:     desk,
		Root:        st.Tree.Snapshot(),
		WindowCount: st.Tree.Len(),
		SavedAt:     time.Now(),
	}, true
}

// ApplySnapshot replaces the tree of snap.Desktop with the stored shape.
// Only windows still on that desktop and eligible for tiling are kept;
// windows tiled now but missing from the snapshot are inserted at the root.
func (c *TilingController) ApplySnapshot(ctx context.Context, snap *entity.LayoutSnapshot) error {
	if snap == nil {
		return bsp.ErrInvalidSnapshot
	}
	ctx = logging.WithDesktop(ctx, snap.Desktop)
	st := c.desktops.get(snap.Desktop)
	if !st.Enabled() {
		return fmt.Errorf("restore %s: %w", snap.Desktop, ErrTilingDisabled)
	}

	windows, err := c.host.Windows(ctx, snap.Desktop)
	if err != nil {
		return fmt.Errorf("list windows of %s: %w", snap.Desktop, err)
	}
	global := c.config.Global()
	eligible := make(map[entity.WindowID]entity.WindowInfo, len(windows))
	for _, info := range windows {
		if info.Desktop != snap.Desktop || info.Sticky || c.shadows.IsFloating(info.ID) || !c.tilable(info, global) {
			continue
		}
		if other, _ := c.desktops.holding(info.ID); other != nil && other != st {
			continue
		}
		eligible[info.ID] = info
	}

	tree, err := bsp.FromSnapshot(snap.Root, func(w entity.WindowID) bool {
		_, ok := eligible[w]
		return ok
	})
	if err != nil {
		return fmt.Errorf("restore %s: %w", snap.Desktop, err)
	}
	for _, w := range st.Tree.Windows() {
		if !tree.Contains(w) {
			tree.Insert(bsp.NoNode, w, c.splitMode.Axis())
		}
	}

	var errs []error
	for _, w := range tree.Windows() {
		if st.Tree.Contains(w) {
			continue
		}
		info := eligible[w]
		errs = append(errs, c.applyWindowSettings(ctx, info, c.shadows.GetOrCreate(info, true)))
	}

	st.Tree = tree
	logging.FromContext(ctx).Info().
		Int("windows", tree.Len()).
		Msg("layout restored")
	errs = append(errs, c.reapply(ctx, st))
	return errors.Join(errs...)
}
