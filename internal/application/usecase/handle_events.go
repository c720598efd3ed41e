package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/logging"
)

// HandleEvent dispatches a host notification.
func (c *TilingController) HandleEvent(ctx context.Context, ev entity.Event) error {
	switch e := ev.(type) {
	case entity.WindowAdded:
		return c.AddWindow(logging.WithWindow(ctx, e.Window), e.Window)
	case entity.WindowRemoved:
		return c.onWindowRemoved(logging.WithWindow(ctx, e.Window), e.Window)
	case entity.WindowMoveEnded:
		return c.onWindowMoved(logging.WithWindow(ctx, e.Window), e.Window)
	case entity.WindowResizeBegin:
		return c.ConstrainResize(logging.WithWindow(ctx, e.Window), e.Window)
	case entity.WindowResizeEnded:
		return c.HandleExternalResize(logging.WithWindow(ctx, e.Window), e.Window)
	case entity.WindowIconified:
		return c.onIconify(logging.WithWindow(ctx, e.Window), e.Window, true)
	case entity.WindowUniconified:
		return c.onIconify(logging.WithWindow(ctx, e.Window), e.Window, false)
	case entity.WindowPropertyChanged:
		if e.Property != entity.PropertySticky {
			return nil
		}
		return c.onStickyChanged(logging.WithWindow(ctx, e.Window), e.Window)
	case entity.WindowDeskChanged:
		return c.onDeskChanged(logging.WithWindow(ctx, e.Window), e.Window, e.From)
	case entity.OutputResized:
		return c.reapplyAll(ctx)
	default:
		return fmt.Errorf("unsupported event %T", ev)
	}
}

// onWindowRemoved drops a destroyed window without restoring it.
func (c *TilingController) onWindowRemoved(ctx context.Context, id entity.WindowID) error {
	if c.swapFrom == id {
		c.swapFrom = ""
	}
	defer c.shadows.Remove(id)

	st, leaf := c.desktops.holding(id)
	if st == nil {
		return nil
	}
	st.Tree.Remove(leaf)
	logging.FromContext(ctx).Debug().Stringer("desktop", st.ID).Msg("closed window untiled")
	return c.reapply(ctx, st)
}

// onWindowMoved snaps a tiled window back to its slot.
func (c *TilingController) onWindowMoved(ctx context.Context, id entity.WindowID) error {
	st, _ := c.desktops.holding(id)
	if st == nil {
		return nil
	}
	return c.reapply(ctx, st)
}

func (c *TilingController) onIconify(ctx context.Context, id entity.WindowID, iconic bool) error {
	info, ok, err := c.host.Window(ctx, id)
	if err != nil {
		return fmt.Errorf("get window %s: %w", id, err)
	}
	if !ok || info.DeskShow {
		return nil
	}
	if iconic {
		return c.RemoveWindow(ctx, id)
	}
	return c.addWindow(ctx, info)
}

func (c *TilingController) onStickyChanged(ctx context.Context, id entity.WindowID) error {
	info, ok, err := c.host.Window(ctx, id)
	if err != nil {
		return fmt.Errorf("get window %s: %w", id, err)
	}
	if !ok || !c.tilable(info, c.config.Global()) || !c.desktops.get(info.Desktop).Enabled() {
		return nil
	}
	if info.Sticky {
		return errors.Join(c.RestoreWindow(ctx, id), c.RemoveWindow(ctx, id))
	}
	return c.addWindow(ctx, info)
}

// onDeskChanged takes a window out of the tree of the desktop it left and
// tiles it on the one it arrived at.
func (c *TilingController) onDeskChanged(ctx context.Context, id entity.WindowID, from entity.DesktopID) error {
	var errs []error
	if st, _ := c.desktops.holding(id); st != nil {
		if st.ID != from {
			logging.FromContext(ctx).Warn().
				Stringer("desktop", st.ID).
				Stringer("from", from).
				Msg("window left a desktop it was not tiled on")
		}
		errs = append(errs, c.restore(ctx, id))
		st.Tree.RemoveWindow(id)
		errs = append(errs, c.reapply(ctx, st))
	}

	info, ok, err := c.host.Window(ctx, id)
	if err != nil {
		return errors.Join(append(errs, fmt.Errorf("get window %s: %w", id, err))...)
	}
	if ok {
		errs = append(errs, c.addWindow(ctx, info))
	}
	return errors.Join(errs...)
}

func (c *TilingController) reapplyAll(ctx context.Context) error {
	var errs []error
	for _, id := range c.desktops.ids() {
		st, _ := c.desktops.lookup(id)
		errs = append(errs, c.reapply(logging.WithDesktop(ctx, id), st))
	}
	return errors.Join(errs...)
}

// HandleExternalResize turns a user resize of a tiled window into a ratio
// change of the divider on the dragged edge. The tree is laid out again in
// every case, so a rejected drag snaps back.
func (c *TilingController) HandleExternalResize(ctx context.Context, id entity.WindowID) error {
	st, leaf := c.desktops.holding(id)
	if st == nil {
		return nil
	}
	sh, ok := c.shadows.Get(id)
	if !ok {
		return nil
	}
	info, ok, err := c.host.Window(ctx, id)
	if err != nil {
		return fmt.Errorf("get window %s: %w", id, err)
	}
	if !ok || info.Geometry == sh.Expected {
		return nil
	}
	log := logging.FromContext(ctx)

	if looksLikeFrameGlitch(sh) {
		log.Debug().Msg("geometry change before first frame adjustment, re-laying out")
		return c.reapply(ctx, st)
	}

	wRatio, hRatio := 1.0, 1.0
	exp, got := sh.Expected, info.Geometry
	if exp.W > 0 && math.Abs(float64(got.W-exp.W)) >= 1 {
		wRatio = float64(got.W) / float64(exp.W)
	}
	if exp.H > 0 && math.Abs(float64(got.H-exp.H)) >= 1 {
		hRatio = float64(got.H) / float64(exp.H)
	}
	wDir, hDir := info.ResizeHandle.Directions()

	if !st.Tree.Resize(leaf, wDir, wRatio, hDir, hRatio) {
		log.Debug().
			Float64("w_ratio", wRatio).
			Float64("h_ratio", hRatio).
			Msg("resize rejected")
	}
	return c.reapply(ctx, st)
}

// looksLikeFrameGlitch reports whether the host has not yet reported a frame
// larger than the client for the window. Some hosts send a geometry change
// right after mapping with the client size as frame size; treating that as a
// user resize would corrupt the ratios, so it only triggers a layout.
func looksLikeFrameGlitch(sh *entity.WindowShadow) bool {
	return sh.LastFrameAdjustment == 0
}

// ConstrainResize removes the handle sides that lie on the outer boundary of
// the tiled area, where there is no divider to move.
func (c *TilingController) ConstrainResize(ctx context.Context, id entity.WindowID) error {
	st, leaf := c.desktops.holding(id)
	if st == nil {
		return nil
	}
	info, ok, err := c.host.Window(ctx, id)
	if err != nil {
		return fmt.Errorf("get window %s: %w", id, err)
	}
	if !ok {
		return nil
	}
	handle := info.ResizeHandle.Without(st.Tree.Edges(leaf))
	if handle == info.ResizeHandle {
		return nil
	}
	logging.FromContext(ctx).Debug().
		Int("from", int(info.ResizeHandle)).
		Int("to", int(handle)).
		Msg("resize handle constrained")
	return hostErr(ctx, id, "set resize handle", c.host.SetResizeHandle(ctx, id, handle))
}
