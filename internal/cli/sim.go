package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/tiler/internal/application/usecase"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/infrastructure/config"
	"github.com/bnema/tiler/internal/infrastructure/simhost"
	"github.com/bnema/tiler/internal/logging"
)

// Window states reported in results.
const (
	StateTiled    = "tiled"
	StateFloating = "floating"
	StateFree     = "free"
	StateIconic   = "iconic"
	StateSticky   = "sticky"
)

// Sim drives a tiling controller against the in-memory host. Every
// simulated user action is dispatched to the controller before returning.
type Sim struct {
	Host *simhost.Host
	Ctrl *usecase.TilingController

	// cfg is read through a static gateway; ApplyConfig swaps its content.
	cfg *config.Config
}

// NewSim creates a host, a controller reading cfg and tiles the (empty)
// desktops. A nil cfg means the defaults.
func NewSim(ctx context.Context, hostCfg simhost.Config, cfg *config.Config, opts ...usecase.ControllerOption) (*Sim, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	host := simhost.New(hostCfg)
	ctrl := usecase.NewTilingController(host, config.NewStaticTilingGateway(cfg), opts...)
	if err := ctrl.Start(ctx); err != nil {
		return nil, fmt.Errorf("start controller: %w", err)
	}
	return &Sim{Host: host, Ctrl: ctrl, cfg: cfg}, nil
}

// Config returns a copy of the configuration the controller reads.
func (s *Sim) Config() config.Config {
	c := *s.cfg
	c.Tiling.Desktops = slices.Clone(s.cfg.Tiling.Desktops)
	return c
}

// ApplyConfig replaces the configuration and lets the controller re-read it.
func (s *Sim) ApplyConfig(ctx context.Context, cfg config.Config) error {
	*s.cfg = cfg
	return s.Ctrl.OnConfigurationChanged(ctx)
}

func (s *Sim) dispatch(ctx context.Context, ev entity.Event, err error) error {
	if err != nil {
		return err
	}
	return s.Ctrl.HandleEvent(ctx, ev)
}

// Open maps a window and, when focus is set, focuses it after it was tiled.
func (s *Sim) Open(ctx context.Context, spec simhost.WindowSpec, focus bool) (entity.WindowID, error) {
	info, ev, err := s.Host.Spawn(spec)
	if err != nil {
		return "", err
	}
	ctx = logging.WithWindow(ctx, info.ID)
	if err := s.Ctrl.HandleEvent(ctx, ev); err != nil {
		return info.ID, err
	}
	if focus {
		if err := s.Host.FocusWindow(ctx, info.ID); err != nil {
			return info.ID, err
		}
	}
	return info.ID, nil
}

// Close destroys a window.
func (s *Sim) Close(ctx context.Context, id entity.WindowID) error {
	ev, err := s.Host.Close(id)
	return s.dispatch(ctx, ev, err)
}

// Focus focuses a window.
func (s *Sim) Focus(ctx context.Context, id entity.WindowID) error {
	return s.Host.FocusWindow(ctx, id)
}

// Drag moves a window to geom the way a mouse move does.
func (s *Sim) Drag(ctx context.Context, id entity.WindowID, geom entity.Rect) error {
	ev, err := s.Host.MoveTo(id, geom)
	return s.dispatch(ctx, ev, err)
}

// Resize performs an interactive resize: grab the handle, drag the frame to
// geom, release.
func (s *Sim) Resize(ctx context.Context, id entity.WindowID, handle entity.ResizeHandle, geom entity.Rect) error {
	ev, err := s.Host.BeginResize(id, handle)
	if err := s.dispatch(ctx, ev, err); err != nil {
		return err
	}
	ev, err = s.Host.ResizeTo(id, geom)
	if err := s.dispatch(ctx, ev, err); err != nil {
		return err
	}
	return s.Host.EndResize(id)
}

// ResizeBy grows (or shrinks) a window by dw/dh pixels on the sides moved
// by handle, starting from its current geometry.
func (s *Sim) ResizeBy(ctx context.Context, id entity.WindowID, handle entity.ResizeHandle, dw, dh int) error {
	info, ok := s.Host.Info(id)
	if !ok {
		return fmt.Errorf("%w: %s", simhost.ErrUnknownWindow, id)
	}
	g := info.Geometry
	e := handle.Edges()
	switch {
	case e.Has(entity.EdgeLeft):
		g.X -= dw
		g.W += dw
	case e.Has(entity.EdgeRight):
		g.W += dw
	}
	switch {
	case e.Has(entity.EdgeTop):
		g.Y -= dh
		g.H += dh
	case e.Has(entity.EdgeBottom):
		g.H += dh
	}
	return s.Resize(ctx, id, handle, g)
}

// Iconify minimizes or restores a window.
func (s *Sim) Iconify(ctx context.Context, id entity.WindowID, iconic bool) error {
	if iconic {
		ev, err := s.Host.Iconify(id)
		return s.dispatch(ctx, ev, err)
	}
	ev, err := s.Host.Uniconify(id)
	return s.dispatch(ctx, ev, err)
}

// ShowDesktop iconifies (or brings back) every window of the current desktop.
func (s *Sim) ShowDesktop(ctx context.Context, show bool) error {
	for _, ev := range s.Host.ShowDesktop(show) {
		if err := s.Ctrl.HandleEvent(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// SetSticky changes the sticky property of a window.
func (s *Sim) SetSticky(ctx context.Context, id entity.WindowID, sticky bool) error {
	ev, err := s.Host.SetSticky(id, sticky)
	return s.dispatch(ctx, ev, err)
}

// SendToDesktop moves a window to another desktop.
func (s *Sim) SendToDesktop(ctx context.Context, id entity.WindowID, desk entity.DesktopID) error {
	ev, err := s.Host.SendToDesktop(id, desk)
	return s.dispatch(ctx, ev, err)
}

// SwitchDesktop changes the current desktop. The controller is not involved.
func (s *Sim) SwitchDesktop(desk entity.DesktopID) error {
	return s.Host.SwitchDesktop(desk)
}

// ResizeOutput changes the screen size.
func (s *Sim) ResizeOutput(ctx context.Context, w, h int) error {
	screen := s.Host.Screen()
	screen.W, screen.H = w, h
	return s.Ctrl.HandleEvent(ctx, s.Host.ResizeScreen(screen))
}

// Resume opens the windows named by the stored layouts on their desktops
// and restores each layout. Layouts of desktops the host does not have or
// that do not tile are skipped. It returns the number of desktops restored.
func (s *Sim) Resume(ctx context.Context, persist *usecase.PersistLayoutsUseCase) (int, error) {
	snaps, err := persist.List(ctx)
	if err != nil {
		return 0, err
	}
	log := logging.FromContext(ctx)

	restored := 0
	var errs []error
	for _, snap := range snaps {
		desk := snap.Desktop
		if !s.Ctrl.DesktopSettings(desk).Enabled() {
			log.Debug().Stringer("desktop", desk).Msg("skipping layout of desktop without tiling")
			continue
		}
		var openErr error
		for _, id := range snap.Root.Windows() {
			if _, ok := s.Host.Info(id); ok {
				continue
			}
			if _, openErr = s.Open(ctx, simhost.WindowSpec{ID: id, Desktop: &desk}, false); openErr != nil {
				break
			}
		}
		switch {
		case errors.Is(openErr, simhost.ErrUnknownDesktop):
			log.Debug().Stringer("desktop", desk).Msg("skipping layout of unknown desktop")
			continue
		case openErr != nil:
			errs = append(errs, openErr)
			continue
		}
		if err := persist.Restore(ctx, desk); err != nil {
			errs = append(errs, err)
			continue
		}
		restored++
	}
	return restored, errors.Join(errs...)
}

// WindowState classifies a window for display.
func (s *Sim) WindowState(info entity.WindowInfo) string {
	switch {
	case info.Iconic:
		return StateIconic
	case info.Sticky:
		return StateSticky
	case s.Ctrl.IsTiled(info.ID):
		return StateTiled
	case s.Ctrl.IsFloating(info.ID):
		return StateFloating
	default:
		return StateFree
	}
}

// WindowResult is the final state of one window.
type WindowResult struct {
	ID         entity.WindowID `json:"id"`
	Desktop    string          `json:"desktop"`
	State      string          `json:"state"`
	Focused    bool            `json:"focused,omitempty"`
	Decoration string          `json:"decoration"`
	X          int             `json:"x"`
	Y          int             `json:"y"`
	W          int             `json:"w"`
	H          int             `json:"h"`
}

// DesktopResult is the final tiling state of one desktop.
type DesktopResult struct {
	Desktop string               `json:"desktop"`
	Stacks  int                  `json:"stacks"`
	Padding int                  `json:"padding"`
	Windows int                  `json:"windows"`
	Tree    *entity.SnapshotNode `json:"tree,omitempty"`
}

// Result is the observable state after a simulation.
type Result struct {
	Name      string          `json:"name,omitempty"`
	SplitMode string          `json:"split_mode"`
	Focused   entity.WindowID `json:"focused,omitempty"`
	Windows   []WindowResult  `json:"windows"`
	Desktops  []DesktopResult `json:"desktops"`
	Commands  int             `json:"commands"`
}

// Result captures the current state of the host and controller.
func (s *Sim) Result() Result {
	focused := s.Host.Focused()
	res := Result{
		SplitMode: s.Ctrl.SplitMode().String(),
		Focused:   focused,
		Windows:   []WindowResult{},
		Desktops:  []DesktopResult{},
		Commands:  len(s.Host.Commands()),
	}
	for _, info := range s.Host.All() {
		g := info.Geometry
		res.Windows = append(res.Windows, WindowResult{
			ID:         info.ID,
			Desktop:    info.Desktop.String(),
			State:      s.WindowState(info),
			Focused:    info.ID == focused,
			Decoration: info.Decoration,
			X:          g.X,
			Y:          g.Y,
			W:          g.W,
			H:          g.H,
		})
	}
	for _, d := range s.Ctrl.Desktops() {
		dr := DesktopResult{
			Desktop: d.ID.String(),
			Stacks:  d.Settings.Stacks,
			Padding: d.Settings.Padding,
			Windows: d.Windows,
		}
		if snap, ok := s.Ctrl.Snapshot(d.ID); ok {
			dr.Tree = snap.Root
		}
		res.Desktops = append(res.Desktops, dr)
	}
	return res
}
