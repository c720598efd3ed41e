package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/tiler/internal/application/usecase"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/infrastructure/config"
	"github.com/bnema/tiler/internal/infrastructure/simhost"
	"github.com/bnema/tiler/internal/logging"
)

// ErrInvalidStep is returned for steps missing a field their action needs.
var ErrInvalidStep = errors.New("invalid scenario step")

// Scenario actions.
const (
	ActionAdd         = "add"
	ActionClose       = "close"
	ActionFocus       = "focus"
	ActionPointer     = "pointer"
	ActionFloat       = "float"
	ActionSwap        = "swap"
	ActionDragSwap    = "drag_swap"
	ActionMove        = "move"
	ActionDrag        = "drag"
	ActionResize      = "resize"
	ActionSplit       = "split"
	ActionStacks      = "stacks"
	ActionIconify     = "iconify"
	ActionUniconify   = "uniconify"
	ActionShowDesktop = "show_desktop"
	ActionHideDesktop = "hide_desktop"
	ActionSticky      = "sticky"
	ActionUnsticky    = "unsticky"
	ActionSend        = "send"
	ActionSwitch      = "switch"
	ActionOutput      = "output"
	ActionConfig      = "config"
	ActionRestore     = "restore"
	ActionShutdown    = "shutdown"
)

// nextSplitMode as a split step mode cycles to the next mode.
const nextSplitMode = "next"

// Scenario is a scripted sequence of user actions run against the
// simulated host.
type Scenario struct {
	Name   string      `toml:"name"`
	Screen ScreenSpec  `toml:"screen"`
	Tiling *TilingSpec `toml:"tiling"`
	Steps  []Step      `toml:"steps"`
}

// ScreenSpec describes the simulated output. Zero values take the host
// defaults.
type ScreenSpec struct {
	Width       int  `toml:"width"`
	Height      int  `toml:"height"`
	ReservedTop *int `toml:"reserved_top"`
	Columns     int  `toml:"columns"`
	Rows        int  `toml:"rows"`
	Zones       int  `toml:"zones"`
	TitleHeight *int `toml:"title_height"`
	BorderWidth *int `toml:"border_width"`
}

// TilingSpec overrides the [tiling] section of the loaded configuration.
type TilingSpec struct {
	TileDialogs   *bool                 `toml:"tile_dialogs"`
	ShowTitles    *bool                 `toml:"show_titles"`
	FloatingMode  *bool                 `toml:"floating_mode"`
	WindowPadding *int                  `toml:"window_padding"`
	DefaultStacks *int                  `toml:"default_stacks"`
	SplitMode     string                `toml:"split_mode"`
	Desktops      []config.DesktopEntry `toml:"desktops"`
}

// Step is one user action. Which fields are read depends on Action.
type Step struct {
	Action    string `toml:"action"`
	Window    string `toml:"window"`
	Other     string `toml:"other"`
	Desktop   []int  `toml:"desktop"`
	Direction string `toml:"direction"`
	Mode      string `toml:"mode"`
	Stacks    *int   `toml:"stacks"`
	Geometry  []int  `toml:"geometry"`
	Handle    string `toml:"handle"`
	DW        int    `toml:"dw"`
	DH        int    `toml:"dh"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`

	// add
	NoFocus       bool   `toml:"no_focus"`
	Decoration    string `toml:"decoration"`
	Maximize      string `toml:"maximize"`
	Dialog        bool   `toml:"dialog"`
	Transient     bool   `toml:"transient"`
	Fullscreen    bool   `toml:"fullscreen"`
	Centered      bool   `toml:"centered"`
	StaticGravity bool   `toml:"static_gravity"`
	Ignored       bool   `toml:"ignored"`
	Sticky        bool   `toml:"sticky"`
	MinH          int    `toml:"min_h"`
	MaxH          int    `toml:"max_h"`

	// config
	Padding    *int  `toml:"padding"`
	ShowTitles *bool `toml:"show_titles"`
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes a TOML scenario. Unknown keys are rejected.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("parse scenario: %s", strict.String())
		}
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &sc, nil
}

// HostConfig returns the simulated host configuration.
func (sc *Scenario) HostConfig() simhost.Config {
	hc := simhost.DefaultConfig()
	s := sc.Screen
	if s.Width > 0 {
		hc.Screen.W = s.Width
	}
	if s.Height > 0 {
		hc.Screen.H = s.Height
	}
	if s.ReservedTop != nil {
		hc.ReservedTop = *s.ReservedTop
	}
	if s.TitleHeight != nil {
		hc.TitleHeight = *s.TitleHeight
	}
	if s.BorderWidth != nil {
		hc.BorderWidth = *s.BorderWidth
	}
	hc.Columns = max(s.Columns, 1)
	hc.Rows = max(s.Rows, 1)
	hc.Zones = max(s.Zones, 1)
	return hc
}

// Config applies the scenario's tiling overrides to a copy of base.
func (sc *Scenario) Config(base *config.Config) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if base != nil {
		*cfg = *base
		cfg.Tiling.Desktops = append([]config.DesktopEntry(nil), base.Tiling.Desktops...)
	}
	if t := sc.Tiling; t != nil {
		if t.TileDialogs != nil {
			cfg.Tiling.TileDialogs = *t.TileDialogs
		}
		if t.ShowTitles != nil {
			cfg.Tiling.ShowTitles = *t.ShowTitles
		}
		if t.FloatingMode != nil {
			cfg.Tiling.FloatingMode = *t.FloatingMode
		}
		if t.WindowPadding != nil {
			cfg.Tiling.WindowPadding = *t.WindowPadding
		}
		if t.DefaultStacks != nil {
			cfg.Tiling.DefaultStacks = *t.DefaultStacks
		}
		if t.Desktops != nil {
			cfg.Tiling.Desktops = append([]config.DesktopEntry(nil), t.Desktops...)
		}
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Options returns the controller options implied by the scenario.
func (sc *Scenario) Options() ([]usecase.ControllerOption, error) {
	if sc.Tiling == nil || sc.Tiling.SplitMode == "" {
		return nil, nil
	}
	mode, err := entity.ParseSplitMode(sc.Tiling.SplitMode)
	if err != nil {
		return nil, err
	}
	return []usecase.ControllerOption{usecase.WithSplitMode(mode)}, nil
}

// Run executes the scenario on a fresh simulation built from base and
// returns it in its final state. Extra options are applied after the
// scenario's own.
func (sc *Scenario) Run(ctx context.Context, base *config.Config, extra ...usecase.ControllerOption) (*Sim, error) {
	cfg, err := sc.Config(base)
	if err != nil {
		return nil, err
	}
	opts, err := sc.Options()
	if err != nil {
		return nil, err
	}
	sim, err := NewSim(ctx, sc.HostConfig(), cfg, append(opts, extra...)...)
	if err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)
	for i, step := range sc.Steps {
		if err := sim.Apply(ctx, step); err != nil {
			return sim, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
		log.Debug().Int("step", i+1).Str("action", step.Action).Str("window", step.Window).Msg("step applied")
	}
	return sim, nil
}

// Apply performs one scenario step.
func (s *Sim) Apply(ctx context.Context, step Step) error {
	id := entity.WindowID(step.Window)
	needWindow := func() error {
		if id == "" {
			return fmt.Errorf("%w: %s needs a window", ErrInvalidStep, step.Action)
		}
		return nil
	}

	action := strings.ToLower(step.Action)
	switch action {
	case ActionAdd:
		spec, err := step.windowSpec()
		if err != nil {
			return err
		}
		_, err = s.Open(ctx, spec, !step.NoFocus)
		return err

	case ActionClose:
		if err := needWindow(); err != nil {
			return err
		}
		return s.Close(ctx, id)

	case ActionFocus:
		if err := needWindow(); err != nil {
			return err
		}
		return s.Focus(ctx, id)

	case ActionPointer:
		return s.Host.SetPointer(id)

	case ActionFloat:
		if err := needWindow(); err != nil {
			return err
		}
		return s.Ctrl.ToggleFloating(ctx, id)

	case ActionSwap:
		if err := needWindow(); err != nil {
			return err
		}
		return s.Ctrl.SwapWindows(ctx, id, entity.WindowID(step.Other))

	case ActionDragSwap:
		if err := s.Ctrl.BeginSwap(ctx, id); err != nil {
			return err
		}
		return s.Ctrl.EndSwap(ctx, entity.WindowID(step.Other))

	case ActionMove:
		dir, err := entity.ParseDirection(step.Direction)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStep, err)
		}
		if id != "" {
			if err := s.Focus(ctx, id); err != nil {
				return err
			}
		}
		return s.Ctrl.MoveFocusAcrossEdge(ctx, dir)

	case ActionDrag:
		if err := needWindow(); err != nil {
			return err
		}
		geom, err := parseGeometry(step.Geometry)
		if err != nil {
			return err
		}
		return s.Drag(ctx, id, geom)

	case ActionResize:
		if err := needWindow(); err != nil {
			return err
		}
		handle, err := entity.ParseResizeHandle(step.Handle)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStep, err)
		}
		if len(step.Geometry) > 0 {
			geom, err := parseGeometry(step.Geometry)
			if err != nil {
				return err
			}
			return s.Resize(ctx, id, handle, geom)
		}
		return s.ResizeBy(ctx, id, handle, step.DW, step.DH)

	case ActionSplit:
		if step.Mode == nextSplitMode {
			s.Ctrl.NextSplitMode()
			return nil
		}
		mode, err := entity.ParseSplitMode(step.Mode)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStep, err)
		}
		return s.Ctrl.SetSplitMode(mode)

	case ActionStacks:
		if step.Stacks == nil {
			return fmt.Errorf("%w: stacks needs a count", ErrInvalidStep)
		}
		desk, err := s.desktop(step.Desktop)
		if err != nil {
			return err
		}
		return s.Ctrl.SetDesktopStacks(ctx, desk, *step.Stacks)

	case ActionIconify, ActionUniconify:
		if err := needWindow(); err != nil {
			return err
		}
		return s.Iconify(ctx, id, action == ActionIconify)

	case ActionShowDesktop, ActionHideDesktop:
		return s.ShowDesktop(ctx, action == ActionShowDesktop)

	case ActionSticky, ActionUnsticky:
		if err := needWindow(); err != nil {
			return err
		}
		return s.SetSticky(ctx, id, action == ActionSticky)

	case ActionSend:
		if err := needWindow(); err != nil {
			return err
		}
		desk, err := s.desktop(step.Desktop)
		if err != nil {
			return err
		}
		return s.SendToDesktop(ctx, id, desk)

	case ActionSwitch:
		desk, err := s.desktop(step.Desktop)
		if err != nil {
			return err
		}
		return s.SwitchDesktop(desk)

	case ActionOutput:
		if step.Width <= 0 || step.Height <= 0 {
			return fmt.Errorf("%w: output needs width and height", ErrInvalidStep)
		}
		return s.ResizeOutput(ctx, step.Width, step.Height)

	case ActionConfig:
		cfg := s.Config()
		if step.Padding != nil {
			cfg.Tiling.WindowPadding = *step.Padding
		}
		if step.ShowTitles != nil {
			cfg.Tiling.ShowTitles = *step.ShowTitles
		}
		if step.Stacks != nil {
			cfg.Tiling.DefaultStacks = *step.Stacks
		}
		if err := config.Validate(&cfg); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStep, err)
		}
		return s.ApplyConfig(ctx, cfg)

	case ActionRestore:
		if err := needWindow(); err != nil {
			return err
		}
		return s.Ctrl.RestoreWindow(ctx, id)

	case ActionShutdown:
		return s.Ctrl.Shutdown(ctx)

	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidStep, step.Action)
	}
}

// desktop converts [x, y] or [x, y, zone]; empty means the current desktop.
func (s *Sim) desktop(v []int) (entity.DesktopID, error) {
	switch len(v) {
	case 0:
		return s.Host.Current(), nil
	case 2:
		return entity.DesktopID{X: v[0], Y: v[1]}, nil
	case 3:
		return entity.DesktopID{X: v[0], Y: v[1], Zone: v[2]}, nil
	default:
		return entity.DesktopID{}, fmt.Errorf("%w: desktop must be [x, y] or [x, y, zone]", ErrInvalidStep)
	}
}

func parseGeometry(v []int) (entity.Rect, error) {
	if len(v) != 4 {
		return entity.Rect{}, fmt.Errorf("%w: geometry must be [x, y, w, h]", ErrInvalidStep)
	}
	return entity.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
}

func parseMaximize(s string) (entity.Maximize, error) {
	for m := entity.MaximizeNone; m <= entity.MaximizeBoth; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return entity.MaximizeNone, fmt.Errorf("%w: unknown maximize state %q", ErrInvalidStep, s)
}

func (step Step) windowSpec() (simhost.WindowSpec, error) {
	spec := simhost.WindowSpec{
		ID:            entity.WindowID(step.Window),
		Decoration:    step.Decoration,
		Sticky:        step.Sticky,
		Dialog:        step.Dialog,
		Transient:     step.Transient,
		Fullscreen:    step.Fullscreen,
		Centered:      step.Centered,
		StaticGravity: step.StaticGravity,
		Ignored:       step.Ignored,
		MinH:          step.MinH,
		MaxH:          step.MaxH,
	}
	switch len(step.Desktop) {
	case 0:
	case 2, 3:
		desk := entity.DesktopID{X: step.Desktop[0], Y: step.Desktop[1]}
		if len(step.Desktop) == 3 {
			desk.Zone = step.Desktop[2]
		}
		spec.Desktop = &desk
	default:
		return spec, fmt.Errorf("%w: desktop must be [x, y] or [x, y, zone]", ErrInvalidStep)
	}
	if len(step.Geometry) > 0 {
		geom, err := parseGeometry(step.Geometry)
		if err != nil {
			return spec, err
		}
		spec.Geometry = geom
	}
	if step.Maximize != "" {
		m, err := parseMaximize(step.Maximize)
		if err != nil {
			return spec, err
		}
		spec.Maximize = m
	}
	return spec, nil
}
