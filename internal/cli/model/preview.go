// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tiler/internal/application/usecase"
	"github.com/bnema/tiler/internal/cli"
	"github.com/bnema/tiler/internal/cli/styles"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/infrastructure/config"
	"github.com/bnema/tiler/internal/infrastructure/simhost"
	"github.com/bnema/tiler/internal/logging"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// resizeStepDivisor sets the keyboard resize step to 1/20 of the screen.
	resizeStepDivisor = 20
	// previewPadding is the gap the padding key toggles on.
	previewPadding = 8
)

var _ tea.Model = PreviewModel{}

// PreviewModel is an interactive view of the simulated desktops. Keys drive
// the simulated host and the layout is redrawn after every change.
type PreviewModel struct {
	// UI components
	help     help.Model
	keys     styles.PreviewKeyMap
	renderer *styles.LayoutRenderer

	// State
	width     int
	height    int
	nextID    int
	opened    []entity.WindowID
	iconified []entity.WindowID
	status    string
	statusErr bool

	// Dependencies
	ctx     context.Context
	sim     *cli.Sim
	persist *usecase.PersistLayoutsUseCase
	theme   *styles.Theme
}

// PreviewModelConfig holds the dependencies of the preview.
type PreviewModelConfig struct {
	Sim *cli.Sim
	// Persist enables the save and restore keys when set.
	Persist *usecase.PersistLayoutsUseCase
}

// NewPreviewModel creates a preview over cfg.Sim.
func NewPreviewModel(ctx context.Context, theme *styles.Theme, cfg PreviewModelConfig) PreviewModel {
	m := PreviewModel{
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultPreviewKeyMap(),
		renderer: styles.NewLayoutRenderer(theme),
		width:    defaultWidth,
		height:   defaultHeight,
		ctx:      ctx,
		sim:      cfg.Sim,
		persist:  cfg.Persist,
		theme:    theme,
	}
	// Windows restored before the preview started can be focused too.
	for _, info := range cfg.Sim.Host.All() {
		m.opened = append(m.opened, info.ID)
	}
	return m
}

// layoutsSavedMsg is sent when a save finished.
type layoutsSavedMsg struct {
	count int
	err   error
}

// layoutLoadedMsg is sent when a stored layout was read.
type layoutLoadedMsg struct {
	snap *entity.LayoutSnapshot
	err  error
}

// ConfigChangedMsg carries a configuration reloaded from disk. Only the
// [tiling] section is applied to the preview.
type ConfigChangedMsg struct {
	Config *config.Config
}

// Init implements tea.Model.
func (PreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case layoutsSavedMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		return m.info(fmt.Sprintf("saved %d layouts", msg.count)), nil

	case layoutLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		if err := m.sim.Ctrl.ApplySnapshot(m.ctx, msg.snap); err != nil {
			return m.fail(err), nil
		}
		return m.info("restored layout of " + msg.snap.Desktop.String()), nil

	case ConfigChangedMsg:
		cfg := m.sim.Config()
		cfg.Tiling = msg.Config.Tiling
		cfg.Tiling.Desktops = slices.Clone(msg.Config.Tiling.Desktops)
		if err := m.sim.ApplyConfig(m.ctx, cfg); err != nil {
			return m.fail(err), nil
		}
		return m.info("config reloaded"), nil
	}

	return m, nil
}

func (m PreviewModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.nextID++
		id := entity.WindowID(fmt.Sprintf("w%d", m.nextID))
		if _, err = m.sim.Open(m.ctx, simhost.WindowSpec{ID: id}, true); err == nil {
			m.opened = append(m.opened, id)
		}

	case key.Matches(msg, m.keys.Close):
		err = m.withFocused(func(id entity.WindowID) error {
			return m.sim.Close(m.ctx, id)
		})

	case key.Matches(msg, m.keys.NextFocus):
		err = m.cycleFocus(1)

	case key.Matches(msg, m.keys.PrevFocus):
		err = m.cycleFocus(-1)

	case key.Matches(msg, m.keys.MoveLeft):
		err = m.sim.Ctrl.MoveFocusAcrossEdge(m.ctx, entity.DirLeft)
	case key.Matches(msg, m.keys.MoveDown):
		err = m.sim.Ctrl.MoveFocusAcrossEdge(m.ctx, entity.DirDown)
	case key.Matches(msg, m.keys.MoveUp):
		err = m.sim.Ctrl.MoveFocusAcrossEdge(m.ctx, entity.DirUp)
	case key.Matches(msg, m.keys.MoveRight):
		err = m.sim.Ctrl.MoveFocusAcrossEdge(m.ctx, entity.DirRight)

	case key.Matches(msg, m.keys.Grow):
		err = m.resizeFocused(1, 0)
	case key.Matches(msg, m.keys.Shrink):
		err = m.resizeFocused(-1, 0)
	case key.Matches(msg, m.keys.Taller):
		err = m.resizeFocused(0, 1)
	case key.Matches(msg, m.keys.Shorter):
		err = m.resizeFocused(0, -1)

	case key.Matches(msg, m.keys.Float):
		err = m.withFocused(func(id entity.WindowID) error {
			return m.sim.Ctrl.ToggleFloating(m.ctx, id)
		})

	case key.Matches(msg, m.keys.SplitMode):
		mode := m.sim.Ctrl.NextSplitMode()
		return m.info("split mode " + mode.String()), nil

	case key.Matches(msg, m.keys.Iconify):
		err = m.withFocused(func(id entity.WindowID) error {
			if err := m.sim.Iconify(m.ctx, id, true); err != nil {
				return err
			}
			m.iconified = append(m.iconified, id)
			return nil
		})

	case key.Matches(msg, m.keys.Uniconify):
		err = m.uniconifyLast()

	case key.Matches(msg, m.keys.Send):
		err = m.withFocused(func(id entity.WindowID) error {
			return m.sim.SendToDesktop(m.ctx, id, m.nextDesktop())
		})

	case key.Matches(msg, m.keys.Desktop):
		err = m.sim.SwitchDesktop(m.nextDesktop())

	case key.Matches(msg, m.keys.Padding):
		cfg := m.sim.Config()
		if cfg.Tiling.WindowPadding == 0 {
			cfg.Tiling.WindowPadding = previewPadding
		} else {
			cfg.Tiling.WindowPadding = 0
		}
		err = m.sim.ApplyConfig(m.ctx, cfg)

	case key.Matches(msg, m.keys.Titles):
		cfg := m.sim.Config()
		cfg.Tiling.ShowTitles = !cfg.Tiling.ShowTitles
		err = m.sim.ApplyConfig(m.ctx, cfg)

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.Restore):
		return m.restore()

	default:
		return m, nil
	}

	if err != nil {
		return m.fail(err), nil
	}
	m.status = ""
	return m, nil
}

var errNoFocus = errors.New("no focused window")

func (m *PreviewModel) withFocused(fn func(id entity.WindowID) error) error {
	id := m.sim.Host.Focused()
	if id == "" {
		return errNoFocus
	}
	return fn(id)
}

// visible returns the opened windows shown on the current desktop, in
// opening order.
func (m *PreviewModel) visible() []entity.WindowID {
	current := m.sim.Host.Current()
	var out []entity.WindowID
	for _, id := range m.opened {
		info, ok := m.sim.Host.Info(id)
		if !ok || info.Iconic {
			continue
		}
		if info.Desktop == current || info.Sticky {
			out = append(out, id)
		}
	}
	return out
}

func (m *PreviewModel) cycleFocus(step int) error {
	ids := m.visible()
	if len(ids) == 0 {
		return nil
	}
	i := slices.Index(ids, m.sim.Host.Focused())
	switch {
	case i < 0 && step < 0:
		i = len(ids) - 1
	case i < 0:
		i = 0
	default:
		i = (i + step + len(ids)) % len(ids)
	}
	return m.sim.Focus(m.ctx, ids[i])
}

// resizeFocused grows the focused window by one step per unit of dx/dy.
// The handle is chosen so that the window never pushes against the screen
// edge: windows touching the right (bottom) edge are resized from the left
// (top).
func (m *PreviewModel) resizeFocused(dx, dy int) error {
	return m.withFocused(func(id entity.WindowID) error {
		info, ok := m.sim.Host.Info(id)
		if !ok {
			return fmt.Errorf("%w: %s", simhost.ErrUnknownWindow, id)
		}
		area, err := m.sim.Host.UsableArea(m.ctx, info.Desktop)
		if err != nil {
			return err
		}
		g := info.Geometry
		handle := entity.ResizeNone
		if dx != 0 {
			handle = entity.ResizeRight
			if g.Right() >= area.Right() {
				handle = entity.ResizeLeft
			}
		}
		if dy != 0 {
			handle = entity.ResizeBottom
			if g.Bottom() >= area.Bottom() {
				handle = entity.ResizeTop
			}
		}
		return m.sim.ResizeBy(m.ctx, id, handle,
			dx*area.W/resizeStepDivisor, dy*area.H/resizeStepDivisor)
	})
}

func (m *PreviewModel) uniconifyLast() error {
	for len(m.iconified) > 0 {
		last := len(m.iconified) - 1
		id := m.iconified[last]
		m.iconified = m.iconified[:last]
		if info, ok := m.sim.Host.Info(id); ok && info.Iconic {
			return m.sim.Iconify(m.ctx, id, false)
		}
	}
	return nil
}

func (m *PreviewModel) nextDesktop() entity.DesktopID {
	desks, _ := m.sim.Host.Desktops(m.ctx)
	current := m.sim.Host.Current()
	i := slices.Index(desks, current)
	if i < 0 || len(desks) == 0 {
		return current
	}
	return desks[(i+1)%len(desks)]
}

func (m PreviewModel) save() (tea.Model, tea.Cmd) {
	if m.persist == nil {
		return m.fail(errors.New("layout storage not available")), nil
	}
	// Capture now, write in the background.
	var snaps []*entity.LayoutSnapshot
	for _, d := range m.sim.Ctrl.Desktops() {
		if !d.Settings.Enabled() {
			continue
		}
		if snap, ok := m.sim.Ctrl.Snapshot(d.ID); ok {
			snaps = append(snaps, snap)
		}
	}
	ctx, persist := m.ctx, m.persist
	return m.info("saving..."), func() tea.Msg {
		n, err := persist.Store(ctx, snaps)
		return layoutsSavedMsg{count: n, err: err}
	}
}

func (m PreviewModel) restore() (tea.Model, tea.Cmd) {
	if m.persist == nil {
		return m.fail(errors.New("layout storage not available")), nil
	}
	ctx, persist, desk := m.ctx, m.persist, m.sim.Host.Current()
	return m, func() tea.Msg {
		snap, err := persist.Get(ctx, desk)
		return layoutLoadedMsg{snap: snap, err: err}
	}
}

func (m PreviewModel) info(s string) PreviewModel {
	m.status = s
	m.statusErr = false
	return m
}

func (m PreviewModel) fail(err error) PreviewModel {
	logging.FromContext(m.ctx).Debug().Err(err).Msg("preview action failed")
	m.status = err.Error()
	m.statusErr = true
	return m
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	header := m.renderHeader()
	status := m.renderStatus()
	helpView := m.help.View(m.keys)

	rows := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(helpView)
	canvas := m.renderer.Render(m.sim.Host.Screen(), m.panes(), m.width, max(rows, 0))

	parts := []string{header}
	if canvas != "" {
		parts = append(parts, canvas)
	}
	parts = append(parts, status, helpView)
	return strings.Join(parts, "\n")
}

func (m PreviewModel) panes() []styles.LayoutPane {
	current := m.sim.Host.Current()
	focused := m.sim.Host.Focused()
	var panes []styles.LayoutPane
	for _, info := range m.sim.Host.All() {
		if info.Iconic || (info.Desktop != current && !info.Sticky) {
			continue
		}
		panes = append(panes, styles.LayoutPane{
			ID:       info.ID,
			Rect:     info.Geometry,
			Focused:  info.ID == focused,
			Floating: !m.sim.Ctrl.IsTiled(info.ID),
		})
	}
	return panes
}

func (m PreviewModel) renderHeader() string {
	current := m.sim.Host.Current()
	settings := m.sim.Ctrl.DesktopSettings(current)
	windows := 0
	for _, d := range m.sim.Ctrl.Desktops() {
		if d.ID == current {
			windows = d.Windows
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Title.Render(styles.IconDesktop+" "+current.String()),
		" ",
		m.theme.Badge.Render(m.sim.Ctrl.SplitMode().String()),
		" ",
		m.theme.BadgeMuted.Render(fmt.Sprintf("stacks %d", settings.Stacks)),
		" ",
		m.theme.BadgeMuted.Render(fmt.Sprintf("padding %d", settings.Padding)),
		" ",
		m.theme.Subtle.Render(fmt.Sprintf("%d tiled", windows)),
	)
}

func (m PreviewModel) renderStatus() string {
	if m.statusErr {
		return m.theme.ErrorStyle.Render(styles.IconX + " " + m.status)
	}
	return m.theme.Subtle.Render(m.status)
}
