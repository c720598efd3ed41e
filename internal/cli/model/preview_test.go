package model

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tiler/internal/application/usecase"
	"github.com/bnema/tiler/internal/cli"
	"github.com/bnema/tiler/internal/cli/styles"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/domain/repository/mocks"
	"github.com/bnema/tiler/internal/infrastructure/config"
	"github.com/bnema/tiler/internal/infrastructure/simhost"
	"github.com/bnema/tiler/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.New(io.Discard))
}

func newPreview(t *testing.T, persist *usecase.PersistLayoutsUseCase) PreviewModel {
	t.Helper()
	sim, err := cli.NewSim(testContext(), simhost.DefaultConfig(), nil)
	require.NoError(t, err)
	return NewPreviewModel(testContext(), styles.NewTheme(), PreviewModelConfig{Sim: sim, Persist: persist})
}

func press(t *testing.T, m PreviewModel, keys ...string) PreviewModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(PreviewModel)
	}
	return m
}

func geometry(t *testing.T, m PreviewModel, id entity.WindowID) entity.Rect {
	t.Helper()
	info, ok := m.sim.Host.Info(id)
	require.True(t, ok, "window %s", id)
	return info.Geometry
}

var (
	fullArea  = entity.Rect{X: 0, Y: 24, W: 1920, H: 1056}
	leftHalf  = entity.Rect{X: 0, Y: 24, W: 960, H: 1056}
	rightHalf = entity.Rect{X: 960, Y: 24, W: 960, H: 1056}
)

func TestPreview_NewWindowsTile(t *testing.T) {
	m := press(t, newPreview(t, nil), "n")
	assert.Equal(t, fullArea, geometry(t, m, "w1"))
	assert.Equal(t, entity.WindowID("w1"), m.sim.Host.Focused())

	m = press(t, m, "n")
	assert.Equal(t, leftHalf, geometry(t, m, "w1"))
	assert.Equal(t, rightHalf, geometry(t, m, "w2"))
	assert.Equal(t, entity.WindowID("w2"), m.sim.Host.Focused())
	assert.Empty(t, m.status)
}

func TestPreview_CycleFocus(t *testing.T) {
	m := press(t, newPreview(t, nil), "n", "n", "n")
	require.Equal(t, entity.WindowID("w3"), m.sim.Host.Focused())

	m = press(t, m, "tab")
	assert.Equal(t, entity.WindowID("w1"), m.sim.Host.Focused())

	m = press(t, m, "shift+tab", "shift+tab")
	assert.Equal(t, entity.WindowID("w2"), m.sim.Host.Focused())
}

func TestPreview_FloatAndClose(t *testing.T) {
	m := press(t, newPreview(t, nil), "n", "n", "tab")
	require.Equal(t, entity.WindowID("w1"), m.sim.Host.Focused())

	m = press(t, m, "f")
	assert.True(t, m.sim.Ctrl.IsFloating("w1"))
	assert.Equal(t, fullArea, geometry(t, m, "w2"))

	m = press(t, m, "f")
	assert.True(t, m.sim.Ctrl.IsTiled("w1"))

	m = press(t, m, "tab")
	focused := m.sim.Host.Focused()
	m = press(t, m, "x")
	_, ok := m.sim.Host.Info(focused)
	assert.False(t, ok)
}

func TestPreview_CloseWithoutFocusReportsError(t *testing.T) {
	m := press(t, newPreview(t, nil), "x")
	assert.True(t, m.statusErr)
	assert.Equal(t, errNoFocus.Error(), m.status)
}

func TestPreview_SplitModeCycles(t *testing.T) {
	m := press(t, newPreview(t, nil), "s")
	assert.Equal(t, entity.SplitModeVertical, m.sim.Ctrl.SplitMode())
	assert.Equal(t, "split mode vertical", m.status)

	m = press(t, m, "n", "n")
	assert.Equal(t, entity.Rect{X: 0, Y: 24, W: 1920, H: 528}, geometry(t, m, "w1"))
	assert.Equal(t, entity.Rect{X: 0, Y: 552, W: 1920, H: 528}, geometry(t, m, "w2"))
}

func TestPreview_MoveSwapsNeighbours(t *testing.T) {
	m := press(t, newPreview(t, nil), "n", "n", "H")
	assert.Equal(t, leftHalf, geometry(t, m, "w2"))
	assert.Equal(t, rightHalf, geometry(t, m, "w1"))
}

func TestPreview_GrowMovesDivider(t *testing.T) {
	m := press(t, newPreview(t, nil), "n", "n", "tab", ">")

	left := geometry(t, m, "w1")
	right := geometry(t, m, "w2")
	assert.Greater(t, left.W, leftHalf.W)
	assert.Equal(t, left.Right(), right.X)
	assert.Equal(t, fullArea.Right(), right.Right())
}

func TestPreview_PaddingToggle(t *testing.T) {
	m := press(t, newPreview(t, nil), "n", "n", "p")
	assert.Equal(t, previewPadding, m.sim.Ctrl.DesktopSettings(entity.DesktopID{}).Padding)
	assert.Less(t, geometry(t, m, "w1").W, leftHalf.W)

	m = press(t, m, "p")
	assert.Equal(t, leftHalf, geometry(t, m, "w1"))
}

func TestPreview_ConfigReloadAppliesTiling(t *testing.T) {
	m := press(t, newPreview(t, nil), "n", "n")

	reloaded := config.DefaultConfig()
	reloaded.Tiling.WindowPadding = 6
	next, _ := m.Update(ConfigChangedMsg{Config: reloaded})
	m = next.(PreviewModel)

	assert.False(t, m.statusErr)
	assert.Equal(t, "config reloaded", m.status)
	assert.Equal(t, 6, m.sim.Ctrl.DesktopSettings(entity.DesktopID{}).Padding)
	assert.Less(t, geometry(t, m, "w1").W, leftHalf.W)
}

func TestPreview_IconifyAndRestore(t *testing.T) {
	m := press(t, newPreview(t, nil), "n", "n", "i")
	assert.Equal(t, fullArea, geometry(t, m, "w1"))

	m = press(t, m, "u")
	assert.Equal(t, leftHalf, geometry(t, m, "w1"))
	assert.Equal(t, rightHalf, geometry(t, m, "w2"))
}

func TestPreview_SaveWithoutStorage(t *testing.T) {
	m := press(t, newPreview(t, nil), "w")
	assert.True(t, m.statusErr)
}

func TestPreview_SaveStoresLayouts(t *testing.T) {
	repo := mocks.NewMockLayoutRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s *entity.LayoutSnapshot) bool {
		return s.WindowCount == 2
	})).Return(nil).Once()

	m := newPreview(t, nil)
	m.persist = usecase.NewPersistLayoutsUseCase(repo, m.sim.Ctrl)
	m = press(t, m, "n", "n")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	require.NotNil(t, cmd)
	next, _ = next.Update(cmd())
	m = next.(PreviewModel)
	assert.False(t, m.statusErr)
	assert.Equal(t, "saved 1 layouts", m.status)
}

func TestPreview_RestoreAppliesStoredLayout(t *testing.T) {
	repo := mocks.NewMockLayoutRepository(t)
	repo.EXPECT().Get(mock.Anything, entity.DesktopID{}).Return(&entity.LayoutSnapshot{
		Version: entity.LayoutSnapshotVersion,
		Root: &entity.SnapshotNode{
			Axis:   entity.SplitHorizontal,
			Ratio:  0.5,
			First:  &entity.SnapshotNode{Window: "w2"},
			Second: &entity.SnapshotNode{Window: "w1"},
		},
		WindowCount: 2,
	}, nil).Once()

	m := newPreview(t, nil)
	m.persist = usecase.NewPersistLayoutsUseCase(repo, m.sim.Ctrl)
	m = press(t, m, "n", "n")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	next, _ = next.Update(cmd())
	m = next.(PreviewModel)
	assert.False(t, m.statusErr, m.status)
	assert.Equal(t, leftHalf, geometry(t, m, "w2"))
	assert.Equal(t, rightHalf, geometry(t, m, "w1"))
}

func TestPreview_Quit(t *testing.T) {
	_, cmd := newPreview(t, nil).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPreview_ViewFillsWindow(t *testing.T) {
	m := press(t, newPreview(t, nil), "n", "n")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(PreviewModel)

	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 20)
	assert.Contains(t, view, "w1")
	assert.Contains(t, view, "w2")
	assert.Contains(t, view, "horizontal")
}

func TestPreview_HelpToggle(t *testing.T) {
	m := press(t, newPreview(t, nil), "?")
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "save layouts")
}
