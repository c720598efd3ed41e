package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PreviewKeyMap defines keybindings for the layout preview.
type PreviewKeyMap struct {
	New       key.Binding
	Close     key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	MoveLeft  key.Binding
	MoveDown  key.Binding
	MoveUp    key.Binding
	MoveRight key.Binding
	Grow      key.Binding
	Shrink    key.Binding
	Taller    key.Binding
	Shorter   key.Binding
	Float     key.Binding
	SplitMode key.Binding
	Iconify   key.Binding
	Uniconify key.Binding
	Send      key.Binding
	Desktop   key.Binding
	Padding   key.Binding
	Titles    key.Binding
	Save      key.Binding
	Restore   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Close, k.NextFocus, k.Float, k.SplitMode, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Close, k.NextFocus, k.PrevFocus},
		{k.MoveLeft, k.MoveDown, k.MoveUp, k.MoveRight},
		{k.Grow, k.Shrink, k.Taller, k.Shorter},
		{k.Float, k.SplitMode, k.Iconify, k.Uniconify},
		{k.Send, k.Desktop, k.Padding, k.Titles},
		{k.Save, k.Restore, k.Help, k.Quit},
	}
}

// DefaultPreviewKeyMap returns the default preview keybindings.
func DefaultPreviewKeyMap() PreviewKeyMap {
	return PreviewKeyMap{
		New: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "new window"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "move left"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "move right"),
		),
		Grow: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "wider"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "narrower"),
		),
		Taller: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "taller"),
		),
		Shorter: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shorter"),
		),
		Float: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "float"),
		),
		SplitMode: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split mode"),
		),
		Iconify: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "minimize"),
		),
		Uniconify: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unminimize"),
		),
		Send: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "send to next desktop"),
		),
		Desktop: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "next desktop"),
		),
		Padding: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "padding"),
		),
		Titles: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "titles"),
		),
		Save: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save layouts"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore layout"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
