package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigPaths lists the files tiler reads and writes.
type ConfigPaths struct {
	Config   string
	Database string
	LogDir   string
	// ConfigExists is false until the first run writes the defaults.
	ConfigExists bool
}

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config, database and log locations.
func (r *ConfigRenderer) RenderConfigInfo(paths ConfigPaths) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s Config   %s\n", iconStyle.Render(IconConfig), pathStyle.Render(paths.Config)))
	if !paths.ConfigExists {
		sb.WriteString(fmt.Sprintf("  %s\n", r.theme.Subtle.Render("Config file will be created on first run with all defaults.")))
	}
	sb.WriteString(fmt.Sprintf("  %s Database %s\n", iconStyle.Render(IconDatabase), pathStyle.Render(paths.Database)))
	if paths.LogDir != "" {
		sb.WriteString(fmt.Sprintf("  %s Logs     %s\n", iconStyle.Render(IconLogs), pathStyle.Render(paths.LogDir)))
	}
	return sb.String()
}

// RenderWritten renders the message shown after the config file was written.
func (r *ConfigRenderer) RenderWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Wrote %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderSchemaWritten renders the message shown after the JSON schema was
// written next to the config file.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Schema %s\n  %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(filepath.Base(path)),
		r.theme.Subtle.Render("Point your TOML language server at it for completion."),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
