package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tiler/internal/application/usecase"
	"github.com/bnema/tiler/internal/cli"
	"github.com/bnema/tiler/internal/cli/styles"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/logging"
)

var (
	runJSON bool
	runSave bool
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.toml>...",
	Short: "Run scenarios against the simulated host",
	Long: `Run one or more TOML scenarios and print the resulting layout.

A scenario describes the screen, optional tiling overrides and a list of
steps (open, close, focus, drag, resize, float, swap...). Each file runs
on its own simulated host, in parallel.

Examples:
  tiler run two-terminals.toml
  tiler run --json a.toml b.toml
  tiler run --save workspace.toml      # store the final layouts`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScenarios,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print results as JSON")
	runCmd.Flags().BoolVar(&runSave, "save", false, "save the final layouts to the database")
}

func runScenarios(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	results := make([]cli.Result, len(args))
	sims := make([]*cli.Sim, len(args))

	g, ctx := errgroup.WithContext(logging.WithComponent(app.Ctx(), "run"))
	for i, path := range args {
		g.Go(func() error {
			sc, err := cli.LoadScenario(path)
			if err != nil {
				return err
			}
			sim, err := sc.Run(ctx, app.Config)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			res := sim.Result()
			res.Name = sc.Name
			if res.Name == "" {
				res.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			results[i], sims[i] = res, sim
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if runSave {
		// Sequential: sqlite has a single writer.
		for i, sim := range sims {
			n, err := usecase.NewPersistLayoutsUseCase(app.Layouts, sim.Ctrl).SaveAll(app.Ctx())
			if err != nil {
				return fmt.Errorf("save layouts of %s: %w", args[i], err)
			}
			logging.FromContext(app.Ctx()).Info().
				Str("scenario", results[i].Name).
				Int("layouts", n).
				Msg("layouts saved")
		}
	}

	out := cmd.OutOrStdout()
	if runJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	}
	for _, res := range results {
		printResult(out, app.Theme, res)
	}
	return nil
}

func printResult(w io.Writer, theme *styles.Theme, res cli.Result) {
	fmt.Fprintf(w, "\n  %s %s  %s\n\n",
		theme.Highlight.Render(styles.IconPane),
		theme.Title.Render(res.Name),
		theme.Subtle.Render(fmt.Sprintf("split mode %s, %d host commands", res.SplitMode, res.Commands)),
	)

	if len(res.Windows) == 0 {
		fmt.Fprintf(w, "  %s\n", theme.Subtle.Render("no windows"))
	} else {
		rows := make([]table.Row, 0, len(res.Windows))
		for _, win := range res.Windows {
			rows = append(rows, styles.WindowRow{
				ID:         win.ID,
				Desktop:    win.Desktop,
				State:      win.State,
				Focused:    win.Focused,
				Geometry:   entity.Rect{X: win.X, Y: win.Y, W: win.W, H: win.H},
				Decoration: win.Decoration,
			}.ToRow())
		}
		fmt.Fprintln(w, styles.RenderTable(theme, styles.WindowTableColumns(), rows))
	}

	for _, d := range res.Desktops {
		if d.Tree == nil {
			continue
		}
		fmt.Fprintf(w, "\n  %s %s  %s\n",
			theme.Highlight.Render(styles.IconTree),
			theme.Normal.Render("desktop "+d.Desktop),
			theme.Subtle.Render(fmt.Sprintf("stacks %d, padding %d", d.Stacks, d.Padding)),
		)
		for _, line := range styles.TreeLines(d.Tree) {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}
