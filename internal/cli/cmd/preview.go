package cmd

import (
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tiler/internal/application/usecase"
	"github.com/bnema/tiler/internal/cli"
	"github.com/bnema/tiler/internal/cli/model"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/infrastructure/config"
	"github.com/bnema/tiler/internal/infrastructure/simhost"
	"github.com/bnema/tiler/internal/infrastructure/snapshot"
	"github.com/bnema/tiler/internal/logging"
)

var (
	previewScenario string
	previewWidth    int
	previewHeight   int
	previewColumns  int
	previewRows     int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Explore the tiling engine interactively",
	Long: `Open an interactive view of a simulated screen.

Open and close windows, move focus, drag dividers and cycle split modes
with the keyboard; press ? for all keys. With [snapshots] enabled the
layouts are saved as they change and restored on the next start. Edits
to the [tiling] section of the config file apply live.

Examples:
  tiler preview
  tiler preview --columns 2 --rows 2
  tiler preview --scenario workspace.toml`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	def := simhost.DefaultConfig()
	previewCmd.Flags().StringVarP(&previewScenario, "scenario", "s", "", "start from the final state of a scenario")
	previewCmd.Flags().IntVar(&previewWidth, "width", def.Screen.W, "simulated screen width")
	previewCmd.Flags().IntVar(&previewHeight, "height", def.Screen.H, "simulated screen height")
	previewCmd.Flags().IntVar(&previewColumns, "columns", def.Columns, "desktop grid columns")
	previewCmd.Flags().IntVar(&previewRows, "rows", def.Rows, "desktop grid rows")
}

func runPreview(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "preview")
	log := logging.FromContext(ctx)

	var svc *snapshot.Service
	var opts []usecase.ControllerOption
	if app.Config.Snapshots.Enabled {
		// Changes made before svc exists are not recorded.
		opts = append(opts, usecase.WithLayoutObserver(func(desk entity.DesktopID) {
			if svc != nil {
				svc.MarkDirty(desk)
			}
		}))
	}

	var (
		sim *cli.Sim
		err error
	)
	if previewScenario != "" {
		sc, loadErr := cli.LoadScenario(previewScenario)
		if loadErr != nil {
			return loadErr
		}
		sim, err = sc.Run(ctx, app.Config, opts...)
	} else {
		hostCfg := simhost.DefaultConfig()
		hostCfg.Screen.W, hostCfg.Screen.H = previewWidth, previewHeight
		hostCfg.Columns, hostCfg.Rows = previewColumns, previewRows

		cfg := *app.Config
		cfg.Tiling.Desktops = slices.Clone(app.Config.Tiling.Desktops)
		sim, err = cli.NewSim(ctx, hostCfg, &cfg, opts...)
	}
	if err != nil {
		return err
	}

	persist := usecase.NewPersistLayoutsUseCase(app.Layouts, sim.Ctrl)
	if app.Config.Snapshots.Enabled {
		svc = snapshot.NewService(sim.Ctrl, persist, app.Config.Snapshots.IntervalMs)
		svc.Start(ctx)
	}
	if app.Config.Snapshots.RestoreOnStart && previewScenario == "" {
		n, resumeErr := sim.Resume(ctx, persist)
		if resumeErr != nil {
			log.Warn().Err(resumeErr).Msg("failed to restore some layouts")
		}
		log.Info().Int("desktops", n).Msg("layouts restored")
	}
	if svc != nil {
		svc.SetReady()
	}

	m := model.NewPreviewModel(ctx, app.Theme, model.PreviewModelConfig{
		Sim:     sim,
		Persist: persist,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	app.Manager.OnConfigChange(func(c *config.Config) {
		p.Send(model.ConfigChangedMsg{Config: c})
	})
	if err := app.Manager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}
	_, runErr := p.Run()

	// Flush before shutdown: tearing the trees down marks them empty.
	var stopErr error
	if svc != nil {
		stopErr = svc.Stop(ctx)
	}
	return errors.Join(runErr, stopErr, sim.Ctrl.Shutdown(ctx))
}
