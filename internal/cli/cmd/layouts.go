package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/tiler/internal/application/usecase"
	"github.com/bnema/tiler/internal/cli/styles"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/domain/repository"
	"github.com/bnema/tiler/internal/infrastructure/persistence/sqlite"
)

var (
	layoutsJSON bool
	layoutsYes  bool
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Inspect stored desktop layouts",
	Long: `List, show and delete the desktop layouts saved in the database.

Desktops are named zone:x,y as in the output of 'tiler run'; the zone may
be omitted.`,
}

var layoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored layouts, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runLayoutsList,
}

var layoutsShowCmd = &cobra.Command{
	Use:   "show <desktop>",
	Short: "Show the tree of a stored layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutsShow,
}

var layoutsDeleteCmd = &cobra.Command{
	Use:   "delete <desktop>",
	Short: "Delete a stored layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutsDelete,
}

var layoutsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the database location and schema version",
	Args:  cobra.NoArgs,
	RunE:  runLayoutsStatus,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
	layoutsCmd.AddCommand(layoutsListCmd, layoutsShowCmd, layoutsDeleteCmd, layoutsStatusCmd)
	layoutsListCmd.Flags().BoolVar(&layoutsJSON, "json", false, "print layouts as JSON")
	layoutsShowCmd.Flags().BoolVar(&layoutsJSON, "json", false, "print the layout as JSON")
	layoutsDeleteCmd.Flags().BoolVarP(&layoutsYes, "yes", "y", false, "skip confirmation prompt")
}

// layoutsUseCase builds the storage side of PersistLayoutsUseCase; no
// controller is needed to read or delete.
func layoutsUseCase() (*usecase.PersistLayoutsUseCase, error) {
	app := GetApp()
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return usecase.NewPersistLayoutsUseCase(app.Layouts, nil), nil
}

func runLayoutsList(cmd *cobra.Command, _ []string) error {
	uc, err := layoutsUseCase()
	if err != nil {
		return err
	}
	app := GetApp()

	snaps, err := uc.List(app.Ctx())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if layoutsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snaps)
	}
	if len(snaps) == 0 {
		fmt.Fprintf(out, "\n  %s\n", app.Theme.Subtle.Render("No stored layouts."))
		return nil
	}

	rows := make([]table.Row, 0, len(snaps))
	for _, snap := range snaps {
		rows = append(rows, styles.SnapshotRow(snap))
	}
	fmt.Fprintln(out, styles.RenderTable(app.Theme, styles.SnapshotTableColumns(), rows))
	return nil
}

func runLayoutsShow(cmd *cobra.Command, args []string) error {
	desk, err := entity.ParseDesktopID(args[0])
	if err != nil {
		return err
	}
	uc, err := layoutsUseCase()
	if err != nil {
		return err
	}
	app := GetApp()

	snap, err := uc.Get(app.Ctx(), desk)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		return fmt.Errorf("no layout stored for desktop %s", desk)
	}
	if err != nil {
		return err
	}

	if layoutsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewTreeRenderer(app.Theme).RenderSnapshot(snap))
	return nil
}

func runLayoutsDelete(cmd *cobra.Command, args []string) error {
	desk, err := entity.ParseDesktopID(args[0])
	if err != nil {
		return err
	}
	uc, err := layoutsUseCase()
	if err != nil {
		return err
	}
	app := GetApp()

	if !layoutsYes {
		snap, err := uc.Get(app.Ctx(), desk)
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			return fmt.Errorf("no layout stored for desktop %s", desk)
		}
		if err != nil {
			return err
		}
		ok, err := confirm(app.Theme,
			fmt.Sprintf("Delete the stored layout of desktop %s?", desk),
			fmt.Sprintf("%d windows, saved %s", snap.WindowCount, snap.SavedAt.Local().Format(time.DateTime)),
		)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := uc.Delete(app.Ctx(), desk); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n  %s Deleted layout of desktop %s\n",
		app.Theme.SuccessStyle.Render(styles.IconTrash), desk)
	return nil
}

func runLayoutsStatus(cmd *cobra.Command, _ []string) error {
	uc, err := layoutsUseCase()
	if err != nil {
		return err
	}
	app := GetApp()

	db, err := app.DB.DB(app.Ctx())
	if err != nil {
		return err
	}
	version, err := sqlite.GetMigrationStatus(app.Ctx(), db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	snaps, err := uc.List(app.Ctx())
	if err != nil {
		return err
	}

	t := app.Theme
	fmt.Fprintf(cmd.OutOrStdout(), "\n  %s Database %s\n  %s\n",
		t.Highlight.Render(styles.IconDatabase),
		t.Subtle.Render(app.DB.Path()),
		t.Normal.Render(fmt.Sprintf("schema version %d, %d stored layouts", version, len(snaps))),
	)
	return nil
}
