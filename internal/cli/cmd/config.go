package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tiler/internal/cli/styles"
	"github.com/bnema/tiler/internal/infrastructure/config"
)

var (
	configYes          bool
	configSchemaStdout bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and manage the configuration",
	Long: `Show where tiler keeps its configuration, layouts and logs.

The config file is created with all defaults on first run. Every key can
also be set through the environment, e.g. TILER_TILING_WINDOW_PADDING=8.`,
	Args: cobra.NoArgs,
	RunE: runConfigInfo,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, the config file, environment and flags were merged.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the config file with the defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigReset,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema of the config file",
	Long: `Write config.schema.json next to the config file. Editors with a TOML
language server use it for completion and validation.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configSchemaCmd)
	configResetCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
	configSchemaCmd.Flags().BoolVar(&configSchemaStdout, "stdout", false, "print the schema instead of writing it")
}

func runConfigInfo(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	paths := styles.ConfigPaths{
		Config:       app.Manager.GetConfigFile(),
		Database:     app.DB.Path(),
		ConfigExists: true,
	}
	if app.Config.Logging.EnableFileLog {
		paths.LogDir = app.Config.Logging.LogDir
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderConfigInfo(paths))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.EncodeConfig(app.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigReset(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.GetConfigFile()

	if !configYes {
		ok, err := confirm(app.Theme, fmt.Sprintf("Replace %s with the defaults?", path),
			"Every setting in the file is overwritten.")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := app.Manager.Save(config.DefaultConfig()); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWritten(path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if configSchemaStdout {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	path, err := config.WriteSchemaFile(app.Manager.GetConfigFile())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(path))
	return nil
}
