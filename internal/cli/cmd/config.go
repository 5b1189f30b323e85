package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/jumpkey/internal/cli/styles"
	"github.com/bnema/jumpkey/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Locate, initialize or describe the configuration file",
	Annotations: map[string]string{skipApp: "true"},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default configuration if none exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		r := styles.NewRenderer(styles.NewTheme())

		if _, statErr := os.Stat(path); statErr == nil {
			fmt.Fprintln(cmd.OutOrStdout(), r.RenderSuccess("config already exists: "+path))
			return nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return statErr
		}

		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.RenderSuccess("wrote "+path))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration file",
	Long: `Print a JSON schema describing config.toml, for editor completion with
taplo or similar tools.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		schema, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return err
	},
}

func configFilePath() (string, error) {
	if globals.ConfigFile != "" {
		return globals.ConfigFile, nil
	}
	return config.GetConfigFile()
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configInitCmd, configSchemaCmd)
}
