package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/clockwall/internal/config"
	"github.com/oshokin/clockwall/internal/service/common"
)

// errConfigExists is returned by `config init` when it would overwrite a file.
var errConfigExists = errors.New("settings file already exists, use --overwrite")

// newConfigCommand builds the `config` command group.
func newConfigCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file.",
	}

	command.AddCommand(newConfigInitCommand(), newConfigShowCommand())

	return command
}

// newConfigInitCommand builds `config init`, which writes the default settings.
func newConfigInitCommand() *cobra.Command {
	var overwrite bool

	command := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with every default spelled out.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !overwrite {
				if _, err := os.Stat(configPath); err == nil {
					return fmt.Errorf("%s: %w", configPath, errConfigExists)
				}
			}

			if err := config.Save(configPath, config.Default()); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", configPath)

			return nil
		},
	}

	command.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing settings file")

	return command
}

// newConfigShowCommand builds `config show`, which prints the effective settings.
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings after defaults and environment overrides.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := common.LoadConfig(configPath)
			if err != nil {
				return err
			}

			return config.Write(cmd.OutOrStdout(), cfg)
		},
	}
}
