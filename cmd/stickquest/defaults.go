package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/stickquest/internal/config"
	"github.com/samdwyer/stickquest/internal/gamedata"
)

var writeDefaults bool

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in settings document",
	Long: `Print the built-in settings document to stdout, or with --write save it to the
--config path so it can be edited.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if writeDefaults {
			if err := config.WriteDefaults(configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default settings to %s\n", configPath)
			return nil
		}

		data, err := gamedata.Raw(gamedata.DefaultConfigFile)
		if err != nil {
			return fmt.Errorf("failed to read built-in settings: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	defaultsCmd.Flags().BoolVar(&writeDefaults, "write", false, "write the defaults to the --config path instead of printing them")
	defaultsCmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "settings file to write with --write")
}
