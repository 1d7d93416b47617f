package cmd

import (
	"errors"
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rshell-dev/rshell/core/config"
)

// initCmd writes a starter configuration file for editing.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default ~/" + config.ConfigurationName + " to customize the shell.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		path := configPath()
		if path == "" {
			return errors.New("no home directory, pass --config")
		}

		logger := log.New(cmd.ErrOrStderr(), "", 0)
		return config.Initialize(afero.NewOsFs(), path, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
