package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rshell-dev/rshell/core/config"
	"github.com/rshell-dev/rshell/core/shell"
)

var (
	cfgPath string
	oneLine string
	noRC    bool
)

// exit terminates the process; swapped out by tests.
var exit = os.Exit

// configPath resolves the config file location: the --config flag, or
// the well-known name under $HOME. Empty when neither is available.
func configPath() string {
	if cfgPath != "" {
		return cfgPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, config.ConfigurationName)
}

func loadConfig() (*config.Config, error) {
	path := configPath()
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(afero.NewOsFs(), path)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rshell",
	Short: "A small interactive command shell",
	Long: `rshell is a small interactive command shell with aliases, environment
variable expansion and short-circuiting AND-chains.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sh := shell.New(cfg)

		if cmd.Flags().Changed("command") {
			exit(sh.RunLine(oneLine))
			return nil
		}

		if !noRC {
			sh.RunStartup()
		}

		signals := make(chan os.Signal, 2)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

		exit(sh.RunInteractive(signals))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.Flags().StringVarP(&oneLine, "command", "c", "", "run one command line and exit")
	rootCmd.Flags().BoolVar(&noRC, "norc", false, "skip the startup script")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $HOME/"+config.ConfigurationName+")")
}
