package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootConfigPath string
	rootLogLevel   string
	rootArgErrors  string

	config = DefaultConfig()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scheme-go",
	Short: "A minimal lisp interpreter",
	Long: `A minimal lisp interpreter with integers, floats, symbols and lists.

When called without a subcommand an interactive session is started.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) error {
	if rootConfigPath != "" {
		cfg, err := LoadConfig(rootConfigPath)
		if err != nil {
			return err
		}
		config = cfg
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		config.LogLevel = rootLogLevel
	}
	if flags.Changed("argument-errors") {
		config.ArgumentErrors = rootArgErrors
	}
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootConfigPath, "config", "",
		"Read settings from a YAML configuration file")
	flags.StringVar(&rootLogLevel, "log-level", "warn",
		"Minimum level of log records written to stderr (debug, info, warn, error)")
	flags.StringVar(&rootArgErrors, "argument-errors", "abort",
		fmt.Sprintf("Handling of failing procedure arguments (%s or %s)", "abort", "drop"))
}
