package cmd

import (
	"os"

	"github.com/siutin/scheme-go/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session.  Each line is read, evaluated and the
value of every expression on it is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

func runRepl(cmd *cobra.Command) error {
	env, err := config.NewEnv(os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	return repl.RunRepl(env, repl.Config{
		Prompt:      config.Prompt,
		HistoryFile: config.HistoryFile,
		Banner:      "Welcome to scheme-go",
	})
}

func init() {
	rootCmd.AddCommand(replCmd)
}
