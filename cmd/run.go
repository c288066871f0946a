package cmd

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/siutin/scheme-go/lisp"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env, err := config.NewEnv(os.Stdout, os.Stderr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		err = runExpressions(env, os.Stdout, args, exprs, runPrint)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// runExpressions evaluates each source in exprs.  When printValues is true the
// value of every top-level expression is written to w.
func runExpressions(env *lisp.LEnv, w io.Writer, names []string, exprs [][]byte, printValues bool) error {
	for i := range exprs {
		forms, err := env.Read(names[i], bytes.NewReader(exprs[i]))
		if err != nil {
			return fmt.Errorf("%s: %w", names[i], err)
		}
		for _, form := range forms {
			v, err := env.Eval(form)
			if err != nil {
				return fmt.Errorf("%s: %w", names[i], err)
			}
			if printValues && v != nil {
				fmt.Fprintln(w, v)
			}
		}
	}
	return nil
}

func runReadExpressions(args []string) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		exprs[i] = b
	}
	return exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
