package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/all-an/nimlisp/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "nimlisp",
	Short: "nimlisp language interpreter",
	Long:  `nimlisp is a small S-expression language with an interactive interpreter`,
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	addREPLFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
