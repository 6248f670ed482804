package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/all-an/nimlisp/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long:  `Repl reads one expression per line and prints its value; quit or exit leaves the loop`,
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func init() {
	addREPLFlags(replCmd)
}

func addREPLFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to a TOML config file")
	cmd.Flags().String("prompt", "", "override the configured prompt")
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")

	cfg, err := repl.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if prompt, _ := cmd.Flags().GetString("prompt"); prompt != "" {
		cfg.Prompt = prompt
	}
	if mode, _ := cmd.Root().PersistentFlags().GetString("color"); mode != "auto" {
		cfg.Color = mode
	}

	r := repl.New(os.Stdin, os.Stdout, cfg).Interactive(isTerminal(os.Stdin))
	return r.Run()
}
