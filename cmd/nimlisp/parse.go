package main

import (
	"github.com/spf13/cobra"

	"github.com/all-an/nimlisp/ast"
	"github.com/all-an/nimlisp/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse EXPR",
	Short: "Parse an expression and dump its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	node, err := parser.Parse([]byte(args[0]))
	if err != nil {
		return err
	}

	ast.Fprint(cmd.OutOrStdout(), node)
	return nil
}
