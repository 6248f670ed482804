package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/all-an/nimlisp/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize EXPR",
	Short: "Print the token stream for an expression",
	Long:  `Tokenize breaks an expression down into its constituent tokens, one per line`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	for _, tok := range lexer.Tokenize([]byte(args[0])) {
		fmt.Fprintln(cmd.OutOrStdout(), tok)
	}
	return nil
}
