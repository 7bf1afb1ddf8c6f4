package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Compile a question-answering grammar and check it for ambiguity",
	Long: `parley compiles the authored question-answering grammar: it derives
edit rules (insertions, transpositions, empty-symbol reductions), detects
ambiguity among the authored rules, and emits the grammar for the
parser-table generator.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	return rootCmd.Execute()
}
