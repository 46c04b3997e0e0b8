package main

import (
	"github.com/spf13/cobra"

	"bares/internal/diagfmt"
	"bares/internal/driver"
	"bares/internal/ui"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Long: `Repl opens an interactive prompt. Type an expression and press Enter; lines
starting with ":" are commands (:help lists them). When standard input is not
a terminal the lines are evaluated like "bares eval".`,
		Args: cobra.NoArgs,
		RunE: runRepl,
	}
}

func runRepl(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close(cmd)

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if !streamIsTerminal(in) || !streamIsTerminal(out) {
		newSink := diagfmt.SinkFactory(diagfmt.FormatText, diagfmt.Opts{ShowSource: s.cfg.Output.ShowSource})
		_, err := driver.RunFiles(cmd.Context(), []driver.Input{driver.StdinInput(in)}, 1, out, newSink, s.opts)
		return err
	}
	return ui.RunRepl(cmd.Context(), s.opts, in, out)
}
