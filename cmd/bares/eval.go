package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bares/internal/diagfmt"
	"bares/internal/driver"
	"bares/internal/source"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] [file...]",
		Short: "Evaluate every line of the given files",
		Long: `Eval prints one result or error message per input line. With no files, or
with "-", lines are read from standard input. Several files are processed
concurrently (see --jobs); their outputs keep the command line order.`,
		RunE: runEval,
	}
	addEvalFlags(cmd)
	return cmd
}

func addEvalFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("format", "text", "output format (text|pretty|json|msgpack)")
	f.Int("jobs", 0, "inputs processed concurrently (0 = GOMAXPROCS)")
	f.Bool("stats", false, "print a summary table to stderr")
	f.Bool("show-source", false, "echo failing lines with a caret under the error column")
	f.Int("max-line-bytes", source.DefaultMaxLineBytes, "maximum length of one input line; longer lines fail with \"Input line too long!\"")
}

func hasEvalFlags(cmd *cobra.Command) bool {
	return cmd.Flags().Lookup("jobs") != nil
}

func runEval(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close(cmd)

	// Получаем флаги
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	showStats, err := cmd.Flags().GetBool("stats")
	if err != nil {
		return fmt.Errorf("failed to get stats flag: %w", err)
	}
	format, err := diagfmt.ParseFormat(s.cfg.Output.Format)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	inputs := make([]driver.Input, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			inputs = append(inputs, driver.StdinInput(cmd.InOrStdin()))
			// интерактивный ввод: результат сразу после Enter
			s.opts.FlushEachLine = s.opts.FlushEachLine || streamIsTerminal(cmd.InOrStdin())
			continue
		}
		inputs = append(inputs, driver.FileInput(arg))
	}

	newSink := diagfmt.SinkFactory(format, diagfmt.Opts{
		Color:      s.color,
		ShowSource: s.cfg.Output.ShowSource,
		ShowName:   len(inputs) > 1,
	})
	stats, err := driver.RunFiles(cmd.Context(), inputs, jobs, cmd.OutOrStdout(), newSink, s.opts)
	if err != nil {
		if showStats {
			_ = diagfmt.WriteStats(cmd.ErrOrStderr(), stats)
		}
		return fmt.Errorf("evaluation failed: %w", err)
	}
	if showStats {
		return diagfmt.WriteStats(cmd.ErrOrStderr(), stats)
	}
	return nil
}
