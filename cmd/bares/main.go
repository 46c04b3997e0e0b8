package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bares/internal/version"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bares [flags] [file...]",
		Short: "Line-based integer arithmetic evaluator",
		Long: `Bares reads one arithmetic expression per line from files or standard input,
validates it, converts it to postfix and prints either its value or an error
message pointing at the offending column.

Without a subcommand bares behaves like "bares eval".`,
		Version:      version.Version,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE:         runEval,
	}
	addEvalFlags(rootCmd)

	// Добавляем команды
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newPostfixCmd())
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to bares.toml (default: nearest one above the working directory)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.String("domain", "int16", "result domain (int8|int16|int32)")
	pf.Bool("fold-width", false, "fold full-width digits and operators to ASCII")
	pf.Bool("timings", false, "print per-stage timings to stderr")
	pf.String("trace", "", "trace output file (\"-\" for stderr)")
	pf.String("trace-level", "off", "trace level (off|driver|line|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring)")
	pf.Int("trace-ring-size", 4096, "events kept in ring mode")
	pf.String("cpu-profile", "", "write a CPU profile to this file")
	pf.String("mem-profile", "", "write a heap profile to this file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to this file")

	return rootCmd
}

// main builds the command tree and runs it until completion or Ctrl+C.
// Any returned error makes the process exit with status 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// streamIsTerminal reports whether a command stream is an interactive file.
// Buffers set by tests are never terminals.
func streamIsTerminal(s any) bool {
	f, ok := s.(*os.File)
	return ok && isTerminal(f)
}
