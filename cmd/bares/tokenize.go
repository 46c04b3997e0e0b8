package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bares/internal/diagfmt"
	"bares/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] [expr...]",
		Short: "List the infix tokens of expressions",
		Long: `Tokenize validates each expression (the arguments, or the lines of standard
input) and lists the tokens the lexer produced, including the synthetic ones
a unary minus before a parenthesis expands into.

An expression argument that starts with "-" would be read as a flag, so put
"--" before the expressions (or pipe them on standard input).`,
		Example: `  bares tokenize "2 * -(1 + 1)"
  bares tokenize -- "-(2 + 3)" "-7 % 2"
  echo "-3 ^ 2" | bares tokenize --format json`,
		RunE: runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close(cmd)

	format, err := listingFormat(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	multi := len(args) != 1
	return eachOutcome(cmd, args, s.opts, func(o driver.Outcome) error {
		// ошибка вычисления не мешает показать токены
		if o.Infix == nil {
			return writeFailure(out, format, o)
		}
		if format == "json" {
			return diagfmt.FormatTokensJSON(out, o.Infix)
		}
		if multi {
			if _, err := fmt.Fprintf(out, "%d: %s\n", o.Line.Num, o.Line.Text); err != nil {
				return err
			}
		}
		return diagfmt.FormatTokensPretty(out, o.Infix)
	})
}
