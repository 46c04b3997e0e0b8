package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bares/internal/diagfmt"
	"bares/internal/driver"
	"bares/internal/postfix"
)

func newPostfixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "postfix [flags] [expr...]",
		Short: "Print expressions in postfix notation",
		Long: `Postfix converts each expression (the arguments, or the lines of standard
input) into postfix notation. A line that fails validation prints its error
message instead.

An expression argument that starts with "-" would be read as a flag, so put
"--" before the expressions (or pipe them on standard input).`,
		Example: `  bares postfix "2 ^ 3 ^ 2"
  bares postfix -- "-(2 + 3)" "1 + -4"`,
		RunE: runPostfix,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runPostfix(cmd *cobra.Command, args []string) error {
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
	return eachOutcome(cmd, args, s.opts, func(o driver.Outcome) error {
		if o.Postfix == nil {
			return writeFailure(out, format, o)
		}
		if format == "json" {
			return diagfmt.FormatTokensJSON(out, o.Postfix)
		}
		_, err := fmt.Fprintln(out, postfix.String(o.Postfix))
		return err
	})
}
