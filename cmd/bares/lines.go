package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bares/internal/diagfmt"
	"bares/internal/driver"
	"bares/internal/source"
)

// ArgsSource names expressions passed as command arguments.
const ArgsSource = "<args>"

// eachOutcome runs every expression through the pipeline: the arguments if
// there are any, otherwise the lines of standard input.
func eachOutcome(cmd *cobra.Command, args []string, opts driver.Options, fn func(driver.Outcome) error) error {
	var lines driver.LineSource = driver.NewSliceSource(ArgsSource, args...)
	name := ArgsSource
	if len(args) == 0 {
		lines = source.NewReader(driver.StdinName, cmd.InOrStdin(), opts.MaxLineBytes)
		name = driver.StdinName
	}

	ctx := cmd.Context()
	for lines.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(driver.Process(ctx, lines.Line(), opts)); err != nil {
			return err
		}
	}
	if err := lines.Err(); err != nil {
		return fmt.Errorf("input %s: %w", name, err)
	}
	return nil
}

// listingFormat reads the --format flag of tokenize and postfix.
func listingFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
		return format, nil
	}
	return "", fmt.Errorf("unknown format: %s", format)
}

// writeFailure reports a line that produced no listing.
func writeFailure(w io.Writer, format string, o driver.Outcome) error {
	if format == "json" {
		return json.NewEncoder(w).Encode(diagfmt.NewRecord(o))
	}
	_, err := fmt.Fprintln(w, diagfmt.Message(o.Diag))
	return err
}
