package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bares/internal/config"
	"bares/internal/driver"
	"bares/internal/observ"
)

// loadConfig discovers bares.toml (or reads --config) and applies every flag
// that was set explicitly on the command line on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	explicit, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Discover(explicit, ".")
	if err != nil {
		return config.Config{}, err
	}

	strs := map[string]*string{
		"domain":       &cfg.Eval.Domain,
		"color":        &cfg.Output.Color,
		"format":       &cfg.Output.Format,
		"trace":        &cfg.Trace.Output,
		"trace-level":  &cfg.Trace.Level,
		"trace-format": &cfg.Trace.Format,
		"trace-mode":   &cfg.Trace.Mode,
	}
	for name, dst := range strs {
		// tokenize и postfix используют --format в другом смысле
		if name == "format" && !hasEvalFlags(cmd) {
			continue
		}
		if flags.Changed(name) {
			*dst = flags.Lookup(name).Value.String()
		}
	}

	bools := map[string]*bool{
		"fold-width":  &cfg.Input.FoldWidth,
		"show-source": &cfg.Output.ShowSource,
	}
	for name, dst := range bools {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetBool(name); err != nil {
			return config.Config{}, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
	}

	if flags.Changed("max-line-bytes") {
		if cfg.Input.MaxLineBytes, err = flags.GetInt("max-line-bytes"); err != nil {
			return config.Config{}, fmt.Errorf("failed to get max-line-bytes flag: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// session is what every command derives from configuration and flags.
type session struct {
	cfg   config.Config
	opts  driver.Options
	color bool
	timer *observ.Timer
	done  func()
}

// newSession loads the configuration, installs the tracer into the command
// context and prepares pipeline options. Callers must defer close.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return nil, err
	}
	closeTrace, err := setupTracing(cmd, cfg.Trace)
	if err != nil {
		stopProfiling()
		return nil, err
	}
	release := func() {
		closeTrace()
		stopProfiling()
	}

	mode, err := config.ParseColorMode(cfg.Output.Color)
	if err != nil {
		release()
		return nil, err
	}
	s := &session{
		cfg: cfg,
		opts: driver.Options{
			Domain:       cfg.Domain(),
			FoldWidth:    cfg.Input.FoldWidth,
			MaxLineBytes: cfg.Input.MaxLineBytes,
		},
		color: mode.Enabled(streamIsTerminal(cmd.OutOrStdout())),
		done:  release,
	}

	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		release()
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if timings {
		s.timer = observ.NewTimer()
		s.opts.Timer = s.timer
	}
	return s, nil
}

// close prints timings, shuts the tracer down and stops profiling.
func (s *session) close(cmd *cobra.Command) {
	if s.timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), s.timer.Summary())
	}
	s.done()
}
