package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tbckr/isdomain/internal/check"
	"github.com/tbckr/isdomain/internal/config"
	"github.com/tbckr/isdomain/internal/input"
	"github.com/tbckr/isdomain/internal/output"
)

// deps holds fully-resolved runtime dependencies for a subcommand.
type deps struct {
	logger *slog.Logger
	cfg    *config.Config
}

// buildDeps resolves config and logger.
func buildDeps(cmd *cobra.Command, stderr io.Writer) (*deps, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration loaded",
		"config_file", cfg.ConfigFile,
		"output", cfg.Output,
		"concurrency", cfg.Concurrency,
		"defang", cfg.Defang,
		"refang", cfg.Refang,
	)

	return &deps{cfg: cfg, logger: logger}, nil
}

// newCheckService returns a check service configured from d.
func (d *deps) newCheckService() *check.Service {
	return check.NewService(d.logger, check.Options{Refang: d.cfg.Refang})
}

// resolveInputs returns positional args, or reads non-empty lines from stdin when
// no args are provided. Returns an error if stdin is an interactive terminal with
// no args (i.e. the user forgot to pass an argument or pipe input).
func resolveInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	r := cmd.InOrStdin()
	if output.IsTerminal(r) {
		return nil, fmt.Errorf("no input: pass an argument or pipe stdin")
	}
	inputs, err := input.Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return inputs, nil
}

// writeResult formats and writes a result to w.
func writeResult(w io.Writer, d *deps, result any) error {
	style := output.NewStyler(w, d.cfg.NoColor)
	if err := output.Write(w, output.Format(d.cfg.Output), style, result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
