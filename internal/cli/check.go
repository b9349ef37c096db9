package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbckr/isdomain/internal/apperr"
	"github.com/tbckr/isdomain/internal/check"
	"github.com/tbckr/isdomain/internal/input"
	"github.com/tbckr/isdomain/internal/worker"
)

func newCheckCmd(d *deps) *cobra.Command {
	var (
		jsonInput bool
		fail      bool
	)
	cmd := &cobra.Command{
		Use:     "check [input...]",
		Short:   "Report whether each input contains a valid hostname",
		GroupID: "validate",
		Long: `Extract the hostname from each input and report whether it is a
structurally valid domain name, together with the first failed check.

Inputs may be bare hostnames or URL-like strings; the scheme, path and port
are stripped before validation. Multiple inputs can be supplied as arguments
or piped via stdin (one per line, "#" starts a comment line). With
--json-input, stdin must hold a JSON array; non-string elements are invalid.`,
		Example: `  # Single input
  isdomain check https://www.example.com:8443/login

  # Bulk input from stdin, exit non-zero if anything is invalid
  cat hosts.txt | isdomain check --fail

  # Untyped JSON values
  echo '["example.com", 123, null]' | isdomain check --json-input -o json`,
		Args: cobra.ArbitraryArgs,
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runChecks(cmd, d, args, jsonInput)
			if err != nil {
				return err
			}
			shown := result
			if d.cfg.Defang {
				shown = result.Defanged()
			}
			if err := writeResult(cmd.OutOrStdout(), d, shown); err != nil {
				return err
			}
			if n := result.Invalid(); fail && n > 0 {
				return fmt.Errorf("%w: %d of %d inputs rejected", apperr.ErrInvalidInput, n, len(result.Results))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonInput, "json-input", false, "read a JSON array of values from stdin")
	cmd.Flags().BoolVar(&fail, "fail", false, "exit with an error if any input is invalid")
	return cmd
}

func newFilterCmd(d *deps) *cobra.Command {
	var unique bool
	cmd := &cobra.Command{
		Use:     "filter [input...]",
		Short:   "Print the hostnames of valid inputs only",
		GroupID: "validate",
		Long: `Validate every input and print the extracted hostname of those that pass,
dropping the rest. Useful for cleaning host lists in pipelines.`,
		Example: `  cat urls.txt | isdomain filter --unique -o plain`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runChecks(cmd, d, args, false)
			if err != nil {
				return err
			}
			kept := &check.Extractions{}
			seen := map[string]bool{}
			for _, r := range result.Valid() {
				if unique && seen[r.Hostname] {
					continue
				}
				seen[r.Hostname] = true
				kept.Items = append(kept.Items, &check.Extraction{Input: r.Input, Hostname: r.Hostname})
			}
			d.logger.Debug("filtered inputs", "kept", len(kept.Items), "dropped", len(result.Results)-len(kept.Items))
			if d.cfg.Defang {
				kept = kept.Defanged()
			}
			return writeResult(cmd.OutOrStdout(), d, kept)
		},
	}
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "print each hostname once")
	return cmd
}

func newExtractCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "extract [input...]",
		Short:   "Print the hostname extracted from each input without validating it",
		GroupID: "validate",
		Long: `Strip the scheme, path, query, fragment and port from each input and print
the lowercased remainder. No validation is applied; an input that reduces to
nothing yields an empty hostname.`,
		Example: `  isdomain extract "HTTPS://Example.com:8443/path?q=1"`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := resolveInputs(cmd, args)
			if err != nil {
				return err
			}
			svc := d.newCheckService()
			result := &check.Extractions{Items: make([]*check.Extraction, 0, len(inputs))}
			for _, in := range inputs {
				result.Items = append(result.Items, svc.Extract(in))
			}
			if d.cfg.Defang {
				result = result.Defanged()
			}
			return writeResult(cmd.OutOrStdout(), d, result)
		},
	}
}

// runChecks gathers inputs from args, stdin lines or a stdin JSON array and
// validates them on the worker pool, preserving input order.
func runChecks(cmd *cobra.Command, d *deps, args []string, jsonInput bool) (*check.MultiResult, error) {
	var values []any
	if jsonInput {
		if len(args) > 0 {
			return nil, fmt.Errorf("--json-input reads stdin; do not pass arguments")
		}
		decoded, err := input.ReadJSON(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		values = decoded
	} else {
		inputs, err := resolveInputs(cmd, args)
		if err != nil {
			return nil, err
		}
		values = make([]any, len(inputs))
		for i, in := range inputs {
			values[i] = in
		}
	}

	svc := d.newCheckService()
	jobs := worker.Run(cmd.Context(), values, d.cfg.Concurrency, svc.RunValue)

	result := &check.MultiResult{Results: make([]*check.Result, 0, len(jobs))}
	for _, job := range jobs {
		if job.Err != nil {
			return nil, job.Err
		}
		result.Results = append(result.Results, job.Output)
	}
	d.logger.Debug("checked inputs", "total", len(result.Results), "invalid", result.Invalid())
	return result, nil
}
