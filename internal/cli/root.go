// Package cli provides the Cobra command tree and output wiring for isdomain.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/tbckr/isdomain/internal/config"
	"github.com/tbckr/isdomain/internal/version"
)

// newRootCmd builds the top-level Cobra command for isdomain.
// Callers must set stdout/stderr via cmd.SetOut / cmd.SetErr before Execute.
func newRootCmd() *cobra.Command {
	// d is populated by PersistentPreRunE before any subcommand's RunE runs.
	// Cobra only executes the innermost PersistentPreRunE; only the completion
	// command overrides it.
	var d deps

	cmd := &cobra.Command{
		Use:   "isdomain",
		Short: "Check whether strings and URLs contain a structurally valid hostname",
		Long: `isdomain extracts the hostname from bare hosts or URL-like strings and checks
it against RFC 1035 label rules: labels of 1-63 letters, digits and interior
hyphens, at least one dot, and at most 253 characters overall. The name
"localhost" is accepted when given without a scheme.

Nothing is resolved; every check is offline and structural.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := buildDeps(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			d = *resolved
			return nil
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())
	config.RegisterFlagCompletions(cmd)

	cmd.Version = version.Get().Version
	cmd.SetVersionTemplate("isdomain version {{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: "validate", Title: "Validation Commands:"},
		&cobra.Group{ID: "utility", Title: "Utility Commands:"},
	)

	cmd.AddCommand(
		newCheckCmd(&d),
		newFilterCmd(&d),
		newExtractCmd(&d),
		newConfigCmd(&d),
		newCompletionCmd(),
		newVersionCmd(&d),
	)

	return cmd
}

// Execute builds the root command and runs it with args (without the program name).
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}
