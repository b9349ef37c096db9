package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tbckr/isdomain/internal/config"
	"github.com/tbckr/isdomain/internal/output"
)

func newConfigCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Read and write isdomain config file values",
		GroupID: "utility",
	}
	cmd.AddCommand(
		newConfigPathCmd(d),
		newConfigShowCmd(d),
		newConfigGetCmd(d),
		newConfigSetCmd(d),
	)
	return cmd
}

func newConfigPathCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), d.cfg.ConfigFile)
			return err
		},
	}
}

// configRows holds the effective key/value pairs in key order.
type configRows [][2]string

func buildConfigRows(cfg *config.Config) (configRows, error) {
	keys := config.ValidKeys()
	rows := make(configRows, 0, len(keys))
	for _, k := range keys {
		v, err := cfg.Value(k)
		if err != nil {
			return nil, err
		}
		rows = append(rows, [2]string{k, v})
	}
	return rows, nil
}

// MarshalJSON renders the rows as a JSON object.
func (r configRows) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(r))
	for _, row := range r {
		m[row[0]] = row[1]
	}
	return json.Marshal(m)
}

// WritePlain writes key=value lines.
func (r configRows) WritePlain(w io.Writer) error {
	for _, row := range r {
		if _, err := fmt.Fprintf(w, "%s=%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable writes a KEY / VALUE table.
func (r configRows) WriteTable(w io.Writer, _ *output.Styler) error {
	rows := make([][]string, len(r))
	for i, row := range r {
		rows[i] = []string{row[0], row[1]}
	}
	table := output.NewWrappingTable(w, 20, 6)
	table.Header([]string{"Key", "Value"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func newConfigShowCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Aliases: []string{"cat"},
		Short:   "Display all effective config settings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := buildConfigRows(d.cfg)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), d, rows)
		},
	}
}

func newConfigGetCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the effective value of a config key",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.ValidKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ValidateKey(args[0]); err != nil {
				return err
			}
			v, err := d.cfg.Value(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

func newConfigSetCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return config.ValidKeys(), cobra.ShellCompDirectiveNoFileComp
			case 1:
				return config.KeyCompletions(args[0]), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			key := config.NormalizeKey(args[0])
			if err := config.ValidateKey(key); err != nil {
				return err
			}
			typed, err := config.ParseValue(key, args[1])
			if err != nil {
				return err
			}
			if err := setConfigValue(d.cfg.ConfigFile, key, typed); err != nil {
				return err
			}
			d.logger.Debug("config value written", "key", key, "file", d.cfg.ConfigFile)
			return nil
		},
	}
}

// setConfigValue writes key=value into the YAML file at path, leaving every
// other key as it is in the file. Defaults are never written.
func setConfigValue(path, key string, value any) error {
	raw := map[string]any{}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}
	}
	raw[key] = value

	out, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
