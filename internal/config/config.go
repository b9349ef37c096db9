// Package config loads isdomain settings from flags, environment variables and
// the YAML config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tbckr/isdomain/internal/appdir"
)

// EnvPrefix is prepended to every environment variable, e.g. ISDOMAIN_OUTPUT.
const EnvPrefix = "ISDOMAIN"

// DefaultConcurrency is the number of workers used for bulk input.
const DefaultConcurrency = 10

// OutputFormats lists the values accepted by --output.
var OutputFormats = []string{"table", "json", "plain"}

// ErrUnknownKey is returned when a config key is not recognised.
var ErrUnknownKey = errors.New("unknown config key")

// Config is the fully resolved configuration.
type Config struct {
	ConfigFile  string `mapstructure:"-"`
	Verbose     bool   `mapstructure:"verbose"`
	Output      string `mapstructure:"output"`
	Concurrency int    `mapstructure:"concurrency"`
	Defang      bool   `mapstructure:"defang"`
	Refang      bool   `mapstructure:"refang"`
	NoColor     bool   `mapstructure:"no_color"`
}

type keyKind int

const (
	kindBool keyKind = iota
	kindPositiveInt
	kindEnum
)

type keySpec struct {
	flag   string
	kind   keyKind
	values []string
}

// keys maps each config key (underscore form) to its flag and value type.
var keys = map[string]keySpec{
	"verbose":     {flag: "verbose", kind: kindBool},
	"output":      {flag: "output", kind: kindEnum, values: OutputFormats},
	"concurrency": {flag: "concurrency", kind: kindPositiveInt},
	"defang":      {flag: "defang", kind: kindBool},
	"refang":      {flag: "refang", kind: kindBool},
	"no_color":    {flag: "no-color", kind: kindBool},
}

// RegisterFlags adds every config flag to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default: $XDG_CONFIG_HOME/isdomain/config.yaml)")
	flags.BoolP("verbose", "v", false, "enable verbose logging (debug level)")
	flags.StringP("output", "o", "table", "output format: "+strings.Join(OutputFormats, ", "))
	flags.IntP("concurrency", "c", DefaultConcurrency, "number of concurrent workers for bulk input")
	flags.Bool("defang", false, "defang hostnames in output (example[.]com)")
	flags.Bool("refang", false, "refang input before validation (hxxp://example[.]com)")
	flags.Bool("no-color", false, "disable coloured table output")
}

// DefaultConfigPath returns the OS-specific default config file path.
func DefaultConfigPath() (string, error) {
	return appdir.ConfigFile()
}

// Load resolves the configuration for the parsed flags. The config file is
// created if it does not exist yet.
func Load(flags *pflag.FlagSet) (*Config, error) {
	cfgFile, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if cfgFile == "" {
		cfgFile, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	if err := appdir.EnsureFile(cfgFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, spec := range keys {
		f := flags.Lookup(spec.flag)
		if f == nil {
			return nil, fmt.Errorf("flag --%s is not registered", spec.flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("binding flag --%s: %w", spec.flag, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigFile = cfgFile
	return cfg, nil
}

// Validate checks values that flags and the config file cannot constrain.
func (c *Config) Validate() error {
	if _, err := ParseValue("output", c.Output); err != nil {
		return err
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}

// Value returns the effective value of key formatted as a string.
func (c *Config) Value(key string) (string, error) {
	key = NormalizeKey(key)
	switch key {
	case "verbose":
		return strconv.FormatBool(c.Verbose), nil
	case "output":
		return c.Output, nil
	case "concurrency":
		return strconv.Itoa(c.Concurrency), nil
	case "defang":
		return strconv.FormatBool(c.Defang), nil
	case "refang":
		return strconv.FormatBool(c.Refang), nil
	case "no_color":
		return strconv.FormatBool(c.NoColor), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// NormalizeKey converts a flag-style key (no-color) to config form (no_color).
func NormalizeKey(key string) string {
	return strings.ReplaceAll(strings.TrimSpace(key), "-", "_")
}

// ValidKeys returns all config keys in sorted order.
func ValidKeys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ValidateKey returns ErrUnknownKey unless key names a config setting.
func ValidateKey(key string) error {
	if _, ok := keys[NormalizeKey(key)]; !ok {
		return fmt.Errorf("%w: %q (valid keys: %s)", ErrUnknownKey, key, strings.Join(ValidKeys(), ", "))
	}
	return nil
}

// ParseValue converts value into the type stored for key.
func ParseValue(key, value string) (any, error) {
	spec, ok := keys[NormalizeKey(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	switch spec.kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for %s: must be true or false", value, key)
		}
		return b, nil
	case kindPositiveInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid value %q for %s: must be an integer >= 1", value, key)
		}
		return n, nil
	default:
		for _, allowed := range spec.values {
			if value == allowed {
				return value, nil
			}
		}
		return nil, fmt.Errorf("invalid value %q for %s: must be one of: %s", value, key, strings.Join(spec.values, ", "))
	}
}

// KeyCompletions returns shell completion candidates for the value of key.
func KeyCompletions(key string) []string {
	spec, ok := keys[NormalizeKey(key)]
	if !ok {
		return nil
	}
	switch spec.kind {
	case kindBool:
		return []string{"true", "false"}
	case kindEnum:
		return spec.values
	}
	return nil
}
