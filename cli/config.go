package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type outputMode int

const (
	outputCompact outputMode = iota
	outputPretty
	outputRaw
)

var outputModes = map[string]outputMode{
	"compact": outputCompact,
	"pretty":  outputPretty,
	"raw":     outputRaw,
}

type options struct {
	File        string
	InputFormat string
	Output      string
	Indent      int
	Color       string
	Verbose     bool

	outputMode outputMode
}

func registerFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.SortFlags = false
	fs.StringP("file", "f", "", "input file (default: standard input)")
	fs.StringP("input-format", "i", "", "input format: json, yaml, toml (default: detected)")
	fs.StringP("output", "o", "compact", "output format: compact, pretty, raw")
	fs.Int("indent", 2, "number of spaces to indent pretty output (0-7)")
	fs.String("color", "auto", "colorize output: auto, always, never")
	fs.String("config", "", "config file with default values of the flags")
	fs.Bool("verbose", false, "print debug logs to standard error")
}

// loadOptions resolves each option from the flags, then PATHQ_* environment
// variables, then the config file, then the flag defaults.
func loadOptions(cmd *cobra.Command) (*options, error) {
	v := viper.New()
	v.SetEnvPrefix(strings.ToUpper(name))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &flagParseError{fmt.Errorf("config file %s: %w", path, err)}
		}
	}
	opts := &options{
		File:        v.GetString("file"),
		InputFormat: strings.ToLower(v.GetString("input-format")),
		Output:      strings.ToLower(v.GetString("output")),
		Indent:      v.GetInt("indent"),
		Color:       strings.ToLower(v.GetString("color")),
		Verbose:     v.GetBool("verbose"),
	}
	return opts, opts.validate()
}

func (opts *options) validate() error {
	var ok bool
	if opts.outputMode, ok = outputModes[opts.Output]; !ok {
		return &flagParseError{fmt.Errorf("invalid output format: %q", opts.Output)}
	}
	if opts.Indent < 0 || opts.Indent > 7 {
		return &flagParseError{fmt.Errorf("invalid indent: %d (must be between 0 and 7)", opts.Indent)}
	}
	switch opts.Color {
	case "auto", "always", "never":
	default:
		return &flagParseError{fmt.Errorf("invalid color mode: %q", opts.Color)}
	}
	return nil
}

func (opts *options) colored(w io.Writer) bool {
	switch opts.Color {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
