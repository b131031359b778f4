package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/itchyny/pathq"
)

const name = "pathq"

const version = "0.1.0"

var revision = "HEAD"

const (
	exitCodeOK = iota
	exitCodeDefaultErr
	exitCodeFlagParseErr
	exitCodeQueryParseErr
	exitCodeInputErr
	exitCodeQueryErr
)

type cli struct {
	inStream  io.Reader
	outStream io.Writer
	errStream io.Writer
}

func (cli *cli) run(args []string) int {
	cmd := cli.command()
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return cli.printError(err)
	}
	return exitCodeOK
}

func (cli *cli) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [flags] QUERY",
		Short: name + " - query JSON, YAML, and TOML with path expressions",
		Long: name + ` - query JSON, YAML, and TOML with path expressions

Synopsis:
    % echo '{"foo": [1, 2]}' | ` + name + ` '$.foo[-1]'

Query syntax:
    $            the root value
    .name        field of an object, also ['name'] and ["name"]
    [n]          element of an array, negative n counts from the end
    [n,m,...]    elements of an array, out of range indices are skipped
    [*]          the elements of an array or the values of an object
    [?(@.f > 1)] array elements matching ==, !=, >, >=, <, <= against
                 a string, an integer, true, false, or null
    ..name       every value under the field name at any depth`,
		Version:       fmt.Sprintf("%s (rev: %s/%s)", version, revision, runtime.Version()),
		Args:          queryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.runQuery(cmd, args[0])
		},
	}
	cmd.SetIn(cli.inStream)
	cmd.SetOut(cli.outStream)
	cmd.SetErr(cli.errStream)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &flagParseError{err}
	})
	registerFlags(cmd)
	return cmd
}

func queryArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return &flagParseError{fmt.Errorf("expected a query argument")}
	case 1:
		return nil
	default:
		return &flagParseError{fmt.Errorf("too many arguments: %q", args[1:])}
	}
}

func (cli *cli) runQuery(cmd *cobra.Command, arg string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cli.errStream, opts.Verbose)
	defer logger.Sync() //nolint:errcheck
	logger.Debug("options loaded",
		zap.String("file", opts.File),
		zap.String("input-format", opts.InputFormat),
		zap.String("output", opts.Output),
		zap.String("color", opts.Color),
		zap.Int("indent", opts.Indent),
	)

	query, err := pathq.Parse(arg)
	if err != nil {
		return &queryParseError{arg, err}
	}
	logger.Debug("query parsed",
		zap.Stringer("query", query),
		zap.Int("segments", len(query.Segments)),
		zap.Int("recursive", len(query.RecursivePaths)),
	)

	in, err := cli.readInput(opts.File)
	if err != nil {
		return err
	}
	format, err := resolveFormat(opts.InputFormat, in)
	if err != nil {
		return &flagParseError{err}
	}
	logger.Debug("input read",
		zap.String("name", in.name),
		zap.Int("bytes", len(in.data)),
		zap.String("compression", in.compression),
		zap.Stringer("format", format),
	)
	v, err := decode(format, in.data)
	if err != nil {
		return &inputError{in.name, format.String(), err}
	}

	v, err = query.Run(v)
	if err != nil {
		logger.Debug("query failed", zap.Error(err))
		return &queryError{err}
	}
	logger.Debug("query succeeded", zap.String("type", pathq.TypeOf(v)))

	enc := newEncoder(opts.outputMode, opts.Indent, opts.colored(cli.outStream))
	return enc.marshal(v, cli.outStream)
}

func (cli *cli) printError(err error) int {
	fmt.Fprintf(cli.errStream, "%s: %s\n", name, err)
	if err, ok := err.(interface{ ExitCode() int }); ok {
		return err.ExitCode()
	}
	return exitCodeDefaultErr
}
