package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/itchyny/pathq"
)

type flagParseError struct {
	err error
}

func (err *flagParseError) Error() string {
	return err.err.Error()
}

func (err *flagParseError) Unwrap() error {
	return err.err
}

func (*flagParseError) ExitCode() int {
	return exitCodeFlagParseErr
}

type queryParseError struct {
	query string
	err   error
}

func (err *queryParseError) Error() string {
	var e *pathq.ParseError
	if !errors.As(err.err, &e) {
		return "invalid query: " + err.err.Error()
	}
	linestr, line, column := getLineByOffset(err.query, e.Offset)
	if line > 1 || strings.ContainsAny(err.query, "\r\n") {
		return fmt.Sprintf("invalid query: line %d\n%s  %s",
			line, formatLineInfo(linestr, line, column), e.Err)
	}
	return fmt.Sprintf("invalid query: %s\n    %s\n    %*c  %s",
		err.query, linestr, column+1, '^', e.Err)
}

func (err *queryParseError) Unwrap() error {
	return err.err
}

func (*queryParseError) ExitCode() int {
	return exitCodeQueryParseErr
}

type inputError struct {
	name   string
	format string // empty when reading failed
	err    error
}

func (err *inputError) Error() string {
	if err.format == "" {
		return fmt.Sprintf("failed to read %s: %s", err.name, err.err)
	}
	return fmt.Sprintf("invalid %s: %s: %s", err.format, err.name, err.err)
}

func (err *inputError) Unwrap() error {
	return err.err
}

func (*inputError) ExitCode() int {
	return exitCodeInputErr
}

type queryError struct {
	err error
}

func (err *queryError) Error() string {
	return "failed to apply query: " + err.err.Error()
}

func (err *queryError) Unwrap() error {
	return err.err
}

func (*queryError) ExitCode() int {
	return exitCodeQueryErr
}

// getLineByOffset returns the line containing the byte offset, its 1-based
// number, and the display column of the offset within it.
func getLineByOffset(str string, offset int) (linestr string, line, column int) {
	offset = min(max(offset, 0), len(str))
	start := strings.LastIndexAny(str[:offset], "\r\n") + 1
	line = strings.Count(str[:start], "\n") + strings.Count(str[:start], "\r") -
		strings.Count(str[:start], "\r\n") + 1
	linestr = str[start:]
	if i := strings.IndexAny(linestr, "\r\n"); i >= 0 {
		linestr = linestr[:i]
	}
	column = runewidth.StringWidth(str[start:offset])
	return
}

func formatLineInfo(linestr string, line, column int) string {
	l := strconv.Itoa(line)
	return fmt.Sprintf("    %s | %s\n    %*c", l, linestr, column+len(l)+4, '^')
}
