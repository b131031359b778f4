package cli

import (
	"bytes"
	"fmt"
	"regexp"
)

type inputFormat int

const (
	formatJSON inputFormat = iota
	formatYAML
	formatTOML
)

func (f inputFormat) String() string {
	switch f {
	case formatYAML:
		return "yaml"
	case formatTOML:
		return "toml"
	default:
		return "json"
	}
}

var formatNames = map[string]inputFormat{
	"json": formatJSON,
	"yaml": formatYAML,
	"yml":  formatYAML,
	"toml": formatTOML,
}

// resolveFormat picks the input format from the explicit name, then the file
// extension, then the contents.
func resolveFormat(explicit string, in *input) (inputFormat, error) {
	if explicit != "" {
		f, ok := formatNames[explicit]
		if !ok {
			return 0, fmt.Errorf("invalid input format: %q", explicit)
		}
		return f, nil
	}
	if in.name != "<stdin>" {
		if ext := fileExt(in.name); ext != "" {
			if f, ok := formatNames[ext[1:]]; ok {
				return f, nil
			}
		}
	}
	return detectFormat(in.data), nil
}

var (
	tomlTableRe    = regexp.MustCompile(`^\[\[?\s*[A-Za-z_][A-Za-z0-9_.-]*\s*\]\]?\s*(#.*)?$`)
	tomlKeyValueRe = regexp.MustCompile(`^("[^"]*"|'[^']*'|[A-Za-z0-9_.-]+)\s*=`)
)

// detectFormat guesses the format from the first meaningful line. Anything
// that does not look like YAML or TOML is read as JSON.
func detectFormat(data []byte) inputFormat {
	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line[0] == '#' {
			// a comment, so not JSON
			if f := detectFormat(data); f == formatTOML {
				return f
			}
			return formatYAML
		}
		return detectLine(line)
	}
	return formatJSON
}

func detectLine(line []byte) inputFormat {
	if tomlTableRe.Match(line) {
		switch string(bytes.Trim(line, "[] \t")) {
		case "true", "false", "null":
			return formatJSON
		}
		return formatTOML
	}
	if tomlKeyValueRe.Match(line) {
		return formatTOML
	}
	switch c := line[0]; {
	case c == '{' || c == '[':
		return formatJSON
	case c == '"':
		// a quoted mapping key is YAML, a quoted string is JSON
		if i := bytes.IndexByte(line[1:], '"'); i >= 0 {
			if rest := bytes.TrimSpace(line[i+2:]); len(rest) > 0 && rest[0] == ':' {
				return formatYAML
			}
		}
		return formatJSON
	case c == '-':
		if bytes.HasPrefix(line, []byte("---")) || bytes.HasPrefix(line, []byte("- ")) || len(line) == 1 {
			return formatYAML
		}
		return formatJSON
	case '0' <= c && c <= '9':
		return formatJSON
	}
	switch string(line) {
	case "true", "false", "null":
		return formatJSON
	}
	return formatYAML
}
