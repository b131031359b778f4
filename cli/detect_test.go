package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	for _, s := range []string{"", "\t", "\r", "\n", " ", " \t", " \r", " \n", " \t ", " \r ", " \n "} {
		testDetectFormat(t, s+"", formatJSON)
		testDetectFormat(t, s+"{", formatJSON)
		testDetectFormat(t, s+"[1, 2]", formatJSON)
		testDetectFormat(t, s+"[true]", formatJSON)
		testDetectFormat(t, s+"#", formatYAML)
		testDetectFormat(t, s+"# comment\na: 1", formatYAML)
		testDetectFormat(t, s+"# comment\na = 1", formatTOML)
		testDetectFormat(t, s+"a", formatYAML)
		testDetectFormat(t, s+"a:", formatYAML)
		testDetectFormat(t, s+"a: 1", formatYAML)
		testDetectFormat(t, s+"a: x = y", formatYAML)
		testDetectFormat(t, s+"a = 1", formatTOML)
		testDetectFormat(t, s+"a.b = 1", formatTOML)
		testDetectFormat(t, s+"a=1", formatTOML)
		testDetectFormat(t, s+`"a b" = 1`, formatTOML)
		testDetectFormat(t, s+"[table]", formatTOML)
		testDetectFormat(t, s+"[a.b] # comment", formatTOML)
		testDetectFormat(t, s+"[[array]]", formatTOML)
		testDetectFormat(t, s+"true", formatJSON)
		testDetectFormat(t, s+"true:", formatYAML)
		testDetectFormat(t, s+"null", formatJSON)
		testDetectFormat(t, s+"null:", formatYAML)
		testDetectFormat(t, s+"false", formatJSON)
		testDetectFormat(t, s+"1", formatJSON)
		testDetectFormat(t, s+"-1", formatJSON)
		testDetectFormat(t, s+"-1e3", formatJSON)
		testDetectFormat(t, s+"--", formatJSON)
		testDetectFormat(t, s+"---", formatYAML)
		testDetectFormat(t, s+"- a", formatYAML)
		testDetectFormat(t, s+`"hello"`, formatJSON)
		testDetectFormat(t, s+`"hello":1`, formatYAML)
		testDetectFormat(t, s+`"hello": 1`, formatYAML)
		testDetectFormat(t, s+`'hello'`, formatYAML)
		testDetectFormat(t, s+`'hello': 1`, formatYAML)
	}
}

func testDetectFormat(t *testing.T, s string, format inputFormat) {
	t.Helper()
	if f := detectFormat([]byte(s)); f != format {
		t.Fatalf("failed: invalid format '%s' expected '%s' for string %q", f, format, s)
	}
}

func TestResolveFormat(t *testing.T) {
	for _, tc := range []struct {
		explicit string
		name     string
		data     string
		expected inputFormat
	}{
		{"", "<stdin>", `{"a":1}`, formatJSON},
		{"", "<stdin>", "a: 1", formatYAML},
		{"", "<stdin>", "a = 1", formatTOML},
		{"yaml", "<stdin>", `{"a":1}`, formatYAML},
		{"yml", "<stdin>", "", formatYAML},
		{"toml", "data.json", "", formatTOML},
		{"", "data.json", "a: 1", formatJSON},
		{"", "data.YAML", "{}", formatYAML},
		{"", "data.yml", "{}", formatYAML},
		{"", "data.toml.gz", "{}", formatTOML},
		{"", "data.json.zst", "a: 1", formatJSON},
		{"", "data.txt", "a: 1", formatYAML},
		{"", "data", "a = 1", formatTOML},
	} {
		f, err := resolveFormat(tc.explicit, &input{name: tc.name, data: []byte(tc.data)})
		require.NoError(t, err)
		assert.Equal(t, tc.expected, f, "%+v", tc)
	}

	_, err := resolveFormat("xml", &input{name: "<stdin>"})
	assert.EqualError(t, err, `invalid input format: "xml"`)
}
