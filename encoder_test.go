package pathq

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	testCases := []struct {
		value    any
		expected string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{int64(-9007199254740993), "-9007199254740993"},
		{3.5, "3.5"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{math.NaN(), "null"},
		{math.Inf(1), "1.7976931348623157e+308"},
		{"", `""`},
		{"a\"b\\c\n\t\x01あ", `"a\"b\\c\n\t\u0001あ"`},
		{"\xff", `"\ufffd"`},
		{[]any{}, "[]"},
		{[]any{int64(1), "x", nil}, `[1,"x",null]`},
		{NewObject(), "{}"},
		{NewObjectFrom("z", int64(1), "a", []any{NewObjectFrom("k", false)}), `{"z":1,"a":[{"k":false}]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			got, err := Marshal(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(got))
		})
	}
}

func TestObjectMarshalJSON(t *testing.T) {
	bs, err := json.Marshal(map[string]any{
		"o": NewObjectFrom("b", int64(1), "a", int64(2)),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"o":{"b":1,"a":2}}`, string(bs))
}

func TestObject(t *testing.T) {
	o := NewObject()
	o.Set("b", 1)
	o.Set("a", 2)
	o.Set("b", 3)
	assert.Equal(t, 2, o.Len())
	assert.Equal(t, []string{"b", "a"}, o.Keys())
	assert.Equal(t, []any{3, 2}, o.Values())
	v, ok := o.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = o.Get("c")
	assert.False(t, ok)
	var keys []string
	o.Range(func(k string, _ any) bool {
		keys = append(keys, k)
		return false
	})
	assert.Equal(t, []string{"b"}, keys)
	assert.Equal(t, 0, (*Object)(nil).Len())
}
