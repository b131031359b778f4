package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itchyny/pathq"
)

func TestDecodeJSON(t *testing.T) {
	v, err := decodeJSON([]byte(`{"b": [1, -2, 1.5, 1e3, "s\u00e9", true, false, null], "a": {}, "b2": 9223372036854775808}`))
	require.NoError(t, err)
	o, ok := v.(*pathq.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a", "b2"}, o.Keys())
	b, _ := o.Get("b")
	assert.Equal(t, []any{int64(1), int64(-2), 1.5, 1000.0, "sé", true, false, nil}, b)
	a, _ := o.Get("a")
	assert.Equal(t, 0, a.(*pathq.Object).Len())
	b2, _ := o.Get("b2")
	assert.Equal(t, 9223372036854775808.0, b2)

	for _, src := range []string{"", "{", `{"a" 1}`, "[1,]", "1 2"} {
		_, err := decodeJSON([]byte(src))
		assert.Error(t, err, src)
	}
}

func TestDecodeYAML(t *testing.T) {
	v, err := decodeYAML([]byte(`
z: 1
a:
  - x
  - 2.5
  - ~
  - yes
  - true
1: one
null: none
? [k]
: list key
anchor: &x {p: 1, q: [2]}
alias: *x
`))
	require.NoError(t, err)
	bs, err := pathq.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":["x",2.5,null,"yes",true],"1":"one","null":"none","[\"k\"]":"list key",`+
		`"anchor":{"p":1,"q":[2]},"alias":{"p":1,"q":[2]}}`, string(bs))

	o := v.(*pathq.Object)
	z, _ := o.Get("z")
	assert.Equal(t, int64(1), z)

	v, err = decodeYAML([]byte("first: 1\n---\nsecond: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, v.(*pathq.Object).Keys())

	v, err = decodeYAML(nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = decodeYAML([]byte("a: [1"))
	assert.Error(t, err)
}

func TestDecodeYAMLMerge(t *testing.T) {
	v, err := decodeYAML([]byte(`
base: &base {a: 1, b: 2}
more: &more {b: 3, c: 4}
one:
  <<: *base
  a: 10
many:
  <<: [*base, *more]
  d: 5
`))
	require.NoError(t, err)
	o := v.(*pathq.Object)
	for key, expected := range map[string]string{
		"one":  `{"a":10,"b":2}`,
		"many": `{"d":5,"a":1,"b":2,"c":4}`,
	} {
		x, _ := o.Get(key)
		bs, err := pathq.Marshal(x)
		require.NoError(t, err)
		assert.Equal(t, expected, string(bs), key)
	}

	_, err = decodeYAML([]byte("a:\n  <<: 1\n"))
	assert.ErrorContains(t, err, "merge value must be a mapping")
}

func TestDecodeYAMLTimestamp(t *testing.T) {
	v, err := decodeYAML([]byte("t: !!timestamp 2020-01-02T03:04:05.5Z\n"))
	require.NoError(t, err)
	x, _ := v.(*pathq.Object).Get("t")
	assert.Equal(t, "2020-01-02T03:04:05.5Z", x)
}

func TestDecodeTOML(t *testing.T) {
	v, err := decodeTOML([]byte(`
zeta = 1
alpha = "a"
date = 1979-05-27
datetime = 1979-05-27T07:32:00Z
float = 0.5

[table]
y = [1, 2]
x = true

[[items]]
name = "first"
`))
	require.NoError(t, err)
	bs, err := pathq.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":"a","date":"1979-05-27","datetime":"1979-05-27T07:32:00Z","float":0.5,`+
		`"items":[{"name":"first"}],"table":{"x":true,"y":[1,2]},"zeta":1}`, string(bs))

	_, err = decodeTOML([]byte("a = nan"))
	assert.ErrorContains(t, err, "cannot represent")

	_, err = decodeTOML([]byte("a = "))
	assert.Error(t, err)
}
