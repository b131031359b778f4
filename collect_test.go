package pathq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	tree := NewObjectFrom(
		"a", NewObjectFrom(
			"id", int64(1),
			"a", NewObjectFrom("id", int64(2)),
		),
		"list", []any{
			NewObjectFrom("id", int64(3), "child", NewObjectFrom("id", int64(4))),
			[]any{NewObjectFrom("id", int64(5))},
			"id",
		},
		"id", int64(6),
	)
	testCases := []struct {
		name     string
		path     []PathSegment
		expected string
	}{
		{"pre-order", []PathSegment{FieldSegment{"id"}}, `[1,2,3,4,5,6]`},
		{"match is searched", []PathSegment{FieldSegment{"a"}}, `[{"id":1,"a":{"id":2}},{"id":2}]`},
		{"no match", []PathSegment{FieldSegment{"missing"}}, `[]`},
		{"longer path matches nothing", []PathSegment{FieldSegment{"a"}, FieldSegment{"id"}}, `[]`},
		{"non-field path matches nothing", []PathSegment{IndexSegment{0}}, `[]`},
		{"empty path matches nothing", nil, `[]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := collect(tree, tc.path, []any{})
			assert.Equal(t, tc.expected, jsonMarshal(got))
		})
	}
}

func TestCollectAppends(t *testing.T) {
	tree := NewObjectFrom("x", int64(1), "y", int64(2))
	out := collect(tree, []PathSegment{FieldSegment{"y"}}, []any{"before"})
	out = collect(tree, []PathSegment{FieldSegment{"x"}}, out)
	assert.Equal(t, `["before",2,1]`, jsonMarshal(out))
}

func TestCollectScalarRoot(t *testing.T) {
	for _, v := range []any{nil, true, int64(1), 1.5, "s"} {
		assert.Empty(t, collect(v, []PathSegment{FieldSegment{"x"}}, nil))
	}
}

func TestCollectDeepTree(t *testing.T) {
	const depth = 100000
	var v any = NewObjectFrom("leaf", true)
	for i := 0; i < depth; i++ {
		if i%2 == 0 {
			v = []any{v}
		} else {
			v = NewObjectFrom("leaf", int64(i), "next", v)
		}
	}
	got := collect(v, []PathSegment{FieldSegment{"leaf"}}, nil)
	assert.Len(t, got, depth/2+1)
	assert.Equal(t, int64(depth-1), got[0])
	assert.Equal(t, true, got[len(got)-1])
}
