package pathq

import "fmt"

// Run the query against v and return a newly allocated result tree.
//
// The segments of the main path are applied in order; the first failure
// aborts the run. When the query has recursive descents, they search the
// result of the main path, and if they find anything, the array of their
// matches replaces that result. v is never modified.
func Run(q *Query, v any) (any, error) {
	for i, seg := range q.Segments {
		w, err := applySegment(v, seg)
		if err != nil {
			return nil, &QueryError{q.source(), fmt.Sprintf("segment %d (%s)", i+1, seg), err}
		}
		v = w
	}
	if len(q.RecursivePaths) > 0 {
		var found []any
		for _, path := range q.RecursivePaths {
			found = collect(v, path, found)
		}
		if len(found) > 0 {
			v = found
		}
	}
	return clone(v), nil
}
