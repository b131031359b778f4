package pathq

// collectFrame is a value waiting to be visited, together with the object
// key it was found under.
type collectFrame struct {
	key   string
	keyed bool
	v     any
}

// collect appends to out every value found under the field named by path,
// at any depth below root, in depth-first pre-order. A matched value is
// itself searched as well. Only a path of a single FieldSegment matches
// anything.
func collect(root any, path []PathSegment, out []any) []any {
	var name string
	var named bool
	if len(path) == 1 {
		if f, ok := path[0].(FieldSegment); ok {
			name, named = f.Name, true
		}
	}
	var s stack[collectFrame]
	s.push(collectFrame{v: root})
	for !s.empty() {
		f := s.pop()
		if named && f.keyed && f.key == name {
			out = append(out, f.v)
		}
		// children are pushed in reverse so they pop in order
		switch v := f.v.(type) {
		case *Object:
			keys, values := v.Keys(), v.Values()
			for i := len(keys) - 1; i >= 0; i-- {
				s.push(collectFrame{keys[i], true, values[i]})
			}
		case []any:
			for i := len(v) - 1; i >= 0; i-- {
				s.push(collectFrame{v: v[i]})
			}
		}
	}
	return out
}
