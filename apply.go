package pathq

// applySegment applies one path segment to v. The result may share nodes
// with v; Run clones the final result.
func applySegment(v any, seg PathSegment) (any, error) {
	switch seg := seg.(type) {
	case FieldSegment:
		return applyField(seg, v)
	case IndexSegment:
		a, ok := v.([]any)
		if !ok {
			return nil, &TypeMismatchError{seg, v}
		}
		i, ok := resolveIndex(seg.Index, len(a))
		if !ok {
			return nil, &IndexOutOfBoundsError{seg.Index, len(a)}
		}
		return a[i], nil
	case MultiIndexSegment:
		a, ok := v.([]any)
		if !ok {
			return nil, &TypeMismatchError{seg, v}
		}
		w := make([]any, 0, len(seg.Indices))
		for _, index := range seg.Indices {
			// out of range indices are dropped, unlike IndexSegment
			if i, ok := resolveIndex(index, len(a)); ok {
				w = append(w, a[i])
			}
		}
		return w, nil
	case FilterSegment:
		a, ok := v.([]any)
		if !ok {
			return nil, &TypeMismatchError{seg, v}
		}
		w := make([]any, 0, len(a))
		for _, x := range a {
			ok, err := matchFilter(x, seg.Expr)
			if err != nil {
				return nil, err
			}
			if ok {
				w = append(w, x)
			}
		}
		return w, nil
	case WildcardSegment:
		switch v := v.(type) {
		case []any:
			w := make([]any, len(v))
			copy(w, v)
			return w, nil
		case *Object:
			return v.Values(), nil
		default:
			return nil, &TypeMismatchError{seg, v}
		}
	default:
		panic(seg)
	}
}

func applyField(seg FieldSegment, v any) (any, error) {
	o, ok := v.(*Object)
	if !ok {
		return nil, &TypeMismatchError{seg, v}
	}
	w, ok := o.Get(seg.Name)
	if !ok {
		return nil, &FieldNotFoundError{seg.Name, v}
	}
	return w, nil
}

// resolveIndex maps a possibly negative index onto an array of length l.
// An index below -l does not wrap around.
func resolveIndex(index int64, l int) (int, bool) {
	if index < 0 {
		index += int64(l)
	}
	if index < 0 || index >= int64(l) {
		return 0, false
	}
	return int(index), true
}
