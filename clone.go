package pathq

func clone(v any) any {
	switch v := v.(type) {
	case *Object:
		u := NewObject()
		v.Range(func(k string, v any) bool {
			u.Set(k, clone(v))
			return true
		})
		return u
	case []any:
		u := make([]any, len(v))
		for i, v := range v {
			u[i] = clone(v)
		}
		return u
	default:
		return v
	}
}
