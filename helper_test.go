package pathq

import (
	"github.com/valyala/fastjson"
)

func decodeTestJSON(s string) (any, error) {
	v, err := fastjson.Parse(s)
	if err != nil {
		return nil, err
	}
	return fromFastJSON(v), nil
}

func fromFastJSON(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeObject:
		o := NewObject()
		v.GetObject().Visit(func(k []byte, v *fastjson.Value) {
			o.Set(string(k), fromFastJSON(v))
		})
		return o
	case fastjson.TypeArray:
		a := v.GetArray()
		w := make([]any, len(a))
		for i, v := range a {
			w[i] = fromFastJSON(v)
		}
		return w
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		if i, err := v.Int64(); err == nil {
			return i
		}
		return v.GetFloat64()
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	default:
		return nil
	}
}
