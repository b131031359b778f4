package cli

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/valyala/fastjson"
	"gopkg.in/yaml.v3"

	"github.com/itchyny/pathq"
)

func decode(f inputFormat, data []byte) (any, error) {
	switch f {
	case formatYAML:
		return decodeYAML(data)
	case formatTOML:
		return decodeTOML(data)
	default:
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) (any, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return fromJSON(v), nil
}

func fromJSON(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeObject:
		o := pathq.NewObject()
		// a duplicated key keeps its first position and its last value
		v.GetObject().Visit(func(k []byte, v *fastjson.Value) {
			o.Set(string(k), fromJSON(v))
		})
		return o
	case fastjson.TypeArray:
		vs := v.GetArray()
		xs := make([]any, len(vs))
		for i, v := range vs {
			xs[i] = fromJSON(v)
		}
		return xs
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

const maxYAMLNodes = 10_000_000

type yamlDecoder struct {
	count int
}

func decodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return (&yamlDecoder{}).decode(&doc)
}

func (d *yamlDecoder) decode(n *yaml.Node) (any, error) {
	if d.count++; d.count > maxYAMLNodes {
		return nil, errors.New("too many nodes after expanding aliases")
	}
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.decode(n.Content[0])
	case yaml.AliasNode:
		return d.decode(n.Alias)
	case yaml.SequenceNode:
		xs := make([]any, len(n.Content))
		for i, c := range n.Content {
			x, err := d.decode(c)
			if err != nil {
				return nil, err
			}
			xs[i] = x
		}
		return xs, nil
	case yaml.MappingNode:
		o := pathq.NewObject()
		return o, d.decodeMapping(n, o)
	default:
		return decodeYAMLScalar(n)
	}
}

// decodeMapping sets the pairs of n to o, followed by the merged keys
// which the mapping does not define explicitly.
func (d *yamlDecoder) decodeMapping(n *yaml.Node, o *pathq.Object) error {
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if isMergeKey(k) {
			merges = append(merges, v)
			continue
		}
		key, err := d.decodeKey(k)
		if err != nil {
			return err
		}
		x, err := d.decode(v)
		if err != nil {
			return err
		}
		o.Set(key, x)
	}
	for _, m := range merges {
		if err := d.merge(m, o); err != nil {
			return err
		}
	}
	return nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" &&
		(n.Tag == "" || n.Tag == "!" || n.Tag == "!!merge")
}

func (d *yamlDecoder) merge(n *yaml.Node, o *pathq.Object) error {
	for n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		src := pathq.NewObject()
		if err := d.decodeMapping(n, src); err != nil {
			return err
		}
		src.Range(func(k string, v any) bool {
			if _, ok := o.Get(k); !ok {
				o.Set(k, v)
			}
			return true
		})
		return nil
	case yaml.SequenceNode:
		for _, c := range n.Content {
			if err := d.merge(c, o); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("line %d: merge value must be a mapping", n.Line)
	}
}

func (d *yamlDecoder) decodeKey(n *yaml.Node) (string, error) {
	k, err := d.decode(n)
	if err != nil {
		return "", err
	}
	switch k := k.(type) {
	case string:
		return k, nil
	case nil:
		return "null", nil
	default:
		bs, err := pathq.Marshal(k)
		return string(bs), err
	}
}

func decodeYAMLScalar(n *yaml.Node) (any, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case int:
		return int64(v), nil
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), nil
		}
		return float64(v), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case []byte:
		return string(v), nil
	default:
		return v, nil
	}
}

func decodeTOML(data []byte) (any, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return fromTOML(m)
}

func fromTOML(v any) (any, error) {
	switch v := v.(type) {
	case map[string]any:
		o := pathq.NewObject()
		for _, k := range slices.Sorted(maps.Keys(v)) {
			x, err := fromTOML(v[k])
			if err != nil {
				return nil, err
			}
			o.Set(k, x)
		}
		return o, nil
	case []any:
		xs := make([]any, len(v))
		for i, x := range v {
			var err error
			if xs[i], err = fromTOML(x); err != nil {
				return nil, err
			}
		}
		return xs, nil
	case []map[string]any:
		xs := make([]any, len(v))
		for i, x := range v {
			var err error
			if xs[i], err = fromTOML(x); err != nil {
				return nil, err
			}
		}
		return xs, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("cannot represent %v in the value tree", v)
		}
		return v, nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return v, nil
	}
}
