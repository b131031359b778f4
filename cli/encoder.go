package cli

import (
	"bytes"
	"io"

	"github.com/fatih/color"

	"github.com/itchyny/pathq"
)

type palette struct {
	null, boolean, number, str, key *color.Color
}

func newPalette() *palette {
	p := &palette{
		null:    color.New(color.FgHiBlack),
		boolean: color.New(color.FgYellow),
		number:  color.New(color.FgCyan),
		str:     color.New(color.FgGreen),
		key:     color.New(color.FgBlue, color.Bold),
	}
	for _, c := range []*color.Color{p.null, p.boolean, p.number, p.str, p.key} {
		c.EnableColor()
	}
	return p
}

type encoder struct {
	out    io.Writer
	w      *bytes.Buffer
	mode   outputMode
	indent int
	depth  int
	colors *palette
}

func newEncoder(mode outputMode, indent int, colored bool) *encoder {
	e := &encoder{w: new(bytes.Buffer), mode: mode}
	if mode == outputPretty {
		e.indent = indent
	}
	if colored {
		e.colors = newPalette()
	}
	return e
}

func (e *encoder) marshal(v any, w io.Writer) error {
	e.out = w
	if s, ok := v.(string); ok && e.mode == outputRaw {
		e.w.WriteString(s)
	} else if err := e.encode(v); err != nil {
		e.w.Reset()
		return err
	}
	e.w.WriteByte('\n')
	_, err := w.Write(e.w.Bytes())
	e.w.Reset()
	return err
}

func (e *encoder) encode(v any) error {
	switch v := v.(type) {
	case []any:
		if err := e.encodeArray(v); err != nil {
			return err
		}
	case *pathq.Object:
		if err := e.encodeObject(v); err != nil {
			return err
		}
	default:
		if err := e.encodeLeaf(v, e.leafColor(v)); err != nil {
			return err
		}
	}
	if e.w.Len() > 8*1024 {
		if _, err := e.out.Write(e.w.Bytes()); err != nil {
			return err
		}
		e.w.Reset()
	}
	return nil
}

func (e *encoder) leafColor(v any) *color.Color {
	if e.colors == nil {
		return nil
	}
	switch v.(type) {
	case nil:
		return e.colors.null
	case bool:
		return e.colors.boolean
	case string:
		return e.colors.str
	default:
		return e.colors.number
	}
}

func (e *encoder) encodeLeaf(v any, c *color.Color) error {
	bs, err := pathq.Marshal(v)
	if err != nil {
		return err
	}
	if c != nil {
		e.w.WriteString(c.Sprint(string(bs)))
	} else {
		e.w.Write(bs)
	}
	return nil
}

func (e *encoder) encodeArray(vs []any) error {
	e.w.WriteByte('[')
	e.depth += e.indent
	for i, v := range vs {
		if i > 0 {
			e.w.WriteByte(',')
		}
		if e.indent != 0 {
			e.writeIndent()
		}
		if err := e.encode(v); err != nil {
			return err
		}
	}
	e.depth -= e.indent
	if len(vs) > 0 && e.indent != 0 {
		e.writeIndent()
	}
	e.w.WriteByte(']')
	return nil
}

func (e *encoder) encodeObject(o *pathq.Object) error {
	e.w.WriteByte('{')
	e.depth += e.indent
	var i int
	var err error
	o.Range(func(k string, v any) bool {
		if i > 0 {
			e.w.WriteByte(',')
		}
		i++
		if e.indent != 0 {
			e.writeIndent()
		}
		var kc *color.Color
		if e.colors != nil {
			kc = e.colors.key
		}
		if err = e.encodeLeaf(k, kc); err != nil {
			return false
		}
		if e.indent == 0 {
			e.w.WriteByte(':')
		} else {
			e.w.Write([]byte{':', ' '})
		}
		err = e.encode(v)
		return err == nil
	})
	if err != nil {
		return err
	}
	e.depth -= e.indent
	if i > 0 && e.indent != 0 {
		e.writeIndent()
	}
	e.w.WriteByte('}')
	return nil
}

func (e *encoder) writeIndent() {
	e.w.WriteByte('\n')
	const spaces = "                                                                "
	for n := e.depth; n > 0; n -= len(spaces) {
		e.w.WriteString(spaces[:min(n, len(spaces))])
	}
}

