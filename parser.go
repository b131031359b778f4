package pathq

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
)

// Parse a query. The query starts with the root marker $, followed by
// accessors (.name, ['name'], [n], [n,m,...], [*], [?(@... op literal)]) and
// then any number of recursive descents (..name).
func Parse(src string) (*Query, error) {
	var g grammarQuery
	if err := queryParser.ParseString(src, &g); err != nil {
		return nil, newParseError(src, err)
	}
	q := &Query{src: src}
	for _, a := range g.Accessors {
		seg, err := a.lower()
		if err != nil {
			return nil, &ParseError{src, err.offset, tokenAt(src, err.offset), err}
		}
		q.Segments = append(q.Segments, seg)
	}
	for _, d := range g.Descents {
		q.RecursivePaths = append(q.RecursivePaths, []PathSegment{FieldSegment{d.Name}})
	}
	return q, nil
}

func newParseError(src string, err error) *ParseError {
	var offset int
	var pe participle.Error
	var le *lexer.Error
	if errors.As(err, &pe) {
		offset = pe.Token().Pos.Offset
	} else if errors.As(err, &le) {
		offset = le.Tok.Pos.Offset
	}
	return &ParseError{src, offset, tokenAt(src, offset), err}
}

func tokenAt(src string, offset int) string {
	if offset < 0 || offset >= len(src) {
		return ""
	}
	return src[offset:]
}

type lowerError struct {
	offset int
	msg    string
}

func (err *lowerError) Error() string {
	return err.msg
}

func parseInt(s string, pos lexer.Position) (int64, *lowerError) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &lowerError{pos.Offset, fmt.Sprintf("integer out of range: %s", s)}
	}
	return i, nil
}

func (a *grammarAccessor) lower() (PathSegment, *lowerError) {
	if a.Bracket == nil {
		return FieldSegment{a.Field}, nil
	}
	b := a.Bracket
	switch {
	case b.Wildcard:
		return WildcardSegment{}, nil
	case b.Filter != nil:
		expr, err := b.Filter.lower()
		if err != nil {
			return nil, err
		}
		return FilterSegment{expr}, nil
	case b.Name != nil:
		return FieldSegment{b.Name.unquote()}, nil
	case len(b.Indices) == 1:
		i, err := parseInt(b.Indices[0], b.Pos)
		if err != nil {
			return nil, err
		}
		return IndexSegment{i}, nil
	default:
		indices := make([]int64, len(b.Indices))
		for j, s := range b.Indices {
			i, err := parseInt(s, b.Pos)
			if err != nil {
				return nil, err
			}
			indices[j] = i
		}
		return MultiIndexSegment{indices}, nil
	}
}

func (f *grammarFilter) lower() (*FilterExpr, *lowerError) {
	expr := &FilterExpr{Op: f.Op}
	for _, step := range f.Steps {
		switch b := step.Bracket; {
		case b == nil:
			expr.Path = append(expr.Path, FieldSegment{step.Field})
		case b.Name != nil:
			expr.Path = append(expr.Path, FieldSegment{b.Name.unquote()})
		default:
			i, err := parseInt(b.Index, b.Pos)
			if err != nil {
				return nil, err
			}
			expr.Path = append(expr.Path, IndexSegment{i})
		}
	}
	switch v := f.Value; {
	case v.Str != nil:
		expr.Value = Literal{Kind: LiteralString, Str: v.Str.unquote()}
	case v.Int != "":
		i, err := parseInt(v.Int, v.Pos)
		if err != nil {
			return nil, err
		}
		expr.Value = Literal{Kind: LiteralInteger, Int: i}
	case v.True || v.False:
		expr.Value = Literal{Kind: LiteralBoolean, Bool: v.True}
	default:
		expr.Value = Literal{Kind: LiteralNull}
	}
	return expr, nil
}
