package pathq

import (
	"strconv"
	"strings"
)

// Query is a parsed path query. A Query is immutable once parsed and can be
// run against any number of value trees, also concurrently.
type Query struct {
	// Segments is the main path, applied left to right from the root.
	Segments []PathSegment
	// RecursivePaths holds the ..name productions in written order. Each
	// path produced by the parser has exactly one FieldSegment.
	RecursivePaths [][]PathSegment

	src string
}

// Run the query against v.
func (q *Query) Run(v any) (any, error) {
	return Run(q, v)
}

func (q *Query) String() string {
	var s strings.Builder
	s.WriteByte('$')
	for _, seg := range q.Segments {
		s.WriteString(seg.String())
	}
	for _, path := range q.RecursivePaths {
		s.WriteByte('.')
		for _, seg := range path {
			s.WriteString(seg.String())
		}
	}
	return s.String()
}

func (q *Query) source() string {
	if q.src != "" {
		return q.src
	}
	return q.String()
}

// PathSegment is one step of a path: FieldSegment, IndexSegment,
// MultiIndexSegment, FilterSegment, or WildcardSegment.
type PathSegment interface {
	String() string
	pathSegment()
}

// FieldSegment selects a key of an object.
type FieldSegment struct {
	Name string
}

// IndexSegment selects an element of an array. Negative indices count from
// the end.
type IndexSegment struct {
	Index int64
}

// MultiIndexSegment selects several elements of an array, in written order.
type MultiIndexSegment struct {
	Indices []int64
}

// FilterSegment keeps the elements of an array that satisfy Expr.
type FilterSegment struct {
	Expr *FilterExpr
}

// WildcardSegment expands the children of an array or object into an array.
type WildcardSegment struct{}

func (FieldSegment) pathSegment()      {}
func (IndexSegment) pathSegment()      {}
func (MultiIndexSegment) pathSegment() {}
func (FilterSegment) pathSegment()     {}
func (WildcardSegment) pathSegment()   {}

func (s FieldSegment) String() string {
	if isIdent(s.Name) {
		return "." + s.Name
	}
	return "[" + quoteString(s.Name) + "]"
}

func (s IndexSegment) String() string {
	return "[" + strconv.FormatInt(s.Index, 10) + "]"
}

func (s MultiIndexSegment) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, index := range s.Indices {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(index, 10))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (s FilterSegment) String() string {
	return "[?(" + s.Expr.String() + ")]"
}

func (WildcardSegment) String() string {
	return "[*]"
}

// FilterExpr compares the value at Path, relative to the element under
// test, against a literal.
type FilterExpr struct {
	Path  []PathSegment
	Op    Operator
	Value Literal
}

func (e *FilterExpr) String() string {
	var s strings.Builder
	s.WriteByte('@')
	for _, seg := range e.Path {
		s.WriteString(seg.String())
	}
	s.WriteByte(' ')
	s.WriteString(e.Op.String())
	s.WriteByte(' ')
	s.WriteString(e.Value.String())
	return s.String()
}

// LiteralKind ...
type LiteralKind int

// Literal kinds ...
const (
	LiteralNull LiteralKind = iota
	LiteralString
	LiteralInteger
	LiteralBoolean
)

// Literal is the right-hand side of a filter expression.
type Literal struct {
	Kind LiteralKind
	Str  string
	Int  int64
	Bool bool
}

func (l Literal) String() string {
	switch l.Kind {
	case LiteralString:
		return quoteString(l.Str)
	case LiteralInteger:
		return strconv.FormatInt(l.Int, 10)
	case LiteralBoolean:
		return strconv.FormatBool(l.Bool)
	default:
		return "null"
	}
}

// value returns the literal as a value tree node, for error messages.
func (l Literal) value() any {
	switch l.Kind {
	case LiteralString:
		return l.Str
	case LiteralInteger:
		return l.Int
	case LiteralBoolean:
		return l.Bool
	default:
		return nil
	}
}

// Strings have no escape sequences, so a name containing a double quote is
// written with single quotes.
func quoteString(s string) string {
	if strings.IndexByte(s, '"') >= 0 {
		return "'" + s + "'"
	}
	return `"` + s + `"`
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		if !(c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' ||
			i > 0 && '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
