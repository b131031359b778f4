package pathq

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrorKind classifies the errors of parsing and running a query.
type ErrorKind int

// Error kinds ...
const (
	KindUnknown ErrorKind = iota
	KindParse
	KindFieldNotFound
	KindIndexOutOfBounds
	KindTypeMismatch
	KindUnsupportedComparison
)

func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindFieldNotFound:
		return "field not found"
	case KindIndexOutOfBounds:
		return "index out of bounds"
	case KindTypeMismatch:
		return "type mismatch"
	case KindUnsupportedComparison:
		return "unsupported comparison"
	default:
		return "unknown error"
	}
}

// KindOf returns the kind of err, looking through wrapped errors.
func KindOf(err error) ErrorKind {
	var e interface{ Kind() ErrorKind }
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindUnknown
}

// ParseError is returned by Parse for a malformed query.
type ParseError struct {
	Query  string // the whole query
	Offset int    // byte offset of the rejected fragment
	Token  string // the rejected fragment, empty at the end of the query
	Err    error
}

func (err *ParseError) Error() string {
	if err.Token == "" {
		return fmt.Sprintf("unexpected end of query %q: %s", err.Query, err.Err)
	}
	return fmt.Sprintf("unexpected %q in query %q: %s", err.Token, err.Query, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// Kind returns KindParse.
func (*ParseError) Kind() ErrorKind {
	return KindParse
}

// FieldNotFoundError is returned when an object has no such key.
type FieldNotFoundError struct {
	Name string
	V    any
}

func (err *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q not found in: %s", err.Name, typeErrorPreview(err.V))
}

// Kind returns KindFieldNotFound.
func (*FieldNotFoundError) Kind() ErrorKind {
	return KindFieldNotFound
}

// IndexOutOfBoundsError is returned when an index resolves outside an array.
type IndexOutOfBoundsError struct {
	Index  int64
	Length int
}

func (err *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds for array of length %d", err.Index, err.Length)
}

// Kind returns KindIndexOutOfBounds.
func (*IndexOutOfBoundsError) Kind() ErrorKind {
	return KindIndexOutOfBounds
}

// TypeMismatchError is returned when a segment is applied to a value of the
// wrong kind, such as a field access on an array.
type TypeMismatchError struct {
	Segment PathSegment
	V       any
}

func (err *TypeMismatchError) Error() string {
	var expected string
	switch err.Segment.(type) {
	case FieldSegment:
		expected = "an object"
	case WildcardSegment:
		expected = "an array or an object"
	default:
		expected = "an array"
	}
	return fmt.Sprintf("%s expected %s but got: %s", err.Segment, expected, typeErrorPreview(err.V))
}

// Kind returns KindTypeMismatch.
func (*TypeMismatchError) Kind() ErrorKind {
	return KindTypeMismatch
}

// UnsupportedComparisonError is returned when a filter compares a value and
// a literal for which the operator is not defined.
type UnsupportedComparisonError struct {
	V       any
	Op      Operator
	Literal Literal
}

func (err *UnsupportedComparisonError) Error() string {
	return fmt.Sprintf("cannot compare %s %s %s",
		typeErrorPreview(err.V), err.Op, typeErrorPreview(err.Literal.value()))
}

// Kind returns KindUnsupportedComparison.
func (*UnsupportedComparisonError) Kind() ErrorKind {
	return KindUnsupportedComparison
}

// QueryError wraps an evaluation error with the query and the stage of the
// evaluation that failed.
type QueryError struct {
	Query string
	Stage string
	Err   error
}

func (err *QueryError) Error() string {
	return fmt.Sprintf("%s: %s: %s", err.Query, err.Stage, err.Err)
}

func (err *QueryError) Unwrap() error {
	return err.Err
}

func typeErrorPreview(v any) string {
	return TypeOf(v) + preview(v)
}

func preview(v any) string {
	if v == nil {
		return ""
	}
	s, l := jsonMarshal(v), 25
	if len(s) > l {
		n := l - 3
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n] + " ..."
	}
	return " (" + s + ")"
}
