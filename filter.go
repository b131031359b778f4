package pathq

import "math"

// epsilon is the difference between 1 and the next float64.
var epsilon = math.Nextafter(1, 2) - 1

// matchFilter reports whether v satisfies e. A sub-path that cannot be
// resolved makes the element not match, whatever the operator; only an
// undefined comparison is an error.
func matchFilter(v any, e *FilterExpr) (bool, error) {
	for _, seg := range e.Path {
		w, err := applySegment(v, seg)
		if err != nil {
			return false, nil
		}
		v = w
	}
	return compareLiteral(v, e.Op, e.Value)
}

func compareLiteral(v any, op Operator, lit Literal) (bool, error) {
	switch x := v.(type) {
	case string:
		if lit.Kind == LiteralString && !op.ordering() {
			return (x == lit.Str) == (op == OpEq), nil
		}
	case int, int64, float64:
		if lit.Kind == LiteralInteger {
			f, _ := toFloat(x)
			return compareNumbers(f, op, float64(lit.Int)), nil
		}
	case bool:
		if lit.Kind == LiteralBoolean && !op.ordering() {
			return (x == lit.Bool) == (op == OpEq), nil
		}
	case nil:
		if lit.Kind == LiteralNull && !op.ordering() {
			return op == OpEq, nil
		}
	}
	if lit.Kind == LiteralNull && !op.ordering() {
		return op == OpNe, nil
	}
	return false, &UnsupportedComparisonError{v, op, lit}
}

func compareNumbers(l float64, op Operator, r float64) bool {
	switch op {
	case OpEq:
		return math.Abs(l-r) < epsilon
	case OpNe:
		return math.Abs(l-r) > epsilon
	case OpGt:
		return l > r
	case OpGe:
		return l >= r
	case OpLt:
		return l < r
	case OpLe:
		return l <= r
	default:
		panic(op)
	}
}
