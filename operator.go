package pathq

import "fmt"

// Operator is a comparison operator of a filter expression.
type Operator int

// Operators ...
const (
	OpEq Operator = iota
	OpNe
	OpGt
	OpGe
	OpLt
	OpLe
)

var operatorMap = map[string]Operator{
	"==": OpEq,
	"!=": OpNe,
	">":  OpGt,
	">=": OpGe,
	"<":  OpLt,
	"<=": OpLe,
}

// Capture implements participle.Capture.
func (op *Operator) Capture(s []string) error {
	var ok bool
	if *op, ok = operatorMap[s[0]]; !ok {
		return fmt.Errorf("unknown operator: %s", s[0])
	}
	return nil
}

// String implements Stringer.
func (op Operator) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	default:
		panic(op)
	}
}

func (op Operator) ordering() bool {
	return op != OpEq && op != OpNe
}
