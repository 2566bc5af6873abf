package common

import "fmt"

type Operator string

const (
	OperatorAdd            Operator = "add"
	OperatorSub            Operator = "sub"
	OperatorMul            Operator = "mul"
	OperatorDiv            Operator = "div"
	OperatorPow            Operator = "pow"
	OperatorEqual          Operator = "eq"
	OperatorNotEqual       Operator = "ne"
	OperatorLess           Operator = "lt"
	OperatorLessOrEqual    Operator = "le"
	OperatorGreater        Operator = "gt"
	OperatorGreaterOrEqual Operator = "ge"
	OperatorAdjacent       Operator = "adjacent"
)

var operatorUsages = map[Operator]string{
	OperatorAdd:            "Add two fractions",
	OperatorSub:            "Subtract the other fraction",
	OperatorMul:            "Multiply two fractions",
	OperatorDiv:            "Divide by the other fraction",
	OperatorPow:            "Raise the fraction to an integer power",
	OperatorEqual:          "Check whether two fractions are equal",
	OperatorNotEqual:       "Check whether two fractions differ",
	OperatorLess:           "Check whether the fraction is less than the other",
	OperatorLessOrEqual:    "Check whether the fraction is less than or equal to the other",
	OperatorGreater:        "Check whether the fraction is greater than the other",
	OperatorGreaterOrEqual: "Check whether the fraction is greater than or equal to the other",
	OperatorAdjacent:       "Check whether the fractions differ by exactly 4/16",
}

func BinaryOperators() []Operator {
	return []Operator{
		OperatorAdd, OperatorSub, OperatorMul, OperatorDiv,
		OperatorEqual, OperatorNotEqual, OperatorLess, OperatorLessOrEqual,
		OperatorGreater, OperatorGreaterOrEqual, OperatorAdjacent,
	}
}

func (op Operator) Usage() string {
	return operatorUsages[op]
}

// Operate applies op to x and an untyped operand. The operand must be a
// Fraction, or an integer exponent for OperatorPow, otherwise the error
// wraps ErrTypeMismatch. The result is a Fraction or a bool.
func Operate(op Operator, x Fraction, y interface{}) (interface{}, error) {
	if op == OperatorPow {
		n, ok := exponentOperand(y)
		if !ok {
			return nil, fmt.Errorf("%s %s by %v (%T): %w", op, x, y, y, ErrTypeMismatch)
		}
		return x.Pow(n)
	}
	if _, ok := operatorUsages[op]; !ok {
		return nil, fmt.Errorf("unknown operator %q: %w", op, ErrInvalidArgument)
	}

	other, ok := fractionOperand(y)
	if !ok {
		return nil, fmt.Errorf("%s %s and %v (%T): %w", op, x, y, y, ErrTypeMismatch)
	}
	switch op {
	case OperatorAdd:
		return x.Add(other)
	case OperatorSub:
		return x.Sub(other)
	case OperatorMul:
		return x.Mul(other)
	case OperatorDiv:
		return x.Div(other)
	case OperatorEqual:
		return x.Equal(other)
	case OperatorNotEqual:
		return x.NotEqual(other)
	case OperatorLess:
		return x.Less(other)
	case OperatorLessOrEqual:
		return x.LessOrEqual(other)
	case OperatorGreater:
		return x.Greater(other)
	case OperatorGreaterOrEqual:
		return x.GreaterOrEqual(other)
	case OperatorAdjacent:
		return x.IsAdjacentTo(other)
	}
	panic(op)
}

func fractionOperand(y interface{}) (Fraction, bool) {
	switch v := y.(type) {
	case Fraction:
		return v, true
	case *Fraction:
		if v != nil {
			return *v, true
		}
	}
	return Fraction{}, false
}

func exponentOperand(y interface{}) (int, bool) {
	switch v := y.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	}
	return 0, false
}
