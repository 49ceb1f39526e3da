package expr

import (
	"math"

	"github.com/pkg/errors"
)

type operator byte

const (
	opAdd operator = '+'
	opSub operator = '-'
	opMul operator = '*'
	opDiv operator = '/'
)

func isOperator(c byte) bool {
	switch operator(c) {
	case opAdd, opSub, opMul, opDiv:
		return true
	}
	return false
}

func (op operator) String() string {
	return string(op)
}

// precedence is 2 for multiplicative operators and 1 for additive ones.
// All operators are left-associative.
func (op operator) precedence() int {
	switch op {
	case opMul, opDiv:
		return 2
	default:
		return 1
	}
}

func (op operator) apply(a, b float64) (float64, error) {
	switch op {
	case opAdd:
		return a + b, nil
	case opSub:
		return a - b, nil
	case opMul:
		return a * b, nil
	case opDiv:
		if b == 0 {
			return 0, errors.Wrap(ErrInvalidExpression, "division by zero")
		}
		return a / b, nil
	default:
		return 0, errors.Wrapf(ErrInvalidExpression, "unimplemented operator: %s", op)
	}
}

// rpnEvaluator runs a postfix program on an operand stack.
// This is not thread-safe and should only be accessed by a single goroutine.
type rpnEvaluator struct {
	stack []float64
}

func (r *rpnEvaluator) pushOperand(v float64) {
	r.stack = append(r.stack, v)
}

func (r *rpnEvaluator) pop() float64 {
	v := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return v
}

func (r *rpnEvaluator) pushOperator(op operator) error {
	if len(r.stack) < 2 {
		return errors.Wrap(ErrInvalidExpression, "not enough operands")
	}

	b := r.pop()
	a := r.pop()
	result, err := op.apply(a, b)
	if err != nil {
		return err
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return errors.Wrapf(ErrInvalidExpression, "%v %s %v is not finite", a, op, b)
	}

	r.pushOperand(result)
	return nil
}

func (r *rpnEvaluator) result() (float64, error) {
	if len(r.stack) != 1 {
		return 0, errors.Wrap(ErrInvalidExpression, "incomplete expression: unused operands still in stack")
	}

	v := r.pop()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrap(ErrInvalidExpression, "result is not finite")
	}
	return v, nil
}
