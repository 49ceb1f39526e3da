package expr

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Prefix marks a field value as a formula rather than a literal number.
const Prefix = "="

// ErrInvalidExpression is the cause of every evaluation failure. Use
// IsInvalid to test for it; the wrapped message is informational only.
var ErrInvalidExpression = errors.New("invalid expression")

// IsInvalid reports whether err was caused by a rejected expression.
func IsInvalid(err error) bool {
	return err != nil && errors.Cause(err) == ErrInvalidExpression
}

// IsExpression reports whether s uses the leading '=' formula convention.
func IsExpression(s string) bool {
	return strings.HasPrefix(s, Prefix)
}

// Program is an expression compiled to postfix order.
type Program struct {
	postfix []token
}

// Compile validates and tokenizes expression and converts it to postfix.
// A single leading '=' is stripped if present.
func Compile(expression string) (Program, error) {
	s := strings.TrimPrefix(expression, Prefix)
	if !validChars(s) {
		return Program{}, errors.Wrap(ErrInvalidExpression, "illegal characters")
	}

	toks, err := tokenize(s)
	if err != nil {
		return Program{}, err
	}

	postfix, err := toPostfix(toks)
	if err != nil {
		return Program{}, err
	}
	return Program{postfix: postfix}, nil
}

// Eval runs the program. The result is always finite.
func (p Program) Eval() (float64, error) {
	rpn := &rpnEvaluator{stack: make([]float64, 0, len(p.postfix)/2+1)}
	for _, t := range p.postfix {
		switch t.kind {
		case tokenNum:
			rpn.pushOperand(t.value)
		case tokenOp:
			if err := rpn.pushOperator(t.op); err != nil {
				return 0, err
			}
		default:
			return 0, errors.Wrapf(ErrInvalidExpression, "unexpected %q in postfix", t.text)
		}
	}
	return rpn.result()
}

// String returns the postfix form with tokens separated by spaces.
func (p Program) String() string {
	parts := make([]string, len(p.postfix))
	for i, t := range p.postfix {
		parts[i] = t.text
	}
	return strings.Join(parts, " ")
}

// Evaluate computes the value of an arithmetic expression such as
// "=10+5*2". No rounding is applied to the result.
func Evaluate(expression string) (float64, error) {
	p, err := Compile(expression)
	if err != nil {
		return 0, err
	}
	return p.Eval()
}

// roundingPrec holds any float64 times 100 without loss.
const roundingPrec = 256

var half = big.NewFloat(0.5)

// Format renders v the way cost fields display it: fixed point with two
// decimals and no digit grouping. The exact binary value of v is rounded to
// the nearest cent with ties away from zero, so 0.125 gives "0.13" while
// 1.005, stored just below the half, gives "1.00".
// Unlike the browser's toFixed, a value that rounds to zero never keeps its
// sign: -0.001 gives "0.00".
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	x := new(big.Float).SetPrec(roundingPrec).SetFloat64(math.Abs(v))
	x.Mul(x, big.NewFloat(100))
	cents, _ := x.Int(nil)

	frac := new(big.Float).SetPrec(roundingPrec).SetInt(cents)
	frac.Sub(x, frac)
	if frac.Cmp(half) >= 0 {
		cents.Add(cents, big.NewInt(1))
	}
	if cents.Sign() == 0 {
		return "0.00"
	}

	digits := cents.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	s := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if v < 0 {
		s = "-" + s
	}
	return s
}
