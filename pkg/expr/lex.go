package expr

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

type tokenKind int

const (
	tokenNum tokenKind = iota
	tokenOp
	// tokenOpen and tokenClose are the grouping parentheses.
	tokenOpen
	tokenClose
)

type token struct {
	kind  tokenKind
	text  string
	op    operator
	value float64
}

func (t token) String() string {
	return t.text
}

// validChars reports whether s holds only the characters a formula may
// contain. It runs before tokenizing to reject obvious garbage quickly.
func validChars(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c), c == '.', isSpace(c):
		case c == '(' || c == ')':
		case isOperator(c):
		default:
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// tokenize splits s into numbers, operators and parentheses.
func tokenize(s string) ([]token, error) {
	var toks []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isSpace(c):
			i++
		case isDigit(c):
			start := i
			seenPoint := false
			for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
				if s[i] == '.' {
					if seenPoint {
						return nil, errors.Wrapf(ErrInvalidExpression, "malformed number at %d", start)
					}
					seenPoint = true
				}
				i++
			}
			text := s[start:i]
			v, err := strconv.ParseFloat(text, 64)
			if err != nil || math.IsInf(v, 0) {
				return nil, errors.Wrapf(ErrInvalidExpression, "malformed number %q", text)
			}
			toks = append(toks, token{kind: tokenNum, text: text, value: v})
		case c == '(':
			toks = append(toks, token{kind: tokenOpen, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokenClose, text: ")"})
			i++
		case isOperator(c):
			toks = append(toks, token{kind: tokenOp, text: string(c), op: operator(c)})
			i++
		default:
			return nil, errors.Wrapf(ErrInvalidExpression, "unexpected %q at %d", c, i)
		}
	}
	if len(toks) == 0 {
		return nil, errors.Wrap(ErrInvalidExpression, "empty expression")
	}
	return toks, nil
}
