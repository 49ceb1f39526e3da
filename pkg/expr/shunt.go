package expr

import "github.com/pkg/errors"

// toPostfix reorders infix tokens into postfix using the shunting-yard
// algorithm. Unbalanced parentheses are rejected rather than repaired.
func toPostfix(toks []token) ([]token, error) {
	output := make([]token, 0, len(toks))
	var ops []token

	for _, t := range toks {
		switch t.kind {
		case tokenNum:
			output = append(output, t)
		case tokenOpen:
			ops = append(ops, t)
		case tokenClose:
			for len(ops) > 0 && ops[len(ops)-1].kind != tokenOpen {
				output = append(output, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, errors.Wrap(ErrInvalidExpression, "unmatched ')'")
			}
			ops = ops[:len(ops)-1]
		case tokenOp:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != tokenOp || top.op.precedence() < t.op.precedence() {
					break
				}
				output = append(output, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.kind == tokenOpen {
			return nil, errors.Wrap(ErrInvalidExpression, "unmatched '('")
		}
		output = append(output, top)
		ops = ops[:len(ops)-1]
	}
	return output, nil
}
