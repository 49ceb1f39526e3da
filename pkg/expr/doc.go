// Package expr evaluates the arithmetic formulas accepted by cost fields.
//
// A formula is an optional leading '=' followed by non-negative decimal
// numbers, the binary operators + - * / and parentheses. Formulas are
// tokenized, converted to postfix with the shunting-yard algorithm and run on
// a small operand stack. Every failure is reported as ErrInvalidExpression.
package expr
