// Package field implements the controller behind a numeric text input that
// also accepts formulas such as "=50+25*2".
//
// A Field keeps the text shown in the input, the value last reported to the
// embedding form and the most recent formula that produced it. Formulas are
// evaluated when the field loses focus. A valid formula replaces the text with
// the formatted result and can be recalled by focusing the field again; an
// invalid one silently restores the previous value.
package field

import (
	"github.com/charithe/calcinput/pkg/expr"
	"go.uber.org/zap"
)

// EnterKey is the key name that commits the field.
const EnterKey = "Enter"

// HintPrefix precedes the formula in HintText.
const HintPrefix = "Formula: "

// EvalFunc evaluates a formula, including its leading '='.
type EvalFunc func(expression string) (float64, error)

// Option configures a Field.
type Option func(*Field)

// WithValue sets the initial value supplied by the embedding form.
func WithValue(v string) Option {
	return func(f *Field) {
		f.value = v
		f.buffer = v
	}
}

// WithEvaluator replaces expr.Evaluate.
func WithEvaluator(eval EvalFunc) Option {
	return func(f *Field) {
		f.eval = eval
	}
}

// WithLogger sets the logger used to trace transitions at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Field) {
		f.logger = logger
	}
}

// Field is the state of one input field.
// This is not thread-safe and should only be accessed by a single goroutine.
type Field struct {
	eval     EvalFunc
	onChange func(string)
	logger   *zap.Logger

	state   State
	focused bool
	buffer  string
	value   string

	// expression produced computed. Both are empty when no formula is stored.
	expression string
	computed   string
}

// New creates a field that reports committed values to onChange.
// onChange may be nil.
func New(onChange func(string), opts ...Option) *Field {
	f := &Field{
		eval:     expr.Evaluate,
		onChange: onChange,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetValue adopts a value pushed by the embedding form.
func (f *Field) SetValue(v string) {
	f.leaveReverting()
	f.value = v

	stored := f.expression != ""
	if stored && v != f.computed {
		f.logger.Debug("external value replaced stored formula", zap.String("value", v), zap.String("expression", f.expression))
		f.clearExpression()
	}

	if f.state == Editing {
		return
	}
	// Our own change callback echoes back the computed value; keep the
	// display as it is so the formula stays recallable.
	if stored && v == f.computed {
		return
	}
	f.buffer = v
}

// Focus shows the stored formula if the field still displays its result.
func (f *Field) Focus() {
	f.leaveReverting()
	f.focused = true
	if f.expression != "" && f.buffer == f.computed {
		f.buffer = f.expression
	}
	if expr.IsExpression(f.buffer) {
		f.state = Editing
	}
}

// Input replaces the buffer with text typed by the user. Plain values are
// reported immediately; formulas wait for a commit.
func (f *Field) Input(text string) {
	f.leaveReverting()
	f.buffer = text
	if expr.IsExpression(text) {
		f.state = Editing
		return
	}

	f.state = Plain
	f.clearExpression()
	f.value = text
	f.notify(text)
}

// Blur commits the buffer.
func (f *Field) Blur() {
	f.focused = false
	f.commit()
}

// Key handles a key press. Enter commits the field as if it lost focus.
func (f *Field) Key(name string) {
	if name == EnterKey && f.focused {
		f.Blur()
	}
}

func (f *Field) commit() {
	if !expr.IsExpression(f.buffer) {
		f.state = Plain
		return
	}

	result, err := f.eval(f.buffer)
	if err != nil {
		f.logger.Debug("reverting invalid formula", zap.String("expression", f.buffer), zap.Error(err))
		f.buffer = f.value
		f.state = Reverting
		return
	}

	formatted := expr.Format(result)
	f.expression = f.buffer
	f.computed = formatted
	f.buffer = formatted
	f.value = formatted
	f.state = Plain
	f.logger.Debug("committed formula", zap.String("expression", f.expression), zap.String("value", formatted))
	f.notify(formatted)
}

func (f *Field) notify(v string) {
	if f.onChange != nil {
		f.onChange(v)
	}
}

func (f *Field) clearExpression() {
	f.expression = ""
	f.computed = ""
}

func (f *Field) leaveReverting() {
	if f.state == Reverting {
		f.state = Plain
	}
}

// Display returns the text the input should show.
func (f *Field) Display() string {
	return f.buffer
}

// Value returns the last committed value. It never holds a formula.
func (f *Field) Value() string {
	return f.value
}

// State returns the current mode.
func (f *Field) State() State {
	return f.state
}

// Focused reports whether the field has focus.
func (f *Field) Focused() bool {
	return f.focused
}

// Expression returns the stored formula, or "" if there is none.
func (f *Field) Expression() string {
	return f.expression
}

// Hint returns the stored formula while the unfocused field shows its result.
func (f *Field) Hint() (string, bool) {
	if f.focused || f.expression == "" || f.buffer != f.computed {
		return "", false
	}
	return f.expression, true
}

// HintText returns the tooltip for the formula indicator, or "".
func (f *Field) HintText() string {
	if e, ok := f.Hint(); ok {
		return HintPrefix + e
	}
	return ""
}

// Monospace reports whether the buffer shows a formula.
func (f *Field) Monospace() bool {
	return expr.IsExpression(f.buffer)
}
