package field

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type recorder struct {
	changes []string
}

func (r *recorder) onChange(v string) {
	r.changes = append(r.changes, v)
}

func newField(t *testing.T, opts ...Option) (*Field, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)
	return New(rec.onChange, opts...), rec
}

func check(t *testing.T, f *Field, display string, state State) {
	t.Helper()
	require.Equal(t, display, f.Display(), "display")
	require.Equal(t, state, f.State(), "state")
}

func TestCommitExpression(t *testing.T) {
	testCases := []struct {
		name       string
		expression string
		want       string
	}{
		{name: "add", expression: "=10+5", want: "15.00"},
		{name: "subtract", expression: "=20-7", want: "13.00"},
		{name: "multiply", expression: "=4*3.5", want: "14.00"},
		{name: "divide", expression: "=20/4", want: "5.00"},
		{name: "parentheses", expression: "=(10+5)*2", want: "30.00"},
		{name: "decimals", expression: "=27.15+13.95", want: "41.10"},
		{name: "precedence", expression: "=10+5*2", want: "20.00"},
		{name: "negative", expression: "=10-15", want: "-5.00"},
		{name: "spaces", expression: "= 10 + 5 ", want: "15.00"},
		{name: "halfCentRoundsUp", expression: "=1/8", want: "0.13"},
		{name: "halfCentProduct", expression: "=2.5*0.25", want: "0.63"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, rec := newField(t)
			f.Focus()
			f.Input(tc.expression)
			check(t, f, tc.expression, Editing)
			require.Empty(t, rec.changes)

			f.Blur()
			check(t, f, tc.want, Plain)
			require.Equal(t, []string{tc.want}, rec.changes)
			require.Equal(t, tc.want, f.Value())
			require.Equal(t, tc.expression, f.Expression())
		})
	}
}

func TestFocusRestoresExpression(t *testing.T) {
	f, rec := newField(t)
	f.Focus()
	f.Input("=10+5")
	f.Blur()
	check(t, f, "15.00", Plain)

	f.Focus()
	check(t, f, "=10+5", Editing)
	require.True(t, f.Monospace())

	f.Input("=10+6")
	f.Blur()
	check(t, f, "16.00", Plain)
	require.Equal(t, []string{"15.00", "16.00"}, rec.changes)
}

func TestEnterCommits(t *testing.T) {
	f, rec := newField(t)
	f.Focus()
	f.Input("=10+5")
	f.Key("a")
	check(t, f, "=10+5", Editing)

	f.Key(EnterKey)
	check(t, f, "15.00", Plain)
	require.False(t, f.Focused())
	require.Equal(t, []string{"15.00"}, rec.changes)

	// Enter on an unfocused field does nothing.
	f.Key(EnterKey)
	require.Equal(t, []string{"15.00"}, rec.changes)
}

func TestInvalidExpressionReverts(t *testing.T) {
	for _, expression := range []string{"=10++5", "=10/0", "=10+abc", "=", "=(1+2"} {
		t.Run(expression, func(t *testing.T) {
			f, rec := newField(t, WithValue("10"))
			check(t, f, "10", Plain)

			f.Focus()
			f.Input(expression)
			f.Blur()
			check(t, f, "10", Reverting)
			require.Empty(t, rec.changes)
			require.Equal(t, "10", f.Value())

			f.Focus()
			check(t, f, "10", Plain)
		})
	}
}

func TestInvalidExpressionKeepsStoredFormula(t *testing.T) {
	f, rec := newField(t)
	f.Focus()
	f.Input("=20+30")
	f.Blur()

	f.Focus()
	f.Input("=20+")
	f.Blur()
	check(t, f, "50.00", Reverting)
	require.Equal(t, "=20+30", f.Expression())
	require.Equal(t, []string{"50.00"}, rec.changes)

	hint, ok := f.Hint()
	require.True(t, ok)
	require.Equal(t, "=20+30", hint)

	f.Focus()
	check(t, f, "=20+30", Editing)
}

func TestPlainInput(t *testing.T) {
	f, rec := newField(t)
	f.Focus()
	for _, s := range []string{"1", "12", "123", "123.", "123.4", "123.45"} {
		f.Input(s)
	}
	check(t, f, "123.45", Plain)
	require.Equal(t, []string{"1", "12", "123", "123.", "123.4", "123.45"}, rec.changes)

	// Committing a plain value does not report it again.
	f.Blur()
	require.Len(t, rec.changes, 6)
	require.Equal(t, "123.45", f.Value())
}

func TestPlainInputClearsExpression(t *testing.T) {
	f, rec := newField(t)
	f.Focus()
	f.Input("=2*3")
	f.Blur()
	require.Equal(t, "=2*3", f.Expression())

	f.Focus()
	f.Input("7")
	require.Empty(t, f.Expression())
	f.Blur()

	f.Focus()
	check(t, f, "7", Plain)
	require.Equal(t, []string{"6.00", "7"}, rec.changes)
}

func TestExternalValue(t *testing.T) {
	t.Run("echoOfComputedValue", func(t *testing.T) {
		f, _ := newField(t)
		f.Focus()
		f.Input("=20+30")
		f.Blur()

		f.SetValue("50.00")
		check(t, f, "50.00", Plain)
		require.Equal(t, "=20+30", f.Expression())

		f.Focus()
		check(t, f, "=20+30", Editing)
	})

	t.Run("differentValueSeversFormula", func(t *testing.T) {
		f, _ := newField(t)
		f.Focus()
		f.Input("=20+30")
		f.Blur()

		f.SetValue("0.00")
		check(t, f, "0.00", Plain)
		require.Empty(t, f.Expression())
		_, ok := f.Hint()
		require.False(t, ok)

		f.Focus()
		check(t, f, "0.00", Plain)
	})

	t.Run("whileEditing", func(t *testing.T) {
		f, rec := newField(t, WithValue("5"))
		f.Focus()
		f.Input("=1+")
		f.SetValue("8")
		check(t, f, "=1+", Editing)

		f.Blur()
		check(t, f, "8", Reverting)
		require.Empty(t, rec.changes)
	})

	t.Run("adoptedVerbatim", func(t *testing.T) {
		f, rec := newField(t)
		f.SetValue("42.50")
		check(t, f, "42.50", Plain)
		require.Equal(t, "42.50", f.Value())
		require.Empty(t, rec.changes)
	})
}

func TestHint(t *testing.T) {
	f, _ := newField(t)
	_, ok := f.Hint()
	require.False(t, ok)
	require.Empty(t, f.HintText())

	f.Focus()
	f.Input("=10+5")
	f.Blur()
	require.Equal(t, "Formula: =10+5", f.HintText())

	f.Focus()
	_, ok = f.Hint()
	require.False(t, ok, "no hint while focused")
}

func TestCustomEvaluator(t *testing.T) {
	calls := 0
	eval := func(s string) (float64, error) {
		calls++
		return 1.005, nil
	}

	f, rec := newField(t, WithEvaluator(eval))
	f.Focus()
	f.Input("=anything")
	f.Focus()
	f.Blur()
	require.Equal(t, 1, calls)
	require.Equal(t, []string{"1.00"}, rec.changes)
}

func TestNilCallback(t *testing.T) {
	f := New(nil)
	f.Focus()
	f.Input("=1+1")
	f.Blur()
	check(t, f, "2.00", Plain)
	f.Input("3")
	check(t, f, "3", Plain)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "plain", Plain.String())
	require.Equal(t, "editing", Editing.String())
	require.Equal(t, "reverting", Reverting.String())
	require.Equal(t, "unknown", State(42).String())
}
