package calculator

import (
	"testing"

	"github.com/charithe/calcinput/pkg/v1pb"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestParseEvent(t *testing.T) {
	testCases := []struct {
		line    string
		want    *v1pb.FieldEvent
		wantErr bool
	}{
		{line: "focus", want: &v1pb.FieldEvent{Kind: v1pb.FOCUS}},
		{line: "  Blur\r\n", want: &v1pb.FieldEvent{Kind: v1pb.BLUR}},
		{line: "enter", want: &v1pb.FieldEvent{Kind: v1pb.KEY, Text: "Enter"}},
		{line: "key Tab", want: &v1pb.FieldEvent{Kind: v1pb.KEY, Text: "Tab"}},
		{line: "type = 10 + 5 ", want: &v1pb.FieldEvent{Kind: v1pb.INPUT, Text: "= 10 + 5 "}},
		{line: "input 12", want: &v1pb.FieldEvent{Kind: v1pb.INPUT, Text: "12"}},
		{line: "type", want: &v1pb.FieldEvent{Kind: v1pb.INPUT}},
		{line: "set 42.50", want: &v1pb.FieldEvent{Kind: v1pb.SET_VALUE, Text: "42.50"}},
		{line: "key", wantErr: true},
		{line: "", wantErr: true},
		{line: "paste 12", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			have, err := ParseEvent(tc.line)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, have)
		})
	}
}

func TestLocalSession(t *testing.T) {
	sess := NewLocalSession(zaptest.NewLogger(t))
	defer sess.Close()

	apply := func(line string) *v1pb.FieldState {
		t.Helper()
		ev, err := ParseEvent(line)
		require.NoError(t, err)
		st, err := sess.Apply(ev)
		require.NoError(t, err)
		return st
	}

	apply("focus")
	st := apply("type =20+30")
	require.Equal(t, v1pb.EDITING, st.Mode)
	require.True(t, st.Focused)
	require.Empty(t, st.Changes)

	st = apply("blur")
	require.Equal(t, "50.00", st.Display)
	require.Equal(t, "50.00", st.Committed)
	require.Equal(t, []string{"50.00"}, st.Changes)
	require.Equal(t, "Formula: =20+30", st.Hint)
	require.False(t, st.Focused)

	// changes only cover the latest event
	st = apply("set 50.00")
	require.Empty(t, st.Changes)

	st = apply("focus")
	require.Equal(t, "=20+30", st.Display)

	_, err := sess.Apply(&v1pb.FieldEvent{Kind: v1pb.EventKind(42)})
	require.Error(t, err)
}
