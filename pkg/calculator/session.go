package calculator

import (
	"strings"

	"github.com/charithe/calcinput/pkg/field"
	"github.com/charithe/calcinput/pkg/v1pb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Session applies field events and reports the resulting field state.
type Session interface {
	Apply(ev *v1pb.FieldEvent) (*v1pb.FieldState, error)
	Close() error
}

// LocalSession drives an in-process field.
// This is not thread-safe and should only be accessed by a single goroutine.
type LocalSession struct {
	field   *field.Field
	changes []string
}

func NewLocalSession(logger *zap.Logger) *LocalSession {
	s := &LocalSession{}
	s.field = field.New(func(v string) {
		s.changes = append(s.changes, v)
	}, field.WithLogger(logger))
	return s
}

func (s *LocalSession) Apply(ev *v1pb.FieldEvent) (*v1pb.FieldState, error) {
	s.changes = nil

	switch ev.Kind {
	case v1pb.SET_VALUE:
		s.field.SetValue(ev.Text)
	case v1pb.FOCUS:
		s.field.Focus()
	case v1pb.INPUT:
		s.field.Input(ev.Text)
	case v1pb.BLUR:
		s.field.Blur()
	case v1pb.KEY:
		s.field.Key(ev.Text)
	default:
		return nil, errors.Errorf("unknown event kind: %s", ev.Kind)
	}

	return snapshot(s.field, s.changes), nil
}

func (s *LocalSession) Close() error {
	return nil
}

func snapshot(f *field.Field, changes []string) *v1pb.FieldState {
	st := &v1pb.FieldState{
		Display:   f.Display(),
		Committed: f.Value(),
		Hint:      f.HintText(),
		Focused:   f.Focused(),
		Changes:   changes,
	}

	switch f.State() {
	case field.Editing:
		st.Mode = v1pb.EDITING
	case field.Reverting:
		st.Mode = v1pb.REVERTING
	default:
		st.Mode = v1pb.PLAIN
	}
	return st
}

// ParseEvent reads a field event from a command line such as "type =10+5",
// "focus", "blur", "enter", "key Tab" or "set 42.00". The text after the
// first space is kept verbatim.
func ParseEvent(line string) (*v1pb.FieldEvent, error) {
	line = strings.TrimLeft(strings.TrimRight(line, "\r\n"), " \t")
	cmd, arg := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		cmd, arg = line[:i], line[i+1:]
	}

	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case "set":
		return &v1pb.FieldEvent{Kind: v1pb.SET_VALUE, Text: arg}, nil
	case "focus":
		return &v1pb.FieldEvent{Kind: v1pb.FOCUS}, nil
	case "type", "input":
		return &v1pb.FieldEvent{Kind: v1pb.INPUT, Text: arg}, nil
	case "blur":
		return &v1pb.FieldEvent{Kind: v1pb.BLUR}, nil
	case "enter":
		return &v1pb.FieldEvent{Kind: v1pb.KEY, Text: field.EnterKey}, nil
	case "key":
		if arg == "" {
			return nil, errors.New("key event needs a key name")
		}
		return &v1pb.FieldEvent{Kind: v1pb.KEY, Text: arg}, nil
	default:
		return nil, errors.Errorf("unknown event %q", cmd)
	}
}
