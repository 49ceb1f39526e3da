package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charithe/calcinput/pkg/calculator"
	"github.com/charithe/calcinput/pkg/expr"
	"github.com/charithe/calcinput/pkg/v1pb"
	"github.com/gogo/protobuf/jsonpb"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func localEvaluations(expressions []string) []*v1pb.Evaluation {
	results := make([]*v1pb.Evaluation, len(expressions))
	for i, e := range expressions {
		ev := &v1pb.Evaluation{Expression: e}
		if v, err := expr.Evaluate(e); err == nil {
			ev.Valid = true
			ev.Result = v
			ev.Formatted = expr.Format(v)
		}
		results[i] = ev
	}
	return results
}

type evaluator interface {
	Evaluate(ctx context.Context, expression string) (*v1pb.EvaluateResponse, error)
	EvaluateBatch(ctx context.Context, expressions []string) ([]*v1pb.Evaluation, error)
}

// remoteEvaluations uses the single call for one expression so that the
// server's InvalidArgument handling is exercised, and the batch call
// otherwise.
func remoteEvaluations(ctx context.Context, client evaluator, expressions []string) ([]*v1pb.Evaluation, error) {
	if len(expressions) != 1 {
		return client.EvaluateBatch(ctx, expressions)
	}

	ev := &v1pb.Evaluation{Expression: expressions[0]}
	resp, err := client.Evaluate(ctx, expressions[0])
	if err != nil {
		if !isInvalidArgument(err) {
			return nil, err
		}
		return []*v1pb.Evaluation{ev}, nil
	}

	ev.Valid = true
	ev.Result = resp.Result
	ev.Formatted = resp.Formatted
	return []*v1pb.Evaluation{ev}, nil
}

// runEvents applies every event line from r to sess and prints the state
// after each. Blank lines and lines starting with '#' are skipped.
func runEvents(r io.Reader, sess calculator.Session, out *printer, logger *zap.Logger) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		ev, err := calculator.ParseEvent(line)
		if err != nil {
			logger.Sugar().Warnw("Ignoring event", "line", line, "error", err)
			continue
		}

		st, err := sess.Apply(ev)
		if err != nil {
			return errors.Wrapf(err, "failed to apply %q", line)
		}

		if err := out.state(st); err != nil {
			return err
		}
	}

	return errors.Wrap(scanner.Err(), "failed to read events")
}

type printer struct {
	w    io.Writer
	json *jsonpb.Marshaler
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	p := &printer{w: w}
	if asJSON {
		p.json = &jsonpb.Marshaler{OrigName: true}
	}
	return p
}

func (p *printer) message(m proto.Message) error {
	if err := p.json.Marshal(p.w, m); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, "\n")
	return err
}

func (p *printer) evaluations(results []*v1pb.Evaluation) error {
	for _, ev := range results {
		if p.json != nil {
			if err := p.message(ev); err != nil {
				return err
			}
			continue
		}

		result := "invalid"
		if ev.Valid {
			result = ev.Formatted
		}
		if _, err := fmt.Fprintf(p.w, "%s\t%s\n", ev.Expression, result); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) state(st *v1pb.FieldState) error {
	if p.json != nil {
		return p.message(st)
	}

	line := fmt.Sprintf("[%s] %q", strings.ToLower(st.Mode.String()), st.Display)
	if st.Hint != "" {
		line += " (" + st.Hint + ")"
	}
	for _, c := range st.Changes {
		line += " -> " + c
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}

func isInvalidArgument(err error) bool {
	return status.Code(err) == codes.InvalidArgument
}
