package calculator

import (
	"context"
	"io"

	"github.com/charithe/calcinput/pkg/expr"
	"github.com/charithe/calcinput/pkg/v1pb"
	prom "github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the name reported by the health service.
const ServiceName = "calcinput.v1.Calculator"

// Service implements the RPC interface of the calculator
type Service struct {
	*health.Server
	metrics *metrics
}

// NewService creates the service and registers its metrics with reg.
func NewService(reg prom.Registerer) (*Service, error) {
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}

	s := &Service{
		Server:  health.NewServer(),
		metrics: m,
	}
	s.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return s, nil
}

func (s *Service) Evaluate(ctx context.Context, req *v1pb.EvaluateRequest) (*v1pb.EvaluateResponse, error) {
	// if the context has already expired, we can avoid unnecessary work
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := expr.Evaluate(req.Expression)
	s.metrics.observeEvaluation("Evaluate", err)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, expr.ErrInvalidExpression.Error())
	}

	return &v1pb.EvaluateResponse{Result: result, Formatted: expr.Format(result)}, nil
}

func (s *Service) EvaluateBatch(ctx context.Context, req *v1pb.EvaluateBatchRequest) (*v1pb.EvaluateBatchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp := &v1pb.EvaluateBatchResponse{Results: make([]*v1pb.Evaluation, len(req.Expressions))}
	for i, e := range req.Expressions {
		result, err := expr.Evaluate(e)
		s.metrics.observeEvaluation("EvaluateBatch", err)

		ev := &v1pb.Evaluation{Expression: e}
		if err == nil {
			ev.Valid = true
			ev.Result = result
			ev.Formatted = expr.Format(result)
		}
		resp.Results[i] = ev
	}

	return resp, nil
}

// EditField runs one field per stream. Every event is answered with the
// field state it produced.
func (s *Service) EditField(stream v1pb.Calculator_EditFieldServer) error {
	sess := NewLocalSession(zap.L().Named("field"))
	defer sess.Close()

	for {
		ev, err := stream.Recv()
		if err != nil {
			if err == io.EOF {
				return nil
			}

			zap.S().Warnw("Failed to receive event from stream", "error", err)
			return err
		}

		st, err := sess.Apply(ev)
		if err != nil {
			return status.Error(codes.InvalidArgument, err.Error())
		}
		s.metrics.fieldEvents.WithLabelValues(ev.Kind.String()).Inc()

		if err := stream.Send(st); err != nil {
			zap.S().Errorw("Failed to send field state", "error", err)
			return err
		}
	}
}
