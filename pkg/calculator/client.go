package calculator

import (
	"context"
	"io"

	"github.com/charithe/calcinput/pkg/v1pb"
	"google.golang.org/grpc"
)

// Client implements the RPC client for the Calculator service
type Client struct {
	conn   *grpc.ClientConn
	client v1pb.CalculatorClient
}

func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{
		conn:   conn,
		client: v1pb.NewCalculatorClient(conn),
	}
}

func (c *Client) Evaluate(ctx context.Context, expression string) (*v1pb.EvaluateResponse, error) {
	return c.client.Evaluate(ctx, &v1pb.EvaluateRequest{Expression: expression})
}

func (c *Client) EvaluateBatch(ctx context.Context, expressions []string) ([]*v1pb.Evaluation, error) {
	resp, err := c.client.EvaluateBatch(ctx, &v1pb.EvaluateBatchRequest{Expressions: expressions})
	if err != nil {
		return nil, err
	}

	return resp.Results, nil
}

// EditField opens a remote field. The field lives until the session is
// closed or ctx is cancelled.
func (c *Client) EditField(ctx context.Context) (*FieldSession, error) {
	stream, err := c.client.EditField(ctx)
	if err != nil {
		return nil, err
	}

	return &FieldSession{stream: stream}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// FieldSession is a Session backed by the EditField stream.
type FieldSession struct {
	stream v1pb.Calculator_EditFieldClient
}

func (s *FieldSession) Apply(ev *v1pb.FieldEvent) (*v1pb.FieldState, error) {
	if err := s.stream.Send(ev); err != nil {
		if err == io.EOF {
			// the server closed the stream; the real status comes from Recv
			if _, rerr := s.stream.Recv(); rerr != nil {
				err = rerr
			}
		}
		return nil, err
	}

	return s.stream.Recv()
}

func (s *FieldSession) Close() error {
	return s.stream.CloseSend()
}
