// Package v1pb holds the wire types of calculator.proto. The messages rely on
// protobuf struct tags and are encoded through reflection.
package v1pb

import (
	"context"

	proto "github.com/gogo/protobuf/proto"
	"google.golang.org/grpc"
)

type EventKind int32

const (
	SET_VALUE EventKind = 0
	FOCUS     EventKind = 1
	INPUT     EventKind = 2
	BLUR      EventKind = 3
	KEY       EventKind = 4
)

var EventKind_name = map[int32]string{
	0: "SET_VALUE",
	1: "FOCUS",
	2: "INPUT",
	3: "BLUR",
	4: "KEY",
}

var EventKind_value = map[string]int32{
	"SET_VALUE": 0,
	"FOCUS":     1,
	"INPUT":     2,
	"BLUR":      3,
	"KEY":       4,
}

func (x EventKind) String() string {
	return proto.EnumName(EventKind_name, int32(x))
}

type FieldMode int32

const (
	PLAIN     FieldMode = 0
	EDITING   FieldMode = 1
	REVERTING FieldMode = 2
)

var FieldMode_name = map[int32]string{
	0: "PLAIN",
	1: "EDITING",
	2: "REVERTING",
}

var FieldMode_value = map[string]int32{
	"PLAIN":     0,
	"EDITING":   1,
	"REVERTING": 2,
}

func (x FieldMode) String() string {
	return proto.EnumName(FieldMode_name, int32(x))
}

type EvaluateRequest struct {
	Expression string `protobuf:"bytes,1,opt,name=expression,proto3" json:"expression,omitempty"`
}

func (m *EvaluateRequest) Reset()         { *m = EvaluateRequest{} }
func (m *EvaluateRequest) String() string { return proto.CompactTextString(m) }
func (*EvaluateRequest) ProtoMessage()    {}

type EvaluateResponse struct {
	Result    float64 `protobuf:"fixed64,1,opt,name=result,proto3" json:"result,omitempty"`
	Formatted string  `protobuf:"bytes,2,opt,name=formatted,proto3" json:"formatted,omitempty"`
}

func (m *EvaluateResponse) Reset()         { *m = EvaluateResponse{} }
func (m *EvaluateResponse) String() string { return proto.CompactTextString(m) }
func (*EvaluateResponse) ProtoMessage()    {}

type EvaluateBatchRequest struct {
	Expressions []string `protobuf:"bytes,1,rep,name=expressions,proto3" json:"expressions,omitempty"`
}

func (m *EvaluateBatchRequest) Reset()         { *m = EvaluateBatchRequest{} }
func (m *EvaluateBatchRequest) String() string { return proto.CompactTextString(m) }
func (*EvaluateBatchRequest) ProtoMessage()    {}

type Evaluation struct {
	Expression string  `protobuf:"bytes,1,opt,name=expression,proto3" json:"expression,omitempty"`
	Valid      bool    `protobuf:"varint,2,opt,name=valid,proto3" json:"valid,omitempty"`
	Result     float64 `protobuf:"fixed64,3,opt,name=result,proto3" json:"result,omitempty"`
	Formatted  string  `protobuf:"bytes,4,opt,name=formatted,proto3" json:"formatted,omitempty"`
}

func (m *Evaluation) Reset()         { *m = Evaluation{} }
func (m *Evaluation) String() string { return proto.CompactTextString(m) }
func (*Evaluation) ProtoMessage()    {}

type EvaluateBatchResponse struct {
	Results []*Evaluation `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *EvaluateBatchResponse) Reset()         { *m = EvaluateBatchResponse{} }
func (m *EvaluateBatchResponse) String() string { return proto.CompactTextString(m) }
func (*EvaluateBatchResponse) ProtoMessage()    {}

type FieldEvent struct {
	Kind EventKind `protobuf:"varint,1,opt,name=kind,proto3,enum=calcinput.v1.EventKind" json:"kind,omitempty"`
	Text string    `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
}

func (m *FieldEvent) Reset()         { *m = FieldEvent{} }
func (m *FieldEvent) String() string { return proto.CompactTextString(m) }
func (*FieldEvent) ProtoMessage()    {}

type FieldState struct {
	Display   string    `protobuf:"bytes,1,opt,name=display,proto3" json:"display,omitempty"`
	Committed string    `protobuf:"bytes,2,opt,name=committed,proto3" json:"committed,omitempty"`
	Hint      string    `protobuf:"bytes,3,opt,name=hint,proto3" json:"hint,omitempty"`
	Mode      FieldMode `protobuf:"varint,4,opt,name=mode,proto3,enum=calcinput.v1.FieldMode" json:"mode,omitempty"`
	Focused   bool      `protobuf:"varint,5,opt,name=focused,proto3" json:"focused,omitempty"`
	Changes   []string  `protobuf:"bytes,6,rep,name=changes,proto3" json:"changes,omitempty"`
}

func (m *FieldState) Reset()         { *m = FieldState{} }
func (m *FieldState) String() string { return proto.CompactTextString(m) }
func (*FieldState) ProtoMessage()    {}

func init() {
	proto.RegisterEnum("calcinput.v1.EventKind", EventKind_name, EventKind_value)
	proto.RegisterEnum("calcinput.v1.FieldMode", FieldMode_name, FieldMode_value)
	proto.RegisterType((*EvaluateRequest)(nil), "calcinput.v1.EvaluateRequest")
	proto.RegisterType((*EvaluateResponse)(nil), "calcinput.v1.EvaluateResponse")
	proto.RegisterType((*EvaluateBatchRequest)(nil), "calcinput.v1.EvaluateBatchRequest")
	proto.RegisterType((*Evaluation)(nil), "calcinput.v1.Evaluation")
	proto.RegisterType((*EvaluateBatchResponse)(nil), "calcinput.v1.EvaluateBatchResponse")
	proto.RegisterType((*FieldEvent)(nil), "calcinput.v1.FieldEvent")
	proto.RegisterType((*FieldState)(nil), "calcinput.v1.FieldState")
}

// CalculatorClient is the client API for the Calculator service.
type CalculatorClient interface {
	Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpc.CallOption) (*EvaluateResponse, error)
	EvaluateBatch(ctx context.Context, in *EvaluateBatchRequest, opts ...grpc.CallOption) (*EvaluateBatchResponse, error)
	EditField(ctx context.Context, opts ...grpc.CallOption) (Calculator_EditFieldClient, error)
}

type calculatorClient struct {
	cc *grpc.ClientConn
}

func NewCalculatorClient(cc *grpc.ClientConn) CalculatorClient {
	return &calculatorClient{cc}
}

func (c *calculatorClient) Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpc.CallOption) (*EvaluateResponse, error) {
	out := new(EvaluateResponse)
	if err := c.cc.Invoke(ctx, "/calcinput.v1.Calculator/Evaluate", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calculatorClient) EvaluateBatch(ctx context.Context, in *EvaluateBatchRequest, opts ...grpc.CallOption) (*EvaluateBatchResponse, error) {
	out := new(EvaluateBatchResponse)
	if err := c.cc.Invoke(ctx, "/calcinput.v1.Calculator/EvaluateBatch", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calculatorClient) EditField(ctx context.Context, opts ...grpc.CallOption) (Calculator_EditFieldClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Calculator_serviceDesc.Streams[0], "/calcinput.v1.Calculator/EditField", opts...)
	if err != nil {
		return nil, err
	}
	return &calculatorEditFieldClient{stream}, nil
}

type Calculator_EditFieldClient interface {
	Send(*FieldEvent) error
	Recv() (*FieldState, error)
	grpc.ClientStream
}

type calculatorEditFieldClient struct {
	grpc.ClientStream
}

func (x *calculatorEditFieldClient) Send(m *FieldEvent) error {
	return x.ClientStream.SendMsg(m)
}

func (x *calculatorEditFieldClient) Recv() (*FieldState, error) {
	m := new(FieldState)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// CalculatorServer is the server API for the Calculator service.
type CalculatorServer interface {
	Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error)
	EvaluateBatch(context.Context, *EvaluateBatchRequest) (*EvaluateBatchResponse, error)
	EditField(Calculator_EditFieldServer) error
}

func RegisterCalculatorServer(s *grpc.Server, srv CalculatorServer) {
	s.RegisterService(&_Calculator_serviceDesc, srv)
}

func _Calculator_Evaluate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calcinput.v1.Calculator/Evaluate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Evaluate(ctx, req.(*EvaluateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Calculator_EvaluateBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).EvaluateBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calcinput.v1.Calculator/EvaluateBatch",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).EvaluateBatch(ctx, req.(*EvaluateBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Calculator_EditField_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(CalculatorServer).EditField(&calculatorEditFieldServer{stream})
}

type Calculator_EditFieldServer interface {
	Send(*FieldState) error
	Recv() (*FieldEvent, error)
	grpc.ServerStream
}

type calculatorEditFieldServer struct {
	grpc.ServerStream
}

func (x *calculatorEditFieldServer) Send(m *FieldState) error {
	return x.ServerStream.SendMsg(m)
}

func (x *calculatorEditFieldServer) Recv() (*FieldEvent, error) {
	m := new(FieldEvent)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

var _Calculator_serviceDesc = grpc.ServiceDesc{
	ServiceName: "calcinput.v1.Calculator",
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    _Calculator_Evaluate_Handler,
		},
		{
			MethodName: "EvaluateBatch",
			Handler:    _Calculator_EvaluateBatch_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "EditField",
			Handler:       _Calculator_EditField_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "calculator.proto",
}
