package pb

import (
	"context"

	"google.golang.org/grpc"
)

const (
	getNamesMethod = "/planwatch.PlanService/GetNames"
	getPlanMethod  = "/planwatch.PlanService/GetPlan"
)

type PlanServiceClient interface {
	GetNames(ctx context.Context, in *NamesRequest, opts ...grpc.CallOption) (*NamesReply, error)
	GetPlan(ctx context.Context, in *PlanRequest, opts ...grpc.CallOption) (*PlanReply, error)
}

type planServiceClient struct {
	cc *grpc.ClientConn
}

func NewPlanServiceClient(cc *grpc.ClientConn) PlanServiceClient {
	return &planServiceClient{cc}
}

func (c *planServiceClient) GetNames(ctx context.Context, in *NamesRequest, opts ...grpc.CallOption) (*NamesReply, error) {
	out := new(NamesReply)
	err := c.cc.Invoke(ctx, getNamesMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planServiceClient) GetPlan(ctx context.Context, in *PlanRequest, opts ...grpc.CallOption) (*PlanReply, error) {
	out := new(PlanReply)
	err := c.cc.Invoke(ctx, getPlanMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type PlanServiceServer interface {
	GetNames(context.Context, *NamesRequest) (*NamesReply, error)
	GetPlan(context.Context, *PlanRequest) (*PlanReply, error)
}

func RegisterPlanServiceServer(s *grpc.Server, srv PlanServiceServer) {
	s.RegisterService(&planServiceDesc, srv)
}

func getNamesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NamesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).GetNames(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: getNamesMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).GetNames(ctx, req.(*NamesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getPlanHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlanServiceServer).GetPlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: getPlanMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlanServiceServer).GetPlan(ctx, req.(*PlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var planServiceDesc = grpc.ServiceDesc{
	ServiceName: "planwatch.PlanService",
	HandlerType: (*PlanServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetNames",
			Handler:    getNamesHandler,
		},
		{
			MethodName: "GetPlan",
			Handler:    getPlanHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "plan.proto",
}
