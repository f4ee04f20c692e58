package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "coursestat.v1.StatsService"

const (
	runBatchMethod = "/" + ServiceName + "/RunBatch"
	lastRunMethod  = "/" + ServiceName + "/LastRun"
)

// StatsServer is the server API for the stats service. Requests and replies
// are free-form structs so the surface needs no generated code.
type StatsServer interface {
	RunBatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	LastRun(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var StatsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StatsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RunBatch", Handler: unary(runBatchMethod, StatsServer.RunBatch)},
		{MethodName: "LastRun", Handler: unary(lastRunMethod, StatsServer.LastRun)},
	},
	Metadata: "coursestat/v1/stats.proto",
}

func RegisterStatsServer(s grpc.ServiceRegistrar, srv StatsServer) {
	s.RegisterService(&StatsServiceDesc, srv)
}

func unary(fullMethod string, call func(StatsServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StatsServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StatsServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// StatsClient calls a remote stats service.
type StatsClient struct {
	cc grpc.ClientConnInterface
}

func NewStatsClient(cc grpc.ClientConnInterface) *StatsClient {
	return &StatsClient{cc: cc}
}

func (c *StatsClient) RunBatch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, runBatchMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *StatsClient) LastRun(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, lastRunMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
