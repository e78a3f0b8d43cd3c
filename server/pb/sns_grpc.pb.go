// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: sns.proto

package pb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SNSService_Login_FullMethodName    = "/sns.SNSService/Login"
	SNSService_List_FullMethodName     = "/sns.SNSService/List"
	SNSService_Follow_FullMethodName   = "/sns.SNSService/Follow"
	SNSService_Unfollow_FullMethodName = "/sns.SNSService/Unfollow"
	SNSService_Timeline_FullMethodName = "/sns.SNSService/Timeline"
)

// SNSServiceClient is the client API for SNSService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SNSService is the client-facing API of the primary. Reply strings are part
// of the contract; clients parse them (see the chirp root package).
type SNSServiceClient interface {
	Login(ctx context.Context, in *Request, opts ...grpc.CallOption) (*Reply, error)
	List(ctx context.Context, in *Request, opts ...grpc.CallOption) (*ListReply, error)
	Follow(ctx context.Context, in *Request, opts ...grpc.CallOption) (*Reply, error)
	Unfollow(ctx context.Context, in *Request, opts ...grpc.CallOption) (*Reply, error)
	// Timeline is a live bidirectional post stream. The first client message
	// carries the reserved body "Set Stream" and binds the stream to the user;
	// every later message is a real post.
	Timeline(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[Message, Message], error)
}

type sNSServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSNSServiceClient(cc grpc.ClientConnInterface) SNSServiceClient {
	return &sNSServiceClient{cc}
}

func (c *sNSServiceClient) Login(ctx context.Context, in *Request, opts ...grpc.CallOption) (*Reply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Reply)
	err := c.cc.Invoke(ctx, SNSService_Login_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sNSServiceClient) List(ctx context.Context, in *Request, opts ...grpc.CallOption) (*ListReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListReply)
	err := c.cc.Invoke(ctx, SNSService_List_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sNSServiceClient) Follow(ctx context.Context, in *Request, opts ...grpc.CallOption) (*Reply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Reply)
	err := c.cc.Invoke(ctx, SNSService_Follow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sNSServiceClient) Unfollow(ctx context.Context, in *Request, opts ...grpc.CallOption) (*Reply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Reply)
	err := c.cc.Invoke(ctx, SNSService_Unfollow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sNSServiceClient) Timeline(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[Message, Message], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &SNSService_ServiceDesc.Streams[0], SNSService_Timeline_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Message, Message]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type SNSService_TimelineClient = grpc.BidiStreamingClient[Message, Message]

// SNSServiceServer is the server API for SNSService service.
// All implementations must embed UnimplementedSNSServiceServer
// for forward compatibility.
//
// SNSService is the client-facing API of the primary. Reply strings are part
// of the contract; clients parse them (see the chirp root package).
type SNSServiceServer interface {
	Login(context.Context, *Request) (*Reply, error)
	List(context.Context, *Request) (*ListReply, error)
	Follow(context.Context, *Request) (*Reply, error)
	Unfollow(context.Context, *Request) (*Reply, error)
	// Timeline is a live bidirectional post stream. The first client message
	// carries the reserved body "Set Stream" and binds the stream to the user;
	// every later message is a real post.
	Timeline(grpc.BidiStreamingServer[Message, Message]) error
	mustEmbedUnimplementedSNSServiceServer()
}

// UnimplementedSNSServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSNSServiceServer struct{}

func (UnimplementedSNSServiceServer) Login(context.Context, *Request) (*Reply, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedSNSServiceServer) List(context.Context, *Request) (*ListReply, error) {
	return nil, status.Error(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedSNSServiceServer) Follow(context.Context, *Request) (*Reply, error) {
	return nil, status.Error(codes.Unimplemented, "method Follow not implemented")
}
func (UnimplementedSNSServiceServer) Unfollow(context.Context, *Request) (*Reply, error) {
	return nil, status.Error(codes.Unimplemented, "method Unfollow not implemented")
}
func (UnimplementedSNSServiceServer) Timeline(grpc.BidiStreamingServer[Message, Message]) error {
	return status.Error(codes.Unimplemented, "method Timeline not implemented")
}
func (UnimplementedSNSServiceServer) mustEmbedUnimplementedSNSServiceServer() {}
func (UnimplementedSNSServiceServer) testEmbeddedByValue()                    {}

// UnsafeSNSServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SNSServiceServer will
// result in compilation errors.
type UnsafeSNSServiceServer interface {
	mustEmbedUnimplementedSNSServiceServer()
}

func RegisterSNSServiceServer(s grpc.ServiceRegistrar, srv SNSServiceServer) {
	// If the following call panics, it indicates UnimplementedSNSServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SNSService_ServiceDesc, srv)
}

func _SNSService_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Request)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SNSServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SNSService_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SNSServiceServer).Login(ctx, req.(*Request))
	}
	return interceptor(ctx, in, info, handler)
}

func _SNSService_List_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Request)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SNSServiceServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SNSService_List_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SNSServiceServer).List(ctx, req.(*Request))
	}
	return interceptor(ctx, in, info, handler)
}

func _SNSService_Follow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Request)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SNSServiceServer).Follow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SNSService_Follow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SNSServiceServer).Follow(ctx, req.(*Request))
	}
	return interceptor(ctx, in, info, handler)
}

func _SNSService_Unfollow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Request)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SNSServiceServer).Unfollow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SNSService_Unfollow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SNSServiceServer).Unfollow(ctx, req.(*Request))
	}
	return interceptor(ctx, in, info, handler)
}

func _SNSService_Timeline_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(SNSServiceServer).Timeline(&grpc.GenericServerStream[Message, Message]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type SNSService_TimelineServer = grpc.BidiStreamingServer[Message, Message]

// SNSService_ServiceDesc is the grpc.ServiceDesc for SNSService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SNSService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "sns.SNSService",
	HandlerType: (*SNSServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Login",
			Handler:    _SNSService_Login_Handler,
		},
		{
			MethodName: "List",
			Handler:    _SNSService_List_Handler,
		},
		{
			MethodName: "Follow",
			Handler:    _SNSService_Follow_Handler,
		},
		{
			MethodName: "Unfollow",
			Handler:    _SNSService_Unfollow_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Timeline",
			Handler:       _SNSService_Timeline_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "sns.proto",
}
