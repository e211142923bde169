// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: rulestore.proto

package rulestorepb

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
	RuleStore_GetActiveBundle_FullMethodName = "/mediqo.rulestore.v1.RuleStore/GetActiveBundle"
	RuleStore_UpsertBundle_FullMethodName    = "/mediqo.rulestore.v1.RuleStore/UpsertBundle"
)

// RuleStoreClient is the client API for RuleStore service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RuleStore is the rule-authoring surface: clinic staff tooling
// uploads rule bundles and reads back the active one. Bundles are
// validated against the JSON schema on upsert; only clean bundles are
// stored.
type RuleStoreClient interface {
	// GetActiveBundle returns the clinic's active snapshot, optionally
	// with prior versions newest first.
	GetActiveBundle(ctx context.Context, in *GetActiveBundleRequest, opts ...grpc.CallOption) (*GetActiveBundleResponse, error)
	// UpsertBundle validates and stores one bundle version. Activating a
	// snapshot demotes the previously active one to staged.
	UpsertBundle(ctx context.Context, in *UpsertBundleRequest, opts ...grpc.CallOption) (*UpsertBundleResponse, error)
}

type ruleStoreClient struct {
	cc grpc.ClientConnInterface
}

func NewRuleStoreClient(cc grpc.ClientConnInterface) RuleStoreClient {
	return &ruleStoreClient{cc}
}

func (c *ruleStoreClient) GetActiveBundle(ctx context.Context, in *GetActiveBundleRequest, opts ...grpc.CallOption) (*GetActiveBundleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetActiveBundleResponse)
	err := c.cc.Invoke(ctx, RuleStore_GetActiveBundle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ruleStoreClient) UpsertBundle(ctx context.Context, in *UpsertBundleRequest, opts ...grpc.CallOption) (*UpsertBundleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpsertBundleResponse)
	err := c.cc.Invoke(ctx, RuleStore_UpsertBundle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RuleStoreServer is the server API for RuleStore service.
// All implementations must embed UnimplementedRuleStoreServer
// for forward compatibility.
//
// RuleStore is the rule-authoring surface: clinic staff tooling
// uploads rule bundles and reads back the active one. Bundles are
// validated against the JSON schema on upsert; only clean bundles are
// stored.
type RuleStoreServer interface {
	// GetActiveBundle returns the clinic's active snapshot, optionally
	// with prior versions newest first.
	GetActiveBundle(context.Context, *GetActiveBundleRequest) (*GetActiveBundleResponse, error)
	// UpsertBundle validates and stores one bundle version. Activating a
	// snapshot demotes the previously active one to staged.
	UpsertBundle(context.Context, *UpsertBundleRequest) (*UpsertBundleResponse, error)
	mustEmbedUnimplementedRuleStoreServer()
}

// UnimplementedRuleStoreServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRuleStoreServer struct{}

func (UnimplementedRuleStoreServer) GetActiveBundle(context.Context, *GetActiveBundleRequest) (*GetActiveBundleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetActiveBundle not implemented")
}
func (UnimplementedRuleStoreServer) UpsertBundle(context.Context, *UpsertBundleRequest) (*UpsertBundleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertBundle not implemented")
}
func (UnimplementedRuleStoreServer) mustEmbedUnimplementedRuleStoreServer() {}
func (UnimplementedRuleStoreServer) testEmbeddedByValue()                   {}

// UnsafeRuleStoreServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RuleStoreServer will
// result in compilation errors.
type UnsafeRuleStoreServer interface {
	mustEmbedUnimplementedRuleStoreServer()
}

func RegisterRuleStoreServer(s grpc.ServiceRegistrar, srv RuleStoreServer) {
	// If the following call panics, it indicates UnimplementedRuleStoreServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RuleStore_ServiceDesc, srv)
}

func _RuleStore_GetActiveBundle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetActiveBundleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuleStoreServer).GetActiveBundle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RuleStore_GetActiveBundle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RuleStoreServer).GetActiveBundle(ctx, req.(*GetActiveBundleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RuleStore_UpsertBundle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpsertBundleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuleStoreServer).UpsertBundle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RuleStore_UpsertBundle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RuleStoreServer).UpsertBundle(ctx, req.(*UpsertBundleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RuleStore_ServiceDesc is the grpc.ServiceDesc for RuleStore service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RuleStore_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mediqo.rulestore.v1.RuleStore",
	HandlerType: (*RuleStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetActiveBundle",
			Handler:    _RuleStore_GetActiveBundle_Handler,
		},
		{
			MethodName: "UpsertBundle",
			Handler:    _RuleStore_UpsertBundle_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rulestore.proto",
}
