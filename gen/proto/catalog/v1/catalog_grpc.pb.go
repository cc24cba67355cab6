// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: catalog/v1/catalog.proto

package catalogv1

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
	SessionsService_Upload_FullMethodName            = "/catalog.v1.SessionsService/Upload"
	SessionsService_GetSession_FullMethodName        = "/catalog.v1.SessionsService/GetSession"
	SessionsService_ListSessions_FullMethodName      = "/catalog.v1.SessionsService/ListSessions"
	SessionsService_AssignMarketplace_FullMethodName = "/catalog.v1.SessionsService/AssignMarketplace"
	SessionsService_ListRows_FullMethodName          = "/catalog.v1.SessionsService/ListRows"
	SessionsService_EditRow_FullMethodName           = "/catalog.v1.SessionsService/EditRow"
)

// SessionsServiceClient is the client API for SessionsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type SessionsServiceClient interface {
	Upload(ctx context.Context, in *UploadRequest, opts ...grpc.CallOption) (*UploadResponse, error)
	GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error)
	ListSessions(ctx context.Context, in *ListSessionsRequest, opts ...grpc.CallOption) (*ListSessionsResponse, error)
	AssignMarketplace(ctx context.Context, in *AssignMarketplaceRequest, opts ...grpc.CallOption) (*AssignMarketplaceResponse, error)
	ListRows(ctx context.Context, in *ListRowsRequest, opts ...grpc.CallOption) (*ListRowsResponse, error)
	EditRow(ctx context.Context, in *EditRowRequest, opts ...grpc.CallOption) (*EditRowResponse, error)
}

type sessionsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSessionsServiceClient(cc grpc.ClientConnInterface) SessionsServiceClient {
	return &sessionsServiceClient{cc}
}

func (c *sessionsServiceClient) Upload(ctx context.Context, in *UploadRequest, opts ...grpc.CallOption) (*UploadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadResponse)
	err := c.cc.Invoke(ctx, SessionsService_Upload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionsServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSessionResponse)
	err := c.cc.Invoke(ctx, SessionsService_GetSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionsServiceClient) ListSessions(ctx context.Context, in *ListSessionsRequest, opts ...grpc.CallOption) (*ListSessionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSessionsResponse)
	err := c.cc.Invoke(ctx, SessionsService_ListSessions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionsServiceClient) AssignMarketplace(ctx context.Context, in *AssignMarketplaceRequest, opts ...grpc.CallOption) (*AssignMarketplaceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AssignMarketplaceResponse)
	err := c.cc.Invoke(ctx, SessionsService_AssignMarketplace_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionsServiceClient) ListRows(ctx context.Context, in *ListRowsRequest, opts ...grpc.CallOption) (*ListRowsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRowsResponse)
	err := c.cc.Invoke(ctx, SessionsService_ListRows_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionsServiceClient) EditRow(ctx context.Context, in *EditRowRequest, opts ...grpc.CallOption) (*EditRowResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EditRowResponse)
	err := c.cc.Invoke(ctx, SessionsService_EditRow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SessionsServiceServer is the server API for SessionsService service.
// All implementations must embed UnimplementedSessionsServiceServer
// for forward compatibility.
type SessionsServiceServer interface {
	Upload(context.Context, *UploadRequest) (*UploadResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error)
	ListSessions(context.Context, *ListSessionsRequest) (*ListSessionsResponse, error)
	AssignMarketplace(context.Context, *AssignMarketplaceRequest) (*AssignMarketplaceResponse, error)
	ListRows(context.Context, *ListRowsRequest) (*ListRowsResponse, error)
	EditRow(context.Context, *EditRowRequest) (*EditRowResponse, error)
	mustEmbedUnimplementedSessionsServiceServer()
}

// UnimplementedSessionsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSessionsServiceServer struct{}

func (UnimplementedSessionsServiceServer) Upload(context.Context, *UploadRequest) (*UploadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Upload not implemented")
}
func (UnimplementedSessionsServiceServer) GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSession not implemented")
}
func (UnimplementedSessionsServiceServer) ListSessions(context.Context, *ListSessionsRequest) (*ListSessionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSessions not implemented")
}
func (UnimplementedSessionsServiceServer) AssignMarketplace(context.Context, *AssignMarketplaceRequest) (*AssignMarketplaceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssignMarketplace not implemented")
}
func (UnimplementedSessionsServiceServer) ListRows(context.Context, *ListRowsRequest) (*ListRowsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRows not implemented")
}
func (UnimplementedSessionsServiceServer) EditRow(context.Context, *EditRowRequest) (*EditRowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EditRow not implemented")
}
func (UnimplementedSessionsServiceServer) mustEmbedUnimplementedSessionsServiceServer() {}
func (UnimplementedSessionsServiceServer) testEmbeddedByValue()                         {}

// UnsafeSessionsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SessionsServiceServer will
// result in compilation errors.
type UnsafeSessionsServiceServer interface {
	mustEmbedUnimplementedSessionsServiceServer()
}

func RegisterSessionsServiceServer(s grpc.ServiceRegistrar, srv SessionsServiceServer) {
	// If the following call pancis, it indicates UnimplementedSessionsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SessionsService_ServiceDesc, srv)
}

func _SessionsService_Upload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServiceServer).Upload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SessionsService_Upload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServiceServer).Upload(ctx, req.(*UploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SessionsService_GetSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServiceServer).GetSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SessionsService_GetSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServiceServer).GetSession(ctx, req.(*GetSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SessionsService_ListSessions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSessionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServiceServer).ListSessions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SessionsService_ListSessions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServiceServer).ListSessions(ctx, req.(*ListSessionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SessionsService_AssignMarketplace_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssignMarketplaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServiceServer).AssignMarketplace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SessionsService_AssignMarketplace_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServiceServer).AssignMarketplace(ctx, req.(*AssignMarketplaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SessionsService_ListRows_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRowsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServiceServer).ListRows(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SessionsService_ListRows_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServiceServer).ListRows(ctx, req.(*ListRowsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SessionsService_EditRow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EditRowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServiceServer).EditRow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SessionsService_EditRow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServiceServer).EditRow(ctx, req.(*EditRowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SessionsService_ServiceDesc is the grpc.ServiceDesc for SessionsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SessionsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.v1.SessionsService",
	HandlerType: (*SessionsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Upload",
			Handler:    _SessionsService_Upload_Handler,
		},
		{
			MethodName: "GetSession",
			Handler:    _SessionsService_GetSession_Handler,
		},
		{
			MethodName: "ListSessions",
			Handler:    _SessionsService_ListSessions_Handler,
		},
		{
			MethodName: "AssignMarketplace",
			Handler:    _SessionsService_AssignMarketplace_Handler,
		},
		{
			MethodName: "ListRows",
			Handler:    _SessionsService_ListRows_Handler,
		},
		{
			MethodName: "EditRow",
			Handler:    _SessionsService_EditRow_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

const (
	MarketplacesService_CreateMarketplace_FullMethodName = "/catalog.v1.MarketplacesService/CreateMarketplace"
	MarketplacesService_ListMarketplaces_FullMethodName  = "/catalog.v1.MarketplacesService/ListMarketplaces"
	MarketplacesService_GetMarketplace_FullMethodName    = "/catalog.v1.MarketplacesService/GetMarketplace"
	MarketplacesService_DeleteMarketplace_FullMethodName = "/catalog.v1.MarketplacesService/DeleteMarketplace"
	MarketplacesService_ListFields_FullMethodName        = "/catalog.v1.MarketplacesService/ListFields"
	MarketplacesService_UpdateFields_FullMethodName      = "/catalog.v1.MarketplacesService/UpdateFields"
	MarketplacesService_ExtractTemplate_FullMethodName   = "/catalog.v1.MarketplacesService/ExtractTemplate"
	MarketplacesService_DeleteFields_FullMethodName      = "/catalog.v1.MarketplacesService/DeleteFields"
	MarketplacesService_GetFieldsSummary_FullMethodName  = "/catalog.v1.MarketplacesService/GetFieldsSummary"
)

// MarketplacesServiceClient is the client API for MarketplacesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MarketplacesServiceClient interface {
	CreateMarketplace(ctx context.Context, in *CreateMarketplaceRequest, opts ...grpc.CallOption) (*CreateMarketplaceResponse, error)
	ListMarketplaces(ctx context.Context, in *ListMarketplacesRequest, opts ...grpc.CallOption) (*ListMarketplacesResponse, error)
	GetMarketplace(ctx context.Context, in *GetMarketplaceRequest, opts ...grpc.CallOption) (*GetMarketplaceResponse, error)
	DeleteMarketplace(ctx context.Context, in *DeleteMarketplaceRequest, opts ...grpc.CallOption) (*DeleteMarketplaceResponse, error)
	ListFields(ctx context.Context, in *ListFieldsRequest, opts ...grpc.CallOption) (*ListFieldsResponse, error)
	UpdateFields(ctx context.Context, in *UpdateFieldsRequest, opts ...grpc.CallOption) (*UpdateFieldsResponse, error)
	ExtractTemplate(ctx context.Context, in *ExtractTemplateRequest, opts ...grpc.CallOption) (*ExtractTemplateResponse, error)
	DeleteFields(ctx context.Context, in *DeleteFieldsRequest, opts ...grpc.CallOption) (*DeleteFieldsResponse, error)
	GetFieldsSummary(ctx context.Context, in *GetFieldsSummaryRequest, opts ...grpc.CallOption) (*GetFieldsSummaryResponse, error)
}

type marketplacesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMarketplacesServiceClient(cc grpc.ClientConnInterface) MarketplacesServiceClient {
	return &marketplacesServiceClient{cc}
}

func (c *marketplacesServiceClient) CreateMarketplace(ctx context.Context, in *CreateMarketplaceRequest, opts ...grpc.CallOption) (*CreateMarketplaceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateMarketplaceResponse)
	err := c.cc.Invoke(ctx, MarketplacesService_CreateMarketplace_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplacesServiceClient) ListMarketplaces(ctx context.Context, in *ListMarketplacesRequest, opts ...grpc.CallOption) (*ListMarketplacesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListMarketplacesResponse)
	err := c.cc.Invoke(ctx, MarketplacesService_ListMarketplaces_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplacesServiceClient) GetMarketplace(ctx context.Context, in *GetMarketplaceRequest, opts ...grpc.CallOption) (*GetMarketplaceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetMarketplaceResponse)
	err := c.cc.Invoke(ctx, MarketplacesService_GetMarketplace_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplacesServiceClient) DeleteMarketplace(ctx context.Context, in *DeleteMarketplaceRequest, opts ...grpc.CallOption) (*DeleteMarketplaceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteMarketplaceResponse)
	err := c.cc.Invoke(ctx, MarketplacesService_DeleteMarketplace_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplacesServiceClient) ListFields(ctx context.Context, in *ListFieldsRequest, opts ...grpc.CallOption) (*ListFieldsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFieldsResponse)
	err := c.cc.Invoke(ctx, MarketplacesService_ListFields_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplacesServiceClient) UpdateFields(ctx context.Context, in *UpdateFieldsRequest, opts ...grpc.CallOption) (*UpdateFieldsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateFieldsResponse)
	err := c.cc.Invoke(ctx, MarketplacesService_UpdateFields_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplacesServiceClient) ExtractTemplate(ctx context.Context, in *ExtractTemplateRequest, opts ...grpc.CallOption) (*ExtractTemplateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractTemplateResponse)
	err := c.cc.Invoke(ctx, MarketplacesService_ExtractTemplate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplacesServiceClient) DeleteFields(ctx context.Context, in *DeleteFieldsRequest, opts ...grpc.CallOption) (*DeleteFieldsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteFieldsResponse)
	err := c.cc.Invoke(ctx, MarketplacesService_DeleteFields_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplacesServiceClient) GetFieldsSummary(ctx context.Context, in *GetFieldsSummaryRequest, opts ...grpc.CallOption) (*GetFieldsSummaryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFieldsSummaryResponse)
	err := c.cc.Invoke(ctx, MarketplacesService_GetFieldsSummary_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarketplacesServiceServer is the server API for MarketplacesService service.
// All implementations must embed UnimplementedMarketplacesServiceServer
// for forward compatibility.
type MarketplacesServiceServer interface {
	CreateMarketplace(context.Context, *CreateMarketplaceRequest) (*CreateMarketplaceResponse, error)
	ListMarketplaces(context.Context, *ListMarketplacesRequest) (*ListMarketplacesResponse, error)
	GetMarketplace(context.Context, *GetMarketplaceRequest) (*GetMarketplaceResponse, error)
	DeleteMarketplace(context.Context, *DeleteMarketplaceRequest) (*DeleteMarketplaceResponse, error)
	ListFields(context.Context, *ListFieldsRequest) (*ListFieldsResponse, error)
	UpdateFields(context.Context, *UpdateFieldsRequest) (*UpdateFieldsResponse, error)
	ExtractTemplate(context.Context, *ExtractTemplateRequest) (*ExtractTemplateResponse, error)
	DeleteFields(context.Context, *DeleteFieldsRequest) (*DeleteFieldsResponse, error)
	GetFieldsSummary(context.Context, *GetFieldsSummaryRequest) (*GetFieldsSummaryResponse, error)
	mustEmbedUnimplementedMarketplacesServiceServer()
}

// UnimplementedMarketplacesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMarketplacesServiceServer struct{}

func (UnimplementedMarketplacesServiceServer) CreateMarketplace(context.Context, *CreateMarketplaceRequest) (*CreateMarketplaceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateMarketplace not implemented")
}
func (UnimplementedMarketplacesServiceServer) ListMarketplaces(context.Context, *ListMarketplacesRequest) (*ListMarketplacesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMarketplaces not implemented")
}
func (UnimplementedMarketplacesServiceServer) GetMarketplace(context.Context, *GetMarketplaceRequest) (*GetMarketplaceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMarketplace not implemented")
}
func (UnimplementedMarketplacesServiceServer) DeleteMarketplace(context.Context, *DeleteMarketplaceRequest) (*DeleteMarketplaceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteMarketplace not implemented")
}
func (UnimplementedMarketplacesServiceServer) ListFields(context.Context, *ListFieldsRequest) (*ListFieldsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFields not implemented")
}
func (UnimplementedMarketplacesServiceServer) UpdateFields(context.Context, *UpdateFieldsRequest) (*UpdateFieldsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateFields not implemented")
}
func (UnimplementedMarketplacesServiceServer) ExtractTemplate(context.Context, *ExtractTemplateRequest) (*ExtractTemplateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractTemplate not implemented")
}
func (UnimplementedMarketplacesServiceServer) DeleteFields(context.Context, *DeleteFieldsRequest) (*DeleteFieldsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteFields not implemented")
}
func (UnimplementedMarketplacesServiceServer) GetFieldsSummary(context.Context, *GetFieldsSummaryRequest) (*GetFieldsSummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFieldsSummary not implemented")
}
func (UnimplementedMarketplacesServiceServer) mustEmbedUnimplementedMarketplacesServiceServer() {}
func (UnimplementedMarketplacesServiceServer) testEmbeddedByValue()                             {}

// UnsafeMarketplacesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MarketplacesServiceServer will
// result in compilation errors.
type UnsafeMarketplacesServiceServer interface {
	mustEmbedUnimplementedMarketplacesServiceServer()
}

func RegisterMarketplacesServiceServer(s grpc.ServiceRegistrar, srv MarketplacesServiceServer) {
	// If the following call pancis, it indicates UnimplementedMarketplacesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MarketplacesService_ServiceDesc, srv)
}

func _MarketplacesService_CreateMarketplace_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateMarketplaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplacesServiceServer).CreateMarketplace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplacesService_CreateMarketplace_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplacesServiceServer).CreateMarketplace(ctx, req.(*CreateMarketplaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplacesService_ListMarketplaces_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMarketplacesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplacesServiceServer).ListMarketplaces(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplacesService_ListMarketplaces_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplacesServiceServer).ListMarketplaces(ctx, req.(*ListMarketplacesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplacesService_GetMarketplace_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMarketplaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplacesServiceServer).GetMarketplace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplacesService_GetMarketplace_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplacesServiceServer).GetMarketplace(ctx, req.(*GetMarketplaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplacesService_DeleteMarketplace_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteMarketplaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplacesServiceServer).DeleteMarketplace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplacesService_DeleteMarketplace_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplacesServiceServer).DeleteMarketplace(ctx, req.(*DeleteMarketplaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplacesService_ListFields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFieldsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplacesServiceServer).ListFields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplacesService_ListFields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplacesServiceServer).ListFields(ctx, req.(*ListFieldsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplacesService_UpdateFields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateFieldsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplacesServiceServer).UpdateFields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplacesService_UpdateFields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplacesServiceServer).UpdateFields(ctx, req.(*UpdateFieldsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplacesService_ExtractTemplate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplacesServiceServer).ExtractTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplacesService_ExtractTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplacesServiceServer).ExtractTemplate(ctx, req.(*ExtractTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplacesService_DeleteFields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteFieldsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplacesServiceServer).DeleteFields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplacesService_DeleteFields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplacesServiceServer).DeleteFields(ctx, req.(*DeleteFieldsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplacesService_GetFieldsSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFieldsSummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplacesServiceServer).GetFieldsSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplacesService_GetFieldsSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplacesServiceServer).GetFieldsSummary(ctx, req.(*GetFieldsSummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MarketplacesService_ServiceDesc is the grpc.ServiceDesc for MarketplacesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MarketplacesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.v1.MarketplacesService",
	HandlerType: (*MarketplacesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateMarketplace",
			Handler:    _MarketplacesService_CreateMarketplace_Handler,
		},
		{
			MethodName: "ListMarketplaces",
			Handler:    _MarketplacesService_ListMarketplaces_Handler,
		},
		{
			MethodName: "GetMarketplace",
			Handler:    _MarketplacesService_GetMarketplace_Handler,
		},
		{
			MethodName: "DeleteMarketplace",
			Handler:    _MarketplacesService_DeleteMarketplace_Handler,
		},
		{
			MethodName: "ListFields",
			Handler:    _MarketplacesService_ListFields_Handler,
		},
		{
			MethodName: "UpdateFields",
			Handler:    _MarketplacesService_UpdateFields_Handler,
		},
		{
			MethodName: "ExtractTemplate",
			Handler:    _MarketplacesService_ExtractTemplate_Handler,
		},
		{
			MethodName: "DeleteFields",
			Handler:    _MarketplacesService_DeleteFields_Handler,
		},
		{
			MethodName: "GetFieldsSummary",
			Handler:    _MarketplacesService_GetFieldsSummary_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

const (
	MappingsService_SuggestMappings_FullMethodName = "/catalog.v1.MappingsService/SuggestMappings"
	MappingsService_SaveMappings_FullMethodName    = "/catalog.v1.MappingsService/SaveMappings"
	MappingsService_GetMappings_FullMethodName     = "/catalog.v1.MappingsService/GetMappings"
)

// MappingsServiceClient is the client API for MappingsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MappingsServiceClient interface {
	SuggestMappings(ctx context.Context, in *SuggestMappingsRequest, opts ...grpc.CallOption) (*SuggestMappingsResponse, error)
	SaveMappings(ctx context.Context, in *SaveMappingsRequest, opts ...grpc.CallOption) (*SaveMappingsResponse, error)
	GetMappings(ctx context.Context, in *GetMappingsRequest, opts ...grpc.CallOption) (*GetMappingsResponse, error)
}

type mappingsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMappingsServiceClient(cc grpc.ClientConnInterface) MappingsServiceClient {
	return &mappingsServiceClient{cc}
}

func (c *mappingsServiceClient) SuggestMappings(ctx context.Context, in *SuggestMappingsRequest, opts ...grpc.CallOption) (*SuggestMappingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SuggestMappingsResponse)
	err := c.cc.Invoke(ctx, MappingsService_SuggestMappings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingsServiceClient) SaveMappings(ctx context.Context, in *SaveMappingsRequest, opts ...grpc.CallOption) (*SaveMappingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SaveMappingsResponse)
	err := c.cc.Invoke(ctx, MappingsService_SaveMappings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingsServiceClient) GetMappings(ctx context.Context, in *GetMappingsRequest, opts ...grpc.CallOption) (*GetMappingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetMappingsResponse)
	err := c.cc.Invoke(ctx, MappingsService_GetMappings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MappingsServiceServer is the server API for MappingsService service.
// All implementations must embed UnimplementedMappingsServiceServer
// for forward compatibility.
type MappingsServiceServer interface {
	SuggestMappings(context.Context, *SuggestMappingsRequest) (*SuggestMappingsResponse, error)
	SaveMappings(context.Context, *SaveMappingsRequest) (*SaveMappingsResponse, error)
	GetMappings(context.Context, *GetMappingsRequest) (*GetMappingsResponse, error)
	mustEmbedUnimplementedMappingsServiceServer()
}

// UnimplementedMappingsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMappingsServiceServer struct{}

func (UnimplementedMappingsServiceServer) SuggestMappings(context.Context, *SuggestMappingsRequest) (*SuggestMappingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SuggestMappings not implemented")
}
func (UnimplementedMappingsServiceServer) SaveMappings(context.Context, *SaveMappingsRequest) (*SaveMappingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveMappings not implemented")
}
func (UnimplementedMappingsServiceServer) GetMappings(context.Context, *GetMappingsRequest) (*GetMappingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMappings not implemented")
}
func (UnimplementedMappingsServiceServer) mustEmbedUnimplementedMappingsServiceServer() {}
func (UnimplementedMappingsServiceServer) testEmbeddedByValue()                         {}

// UnsafeMappingsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MappingsServiceServer will
// result in compilation errors.
type UnsafeMappingsServiceServer interface {
	mustEmbedUnimplementedMappingsServiceServer()
}

func RegisterMappingsServiceServer(s grpc.ServiceRegistrar, srv MappingsServiceServer) {
	// If the following call pancis, it indicates UnimplementedMappingsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MappingsService_ServiceDesc, srv)
}

func _MappingsService_SuggestMappings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SuggestMappingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingsServiceServer).SuggestMappings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingsService_SuggestMappings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingsServiceServer).SuggestMappings(ctx, req.(*SuggestMappingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingsService_SaveMappings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveMappingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingsServiceServer).SaveMappings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingsService_SaveMappings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingsServiceServer).SaveMappings(ctx, req.(*SaveMappingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingsService_GetMappings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMappingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingsServiceServer).GetMappings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingsService_GetMappings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingsServiceServer).GetMappings(ctx, req.(*GetMappingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MappingsService_ServiceDesc is the grpc.ServiceDesc for MappingsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MappingsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.v1.MappingsService",
	HandlerType: (*MappingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SuggestMappings",
			Handler:    _MappingsService_SuggestMappings_Handler,
		},
		{
			MethodName: "SaveMappings",
			Handler:    _MappingsService_SaveMappings_Handler,
		},
		{
			MethodName: "GetMappings",
			Handler:    _MappingsService_GetMappings_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

const (
	ExportService_Generate_FullMethodName           = "/catalog.v1.ExportService/Generate"
	ExportService_ListGeneratedFiles_FullMethodName = "/catalog.v1.ExportService/ListGeneratedFiles"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error)
	ListGeneratedFiles(ctx context.Context, in *ListGeneratedFilesRequest, opts ...grpc.CallOption) (*ListGeneratedFilesResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateResponse)
	err := c.cc.Invoke(ctx, ExportService_Generate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ListGeneratedFiles(ctx context.Context, in *ListGeneratedFilesRequest, opts ...grpc.CallOption) (*ListGeneratedFilesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListGeneratedFilesResponse)
	err := c.cc.Invoke(ctx, ExportService_ListGeneratedFiles_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	Generate(context.Context, *GenerateRequest) (*GenerateResponse, error)
	ListGeneratedFiles(context.Context, *ListGeneratedFilesRequest) (*ListGeneratedFilesResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) Generate(context.Context, *GenerateRequest) (*GenerateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Generate not implemented")
}
func (UnimplementedExportServiceServer) ListGeneratedFiles(context.Context, *ListGeneratedFilesRequest) (*ListGeneratedFilesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListGeneratedFiles not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_Generate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_Generate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).Generate(ctx, req.(*GenerateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ListGeneratedFiles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListGeneratedFilesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ListGeneratedFiles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ListGeneratedFiles_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ListGeneratedFiles(ctx, req.(*ListGeneratedFilesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Generate",
			Handler:    _ExportService_Generate_Handler,
		},
		{
			MethodName: "ListGeneratedFiles",
			Handler:    _ExportService_ListGeneratedFiles_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}
