package grpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"trading-dashboard/internal/usecase/user"
	apperrors "trading-dashboard/pkg/errors"
	"trading-dashboard/pkg/logger"
)

// LookupUserFullMethod is the full RPC name of the lookup.
const LookupUserFullMethod = "/dashboard.v1.UserService/LookupUser"

// UserServiceServer is the server API for dashboard.v1.UserService.
// Messages are well-known types so the service needs no generated code.
type UserServiceServer interface {
	LookupUser(ctx context.Context, email *wrapperspb.StringValue) (*structpb.Struct, error)
}

// UserServiceDesc describes dashboard.v1.UserService for grpc.Server.RegisterService.
var UserServiceDesc = grpc.ServiceDesc{
	ServiceName: "dashboard.v1.UserService",
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "LookupUser",
			Handler:    lookupUserHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dashboard/v1/user.proto",
}

func lookupUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).LookupUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LookupUserFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserServiceServer).LookupUser(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// RegisterUserServiceServer registers srv with s.
func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&UserServiceDesc, srv)
}

// UserServiceClient calls dashboard.v1.UserService.
type UserServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewUserServiceClient creates a client on cc.
func NewUserServiceClient(cc grpc.ClientConnInterface) *UserServiceClient {
	return &UserServiceClient{cc: cc}
}

// LookupUser invokes the lookup for email.
func (c *UserServiceClient) LookupUser(ctx context.Context, email string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, LookupUserFullMethod, wrapperspb.String(email), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// UserService implements UserServiceServer on top of the lookup usecase.
type UserService struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserService creates a new gRPC user service
func NewUserService(uc user.Usecase, log *zap.Logger) *UserService {
	return &UserService{uc: uc, log: log}
}

// LookupUser handles gRPC LookupUser request
func (s *UserService) LookupUser(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	resp, err := s.uc.GetProfile(ctx, user.GetProfileRequest{Email: req.GetValue()})
	if err != nil {
		logger.WithContext(ctx, s.log).Debug("lookup failed", zap.Error(err))
		return nil, apperrors.ToGRPC(err)
	}

	return structpb.NewStruct(map[string]any{
		"fullName":     resp.FullName,
		"email":        resp.Email,
		"profileImage": resp.ProfileImage,
	})
}
