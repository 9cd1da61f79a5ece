package grpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/observability"
)

// clientIDFromContext reads the x-client-id metadata, falling back to the
// peer address.
func clientIDFromContext(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(common.MetadataClientID); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return ""
}

// CreateRateLimitInterceptor throttles the listed methods per client.
func (s *DashboardServer) CreateRateLimitInterceptor(targetMethods []string) grpc.UnaryServerInterceptor {
	targetMethodMap := common.Reducer(targetMethods,
		func(m map[string]bool, method string) map[string]bool {
			m[method] = true
			return m
		},
		map[string]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if _, ok := targetMethodMap[info.FullMethod]; ok {
			if !s.CheckClientLimiter(clientIDFromContext(ctx)) {
				observability.IncRateLimited(observability.TransportGRPC)
				observability.IncGrpcRequest(info.FullMethod, codes.ResourceExhausted.String())
				return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
			}
		}

		resp, err := handler(ctx, req)

		code := status.Code(err)
		observability.IncGrpcRequest(info.FullMethod, code.String())
		if code == codes.Internal {
			common.GetLoggerWith(common.LoggerNameGrpcServer).Error("Request failed",
				zap.String("method", info.FullMethod),
				zap.Error(err))
		}
		return resp, err
	}
}
