package grpc

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/auth"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
	"github.com/n25shubhamhibare/aqua-lora-watch/pkg/pb"
)

type contextKey int

const (
	userKey contextKey = iota
	tokenKey
)

// publicMethods may be called without a session
var publicMethods = map[string]bool{
	pb.WaterService_Login_FullMethodName: true,
}

// UnaryAuthInterceptor rejects calls without a valid bearer token
func UnaryAuthInterceptor(authn auth.Authenticator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		ctx, err := authenticate(ctx, authn, info.FullMethod)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// StreamAuthInterceptor is the streaming counterpart of UnaryAuthInterceptor
func StreamAuthInterceptor(authn auth.Authenticator) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if publicMethods[info.FullMethod] {
			return handler(srv, ss)
		}

		ctx, err := authenticate(ss.Context(), authn, info.FullMethod)
		if err != nil {
			return err
		}
		return handler(srv, &authenticatedStream{ServerStream: ss, ctx: ctx})
	}
}

func authenticate(ctx context.Context, authn auth.Authenticator, method string) (context.Context, error) {
	token := bearerToken(ctx)
	if token == "" {
		log.Warn().Str("method", method).Msg("missing bearer token")
		return nil, status.Error(codes.Unauthenticated, "missing bearer token")
	}

	user, err := authn.CurrentUser(ctx, token)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Msg("rejected session")
		return nil, status.Error(codes.Unauthenticated, "invalid or expired session")
	}

	ctx = context.WithValue(ctx, userKey, *user)
	ctx = context.WithValue(ctx, tokenKey, token)
	return ctx, nil
}

// bearerToken reads "authorization: Bearer <token>" from incoming metadata
func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get("authorization") {
		scheme, token, found := strings.Cut(v, " ")
		if found && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}
	}
	return ""
}

func userFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey).(domain.User)
	return u, ok
}

func tokenFromContext(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey).(string)
	return t
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context {
	return s.ctx
}
