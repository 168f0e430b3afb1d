package auth

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/pkg/i18n"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type Authenticator struct {
	Secret string
	// AllowHeaders accepts x-company-id/x-branch-id headers without a token.
	AllowHeaders bool
}

// Authenticate resolves the caller from incoming gRPC metadata.
func (a *Authenticator) Authenticate(ctx context.Context) (UserContext, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	return a.resolve(func(key string) string {
		if v := md.Get(key); len(v) > 0 {
			return v[0]
		}
		return ""
	})
}

// resolve prefers a bearer token and falls back to plain headers when allowed.
func (a *Authenticator) resolve(get func(key string) string) (UserContext, error) {
	if header := get("authorization"); header != "" {
		tok, ok := BearerToken(header)
		if !ok {
			return UserContext{}, ErrInvalidToken
		}
		return ParseToken(a.Secret, tok)
	}

	if a.AllowHeaders {
		if u, ok := fromHeaders(get); ok {
			return u, nil
		}
	}
	return UserContext{}, ErrInvalidToken
}

// UnaryInterceptor stores the authenticated caller and the requested
// language in the request context.
func (a *Authenticator) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		u, err := a.Authenticate(ctx)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "missing or invalid credentials")
		}
		ctx = WithUser(ctx, u)

		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if lang := md.Get("accept-language"); len(lang) > 0 {
				ctx = i18n.WithLanguage(ctx, lang[0])
			}
		}
		return handler(ctx, req)
	}
}
