package auth

import "context"

type UserContext struct {
	CompanyID string
	BranchID  string
	UserID    string
	Role      string
}

type userKey struct{}

func WithUser(ctx context.Context, u UserContext) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// FromContext returns the caller set by the interceptor or middleware.
func FromContext(ctx context.Context) (UserContext, bool) {
	u, ok := ctx.Value(userKey{}).(UserContext)
	return u, ok
}

func GetCompanyID(ctx context.Context) string {
	u, _ := FromContext(ctx)
	return u.CompanyID
}

func GetBranchID(ctx context.Context) string {
	u, _ := FromContext(ctx)
	return u.BranchID
}

func GetUserID(ctx context.Context) string {
	u, _ := FromContext(ctx)
	return u.UserID
}

// fromHeaders reads the x-company-id style headers accepted in development.
func fromHeaders(get func(key string) string) (UserContext, bool) {
	u := UserContext{
		CompanyID: get("x-company-id"),
		BranchID:  get("x-branch-id"),
		UserID:    get("x-user-id"),
		Role:      get("x-role"),
	}
	return u, u.CompanyID != "" && u.BranchID != ""
}
