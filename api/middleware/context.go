package middleware

import "context"

type contextKey string

const (
	ctxAdminEmail  contextKey = "admin_email"
	ctxCartSession contextKey = "cart_session"
)

func AdminEmailFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAdminEmail).(string); ok {
		return v
	}
	return ""
}

func CartSessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxCartSession).(string); ok {
		return v
	}
	return ""
}

// WithCartSession injects the cart session identifier for downstream handlers.
func WithCartSession(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCartSession, sessionID)
}
