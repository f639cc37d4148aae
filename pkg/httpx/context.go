package httpx

import "context"

type ctxKey string

const (
	CtxKeyClientID ctxKey = "client_id"
	CtxKeyEmail    ctxKey = "email"
	CtxKeyClaims   ctxKey = "claims" // full jwtx.Claims when you need more
)

// ClientIDFromCtx returns the authenticated client id, or 0 when the
// request was not authenticated.
func ClientIDFromCtx(ctx context.Context) int64 {
	if v, ok := ctx.Value(CtxKeyClientID).(int64); ok {
		return v
	}
	return 0
}

// EmailFromCtx returns the authenticated client email, or "".
func EmailFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyEmail).(string); ok {
		return v
	}
	return ""
}
