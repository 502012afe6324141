package middleware

import "context"

type ctxKey string

const (
	ctxKeyRequestID ctxKey = "request_id"
	ctxKeyOperator  ctxKey = "operator"
)

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return value
	}
	return ""
}

// GetOperator returns the authenticated operator's email, if any.
func GetOperator(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ctxKeyOperator).(string)
	return email, ok
}
