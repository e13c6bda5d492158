package services

import "context"

type ctxKey int

const previewTokenKey ctxKey = iota

// WithPreviewToken stores a verified preview bearer token on the
// request context. Accessors pick it up so draft content becomes
// visible for that request only.
func WithPreviewToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, previewTokenKey, token)
}

// PreviewTokenFromContext returns the preview token, or "" when the
// request runs in published-only mode.
func PreviewTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(previewTokenKey).(string)
	return token
}
