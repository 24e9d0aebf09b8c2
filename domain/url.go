package domain

import "context"

// RequestPathKeyType is a custom type for request path key.
type RequestPathKeyType string

const (
	// RequestPathCtxKey is the key used to store the route template of the request in the request context
	RequestPathCtxKey RequestPathKeyType = "request_path"
)

// GetURLPathFromContext returns the request path from the context
func GetURLPathFromContext(ctx context.Context) string {
	requestPath, ok := ctx.Value(RequestPathCtxKey).(string)
	if !ok || len(requestPath) == 0 {
		requestPath = "unknown"
	}
	return requestPath
}
