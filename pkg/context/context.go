package context

import "context"

type ContextKey string

var (
	RequestIDKey       = ContextKey("X-Request-Id")
	MethodKey          = ContextKey("X-Method")
	RouteKey           = ContextKey("X-Route")
	RemoteIPKey        = ContextKey("X-Remote-Ip")
	RunIDKey           = ContextKey("X-Migration-Run-Id")
	LegacyProjectIDKey = ContextKey("X-Legacy-Project-Id")
)

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	value, _ := ctx.Value(RequestIDKey).(string)
	return value
}

func SetMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, MethodKey, method)
}

func GetMethod(ctx context.Context) string {
	value, _ := ctx.Value(MethodKey).(string)
	return value
}

func SetRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, RouteKey, route)
}

func GetRoute(ctx context.Context) string {
	value, _ := ctx.Value(RouteKey).(string)
	return value
}

func SetRemoteIP(ctx context.Context, remoteIP string) context.Context {
	return context.WithValue(ctx, RemoteIPKey, remoteIP)
}

func GetRemoteIP(ctx context.Context) string {
	value, _ := ctx.Value(RemoteIPKey).(string)
	return value
}

// SetRunID tags ctx with the id of the migration run it belongs to.
func SetRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

func GetRunID(ctx context.Context) string {
	value, _ := ctx.Value(RunIDKey).(string)
	return value
}

func SetLegacyProjectID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, LegacyProjectIDKey, id)
}

// GetLegacyProjectID returns 0 when ctx carries no project.
func GetLegacyProjectID(ctx context.Context) int {
	value, _ := ctx.Value(LegacyProjectIDKey).(int)
	return value
}
