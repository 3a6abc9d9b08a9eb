package cmsapi

import "context"

type ctxKey string

const (
	withAuditKey ctxKey = "withAudit"
	uriKey       ctxKey = "uri"
	methodKey    ctxKey = "method"
	requestIDKey ctxKey = "requestID"
)

type AuditData struct {
	Uri       string
	Method    string
	RequestID string
	WithAudit bool
}

// GetAuditContext - контекст, при котором неуспешный ответ внешнего API пишется в журнал
func GetAuditContext(ctx context.Context, method, uri string) context.Context {
	rCtx := context.WithValue(ctx, withAuditKey, true)
	rCtx = context.WithValue(rCtx, methodKey, method)
	return context.WithValue(rCtx, uriKey, uri)
}

func GetContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func ExtractAuditData(ctx context.Context) AuditData {
	data := AuditData{}
	data.Uri, _ = ctx.Value(uriKey).(string)
	data.Method, _ = ctx.Value(methodKey).(string)
	data.RequestID, _ = ctx.Value(requestIDKey).(string)
	data.WithAudit, _ = ctx.Value(withAuditKey).(bool)
	return data
}
