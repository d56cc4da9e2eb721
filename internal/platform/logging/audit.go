package logging

import (
	"context"

	"go.uber.org/zap"
)

// Audit results.
const (
	AuditSuccess = "success"
	AuditFailure = "failure"
)

// LogAuditEvent records a directory mutation for later review.
//
// action is the verb ("create", "update", "delete", "set"), resourceType the kind of record
// ("profile", "setting") and resourceID its identifier. result is AuditSuccess or
// AuditFailure; details is optional.
func LogAuditEvent(ctx context.Context, action, resourceType, resourceID, result string, details map[string]any) {
	fields := []zap.Field{
		zap.String("audit.action", action),
		zap.String("audit.resource_type", resourceType),
		zap.String("audit.resource_id", resourceID),
		zap.String("audit.result", result),
	}
	if id := TraceIDFromContext(ctx); id != nil {
		fields = append(fields, zap.String("audit.correlation_id", *id))
	}
	if len(details) > 0 {
		fields = append(fields, zap.Any("audit.details", details))
	}
	LoggerFromContext(ctx).Info("audit event", fields...)
}
