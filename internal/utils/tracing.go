package utils

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "app-adulto-mayor"

// TraceOperation traces an operation with timing and attributes
func TraceOperation(ctx context.Context, operationName string, attributes map[string]interface{}) (context.Context, trace.Span, func()) {
	start := time.Now()

	spanCtx, span := otel.Tracer(tracerName).Start(ctx, operationName, trace.WithAttributes(toAttributes(attributes)...))

	cleanup := func() {
		AddTimingToSpan(span, start)
		span.End()
	}

	return spanCtx, span, cleanup
}

// TraceBusinessLogic traces a coordinator operation
func TraceBusinessLogic(ctx context.Context, logicType string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "business_logic."+logicType, trace.WithAttributes(
		attribute.String("logic.type", logicType),
	))
}

// TraceInputParsing traces request body parsing
func TraceInputParsing(ctx context.Context, inputType string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "parse_input", trace.WithAttributes(
		attribute.String("input.type", inputType),
	))
}

// TraceCacheGet traces cache get operations
func TraceCacheGet(ctx context.Context, cacheKey string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "cache_get", trace.WithAttributes(
		attribute.String("cache.key", cacheKey),
		attribute.String("cache.operation", "get"),
	))
}

// TraceCacheSet traces cache set operations
func TraceCacheSet(ctx context.Context, cacheKey string, ttl time.Duration) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "cache_set", trace.WithAttributes(
		attribute.String("cache.key", cacheKey),
		attribute.String("cache.operation", "set"),
		attribute.String("cache.ttl", ttl.String()),
	))
}

// TraceExternalService traces external service calls
func TraceExternalService(ctx context.Context, serviceName, operation string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "external_service."+serviceName, trace.WithAttributes(
		attribute.String("service.name", serviceName),
		attribute.String("service.operation", operation),
	))
}

// AddTimingToSpan adds timing information to an existing span
func AddTimingToSpan(span trace.Span, startTime time.Time) {
	duration := time.Since(startTime)
	span.SetAttributes(
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("duration", duration.String()),
	)
}

// RecordErrorInSpan records an error in a span with additional context
func RecordErrorInSpan(span trace.Span, err error, context map[string]interface{}) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(toAttributes(context)...)
}

// AddSpanAttribute adds a single attribute to a span
func AddSpanAttribute(span trace.Span, key string, value interface{}) {
	span.SetAttributes(toAttributes(map[string]interface{}{key: value})...)
}

func toAttributes(values map[string]interface{}) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(values))
	for k, v := range values {
		switch val := v.(type) {
		case string:
			attrs = append(attrs, attribute.String(k, val))
		case int:
			attrs = append(attrs, attribute.Int(k, val))
		case int64:
			attrs = append(attrs, attribute.Int64(k, val))
		case bool:
			attrs = append(attrs, attribute.Bool(k, val))
		case float64:
			attrs = append(attrs, attribute.Float64(k, val))
		default:
			attrs = append(attrs, attribute.String(k, "unknown_type"))
		}
	}
	return attrs
}
