package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceOperation(t *testing.T) {
	ctx, span, cleanup := TraceOperation(context.Background(), "test.operation", map[string]interface{}{
		"string": "value",
		"int":    42,
		"int64":  int64(7),
		"bool":   true,
		"float":  1.5,
		"other":  struct{}{},
	})
	defer cleanup()

	require.NotNil(t, ctx)
	assert.NotNil(t, span)
}

func TestTraceOperation_NilAttributes(t *testing.T) {
	_, span, cleanup := TraceOperation(context.Background(), "test.operation", nil)
	defer cleanup()

	assert.NotNil(t, span)
}

func TestTraceHelpers(t *testing.T) {
	ctx := context.Background()

	_, span := TraceBusinessLogic(ctx, "draw_raffle")
	span.End()
	_, span = TraceInputParsing(ctx, "beneficiary_form")
	span.End()
	_, span = TraceCacheGet(ctx, "geocode:10.5:-66.9")
	span.End()
	_, span = TraceCacheSet(ctx, "geocode:10.5:-66.9", time.Hour)
	span.End()
	_, span = TraceExternalService(ctx, "nominatim", "reverse")
	AddTimingToSpan(span, time.Now())
	AddSpanAttribute(span, "http.status_code", 200)
	RecordErrorInSpan(span, errors.New("boom"), map[string]interface{}{"retry": false})
	span.End()
}
