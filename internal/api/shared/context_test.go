package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	first := GetTraceID(SetTraceID(context.Background()))
	second := GetTraceID(SetTraceID(context.Background()))

	assert.Len(t, first, TraceIDLength*2)
	assert.NotEqual(t, first, second)
	assert.Len(t, generateFallbackTraceID(), TraceIDLength*2)
}
