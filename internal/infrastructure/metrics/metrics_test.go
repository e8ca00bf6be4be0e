package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordToolCall(t *testing.T) {
	before := testutil.ToFloat64(ToolCallsTotal.WithLabelValues("greet", "tool", "success"))

	RecordToolCall("greet", "tool", "success", 0.01)

	after := testutil.ToFloat64(ToolCallsTotal.WithLabelValues("greet", "tool", "success"))
	assert.Equal(t, before+1, after)
}

func TestRecordToolCall_EmptyStatus(t *testing.T) {
	RecordToolCall("ai_search", "tool", "", 0.2)
	assert.Equal(t, float64(1), testutil.ToFloat64(ToolCallsTotal.WithLabelValues("ai_search", "tool", "unknown")))
}

func TestRecordProviderRequest(t *testing.T) {
	RecordProviderRequest("serper", "timeout")
	assert.Equal(t, float64(1), testutil.ToFloat64(ProviderRequestsTotal.WithLabelValues("serper", "timeout")))
}
