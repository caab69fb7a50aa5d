package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/checkout", "POST", 201, 5*time.Millisecond)
	m.RecordRequest("/checkout", "POST", 201, 7*time.Millisecond)
	m.RecordRequest("/orders/history", "GET", 200, time.Millisecond)

	assert.EqualValues(t, 2, m.RequestCount("/checkout", "POST", 201))
	assert.EqualValues(t, 1, m.RequestCount("/orders/history", "GET", 200))
	assert.EqualValues(t, 0, m.RequestCount("/checkout", "POST", 400))
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/x", "GET", 200, 0)
	m.RecordError("/x", "GET", "INTERNAL_ERROR")
	assert.Zero(t, m.RequestCount("/x", "GET", 200))
}
