package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// DefaultToolDurationBuckets cover a local validation failure up to the
// adapter's 30s request timeout.
var DefaultToolDurationBuckets = []float64{0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Recorder is implemented by ToolMetrics and NoOp.
type Recorder interface {
	RecordToolCall(tool string, d time.Duration, success bool)
}

type ToolMetrics struct {
	ToolCallsTotal   *prometheus.CounterVec
	ToolCallDuration *prometheus.HistogramVec
}

// New registers the tool metrics on reg. Registering twice on the same
// registry panics.
func New(reg prometheus.Registerer) *ToolMetrics {
	f := promauto.With(reg)
	return &ToolMetrics{
		ToolCallsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mentortools_mcp_tool_calls_total",
			Help: "Total number of tool calls",
		}, []string{"tool", "status"}),

		ToolCallDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mentortools_mcp_tool_call_duration_seconds",
			Help:    "Tool call duration in seconds",
			Buckets: DefaultToolDurationBuckets,
		}, []string{"tool"}),
	}
}

func (m *ToolMetrics) RecordToolCall(tool string, d time.Duration, success bool) {
	status := StatusSuccess
	if !success {
		status = StatusError
	}
	m.ToolCallsTotal.WithLabelValues(tool, status).Inc()
	m.ToolCallDuration.WithLabelValues(tool).Observe(d.Seconds())
}

type NoOp struct{}

func (NoOp) RecordToolCall(string, time.Duration, bool) {}
