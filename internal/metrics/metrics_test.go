package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordToolCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RecordToolCall("mentortools_get_course", 120*time.Millisecond, true)
	m.RecordToolCall("mentortools_get_course", 30*time.Millisecond, false)
	m.RecordToolCall("mentortools_get_course", 10*time.Millisecond, false)

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	var observations uint64
	for _, mf := range families {
		switch mf.GetName() {
		case "mentortools_mcp_tool_calls_total":
			for _, metric := range mf.GetMetric() {
				for _, lp := range metric.GetLabel() {
					if lp.GetName() == "status" {
						counts[lp.GetValue()] = metric.GetCounter().GetValue()
					}
				}
			}
		case "mentortools_mcp_tool_call_duration_seconds":
			for _, metric := range mf.GetMetric() {
				observations += metric.GetHistogram().GetSampleCount()
			}
		}
	}

	assert.Equal(t, map[string]float64{StatusSuccess: 1, StatusError: 2}, counts)
	assert.Equal(t, uint64(3), observations)
}

func TestNewTwicePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}

func TestNoOp(t *testing.T) {
	var r Recorder = NoOp{}
	assert.NotPanics(t, func() { r.RecordToolCall("x", time.Second, true) })
}
