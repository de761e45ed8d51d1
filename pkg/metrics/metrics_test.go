package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "pkx")

	m.RecordDecode("pk7", OutcomeValid)
	m.RecordDecode("pk7", OutcomeValid)
	m.RecordDecode("pk8", OutcomeBadLength)
	m.RecordCrypt("pk9", OpEncrypt)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.decodesTotal.WithLabelValues("pk7", OutcomeValid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodesTotal.WithLabelValues("pk8", OutcomeBadLength)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.decodesTotal.WithLabelValues("pk6", OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cryptsTotal.WithLabelValues("pk9", OpEncrypt)))

	expected := `
# HELP pkx_crypt_operations_total Total number of raw encrypt and decrypt calls
# TYPE pkx_crypt_operations_total counter
pkx_crypt_operations_total{format="pk9",operation="encrypt"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pkx_crypt_operations_total"))
}

func TestPrometheusDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheus(reg, "pkx")
	assert.Panics(t, func() { NewPrometheus(reg, "pkx") })
	assert.NotPanics(t, func() { NewPrometheus(reg, "other") })
}

func TestNilRegistererIsIsolated(t *testing.T) {
	a := NewPrometheus(nil, "pkx")
	b := NewPrometheus(nil, "pkx")
	a.RecordDecode("pk6", OutcomeFallback)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.decodesTotal.WithLabelValues("pk6", OutcomeFallback)))
}

func TestNoopSatisfiesRecorder(t *testing.T) {
	var r Recorder = Noop{}
	assert.NotPanics(t, func() {
		r.RecordDecode("pk7", OutcomeValid)
		r.RecordCrypt("pk7", OpDecrypt)
	})
}
