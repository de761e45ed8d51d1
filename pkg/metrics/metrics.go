// Package metrics counts decode and cipher operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decode outcomes.
const (
	OutcomeValid     = "valid"
	OutcomeInvalid   = "invalid"
	OutcomeFallback  = "fallback"
	OutcomeBadLength = "bad_length"
	OutcomeEncrypted = "encrypted"
)

// Cipher operations.
const (
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"
)

// Recorder receives one call per observed event.
type Recorder interface {
	RecordDecode(format, outcome string)
	RecordCrypt(format, op string)
}

// Noop is a Recorder that discards all data.
type Noop struct{}

func (Noop) RecordDecode(format, outcome string) {}
func (Noop) RecordCrypt(format, op string)       {}

// Prometheus holds the decoder counters.
type Prometheus struct {
	decodesTotal *prometheus.CounterVec
	cryptsTotal  *prometheus.CounterVec
}

// NewPrometheus creates the counters under namespace and registers them with
// reg. A nil reg registers nowhere, which keeps tests isolated.
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	factory := promauto.With(reg)

	return &Prometheus{
		decodesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_decoded_total",
				Help:      "Total number of records decoded, by format and outcome",
			},
			[]string{"format", "outcome"},
		),

		cryptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "crypt_operations_total",
				Help:      "Total number of raw encrypt and decrypt calls",
			},
			[]string{"format", "operation"},
		),
	}
}

// RecordDecode counts a decode attempt.
func (m *Prometheus) RecordDecode(format, outcome string) {
	m.decodesTotal.WithLabelValues(format, outcome).Inc()
}

// RecordCrypt counts a raw cipher call.
func (m *Prometheus) RecordCrypt(format, op string) {
	m.cryptsTotal.WithLabelValues(format, op).Inc()
}
