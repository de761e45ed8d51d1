// Package decoder wraps record construction with logging, metrics and the
// configured fallback policy.
package decoder

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ssargent/pkx/pkg/codec"
	"github.com/ssargent/pkx/pkg/config"
	"github.com/ssargent/pkx/pkg/logging"
	"github.com/ssargent/pkx/pkg/metrics"
	"github.com/ssargent/pkx/pkg/pkm"
)

// ErrFormatDisabled is returned for formats left out of the enabled set.
var ErrFormatDisabled = errors.New("decoder: format disabled")

// Decoder is safe for concurrent use once built.
type Decoder struct {
	logger   logging.Logger
	recorder metrics.Recorder
	fallback bool
	enabled  map[pkm.Format]bool // nil enables every format
}

type Option func(*Decoder)

func WithLogger(l logging.Logger) Option {
	return func(d *Decoder) {
		d.logger = l
	}
}

func WithRecorder(r metrics.Recorder) Option {
	return func(d *Decoder) {
		d.recorder = r
	}
}

// WithFallback makes Decode return the format's default record instead of
// an error or an invalid record.
func WithFallback(enabled bool) Option {
	return func(d *Decoder) {
		d.fallback = enabled
	}
}

// WithFormats restricts Decode to the listed formats.
func WithFormats(formats ...pkm.Format) Option {
	return func(d *Decoder) {
		d.enabled = make(map[pkm.Format]bool, len(formats))
		for _, f := range formats {
			d.enabled[f] = true
		}
	}
}

// New builds a Decoder that logs and records nothing unless told otherwise.
func New(opts ...Option) *Decoder {
	d := &Decoder{
		logger:   logging.Noop{},
		recorder: metrics.Noop{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FromConfig builds a Decoder from cfg. Logs go to w as slog text at the
// configured level; a nil w disables logging. Counters are registered with reg
// when metrics are enabled.
func FromConfig(cfg *config.Config, reg prometheus.Registerer, w io.Writer) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	formats, _ := cfg.Decode.EnabledFormats()
	level, _ := cfg.Logging.SlogLevel()

	opts := []Option{
		WithFallback(cfg.Decode.FallbackToDefault),
		WithFormats(formats...),
	}
	if w != nil {
		handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
		opts = append(opts, WithLogger(logging.NewSlog(slog.New(handler))))
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, WithRecorder(metrics.NewPrometheus(reg, cfg.Metrics.Namespace)))
	}
	return New(opts...), nil
}

// Decode builds the record for format from data.
//
// A buffer of the wrong length is an error unless fallback is enabled. A buffer
// that fails validation is returned as is, or replaced by the default record
// when fallback is enabled.
func (d *Decoder) Decode(format pkm.Format, data []byte) (pkm.Pkx, error) {
	g, err := d.geometry(format)
	if err != nil {
		return nil, err
	}
	name := format.String()

	encrypted := g.IsEncrypted(data)
	pk, err := pkm.Parse(format, data)
	if err != nil {
		if !errors.Is(err, codec.ErrInvalidLength) {
			return nil, err
		}
		d.recorder.RecordDecode(name, metrics.OutcomeBadLength)
		d.logger.Warn("rejected record", "format", name, "length", len(data), "error", err)
		if !d.fallback {
			return nil, err
		}
		return d.fallbackRecord(format)
	}
	if encrypted {
		d.recorder.RecordDecode(name, metrics.OutcomeEncrypted)
	}

	if !pk.IsValid() {
		d.recorder.RecordDecode(name, metrics.OutcomeInvalid)
		if d.fallback {
			if d.debug() {
				d.logger.Debug("record failed validation, using default",
					"format", name,
					"sanity", pk.Sanity(),
					"checksum", pk.Checksum(),
					"calculated", pk.CalculatedChecksum(),
					"species", pk.SpeciesID(),
				)
			}
			return d.fallbackRecord(format)
		}
		return pk, nil
	}

	d.recorder.RecordDecode(name, metrics.OutcomeValid)
	if d.debug() {
		d.logger.Debug("decoded record", "format", name, "species", pk.Species().String(), "party", pk.IsParty())
	}
	return pk, nil
}

// debug skips gathering log fields that the logger would discard.
func (d *Decoder) debug() bool {
	return logging.Enabled(d.logger, slog.LevelDebug)
}

func (d *Decoder) fallbackRecord(format pkm.Format) (pkm.Pkx, error) {
	d.recorder.RecordDecode(format.String(), metrics.OutcomeFallback)
	return pkm.ParseOrDefault(format, nil)
}

// Encrypt enciphers a decrypted buffer of format.
func (d *Decoder) Encrypt(format pkm.Format, data []byte) ([]byte, error) {
	return d.crypt(format, data, metrics.OpEncrypt)
}

// Decrypt deciphers a buffer of format without validating its content.
func (d *Decoder) Decrypt(format pkm.Format, data []byte) ([]byte, error) {
	return d.crypt(format, data, metrics.OpDecrypt)
}

func (d *Decoder) crypt(format pkm.Format, data []byte, op string) ([]byte, error) {
	g, err := d.geometry(format)
	if err != nil {
		return nil, err
	}

	var out []byte
	if op == metrics.OpEncrypt {
		out, err = g.Encrypt(data)
	} else {
		out, err = g.Decrypt(data)
	}
	if err != nil {
		d.logger.Warn("crypt failed", "format", format.String(), "op", op, "error", err)
		return nil, err
	}
	d.recorder.RecordCrypt(format.String(), op)
	return out, nil
}

func (d *Decoder) geometry(format pkm.Format) (codec.Geometry, error) {
	if d.enabled != nil && !d.enabled[format] {
		return codec.Geometry{}, fmt.Errorf("%w: %s", ErrFormatDisabled, format)
	}
	return format.Geometry()
}
