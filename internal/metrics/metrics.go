// Package metrics exposes prometheus counters for the conformance harness.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes a harness request can end in.
const (
	OutcomePayload        = "payload"
	OutcomeParseError     = "parse_error"
	OutcomeSerializeError = "serialize_error"
	OutcomeRuntimeError   = "runtime_error"
	OutcomeSkipped        = "skipped"
)

var outcomes = []string{OutcomePayload, OutcomeParseError, OutcomeSerializeError, OutcomeRuntimeError, OutcomeSkipped}

// Harness holds the harness counters. A nil *Harness records nothing.
type Harness struct {
	requestsTotal *prometheus.CounterVec
	frameBytes    prometheus.Histogram
}

// NewHarness registers the harness metrics with reg.
func NewHarness(reg prometheus.Registerer) (*Harness, error) {
	h := &Harness{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "protocore_conformance_requests_total",
			Help: "Total number of conformance requests by outcome",
		}, []string{"outcome"}),
		frameBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "protocore_conformance_frame_bytes",
			Help:    "Size of request frames read",
			Buckets: prometheus.ExponentialBuckets(16, 4, 8),
		}),
	}
	for _, c := range []prometheus.Collector{h.requestsTotal, h.frameBytes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	// Initialize counters with 0 so they appear in /metrics immediately
	for _, o := range outcomes {
		h.requestsTotal.WithLabelValues(o).Add(0)
	}
	return h, nil
}

// IncrementOutcome counts one request that ended in outcome.
func (h *Harness) IncrementOutcome(outcome string) {
	if h == nil {
		return
	}
	h.requestsTotal.WithLabelValues(outcome).Inc()
}

// ObserveFrame records the size of one request frame.
func (h *Harness) ObserveFrame(n int) {
	if h == nil {
		return
	}
	h.frameBytes.Observe(float64(n))
}

// Outcome returns the counter for outcome, for tests and reports.
func (h *Harness) Outcome(outcome string) prometheus.Counter {
	return h.requestsTotal.WithLabelValues(outcome)
}

// Serve exposes g on addr under /metrics until ctx is done.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
