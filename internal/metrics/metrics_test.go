package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/goleak"
)

func TestHarness_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, err := NewHarness(reg)
	if err != nil {
		t.Fatalf("NewHarness failed: %v", err)
	}

	h.IncrementOutcome(OutcomePayload)
	h.IncrementOutcome(OutcomePayload)
	h.IncrementOutcome(OutcomeParseError)
	h.ObserveFrame(40)

	if got := testutil.ToFloat64(h.Outcome(OutcomePayload)); got != 2 {
		t.Errorf("payload = %v, want 2", got)
	}
	if got := testutil.ToFloat64(h.Outcome(OutcomeSkipped)); got != 0 {
		t.Errorf("skipped = %v, want 0", got)
	}
	if n := testutil.CollectAndCount(h.requestsTotal); n != len(outcomes) {
		t.Errorf("expected every outcome pre-registered, got %d series", n)
	}

	if _, err := NewHarness(reg); err == nil {
		t.Error("registering twice should fail")
	}
}

func TestHarness_NilIsNoop(t *testing.T) {
	var h *Harness
	h.IncrementOutcome(OutcomeRuntimeError)
	h.ObserveFrame(1)
}

func TestServe(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"), goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"))

	reg := prometheus.NewRegistry()
	h, err := NewHarness(reg)
	if err != nil {
		t.Fatal(err)
	}
	h.IncrementOutcome(OutcomeSkipped)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := l.Addr().String()
	l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, addr, reg) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	var body string
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get("http://" + addr + "/metrics")
		if err != nil {
			time.Sleep(20 * time.Millisecond)
			continue
		}
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		body = string(b)
		break
	}
	if !strings.Contains(body, `protocore_conformance_requests_total{outcome="skipped"} 1`) {
		t.Errorf("metrics page missing counter:\n%s", body)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Serve returned %v", err)
	}
}
