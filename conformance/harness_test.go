package conformance

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"golang.org/x/sync/errgroup"

	"github.com/anirudhraja/protocore"
	"github.com/anirudhraja/protocore/buffer"
	"github.com/anirudhraja/protocore/internal/metrics"
	"github.com/anirudhraja/protocore/internal/testpb"
	"github.com/anirudhraja/protocore/wire"
)

const allTypes = "protocore.test.TestAllTypes"

func newTestHarness(t *testing.T, generated bool, opts ...HarnessOption) *Harness {
	t.Helper()
	pc := protocore.New()
	if err := pc.RegisterFile(testpb.File_protocore_test_test_types_proto); err != nil {
		t.Fatalf("RegisterFile failed: %v", err)
	}
	if generated {
		if err := pc.RegisterType(func() wire.Message { return &testpb.TestAllTypes{} }); err != nil {
			t.Fatalf("RegisterType failed: %v", err)
		}
	}
	return NewHarness(pc, opts...)
}

func samplePayload(t *testing.T) []byte {
	t.Helper()
	b, err := wire.Marshal(&testpb.TestAllTypes{
		FInt32:       -7,
		FSint64:      -300,
		FDouble:      2.5,
		FString:      "hello",
		RInt32:       []int32{1, 2, 3},
		MStringInt32: map[string]int32{"b": 2, "a": 1},
		Choice:       &testpb.TestAllTypes_CString{CString: "picked"},
	})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	return b
}

func binaryRequest(payload []byte, messageType string) *ConformanceRequest {
	return &ConformanceRequest{
		Payload:               &ConformanceRequest_ProtobufPayload{ProtobufPayload: buffer.SliceOf(payload)},
		RequestedOutputFormat: WireFormat_PROTOBUF,
		MessageType:           messageType,
		TestCategory:          TestCategory_BINARY_TEST,
	}
}

func TestHarness_RoundTrip(t *testing.T) {
	payload := samplePayload(t)
	withUnknown := wire.AppendVarint(append([]byte(nil), payload...), uint64(wire.MakeTag(80, wire.WireVarint)))
	withUnknown = wire.AppendVarint(withUnknown, 7)

	for _, generated := range []bool{false, true} {
		h := newTestHarness(t, generated)
		name := "dynamic"
		if generated {
			name = "generated"
		}
		t.Run(name, func(t *testing.T) {
			for _, in := range [][]byte{payload, withUnknown} {
				resp := h.RunTest(binaryRequest(in, allTypes))
				out, ok := resp.Result.(*ConformanceResponse_ProtobufPayload)
				if !ok {
					t.Fatalf("expected a payload, got %#v", resp.Result)
				}
				if !bytes.Equal(out.ProtobufPayload.Bytes(), in) {
					t.Errorf("re-encoded bytes differ\n got %x\nwant %x", out.ProtobufPayload.Bytes(), in)
				}
			}
		})
	}
}

func TestHarness_Outcomes(t *testing.T) {
	payload := samplePayload(t)

	jsonOut := binaryRequest(payload, allTypes)
	jsonOut.RequestedOutputFormat = WireFormat_JSON

	jsonIn := &ConformanceRequest{
		Payload:               &ConformanceRequest_JsonPayload{JsonPayload: "{}"},
		RequestedOutputFormat: WireFormat_PROTOBUF,
		MessageType:           allTypes,
	}
	jsonCategory := binaryRequest(payload, allTypes)
	jsonCategory.TestCategory = TestCategory_JSON_TEST

	noPayload := binaryRequest(nil, allTypes)
	noPayload.Payload = nil

	tests := []struct {
		name    string
		req     *ConformanceRequest
		outcome string
		detail  string
	}{
		{"no message type", binaryRequest(payload, ""), metrics.OutcomeParseError, "no message type"},
		{"truncated", binaryRequest(payload[:len(payload)-1], allTypes), metrics.OutcomeParseError, "parse error"},
		{"unknown type", binaryRequest(payload, "protocore.test.Missing"), metrics.OutcomeRuntimeError, "not found"},
		{"skipped prefix", binaryRequest(payload, "protobuf_test_messages.editions.TestAllTypesEdition2023"), metrics.OutcomeSkipped, "skipped"},
		{"json output", jsonOut, metrics.OutcomeSkipped, "output format JSON"},
		{"json input", jsonIn, metrics.OutcomeSkipped, "only protobuf input"},
		{"json category", jsonCategory, metrics.OutcomeSkipped, "JSON not supported"},
		{"missing payload", noPayload, metrics.OutcomeParseError, "missing payload"},
		{"failure set", binaryRequest(nil, "conformance.FailureSet"), metrics.OutcomePayload, ""},
	}

	reg := prometheus.NewRegistry()
	m, err := metrics.NewHarness(reg)
	if err != nil {
		t.Fatal(err)
	}
	h := newTestHarness(t, false, WithMetrics(m), WithSkipPrefixes("protobuf_test_messages.editions."))

	want := map[string]float64{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := h.RunTest(tt.req)
			if got := outcomeOf(resp); got != tt.outcome {
				t.Fatalf("outcome = %s, want %s (%#v)", got, tt.outcome, resp.Result)
			}
			if detail := resultText(resp); !strings.Contains(detail, tt.detail) {
				t.Errorf("result %q does not mention %q", detail, tt.detail)
			}
		})
		want[tt.outcome]++
	}

	for outcome, n := range want {
		if got := testutil.ToFloat64(m.Outcome(outcome)); got != n {
			t.Errorf("%s counter = %v, want %v", outcome, got, n)
		}
	}
}

func TestHarness_PanicIsRuntimeError(t *testing.T) {
	h := NewHarness(nil)
	resp := h.RunTest(binaryRequest([]byte{0x08, 0x01}, allTypes))
	if _, ok := resp.Result.(*ConformanceResponse_RuntimeError); !ok {
		t.Fatalf("expected a runtime error, got %#v", resp.Result)
	}
}

func TestHarness_Serve(t *testing.T) {
	h := newTestHarness(t, true)
	payload := samplePayload(t)

	var in bytes.Buffer
	reqs := []*ConformanceRequest{
		binaryRequest(nil, "conformance.FailureSet"),
		binaryRequest(payload, allTypes),
		binaryRequest([]byte{0x0a}, allTypes),
	}
	for _, req := range reqs {
		b, err := wire.Marshal(req)
		if err != nil {
			t.Fatalf("Marshal request failed: %v", err)
		}
		if err := WriteFrame(&in, b, Limits{}); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	n, err := h.Serve(context.Background(), &in, &out)
	if err != nil {
		t.Fatalf("Serve failed: %v", err)
	}
	if n != len(reqs) {
		t.Errorf("served %d requests, want %d", n, len(reqs))
	}

	var results []string
	for {
		b, err := ReadFrame(&out, Limits{})
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadFrame failed: %v", err)
		}
		var resp ConformanceResponse
		if err := wire.Unmarshal(b, &resp); err != nil {
			t.Fatalf("Unmarshal response failed: %v", err)
		}
		results = append(results, outcomeOf(&resp))
	}
	want := []string{metrics.OutcomePayload, metrics.OutcomePayload, metrics.OutcomeParseError}
	if strings.Join(results, ",") != strings.Join(want, ",") {
		t.Errorf("outcomes = %v, want %v", results, want)
	}
}

func TestHarness_ServeStopsOnBrokenFrame(t *testing.T) {
	h := newTestHarness(t, false, WithLimits(Limits{MaxFrameBytes: 4}))
	in := bytes.NewReader([]byte{9, 0, 0, 0, 1, 2, 3})
	_, err := h.Serve(context.Background(), in, io.Discard)
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("expected ErrFrameTooLarge, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := h.Serve(ctx, bytes.NewReader(nil), io.Discard); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestHarness_Parallel(t *testing.T) {
	h := newTestHarness(t, false)
	payload := samplePayload(t)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			resp := h.RunTest(binaryRequest(payload, allTypes))
			out, ok := resp.Result.(*ConformanceResponse_ProtobufPayload)
			if !ok {
				return errors.New(resultText(resp))
			}
			if !bytes.Equal(out.ProtobufPayload.Bytes(), payload) {
				return errors.New("payload changed")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestConformanceRequest_WireRoundTrip(t *testing.T) {
	req := binaryRequest([]byte{1, 2, 3}, allTypes)
	req.PrintUnknownFields = true
	b, err := wire.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	var got ConformanceRequest
	if err := wire.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !wire.Equal(req, &got) {
		t.Errorf("got %+v, want %+v", &got, req)
	}
	if WireFormat(42).String() != "WireFormat(42)" || WireFormat_JSPB.String() != "JSPB" {
		t.Error("unexpected WireFormat names")
	}
}

func resultText(resp *ConformanceResponse) string {
	switch r := resp.Result.(type) {
	case *ConformanceResponse_ParseError:
		return r.ParseError
	case *ConformanceResponse_SerializeError:
		return r.SerializeError
	case *ConformanceResponse_RuntimeError:
		return r.RuntimeError
	case *ConformanceResponse_Skipped:
		return r.Skipped
	}
	return ""
}
