// Package conformance implements the test-runner side of the protobuf
// conformance protocol: length-prefixed ConformanceRequest frames in,
// ConformanceResponse frames out.
package conformance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/anirudhraja/protocore"
	"github.com/anirudhraja/protocore/buffer"
	"github.com/anirudhraja/protocore/internal/metrics"
	"github.com/anirudhraja/protocore/schema"
	"github.com/anirudhraja/protocore/wire"
)

const failureSetType = "conformance.FailureSet"

type Harness struct {
	pc      *protocore.Protocore
	log     zerolog.Logger
	metrics *metrics.Harness

	Limits Limits
	// SkipPrefixes lists message type prefixes answered with "skipped".
	SkipPrefixes []string
}

type HarnessOption func(*Harness)

func WithLogger(l zerolog.Logger) HarnessOption {
	return func(h *Harness) { h.log = l }
}

// WithMetrics records one outcome per request. A nil m records nothing.
func WithMetrics(m *metrics.Harness) HarnessOption {
	return func(h *Harness) { h.metrics = m }
}

func WithLimits(l Limits) HarnessOption {
	return func(h *Harness) { h.Limits = l }
}

func WithSkipPrefixes(prefixes ...string) HarnessOption {
	return func(h *Harness) { h.SkipPrefixes = append(h.SkipPrefixes, prefixes...) }
}

func NewHarness(pc *protocore.Protocore, opts ...HarnessOption) *Harness {
	h := &Harness{pc: pc, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Serve answers requests from r on w until r is exhausted or ctx is done.
// It returns the number of requests served.
func (h *Harness) Serve(ctx context.Context, r io.Reader, w io.Writer) (int, error) {
	for n := 0; ; n++ {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		done, err := h.ServeRequest(r, w)
		if err != nil {
			return n, err
		}
		if done {
			h.log.Info().Int("tests", n).Msg("received EOF")
			return n, nil
		}
	}
}

// ServeRequest reads one request and writes its response. It reports done
// when r ended before a new frame.
func (h *Harness) ServeRequest(r io.Reader, w io.Writer) (bool, error) {
	in, err := ReadFrame(r, h.Limits)
	if err == io.EOF {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	h.metrics.ObserveFrame(len(in))

	var req ConformanceRequest
	if err := wire.Unmarshal(in, &req); err != nil {
		return false, fmt.Errorf("parse ConformanceRequest: %w", err)
	}

	resp := h.RunTest(&req)
	out, err := wire.Marshal(resp)
	if err != nil {
		return false, fmt.Errorf("marshal response: %w", err)
	}
	if err := WriteFrame(w, out, h.Limits); err != nil {
		return false, err
	}
	return false, nil
}

// RunTest computes the response for one request. It never fails: every
// problem becomes one of the response's error results.
func (h *Harness) RunTest(req *ConformanceRequest) (resp *ConformanceResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = &ConformanceResponse{Result: &ConformanceResponse_RuntimeError{
				RuntimeError: fmt.Sprintf("panic: %v", r),
			}}
		}
		h.metrics.IncrementOutcome(outcomeOf(resp))
		h.log.Debug().
			Str("message_type", req.MessageType).
			Str("output", req.RequestedOutputFormat.String()).
			Str("outcome", outcomeOf(resp)).
			Msg("conformance test")
	}()
	return h.runTest(req)
}

func (h *Harness) runTest(req *ConformanceRequest) *ConformanceResponse {
	if req.MessageType == "" {
		return parseError("no message type provided")
	}
	if req.MessageType == failureSetType {
		// No expected failures.
		return &ConformanceResponse{Result: &ConformanceResponse_ProtobufPayload{}}
	}
	for _, prefix := range h.SkipPrefixes {
		if strings.HasPrefix(req.MessageType, prefix) {
			return skipped("message type " + req.MessageType + " is skipped")
		}
	}
	switch req.TestCategory {
	case TestCategory_JSON_TEST, TestCategory_JSON_IGNORE_UNKNOWN_PARSING_TEST:
		return skipped("JSON not supported")
	case TestCategory_JSPB_TEST:
		return skipped("JSPB not supported")
	case TestCategory_TEXT_FORMAT_TEST:
		return skipped("text format not supported")
	}

	payload, ok := req.Payload.(*ConformanceRequest_ProtobufPayload)
	if !ok {
		if req.Payload == nil {
			return parseError("unknown or missing payload type")
		}
		return skipped("only protobuf input is supported")
	}
	if req.RequestedOutputFormat != WireFormat_PROTOBUF {
		return skipped(fmt.Sprintf("output format %v not supported", req.RequestedOutputFormat))
	}

	msg, err := h.pc.Decode(payload.ProtobufPayload.Bytes(), req.MessageType)
	if err != nil {
		if errors.Is(err, schema.ErrNotFound) {
			return &ConformanceResponse{Result: &ConformanceResponse_RuntimeError{RuntimeError: err.Error()}}
		}
		return parseError(fmt.Sprintf("parse error: %v", err))
	}
	out, err := wire.Marshal(msg)
	if err != nil {
		return &ConformanceResponse{Result: &ConformanceResponse_SerializeError{
			SerializeError: fmt.Sprintf("serialize error: %v", err),
		}}
	}
	return &ConformanceResponse{Result: &ConformanceResponse_ProtobufPayload{ProtobufPayload: buffer.SliceOf(out)}}
}

func parseError(msg string) *ConformanceResponse {
	return &ConformanceResponse{Result: &ConformanceResponse_ParseError{ParseError: msg}}
}

func skipped(msg string) *ConformanceResponse {
	return &ConformanceResponse{Result: &ConformanceResponse_Skipped{Skipped: msg}}
}

func outcomeOf(resp *ConformanceResponse) string {
	if resp == nil {
		return metrics.OutcomeRuntimeError
	}
	switch resp.Result.(type) {
	case *ConformanceResponse_ProtobufPayload, *ConformanceResponse_JsonPayload, *ConformanceResponse_TextPayload:
		return metrics.OutcomePayload
	case *ConformanceResponse_ParseError:
		return metrics.OutcomeParseError
	case *ConformanceResponse_SerializeError:
		return metrics.OutcomeSerializeError
	case *ConformanceResponse_Skipped:
		return metrics.OutcomeSkipped
	}
	return metrics.OutcomeRuntimeError
}
