// Source: conformance/conformance.proto

package conformance

import (
	"strconv"

	"github.com/anirudhraja/protocore/buffer"
	"github.com/anirudhraja/protocore/wire"
)

type WireFormat int32

const (
	WireFormat_UNSPECIFIED WireFormat = 0
	WireFormat_PROTOBUF    WireFormat = 1
	WireFormat_JSON        WireFormat = 2
	WireFormat_JSPB        WireFormat = 3
	WireFormat_TEXT_FORMAT WireFormat = 4
)

var wireFormatNames = map[WireFormat]string{
	WireFormat_UNSPECIFIED: "UNSPECIFIED",
	WireFormat_PROTOBUF:    "PROTOBUF",
	WireFormat_JSON:        "JSON",
	WireFormat_JSPB:        "JSPB",
	WireFormat_TEXT_FORMAT: "TEXT_FORMAT",
}

func (x WireFormat) String() string {
	if s, ok := wireFormatNames[x]; ok {
		return s
	}
	return "WireFormat(" + strconv.Itoa(int(x)) + ")"
}

type TestCategory int32

const (
	TestCategory_UNSPECIFIED_TEST                 TestCategory = 0
	TestCategory_BINARY_TEST                      TestCategory = 1
	TestCategory_JSON_TEST                        TestCategory = 2
	TestCategory_JSON_IGNORE_UNKNOWN_PARSING_TEST TestCategory = 3
	TestCategory_JSPB_TEST                        TestCategory = 4
	TestCategory_TEXT_FORMAT_TEST                 TestCategory = 5
)

var (
	wireFormatCodec   = wire.EnumCodec[WireFormat]()
	testCategoryCodec = wire.EnumCodec[TestCategory]()
)

// FailureSet lists the tests expected to fail. The runner asks for it first,
// under the message type "conformance.FailureSet".
type FailureSet struct {
	Test []string

	unknownFields wire.UnknownFields
}

func (m *FailureSet) FullName() string { return "conformance.FailureSet" }

func (m *FailureSet) SizeWire(s *wire.Sizer) int {
	n := wire.SizeRepeated(s, 2, wire.StringCodec, m.Test)
	return n + m.unknownFields.Size()
}

func (m *FailureSet) MarshalWire(e *wire.Encoder) {
	wire.WriteRepeated(e, 2, wire.StringCodec, m.Test)
	e.EncodeUnknown(&m.unknownFields)
}

func (m *FailureSet) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 2:
		return true, wire.ReadRepeated(d, wt, wire.StringCodec, &m.Test)
	}
	return false, nil
}

func (m *FailureSet) UnknownFields() *wire.UnknownFields { return &m.unknownFields }

func (m *FailureSet) Reset() { *m = FailureSet{} }

// ConformanceRequest is one test case sent by the conformance runner.
type ConformanceRequest struct {
	// Types that are valid to be assigned to Payload:
	//
	//	*ConformanceRequest_ProtobufPayload
	//	*ConformanceRequest_JsonPayload
	//	*ConformanceRequest_JspbPayload
	//	*ConformanceRequest_TextPayload
	Payload               isConformanceRequest_Payload
	RequestedOutputFormat WireFormat
	MessageType           string
	TestCategory          TestCategory
	PrintUnknownFields    bool

	unknownFields wire.UnknownFields
}

type isConformanceRequest_Payload interface {
	isConformanceRequest_Payload()
}

type ConformanceRequest_ProtobufPayload struct {
	ProtobufPayload buffer.Slice
}

type ConformanceRequest_JsonPayload struct {
	JsonPayload string
}

type ConformanceRequest_JspbPayload struct {
	JspbPayload string
}

type ConformanceRequest_TextPayload struct {
	TextPayload string
}

func (*ConformanceRequest_ProtobufPayload) isConformanceRequest_Payload() {}
func (*ConformanceRequest_JsonPayload) isConformanceRequest_Payload()     {}
func (*ConformanceRequest_JspbPayload) isConformanceRequest_Payload()     {}
func (*ConformanceRequest_TextPayload) isConformanceRequest_Payload()     {}

func (m *ConformanceRequest) FullName() string { return "conformance.ConformanceRequest" }

func (m *ConformanceRequest) SizeWire(s *wire.Sizer) int {
	var n int
	switch p := m.Payload.(type) {
	case *ConformanceRequest_ProtobufPayload:
		n += wire.SizeField(s, 1, wire.BytesCodec, p.ProtobufPayload)
	case *ConformanceRequest_JsonPayload:
		n += wire.SizeField(s, 2, wire.StringCodec, p.JsonPayload)
	case *ConformanceRequest_JspbPayload:
		n += wire.SizeField(s, 7, wire.StringCodec, p.JspbPayload)
	case *ConformanceRequest_TextPayload:
		n += wire.SizeField(s, 8, wire.StringCodec, p.TextPayload)
	}
	n += wire.SizeImplicit(s, 3, wireFormatCodec, m.RequestedOutputFormat)
	n += wire.SizeImplicit(s, 4, wire.StringCodec, m.MessageType)
	n += wire.SizeImplicit(s, 5, testCategoryCodec, m.TestCategory)
	n += wire.SizeImplicit(s, 9, wire.BoolCodec, m.PrintUnknownFields)
	return n + m.unknownFields.Size()
}

func (m *ConformanceRequest) MarshalWire(e *wire.Encoder) {
	switch p := m.Payload.(type) {
	case *ConformanceRequest_ProtobufPayload:
		wire.WriteField(e, 1, wire.BytesCodec, p.ProtobufPayload)
	case *ConformanceRequest_JsonPayload:
		wire.WriteField(e, 2, wire.StringCodec, p.JsonPayload)
	case *ConformanceRequest_JspbPayload:
		wire.WriteField(e, 7, wire.StringCodec, p.JspbPayload)
	case *ConformanceRequest_TextPayload:
		wire.WriteField(e, 8, wire.StringCodec, p.TextPayload)
	}
	wire.WriteImplicit(e, 3, wireFormatCodec, m.RequestedOutputFormat)
	wire.WriteImplicit(e, 4, wire.StringCodec, m.MessageType)
	wire.WriteImplicit(e, 5, testCategoryCodec, m.TestCategory)
	wire.WriteImplicit(e, 9, wire.BoolCodec, m.PrintUnknownFields)
	e.EncodeUnknown(&m.unknownFields)
}

func (m *ConformanceRequest) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	switch num {
	case 1:
		v, err := wire.ReadField(d, wt, wire.BytesCodec)
		if err != nil {
			return true, err
		}
		m.Payload = &ConformanceRequest_ProtobufPayload{ProtobufPayload: v}
		return true, nil
	case 2:
		v, err := wire.ReadField(d, wt, wire.StringCodec)
		if err != nil {
			return true, err
		}
		m.Payload = &ConformanceRequest_JsonPayload{JsonPayload: v}
		return true, nil
	case 3:
		return true, wire.ReadInto(d, wt, wireFormatCodec, &m.RequestedOutputFormat)
	case 4:
		return true, wire.ReadInto(d, wt, wire.StringCodec, &m.MessageType)
	case 5:
		return true, wire.ReadInto(d, wt, testCategoryCodec, &m.TestCategory)
	case 7:
		v, err := wire.ReadField(d, wt, wire.StringCodec)
		if err != nil {
			return true, err
		}
		m.Payload = &ConformanceRequest_JspbPayload{JspbPayload: v}
		return true, nil
	case 8:
		v, err := wire.ReadField(d, wt, wire.StringCodec)
		if err != nil {
			return true, err
		}
		m.Payload = &ConformanceRequest_TextPayload{TextPayload: v}
		return true, nil
	case 9:
		return true, wire.ReadInto(d, wt, wire.BoolCodec, &m.PrintUnknownFields)
	}
	return false, nil
}

func (m *ConformanceRequest) UnknownFields() *wire.UnknownFields { return &m.unknownFields }

func (m *ConformanceRequest) Reset() { *m = ConformanceRequest{} }

// ConformanceResponse carries exactly one result.
type ConformanceResponse struct {
	// Types that are valid to be assigned to Result:
	//
	//	*ConformanceResponse_ParseError
	//	*ConformanceResponse_SerializeError
	//	*ConformanceResponse_TimeoutError
	//	*ConformanceResponse_RuntimeError
	//	*ConformanceResponse_ProtobufPayload
	//	*ConformanceResponse_JsonPayload
	//	*ConformanceResponse_Skipped
	//	*ConformanceResponse_TextPayload
	Result isConformanceResponse_Result

	unknownFields wire.UnknownFields
}

type isConformanceResponse_Result interface {
	isConformanceResponse_Result()
}

type ConformanceResponse_ParseError struct {
	ParseError string
}

type ConformanceResponse_SerializeError struct {
	SerializeError string
}

type ConformanceResponse_TimeoutError struct {
	TimeoutError string
}

type ConformanceResponse_RuntimeError struct {
	RuntimeError string
}

type ConformanceResponse_ProtobufPayload struct {
	ProtobufPayload buffer.Slice
}

type ConformanceResponse_JsonPayload struct {
	JsonPayload string
}

type ConformanceResponse_Skipped struct {
	Skipped string
}

type ConformanceResponse_TextPayload struct {
	TextPayload string
}

func (*ConformanceResponse_ParseError) isConformanceResponse_Result()      {}
func (*ConformanceResponse_SerializeError) isConformanceResponse_Result()  {}
func (*ConformanceResponse_TimeoutError) isConformanceResponse_Result()    {}
func (*ConformanceResponse_RuntimeError) isConformanceResponse_Result()    {}
func (*ConformanceResponse_ProtobufPayload) isConformanceResponse_Result() {}
func (*ConformanceResponse_JsonPayload) isConformanceResponse_Result()     {}
func (*ConformanceResponse_Skipped) isConformanceResponse_Result()         {}
func (*ConformanceResponse_TextPayload) isConformanceResponse_Result()     {}

func (m *ConformanceResponse) FullName() string { return "conformance.ConformanceResponse" }

func (m *ConformanceResponse) SizeWire(s *wire.Sizer) int {
	var n int
	switch r := m.Result.(type) {
	case *ConformanceResponse_ParseError:
		n += wire.SizeField(s, 1, wire.StringCodec, r.ParseError)
	case *ConformanceResponse_RuntimeError:
		n += wire.SizeField(s, 2, wire.StringCodec, r.RuntimeError)
	case *ConformanceResponse_ProtobufPayload:
		n += wire.SizeField(s, 3, wire.BytesCodec, r.ProtobufPayload)
	case *ConformanceResponse_JsonPayload:
		n += wire.SizeField(s, 4, wire.StringCodec, r.JsonPayload)
	case *ConformanceResponse_Skipped:
		n += wire.SizeField(s, 5, wire.StringCodec, r.Skipped)
	case *ConformanceResponse_SerializeError:
		n += wire.SizeField(s, 6, wire.StringCodec, r.SerializeError)
	case *ConformanceResponse_TextPayload:
		n += wire.SizeField(s, 8, wire.StringCodec, r.TextPayload)
	case *ConformanceResponse_TimeoutError:
		n += wire.SizeField(s, 9, wire.StringCodec, r.TimeoutError)
	}
	return n + m.unknownFields.Size()
}

func (m *ConformanceResponse) MarshalWire(e *wire.Encoder) {
	switch r := m.Result.(type) {
	case *ConformanceResponse_ParseError:
		wire.WriteField(e, 1, wire.StringCodec, r.ParseError)
	case *ConformanceResponse_RuntimeError:
		wire.WriteField(e, 2, wire.StringCodec, r.RuntimeError)
	case *ConformanceResponse_ProtobufPayload:
		wire.WriteField(e, 3, wire.BytesCodec, r.ProtobufPayload)
	case *ConformanceResponse_JsonPayload:
		wire.WriteField(e, 4, wire.StringCodec, r.JsonPayload)
	case *ConformanceResponse_Skipped:
		wire.WriteField(e, 5, wire.StringCodec, r.Skipped)
	case *ConformanceResponse_SerializeError:
		wire.WriteField(e, 6, wire.StringCodec, r.SerializeError)
	case *ConformanceResponse_TextPayload:
		wire.WriteField(e, 8, wire.StringCodec, r.TextPayload)
	case *ConformanceResponse_TimeoutError:
		wire.WriteField(e, 9, wire.StringCodec, r.TimeoutError)
	}
	e.EncodeUnknown(&m.unknownFields)
}

func (m *ConformanceResponse) UnmarshalWireField(d *wire.Decoder, num wire.FieldNumber, wt wire.WireType) (bool, error) {
	if num == 3 {
		v, err := wire.ReadField(d, wt, wire.BytesCodec)
		if err != nil {
			return true, err
		}
		m.Result = &ConformanceResponse_ProtobufPayload{ProtobufPayload: v}
		return true, nil
	}

	var wrap func(string) isConformanceResponse_Result
	switch num {
	case 1:
		wrap = func(s string) isConformanceResponse_Result { return &ConformanceResponse_ParseError{ParseError: s} }
	case 2:
		wrap = func(s string) isConformanceResponse_Result { return &ConformanceResponse_RuntimeError{RuntimeError: s} }
	case 4:
		wrap = func(s string) isConformanceResponse_Result { return &ConformanceResponse_JsonPayload{JsonPayload: s} }
	case 5:
		wrap = func(s string) isConformanceResponse_Result { return &ConformanceResponse_Skipped{Skipped: s} }
	case 6:
		wrap = func(s string) isConformanceResponse_Result { return &ConformanceResponse_SerializeError{SerializeError: s} }
	case 8:
		wrap = func(s string) isConformanceResponse_Result { return &ConformanceResponse_TextPayload{TextPayload: s} }
	case 9:
		wrap = func(s string) isConformanceResponse_Result { return &ConformanceResponse_TimeoutError{TimeoutError: s} }
	default:
		return false, nil
	}
	v, err := wire.ReadField(d, wt, wire.StringCodec)
	if err != nil {
		return true, err
	}
	m.Result = wrap(v)
	return true, nil
}

func (m *ConformanceResponse) UnknownFields() *wire.UnknownFields { return &m.unknownFields }

func (m *ConformanceResponse) Reset() { *m = ConformanceResponse{} }
