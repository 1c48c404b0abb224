package testpb_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	gdescpb "google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
	ganypb "google.golang.org/protobuf/types/known/anypb"

	"github.com/anirudhraja/protocore/anypb"
	"github.com/anirudhraja/protocore/buffer"
	"github.com/anirudhraja/protocore/convert"
	"github.com/anirudhraja/protocore/internal/testpb"
	"github.com/anirudhraja/protocore/schema"
	"github.com/anirudhraja/protocore/wire"
)

func int32Ptr(v int32) *int32 { return &v }
func stringPtr(v string) *string { return &v }

func fullMessage(t *testing.T) *testpb.TestAllTypes {
	t.Helper()
	payload, err := anypb.Pack(&testpb.VersionOne{Id: 9, Name: "packed"})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	return &testpb.TestAllTypes{
		FInt32:    -1,
		FInt64:    1 << 40,
		FUint32:   4000000000,
		FUint64:   1<<64 - 1,
		FSint32:   -64,
		FSint64:   -1 << 50,
		FFixed32:  7,
		FFixed64:  1 << 63,
		FSfixed32: -2,
		FSfixed64: -3,
		FFloat:    1.5,
		FDouble:   -2.25,
		FBool:     true,
		FString:   "héllo",
		FBytes:    buffer.SliceOf([]byte{0, 1, 2}),
		FColor:    testpb.Color_COLOR_BLUE,
		FNested:   &testpb.TestAllTypes_Nested{A: 1, Note: "n"},
		FImported: &testpb.ImportedMessage{Value: 5, Label: "imp"},
		OInt32:    int32Ptr(0),
		OString:   stringPtr(""),

		RInt32:         []int32{1, -1, 300},
		RSint64:        []int64{-5, 5},
		RFixed32:       []uint32{1, 2},
		RDouble:        []float64{0.5, -0.5},
		RBool:          []bool{true, false, true},
		RColor:         []testpb.Color{testpb.Color_COLOR_RED, 42},
		RInt64Unpacked: []int64{10, -10},
		RString:        []string{"a", ""},
		RBytes:         []buffer.Slice{buffer.SliceOf([]byte("x")), {}},
		RNested:        []*testpb.TestAllTypes_Nested{{A: 2}, {}},

		MStringInt32:  map[string]int32{"b": 2, "a": 1, "": 0},
		MInt64String:  map[int64]string{-1: "neg", 1: "pos"},
		MStringNested: map[string]*testpb.TestAllTypes_Nested{"k": {A: 3}, "empty": {}},
		MUint32Bytes:  map[uint32]buffer.Slice{7: buffer.SliceOf([]byte{0xff})},

		Choice:  &testpb.TestAllTypes_CString{CString: "chosen"},
		Id:      uuid.MustParse("5f0c4a8e-2b1d-4c3e-9f6a-7b8c9d0e1f2a"),
		Payload: payload,
	}
}

func TestTestAllTypes_RoundTrip(t *testing.T) {
	m := fullMessage(t)
	b, err := wire.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(b) != wire.Size(m) {
		t.Errorf("Size reported %d, Marshal wrote %d", wire.Size(m), len(b))
	}

	got, err := wire.Decode[testpb.TestAllTypes](b)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !wire.Equal(got, m) {
		t.Fatalf("round trip changed the message")
	}
	if got.OInt32 == nil || *got.OInt32 != 0 || got.OString == nil {
		t.Errorf("explicit-presence defaults should survive, got %v %v", got.OInt32, got.OString)
	}
	if got.Id != m.Id {
		t.Errorf("got id %s, want %s", got.Id, m.Id)
	}
	if got.RColor[1] != 42 {
		t.Errorf("unrecognized enum number should be kept, got %d", got.RColor[1])
	}
	inner, err := anypb.Unpack[testpb.VersionOne](got.Payload)
	if err != nil || inner.Name != "packed" {
		t.Errorf("Unpack gave %+v (%v)", inner, err)
	}
	if len(got.MStringNested) != 2 || got.MStringNested["empty"] == nil {
		t.Errorf("empty map message value should decode as an empty message, got %v", got.MStringNested)
	}
}

func TestTestAllTypes_EmptyEncodesToNothing(t *testing.T) {
	m := &testpb.TestAllTypes{
		FFloat: 0,
		RInt32: []int32{},
		Id:     uuid.Nil,
	}
	b, err := wire.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(b) != 0 {
		t.Errorf("expected no bytes, got %x", b)
	}
}

func TestTestAllTypes_OneofLastWins(t *testing.T) {
	var b []byte
	b = wire.AppendVarint(b, uint64(wire.MakeTag(61, wire.WireVarint)))
	b = wire.AppendVarint(b, 5)
	b = wire.AppendVarint(b, uint64(wire.MakeTag(62, wire.WireBytes)))
	b = wire.AppendVarint(b, 1)
	b = append(b, 'z')

	var m testpb.TestAllTypes
	if err := wire.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if m.GetCString() != "z" || m.GetCUint32() != 0 {
		t.Errorf("expected c_string to win, got %#v", m.Choice)
	}
}

func TestTestAllTypes_BadConverterInputFailsDecode(t *testing.T) {
	var b []byte
	b = wire.AppendVarint(b, uint64(wire.MakeTag(70, wire.WireBytes)))
	b = wire.AppendVarint(b, 3)
	b = append(b, 1, 2, 3)

	var m testpb.TestAllTypes
	err := wire.Unmarshal(b, &m)
	if !errors.Is(err, convert.ErrConversion) {
		t.Fatalf("expected ErrConversion, got %v", err)
	}
}

func TestVersionSkew_UnknownFieldsSurvive(t *testing.T) {
	v2 := &testpb.VersionTwo{Id: 1, Name: "n", Tags: []string{"x", "y"}, Revision: -7}
	b2, err := wire.Marshal(v2)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var v1 testpb.VersionOne
	if err := wire.Unmarshal(b2, &v1); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if v1.Id != 1 || v1.Name != "n" {
		t.Errorf("known fields lost: %+v", v1)
	}
	if got := v1.UnknownFields().Len(); got != 3 {
		t.Errorf("expected 3 unknown fields, got %d", got)
	}

	b1, err := wire.Marshal(&v1)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Errorf("re-encoding changed bytes:\n got %x\nwant %x", b1, b2)
	}

	back, err := wire.Decode[testpb.VersionTwo](b1)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !wire.Equal(back, v2) {
		t.Errorf("got %+v, want %+v", back, v2)
	}
}

func TestDescriptors(t *testing.T) {
	fd, err := testpb.File_protocore_test_test_types_proto.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if fd.Package() != "protocore.test" || fd.Syntax() != schema.SyntaxProto3 {
		t.Fatalf("unexpected file %s (%s)", fd.Package(), fd.Syntax())
	}
	if deps := fd.Dependencies(); len(deps) != 2 || deps[1].Path() != "google/protobuf/any.proto" {
		t.Fatalf("unexpected dependencies %v", deps)
	}

	md := (*testpb.TestAllTypes)(nil).Descriptor()
	tests := []struct {
		name     string
		kind     schema.Kind
		packed   bool
		presence bool
		isMap    bool
		oneof    string
	}{
		{"f_int32", schema.KindInt32, false, false, false, ""},
		{"f_color", schema.KindEnum, false, false, false, ""},
		{"f_nested", schema.KindMessage, false, true, false, ""},
		{"o_int32", schema.KindInt32, false, true, false, "_o_int32"},
		{"r_sint64", schema.KindSint64, true, false, false, ""},
		{"r_color", schema.KindEnum, true, false, false, ""},
		{"r_int64_unpacked", schema.KindInt64, false, false, false, ""},
		{"r_string", schema.KindString, false, false, false, ""},
		{"m_string_nested", schema.KindMessage, false, false, true, ""},
		{"c_string", schema.KindString, false, true, false, "choice"},
		{"payload", schema.KindMessage, false, true, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := md.FieldByName(tt.name)
			if f == nil {
				t.Fatalf("field %s not found", tt.name)
			}
			if f.Kind() != tt.kind || f.IsPacked() != tt.packed || f.HasPresence() != tt.presence || f.IsMap() != tt.isMap {
				t.Errorf("got kind=%s packed=%v presence=%v map=%v", f.Kind(), f.IsPacked(), f.HasPresence(), f.IsMap())
			}
			var oneof string
			if o := f.Oneof(); o != nil {
				oneof = o.Name()
			}
			if oneof != tt.oneof {
				t.Errorf("got oneof %q, want %q", oneof, tt.oneof)
			}
		})
	}

	if got := md.FieldByName("f_imported").Message().FullName(); got != "protocore.test.imported.ImportedMessage" {
		t.Errorf("f_imported resolved to %s", got)
	}
	if got := md.FieldByName("payload").Message(); got != (*anypb.Any)(nil).Descriptor() {
		t.Errorf("payload should resolve to the shared Any descriptor, got %v", got)
	}
	if !md.IsReserved(95) || md.IsReserved(100) {
		t.Error("reserved range 90-99 not honored")
	}
	if got := md.FieldByName("m_uint32_bytes").MapKey().Kind(); got != schema.KindUint32 {
		t.Errorf("map key kind %s", got)
	}
}

// referenceFile builds the reference runtime's view of the embedded
// descriptors.
func referenceFile(t *testing.T) protoreflect.FileDescriptor {
	t.Helper()
	files := new(protoregistry.Files)
	if err := files.RegisterFile(ganypb.File_google_protobuf_any_proto); err != nil {
		t.Fatalf("RegisterFile failed: %v", err)
	}
	var fd protoreflect.FileDescriptor
	for _, l := range []*schema.LazyFile{testpb.File_protocore_test_test_import_proto, testpb.File_protocore_test_test_types_proto} {
		fdp := new(gdescpb.FileDescriptorProto)
		if err := proto.Unmarshal([]byte(l.Raw), fdp); err != nil {
			t.Fatalf("reference unmarshal of descriptor failed: %v", err)
		}
		var err error
		fd, err = protodesc.NewFile(fdp, files)
		if err != nil {
			t.Fatalf("reference rejected descriptor %s: %v", fdp.GetName(), err)
		}
		if err := files.RegisterFile(fd); err != nil {
			t.Fatalf("RegisterFile failed: %v", err)
		}
	}
	return fd
}

func TestTestAllTypes_InteropWithReference(t *testing.T) {
	fd := referenceFile(t)
	ours, err := wire.Marshal(fullMessage(t))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	ref := dynamicpb.NewMessage(fd.Messages().ByName("TestAllTypes"))
	if err := proto.Unmarshal(ours, ref); err != nil {
		t.Fatalf("reference unmarshal failed: %v", err)
	}
	if n := len(ref.GetUnknown()); n != 0 {
		t.Errorf("reference saw %d unknown bytes", n)
	}
	fields := ref.Descriptor().Fields()
	if got := ref.Get(fields.ByName("f_sint64")).Int(); got != -1<<50 {
		t.Errorf("reference read f_sint64 = %d", got)
	}
	if got := ref.Get(fields.ByName("c_string")).String(); got != "chosen" {
		t.Errorf("reference read c_string = %q", got)
	}
	if !ref.Has(fields.ByName("o_int32")) {
		t.Error("reference lost explicit presence of o_int32")
	}

	theirs, err := proto.MarshalOptions{Deterministic: true}.Marshal(ref)
	if err != nil {
		t.Fatalf("reference marshal failed: %v", err)
	}
	if !bytes.Equal(ours, theirs) {
		t.Errorf("encodings differ:\n ours %x\ntheirs %x", ours, theirs)
	}
}
