package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anirudhraja/protocore/buffer"
	"github.com/anirudhraja/protocore/conformance"
	"github.com/anirudhraja/protocore/wire"
)

const shopProto = `syntax = "proto3";
package shop;

enum State {
  STATE_UNKNOWN = 0;
  STATE_OPEN = 1;
}

message Item {
  uint32 id = 1;
  string name = 2;
  bytes tag = 3;
  repeated int32 sizes = 4;
  map<string, int32> stock = 5;
  State state = 6;
}

service Shop {
  rpc Watch(Item) returns (stream Item);
}
`

func writeSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shop.proto")
	if err := os.WriteFile(path, []byte(shopProto), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(bytes.NewReader(stdin), &out).Run(append([]string{"protocore"}, args...))
	return out.String(), err
}

func TestInspect(t *testing.T) {
	out, err := run(t, []byte("08 96 01\n12 05 68656c6c6f"), "inspect", "--hex")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if want := "1 varint(150)\n2 bytes(5)\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}

	if _, err := run(t, []byte("zz"), "inspect", "--hex"); err == nil {
		t.Error("expected an error for bad hex")
	}
	if _, err := run(t, []byte{0x0a, 0x05}, "inspect"); err == nil {
		t.Error("expected an error for a truncated payload")
	}
}

func TestDescribe(t *testing.T) {
	schemaPath := writeSchema(t)

	out, err := run(t, nil, "--schema", schemaPath, "describe")
	if err != nil {
		t.Fatalf("describe failed: %v", err)
	}
	for _, want := range []string{"message shop.Item\n", "enum shop.State\n", "service shop.Shop\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}

	tests := []struct {
		name string
		want []string
	}{
		{"shop.Item", []string{"  1 id uint32\n", "  4 sizes repeated int32 [packed]\n", "  5 stock map<string, int32>\n", "  6 state shop.State\n"}},
		{"State", []string{"enum shop.State\n", "  1 STATE_OPEN\n"}},
		{"shop.Shop", []string{"  rpc Watch(shop.Item) returns (stream shop.Item)\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, nil, "--schema", schemaPath, "describe", tt.name)
			if err != nil {
				t.Fatalf("describe failed: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}

	if _, err := run(t, nil, "--schema", schemaPath, "describe", "shop.Missing"); err == nil {
		t.Error("expected an error for an unknown name")
	}
}

func TestDecode(t *testing.T) {
	schemaPath := writeSchema(t)

	var b []byte
	b = wire.AppendVarint(b, uint64(wire.MakeTag(1, wire.WireVarint)))
	b = wire.AppendVarint(b, 7)
	b = wire.AppendVarint(b, uint64(wire.MakeTag(2, wire.WireBytes)))
	b = wire.AppendVarint(b, 3)
	b = append(b, "hat"...)
	b = wire.AppendVarint(b, uint64(wire.MakeTag(3, wire.WireBytes)))
	b = wire.AppendVarint(b, 1)
	b = append(b, 0xff)
	b = wire.AppendVarint(b, uint64(wire.MakeTag(6, wire.WireVarint)))
	b = wire.AppendVarint(b, 1)

	payload := filepath.Join(t.TempDir(), "item.bin")
	if err := os.WriteFile(payload, b, 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, nil, "--schema", schemaPath, "decode", "--type", "shop.Item", payload)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for _, want := range []string{"id: 7\n", "name: hat\n", "/w==", "state: STATE_OPEN\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := run(t, b, "--schema", schemaPath, "decode", "shop.Item"); err == nil || !strings.Contains(err.Error(), "--type") {
		t.Errorf("expected a missing --type error, got %v", err)
	}
	if _, err := run(t, b, "--schema", schemaPath, "decode", "--type", "shop.Nope"); err == nil {
		t.Error("expected an error for an unknown type")
	}
}

func TestConformance(t *testing.T) {
	schemaPath := writeSchema(t)

	var in bytes.Buffer
	req, err := wire.Marshal(&conformance.ConformanceRequest{
		Payload:               &conformance.ConformanceRequest_ProtobufPayload{ProtobufPayload: buffer.SliceOf([]byte{0x08, 0x07})},
		RequestedOutputFormat: conformance.WireFormat_PROTOBUF,
		MessageType:           "shop.Item",
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := conformance.WriteFrame(&in, req, conformance.Limits{}); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, in.Bytes(), "--schema", schemaPath, "conformance")
	if err != nil {
		t.Fatalf("conformance failed: %v", err)
	}

	frame, err := conformance.ReadFrame(strings.NewReader(out), conformance.Limits{})
	if err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}
	var resp conformance.ConformanceResponse
	if err := wire.Unmarshal(frame, &resp); err != nil {
		t.Fatal(err)
	}
	got, ok := resp.Result.(*conformance.ConformanceResponse_ProtobufPayload)
	if !ok || !bytes.Equal(got.ProtobufPayload.Bytes(), []byte{0x08, 0x07}) {
		t.Errorf("unexpected response %#v", resp.Result)
	}
}
