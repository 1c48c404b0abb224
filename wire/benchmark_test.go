package wire

import (
	"testing"
)

func BenchmarkMarshal(b *testing.B) {
	msg := fullSample()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Marshal(msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	data, err := Marshal(fullSample())
	if err != nil {
		b.Fatal(err)
	}
	msg := &sample{}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := Unmarshal(data, msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAppendVarint(b *testing.B) {
	buf := make([]byte, 0, 10)
	for i := 0; i < b.N; i++ {
		buf = AppendVarint(buf[:0], uint64(i)<<20)
	}
}
