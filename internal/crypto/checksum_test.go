package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum16(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint16
	}{
		{"empty", nil, 0},
		{"single word", []byte{0x34, 0x12}, 0x1234},
		{"two words", []byte{0x01, 0x00, 0x02, 0x01}, 0x0103},
		{"wraps", []byte{0xFF, 0xFF, 0x02, 0x00}, 0x0001},
		{"odd byte ignored", []byte{0x01, 0x00, 0xFF}, 0x0001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum16(tt.data))
		})
	}
}

func BenchmarkChecksum16(b *testing.B) {
	data := make([]byte, 0x140)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for range b.N {
		Checksum16(data)
	}
}
