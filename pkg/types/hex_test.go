package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyHex(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, "<>"},
		{"single", []byte{0x0a}, "<0a>"},
		{"pair", []byte{0xde, 0xad}, "<de:ad>"},
		{"lowercase", []byte{0xAB, 0xCD, 0xEF}, "<ab:cd:ef>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrettyHex(tt.in))
		})
	}
}

func TestPrettyHex_Deterministic(t *testing.T) {
	fp := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0x10, 0x32, 0x54, 0x76, 0x98, 0xba, 0xdc, 0xfe}
	first := PrettyHex(fp)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, PrettyHex(append([]byte(nil), fp...)))
	}
	assert.Equal(t, "<01:23:45:67:89:ab:cd:ef:10:32:54:76:98:ba:dc:fe>", first)
}
