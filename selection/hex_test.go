package selection

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ledcube/scene"
)

var sixHex = regexp.MustCompile(`^[0-9A-F]{6}$`)

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "0000FF", FormatHex(255))
	assert.Equal(t, "FFFFFF", FormatHex(16777215))
	assert.Equal(t, "000000", FormatHex(0))
	assert.Equal(t, "ABCDEF", FormatHex(0xabcdef))
}

func TestHexRoundTrip(t *testing.T) {
	// Stride through the 24-bit space plus every single-channel value
	var values []scene.Color
	for c := uint32(0); c <= scene.ColorMask; c += 0x010307 {
		values = append(values, scene.Color(c))
	}
	for i := uint32(0); i < 256; i++ {
		values = append(values, scene.Color(i), scene.Color(i<<8), scene.Color(i<<16))
	}
	values = append(values, scene.ColorMask)

	for _, c := range values {
		s := FormatHex(c)
		require.Regexp(t, sixHex, s)
		got, err := ParseHex(s)
		require.NoError(t, err)
		require.Equal(t, c, got, "round trip of %s", s)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    scene.Color
		wantErr bool
	}{
		{"FF0000", 0xFF0000, false},
		{"ff0000", 0xFF0000, false},
		{"  00ff00 ", 0x00FF00, false},
		{"0x0000FF", 0x0000FF, false},
		{"F", 0x00000F, false},
		{"12zz", 0x000012, false},
		{"1FFFFFF", 0xFFFFFF, false},
		{"ABCDEF012345", 0x012345, false},
		{"", 0, true},
		{"zz", 0, true},
		{"-FF", 0, true},
		{"0x", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidColor, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
