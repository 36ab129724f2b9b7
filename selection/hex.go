package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/ledcube/scene"
)

// ErrInvalidColor is returned when a color string has no leading hex digits
var ErrInvalidColor = errors.New("invalid color")

// FormatHex renders a color as exactly six uppercase hex digits
func FormatHex(c scene.Color) string {
	return fmt.Sprintf("%06X", c.Hex())
}

// ParseHex reads a base-16 color
// Surrounding whitespace and a 0x prefix are accepted, parsing stops at the
// first non-hex rune, and the value is truncated to 24 bits
func ParseHex(s string) (scene.Color, error) {
	digits := strings.TrimSpace(s)
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}

	end := 0
	for end < len(digits) && isHexDigit(digits[end]) {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	// Only the low 24 bits survive, so longer runs keep their last six digits
	digits = digits[:end]
	if len(digits) > 6 {
		digits = digits[len(digits)-6:]
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}

	var c scene.Color
	c.SetHex(uint32(v))
	return c, nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
