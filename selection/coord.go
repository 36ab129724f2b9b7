package selection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/ledcube/cube"
)

// ParseCoordinate converts field text into an axis index in [0, size)
func ParseCoordinate(s string, size int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", cube.ErrInvalidCoordinate, s)
	}
	if v < 0 || v >= size {
		return 0, fmt.Errorf("%w: %d outside [0, %d)", cube.ErrInvalidCoordinate, v, size)
	}
	return v, nil
}
