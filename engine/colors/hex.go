package colors

import (
	"fmt"
	"strconv"
	"strings"
)

// FromHex parses "#rrggbb" or "#rrggbbaa".
func FromHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	var c Color
	c[3] = 1
	for i := 0; i*2 < len(h); i++ {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		c[i] = float32(v) / 255
	}
	return c, nil
}

func (c Color) Hex() string {
	out := "#"
	for i := 0; i < 4; i++ {
		v := int(c[i]*255 + 0.5)
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		out += fmt.Sprintf("%02x", v)
	}
	return out
}

// UnmarshalText lets theme files write colors as hex strings.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := FromHex(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }
