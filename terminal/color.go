package terminal

import "fmt"

// RGB represents a 24-bit color
// The zero value doubles as "unset" in style patching
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// IsZero reports whether the color is the zero (unset) value
func (c RGB) IsZero() bool {
	return c == RGB{}
}

// Hex returns the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
