package overlay

import (
	"fmt"

	"github.com/milk9111/playerbox/common"
)

// Color is a packed 32-bit color in draw-list order: alpha in the top byte,
// then blue, green, and red in the low byte (0xAABBGGRR).
type Color uint32

const (
	TankColor   Color = 0xFFFF3333
	MeleeColor  Color = 0xFF0000FF
	RangedColor Color = 0xFF0000FF
	HealerColor Color = 0xFF00FF00
)

// brightnessFullDistance is the distance past which markers are never dimmed.
const brightnessFullDistance = 10.0

// NewColor packs 8-bit channels.
func NewColor(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

func (c Color) R() uint8 { return uint8(c) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c >> 16) }
func (c Color) A() uint8 { return uint8(c >> 24) }

// RGBA implements color.Color. Channels are treated as straight alpha and
// premultiplied on the way out.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A())
	r = uint32(c.R()) * a / 0xff
	g = uint32(c.G()) * a / 0xff
	b = uint32(c.B()) * a / 0xff
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

func (c Color) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// BaseColor returns the undimmed marker color for a role.
func BaseColor(r Role) Color {
	switch r {
	case Tank:
		return TankColor
	case MeleeDPS:
		return MeleeColor
	case RangedDPS:
		return RangedColor
	default:
		return HealerColor
	}
}

// Brightness returns the 0-255 dimming factor for a marker at distance d.
// Both clamp bounds are 255, so close markers are never actually dimmed.
func Brightness(d float64) uint8 {
	if d > brightnessFullDistance {
		return 255
	}
	return uint8(common.Clamp(255*d/brightnessFullDistance, 255, 255))
}

// Scale multiplies the RGB channels by brightness/255. Alpha is kept.
func (c Color) Scale(brightness uint8) Color {
	scale := func(ch uint8) uint8 {
		return uint8(uint32(ch) * uint32(brightness) / 255)
	}
	return NewColor(scale(c.R()), scale(c.G()), scale(c.B()), c.A())
}

// MarkerColor is the final color for a role seen from distance d.
func MarkerColor(r Role, d float64) Color {
	return BaseColor(r).Scale(Brightness(d))
}
