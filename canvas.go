package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/playerbox/overlay"
)

// EbitenCanvas draws marker lines onto an ebiten image.
type EbitenCanvas struct {
	Screen    *ebiten.Image
	AntiAlias bool
}

func (c EbitenCanvas) DrawLine(from, to mgl64.Vec2, col overlay.Color, width float32) {
	if c.Screen == nil {
		return
	}
	vector.StrokeLine(c.Screen,
		float32(from.X()), float32(from.Y()),
		float32(to.X()), float32(to.Y()),
		width, col, c.AntiAlias)
}
