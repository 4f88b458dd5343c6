package systems

import (
	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/core"
)

// Camera tracks the viewport centre and drives chunk prefetch
type Camera struct {
	Position core.Point
	Canvas   core.Point
}

// Center snaps the camera onto pos
func (c *Camera) Center(pos core.Point) {
	c.Position = pos
}

// Resize records a new canvas size
func (c *Camera) Resize(w, h int) {
	c.Canvas = core.Pt(w, h)
}

// Update drifts the camera one step toward the player when the player strays
// beyond 3/4 of the half-canvas on an axis, then prefetches visible chunks
func (c *Camera) Update(player core.Point, gen *Generator) {
	d := player.Sub(c.Position)
	limit := c.Canvas.Div(2).Scale(constants.CameraDriftNum).Div(constants.CameraDriftDen)
	step := d.Sign()
	a := d.Abs()
	if a.X >= limit.X {
		c.Position.X += step.X
	}
	if a.Y >= limit.Y {
		c.Position.Y += step.Y
	}
	c.Prefetch(gen)
}

// Prefetch generates every chunk overlapping the view plus a margin ring
// Safe to repeat; generation is idempotent
func (c *Camera) Prefetch(gen *Generator) {
	if gen == nil {
		return
	}
	min, max := c.ChunkBounds(gen.world.Chunks.ChunkSize())
	gen.GenerateRange(min, max)
}

// ChunkBounds returns the inclusive chunk range covered by Prefetch
func (c *Camera) ChunkBounds(chunkSize int) (core.Point, core.Point) {
	margin := core.Pt(constants.CameraPrefetchMargin, constants.CameraPrefetchMargin)
	min := c.Position.Sub(c.Canvas).Div(chunkSize).Sub(margin)
	max := c.Position.Add(c.Canvas).Div(chunkSize).Add(margin)
	return min, max
}
