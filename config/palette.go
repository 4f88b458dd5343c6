package config

import (
	"github.com/lixenwraith/vi-rogue/engine"
)

// ElevationBuckets is the number of elevation glyphs, for elevation -1, 0, 1, 2
const ElevationBuckets = 4

// Palette maps tile content and terrain height to display glyphs
type Palette struct {
	Tiles     [engine.TileTypeCount]rune
	Elevation [ElevationBuckets]rune
}

// DefaultPalette returns the built-in glyph set
func DefaultPalette() Palette {
	return Palette{
		Tiles: [engine.TileTypeCount]rune{
			engine.TileEmpty:    ' ',
			engine.TileFriendly: '@',
			engine.TileEnemy:    'E',
			engine.TileObstacle: '#',
			engine.TileTree:     'T',
			engine.TileMountain: '^',
			engine.TileItem:     '?',
			engine.TileWater:    '~',
		},
		Elevation: [ElevationBuckets]rune{'.', ',', '"', '^'},
	}
}

// TileGlyph returns the glyph for a tile type
func (p *Palette) TileGlyph(t engine.TileType) rune {
	if t < engine.TileTypeCount {
		return p.Tiles[t]
	}
	return ' '
}

// ElevationGlyph returns the glyph for an empty tile at elevation e
// Elevations below the first bucket fall back to the water glyph
func (p *Palette) ElevationGlyph(e int) rune {
	i := e + 1
	if i < 0 {
		return p.Tiles[engine.TileWater]
	}
	if i >= ElevationBuckets {
		i = ElevationBuckets - 1
	}
	return p.Elevation[i]
}
