package systems

import (
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
)

// Catalog indices used across tests
const (
	itemSword = iota
	itemAxe
	itemShield
	itemPotion
	itemRing
)

func testCatalog() *engine.Catalog {
	return engine.NewCatalog([]engine.ItemDef{
		{Glyph: '/', Name: "Sword", Damage: 4},
		{Glyph: 'P', Name: "Axe", Damage: 6},
		{Glyph: ']', Name: "Shield", Armor: 8},
		{Glyph: '!', Name: "Potion", Consumable: true, HP: 20},
		{Glyph: 'o', Name: "Ring", HP: 5},
	})
}

// countingPacer records pulses and the attacked marker seen at each
type countingPacer struct {
	world   *engine.World
	pulses  int
	markers []core.Point
}

func (p *countingPacer) Pulse() {
	p.pulses++
	if pos, ok := p.world.Attacked(); ok {
		p.markers = append(p.markers, pos)
	}
}

// scriptedChoices replays fixed enemy choices, then stands still
func scriptedChoices(choices ...int) func(int) int {
	i := 0
	return func(n int) int {
		if i >= len(choices) {
			return n - 1
		}
		c := choices[i]
		i++
		return c
	}
}

// wall surrounds pos with obstacles except at the listed offsets
func wall(w *engine.World, pos core.Point, open ...core.Point) {
	for _, d := range Directions {
		blocked := true
		for _, o := range open {
			if o == d {
				blocked = false
			}
		}
		if t := w.GetTileAt(pos.Add(d)); blocked && t.Type == engine.TileEmpty {
			t.Type = engine.TileObstacle
		}
	}
}
