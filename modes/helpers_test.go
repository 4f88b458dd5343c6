package modes

import (
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
)

// Default catalog indices
const (
	itemSword  = 0
	itemAxe    = 1
	itemPotion = 5
)

func newTestContext(t *testing.T) (*GameContext, *InputHandler) {
	t.Helper()
	ctx := NewGameContext(Options{
		Config:    config.Default(),
		SavesDir:  t.TempDir(),
		EnemyRand: rand.New(rand.NewPCG(1, 1)),
	})
	ctx.Resize(80, 25)
	return ctx, NewInputHandler(ctx)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func press(h *InputHandler, evs ...tcell.Event) bool {
	ok := true
	for _, ev := range evs {
		ok = h.HandleEvent(ev)
	}
	return ok
}

func typeText(h *InputHandler, s string) {
	for _, r := range s {
		h.HandleEvent(runeKey(r))
	}
}

// clearTile empties pos, retiring anything standing there
func clearTile(w *engine.World, pos core.Point) *engine.Tile {
	tile := w.GetTileAt(pos)
	if tile.Obj != engine.NoEntity {
		w.RetireEntity(tile.Obj)
	}
	tile.Clear()
	return tile
}

// enemyPositions snapshots every live non-player actor
func enemyPositions(w *engine.World) map[engine.EntityID]core.Point {
	out := map[engine.EntityID]core.Point{}
	w.Entities.ForEachLive(func(id engine.EntityID, e *engine.Entity) bool {
		if id != w.PlayerID() && e.Kind == engine.KindActor {
			out[id] = e.Position
		}
		return true
	})
	return out
}
