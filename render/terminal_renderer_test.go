package render

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/modes"
)

const (
	screenW = 80
	screenH = 25
)

func newTestRenderer(t *testing.T) (tcell.SimulationScreen, *Renderer, *modes.GameContext) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(screenW, screenH)

	cfg := config.Default()
	ctx := modes.NewGameContext(modes.Options{
		Config:    cfg,
		SavesDir:  t.TempDir(),
		EnemyRand: rand.New(rand.NewPCG(3, 3)),
	})
	ctx.Resize(screenW, screenH)
	return screen, NewRenderer(screen, cfg.Palette), ctx
}

func rowText(screen tcell.SimulationScreen, y int) string {
	var b strings.Builder
	for x := 0; x < screenW; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func screenContains(screen tcell.SimulationScreen, s string) bool {
	for y := 0; y < screenH; y++ {
		if strings.Contains(rowText(screen, y), s) {
			return true
		}
	}
	return false
}

// playerCell is where the camera-centred player lands on screen
func playerCell() (int, int) {
	return screenW / 2, (screenH-1)/2 + 1
}

func TestRenderMainMenu(t *testing.T) {
	screen, r, ctx := newTestRenderer(t)
	r.RenderFrame(ctx)

	for _, label := range []string{"MAIN MENU", "New Game", "Load Game", "Quit Game"} {
		if !screenContains(screen, label) {
			t.Errorf("Expected %q on screen", label)
		}
	}
	if screenContains(screen, "hp ") {
		t.Error("Status bar shows stats without a game")
	}
}

func TestRenderPlayerAtCentre(t *testing.T) {
	screen, r, ctx := newTestRenderer(t)
	ctx.NewGame("render")
	r.RenderFrame(ctx)

	x, y := playerCell()
	ch, _, _, _ := screen.GetContent(x, y)
	if ch != '@' {
		t.Errorf("Expected player glyph at (%d,%d), got %q", x, y, ch)
	}

	status := rowText(screen, 0)
	if !strings.Contains(status, "hp 100") || !strings.Contains(status, "dmg 5") {
		t.Errorf("Unexpected status bar %q", status)
	}
}

func TestRenderPickupAndAttackHighlight(t *testing.T) {
	screen, r, ctx := newTestRenderer(t)
	ctx.NewGame("render")
	w := ctx.World
	pos := w.PlayerPosition().Add(core.Pt(1, 0))

	tile := w.GetTileAt(pos)
	if tile.Obj != engine.NoEntity {
		w.RetireEntity(tile.Obj)
	}
	tile.Clear()
	w.SpawnPickup(pos, engine.Item{Idx: 0})
	w.SetAttacked(w.PlayerPosition())

	r.RenderFrame(ctx)

	x, y := playerCell()
	ch, _, _, _ := screen.GetContent(x+1, y)
	if ch != '/' {
		t.Errorf("Expected sword glyph, got %q", ch)
	}

	_, _, style, _ := screen.GetContent(x, y)
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrReverse == 0 {
		t.Error("Expected attacked tile drawn in reverse")
	}
}

func TestRenderInventoryOverlay(t *testing.T) {
	screen, r, ctx := newTestRenderer(t)
	ctx.NewGame("render")
	ctx.World.Player().Actor.Items = []engine.Item{{Idx: 0, Equipped: true}, {Idx: 5}}
	ctx.ToggleInventory()
	r.RenderFrame(ctx)

	if !screenContains(screen, "[x] e Iron Sword") {
		t.Error("Expected equipped toggle marker")
	}
	if !screenContains(screen, "[ ] c Healing Potion") {
		t.Error("Expected unequipped toggle marker")
	}
}

func TestRenderTextField(t *testing.T) {
	screen, r, ctx := newTestRenderer(t)
	h := modes.NewInputHandler(ctx)
	h.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	for _, ch := range "12" {
		h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone))
	}
	r.RenderFrame(ctx)

	if !screenContains(screen, "Enter seed: 12") {
		t.Error("Expected seed buffer on screen")
	}
}

func TestViewportOrigin(t *testing.T) {
	got := ViewportOrigin(core.Pt(10, -3), core.Pt(80, 24))
	if got != core.Pt(-30, -15) {
		t.Errorf("Expected (-30,-15), got %v", got)
	}
}
