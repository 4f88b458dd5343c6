package modes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
)

func TestStartsAtMainMenu(t *testing.T) {
	ctx, _ := newTestContext(t)

	if ctx.CurrentView() != ViewMenu {
		t.Errorf("Expected menu view, got %v", ctx.CurrentView())
	}
	if ctx.CurrentMenu() != ctx.Menus.Main {
		t.Errorf("Expected main menu, got %q", ctx.CurrentMenu().Title)
	}
	if ctx.World.HasPlayer() {
		t.Error("Expected no game before New Game")
	}
}

func TestMenuSelectionClamps(t *testing.T) {
	ctx, h := newTestContext(t)

	press(h, key(tcell.KeyDown), key(tcell.KeyDown), key(tcell.KeyDown), key(tcell.KeyDown))
	if ctx.Selection() != 2 {
		t.Errorf("Expected selection clamped to 2, got %d", ctx.Selection())
	}

	press(h, key(tcell.KeyUp), key(tcell.KeyUp), key(tcell.KeyUp))
	if ctx.Selection() != 0 {
		t.Errorf("Expected selection clamped to 0, got %d", ctx.Selection())
	}
}

// Directional input inside a menu only moves the highlight
func TestMenuInputNeverMovesPlayer(t *testing.T) {
	ctx, h := newTestContext(t)
	ctx.NewGame("calm")
	start := ctx.World.PlayerPosition()

	press(h, key(tcell.KeyEscape))
	if ctx.CurrentMenu() != ctx.Menus.Pause {
		t.Fatal("Expected pause menu after ESC")
	}

	press(h, key(tcell.KeyDown), key(tcell.KeyDown), key(tcell.KeyLeft), key(tcell.KeyRight),
		runeKey('w'), runeKey('a'), runeKey('s'), runeKey('d'))

	if ctx.World.PlayerPosition() != start {
		t.Errorf("Player moved from %v to %v while in menu", start, ctx.World.PlayerPosition())
	}
	if ctx.Selection() != 2 {
		t.Errorf("Expected selection 2, got %d", ctx.Selection())
	}
}

func TestBackspacePopsOneLevel(t *testing.T) {
	ctx, h := newTestContext(t)
	ctx.NewGame("depth")

	press(h, key(tcell.KeyEscape))
	// Pause: Back, New Game, Save Game
	press(h, key(tcell.KeyDown), key(tcell.KeyDown), key(tcell.KeyEnter))
	if ctx.CurrentMenu() != ctx.Menus.Save || ctx.MenuDepth() != 2 {
		t.Fatalf("Expected save dialog two deep, got %q depth %d", ctx.CurrentMenu().Title, ctx.MenuDepth())
	}

	// Move off the text field so Backspace navigates
	press(h, key(tcell.KeyDown), key(tcell.KeyBackspace2))
	if ctx.CurrentMenu() != ctx.Menus.Pause || ctx.MenuDepth() != 1 {
		t.Fatalf("Expected pause menu one deep, got %q depth %d", ctx.CurrentMenu().Title, ctx.MenuDepth())
	}
	if ctx.Selection() != 0 {
		t.Errorf("Expected selection reset to 0, got %d", ctx.Selection())
	}

	press(h, key(tcell.KeyBackspace2))
	if ctx.CurrentView() != ViewGame {
		t.Errorf("Expected game view, got %v", ctx.CurrentView())
	}
	if ctx.CurrentMenu() != nil {
		t.Error("Expected empty menu stack in game view")
	}
}

func TestTextInputEditing(t *testing.T) {
	ctx, h := newTestContext(t)
	press(h, key(tcell.KeyEnter)) // New Game
	field := ctx.SelectedItem()
	if field == nil || field.Kind != ItemText {
		t.Fatal("Expected seed field focused")
	}

	typeText(h, "ab1")
	press(h, key(tcell.KeyLeft))
	typeText(h, "X")
	if got := field.Value(); got != "abX1" {
		t.Errorf("Expected abX1, got %q", got)
	}

	press(h, key(tcell.KeyBackspace2))
	if got := field.Value(); got != "ab1" || field.Cursor != 2 {
		t.Errorf("Expected ab1 cursor 2, got %q cursor %d", field.Value(), field.Cursor)
	}

	typeText(h, "!?-_")
	if got := field.Value(); got != "ab1" {
		t.Errorf("Punctuation inserted: %q", got)
	}

	press(h, key(tcell.KeyLeft), key(tcell.KeyLeft), key(tcell.KeyLeft), key(tcell.KeyLeft))
	if field.Cursor != 0 {
		t.Errorf("Expected cursor clamped at 0, got %d", field.Cursor)
	}
	press(h, key(tcell.KeyBackspace2))
	if field.Value() != "ab1" {
		t.Error("Backspace at start deleted text")
	}

	typeText(h, strings.Repeat("z", 30))
	if len(field.Text) != 15 {
		t.Errorf("Expected text capped at 15, got %d", len(field.Text))
	}

	// Backspace on a text field edits, never navigates
	if ctx.CurrentMenu() != ctx.Menus.NewGame {
		t.Error("Text editing left the dialog")
	}
}

func TestTextResetOnReenter(t *testing.T) {
	ctx, h := newTestContext(t)
	press(h, key(tcell.KeyEnter))
	typeText(h, "seed")

	press(h, key(tcell.KeyDown), key(tcell.KeyEnter)) // << Back
	if ctx.CurrentMenu() != ctx.Menus.Main {
		t.Fatalf("Expected main menu, got %q", ctx.CurrentMenu().Title)
	}

	press(h, key(tcell.KeyEnter))
	if got := ctx.Menus.NewGame.TextItem().Value(); got != "" {
		t.Errorf("Expected cleared seed field, got %q", got)
	}
}

func TestNewGameFromMenu(t *testing.T) {
	ctx, h := newTestContext(t)
	press(h, key(tcell.KeyEnter))
	typeText(h, "42")
	press(h, key(tcell.KeyEnter))

	if ctx.CurrentView() != ViewGame {
		t.Fatalf("Expected game view, got %v", ctx.CurrentView())
	}
	if ctx.Generator.Seed() != 42 {
		t.Errorf("Expected seed 42, got %d", ctx.Generator.Seed())
	}
	p := ctx.World.Player()
	if p == nil || p.Actor.HP != 100 {
		t.Fatalf("Unexpected player %+v", p)
	}
	if ctx.Camera.Position != p.Position {
		t.Errorf("Camera %v not centred on player %v", ctx.Camera.Position, p.Position)
	}
}

// Bumping a wall costs no turn; a real move lets enemies act
func TestRejectedMoveSkipsEnemyTurn(t *testing.T) {
	ctx, h := newTestContext(t)
	ctx.NewGame("walls")
	w := ctx.World
	pos := w.PlayerPosition()

	for _, d := range []core.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}} {
		clearTile(w, pos.Add(d)).Type = engine.TileObstacle
	}

	before := enemyPositions(w)
	if len(before) == 0 {
		t.Fatal("Expected spawned enemies")
	}

	press(h, runeKey('d'), key(tcell.KeyLeft))
	if w.PlayerPosition() != pos {
		t.Fatalf("Player moved through wall to %v", w.PlayerPosition())
	}
	after := enemyPositions(w)
	for id, p := range before {
		if after[id] != p {
			t.Fatalf("Enemy %d moved on a rejected turn", id)
		}
	}

	clearTile(w, pos.Add(core.Pt(1, 0)))
	press(h, runeKey('d'))
	if w.PlayerPosition() != pos.Add(core.Pt(1, 0)) {
		t.Fatalf("Expected player at %v, got %v", pos.Add(core.Pt(1, 0)), w.PlayerPosition())
	}

	moved := false
	for id, p := range enemyPositions(w) {
		if old, ok := before[id]; ok && old != p {
			moved = true
		}
	}
	if !moved {
		t.Error("No enemy moved after a successful player move")
	}
}

func TestPlayerDeathShowsDeadMenu(t *testing.T) {
	ctx, h := newTestContext(t)
	ctx.NewGame("doom")
	w := ctx.World
	pos := w.PlayerPosition()
	w.Player().Actor.HP = 1

	clearTile(w, pos.Add(core.Pt(1, 0)))
	w.SpawnActor(engine.TileEnemy, pos.Add(core.Pt(1, 0)), 100, 0, 50)

	press(h, key(tcell.KeyRight))

	if ctx.CurrentView() != ViewMenu || ctx.CurrentMenu() != ctx.Menus.Dead {
		t.Fatalf("Expected dead menu, got view %v", ctx.CurrentView())
	}

	press(h, key(tcell.KeyBackspace2))
	if ctx.CurrentMenu() != ctx.Menus.Main {
		t.Errorf("Expected main menu after leaving dead dialog, got %q", ctx.CurrentMenu().Title)
	}
}

func TestSaveAndLoadThroughMenus(t *testing.T) {
	ctx, h := newTestContext(t)
	ctx.NewGame("persist")
	w := ctx.World
	w.Player().Actor.Damage = 12
	saved := w.PlayerPosition()

	press(h, key(tcell.KeyCtrlS))
	if ctx.CurrentView() != ViewGameMenu || ctx.CurrentMenu() != ctx.Menus.Save {
		t.Fatal("Expected save dialog over game")
	}

	press(h, key(tcell.KeyEnter))
	if ctx.CurrentMenu() != ctx.Menus.Save || !strings.Contains(ctx.Status(), "save name") {
		t.Fatalf("Expected empty name rejected, status %q", ctx.Status())
	}

	typeText(h, "slot")
	press(h, key(tcell.KeyEnter))
	if ctx.CurrentView() != ViewGame {
		t.Fatalf("Expected game view after save, got %v", ctx.CurrentView())
	}
	if _, err := os.Stat(filepath.Join(ctx.SavesDir, "slot.json")); err != nil {
		t.Fatalf("Save file missing: %v", err)
	}

	w.Player().Actor.Damage = 1

	press(h, key(tcell.KeyEscape))
	press(h, key(tcell.KeyDown), key(tcell.KeyDown), key(tcell.KeyDown), key(tcell.KeyEnter)) // Load Game
	if ctx.CurrentMenu() != ctx.Menus.Load {
		t.Fatalf("Expected load dialog, got %q", ctx.CurrentMenu().Title)
	}
	if len(ctx.Menus.Load.Items) != 2 || ctx.Menus.Load.Items[0].Label != "slot.json" {
		t.Fatalf("Unexpected load entries %d", len(ctx.Menus.Load.Items))
	}

	press(h, key(tcell.KeyEnter))
	if ctx.CurrentView() != ViewGame {
		t.Fatalf("Expected game view after load, got %v", ctx.CurrentView())
	}
	if w.PlayerPosition() != saved || w.Player().Actor.Damage != 12 {
		t.Errorf("Loaded player %v dmg %d, expected %v dmg 12", w.PlayerPosition(), w.Player().Actor.Damage, saved)
	}
}

func TestLoadFailureKeepsMenu(t *testing.T) {
	ctx, h := newTestContext(t)
	if err := os.WriteFile(filepath.Join(ctx.SavesDir, "bad.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}

	press(h, key(tcell.KeyDown), key(tcell.KeyEnter))
	if ctx.CurrentMenu() != ctx.Menus.Load {
		t.Fatal("Expected load dialog")
	}
	press(h, key(tcell.KeyEnter))

	if ctx.CurrentMenu() != ctx.Menus.Load || ctx.CurrentView() != ViewMenu {
		t.Error("Failed load left the dialog")
	}
	if !strings.Contains(ctx.Status(), "load failed") {
		t.Errorf("Expected load failure status, got %q", ctx.Status())
	}
	if ctx.World.HasPlayer() {
		t.Error("Failed load created a game")
	}
}

func TestQuit(t *testing.T) {
	_, h := newTestContext(t)
	if !press(h, key(tcell.KeyDown)) {
		t.Fatal("Navigation should not quit")
	}
	if press(h, key(tcell.KeyDown), key(tcell.KeyEnter)) {
		t.Error("Expected Quit Game to stop the loop")
	}

	_, h = newTestContext(t)
	if h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Expected Ctrl-C to stop the loop")
	}
}

func TestResizeUpdatesCanvas(t *testing.T) {
	ctx, h := newTestContext(t)
	h.HandleEvent(tcell.NewEventResize(120, 41))
	if ctx.Camera.Canvas != core.Pt(120, 40) {
		t.Errorf("Expected canvas 120x40, got %v", ctx.Camera.Canvas)
	}
}
