package modes

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/core"
)

// directionKeys maps movement keys to unit offsets
var directionKeys = map[tcell.Key]core.Point{
	tcell.KeyUp:    {X: 0, Y: -1},
	tcell.KeyLeft:  {X: -1, Y: 0},
	tcell.KeyDown:  {X: 0, Y: 1},
	tcell.KeyRight: {X: 1, Y: 0},
}

var directionRunes = map[rune]core.Point{
	'w': {X: 0, Y: -1},
	'a': {X: -1, Y: 0},
	's': {X: 0, Y: 1},
	'd': {X: 1, Y: 0},
}

// InputHandler routes terminal events into the game context
type InputHandler struct {
	ctx *GameContext
}

// NewInputHandler creates a new input handler
func NewInputHandler(ctx *GameContext) *InputHandler {
	return &InputHandler{ctx: ctx}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.ctx.Resize(w, hgt)
	}
	return !h.ctx.Quitting()
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	if isCtrl(ev, tcell.KeyCtrlC, 'c') {
		return false
	}

	if h.ctx.CurrentView().HasMenu() {
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'i' && h.ctx.CurrentMenu() == h.ctx.Menus.Inventory {
			h.ctx.ToggleInventory()
		} else {
			h.handleMenu(ev)
		}
		return !h.ctx.Quitting()
	}

	h.handleGame(ev)
	return !h.ctx.Quitting()
}

// handleGame handles input in the game view
func (h *InputHandler) handleGame(ev *tcell.EventKey) {
	switch {
	case isCtrl(ev, tcell.KeyCtrlS, 's'):
		h.ctx.OpenSaveDialog()
		return
	case isCtrl(ev, tcell.KeyCtrlL, 'l'):
		h.ctx.OpenLoadDialog()
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		h.ctx.OpenPauseMenu()
		return
	case tcell.KeyRune:
		if ev.Rune() == 'i' {
			h.ctx.ToggleInventory()
			return
		}
		if dir, ok := directionRunes[ev.Rune()]; ok {
			h.ctx.PlayerTurn(dir)
		}
		return
	}

	if dir, ok := directionKeys[ev.Key()]; ok {
		h.ctx.PlayerTurn(dir)
	}
}

// handleMenu handles input while a menu is active
func (h *InputHandler) handleMenu(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		h.ctx.MoveSelection(-1)
		return
	case tcell.KeyDown:
		h.ctx.MoveSelection(1)
		return
	}

	item := h.ctx.SelectedItem()
	if item != nil && item.Kind == ItemText {
		h.handleTextInput(item, ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		h.ctx.Back()
	case tcell.KeyEnter:
		if item == nil {
			return
		}
		if item.Kind == ItemToggle {
			item.Checked = !item.Checked
		}
		if item.OnClick != nil {
			item.OnClick()
		}
	}
}

// handleTextInput edits the focused text field; Enter submits the menu
func (h *InputHandler) handleTextInput(item *MenuItem, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		item.MoveCursor(-1)
	case tcell.KeyRight:
		item.MoveCursor(1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		item.DeleteBack()
	case tcell.KeyEnter:
		if m := h.ctx.CurrentMenu(); m != nil && m.OnSubmit != nil {
			m.OnSubmit()
		}
	case tcell.KeyRune:
		if r := ev.Rune(); isTextRune(r) {
			item.Insert(r)
		}
	}
}

// isTextRune accepts ASCII letters, digits and space
func isTextRune(r rune) bool {
	return r == ' ' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// isCtrl matches a control chord in either its control-code or rune+modifier form
func isCtrl(ev *tcell.EventKey, key tcell.Key, r rune) bool {
	if ev.Key() == key {
		return true
	}
	return ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == r && ev.Modifiers()&tcell.ModCtrl != 0
}
