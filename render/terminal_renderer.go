package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/modes"
)

const (
	menuPadding  = 2
	toggleOn     = "[x] "
	toggleOff    = "[ ] "
	cursorMarker = ' '
)

// Renderer draws the game view, menu overlay and status bar to a tcell screen
type Renderer struct {
	screen  tcell.Screen
	palette config.Palette
}

// NewRenderer creates a renderer using palette for tile glyphs
func NewRenderer(screen tcell.Screen, palette config.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// RenderFrame renders the entire frame for the current view
func (r *Renderer) RenderFrame(ctx *modes.GameContext) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	view := ctx.CurrentView()
	if view.HasWorld() && ctx.World.HasPlayer() {
		r.drawWorld(ctx, defaultStyle)
	}
	if view.HasMenu() {
		if m := ctx.CurrentMenu(); m != nil {
			r.drawMenu(m, ctx.Selection(), defaultStyle)
		}
	}
	r.drawStatusBar(ctx)

	r.screen.Show()
}

// ViewportOrigin returns the world coordinate drawn at the top-left viewport cell
func ViewportOrigin(camera, canvas core.Point) core.Point {
	return camera.Sub(canvas.Div(2))
}

// drawWorld draws the camera-relative viewport below the status bar
func (r *Renderer) drawWorld(ctx *modes.GameContext, defaultStyle tcell.Style) {
	w, h := r.screen.Size()
	canvas := core.Pt(w, max(0, h-constants.StatusBarHeight))
	origin := ViewportOrigin(ctx.Camera.Position, canvas)
	attacked, hasAttacked := ctx.World.Attacked()

	for sy := 0; sy < canvas.Y; sy++ {
		for sx := 0; sx < canvas.X; sx++ {
			pos := origin.Add(core.Pt(sx, sy))
			ch, style := r.tileCell(ctx.World, pos, defaultStyle)
			if hasAttacked && pos == attacked {
				style = style.Foreground(RgbAttacked).Reverse(true)
			}
			r.screen.SetContent(sx, sy+constants.StatusBarHeight, ch, nil, style)
		}
	}
}

// tileCell resolves glyph and style of one world tile
func (r *Renderer) tileCell(world *engine.World, pos core.Point, defaultStyle tcell.Style) (rune, tcell.Style) {
	tile := world.GetTileAt(pos)
	style := defaultStyle.Foreground(TileColor(tile.Type))

	switch tile.Type {
	case engine.TileEmpty:
		if tile.Elevation < 0 {
			return r.palette.ElevationGlyph(int(tile.Elevation)), defaultStyle.Foreground(RgbWater)
		}
		return r.palette.ElevationGlyph(int(tile.Elevation)), style
	case engine.TileItem:
		if e := world.Entities.Get(tile.Obj); e != nil && e.Kind == engine.KindPickup {
			if g := world.Catalog.Def(e.Item.Idx).Glyph; g != 0 {
				return g, style
			}
		}
	}
	return r.palette.TileGlyph(tile.Type), style
}

// drawMenu draws a boxed menu centred on the screen
func (r *Renderer) drawMenu(m *modes.Menu, selection int, defaultStyle tcell.Style) {
	lines := make([]string, len(m.Items))
	width := len([]rune(m.Title))
	for i, it := range m.Items {
		lines[i] = itemText(it)
		width = max(width, len([]rune(lines[i]))+1)
	}

	sw, sh := r.screen.Size()
	boxW := width + 2*menuPadding
	boxH := len(lines) + 2*menuPadding
	x0 := max(0, (sw-boxW)/2)
	y0 := max(constants.StatusBarHeight, (sh-boxH)/2)

	borderStyle := defaultStyle.Foreground(RgbMenuBorder)
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			ch := ' '
			switch {
			case y == y0 || y == y0+boxH-1:
				ch = '─'
			case x == x0 || x == x0+boxW-1:
				ch = '│'
			}
			r.screen.SetContent(x, y, ch, nil, borderStyle)
		}
	}

	titleX := x0 + (boxW-len([]rune(m.Title)))/2
	r.drawText(titleX, y0, m.Title, defaultStyle.Foreground(RgbMenuTitle).Bold(true))

	textStyle := defaultStyle.Foreground(RgbMenuText)
	for i, it := range m.Items {
		y := y0 + menuPadding + i
		x := x0 + menuPadding
		style := textStyle
		if i == selection {
			style = style.Reverse(true)
		}
		r.drawText(x, y, lines[i], style)

		if it.Kind == modes.ItemText && i == selection {
			cx := x + len([]rune(it.Label)) + it.Cursor
			ch := cursorMarker
			if it.Cursor < len(it.Text) {
				ch = it.Text[it.Cursor]
			}
			r.screen.SetContent(cx, y, ch, nil, textStyle.Underline(true))
		}
	}
}

// itemText renders a menu row without selection styling
func itemText(it *modes.MenuItem) string {
	switch it.Kind {
	case modes.ItemToggle:
		if it.Checked {
			return toggleOn + it.Label
		}
		return toggleOff + it.Label
	case modes.ItemText:
		return it.Label + it.Value()
	}
	return it.Label
}

// StatusLine formats the status bar contents
func StatusLine(ctx *modes.GameContext) string {
	p := ctx.World.Player()
	if p == nil {
		return ctx.Status()
	}
	return fmt.Sprintf("pos %d,%d  hp %d  armor %d  dmg %d  seed %d  %s",
		p.Position.X, p.Position.Y, p.Actor.HP, p.Actor.Armor, p.Actor.Damage,
		ctx.Generator.Seed(), ctx.Status())
}

// drawStatusBar draws the top status line
func (r *Renderer) drawStatusBar(ctx *modes.GameContext) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBar)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}
	r.drawText(0, 0, StatusLine(ctx), style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}
