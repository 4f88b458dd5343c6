package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/engine"
)

// RGB color definitions for tiles and UI chrome
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbGround     = tcell.NewRGBColor(110, 110, 90)  // Muted olive for bare elevation
	RgbFriendly   = tcell.NewRGBColor(255, 165, 0)   // Orange player
	RgbEnemy      = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbObstacle   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbTree       = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbMountain   = tcell.NewRGBColor(200, 200, 220) // Pale slate
	RgbItem       = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbWater      = tcell.NewRGBColor(60, 100, 200)  // Dark Blue
	RgbAttacked   = tcell.NewRGBColor(200, 50, 50)   // Red attack highlight

	RgbStatusBar  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbMenuText   = tcell.NewRGBColor(255, 255, 255) // White
	RgbMenuTitle  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbMenuBorder = tcell.NewRGBColor(100, 150, 255) // Normal Blue
)

var tileColors = [engine.TileTypeCount]tcell.Color{
	engine.TileEmpty:    RgbGround,
	engine.TileFriendly: RgbFriendly,
	engine.TileEnemy:    RgbEnemy,
	engine.TileObstacle: RgbObstacle,
	engine.TileTree:     RgbTree,
	engine.TileMountain: RgbMountain,
	engine.TileItem:     RgbItem,
	engine.TileWater:    RgbWater,
}

// TileColor returns the foreground color for a tile type
func TileColor(t engine.TileType) tcell.Color {
	if t < engine.TileTypeCount {
		return tileColors[t]
	}
	return RgbGround
}
