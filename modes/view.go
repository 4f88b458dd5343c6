package modes

// View selects which renderers run
type View uint8

const (
	// ViewGame draws the world only
	ViewGame View = iota
	// ViewMenu draws the active menu alone
	ViewMenu
	// ViewGameMenu draws the active menu over the world
	ViewGameMenu
)

var viewNames = [...]string{
	ViewGame:     "game",
	ViewMenu:     "menu",
	ViewGameMenu: "gamemenu",
}

func (v View) String() string {
	if int(v) < len(viewNames) {
		return viewNames[v]
	}
	return "unknown"
}

// HasMenu reports whether the view routes input to the menu stack
func (v View) HasMenu() bool {
	return v == ViewMenu || v == ViewGameMenu
}

// HasWorld reports whether the view draws the world
func (v View) HasWorld() bool {
	return v == ViewGame || v == ViewGameMenu
}
