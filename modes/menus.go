package modes

import (
	"path/filepath"

	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/logger"
	"github.com/lixenwraith/vi-rogue/savegame"
)

// Menus holds every dialog of a session
type Menus struct {
	Main      *Menu
	NewGame   *Menu
	Pause     *Menu
	Save      *Menu
	Load      *Menu
	Inventory *Menu
	Dead      *Menu
}

// buildMenus defines the session's dialogs against ctx
func buildMenus(ctx *GameContext) *Menus {
	m := &Menus{}
	back := ctx.Back
	enter := func(target **Menu) func() {
		return func() { ctx.PushMenu(*target) }
	}

	m.NewGame = &Menu{
		Title: constants.TitleNewGame,
		Items: []*MenuItem{
			TextInput(constants.LabelSeed, constants.TextInputMax),
			Button(constants.LabelBack, back),
		},
	}
	m.NewGame.OnSubmit = func() {
		ctx.NewGame(m.NewGame.TextItem().Value())
	}

	m.Save = &Menu{
		Title: constants.TitleSaveGame,
		Items: []*MenuItem{
			TextInput(constants.LabelSaveName, constants.TextInputMax),
			Button(constants.LabelBack, back),
		},
	}
	m.Save.OnSubmit = func() {
		name := m.Save.TextItem().Value()
		if name == "" {
			ctx.SetStatus(constants.StatusNoSaveName)
			return
		}
		ctx.SaveGame(name)
	}

	m.Load = &Menu{Title: constants.TitleLoadGame}
	m.Load.OnOpen = func() {
		m.Load.Items = m.Load.Items[:0]
		names, err := savegame.List(ctx.SavesDir)
		if err != nil {
			ctx.SetStatus(constants.StatusListFailed, err)
			logger.Log.WithError(err).Warn("save listing failed")
		}
		for _, name := range names {
			path := filepath.Join(ctx.SavesDir, name)
			m.Load.Items = append(m.Load.Items, Button(name, func() { ctx.LoadGame(path) }))
		}
		m.Load.Items = append(m.Load.Items, Button(constants.LabelBack, back))
	}

	m.Main = &Menu{
		Title: constants.TitleMainMenu,
		Items: []*MenuItem{
			Button(constants.LabelNewGame, enter(&m.NewGame)),
			Button(constants.LabelLoadGame, enter(&m.Load)),
			Button(constants.LabelQuitGame, ctx.Quit),
		},
	}

	m.Pause = &Menu{
		Title: constants.TitleMainMenu,
		Items: []*MenuItem{
			Button(constants.LabelBack, back),
			Button(constants.LabelNewGame, enter(&m.NewGame)),
			Button(constants.LabelSaveGame, enter(&m.Save)),
			Button(constants.LabelLoadGame, enter(&m.Load)),
			Button(constants.LabelQuitGame, ctx.Quit),
		},
	}

	toMain := func() { ctx.SetMenu(m.Main) }
	m.Dead = &Menu{
		Title:  constants.TitleDead,
		Items:  []*MenuItem{Button(constants.LabelBackToMain, toMain)},
		OnExit: toMain,
	}

	m.Inventory = newInventoryMenu(ctx)
	return m
}

// OpenPauseMenu shows the in-game menu over nothing, keeping the game underneath
func (c *GameContext) OpenPauseMenu() {
	if c.CurrentView() != ViewGame {
		return
	}
	c.PushView(ViewMenu)
	c.SetMenu(c.Menus.Pause)
}

// OpenSaveDialog shows the save dialog over the game
func (c *GameContext) OpenSaveDialog() {
	if c.CurrentView() != ViewGame {
		return
	}
	c.PushView(ViewGameMenu)
	c.SetMenu(c.Menus.Save)
}

// OpenLoadDialog shows the load dialog over the game
func (c *GameContext) OpenLoadDialog() {
	if c.CurrentView() != ViewGame {
		return
	}
	c.PushView(ViewGameMenu)
	c.SetMenu(c.Menus.Load)
}
