package modes

import (
	"github.com/lixenwraith/vi-rogue/logger"
)

// CurrentView returns the top of the view stack
func (c *GameContext) CurrentView() View {
	return c.views[len(c.views)-1]
}

// Views returns a copy of the view stack, bottom first
func (c *GameContext) Views() []View {
	return append([]View(nil), c.views...)
}

// PushView enters v on top of the current view
func (c *GameContext) PushView(v View) {
	c.views = append(c.views, v)
	c.afterViewChange()
}

// PopView returns to the previous view; false when only one view is left
func (c *GameContext) PopView() bool {
	if len(c.views) <= 1 {
		return false
	}
	c.views = c.views[:len(c.views)-1]
	c.afterViewChange()
	return true
}

// SetView replaces the whole view stack with v
func (c *GameContext) SetView(v View) {
	c.views = append(c.views[:0], v)
	c.afterViewChange()
}

// afterViewChange drops the menu stack once no menu view is showing
func (c *GameContext) afterViewChange() {
	c.selection = 0
	if !c.CurrentView().HasMenu() {
		c.closeMenus()
	}
	logger.Log.WithField("view", c.CurrentView()).Debug("view changed")
}

// CurrentMenu returns the active menu, or nil
func (c *GameContext) CurrentMenu() *Menu {
	if len(c.menus) == 0 {
		return nil
	}
	return c.menus[len(c.menus)-1]
}

// MenuDepth returns the number of stacked menus
func (c *GameContext) MenuDepth() int {
	return len(c.menus)
}

// PushMenu opens m as a nested dialog
func (c *GameContext) PushMenu(m *Menu) {
	c.menus = append(c.menus, m)
	c.activate(m)
}

// PopMenu closes the active dialog; false when it is the last one
func (c *GameContext) PopMenu() bool {
	if len(c.menus) <= 1 {
		return false
	}
	top := c.menus[len(c.menus)-1]
	c.menus = c.menus[:len(c.menus)-1]
	if top.OnClose != nil {
		top.OnClose()
	}
	c.activate(c.CurrentMenu())
	return true
}

// SetMenu replaces the menu stack with m
func (c *GameContext) SetMenu(m *Menu) {
	c.closeMenus()
	c.menus = append(c.menus, m)
	c.activate(m)
}

func (c *GameContext) closeMenus() {
	for i := len(c.menus) - 1; i >= 0; i-- {
		if m := c.menus[i]; m.OnClose != nil {
			m.OnClose()
		}
	}
	c.menus = c.menus[:0]
}

func (c *GameContext) activate(m *Menu) {
	c.selection = 0
	m.activate()
	logger.Log.WithField("menu", m.Title).Debug("menu active")
}

// Selection returns the highlighted item index of the active menu
func (c *GameContext) Selection() int {
	return c.selection
}

// SelectedItem returns the highlighted item, or nil
func (c *GameContext) SelectedItem() *MenuItem {
	m := c.CurrentMenu()
	if m == nil {
		return nil
	}
	return m.Item(c.selection)
}

// MoveSelection shifts the highlight by d, clamped to the item range
func (c *GameContext) MoveSelection(d int) {
	m := c.CurrentMenu()
	if m == nil || len(m.Items) == 0 {
		c.selection = 0
		return
	}
	c.selection = min(max(c.selection+d, 0), len(m.Items)-1)
}

// Back unwinds one level: menu, then view, then the menu's exit hook
func (c *GameContext) Back() {
	if c.PopMenu() {
		return
	}
	if c.PopView() {
		return
	}
	if m := c.CurrentMenu(); m != nil && m.OnExit != nil {
		m.OnExit()
	}
}
