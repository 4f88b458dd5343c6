package modes

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/logger"
	"github.com/lixenwraith/vi-rogue/systems"
)

// newInventoryMenu builds the item dialog; its toggles are rebuilt from the
// player's inventory on every open and consumed slots are committed on close
func newInventoryMenu(ctx *GameContext) *Menu {
	m := &Menu{Title: constants.TitleInventory}

	m.OnOpen = func() {
		m.Items = m.Items[:0]
		player := ctx.World.Player()
		if player == nil {
			return
		}
		for slot, it := range player.Actor.Items {
			if it.Consumed() {
				continue
			}
			m.Items = append(m.Items, inventoryToggle(ctx, m, slot, it))
		}
	}

	m.OnClose = func() {
		if player := ctx.World.Player(); player != nil {
			systems.CommitInventory(&player.Actor)
		}
	}
	return m
}

// InventoryLabel renders an item as "e <name>" or "c <name>"
func InventoryLabel(def engine.ItemDef) string {
	if def.Consumable {
		return constants.PrefixConsumable + def.Name
	}
	return constants.PrefixEquipment + def.Name
}

func inventoryToggle(ctx *GameContext, m *Menu, slot int, it engine.Item) *MenuItem {
	item := Toggle(InventoryLabel(ctx.World.Catalog.Def(it.Idx)), it.Equipped, nil)
	item.Slot = slot
	item.OnClick = func() {
		player := ctx.World.Player()
		if player == nil {
			return
		}
		r := systems.ToggleEquip(ctx.World.Catalog, &player.Actor, item.Slot)
		item.Checked = r.Equipped
		if !r.Accepted {
			ctx.SetStatus(constants.StatusItemBlocked)
			return
		}
		if r.Consumed {
			m.Remove(item)
			ctx.MoveSelection(-1)
		}
		logger.Log.WithFields(logrus.Fields{
			"slot":     item.Slot,
			"equipped": r.Equipped,
			"consumed": r.Consumed,
		}).Debug("inventory toggle")
	}
	return item
}

// ToggleInventory opens the item dialog from the game, or closes it when active
func (c *GameContext) ToggleInventory() {
	switch {
	case c.CurrentMenu() == c.Menus.Inventory && c.CurrentView().HasMenu():
		c.PopView()
	case c.CurrentView() == ViewGame && c.World.HasPlayer() && !c.World.PlayerDead():
		c.PushView(ViewGameMenu)
		c.SetMenu(c.Menus.Inventory)
	}
}
