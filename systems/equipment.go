package systems

import (
	"github.com/lixenwraith/vi-rogue/engine"
)

// ToggleResult reports the outcome of an inventory toggle
type ToggleResult struct {
	Accepted bool // False when the toggle was rejected and must be reverted visually
	Equipped bool // Equipped state after the toggle
	Consumed bool // Slot was marked consumed and should leave the open dialog
}

// ToggleEquip equips, unequips or consumes the item in slot of actor
// Only one equipped item per stat kind is allowed; a second one is rejected
// Stat changes clamp at zero, so unequipping can be lossy
func ToggleEquip(catalog *engine.Catalog, actor *engine.Actor, slot int) ToggleResult {
	if slot < 0 || slot >= len(actor.Items) {
		return ToggleResult{}
	}
	item := &actor.Items[slot]
	if item.Consumed() || !catalog.Valid(item.Idx) {
		return ToggleResult{Equipped: item.Equipped}
	}
	def := catalog.Def(item.Idx)

	if def.Consumable {
		applyModifiers(actor, def, 1)
		item.Idx = engine.ItemConsumed
		item.Equipped = false
		return ToggleResult{Accepted: true, Consumed: true}
	}

	if !item.Equipped && kindTaken(catalog, actor, slot, def) {
		return ToggleResult{Equipped: false}
	}

	// Armor damaged below the item's rating cannot be put back in the pack
	broken := item.Equipped && def.Armor > actor.Armor

	item.Equipped = !item.Equipped
	if item.Equipped {
		applyModifiers(actor, def, 1)
	} else {
		applyModifiers(actor, def, -1)
	}

	if broken {
		item.Idx = engine.ItemConsumed
		return ToggleResult{Accepted: true, Consumed: true}
	}
	return ToggleResult{Accepted: true, Equipped: item.Equipped}
}

// kindTaken reports whether another equipped item already modifies a stat def modifies
func kindTaken(catalog *engine.Catalog, actor *engine.Actor, slot int, def engine.ItemDef) bool {
	for i, other := range actor.Items {
		if i == slot || !other.Equipped || other.Consumed() {
			continue
		}
		if catalog.Def(other.Idx).SharesKind(def) {
			return true
		}
	}
	return false
}

func applyModifiers(a *engine.Actor, def engine.ItemDef, sign int) {
	a.HP = max(0, a.HP+sign*def.HP)
	a.Armor = max(0, a.Armor+sign*def.Armor)
	a.Damage = max(0, a.Damage+sign*def.Damage)
}

// CommitInventory physically removes slots marked consumed
func CommitInventory(actor *engine.Actor) {
	kept := actor.Items[:0]
	for _, it := range actor.Items {
		if !it.Consumed() {
			kept = append(kept, it)
		}
	}
	actor.Items = kept
}
