package systems

import (
	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/engine"
)

// Pacer is notified after every damage application in a combat exchange
// The interactive implementation redraws, plays a hit sound and sleeps briefly
type Pacer interface {
	Pulse()
}

// PacerFunc adapts a function to Pacer
type PacerFunc func()

func (f PacerFunc) Pulse() { f() }

type noPacer struct{}

func (noPacer) Pulse() {}

// ApplyHit resolves one blow of attacker against defender
// Armor above ArmorDamageCap scales damage down; zero armor takes full damage
func ApplyHit(catalog *engine.Catalog, defender *engine.Actor, damage int) {
	mult := 1.0
	if defender.Armor > 0 {
		mult = min(1.0, constants.ArmorDamageCap/float64(defender.Armor))
	}

	defender.HP = max(0, int(float64(defender.HP)-float64(damage)*mult))
	defender.Armor = max(0, defender.Armor-damage)

	if defender.Armor == 0 {
		breakArmor(catalog, defender)
	}
}

// breakArmor strips equipped armor items rated above the actor's current armor
func breakArmor(catalog *engine.Catalog, a *engine.Actor) {
	kept := a.Items[:0]
	for _, it := range a.Items {
		if it.Equipped && !it.Consumed() && catalog.Def(it.Idx).Armor > a.Armor {
			continue
		}
		kept = append(kept, it)
	}
	a.Items = kept
}
