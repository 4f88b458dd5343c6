package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/logger"
)

// MovementSystem resolves move-or-attack actions against the tile grid
type MovementSystem struct {
	world *engine.World
	pacer Pacer

	// OnPlayerDeath runs once when the player's hp reaches zero during an exchange
	OnPlayerDeath func()
}

// NewMovementSystem creates a movement system; a nil pacer disables combat pacing
func NewMovementSystem(world *engine.World, pacer Pacer) *MovementSystem {
	if pacer == nil {
		pacer = noPacer{}
	}
	return &MovementSystem{world: world, pacer: pacer}
}

// SetPacer replaces the combat pacer
func (m *MovementSystem) SetPacer(p Pacer) {
	if p == nil {
		p = noPacer{}
	}
	m.pacer = p
}

// Move attempts to move the actor at from by rel
// Reports whether a relocation or an attack happened
func (m *MovementSystem) Move(from, rel core.Point) bool {
	src := m.world.GetTileAt(from)
	if !src.Type.IsActor() {
		return false
	}
	mover := m.world.Entities.Get(src.Obj)
	if mover == nil || mover.Kind != engine.KindActor {
		return false
	}

	to := from.Add(rel)
	dst := m.world.GetTileAt(to)

	switch {
	case dst.Type == engine.TileEmpty || dst.Type == engine.TileItem:
		m.relocate(src, dst, mover, to)
		return true
	case src.Type.Opposes(dst.Type):
		m.attack(src.Obj, dst.Obj)
		return true
	}
	return false
}

func (m *MovementSystem) relocate(src, dst *engine.Tile, mover *engine.Entity, to core.Point) {
	if dst.Type == engine.TileItem {
		if pickup := m.world.Entities.Get(dst.Obj); pickup != nil {
			item := pickup.Item
			item.Equipped = false
			mover.Actor.Items = append(mover.Actor.Items, item)
		}
		m.world.Entities.Remove(dst.Obj)
	}

	dst.Place(src.Type, src.Obj)
	src.Clear()
	mover.Position = to
}

// attack runs one simultaneous exchange between two opposing actors
func (m *MovementSystem) attack(attackerID, defenderID engine.EntityID) {
	attacker := m.world.Entities.Get(attackerID)
	defender := m.world.Entities.Get(defenderID)
	if attacker == nil || defender == nil {
		return
	}

	// Both blows use pre-exchange damage values
	atkDamage := attacker.Actor.Damage
	defDamage := defender.Actor.Damage

	m.world.SetAttacked(defender.Position)
	ApplyHit(m.world.Catalog, &defender.Actor, atkDamage)
	m.pacer.Pulse()

	m.world.SetAttacked(attacker.Position)
	ApplyHit(m.world.Catalog, &attacker.Actor, defDamage)
	m.pacer.Pulse()

	m.world.ClearAttacked()

	logger.Log.WithFields(logrus.Fields{
		"attacker":    attacker.Position,
		"attacker_hp": attacker.Actor.HP,
		"defender":    defender.Position,
		"defender_hp": defender.Actor.HP,
	}).Debug("combat exchange")

	m.resolveDeath(defenderID)
	m.resolveDeath(attackerID)
}

// resolveDeath retires a dead non-player actor, dropping its first item
// A dead player is kept on the grid and reported through OnPlayerDeath
func (m *MovementSystem) resolveDeath(id engine.EntityID) {
	e := m.world.Entities.Get(id)
	if e == nil || e.Actor.HP > 0 {
		return
	}

	if id == m.world.PlayerID() {
		logger.Log.WithField("position", e.Position).Info("player died")
		if m.OnPlayerDeath != nil {
			m.OnPlayerDeath()
		}
		return
	}

	pos := e.Position
	var drop *engine.Item
	if len(e.Actor.Items) > 0 {
		first := e.Actor.Items[0]
		drop = &first
	}

	m.world.RetireEntity(id)
	if drop != nil && !drop.Consumed() {
		m.world.SpawnPickup(pos, *drop)
	}
}
