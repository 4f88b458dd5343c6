package engine

import "github.com/lixenwraith/vi-rogue/core"

// EntityID is a stable handle into the Registry arena
// Zero is reserved for "no entity"
type EntityID uint32

// NoEntity is the null handle stored in empty tiles
const NoEntity EntityID = 0

// EntityKind discriminates the closed set of entity variants
type EntityKind uint8

const (
	KindActor EntityKind = iota + 1
	KindPickup
)

// Actor is a living combatant: the player or an enemy
type Actor struct {
	HP     int
	Armor  int
	Damage int
	Items  []Item
}

// Entity is an Actor or an item pickup placed on the grid
// Actor is valid iff Kind == KindActor; Item is valid iff Kind == KindPickup
type Entity struct {
	Kind     EntityKind
	Position core.Point
	Actor    Actor
	Item     Item
}

// NewActorEntity builds an actor entity at pos
func NewActorEntity(pos core.Point, hp, armor, damage int, items ...Item) Entity {
	return Entity{
		Kind:     KindActor,
		Position: pos,
		Actor: Actor{
			HP:     hp,
			Armor:  armor,
			Damage: damage,
			Items:  items,
		},
	}
}

// NewPickupEntity builds a free-standing item pickup at pos
func NewPickupEntity(pos core.Point, item Item) Entity {
	return Entity{
		Kind:     KindPickup,
		Position: pos,
		Item:     item,
	}
}
