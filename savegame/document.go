package savegame

import (
	"encoding/json"
	"fmt"

	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
)

// Coord is a point serialized as [x, y]
type Coord [2]int

// CoordOf converts a point
func CoordOf(p core.Point) Coord {
	return Coord{p.X, p.Y}
}

// Point converts back to a point
func (c Coord) Point() core.Point {
	return core.Pt(c[0], c[1])
}

// ItemPair is an inventory slot serialized as [index, equipped]
type ItemPair struct {
	Idx      int
	Equipped bool
}

func (p ItemPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Idx, p.Equipped})
}

func (p *ItemPair) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("item: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("item: expected [index, equipped], got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.Idx); err != nil {
		return fmt.Errorf("item index: %w", err)
	}
	if err := json.Unmarshal(raw[1], &p.Equipped); err != nil {
		return fmt.Errorf("item equipped: %w", err)
	}
	return nil
}

// Object is a saved entity: an actor (friendly or enemy) or an item pickup
type Object struct {
	Type     string
	Position Coord

	// Pickup
	Idx int

	// Actor
	HP     int
	Armor  int
	Damage int
	Items  []ItemPair
}

type actorRecord struct {
	Type     string     `json:"type"`
	Position Coord      `json:"position"`
	HP       int        `json:"hp"`
	Armor    int        `json:"armor"`
	Damage   int        `json:"damage"`
	Items    []ItemPair `json:"items"`
}

type pickupRecord struct {
	Type     string `json:"type"`
	Position Coord  `json:"position"`
	Idx      int    `json:"idx"`
}

// objectRecord accepts either variant on decode
type objectRecord struct {
	Type     string     `json:"type"`
	Position *Coord     `json:"position"`
	Idx      *int       `json:"idx"`
	HP       *int       `json:"hp"`
	Armor    *int       `json:"armor"`
	Damage   *int       `json:"damage"`
	Items    []ItemPair `json:"items"`
}

// TileType resolves the saved type name
func (o *Object) TileType() (engine.TileType, error) {
	return engine.ParseTileType(o.Type)
}

func (o Object) MarshalJSON() ([]byte, error) {
	typ, err := o.TileType()
	if err != nil {
		return nil, err
	}
	if typ == engine.TileItem {
		return json.Marshal(pickupRecord{Type: o.Type, Position: o.Position, Idx: o.Idx})
	}
	items := o.Items
	if items == nil {
		items = []ItemPair{}
	}
	return json.Marshal(actorRecord{
		Type:     o.Type,
		Position: o.Position,
		HP:       o.HP,
		Armor:    o.Armor,
		Damage:   o.Damage,
		Items:    items,
	})
}

func (o *Object) UnmarshalJSON(data []byte) error {
	var rec objectRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	typ, err := engine.ParseTileType(rec.Type)
	if err != nil {
		return err
	}
	if rec.Position == nil {
		return fmt.Errorf("%s: missing position", rec.Type)
	}

	*o = Object{Type: rec.Type, Position: *rec.Position}
	switch {
	case typ == engine.TileItem:
		if rec.Idx == nil {
			return fmt.Errorf("item at %v: missing idx", *rec.Position)
		}
		o.Idx = *rec.Idx
	case typ.IsActor():
		if rec.HP == nil || rec.Armor == nil || rec.Damage == nil {
			return fmt.Errorf("%s at %v: missing stats", rec.Type, *rec.Position)
		}
		o.HP, o.Armor, o.Damage = *rec.HP, *rec.Armor, *rec.Damage
		o.Items = rec.Items
	default:
		return fmt.Errorf("%s at %v: not an entity type", rec.Type, *rec.Position)
	}
	return nil
}

// Document is the full snapshot written to one save slot
type Document struct {
	Seed            int64    `json:"seed"`
	Camera          Coord    `json:"camera_position"`
	GeneratedChunks []Coord  `json:"generated_chunks"`
	Player          Object   `json:"player"`
	Objects         []Object `json:"objects"`
}

// objectFromEntity converts a live entity on a tile of type typ
func objectFromEntity(typ engine.TileType, e *engine.Entity) Object {
	o := Object{Type: typ.String(), Position: CoordOf(e.Position)}
	if e.Kind == engine.KindPickup {
		o.Idx = e.Item.Idx
		return o
	}
	o.HP, o.Armor, o.Damage = e.Actor.HP, e.Actor.Armor, e.Actor.Damage
	o.Items = make([]ItemPair, 0, len(e.Actor.Items))
	for _, it := range e.Actor.Items {
		if it.Consumed() {
			continue
		}
		o.Items = append(o.Items, ItemPair{Idx: it.Idx, Equipped: it.Equipped})
	}
	return o
}

func (o *Object) items() []engine.Item {
	out := make([]engine.Item, 0, len(o.Items))
	for _, p := range o.Items {
		out = append(out, engine.Item{Idx: p.Idx, Equipped: p.Equipped})
	}
	return out
}
