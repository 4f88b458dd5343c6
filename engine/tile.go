package engine

import "fmt"

// TileType is the discriminant of a tile's content
type TileType uint8

const (
	TileEmpty TileType = iota
	TileFriendly
	TileEnemy
	TileObstacle
	TileTree
	TileMountain
	TileItem
	TileWater
	TileTypeCount
)

var tileTypeNames = [TileTypeCount]string{
	TileEmpty:    "empty",
	TileFriendly: "friendly",
	TileEnemy:    "enemy",
	TileObstacle: "obstacle",
	TileTree:     "tree",
	TileMountain: "mountain",
	TileItem:     "item",
	TileWater:    "water",
}

// String returns the canonical lowercase name used by config and save files
func (t TileType) String() string {
	if t < TileTypeCount {
		return tileTypeNames[t]
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}

// ParseTileType resolves a canonical name back to its TileType
func ParseTileType(name string) (TileType, error) {
	for i, n := range tileTypeNames {
		if n == name {
			return TileType(i), nil
		}
	}
	return TileEmpty, fmt.Errorf("unknown tile type %q", name)
}

// IsActor reports whether the tile carries an Actor (friendly or enemy)
func (t TileType) IsActor() bool {
	return t == TileFriendly || t == TileEnemy
}

// HoldsEntity reports whether tiles of this type must reference an entity
func (t TileType) HoldsEntity() bool {
	return t == TileFriendly || t == TileEnemy || t == TileItem
}

// Opposes reports whether t and o are hostile actor factions
func (t TileType) Opposes(o TileType) bool {
	return t.IsActor() && o.IsActor() && t != o
}

// Tile is one grid cell of the world
// Invariant: Obj != NoEntity iff Type.HoldsEntity()
type Tile struct {
	Type      TileType
	Elevation int8
	Obj       EntityID
}

// Clear resets the tile content, keeping elevation
func (t *Tile) Clear() {
	t.Type = TileEmpty
	t.Obj = NoEntity
}

// Place puts an entity reference on the tile with the matching type
func (t *Tile) Place(typ TileType, id EntityID) {
	t.Type = typ
	t.Obj = id
}
