package engine

import "github.com/lixenwraith/vi-rogue/core"

// World is the domain model: chunked terrain, entity arena, item catalog and the player
// All access happens from the input-handling goroutine; no internal locking
type World struct {
	Chunks   *ChunkStore
	Entities *Registry
	Catalog  *Catalog

	player EntityID

	// Highlighted attack tile for the renderer
	attacked    core.Point
	hasAttacked bool
}

// NewWorld creates an empty world with the given chunk side and catalog
func NewWorld(chunkSize int, catalog *Catalog) *World {
	if catalog == nil {
		catalog = NewCatalog(nil)
	}
	return &World{
		Chunks:   NewChunkStore(chunkSize),
		Entities: NewRegistry(),
		Catalog:  catalog,
	}
}

// GetTileAt returns the mutable tile at pos, materializing its chunk if needed
func (w *World) GetTileAt(pos core.Point) *Tile {
	return w.Chunks.GetTileAt(pos)
}

// GetChunk returns the chunk at chunk coordinate c
func (w *World) GetChunk(c core.Point) *Chunk {
	return w.Chunks.GetChunk(c)
}

// Place inserts e into the registry and references it from the tile at e.Position
// The tile's previous content is overwritten; callers check occupancy first
func (w *World) Place(typ TileType, e Entity) EntityID {
	id := w.Entities.Insert(e)
	w.GetTileAt(e.Position).Place(typ, id)
	return id
}

// SpawnActor places an actor of the given faction
func (w *World) SpawnActor(faction TileType, pos core.Point, hp, armor, damage int, items ...Item) EntityID {
	return w.Place(faction, NewActorEntity(pos, hp, armor, damage, items...))
}

// SpawnPickup places a free-standing item
func (w *World) SpawnPickup(pos core.Point, item Item) EntityID {
	item.Equipped = false
	return w.Place(TileItem, NewPickupEntity(pos, item))
}

// RetireEntity releases an entity and clears its tile if the tile still references it
// Idempotent
func (w *World) RetireEntity(id EntityID) {
	e := w.Entities.Get(id)
	if e == nil {
		return
	}
	if t := w.GetTileAt(e.Position); t.Obj == id {
		t.Clear()
	}
	w.Entities.Remove(id)
}

// Entity returns the live entity referenced by a tile, or nil
func (w *World) EntityAt(pos core.Point) *Entity {
	return w.Entities.Get(w.GetTileAt(pos).Obj)
}

// SetPlayer marks id as the distinguished player actor
func (w *World) SetPlayer(id EntityID) {
	w.player = id
}

// PlayerID returns the player handle, NoEntity before a game starts
func (w *World) PlayerID() EntityID {
	return w.player
}

// Player returns the player entity, or nil before a game starts
func (w *World) Player() *Entity {
	return w.Entities.Get(w.player)
}

// HasPlayer reports whether a game is in progress
func (w *World) HasPlayer() bool {
	return w.Player() != nil
}

// PlayerPosition returns the player position, origin when absent
func (w *World) PlayerPosition() core.Point {
	if p := w.Player(); p != nil {
		return p.Position
	}
	return core.Point{}
}

// PlayerDead reports whether the player exists and has no hit points left
func (w *World) PlayerDead() bool {
	p := w.Player()
	return p != nil && p.Actor.HP <= 0
}

// SetAttacked highlights the tile engaged by the current combat exchange
func (w *World) SetAttacked(pos core.Point) {
	w.attacked = pos
	w.hasAttacked = true
}

// ClearAttacked removes the combat highlight
func (w *World) ClearAttacked() {
	w.hasAttacked = false
}

// Attacked returns the highlighted tile, if any
func (w *World) Attacked() (core.Point, bool) {
	return w.attacked, w.hasAttacked
}

// Reset drops all terrain and entities
func (w *World) Reset() {
	w.Chunks.Clear()
	w.Entities.Clear()
	w.player = NoEntity
	w.hasAttacked = false
}
