package savegame

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/systems"
)

// ErrNoPlayer is returned when capturing a world without a game in progress
var ErrNoPlayer = errors.New("no game in progress")

// ErrBadName is returned for save names that are empty or escape the saves directory
var ErrBadName = errors.New("invalid save name")

// Capture snapshots the world, generation bookkeeping and camera
func Capture(world *engine.World, gen *systems.Generator, camera core.Point) (*Document, error) {
	player := world.Player()
	if player == nil {
		return nil, ErrNoPlayer
	}

	doc := &Document{
		Seed:    gen.Seed(),
		Camera:  CoordOf(camera),
		Player:  objectFromEntity(engine.TileFriendly, player),
		Objects: make([]Object, 0, world.Entities.Live()),
	}

	chunks := gen.ObjectsGenerated()
	sort.Slice(chunks, func(i, j int) bool {
		if chunks[i].Y != chunks[j].Y {
			return chunks[i].Y < chunks[j].Y
		}
		return chunks[i].X < chunks[j].X
	})
	doc.GeneratedChunks = make([]Coord, 0, len(chunks))
	for _, c := range chunks {
		doc.GeneratedChunks = append(doc.GeneratedChunks, CoordOf(c))
	}

	playerID := world.PlayerID()
	world.Entities.ForEachLive(func(id engine.EntityID, e *engine.Entity) bool {
		if id == playerID {
			return true
		}
		tile := world.GetTileAt(e.Position)
		if tile.Obj != id {
			return true
		}
		doc.Objects = append(doc.Objects, objectFromEntity(tile.Type, e))
		return true
	})

	return doc, nil
}

// Path returns the file path for save slot name under dir
func Path(dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	if !strings.HasSuffix(name, constants.SaveExtension) {
		name += constants.SaveExtension
	}
	return filepath.Join(dir, name), nil
}

// Write stores doc as save slot name under dir, creating dir if needed
func Write(dir, name string, doc *Document) (string, error) {
	path, err := Path(dir, name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create saves dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode save: %w", err)
	}

	// Write-then-rename so a failed write never truncates an existing slot
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write save: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("write save: %w", err)
	}
	return path, nil
}

// Read parses a save file
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode save %s: %w", filepath.Base(path), err)
	}
	return &doc, nil
}

// List returns the save files in dir, sorted by name
// A missing directory has no saves
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list saves: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != constants.SaveExtension {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Validate checks a document against the catalog without touching any world
func Validate(doc *Document, catalog *engine.Catalog) error {
	typ, err := doc.Player.TileType()
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if typ != engine.TileFriendly {
		return fmt.Errorf("player: expected type %s, got %s", engine.TileFriendly, typ)
	}
	if err := validateItems("player", doc.Player.Items, catalog); err != nil {
		return err
	}

	seen := map[Coord]bool{doc.Player.Position: true}
	for i := range doc.Objects {
		o := &doc.Objects[i]
		label := fmt.Sprintf("objects[%d]", i)

		typ, err := o.TileType()
		if err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
		if !typ.HoldsEntity() {
			return fmt.Errorf("%s: %s is not an entity type", label, typ)
		}
		if seen[o.Position] {
			return fmt.Errorf("%s: position %v already occupied", label, o.Position)
		}
		seen[o.Position] = true

		if typ == engine.TileItem {
			if !catalog.Valid(o.Idx) {
				return fmt.Errorf("%s: item index %d out of range", label, o.Idx)
			}
			continue
		}
		if err := validateItems(label, o.Items, catalog); err != nil {
			return err
		}
	}
	return nil
}

func validateItems(label string, items []ItemPair, catalog *engine.Catalog) error {
	for j, it := range items {
		if !catalog.Valid(it.Idx) {
			return fmt.Errorf("%s: items[%d] index %d out of range", label, j, it.Idx)
		}
	}
	return nil
}

// Restore replaces the world with the document's contents
// The document is validated first; on error the world is untouched
// Chunks holding restored entities are marked so the spawn pass skips them
func Restore(doc *Document, world *engine.World, gen *systems.Generator) error {
	if err := Validate(doc, world.Catalog); err != nil {
		return fmt.Errorf("invalid save: %w", err)
	}

	world.Reset()
	gen.Reset(doc.Seed)

	for _, c := range doc.GeneratedChunks {
		gen.MarkObjectsGenerated(c.Point())
	}

	place := func(o *Object) engine.EntityID {
		pos := o.Position.Point()
		gen.MarkObjectsGenerated(world.Chunks.ChunkCoord(pos))
		typ, _ := o.TileType()
		if typ == engine.TileItem {
			return world.SpawnPickup(pos, engine.Item{Idx: o.Idx})
		}
		return world.SpawnActor(typ, pos, o.HP, o.Armor, o.Damage, o.items()...)
	}

	world.SetPlayer(place(&doc.Player))
	for i := range doc.Objects {
		place(&doc.Objects[i])
	}
	return nil
}
