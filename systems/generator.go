package systems

import (
	"hash/fnv"
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/logger"
)

// Generator fills chunks with terrain and spawns, deterministically from the seed
// Terrain and spawn passes are tracked separately so chunks restored from a save
// get their terrain recomputed without being repopulated
type Generator struct {
	world *engine.World
	seed  int64

	elevation *perlin.Perlin
	trees     *perlin.Perlin

	generated mapset.Set[core.Point] // Terrain pass done
	objects   mapset.Set[core.Point] // Spawn pass done or restored from save
}

// NewGenerator creates a generator bound to world
func NewGenerator(world *engine.World, seed int64) *Generator {
	g := &Generator{world: world}
	g.Reset(seed)
	return g
}

// Reset discards generation bookkeeping and reseeds the noise sources
// The world itself is not touched; callers reset it separately
func (g *Generator) Reset(seed int64) {
	g.seed = seed
	g.elevation = perlin.NewPerlin(constants.NoiseAlpha, constants.NoiseBeta, constants.NoiseOctaves, seed)
	g.trees = perlin.NewPerlin(constants.NoiseAlpha, constants.NoiseBeta, constants.NoiseOctaves, seed^constants.TreeNoiseSalt)
	g.generated = mapset.New[core.Point]()
	g.objects = mapset.New[core.Point]()
}

// Seed returns the active numeric seed
func (g *Generator) Seed() int64 {
	return g.seed
}

// IsGenerated reports whether the terrain pass already ran for chunk c
func (g *Generator) IsGenerated(c core.Point) bool {
	return g.generated.Has(c)
}

// MarkObjectsGenerated suppresses the spawn pass for chunk c
func (g *Generator) MarkObjectsGenerated(c core.Point) {
	g.objects.Put(c)
}

// ObjectsGenerated returns the chunks whose spawn pass is done, in no particular order
func (g *Generator) ObjectsGenerated() []core.Point {
	out := make([]core.Point, 0, g.objects.Size())
	g.objects.Each(func(c core.Point) {
		out = append(out, c)
	})
	return out
}

// GenerateChunk runs the terrain pass and, unless suppressed, the spawn pass for chunk c
// Re-invocation on a generated chunk is a no-op
func (g *Generator) GenerateChunk(c core.Point) {
	if g.generated.Has(c) {
		return
	}
	g.generated.Put(c)

	chunk := g.world.GetChunk(c)
	size := chunk.Size()
	origin := c.Scale(size)

	core.Range(core.Point{}, core.Pt(size-1, size-1), func(local core.Point) {
		g.terrain(origin.Add(local), chunk.At(local))
	})

	spawned := 0
	if !g.objects.Has(c) {
		g.objects.Put(c)
		core.Range(core.Point{}, core.Pt(size-1, size-1), func(local core.Point) {
			pos := origin.Add(local)
			if chunk.At(local).Type == engine.TileEmpty && g.spawn(pos) {
				spawned++
			}
		})
	}

	logger.Log.WithField("chunk", c).WithField("spawned", spawned).Debug("chunk generated")
}

// GenerateRange generates every chunk in the inclusive chunk rectangle [min, max]
func (g *Generator) GenerateRange(min, max core.Point) {
	core.Range(min, max, g.GenerateChunk)
}

// ElevationAt samples the clamped elevation for a world position
func (g *Generator) ElevationAt(pos core.Point) int {
	n := g.elevation.Noise2D(float64(pos.X)*constants.ElevationFrequency, float64(pos.Y)*constants.ElevationFrequency)
	e := int(math.Round(n * constants.ElevationScale))
	return core.Clamp(e, constants.ElevationMin, constants.ElevationMax)
}

func (g *Generator) terrain(pos core.Point, tile *engine.Tile) {
	elev := g.ElevationAt(pos)
	tile.Elevation = int8(elev)

	// Occupied tiles (restored entities) keep their content
	if tile.Obj != engine.NoEntity {
		return
	}

	switch {
	case elev <= constants.ElevationMin:
		tile.Type = engine.TileWater
	case elev >= constants.ElevationMax:
		tile.Type = engine.TileMountain
	case tile.Type == engine.TileEmpty && g.treeAt(pos, elev):
		tile.Type = engine.TileTree
	}
}

func (g *Generator) treeAt(pos core.Point, elev int) bool {
	n := g.trees.Noise2D(float64(pos.X)*constants.TreeFrequency, float64(pos.Y)*constants.TreeFrequency)
	chance := constants.TreeChance[elev-constants.ElevationMin-1] * (1 + constants.TreeNoiseGain*n)
	return g.tileRand(pos, constants.TerrainStreamSalt).Float64() < chance
}

// spawn rolls the spawn stream for one empty tile; reports whether an entity was placed
func (g *Generator) spawn(pos core.Point) bool {
	rng := g.tileRand(pos, constants.SpawnStreamSalt)
	if rng.Float64() >= constants.SpawnChance {
		return false
	}

	catalog := g.world.Catalog
	if rng.Float64() < constants.SpawnEnemyShare {
		var loot []engine.Item
		if catalog.Len() > 0 && rng.Float64() < constants.EnemyLootChance {
			loot = append(loot, engine.Item{Idx: rng.IntN(catalog.Len())})
		}
		g.world.SpawnActor(engine.TileEnemy, pos, constants.EnemyHP, constants.EnemyArmor, constants.EnemyDamage, loot...)
		return true
	}

	if catalog.Len() == 0 {
		return false
	}
	g.world.SpawnPickup(pos, engine.Item{Idx: rng.IntN(catalog.Len())})
	return true
}

// tileRand returns a stream reseeded from the global seed, the tile coordinate and a salt
func (g *Generator) tileRand(pos core.Point, salt uint64) *rand.Rand {
	h := uint64(int64(pos.X))*0x9e3779b97f4a7c15 ^ uint64(int64(pos.Y))*0xc2b2ae3d27d4eb4f ^ salt
	return rand.New(rand.NewPCG(uint64(g.seed), h))
}

// SeedFromText expands a user-supplied text seed into a numeric seed
// Numeric text is used as-is; anything else is hashed
func SeedFromText(text string) int64 {
	var n int64
	numeric := text != "" && len(text) <= 18
	for _, r := range text {
		if r < '0' || r > '9' {
			numeric = false
			break
		}
		n = n*10 + int64(r-'0')
	}
	if numeric {
		return n
	}
	h := fnv.New64a()
	h.Write([]byte(text))
	return int64(h.Sum64() &^ (1 << 63))
}

// RandomSeed picks a fresh seed for games started without one
func RandomSeed() int64 {
	return rand.Int64N(1 << 31)
}

// SpawnPlayer generates the chunks around the origin and places a new player on the
// nearest free land tile, searching outward ring by ring
func SpawnPlayer(world *engine.World, gen *Generator) engine.EntityID {
	size := world.Chunks.ChunkSize()
	reach := core.FloorDiv(constants.PlayerSpawnSearchRadius, size) + 1
	gen.GenerateRange(core.Pt(-reach, -reach), core.Pt(reach, reach))

	pos, ok := findSpawn(world, constants.PlayerSpawnSearchRadius)
	if !ok {
		// Fully blocked neighbourhood; clear the origin
		if id := world.GetTileAt(pos).Obj; id != engine.NoEntity {
			world.RetireEntity(id)
		}
		world.GetTileAt(pos).Clear()
	}

	id := world.SpawnActor(engine.TileFriendly, pos, constants.PlayerHP, constants.PlayerArmor, constants.PlayerDamage)
	world.SetPlayer(id)

	logger.Log.WithField("position", pos).WithField("seed", gen.Seed()).Info("player spawned")
	return id
}

func findSpawn(world *engine.World, radius int) (core.Point, bool) {
	for r := 0; r <= radius; r++ {
		var found core.Point
		ok := false
		core.Range(core.Pt(-r, -r), core.Pt(r, r), func(p core.Point) {
			if ok {
				return
			}
			a := p.Abs()
			if max(a.X, a.Y) != r {
				return
			}
			if world.GetTileAt(p).Type == engine.TileEmpty {
				found, ok = p, true
			}
		})
		if ok {
			return found, true
		}
	}
	return core.Point{}, false
}
