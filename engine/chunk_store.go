package engine

import "github.com/lixenwraith/vi-rogue/core"

// Chunk is a square block of tiles, the unit of lazy world materialization
// Tiles are row-major: index = y*size + x
type Chunk struct {
	size  int
	Tiles []Tile
}

func newChunk(size int) *Chunk {
	return &Chunk{
		size:  size,
		Tiles: make([]Tile, size*size),
	}
}

// Size returns the chunk side length
func (c *Chunk) Size() int {
	return c.size
}

// At returns the tile at a chunk-local coordinate in [0, size)
func (c *Chunk) At(local core.Point) *Tile {
	return &c.Tiles[local.Y*c.size+local.X]
}

// ChunkStore maps world coordinates to lazily-materialized chunks
// The world is unbounded; memory grows with the number of chunks ever touched
type ChunkStore struct {
	size   int
	chunks map[core.Point]*Chunk
}

// NewChunkStore creates an empty store with the given chunk side length
func NewChunkStore(size int) *ChunkStore {
	if size <= 0 {
		panic("chunk size must be positive")
	}
	return &ChunkStore{
		size:   size,
		chunks: make(map[core.Point]*Chunk),
	}
}

// ChunkSize returns the side length of every chunk
func (s *ChunkStore) ChunkSize() int {
	return s.size
}

// ChunkCoord returns the chunk index owning a world position (floor division)
func (s *ChunkStore) ChunkCoord(pos core.Point) core.Point {
	return pos.Div(s.size)
}

// GetChunk returns the chunk at a chunk coordinate, materializing a blank one if absent
func (s *ChunkStore) GetChunk(c core.Point) *Chunk {
	ch, ok := s.chunks[c]
	if !ok {
		ch = newChunk(s.size)
		s.chunks[c] = ch
	}
	return ch
}

// HasChunk reports whether a chunk has been materialized, without creating it
func (s *ChunkStore) HasChunk(c core.Point) bool {
	_, ok := s.chunks[c]
	return ok
}

// GetTileAt returns a mutable tile at any world coordinate; never fails
func (s *ChunkStore) GetTileAt(pos core.Point) *Tile {
	return s.GetChunk(pos.Div(s.size)).At(pos.Mod(s.size))
}

// Len returns the number of materialized chunks
func (s *ChunkStore) Len() int {
	return len(s.chunks)
}

// Clear drops every chunk
func (s *ChunkStore) Clear() {
	s.chunks = make(map[core.Point]*Chunk)
}
