package constants

// Chunk Constants
const (
	// ChunkSize is the side length of a square chunk in tiles
	ChunkSize = 64
)

// Terrain Generation Constants
const (
	// ElevationMin and ElevationMax bound tile elevation
	ElevationMin = -2
	ElevationMax = 2

	// ElevationFrequency is the spatial frequency of the elevation noise
	ElevationFrequency = 0.05

	// ElevationScale converts raw noise into elevation steps before clamping
	ElevationScale = 4.0

	// TreeFrequency is the spatial frequency of the vegetation noise
	TreeFrequency = 0.21

	// TreeNoiseGain weights the vegetation noise against the base tree chance
	TreeNoiseGain = 2.0

	// NoiseAlpha, NoiseBeta, NoiseOctaves tune the coherent noise source
	NoiseAlpha   = 2.0
	NoiseBeta    = 2.0
	NoiseOctaves = 3

	// TreeNoiseSalt decorrelates the vegetation noise from the elevation noise
	TreeNoiseSalt = 0x5eed

	// TerrainStreamSalt seeds the per-tile stream used for vegetation rolls
	TerrainStreamSalt = 0x7e44

	// SpawnStreamSalt decorrelates the spawn stream from the terrain stream of the same tile
	SpawnStreamSalt = 0x51a7
)

// TreeChance maps elevation -1, 0, 1 to the base tree probability
// Scaled by 1 + TreeNoiseGain*noise at that tile, so forests clump
var TreeChance = [3]float64{0.05, 0.20, 0.45}

// Spawn Constants
const (
	// SpawnChance is the per-tile probability that an empty tile rolls a spawn
	SpawnChance = 0.003

	// SpawnEnemyShare is the fraction of spawns that are enemies; the rest are item pickups
	SpawnEnemyShare = 0.8
)
