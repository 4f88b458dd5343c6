package constants

import "time"

// Combat Pacing Constants
const (
	// CombatPulseDelay is the real-time pause after each damage application
	// Makes turn-based combat legible; has no effect on state ordering
	CombatPulseDelay = 100 * time.Millisecond

	// ArmorDamageCap is the armor value above which incoming damage starts to be reduced
	// Multiplier is min(1, ArmorDamageCap/armor)
	ArmorDamageCap = 5.0
)

// Player Constants
const (
	// PlayerHP is the starting hit points of a new player
	PlayerHP = 100

	// PlayerArmor is the starting armor of a new player
	PlayerArmor = 0

	// PlayerDamage is the starting damage of a new player
	PlayerDamage = 5

	// PlayerSpawnSearchRadius bounds the outward search for a free starting tile
	PlayerSpawnSearchRadius = 64
)

// Enemy Constants
const (
	// EnemyHP is the hit points of a freshly spawned enemy
	EnemyHP = 10

	// EnemyArmor is the armor of a freshly spawned enemy
	EnemyArmor = 0

	// EnemyDamage is the damage of a freshly spawned enemy
	EnemyDamage = 3

	// EnemyLootChance is the probability that a spawned enemy carries one catalog item
	EnemyLootChance = 0.5

	// EnemyStandChoices is the number of turn choices; the last one means stand still
	EnemyStandChoices = 5
)

// Camera Constants
const (
	// CameraDriftNum and CameraDriftDen scale half the canvas into the drift threshold (3/4)
	CameraDriftNum = 3
	CameraDriftDen = 4

	// CameraPrefetchMargin is the extra ring of chunks generated around the view
	CameraPrefetchMargin = 1
)
