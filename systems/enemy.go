package systems

import (
	"math/rand/v2"

	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
)

// Directions in choice order: up, left, down, right
var Directions = [4]core.Point{
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 0},
}

// EnemySystem advances every live non-player actor by one random step
type EnemySystem struct {
	world    *engine.World
	movement *MovementSystem

	// choose returns a value in [0, n); the enemy's turn choice
	choose func(n int) int
}

// NewEnemySystem creates an enemy system; a nil rng uses a randomly seeded stream
func NewEnemySystem(world *engine.World, movement *MovementSystem, rng *rand.Rand) *EnemySystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &EnemySystem{world: world, movement: movement, choose: rng.IntN}
}

// TakeTurns gives each enemy one move among the four directions or standing still
// Stops early once the player is dead
func (s *EnemySystem) TakeTurns() {
	player := s.world.PlayerID()
	s.world.Entities.ForEachLive(func(id engine.EntityID, e *engine.Entity) bool {
		if id == player || e.Kind != engine.KindActor {
			return true
		}
		if t := s.world.GetTileAt(e.Position); t.Type != engine.TileEnemy || t.Obj != id {
			return true
		}

		choice := s.choose(constants.EnemyStandChoices)
		if choice < len(Directions) {
			s.movement.Move(e.Position, Directions[choice])
		}
		return !s.world.PlayerDead()
	})
}
