package modes

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/logger"
	"github.com/lixenwraith/vi-rogue/savegame"
	"github.com/lixenwraith/vi-rogue/systems"
)

// HitSound plays feedback for one combat blow
type HitSound interface {
	PlayHit()
}

// Options configures a GameContext
type Options struct {
	Config     *config.Config
	SavesDir   string
	Sound      HitSound      // Optional
	PulseDelay time.Duration // Pause after each combat blow
	EnemyRand  *rand.Rand    // Optional; random when nil
}

// GameContext is the application context: domain model, systems, and UI stacks
// Only the input-handling goroutine touches it
type GameContext struct {
	World     *engine.World
	Generator *systems.Generator
	Movement  *systems.MovementSystem
	Enemies   *systems.EnemySystem
	Camera    systems.Camera
	Palette   config.Palette
	Menus     *Menus

	SavesDir   string
	Sound      HitSound
	PulseDelay time.Duration

	// Redraw renders the current state immediately; set by the composition root
	Redraw func()

	views     []View
	menus     []*Menu
	selection int

	status string
	quit   bool
}

// NewGameContext wires the world, systems and menus, starting at the main menu
func NewGameContext(opts Options) *GameContext {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	savesDir := opts.SavesDir
	if savesDir == "" {
		savesDir = constants.DefaultSavesDir
	}

	world := engine.NewWorld(constants.ChunkSize, cfg.Catalog())
	ctx := &GameContext{
		World:      world,
		Generator:  systems.NewGenerator(world, systems.RandomSeed()),
		Palette:    cfg.Palette,
		SavesDir:   savesDir,
		Sound:      opts.Sound,
		PulseDelay: opts.PulseDelay,
	}
	ctx.Movement = systems.NewMovementSystem(world, ctx)
	ctx.Movement.OnPlayerDeath = ctx.onPlayerDeath
	ctx.Enemies = systems.NewEnemySystem(world, ctx.Movement, opts.EnemyRand)
	ctx.Menus = buildMenus(ctx)

	ctx.views = []View{ViewMenu}
	ctx.SetMenu(ctx.Menus.Main)
	return ctx
}

// Pulse paces one combat blow: redraw, hit sound, short pause
func (c *GameContext) Pulse() {
	if c.Redraw != nil {
		c.Redraw()
	}
	if c.Sound != nil {
		c.Sound.PlayHit()
	}
	if c.PulseDelay > 0 {
		time.Sleep(c.PulseDelay)
	}
}

// Status returns the last status message
func (c *GameContext) Status() string {
	return c.status
}

// SetStatus replaces the status message
func (c *GameContext) SetStatus(format string, args ...any) {
	c.status = fmt.Sprintf(format, args...)
}

// Quit requests the event loop to stop
func (c *GameContext) Quit() {
	c.quit = true
}

// Quitting reports whether Quit was requested
func (c *GameContext) Quitting() bool {
	return c.quit
}

// Resize records a new terminal size and prefetches the visible chunks
func (c *GameContext) Resize(w, h int) {
	c.Camera.Resize(w, max(0, h-constants.StatusBarHeight))
	if c.World.HasPlayer() {
		c.Camera.Prefetch(c.Generator)
	}
}

// NewGame discards the current world and starts over
// An empty seed picks a random one
func (c *GameContext) NewGame(seedText string) {
	seed := systems.RandomSeed()
	if seedText != "" {
		seed = systems.SeedFromText(seedText)
	}

	c.World.Reset()
	c.Generator.Reset(seed)
	systems.SpawnPlayer(c.World, c.Generator)

	c.Camera.Center(c.World.PlayerPosition())
	c.Camera.Prefetch(c.Generator)
	c.SetView(ViewGame)
	c.SetStatus(constants.StatusNewGame, seed)

	logger.Log.WithFields(logrus.Fields{
		"seed":      seed,
		"seed_text": seedText,
	}).Info("new game")
}

// SaveGame writes the current game to save slot name and returns to the game
func (c *GameContext) SaveGame(name string) error {
	path, err := c.writeSave(name)
	if err != nil {
		c.SetStatus(constants.StatusSaveFailed, err)
		logger.Log.WithError(err).WithField("name", name).Error("save failed")
		return err
	}

	c.SetView(ViewGame)
	c.SetStatus(constants.StatusSaved, filepath.Base(path))
	logger.Log.WithField("path", path).Info("game saved")
	return nil
}

func (c *GameContext) writeSave(name string) (string, error) {
	doc, err := savegame.Capture(c.World, c.Generator, c.Camera.Position)
	if err != nil {
		return "", err
	}
	return savegame.Write(c.SavesDir, name, doc)
}

// LoadGame replaces the current game with the save at path
// On failure the current game and menus are left as they were
func (c *GameContext) LoadGame(path string) error {
	doc, err := c.readSave(path)
	if err != nil {
		c.SetStatus(constants.StatusLoadFailed, err)
		logger.Log.WithError(err).WithField("path", path).Warn("load aborted")
		return err
	}

	c.Camera.Center(doc.Camera.Point())
	c.Camera.Prefetch(c.Generator)
	c.SetView(ViewGame)
	c.SetStatus(constants.StatusLoaded, filepath.Base(path))

	logger.Log.WithFields(logrus.Fields{
		"path":    path,
		"seed":    doc.Seed,
		"objects": len(doc.Objects),
	}).Info("game loaded")
	return nil
}

func (c *GameContext) readSave(path string) (*savegame.Document, error) {
	doc, err := savegame.Read(path)
	if err != nil {
		return nil, err
	}
	if err := savegame.Restore(doc, c.World, c.Generator); err != nil {
		return nil, err
	}
	return doc, nil
}

// PlayerTurn moves the player by dir; enemies act only if the player acted
func (c *GameContext) PlayerTurn(dir core.Point) bool {
	if !c.World.HasPlayer() || c.World.PlayerDead() {
		return false
	}
	if !c.Movement.Move(c.World.PlayerPosition(), dir) {
		return false
	}
	if c.World.PlayerDead() {
		return true
	}

	c.Camera.Update(c.World.PlayerPosition(), c.Generator)
	c.Enemies.TakeTurns()
	return true
}

func (c *GameContext) onPlayerDeath() {
	c.SetView(ViewMenu)
	c.SetMenu(c.Menus.Dead)
	c.SetStatus(constants.StatusPlayerDied)
}
