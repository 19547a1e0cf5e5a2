// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"go-stg-engine/internal/component"
	"go-stg-engine/internal/config"
	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/event"
	"go-stg-engine/internal/system"
	"go-stg-engine/internal/types"
	"go-stg-engine/internal/utils"
	"go-stg-engine/pkg/terrain"

	"github.com/google/uuid"
	"golang.org/x/image/math/f64"
)

// Stats — счёт и ресурсы игрока.
type Stats struct {
	Score   int
	HiScore int
	Lives   int
	Bombs   int
	Power   int
}

// Game owns the whole simulation of one session and is the context every
// script and system talks to.
type Game struct {
	ID              uuid.UUID
	Pack            *defs.Pack
	Arena           *entity.Arena
	Field           *terrain.Field
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	Stats           Stats

	TransformSystem    *system.TransformSystem
	MovementSystem     *system.MovementSystem
	PlayerSystem       *system.PlayerSystem
	CollisionSystem    *system.CollisionSystem
	BoundsSystem       *system.BoundsSystem
	VisualEffectSystem *system.VisualEffectSystem
	StageSystem        *system.StageSystem

	logger    *slog.Logger
	templates map[string]*component.CollisionProfile
	grids     map[string]*component.BossGrid
	summary   *Summary

	player       types.Handle
	lastPlayer   f64.Vec2
	respawnTimer int
	over         bool
	tick         int
	status       string
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithSeed fixes the session seed; 0 picks one from the clock.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.Rng = utils.NewPRNGService(seed) }
}

// WithHiScore carries a hiscore over from an earlier session.
func WithHiScore(hi int) Option {
	return func(g *Game) { g.Stats.HiScore = hi }
}

// NewGame starts a session on pack: spawns the player and begins wave 1.
func NewGame(pack *defs.Pack, opts ...Option) (*Game, error) {
	if pack == nil {
		return nil, errors.New("nil pack")
	}
	if len(pack.Stages) == 0 {
		return nil, fmt.Errorf("pack %q: no stages", pack.Name)
	}

	g := &Game{
		ID:              uuid.New(),
		Pack:            pack,
		Arena:           entity.NewArena(),
		EventDispatcher: event.NewDispatcher(),
		logger:          slog.Default(),
		templates:       make(map[string]*component.CollisionProfile),
		grids:           make(map[string]*component.BossGrid),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(0)
	}
	g.logger = g.logger.With("session", g.ID.String(), "pack", pack.Name)

	g.Stats.Lives = config.StartLives
	g.Stats.Bombs = config.StartBombs

	g.Field = terrain.NewField(terrain.Config{}, g.Rng.Range(0, 100), config.TerrainCellSize, config.ScreenWidth)
	g.TransformSystem = system.NewTransformSystem(g.Arena)
	g.MovementSystem = system.NewMovementSystem(g.Arena, g.logger)
	g.PlayerSystem = system.NewPlayerSystem(g)
	g.CollisionSystem = system.NewCollisionSystem(g.Arena, g.Field, g)
	g.BoundsSystem = system.NewBoundsSystem(g.Arena)
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.Arena)
	g.StageSystem = system.NewStageSystem(pack, g.Field, g.EventDispatcher, g.logger)

	g.summary = &Summary{}
	g.EventDispatcher.SubscribeAll(g.summary,
		event.EnemyDestroyed, event.BossDestroyed, event.BossCellCleared, event.PlayerHit,
		event.ItemCollected, event.WaveStarted, event.TerrainCarved)
	g.EventDispatcher.SubscribeAll(&GameEventListener{game: g}, event.StatusText)

	g.spawnPlayer()
	g.StageSystem.Start(g)
	g.TransformSystem.Update()

	g.logger.Info("session started", "seed", g.Rng.Seed(), "stages", len(pack.Stages))
	return g, nil
}

// Tick advances the simulation by one step. It does nothing after game over.
func (g *Game) Tick(in system.Input) {
	if g.over {
		return
	}
	g.tick++

	g.StageSystem.Update(g)
	g.PlayerSystem.Update(g.Player(), in)
	g.MovementSystem.Update(g)
	g.TransformSystem.Update()
	g.CollisionSystem.Update()
	g.BoundsSystem.Update()
	g.VisualEffectSystem.Update()

	removed := g.Arena.Reap()
	if len(removed) > 0 {
		g.logger.Debug("reaped", "tick", g.tick, "count", len(removed), "live", g.Arena.Len())
	}
	g.updateRespawn()
	g.Field.Scroll(config.ScrollSpeed)
}

// Over reports whether the last life was lost.
func (g *Game) Over() bool {
	return g.over
}

// Ticks returns the number of simulated ticks.
func (g *Game) Ticks() int {
	return g.tick
}

// Status returns the last status text.
func (g *Game) Status() string {
	return g.status
}

// Summary returns the running event tally.
func (g *Game) Summary() Summary {
	return *g.summary
}

// Player returns the live player object or nil while respawning.
func (g *Game) Player() *entity.Object {
	return g.Arena.Get(g.player)
}

func (g *Game) spawnPlayer() {
	p := entity.New(types.KindPlayer, config.PlayerStartX, config.PlayerStartY)
	p.Radius = config.PlayerRadius
	p.Color = "#0ff"
	p.Profile = defs.DefaultProfile(types.KindPlayer, p.Radius)
	g.player = g.Arena.Insert(p)
	g.lastPlayer = p.World.Pos
}

func (g *Game) updateRespawn() {
	if g.respawnTimer <= 0 {
		return
	}
	g.respawnTimer--
	if g.respawnTimer > 0 || g.over {
		return
	}
	g.spawnPlayer()
	g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerRespawned, Data: g.playerState()})
}

func (g *Game) playerState() event.PlayerState {
	return event.PlayerState{Lives: g.Stats.Lives, Bombs: g.Stats.Bombs, Power: g.Stats.Power}
}

// GameEventListener обрабатывает события, важные для самой сессии.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.StatusText:
		if text, ok := e.Data.(string); ok {
			l.game.status = text
			l.game.logger.Debug("status", "text", text, "tick", l.game.tick)
		}
	}
}
