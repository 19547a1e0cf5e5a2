// internal/app/combat.go
package app

import (
	"go-stg-engine/internal/config"
	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/event"
	"go-stg-engine/internal/interfaces"
	"go-stg-engine/internal/types"

	"golang.org/x/image/math/f64"
)

var _ interfaces.CombatContext = (*Game)(nil)

const (
	statusBombExtend = "BOMB EXTEND!"
	statusPowerUp    = "POWER UP!"
)

// AddScore начисляет очки и обновляет рекорд.
func (g *Game) AddScore(points int) {
	g.Stats.Score += points
	if g.Stats.Score > g.Stats.HiScore {
		g.Stats.HiScore = g.Stats.Score
	}
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.ScoreChanged,
		Data: event.Score{Delta: points, Total: g.Stats.Score, HiScore: g.Stats.HiScore},
	})
}

func (g *Game) SpawnExplosion(x, y float64) {
	g.SpawnParticleEffect(x, y, config.ExplosionColor, config.ExplosionParticles)
}

// RollItemDrop spawns a falling item with config.ItemDropChance.
func (g *Game) RollItemDrop(x, y float64) {
	if !g.Rng.Chance(config.ItemDropChance) {
		return
	}
	g.spawnItem(g.Rng.ChooseWeighted(defs.ItemLoot), x, y)
}

func (g *Game) spawnItem(itemType string, x, y float64) types.Handle {
	o := newObject(types.KindItem, x, y)
	o.ItemType = itemType
	o.Radius = config.ItemRadius
	o.Velocity = f64.Vec2{0, config.ItemFallSpeed}
	o.Color = "#0f0"
	if itemType == config.ItemBomb {
		o.Color = "#f00"
	}
	o.Profile = defs.DefaultProfile(types.KindItem, o.Radius)
	return g.insert(o)
}

func (g *Game) ShowStatus(text string) {
	g.EventDispatcher.Dispatch(event.Event{Type: event.StatusText, Data: text})
}

// PlayerHit — взрыв, минус жизнь и уровень мощности; после последней
// жизни игра окончена, иначе возрождение через config.RespawnDelayTicks.
func (g *Game) PlayerHit(player *entity.Object) {
	if player == nil || !player.Active {
		return
	}
	g.SpawnExplosion(player.World.Pos[0], player.World.Pos[1])
	g.lastPlayer = player.World.Pos
	player.Deactivate()
	g.Stats.Lives--
	g.Stats.Power = max(0, g.Stats.Power-1)
	g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: g.playerState()})

	if g.Stats.Lives < 0 {
		g.over = true
		g.respawnTimer = 0
		g.logger.Info("game over", "tick", g.tick, "score", g.Stats.Score, "hiscore", g.Stats.HiScore)
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.playerState()})
		return
	}
	g.respawnTimer = config.RespawnDelayTicks
}

func (g *Game) CollectItem(item *entity.Object) {
	switch item.ItemType {
	case config.ItemBomb:
		g.Stats.Bombs++
		g.ShowStatus(statusBombExtend)
	case config.ItemPower:
		g.Stats.Power++
		g.AddScore(config.PowerItemScore)
		g.ShowStatus(statusPowerUp)
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.ItemCollected, Data: item.ItemType})
}

func (g *Game) Destroyed(obj *entity.Object) {
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: destroyedOf(obj)})
}

func (g *Game) CellCleared(boss *entity.Object, row, col int, core bool) {
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.BossCellCleared,
		Data: event.CellCleared{Boss: boss.Handle, Row: row, Col: col, Core: core},
	})
}

func (g *Game) BossDestroyed(boss *entity.Object) {
	g.logger.Info("boss destroyed", "boss", boss.Archetype, "tick", g.tick)
	g.EventDispatcher.Dispatch(event.Event{Type: event.BossDestroyed, Data: destroyedOf(boss)})
}

func (g *Game) CarveTerrain(p f64.Vec2) {
	g.Field.CarveAtWorld(p)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TerrainCarved, Data: [2]float64{p[0], p[1]}})
}

// UseBomb clears enemy bullets and damages every enemy. Bomb kills do not
// drop items. Returns false when no bomb is left.
func (g *Game) UseBomb() bool {
	if g.Stats.Bombs <= 0 {
		return false
	}
	g.Stats.Bombs--
	for _, o := range g.Arena.Objects() {
		if !o.Active {
			continue
		}
		switch o.Kind {
		case types.KindEnemyProjectile:
			o.Deactivate()
			g.SpawnParticleEffect(o.World.Pos[0], o.World.Pos[1], config.BombClearColor, 1)
		case types.KindEnemy:
			if !o.HasHP {
				continue
			}
			o.HP -= config.BombDamage
			if o.HP <= 0 {
				g.CollisionSystem.Resolver().Kill(o, false)
			}
		}
	}
	g.Spawn(types.KindEffect, config.ScreenWidth/2, config.ScreenHeight/2, defs.Overrides{Life: config.BombFlashLife})
	return true
}

func destroyedOf(o *entity.Object) event.Destroyed {
	return event.Destroyed{Handle: o.Handle, Kind: o.Kind, X: o.World.Pos[0], Y: o.World.Pos[1], Score: o.Score}
}
