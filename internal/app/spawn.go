// internal/app/spawn.go
package app

import (
	"image/color"

	"go-stg-engine/internal/component"
	"go-stg-engine/internal/config"
	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/event"
	"go-stg-engine/internal/interfaces"
	"go-stg-engine/internal/script"
	"go-stg-engine/internal/types"
	"go-stg-engine/internal/utils"

	"golang.org/x/image/math/f64"
)

var _ interfaces.GameContext = (*Game)(nil)

// Spawn creates a bare object of kind with that kind's default profile.
func (g *Game) Spawn(kind types.Kind, x, y float64, ov defs.Overrides) types.Handle {
	o := newObject(kind, x, y)
	applyOverrides(o, ov)
	o.Profile = defs.DefaultProfile(kind, o.Radius)
	return g.insert(o)
}

// SpawnArchetype spawns an enemy from the pack. Unknown ids are skipped.
func (g *Game) SpawnArchetype(id string, x, y float64) {
	def, ok := g.Pack.Enemies[id]
	if !ok {
		g.logger.Warn("skip spawn", "enemy", id, "err", defs.ErrUnknownArchetype)
		return
	}
	o := newObject(types.KindEnemy, x, y)
	o.Archetype = id
	if def.HP > 0 {
		o.HP = def.HP
	}
	if def.Radius > 0 {
		o.Radius = def.Radius
	}
	o.Color = def.Color
	o.Score = def.Score
	o.AI = def.AI
	o.Profile = g.profile("enemy:"+id, def.Collision, types.KindEnemy, o.Radius)
	g.insert(o)
}

// SpawnBoss spawns a boss from the pack with its own copy of the armor grid.
func (g *Game) SpawnBoss(id string, x, y float64) {
	def, ok := g.Pack.Bosses[id]
	if !ok {
		g.logger.Warn("skip spawn", "boss", id, "err", defs.ErrUnknownArchetype)
		return
	}
	o := newObject(types.KindBoss, x, y)
	o.Archetype = id
	if def.HP > 0 {
		o.HP = def.HP
	}
	if def.Radius > 0 {
		o.Radius = def.Radius
	}
	o.Color = def.Color
	o.Score = def.Score
	if o.Score <= 0 {
		o.Score = config.DefaultBossScore
	}
	o.AI = def.AI
	o.Profile = g.profile("boss:"+id, def.Collision, types.KindBoss, o.Radius)
	if def.Grid != nil {
		tpl, ok := g.grids[id]
		if !ok {
			tpl = defs.BuildGrid(def.Grid)
			g.grids[id] = tpl
		}
		o.Grid = tpl.Clone()
	}
	g.insert(o)
	g.logger.Info("boss spawned", "boss", id, "name", def.Name)
}

// SpawnProjectile spawns a bullet from the pack. The player's default shot
// falls back to a plain projectile when the pack does not define it.
func (g *Game) SpawnProjectile(id string, x, y float64, ov defs.Overrides) types.Handle {
	def, ok := g.Pack.Bullets[id]
	if !ok {
		if id == config.PlayerShotID {
			return g.Spawn(types.KindPlayerProjectile, x, y, ov)
		}
		g.logger.Warn("skip spawn", "bullet", id, "err", defs.ErrUnknownArchetype)
		return types.Handle{}
	}
	kind, ok := types.ParseKind(def.Kind)
	if !ok || !kind.IsProjectile() {
		kind = types.KindEnemyProjectile
	}
	o := newObject(kind, x, y)
	o.Archetype = id
	o.Velocity = f64.Vec2{def.VX, def.VY}
	if def.Radius > 0 {
		o.Radius = def.Radius
	}
	o.Color = def.Color
	o.Homing = def.Homing
	applyOverrides(o, ov)
	o.Profile = g.profile("bullet:"+id, def.Collision, kind, o.Radius)
	return g.insert(o)
}

// PlayerPosition returns the player's world position, or where it was last
// seen while respawning.
func (g *Game) PlayerPosition() f64.Vec2 {
	if p := g.Player(); p != nil && p.Active {
		g.lastPlayer = p.World.Pos
	}
	return g.lastPlayer
}

func (g *Game) AddChild(parent, child types.Handle) {
	if !g.Arena.AddChild(parent, child) {
		g.logger.Debug("add child refused", "parent", parent, "child", child)
	}
}

// SpawnParticleEffect is cosmetic; it only reaches event listeners.
func (g *Game) SpawnParticleEffect(x, y float64, c color.Color, count int) {
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.ParticleBurst,
		Data: event.Particles{X: x, Y: y, Color: c, Count: count},
	})
}

func (g *Game) Object(h types.Handle) *entity.Object {
	return g.Arena.Get(h)
}

func (g *Game) Rand() *utils.PRNGService {
	return g.Rng
}

func (g *Game) insert(o *entity.Object) types.Handle {
	h := g.Arena.Insert(o)
	if ai, ok := script.LookupAI(o.AI); ok {
		if initializer, ok := ai.(script.Initializer); ok {
			initializer.Init(o, g)
		}
	}
	return h
}

// profile returns a private copy of the archetype's collision template.
// Archetypes without a usable template get the kind's default profile.
// The shape is sized per spawn since radius may come from overrides.
func (g *Game) profile(key string, def *defs.CollisionDefinition, kind types.Kind, radius float64) *component.CollisionProfile {
	tpl, ok := g.templates[key]
	if !ok {
		tpl = defs.BuildProfile(def, radius)
		g.templates[key] = tpl
	}
	if tpl == nil {
		return defs.DefaultProfile(kind, radius)
	}
	p := tpl.Clone()
	p.Shape = defs.BuildShape(def.Shape, def.Size, radius)
	return p
}

func newObject(kind types.Kind, x, y float64) *entity.Object {
	o := entity.New(kind, x, y)
	o.Radius = config.DefaultRadius
	if kind == types.KindEnemy || kind == types.KindBoss {
		o.HP = config.DefaultHP
		o.HasHP = true
	}
	return o
}

// applyOverrides copies only the fields a script may change at spawn.
func applyOverrides(o *entity.Object, ov defs.Overrides) {
	if ov.Velocity != nil {
		o.Velocity = *ov.Velocity
	}
	if ov.Radius > 0 {
		o.Radius = ov.Radius
	}
	if ov.HP > 0 {
		o.HP = ov.HP
		o.HasHP = true
	}
	if ov.Color != "" {
		o.Color = ov.Color
	}
	if ov.Angle != 0 {
		o.Local.Angle = ov.Angle
		o.World.Matrix = o.Local.Matrix()
	}
	if ov.Homing {
		o.Homing = true
	}
	if ov.AI != "" {
		o.AI = ov.AI
	}
	if ov.Life > 0 {
		o.Life = ov.Life
	}
}
