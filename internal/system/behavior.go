// internal/system/behavior.go
package system

import (
	"math"

	"go-stg-engine/internal/component"
	"go-stg-engine/internal/config"
	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/interfaces"
	"go-stg-engine/internal/types"
	"go-stg-engine/internal/utils"
	"go-stg-engine/pkg/collide"

	"golang.org/x/image/math/f64"
)

// BehaviorResolver применяет последствия попадания: к действующему объекту
// его собственное поведение, к поражённому его OnHit-эффекты.
type BehaviorResolver struct {
	ctx interfaces.CombatContext
}

func NewBehaviorResolver(ctx interfaces.CombatContext) *BehaviorResolver {
	return &BehaviorResolver{ctx: ctx}
}

// Resolve handles actor hitting struck in the generic overlap path.
func (r *BehaviorResolver) Resolve(actor, struck *entity.Object) {
	if actor.Kind == types.KindPlayer {
		r.resolvePlayer(actor, struck)
		return
	}
	var b *component.Behavior
	if actor.Profile != nil {
		b = actor.Profile.Behavior
	}
	if b.AlreadyStruck(struck.Handle) {
		return
	}
	b.MarkStruck(struck.Handle)
	shape := collide.NewCircle(config.DefaultRadius)
	if struck.Profile != nil {
		shape = struck.Profile.Shape
	}
	r.applySelf(actor, overlapAxis(actor, shape, struck.World.Pos))
	r.applyStruck(actor, struck)
}

// ResolveTerrain handles actor entering solid terrain. surface is the axis an
// Auto reflect mirrors, as worked out from the actor's motion into the field.
func (r *BehaviorResolver) ResolveTerrain(actor *entity.Object, surface component.ReflectAxis) {
	if actor.Kind == types.KindPlayer {
		r.ctx.PlayerHit(actor)
		return
	}
	pos := actor.World.Pos
	r.applySelf(actor, surface)
	if actor.Kind == types.KindPlayerProjectile {
		r.ctx.CarveTerrain(pos)
		r.ctx.SpawnParticleEffect(pos[0], pos[1], config.TerrainColor, config.TerrainParticles)
	}
}

// Kill runs the death sequence. Bomb kills skip the item drop.
func (r *BehaviorResolver) Kill(o *entity.Object, drop bool) {
	o.Deactivate()
	x, y := o.World.Pos[0], o.World.Pos[1]
	r.ctx.SpawnExplosion(x, y)
	score := o.Score
	if score <= 0 {
		score = config.DefaultEnemyScore
	}
	r.ctx.AddScore(score)
	if drop {
		r.ctx.RollItemDrop(x, y)
	}
	r.ctx.Destroyed(o)
}

func (r *BehaviorResolver) resolvePlayer(player, struck *entity.Object) {
	if struck.Kind == types.KindItem {
		struck.Deactivate()
		r.ctx.CollectItem(struck)
		return
	}
	r.ctx.PlayerHit(player)
}

// overlapAxis picks the axis with the shallower box overlap between actor and
// the shape it struck.
func overlapAxis(actor *entity.Object, struckShape collide.Shape, struckPos f64.Vec2) component.ReflectAxis {
	shape := collide.NewCircle(config.DefaultRadius)
	if actor.Profile != nil {
		shape = actor.Profile.Shape
	}
	px, py := collide.Penetration(shape, actor.World.Pos, struckShape, struckPos)
	if px < py {
		return component.AxisHorizontal
	}
	return component.AxisVertical
}

// applySelf runs the actor's own behavior. auto is the axis an Auto reflect
// uses.
func (r *BehaviorResolver) applySelf(actor *entity.Object, auto component.ReflectAxis) {
	if actor.Profile == nil || actor.Profile.Behavior == nil {
		return
	}
	b := actor.Profile.Behavior
	switch b.Kind {
	case component.BehaviorDestroy:
		actor.Deactivate()
	case component.BehaviorPierce:
		if b.Remaining > 0 {
			b.Remaining--
		} else {
			actor.Deactivate()
		}
	case component.BehaviorReflect:
		r.reflect(actor, b, auto)
	case component.BehaviorSplit:
		r.split(actor, b)
	}
}

func (r *BehaviorResolver) reflect(actor *entity.Object, b *component.Behavior, auto component.ReflectAxis) {
	if b.BouncesLeft <= 0 {
		actor.Deactivate()
		return
	}
	axis := b.Axis
	if axis == component.AxisAuto {
		axis = auto
	}
	switch axis {
	case component.AxisHorizontal:
		actor.Velocity[0] = -actor.Velocity[0]
	case component.AxisVertical:
		actor.Velocity[1] = -actor.Velocity[1]
	}
	actor.Velocity[0] *= b.Dampen
	actor.Velocity[1] *= b.Dampen
	b.BouncesLeft--
	if b.BouncesLeft == 0 {
		actor.Deactivate()
	}
}

func (r *BehaviorResolver) split(actor *entity.Object, b *component.Behavior) {
	heading := actor.Heading()
	actor.Deactivate()
	if b.SpawnArchetype == "" {
		return
	}
	x, y := actor.World.Pos[0], actor.World.Pos[1]
	for _, a := range utils.SpreadHeadings(heading, b.SpreadAngle, b.Count) {
		v := utils.Polar(a, b.Speed)
		r.ctx.SpawnProjectile(b.SpawnArchetype, x, y, defs.Overrides{Velocity: &v})
	}
}

func (r *BehaviorResolver) applyStruck(actor, struck *entity.Object) {
	var effects []component.OnHitEffect
	if actor.Profile != nil && actor.Profile.Behavior != nil {
		effects = actor.Profile.Behavior.OnHit
	}
	if len(effects) == 0 {
		// старые пули без onHit: 1 урона врагам и боссу
		if actor.Kind == types.KindPlayerProjectile && (struck.Kind == types.KindEnemy || struck.Kind == types.KindBoss) {
			r.damage(struck, 1)
		}
		return
	}
	for _, e := range effects {
		switch e.Kind {
		case component.EffectDamage:
			r.damage(struck, e.Amount)
		case component.EffectModify:
			modify(struck, e.Property, e.Multiplier)
		}
	}
}

// damage subtracts hp. A boss body never dies here; only its core cell ends it.
func (r *BehaviorResolver) damage(o *entity.Object, amount int) {
	if !o.HasHP || !o.Active {
		return
	}
	o.HP -= amount
	r.ctx.SpawnParticleEffect(o.World.Pos[0], o.World.Pos[1], config.HitColor, config.HitParticles)
	if o.HP > 0 || o.Kind == types.KindBoss {
		return
	}
	r.Kill(o, true)
}

func modify(o *entity.Object, property string, m float64) {
	switch property {
	case "speed":
		o.Velocity[0] *= m
		o.Velocity[1] *= m
	case "vx":
		o.Velocity[0] *= m
	case "vy":
		o.Velocity[1] *= m
	case "radius":
		o.Radius *= m
		if o.Profile != nil {
			o.Profile.Shape = o.Profile.Shape.Scaled(m)
		}
	case "hp":
		if o.HasHP {
			o.HP = int(math.Round(float64(o.HP) * m))
		}
	case "score":
		o.Score = int(math.Round(float64(o.Score) * m))
	}
}
