// internal/system/collision.go
package system

import (
	"math"

	"go-stg-engine/internal/component"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/interfaces"
	"go-stg-engine/internal/types"
	"go-stg-engine/pkg/collide"
	"go-stg-engine/pkg/terrain"

	"golang.org/x/image/math/f64"
)

// CollisionSystem находит пары, которые касаются друг друга, и передаёт их
// в BehaviorResolver. Побочные эффекты идут только через CombatContext.
type CollisionSystem struct {
	arena    *entity.Arena
	field    *terrain.Field
	resolver *BehaviorResolver
}

func NewCollisionSystem(arena *entity.Arena, field *terrain.Field, ctx interfaces.CombatContext) *CollisionSystem {
	return &CollisionSystem{
		arena:    arena,
		field:    field,
		resolver: NewBehaviorResolver(ctx),
	}
}

// Resolver exposes the resolver for effects that kill outside a collision.
func (s *CollisionSystem) Resolver() *BehaviorResolver {
	return s.resolver
}

// Update runs the terrain pass, then the pairwise scan. Objects spawned
// during resolution join next tick.
func (s *CollisionSystem) Update() {
	objs := s.arena.Objects()
	if s.field != nil {
		s.terrainPass(objs)
	}
	s.pairScan(objs)
}

func (s *CollisionSystem) terrainPass(objs []*entity.Object) {
	for _, o := range objs {
		if !o.Active || !o.Profile.Targets(types.LayerTerrain) {
			continue
		}
		pos := o.World.Pos
		if !s.field.SolidAtWorld(pos) {
			continue
		}
		v := s.groundVelocity(o)
		// отскочивший объект ещё внутри и уже летит наружу
		if reflects(o) && s.field.SolidAtWorld(f64.Vec2{pos[0] - v[0], pos[1] - v[1]}) {
			continue
		}
		s.resolver.ResolveTerrain(o, s.entryAxis(pos, v))
	}
}

// groundVelocity is o's last step relative to the scrolling field.
func (s *CollisionSystem) groundVelocity(o *entity.Object) f64.Vec2 {
	d := s.field.Drift()
	return f64.Vec2{o.Velocity[0] - d[0], o.Velocity[1] - d[1]}
}

// entryAxis finds which component of step v carried pos into solid ground.
// Undoing only the y move and still being solid means x did it, and the
// other way round. Corners fall back to the dominant component.
func (s *CollisionSystem) entryAxis(pos, v f64.Vec2) component.ReflectAxis {
	byX := s.field.SolidAtWorld(f64.Vec2{pos[0], pos[1] - v[1]})
	byY := s.field.SolidAtWorld(f64.Vec2{pos[0] - v[0], pos[1]})
	switch {
	case byX && !byY:
		return component.AxisHorizontal
	case byY && !byX:
		return component.AxisVertical
	case math.Abs(v[0]) > math.Abs(v[1]):
		return component.AxisHorizontal
	default:
		return component.AxisVertical
	}
}

func reflects(o *entity.Object) bool {
	return o.Profile.Behavior != nil && o.Profile.Behavior.Kind == component.BehaviorReflect
}

// pairScan visits every unordered pair once in arena order. A pair is
// skipped when either side is already inactive.
func (s *CollisionSystem) pairScan(objs []*entity.Object) {
	for i, a := range objs {
		if a.Profile == nil {
			continue
		}
		for _, b := range objs[i+1:] {
			if !a.Active {
				break
			}
			if !b.Active || b.Profile == nil {
				continue
			}
			s.checkPair(a, b)
		}
	}
}

func (s *CollisionSystem) checkPair(a, b *entity.Object) {
	aHitsB := a.Profile.Targets(b.Profile.Layer)
	bHitsA := b.Profile.Targets(a.Profile.Layer)
	if !aHitsB && !bHitsA {
		return
	}
	if hasGrid(a) || hasGrid(b) {
		s.checkBossPair(a, b, aHitsB, bHitsA)
		return
	}
	if !collide.Overlaps(a.Profile.Shape, a.World.Pos, b.Profile.Shape, b.World.Pos) {
		return
	}
	if aHitsB && a.Active {
		s.resolver.Resolve(a, b)
	}
	if bHitsA && b.Active {
		s.resolver.Resolve(b, a)
	}
}

// checkBossPair replaces shape overlap with an armor lookup of the other
// object's world position.
func (s *CollisionSystem) checkBossPair(a, b *entity.Object, aHitsB, bHitsA bool) {
	boss, other := a, b
	if !hasGrid(a) {
		boss, other = b, a
	}
	row, col, ok := GridCellAt(boss, other.World.Pos)
	if !ok {
		return
	}
	resolve := func(actor *entity.Object) {
		if actor == boss {
			s.resolver.Resolve(boss, other)
			return
		}
		s.resolver.ResolveBossHit(other, boss, row, col)
	}
	if aHitsB && a.Active {
		resolve(a)
	}
	if bHitsA && b.Active {
		resolve(b)
	}
}
