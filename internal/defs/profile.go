// internal/defs/profile.go
package defs

import (
	"go-stg-engine/internal/component"
	"go-stg-engine/internal/config"
	"go-stg-engine/internal/types"
	"go-stg-engine/pkg/collide"
)

// BuildProfile turns a collision template into a fresh profile.
// A missing or invalid size falls back to radius, then to config.DefaultRadius.
func BuildProfile(def *CollisionDefinition, radius float64) *component.CollisionProfile {
	if def == nil {
		return nil
	}
	layer, ok := types.ParseLayer(def.Layer)
	if !ok {
		return nil
	}
	var mask types.LayerMask
	for _, name := range def.Mask {
		if l, ok := types.ParseLayer(name); ok {
			mask |= types.MaskOf(l)
		}
	}
	return &component.CollisionProfile{
		Layer:    layer,
		Mask:     mask,
		Shape:    BuildShape(def.Shape, def.Size, radius),
		Behavior: BuildBehavior(def.Behavior),
	}
}

// BuildShape sizes a collision shape from the template, falling back to the
// spawned object's radius when the template gives no size.
func BuildShape(shape string, size []float64, radius float64) collide.Shape {
	fallback := radius
	if fallback <= 0 {
		fallback = config.DefaultRadius
	}
	if shape == "rect" {
		switch {
		case len(size) >= 2 && size[0] > 0 && size[1] > 0:
			return collide.NewRect(size[0]/2, size[1]/2)
		case len(size) == 1 && size[0] > 0:
			return collide.NewRect(size[0]/2, size[0]/2)
		default:
			return collide.NewRect(fallback, fallback)
		}
	}
	if len(size) >= 1 && size[0] > 0 {
		return collide.NewCircle(size[0])
	}
	return collide.NewCircle(fallback)
}

// BuildBehavior converts a behavior template. Unknown types yield BehaviorNone.
func BuildBehavior(def *BehaviorDefinition) *component.Behavior {
	if def == nil {
		return nil
	}
	b := &component.Behavior{}
	switch def.Type {
	case BehaviorDestroy:
		b.Kind = component.BehaviorDestroy
	case BehaviorPierce:
		b.Kind = component.BehaviorPierce
		b.Remaining = max(def.Pierce, 0)
	case BehaviorReflect:
		b.Kind = component.BehaviorReflect
		b.BouncesLeft = max(def.MaxBounces, 0)
		b.Dampen = def.Dampen
		if b.Dampen <= 0 || b.Dampen > 1 {
			b.Dampen = 1
		}
		switch def.Axis {
		case "horizontal":
			b.Axis = component.AxisHorizontal
		case "vertical":
			b.Axis = component.AxisVertical
		default:
			b.Axis = component.AxisAuto
		}
	case BehaviorSplit:
		b.Kind = component.BehaviorSplit
		b.SpawnArchetype = def.Bullet
		b.Count = max(def.Count, 0)
		b.SpreadAngle = def.Spread
		b.Speed = def.Speed
	default:
		b.Kind = component.BehaviorNone
	}
	for _, h := range def.OnHit {
		switch h.Type {
		case "damage":
			b.OnHit = append(b.OnHit, component.OnHitEffect{Kind: component.EffectDamage, Amount: h.Value})
		case "modify":
			b.OnHit = append(b.OnHit, component.OnHitEffect{
				Kind:       component.EffectModify,
				Property:   h.Property,
				Multiplier: h.Multiplier,
			})
		}
	}
	return b
}

// BuildGrid copies an armor layout. Rows/Cols follow the cell matrix when the
// declared dimensions disagree with it.
func BuildGrid(def *GridDefinition) *component.BossGrid {
	if def == nil {
		return nil
	}
	g := &component.BossGrid{Rows: def.Rows, Cols: def.Cols, CellSize: def.Size}
	if len(def.Cells) > 0 {
		g.Rows = len(def.Cells)
		g.Cols = 0
		for _, row := range def.Cells {
			g.Cols = max(g.Cols, len(row))
		}
	}
	g.Cells = make([][]*component.Cell, g.Rows)
	for r := range g.Cells {
		g.Cells[r] = make([]*component.Cell, g.Cols)
		if r >= len(def.Cells) {
			continue
		}
		for c, cd := range def.Cells[r] {
			if cd != nil {
				g.Cells[r][c] = &component.Cell{HP: cd.HP, Color: cd.Color, Core: cd.Core}
			}
		}
	}
	return g
}

// DefaultProfile is used for objects spawned without an archetype.
func DefaultProfile(kind types.Kind, radius float64) *component.CollisionProfile {
	if radius <= 0 {
		radius = config.DefaultRadius
	}
	p := &component.CollisionProfile{Shape: collide.NewCircle(radius)}
	switch kind {
	case types.KindPlayer:
		p.Layer = types.LayerPlayer
		p.Mask = types.MaskOf(types.LayerEnemy, types.LayerBoss, types.LayerEnemyProjectile, types.LayerItem, types.LayerTerrain)
	case types.KindEnemy:
		p.Layer = types.LayerEnemy
	case types.KindBoss:
		p.Layer = types.LayerBoss
	case types.KindPlayerProjectile:
		p.Layer = types.LayerPlayerProjectile
		p.Mask = types.MaskOf(types.LayerEnemy, types.LayerBoss, types.LayerTerrain)
		p.Behavior = &component.Behavior{Kind: component.BehaviorDestroy}
	case types.KindEnemyProjectile:
		p.Layer = types.LayerEnemyProjectile
		p.Mask = types.MaskOf(types.LayerPlayer)
		p.Behavior = &component.Behavior{Kind: component.BehaviorDestroy}
	case types.KindItem:
		p.Layer = types.LayerItem
		p.Shape = collide.NewCircle(config.ItemPickupRadius)
	default:
		return nil
	}
	return p
}
