package system_test

import (
	"image/color"

	"go-stg-engine/internal/component"
	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/types"
	"go-stg-engine/pkg/collide"

	"golang.org/x/image/math/f64"
)

type spawnRequest struct {
	id  string
	pos f64.Vec2
	vel f64.Vec2
}

// recorder is a CombatContext that remembers every side effect.
type recorder struct {
	score         int
	explosions    int
	particles     int
	drops         int
	status        []string
	playerHits    int
	collected     []string
	spawned       []spawnRequest
	destroyed     []types.Handle
	cleared       int
	coresCleared  int
	bossDestroyed int
	carved        []f64.Vec2
}

func (r *recorder) AddScore(points int)                                    { r.score += points }
func (r *recorder) SpawnExplosion(x, y float64)                            { r.explosions++ }
func (r *recorder) SpawnParticleEffect(x, y float64, c color.Color, n int) { r.particles++ }
func (r *recorder) RollItemDrop(x, y float64)                              { r.drops++ }
func (r *recorder) ShowStatus(text string)                                 { r.status = append(r.status, text) }
func (r *recorder) Destroyed(o *entity.Object)                             { r.destroyed = append(r.destroyed, o.Handle) }
func (r *recorder) BossDestroyed(boss *entity.Object)                      { r.bossDestroyed++ }
func (r *recorder) CarveTerrain(p f64.Vec2)                                { r.carved = append(r.carved, p) }

func (r *recorder) PlayerHit(player *entity.Object) {
	r.playerHits++
	player.Deactivate()
}

func (r *recorder) CollectItem(item *entity.Object) {
	r.collected = append(r.collected, item.ItemType)
}

func (r *recorder) SpawnProjectile(id string, x, y float64, ov defs.Overrides) types.Handle {
	req := spawnRequest{id: id, pos: f64.Vec2{x, y}}
	if ov.Velocity != nil {
		req.vel = *ov.Velocity
	}
	r.spawned = append(r.spawned, req)
	return types.Handle{}
}

func (r *recorder) CellCleared(boss *entity.Object, row, col int, core bool) {
	r.cleared++
	if core {
		r.coresCleared++
	}
}

func place(arena *entity.Arena, kind types.Kind, x, y float64, p *component.CollisionProfile) *entity.Object {
	o := entity.New(kind, x, y)
	o.Profile = p
	arena.Insert(o)
	return o
}

func circleProfile(layer types.Layer, r float64, mask types.LayerMask, b *component.Behavior) *component.CollisionProfile {
	return &component.CollisionProfile{Layer: layer, Mask: mask, Shape: collide.NewCircle(r), Behavior: b}
}

func enemy(arena *entity.Arena, x, y float64, hp int) *entity.Object {
	o := place(arena, types.KindEnemy, x, y, circleProfile(types.LayerEnemy, 12, 0, nil))
	o.HP = hp
	o.HasHP = true
	return o
}

func playerShot(arena *entity.Arena, x, y float64, b *component.Behavior) *entity.Object {
	return place(arena, types.KindPlayerProjectile, x, y, &component.CollisionProfile{
		Layer:    types.LayerPlayerProjectile,
		Mask:     types.MaskOf(types.LayerEnemy, types.LayerBoss, types.LayerTerrain),
		Shape:    collide.NewRect(3, 12),
		Behavior: b,
	})
}
