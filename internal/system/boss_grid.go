// internal/system/boss_grid.go
package system

import (
	"go-stg-engine/internal/config"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/types"
	"go-stg-engine/pkg/collide"

	"golang.org/x/image/math/f64"
)

// BossStatusText is shown when a core cell is cleared.
const BossStatusText = "BOSS DESTROYED"

// hasGrid reports whether o takes hits through an armor grid.
func hasGrid(o *entity.Object) bool {
	return o.Kind == types.KindBoss && o.Grid != nil
}

// GridCellAt finds the occupied armor cell under world point p.
// ok is false for a singular boss matrix, an out-of-range address or an
// empty slot.
func GridCellAt(boss *entity.Object, p f64.Vec2) (row, col int, ok bool) {
	local, ok := InverseTransform(boss, p)
	if !ok {
		return 0, 0, false
	}
	row, col, ok = boss.Grid.CellAt(local)
	if !ok || boss.Grid.Get(row, col) == nil {
		return 0, 0, false
	}
	return row, col, true
}

// cellWorldRect returns the world centre and half size of an armor cell.
// Boss rotation is ignored for the extent.
func cellWorldRect(boss *entity.Object, row, col int) (f64.Vec2, float64) {
	g := boss.Grid
	lx := (float64(col)+0.5)*g.CellSize - float64(g.Cols)*g.CellSize/2
	ly := (float64(row)+0.5)*g.CellSize - float64(g.Rows)*g.CellSize/2
	x, y := boss.World.Matrix.Apply(lx, ly)
	return f64.Vec2{x, y}, g.CellSize / 2
}

// ResolveBossHit handles actor striking the occupied cell (row, col) of boss.
// Only projectiles wear armor down; any actor still applies its own behavior.
func (r *BehaviorResolver) ResolveBossHit(actor, boss *entity.Object, row, col int) {
	if actor.Kind == types.KindPlayer {
		r.ctx.PlayerHit(actor)
		return
	}
	centre, half := cellWorldRect(boss, row, col)
	if actor.Kind.IsProjectile() {
		r.strikeCell(boss, row, col, actor.World.Pos)
	}
	r.applySelf(actor, overlapAxis(actor, collide.NewRect(half, half), centre))
}

func (r *BehaviorResolver) strikeCell(boss *entity.Object, row, col int, at f64.Vec2) {
	cell := boss.Grid.Get(row, col)
	if cell == nil {
		return
	}
	cell.HP--
	r.ctx.SpawnParticleEffect(at[0], at[1], config.GridHitColor, config.HitParticles)
	if cell.HP > 0 {
		return
	}
	boss.Grid.Clear(row, col)
	r.ctx.SpawnExplosion(at[0], at[1])
	r.ctx.AddScore(config.BossCellScore)
	r.ctx.CellCleared(boss, row, col, cell.Core)
	if !cell.Core || !boss.Active {
		return
	}

	boss.Deactivate()
	r.ctx.SpawnExplosion(boss.World.Pos[0], boss.World.Pos[1])
	score := boss.Score
	if score <= 0 {
		score = config.DefaultBossScore
	}
	r.ctx.AddScore(score)
	r.ctx.ShowStatus(BossStatusText)
	r.ctx.BossDestroyed(boss)
}
