// internal/interfaces/combat_context.go
package interfaces

import (
	"image/color"

	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/types"

	"golang.org/x/image/math/f64"
)

//go:generate go tool mockgen -destination=./mocks/combat_context_mock.go -package=mocks . CombatContext

// CombatContext receives every side effect of collision resolution.
// The collision and behavior systems never touch score, lives or the
// spawn queue directly.
type CombatContext interface {
	AddScore(points int)
	SpawnExplosion(x, y float64)
	SpawnParticleEffect(x, y float64, c color.Color, count int)
	RollItemDrop(x, y float64)
	ShowStatus(text string)
	PlayerHit(player *entity.Object)
	CollectItem(item *entity.Object)
	SpawnProjectile(id string, x, y float64, ov defs.Overrides) types.Handle
	Destroyed(obj *entity.Object)
	CellCleared(boss *entity.Object, row, col int, core bool)
	BossDestroyed(boss *entity.Object)
	CarveTerrain(p f64.Vec2)
}
