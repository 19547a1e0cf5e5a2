// internal/interfaces/game_context.go
package interfaces

import (
	"image/color"

	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/types"
	"go-stg-engine/internal/utils"

	"golang.org/x/image/math/f64"
)

//go:generate go tool mockgen -destination=./mocks/game_context_mock.go -package=mocks . GameContext

// GameContext — то, что видят AI-скрипты и скрипты волн.
type GameContext interface {
	// Spawn creates a bare object of the given kind with the kind's default profile.
	Spawn(kind types.Kind, x, y float64, ov defs.Overrides) types.Handle
	SpawnArchetype(id string, x, y float64)
	SpawnBoss(id string, x, y float64)
	SpawnProjectile(id string, x, y float64, ov defs.Overrides) types.Handle
	PlayerPosition() f64.Vec2
	AddChild(parent, child types.Handle)
	SpawnParticleEffect(x, y float64, c color.Color, count int)
	Object(h types.Handle) *entity.Object
	Rand() *utils.PRNGService
}
