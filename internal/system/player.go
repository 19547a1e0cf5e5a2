// internal/system/player.go
package system

import (
	"go-stg-engine/internal/config"
	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/types"
	"go-stg-engine/internal/utils"
)

// Input is one tick of player intent. X and Y are in [-1, 1].
type Input struct {
	X, Y float64
	Slow bool
	Shot bool
	Bomb bool
}

// PlayerGameContext — то, что PlayerSystem требует от Game.
type PlayerGameContext interface {
	SpawnProjectile(id string, x, y float64, ov defs.Overrides) types.Handle
	UseBomb() bool
}

// PlayerSystem отвечает за управление игроком: движение, стрельба, бомба.
type PlayerSystem struct {
	game PlayerGameContext
	// бомба срабатывает по нажатию, удержание не тратит остальные
	bombHeld bool
}

func NewPlayerSystem(game PlayerGameContext) *PlayerSystem {
	return &PlayerSystem{game: game}
}

// Update applies in to an active player.
func (s *PlayerSystem) Update(player *entity.Object, in Input) {
	bomb := in.Bomb && !s.bombHeld
	s.bombHeld = in.Bomb
	if player == nil || !player.Active {
		return
	}
	speed := config.PlayerSpeed
	if in.Slow {
		speed = config.PlayerSlowSpeed
	}
	p := &player.Local.Pos
	p[0] = utils.Clamp(p[0]+in.X*speed, 0, config.ScreenWidth)
	p[1] = utils.Clamp(p[1]+in.Y*speed, 0, config.ScreenHeight)

	if in.Shot && player.Age%config.PlayerShotEvery == 0 {
		s.game.SpawnProjectile(config.PlayerShotID, player.World.Pos[0], player.World.Pos[1]+config.PlayerShotOffsetY,
			defs.Vel(0, config.PlayerShotSpeed))
	}
	if bomb {
		s.game.UseBomb()
	}
	player.Age++
}
