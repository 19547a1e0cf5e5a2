// internal/script/enemies.go
package script

import (
	"image/color"
	"math"

	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/interfaces"
	"go-stg-engine/internal/types"
	"go-stg-engine/internal/utils"
)

func init() {
	RegisterAI("zako", AIFunc(zako))
	RegisterAI("fairy", AIFunc(fairy))
	RegisterAI("fighter", AIFunc(fighter))
	RegisterAI("spawner", AIFunc(spawner))
	RegisterAI("drift", AIFunc(drift))
}

var spawnerParticleColor = color.RGBA{255, 0, 255, 255}

// zako — прямой полёт вниз с покачиванием, прицельный выстрел раз в 60 тиков.
func zako(me *entity.Object, ctx interfaces.GameContext) {
	me.Local.Pos[1] += 3
	me.Local.Pos[0] += math.Sin(float64(me.Age)*0.1) * 2
	if me.Age%60 == 0 {
		p := ctx.PlayerPosition()
		vx := (p[0] - me.World.Pos[0]) * 0.01
		vy := (p[1] - me.World.Pos[1]) * 0.01
		ctx.Spawn(types.KindEnemyProjectile, me.World.Pos[0], me.World.Pos[1], defs.Overrides{
			Velocity: vel(vx, vy), Radius: 4, Color: "#ff0",
		})
	}
}

// fairy — веер из трёх пуль раз в 40 тиков.
func fairy(me *entity.Object, ctx interfaces.GameContext) {
	me.Local.Pos[1] += 2
	me.Local.Pos[0] += math.Sin(float64(me.Age)*0.05) * 3
	if me.Age%40 == 0 {
		for i := range 3 {
			a := float64(me.Age)*0.1 + float64(i)*(2*math.Pi/3)
			v := utils.Polar(a, 2)
			ctx.Spawn(types.KindEnemyProjectile, me.World.Pos[0], me.World.Pos[1], defs.Overrides{
				Velocity: &v, Radius: 3, Color: "#f0f",
			})
		}
	}
}

func fighter(me *entity.Object, ctx interfaces.GameContext) {
	me.Local.Pos[1] += 5
	if me.Age%30 == 0 {
		ctx.Spawn(types.KindEnemyProjectile, me.World.Pos[0], me.World.Pos[1], defs.Overrides{
			Velocity: vel(0, 8), Radius: 2, Color: "#0f0",
		})
	}
}

// spawner крутится на месте и выпускает zako раз в 120 тиков.
func spawner(me *entity.Object, ctx interfaces.GameContext) {
	me.Local.Angle += 0.05
	if me.Age%120 == 0 {
		ctx.SpawnArchetype("zako", me.World.Pos[0], me.World.Pos[1]+20)
		ctx.SpawnParticleEffect(me.World.Pos[0], me.World.Pos[1], spawnerParticleColor, 5)
	}
}

// drift slowly sinks; used by passive test targets.
func drift(me *entity.Object, _ interfaces.GameContext) {
	if me.Local.Pos[1] < 0 {
		me.Local.Pos[1] += 1
	}
}
