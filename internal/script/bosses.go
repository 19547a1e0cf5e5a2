// internal/script/bosses.go
package script

import (
	"math"

	"go-stg-engine/internal/config"
	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/interfaces"
	"go-stg-engine/internal/types"
	"go-stg-engine/internal/utils"

	"golang.org/x/image/math/f64"
)

func init() {
	RegisterAI("core_guardian", coreGuardian{})
	RegisterAI("scarlet_devil", AIFunc(scarletDevil))
}

const (
	bitOffset = 60.0
	bitRadius = 10.0
	bitSpin   = 0.1
)

// coreGuardian выходит на позицию, качается по горизонтали и вращает
// свои "биты" (дочерние объекты).
type coreGuardian struct{}

func (coreGuardian) Init(boss *entity.Object, ctx interfaces.GameContext) {
	for _, dx := range []float64{-bitOffset, bitOffset} {
		bit := ctx.Spawn(types.KindEnemy, dx, 0, defs.Overrides{Radius: bitRadius})
		ctx.AddChild(boss.Handle, bit)
	}
}

func (coreGuardian) Update(me *entity.Object, ctx interfaces.GameContext) {
	if me.Local.Pos[1] < 200 {
		me.Local.Pos[1] += 1
	}
	me.Local.Pos[0] = config.ScreenWidth/2 + math.Sin(float64(me.Age)*0.01)*100
	me.Local.Angle = math.Sin(float64(me.Age)*0.02) * 0.1
	for _, h := range me.Children {
		if c := ctx.Object(h); c != nil {
			c.Local.Angle += bitSpin
		}
	}
}

// scarletDevil — кольцо из 20 пуль раз в 20 тиков плюс случайные одиночные.
func scarletDevil(me *entity.Object, ctx interfaces.GameContext) {
	me.Local.Pos[1] = 150 + math.Sin(float64(me.Age)*0.01)*20
	me.Local.Pos[0] = config.ScreenWidth/2 + math.Cos(float64(me.Age)*0.02)*150

	x, y := me.World.Pos[0], me.World.Pos[1]
	if me.Age%20 == 0 {
		for i := range 20 {
			a := float64(me.Age)*0.05 + float64(i)*(2*math.Pi/20)
			v := utils.Polar(a, 2)
			ctx.Spawn(types.KindEnemyProjectile, x, y, defs.Overrides{Velocity: &v, Radius: 3, Color: "#f00"})
		}
	}
	if me.Age%5 == 0 {
		v := utils.Polar(ctx.Rand().Range(0, 2*math.Pi), 4)
		ctx.Spawn(types.KindEnemyProjectile, x, y, defs.Overrides{Velocity: &v, Radius: 2, Color: "#fff"})
	}
}

func vel(vx, vy float64) *f64.Vec2 {
	return &f64.Vec2{vx, vy}
}
