// internal/script/waves.go
package script

import (
	"go-stg-engine/internal/config"
	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/interfaces"
)

const (
	laneX       = config.ScreenWidth / 2
	launchY     = 760.0
	entryY      = -20.0
	spawnMargin = 50.0
)

func init() {
	RegisterStage("basic_wave", func(def defs.StageDefinition) Stage {
		return stream(def, "fairy", 50)
	})
	RegisterStage("rush_wave", func(def defs.StageDefinition) Stage {
		return stream(def, "fighter", 20)
	})
	RegisterStage("spawner_attack", spawnerAttack)
	RegisterStage("boss_wave", bossWave)
	RegisterStage("collision_lab", collisionLab)
	RegisterStage("reflect_lab", reflectLab)
	RegisterStage("split_lab", splitLab)
}

// stream spawns one enemy at a random x every interval ticks.
func stream(def defs.StageDefinition, enemy string, interval int) Stage {
	if def.Enemy != "" {
		enemy = def.Enemy
	}
	if def.Interval > 0 {
		interval = def.Interval
	}
	return stageFuncs{update: func(t int, ctx interfaces.GameContext) {
		if t%interval == 0 {
			x := ctx.Rand().Range(spawnMargin, config.ScreenWidth-spawnMargin)
			ctx.SpawnArchetype(enemy, x, entryY)
		}
	}}
}

func spawnerAttack(def defs.StageDefinition) Stage {
	enemy := def.Enemy
	if enemy == "" {
		enemy = "spawner"
	}
	return stageFuncs{start: func(ctx interfaces.GameContext) {
		ctx.SpawnArchetype(enemy, 100, 100)
		ctx.SpawnArchetype(enemy, 500, 100)
	}}
}

func bossWave(def defs.StageDefinition) Stage {
	return stageFuncs{start: func(ctx interfaces.GameContext) {
		ctx.SpawnBoss(def.Boss, laneX, -100)
	}}
}

// collisionLab lines circle and rect targets up along one lane and fires
// piercing lasers through them.
func collisionLab(defs.StageDefinition) Stage {
	return stageFuncs{
		start: func(ctx interfaces.GameContext) {
			for _, y := range []float64{180, 240, 300} {
				ctx.SpawnArchetype("fairy", laneX, y)
			}
			for _, y := range []float64{360, 440} {
				ctx.SpawnArchetype("collision_crate", laneX, y)
			}
			ctx.SpawnProjectile("test_piercing_laser", laneX, launchY, defs.Overrides{})
		},
		update: func(t int, ctx interfaces.GameContext) {
			if t == 160 || t == 320 {
				ctx.SpawnProjectile("test_piercing_laser", laneX, launchY, defs.Overrides{})
			}
			if t%120 == 0 {
				ctx.SpawnArchetype("collision_crate", float64(200+t%240), -30)
			}
		},
	}
}

func reflectLab(defs.StageDefinition) Stage {
	return stageFuncs{
		start: func(ctx interfaces.GameContext) {
			for _, x := range []float64{200, 300, 400} {
				ctx.SpawnArchetype("collision_crate", x, 220)
			}
			for i := range 3 {
				ctx.SpawnProjectile("ricochet_orb", float64(180+i*120), -10, defs.Vel(0, 4))
			}
		},
		update: func(t int, ctx interfaces.GameContext) {
			if t%140 == 0 {
				vx := ctx.Rand().Range(-1, 1)
				ctx.SpawnProjectile("ricochet_orb", float64(150+t%300), -10, defs.Vel(vx, 4))
			}
		},
	}
}

func splitLab(defs.StageDefinition) Stage {
	return stageFuncs{
		start: func(ctx interfaces.GameContext) {
			for _, y := range []float64{180, 240, 300, 360, 420} {
				ctx.SpawnArchetype("collision_crate", laneX, y)
			}
			ctx.SpawnProjectile("split_burst", laneX, launchY, defs.Vel(0, -10))
		},
		update: func(t int, ctx interfaces.GameContext) {
			if t == 120 {
				ctx.SpawnProjectile("split_burst", laneX, launchY, defs.Vel(0, -11))
			}
		},
	}
}
