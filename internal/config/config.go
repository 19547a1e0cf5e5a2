// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 600
	ScreenHeight = 800

	// Отступ за краем поля, после которого объекты удаляются
	OutOfBoundsMargin = 100.0

	TerrainCellSize = 10.0
	ScrollSpeed     = 1.0
	SingularEpsilon = 1e-6

	DefaultRadius     = 5.0
	DefaultHP         = 10
	PlayerRadius      = 4.0
	PlayerStartX      = 300.0
	PlayerStartY      = 700.0
	PlayerSpeed       = 5.0
	PlayerSlowSpeed   = 2.0
	PlayerShotEvery   = 4 // тиков между выстрелами
	PlayerShotSpeed   = -15.0
	PlayerShotOffsetY = -10.0
	PlayerShotID      = "player_normal"

	StartLives        = 3
	StartBombs        = 2
	RespawnDelayTicks = 60
	BombDamage        = 10
	BombFlashLife     = 10

	DefaultEnemyScore = 100
	DefaultBossScore  = 50000
	BossCellScore     = 1000
	PowerItemScore    = 1000

	ItemDropChance   = 0.3
	ItemRadius       = 8.0
	ItemPickupRadius = 18.0 // радиус предмета + запас на подбор
	ItemFallSpeed    = 2.0

	ExplosionParticles = 30
	HitParticles       = 1
	TerrainParticles   = 2

	HomingDecay = 0.95
	HomingPull  = 0.5
)

const (
	ItemPower = "power"
	ItemBomb  = "bomb"
)

var (
	ExplosionColor = color.RGBA{255, 170, 0, 255}
	HitColor       = color.RGBA{255, 255, 255, 255}
	GridHitColor   = color.RGBA{255, 255, 0, 255}
	TerrainColor   = color.RGBA{136, 136, 136, 255}
	BombClearColor = color.RGBA{170, 170, 170, 255}
	PowerItemColor = color.RGBA{0, 255, 0, 255}
	BombItemColor  = color.RGBA{255, 0, 0, 255}
)
