// internal/event/types.go
package event

import (
	"image/color"

	"go-stg-engine/internal/types"
)

const (
	EnemyDestroyed  EventType = "EnemyDestroyed"  // Враг уничтожен, Data: Destroyed
	BossDestroyed   EventType = "BossDestroyed"   // Ядро босса разрушено, Data: Destroyed
	BossCellCleared EventType = "BossCellCleared" // Data: CellCleared
	PlayerHit       EventType = "PlayerHit"       // Data: PlayerState
	PlayerRespawned EventType = "PlayerRespawned" // Data: PlayerState
	GameOver        EventType = "GameOver"        // Data: PlayerState
	ItemCollected   EventType = "ItemCollected"   // Data: string (тип предмета)
	ScoreChanged    EventType = "ScoreChanged"    // Data: Score
	WaveStarted     EventType = "WaveStarted"     // Data: int (номер волны)
	StatusText      EventType = "StatusText"      // Data: string
	ParticleBurst   EventType = "ParticleBurst"   // Data: Particles
	TerrainCarved   EventType = "TerrainCarved"   // Data: [2]float64
)

// Destroyed describes a killed object.
type Destroyed struct {
	Handle types.Handle
	Kind   types.Kind
	X, Y   float64
	Score  int
}

// CellCleared describes a boss armor cell that reached zero hp.
type CellCleared struct {
	Boss     types.Handle
	Row, Col int
	Core     bool
}

// PlayerState is a snapshot of the player's resources.
type PlayerState struct {
	Lives int
	Bombs int
	Power int
}

// Score carries the running totals after a change.
type Score struct {
	Delta   int
	Total   int
	HiScore int
}

// Particles is a cosmetic request for external renderers.
type Particles struct {
	X, Y  float64
	Color color.Color
	Count int
}
