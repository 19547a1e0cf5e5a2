// internal/app/summary.go
package app

import "go-stg-engine/internal/event"

// Summary counts what happened during a session.
type Summary struct {
	Kills           int
	BossesDestroyed int
	CellsCleared    int
	PlayerHits      int
	ItemsCollected  int
	Waves           int
	TerrainCarved   int
}

func (s *Summary) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		s.Kills++
	case event.BossDestroyed:
		s.BossesDestroyed++
	case event.BossCellCleared:
		s.CellsCleared++
	case event.PlayerHit:
		s.PlayerHits++
	case event.ItemCollected:
		s.ItemsCollected++
	case event.WaveStarted:
		s.Waves++
	case event.TerrainCarved:
		s.TerrainCarved++
	}
}
