// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	HP        int                  `json:"hp"`
	Radius    float64              `json:"radius"`
	Color     string               `json:"color"`
	Score     int                  `json:"score"`
	AI        string               `json:"ai"`
	Collision *CollisionDefinition `json:"collision"`
}

// BossDefinition is an enemy with an optional armor grid.
type BossDefinition struct {
	Name      string               `json:"name"`
	HP        int                  `json:"hp"`
	Radius    float64              `json:"radius"`
	Color     string               `json:"color"`
	Score     int                  `json:"score"`
	AI        string               `json:"ai"`
	Grid      *GridDefinition      `json:"grid"`
	Collision *CollisionDefinition `json:"collision"`
}
