// internal/defs/types.go
package defs

import "go-stg-engine/pkg/terrain"

// Behavior type names used in definitions.
const (
	BehaviorDestroy = "destroy"
	BehaviorPierce  = "pierce"
	BehaviorReflect = "reflect"
	BehaviorSplit   = "split"
)

// Pack is a complete set of archetypes and stages for one game.
type Pack struct {
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Bullets     map[string]BulletDefinition `json:"bullets"`
	Enemies     map[string]EnemyDefinition  `json:"enemies"`
	Bosses      map[string]BossDefinition   `json:"bosses"`
	Terrains    map[string]terrain.Config   `json:"terrains"`
	Stages      []StageDefinition           `json:"stages"`
}

// CollisionDefinition is the profile template of an archetype.
// Size holds a radius for circles and full width/height for rects.
type CollisionDefinition struct {
	Layer    string              `json:"layer"`
	Mask     []string            `json:"mask"`
	Shape    string              `json:"shape"`
	Size     []float64           `json:"size"`
	Behavior *BehaviorDefinition `json:"behavior"`
}

// BehaviorDefinition describes how an archetype reacts to its own hits.
type BehaviorDefinition struct {
	Type       string            `json:"type"`
	Pierce     int               `json:"pierce"`
	Axis       string            `json:"axis"`
	MaxBounces int               `json:"maxBounces"`
	Dampen     float64           `json:"dampen"`
	Bullet     string            `json:"bullet"`
	Count      int               `json:"count"`
	Spread     float64           `json:"spread"`
	Speed      float64           `json:"speed"`
	OnHit      []OnHitDefinition `json:"onHit"`
}

// OnHitDefinition is "damage" (Value) or "modify" (Property, Multiplier).
type OnHitDefinition struct {
	Type       string  `json:"type"`
	Value      int     `json:"value"`
	Property   string  `json:"property"`
	Multiplier float64 `json:"multiplier"`
}

// BulletDefinition holds all the static data for a projectile archetype.
type BulletDefinition struct {
	Kind      string               `json:"kind"`
	Radius    float64              `json:"radius"`
	Color     string               `json:"color"`
	VX        float64              `json:"vx"`
	VY        float64              `json:"vy"`
	Homing    bool                 `json:"homing"`
	Collision *CollisionDefinition `json:"collision"`
}

// GridDefinition is a boss armor layout; nil cells are holes.
type GridDefinition struct {
	Rows  int                 `json:"rows"`
	Cols  int                 `json:"cols"`
	Size  float64             `json:"size"`
	Cells [][]*CellDefinition `json:"cells"`
}

// CellDefinition is one armor block.
type CellDefinition struct {
	HP    int    `json:"hp"`
	Color string `json:"c"`
	Core  bool   `json:"core"`
}

// StageDefinition binds a stage script to its terrain. Enemy, Interval and
// Boss parameterize the generic wave scripts.
type StageDefinition struct {
	Script           string  `json:"script"`
	Duration         int     `json:"duration"`
	Terrain          string  `json:"terrain"`
	TerrainThreshold float64 `json:"terrainThreshold"`
	Enemy            string  `json:"enemy"`
	Interval         int     `json:"interval"`
	Boss             string  `json:"boss"`
}
