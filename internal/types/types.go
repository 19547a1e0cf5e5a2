// internal/types/types.go
package types

// Handle — стабильная ссылка на объект в арене: индекс слота + поколение.
// Нулевой Handle означает "нет объекта".
type Handle struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether h refers to nothing.
func (h Handle) IsZero() bool {
	return h.Generation == 0
}

// Kind is what an object is in the game.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPlayerProjectile
	KindEnemyProjectile
	KindBoss
	KindItem
	KindEffect
)

var kindNames = [...]string{"player", "enemy", "player_projectile", "enemy_projectile", "boss", "item", "effect"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsProjectile reports whether objects of this kind resolve boss grid hits cell by cell.
func (k Kind) IsProjectile() bool {
	return k == KindPlayerProjectile || k == KindEnemyProjectile
}

// ParseKind maps a definition string to a Kind.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// Layer is the collision tag of an object.
type Layer uint8

const (
	LayerPlayer Layer = iota
	LayerEnemy
	LayerBoss
	LayerPlayerProjectile
	LayerEnemyProjectile
	LayerItem
	LayerTerrain
)

var layerNames = [...]string{"player", "enemy", "boss", "player_projectile", "enemy_projectile", "item", "terrain"}

func (l Layer) String() string {
	if int(l) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[l]
}

// ParseLayer maps a definition string to a Layer.
func ParseLayer(s string) (Layer, bool) {
	for i, name := range layerNames {
		if name == s {
			return Layer(i), true
		}
	}
	return 0, false
}

// LayerMask is the set of layers an object may act against.
type LayerMask uint16

// MaskOf builds a mask from layers.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << l
	}
	return m
}

// Has reports whether l is in the mask.
func (m LayerMask) Has(l Layer) bool {
	return m&(1<<l) != 0
}
