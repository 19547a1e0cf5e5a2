// internal/script/ai.go
package script

import (
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/interfaces"
)

// AI is the per-tick update of one archetype. It may move self.Local and
// spawn through ctx.
type AI interface {
	Update(self *entity.Object, ctx interfaces.GameContext)
}

// Initializer is implemented by AIs that need a setup step right after spawn.
type Initializer interface {
	Init(self *entity.Object, ctx interfaces.GameContext)
}

// AIFunc adapts a plain function to AI.
type AIFunc func(self *entity.Object, ctx interfaces.GameContext)

func (f AIFunc) Update(self *entity.Object, ctx interfaces.GameContext) { f(self, ctx) }

var aiRegistry = map[string]AI{}

// RegisterAI binds an archetype AI id. Later registrations replace earlier ones.
func RegisterAI(id string, ai AI) {
	aiRegistry[id] = ai
}

// LookupAI returns the AI registered under id.
func LookupAI(id string) (AI, bool) {
	if id == "" {
		return nil, false
	}
	ai, ok := aiRegistry[id]
	return ai, ok
}
