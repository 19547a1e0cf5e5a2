// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"

	"go-stg-engine/internal/types"
)

//go:embed packs/*.json
var builtinPacks embed.FS

// ErrUnknownArchetype is returned when a definition id is not in the pack.
var ErrUnknownArchetype = errors.New("unknown archetype")

// LoadPack reads a pack file from disk.
func LoadPack(path string) (*Pack, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pack file: %w", err)
	}
	return ParsePack(file)
}

// ParsePack decodes and validates a pack.
func ParsePack(data []byte) (*Pack, error) {
	var p Pack
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pack: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pack %q: %w", p.Name, err)
	}
	return &p, nil
}

// BuiltinPacks loads every pack embedded in the binary, keyed by name.
func BuiltinPacks() (map[string]*Pack, error) {
	entries, err := builtinPacks.ReadDir("packs")
	if err != nil {
		return nil, fmt.Errorf("failed to list builtin packs: %w", err)
	}
	packs := make(map[string]*Pack, len(entries))
	for _, e := range entries {
		data, err := builtinPacks.ReadFile(path.Join("packs", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read builtin pack %s: %w", e.Name(), err)
		}
		p, err := ParsePack(data)
		if err != nil {
			return nil, err
		}
		packs[p.Name] = p
	}
	return packs, nil
}

// PackNames returns pack names in stable order.
func PackNames(packs map[string]*Pack) []string {
	names := make([]string, 0, len(packs))
	for name := range packs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks cross references and collision tags.
func (p *Pack) Validate() error {
	if len(p.Stages) == 0 {
		return errors.New("pack has no stages")
	}
	for id, b := range p.Bullets {
		if b.Kind != "" {
			if k, ok := types.ParseKind(b.Kind); !ok || !k.IsProjectile() {
				return fmt.Errorf("bullet %s: bad kind %q", id, b.Kind)
			}
		}
		if err := validateCollision(b.Collision); err != nil {
			return fmt.Errorf("bullet %s: %w", id, err)
		}
		if bd := behaviorOf(b.Collision); bd != nil && bd.Type == BehaviorSplit {
			if _, ok := p.Bullets[bd.Bullet]; !ok {
				return fmt.Errorf("bullet %s splits into %q: %w", id, bd.Bullet, ErrUnknownArchetype)
			}
		}
	}
	for id, e := range p.Enemies {
		if err := validateCollision(e.Collision); err != nil {
			return fmt.Errorf("enemy %s: %w", id, err)
		}
	}
	for id, b := range p.Bosses {
		if err := validateCollision(b.Collision); err != nil {
			return fmt.Errorf("boss %s: %w", id, err)
		}
	}
	for i, s := range p.Stages {
		if s.Terrain == "" {
			continue
		}
		if _, ok := p.Terrains[s.Terrain]; !ok {
			return fmt.Errorf("stage %d terrain %q: %w", i, s.Terrain, ErrUnknownArchetype)
		}
	}
	return nil
}

func behaviorOf(c *CollisionDefinition) *BehaviorDefinition {
	if c == nil {
		return nil
	}
	return c.Behavior
}

func validateCollision(c *CollisionDefinition) error {
	if c == nil {
		return nil
	}
	if _, ok := types.ParseLayer(c.Layer); !ok {
		return fmt.Errorf("unknown layer %q", c.Layer)
	}
	for _, m := range c.Mask {
		if _, ok := types.ParseLayer(m); !ok {
			return fmt.Errorf("unknown mask layer %q", m)
		}
	}
	return nil
}
