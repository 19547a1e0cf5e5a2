// internal/defs/loot_tables.go
package defs

import "go-stg-engine/internal/config"

// LootEntry is one possible item drop. Weight is its relative chance.
type LootEntry struct {
	ItemType string `json:"item_type"`
	Weight   int    `json:"weight"`
}

// ItemLoot is what a destroyed enemy may drop once the drop roll succeeds.
var ItemLoot = []LootEntry{
	{ItemType: config.ItemBomb, Weight: 20},
	{ItemType: config.ItemPower, Weight: 80},
}
