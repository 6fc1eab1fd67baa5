// Package wardrobe: catalog.go contains the fixed item list and the
// lookup helpers used by the ledger and the bot.
package wardrobe

import (
	"fmt"
)

// Items is the full catalog in display order.
var Items = []Item{
	// Head
	{ID: "h1", Category: CategoryHead, Price: 50, Name: Name{EN: "Neural Link", CN: "神经连接环"}},
	{ID: "h2", Category: CategoryHead, Price: 120, Name: Name{EN: "Cyber Visor", CN: "赛博面罩"}},
	{ID: "h3", Category: CategoryHead, Price: 500, Name: Name{EN: "Martian Crown", CN: "火星之冠"}},

	// Body
	{ID: "b1", Category: CategoryBody, Price: 80, Name: Name{EN: "Void Cloak", CN: "虚空斗篷"}},
	{ID: "b2", Category: CategoryBody, Price: 300, Name: Name{EN: "Ag Battle Suit", CN: "白银战甲"}},
	{ID: "b3", Category: CategoryBody, Price: 1000, Name: Name{EN: "Nebula Kimono", CN: "星云霓裳"}},

	// Legs
	{ID: "l1", Category: CategoryLegs, Price: 150, Name: Name{EN: "Gravity Boots", CN: "重力靴"}},
	{ID: "l2", Category: CategoryLegs, Price: 400, Name: Name{EN: "Plasma Trousers", CN: "等离子长裤"}},

	// Accessory
	{ID: "a1", Category: CategoryAccessory, Price: 30, Name: Name{EN: "Aura Ring", CN: "灵气光环"}},
	{ID: "a2", Category: CategoryAccessory, Price: 1500, Name: Name{EN: "Quantum Wings", CN: "量子之翼"}},

	// Daily mystery box only
	{ID: "s1", Category: CategoryAccessory, Price: 0, Special: true, Name: Name{EN: "Saver Star", CN: "储蓄之星"}},
	{ID: "s2", Category: CategoryHead, Price: 0, Special: true, Name: Name{EN: "Earner Halo", CN: "致富光环"}},
}

var byID = func() map[string]Item {
	m := make(map[string]Item, len(Items))
	for _, it := range Items {
		m[it.ID] = it
	}
	return m
}()

// Lookup returns the item with the given id.
func Lookup(id string) (Item, bool) {
	it, ok := byID[id]
	return it, ok
}

// All returns a copy of the catalog.
func All() []Item {
	out := make([]Item, len(Items))
	copy(out, Items)
	return out
}

// Purchasable returns the items that can be bought with credits.
func Purchasable() []Item {
	var out []Item
	for _, it := range Items {
		if !it.Special {
			out = append(out, it)
		}
	}
	return out
}

// Visible returns what the wardrobe screen lists: every purchasable item
// plus the special items the user already owns.
func Visible(owned map[string]bool) []Item {
	var out []Item
	for _, it := range Items {
		if !it.Special || owned[it.ID] {
			out = append(out, it)
		}
	}
	return out
}

// ByCategory groups the catalog by slot, preserving catalog order.
func ByCategory() map[Category][]Item {
	out := make(map[Category][]Item, len(Categories))
	for _, it := range Items {
		out[it.Category] = append(out[it.Category], it)
	}
	return out
}

// Unowned returns catalog items not present in owned, in catalog order.
// Special items are included: the mystery box can award them.
func Unowned(owned map[string]bool) []Item {
	var out []Item
	for _, it := range Items {
		if !owned[it.ID] {
			out = append(out, it)
		}
	}
	return out
}

// Validate checks catalog consistency. Called once at start-up.
func Validate(items []Item) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" {
			return fmt.Errorf("wardrobe item with empty id")
		}
		if seen[it.ID] {
			return fmt.Errorf("duplicate wardrobe item %q", it.ID)
		}
		seen[it.ID] = true

		if !it.Category.Valid() {
			return fmt.Errorf("wardrobe item %q: unknown category %q", it.ID, it.Category)
		}
		if it.Special && it.Price != 0 {
			return fmt.Errorf("wardrobe item %q: special items must be free", it.ID)
		}
		if !it.Special && it.Price <= 0 {
			return fmt.Errorf("wardrobe item %q: price must be positive", it.ID)
		}
		if it.Name.EN == "" {
			return fmt.Errorf("wardrobe item %q: missing english name", it.ID)
		}
	}
	return nil
}
