// Package wardrobe holds the static catalog of cosmetic companion items.
// models.go describes the catalog entry and its categories.
package wardrobe

// Category is the body slot an item occupies. At most one item per
// category can be equipped at a time.
type Category string

const (
	CategoryHead      Category = "head"
	CategoryBody      Category = "body"
	CategoryLegs      Category = "legs"
	CategoryAccessory Category = "accessory"
)

// Categories lists the slots in display order.
var Categories = []Category{CategoryHead, CategoryBody, CategoryLegs, CategoryAccessory}

// Valid reports whether c is one of the four known slots.
func (c Category) Valid() bool {
	switch c {
	case CategoryHead, CategoryBody, CategoryLegs, CategoryAccessory:
		return true
	}
	return false
}

// Name is a localized display name.
type Name struct {
	EN string `json:"en"`
	CN string `json:"cn"`
}

// In returns the name for lang ("cn" or anything else for English).
func (n Name) In(lang string) string {
	if lang == "cn" && n.CN != "" {
		return n.CN
	}
	return n.EN
}

// Item is a catalog entry. Items are never mutated at runtime.
type Item struct {
	ID       string   `json:"id"`
	Name     Name     `json:"name"`
	Price    int64    `json:"price"`    // Price in credits (0 for special items)
	Category Category `json:"category"` // Slot the item occupies
	Special  bool     `json:"special"`  // Not purchasable, only awarded by the daily mystery box
}
