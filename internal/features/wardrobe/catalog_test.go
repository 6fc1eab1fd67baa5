package wardrobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsValid(t *testing.T) {
	require.NoError(t, Validate(Items))
	assert.Len(t, Items, 12)
}

func TestLookup(t *testing.T) {
	it, ok := Lookup("h3")
	require.True(t, ok)
	assert.Equal(t, "Martian Crown", it.Name.EN)
	assert.Equal(t, "火星之冠", it.Name.In("cn"))
	assert.Equal(t, int64(500), it.Price)
	assert.Equal(t, CategoryHead, it.Category)

	_, ok = Lookup("zz")
	assert.False(t, ok)
}

func TestPurchasableExcludesSpecials(t *testing.T) {
	for _, it := range Purchasable() {
		assert.False(t, it.Special, it.ID)
	}
	assert.Len(t, Purchasable(), 10)
}

func TestVisible(t *testing.T) {
	assert.Len(t, Visible(nil), 10)

	visible := Visible(map[string]bool{"s2": true})
	assert.Len(t, visible, 11)
	assert.Equal(t, "s2", visible[len(visible)-1].ID)
}

func TestUnowned(t *testing.T) {
	owned := map[string]bool{}
	for _, it := range Items {
		owned[it.ID] = true
	}
	assert.Empty(t, Unowned(owned))

	delete(owned, "s1")
	left := Unowned(owned)
	require.Len(t, left, 1)
	assert.Equal(t, "s1", left[0].ID)
}

func TestByCategory(t *testing.T) {
	groups := ByCategory()
	assert.Len(t, groups[CategoryHead], 4)
	assert.Len(t, groups[CategoryBody], 3)
	assert.Len(t, groups[CategoryLegs], 2)
	assert.Len(t, groups[CategoryAccessory], 3)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string][]Item{
		"duplicate": {
			{ID: "x", Category: CategoryHead, Price: 1, Name: Name{EN: "X"}},
			{ID: "x", Category: CategoryBody, Price: 1, Name: Name{EN: "Y"}},
		},
		"bad category":   {{ID: "x", Category: "feet", Price: 1, Name: Name{EN: "X"}}},
		"priced special": {{ID: "x", Category: CategoryHead, Price: 5, Special: true, Name: Name{EN: "X"}}},
		"free regular":   {{ID: "x", Category: CategoryHead, Price: 0, Name: Name{EN: "X"}}},
		"empty id":       {{Category: CategoryHead, Price: 1, Name: Name{EN: "X"}}},
	}
	for name, items := range cases {
		assert.Error(t, Validate(items), name)
	}
}
