package state_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/state"
)

func TestOnSaleNow(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		item domain.Item
		want bool
	}{
		{"no promo price", domain.Item{PromoStart: "2026-06-01", PromoEnd: "2026-06-30"}, false},
		{"zero price in open window", domain.Item{PromoPrice: 0}, false},
		{"price with no bounds", domain.Item{PromoPrice: 9.99}, true},
		{"inside window", domain.Item{PromoPrice: 9.99, PromoStart: "2026-06-14", PromoEnd: "2026-06-16"}, true},
		{"starts today", domain.Item{PromoPrice: 9.99, PromoStart: "2026-06-15"}, true},
		{"ends today", domain.Item{PromoPrice: 9.99, PromoEnd: "2026-06-15"}, true},
		{"starts tomorrow", domain.Item{PromoPrice: 9.99, PromoStart: "2026-06-16"}, false},
		{"ended yesterday", domain.Item{PromoPrice: 9.99, PromoEnd: "2026-06-14"}, false},
		{"datetime start tolerated", domain.Item{PromoPrice: 9.99, PromoStart: "2026-06-10T00:00:00Z"}, true},
		{"garbage bounds ignored", domain.Item{PromoPrice: 9.99, PromoStart: "soon", PromoEnd: "later"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, state.OnSaleNow(tt.item, now))
		})
	}
}

func TestViewFilters(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	s := state.New([]domain.Item{
		{Name: "Hoodie", SKU: "HOOD-1", Category: "Apparel", Visible: true},
		{Name: "Hoodie / Red / M", SKU: "HOOD-1-RM", ParentID: "HOOD-1", Visible: true},
		{Name: "Mug", SKU: "MUG-1", Category: "Drinkware", Featured: true, Visible: true,
			PromoPrice: 5, PromoStart: "2026-06-01", PromoEnd: "2026-06-30"},
		{Name: "Hidden Poster", SKU: "POST-1", Category: "Decor", Visible: false},
	})

	skus := func(items []domain.Item) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.SKU)
		}
		return out
	}

	assert.Equal(t, []string{"HOOD-1", "HOOD-1-RM", "MUG-1", "POST-1"},
		skus(s.View(state.Filter{}, now)))

	assert.Equal(t, []string{"HOOD-1", "HOOD-1-RM"},
		skus(s.View(state.Filter{Search: "hood"}, now)))

	assert.Equal(t, []string{"MUG-1"},
		skus(s.View(state.Filter{Search: "mug-1"}, now)))

	assert.Equal(t, []string{"MUG-1"},
		skus(s.View(state.Filter{Category: "Drinkware"}, now)))

	assert.Equal(t, []string{"HOOD-1", "MUG-1", "POST-1"},
		skus(s.View(state.Filter{MainOnly: true}, now)))

	assert.Equal(t, []string{"MUG-1"},
		skus(s.View(state.Filter{FeaturedOnly: true}, now)))

	assert.Equal(t, []string{"HOOD-1", "HOOD-1-RM", "MUG-1"},
		skus(s.View(state.Filter{VisibleOnly: true}, now)))

	assert.Equal(t, []string{"MUG-1"},
		skus(s.View(state.Filter{OnSaleOnly: true}, now)))

	assert.Equal(t, []string{"MUG-1"},
		skus(s.View(state.Filter{Search: "m", Category: "Drinkware", VisibleOnly: true}, now)))
}
