// backend-go/internal/state/filter.go
package state

import (
	"strings"
	"time"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
)

// Filter describes the table view controls. Every predicate is applied
// against the full local item set; the server always returns the
// complete, unfiltered list.
type Filter struct {
	Search       string
	Category     string
	MainOnly     bool
	FeaturedOnly bool
	VisibleOnly  bool
	OnSaleOnly   bool
}

// View derives the displayed rows from the full item set.
func (s *AppState) View(f Filter, now time.Time) []domain.Item {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	category := strings.TrimSpace(f.Category)

	out := make([]domain.Item, 0, len(s.items))
	for _, it := range s.items {
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Name), term) &&
			!strings.Contains(strings.ToLower(it.SKU), term) {
			continue
		}
		if category != "" && it.Category != category {
			continue
		}
		if f.MainOnly && it.ParentID != "" {
			continue
		}
		if f.FeaturedOnly && !it.Featured {
			continue
		}
		if f.VisibleOnly && !it.Visible {
			continue
		}
		if f.OnSaleOnly && !OnSaleNow(it, now) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// OnSaleNow reports whether an item's promo window covers now: the
// promo price must be positive, the start bound is inclusive from
// midnight, the end bound inclusive through 23:59.
func OnSaleNow(it domain.Item, now time.Time) bool {
	if it.PromoPrice <= 0 {
		return false
	}

	if start, ok := parseDay(it.PromoStart, now.Location()); ok {
		if now.Before(start) {
			return false
		}
	}
	if end, ok := parseDay(it.PromoEnd, now.Location()); ok {
		if !now.Before(end.AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}

// parseDay reads a YYYY-MM-DD date, tolerating a trailing time part.
// Unparseable dates behave as an absent bound.
func parseDay(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
