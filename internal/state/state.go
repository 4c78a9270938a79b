// backend-go/internal/state/state.go
//
// Package state models the dashboard's client-side working copy: the
// full item set fetched from the server, a per-cell save status used
// for UI feedback, and pure view derivation (filter/sort) that never
// round-trips through the server.
package state

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
)

// Field names an editable item column.
type Field string

const (
	FieldCategory       Field = "category"
	FieldParentID       Field = "parentId"
	FieldVariantOptions Field = "variantOptions"
	FieldPromoPrice     Field = "promoPrice"
	FieldPromoStart     Field = "promoStart"
	FieldPromoEnd       Field = "promoEnd"
	FieldFeatured       Field = "featured"
	FieldVisible        Field = "visible"
	FieldSortOrder      Field = "sortOrder"
	FieldImageURL       Field = "imageUrl"
)

// Status of one editable cell.
type Status string

const (
	StatusSaved  Status = "saved"
	StatusSaving Status = "saving"
	StatusError  Status = "error"
)

// CellStatus pairs a status with the failure message shown on error.
type CellStatus struct {
	Status Status
	Err    string
}

type cellKey struct {
	sku   string
	field Field
}

type accessor struct {
	get func(*domain.Item) interface{}
	set func(*domain.Item, interface{}) error
}

func stringAccessor(get func(*domain.Item) *string) accessor {
	return accessor{
		get: func(it *domain.Item) interface{} { return *get(it) },
		set: func(it *domain.Item, v interface{}) error {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("expected string, got %T", v)
			}
			*get(it) = s
			return nil
		},
	}
}

func numberAccessor(get func(*domain.Item) *float64) accessor {
	return accessor{
		get: func(it *domain.Item) interface{} { return *get(it) },
		set: func(it *domain.Item, v interface{}) error {
			f, ok := v.(float64)
			if !ok {
				return fmt.Errorf("expected number, got %T", v)
			}
			*get(it) = f
			return nil
		},
	}
}

func boolAccessor(get func(*domain.Item) *bool) accessor {
	return accessor{
		get: func(it *domain.Item) interface{} { return *get(it) },
		set: func(it *domain.Item, v interface{}) error {
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("expected bool, got %T", v)
			}
			*get(it) = b
			return nil
		},
	}
}

var accessors = map[Field]accessor{
	FieldCategory:       stringAccessor(func(it *domain.Item) *string { return &it.Category }),
	FieldParentID:       stringAccessor(func(it *domain.Item) *string { return &it.ParentID }),
	FieldVariantOptions: stringAccessor(func(it *domain.Item) *string { return &it.VariantOptions }),
	FieldPromoPrice:     numberAccessor(func(it *domain.Item) *float64 { return &it.PromoPrice }),
	FieldPromoStart:     stringAccessor(func(it *domain.Item) *string { return &it.PromoStart }),
	FieldPromoEnd:       stringAccessor(func(it *domain.Item) *string { return &it.PromoEnd }),
	FieldFeatured:       boolAccessor(func(it *domain.Item) *bool { return &it.Featured }),
	FieldVisible:        boolAccessor(func(it *domain.Item) *bool { return &it.Visible }),
	FieldSortOrder:      numberAccessor(func(it *domain.Item) *float64 { return &it.SortOrder }),
	FieldImageURL:       stringAccessor(func(it *domain.Item) *string { return &it.ImageURL }),
}

// AppState is the explicit application state: the full local item set
// plus per-cell reconciliation status and edit snapshots.
type AppState struct {
	items     []domain.Item
	index     map[string]int
	status    map[cellKey]CellStatus
	snapshots map[cellKey]interface{}
}

func New(items []domain.Item) *AppState {
	s := &AppState{
		status:    make(map[cellKey]CellStatus),
		snapshots: make(map[cellKey]interface{}),
	}
	s.SetItems(items)
	return s
}

// SetItems replaces the local item set, e.g. after a full refetch.
// Pending statuses are kept; the server payload is the source of truth
// for values.
func (s *AppState) SetItems(items []domain.Item) {
	s.items = append([]domain.Item(nil), items...)
	s.index = make(map[string]int, len(items))
	for i, it := range s.items {
		s.index[it.SKU] = i
	}
}

// Items returns a copy of the full local item set.
func (s *AppState) Items() []domain.Item {
	return append([]domain.Item(nil), s.items...)
}

// Item looks up one item by SKU.
func (s *AppState) Item(sku string) (domain.Item, bool) {
	i, ok := s.index[sku]
	if !ok {
		return domain.Item{}, false
	}
	return s.items[i], true
}

// BeginEdit applies an optimistic mutation: the prior value is
// snapshotted, the local record mutated immediately, and the cell
// marked saving. The caller then issues the write and resolves it.
func (s *AppState) BeginEdit(sku string, field Field, value interface{}) error {
	i, ok := s.index[sku]
	if !ok {
		return fmt.Errorf("unknown sku %q", sku)
	}
	acc, ok := accessors[field]
	if !ok {
		return fmt.Errorf("field %q is not editable", field)
	}

	key := cellKey{sku: sku, field: field}
	// Keep the oldest snapshot while a save is in flight so a second
	// rapid edit still reverts to the last persisted value.
	if _, pending := s.snapshots[key]; !pending {
		s.snapshots[key] = acc.get(&s.items[i])
	}
	if err := acc.set(&s.items[i], value); err != nil {
		delete(s.snapshots, key)
		return err
	}
	s.status[key] = CellStatus{Status: StatusSaving}
	return nil
}

// ResolveSuccess marks the cell saved and drops the snapshot.
func (s *AppState) ResolveSuccess(sku string, field Field) {
	key := cellKey{sku: sku, field: field}
	delete(s.snapshots, key)
	s.status[key] = CellStatus{Status: StatusSaved}
}

// ResolveFailure restores the snapshotted value and records the
// terminal error; the user may retry via a fresh BeginEdit.
func (s *AppState) ResolveFailure(sku string, field Field, msg string) {
	key := cellKey{sku: sku, field: field}
	if prev, ok := s.snapshots[key]; ok {
		if i, found := s.index[sku]; found {
			_ = accessors[field].set(&s.items[i], prev)
		}
		delete(s.snapshots, key)
	}
	s.status[key] = CellStatus{Status: StatusError, Err: msg}
}

// CellStatus reports the reconciliation status of one cell; cells that
// were never edited are saved.
func (s *AppState) CellStatus(sku string, field Field) CellStatus {
	if st, ok := s.status[cellKey{sku: sku, field: field}]; ok {
		return st
	}
	return CellStatus{Status: StatusSaved}
}

// GlobalStatus aggregates every cell: any saving wins, then any error,
// otherwise saved.
func (s *AppState) GlobalStatus() Status {
	sawError := false
	for _, st := range s.status {
		switch st.Status {
		case StatusSaving:
			return StatusSaving
		case StatusError:
			sawError = true
		}
	}
	if sawError {
		return StatusError
	}
	return StatusSaved
}

// SortField names a supported table ordering.
type SortField string

const (
	SortByName      SortField = "name"
	SortBySKU       SortField = "sku"
	SortByQty       SortField = "qtyOnHand"
	SortByPrice     SortField = "sellingPrice"
	SortBySortOrder SortField = "sortOrder"
)

func sortKeyLess(a, b domain.Item, field SortField) bool {
	switch field {
	case SortBySKU:
		return a.SKU < b.SKU
	case SortByQty:
		return a.QtyOnHand < b.QtyOnHand
	case SortByPrice:
		return a.SellingPrice < b.SellingPrice
	case SortBySortOrder:
		return a.SortOrder < b.SortOrder
	default:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}
}

// Sorted returns the items ordered by the given field. Stable, so rows
// that compare equal keep their sheet order.
func Sorted(items []domain.Item, field SortField, desc bool) []domain.Item {
	out := append([]domain.Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return sortKeyLess(out[j], out[i], field)
		}
		return sortKeyLess(out[i], out[j], field)
	})
	return out
}
