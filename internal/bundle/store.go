// backend-go/internal/bundle/store.go
package bundle

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/inventory"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/sheets"
)

// Column indexes (0-based) of the bundle sheet.
const (
	colBundleID = iota
	colTitle
	colDescription
	colSKUs
	colDiscountType
	colDiscountValue
	colActive
	colStartDate
	colEndDate
	colImageURL

	columnCount
)

// DefaultSheetName is the tab the bundle collection lives in.
const DefaultSheetName = "Bundles"

var headerRow = []interface{}{
	"Bundle ID", "Title", "Description", "SKUs", "Discount Type",
	"Discount Value", "Active", "Start Date", "End Date", "Image URL",
}

// Store is CRUD over the bundle sheet. Creates append a row, updates
// replace the full row, deletes remove the physical row. There is no
// soft delete.
type Store struct {
	values    sheets.Values
	sheetName string
	now       func() time.Time
}

func NewStore(values sheets.Values, sheetName string) *Store {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	return &Store{values: values, sheetName: sheetName, now: time.Now}
}

// EnsureSheet creates the bundle tab with its header row when absent,
// and backfills the header when the tab exists but is empty. Idempotent.
func (s *Store) EnsureSheet(ctx context.Context) error {
	return s.values.EnsureSheet(ctx, s.sheetName, headerRow)
}

// List returns all bundles from the data region. Rows without an
// identifier are dropped.
func (s *Store) List(ctx context.Context) ([]domain.Bundle, error) {
	if err := s.EnsureSheet(ctx); err != nil {
		return nil, err
	}

	rows, err := s.values.Get(ctx, s.dataRange())
	if err != nil {
		return nil, err
	}

	bundles := make([]domain.Bundle, 0, len(rows))
	for _, row := range rows {
		if b, ok := parseRow(row); ok {
			bundles = append(bundles, b)
		}
	}
	return bundles, nil
}

// Create assigns an identifier when absent, appends the serialized
// record and returns it.
func (s *Store) Create(ctx context.Context, b domain.Bundle) (*domain.Bundle, error) {
	if strings.TrimSpace(b.Title) == "" {
		return nil, domain.MissingField("title")
	}
	if err := s.EnsureSheet(ctx); err != nil {
		return nil, err
	}

	b = normalize(b)
	if b.BundleID == "" {
		b.BundleID = s.newBundleID()
	}

	if err := s.values.Append(ctx, s.appendRange(), serialize(b)); err != nil {
		return nil, err
	}
	return &b, nil
}

// Update locates the row by identifier and overwrites the entire row
// with the serialized payload. Full-row replace, not a patch.
func (s *Store) Update(ctx context.Context, id string, b domain.Bundle) (*domain.Bundle, error) {
	row, err := s.findRow(ctx, id)
	if err != nil {
		return nil, err
	}

	b = normalize(b)
	b.BundleID = strings.TrimSpace(id)

	rng := fmt.Sprintf("%s!A%d:J%d", s.sheetName, row, row)
	if err := s.values.Update(ctx, rng, [][]interface{}{serialize(b)}); err != nil {
		return nil, err
	}
	return &b, nil
}

// Delete removes the physical row holding the bundle.
func (s *Store) Delete(ctx context.Context, id string) error {
	row, err := s.findRow(ctx, id)
	if err != nil {
		return err
	}
	return s.values.DeleteRow(ctx, s.sheetName, row)
}

// findRow scans the identifier column for a trimmed exact match and
// returns the 1-based sheet row.
func (s *Store) findRow(ctx context.Context, id string) (int64, error) {
	target := strings.TrimSpace(id)
	if target == "" {
		return 0, domain.MissingField("bundleId")
	}

	rows, err := s.values.Get(ctx, s.idColumnRange())
	if err != nil {
		return 0, err
	}

	for i, row := range rows {
		if len(row) > 0 && inventory.CellString(row[0]) == target {
			return int64(i) + 2, nil
		}
	}
	return 0, domain.NotFound("bundle", target)
}

func (s *Store) dataRange() string {
	return fmt.Sprintf("%s!A2:J", s.sheetName)
}

func (s *Store) idColumnRange() string {
	return fmt.Sprintf("%s!A2:A", s.sheetName)
}

func (s *Store) appendRange() string {
	return fmt.Sprintf("%s!A:J", s.sheetName)
}

func (s *Store) newBundleID() string {
	return fmt.Sprintf("BND_%d_%06d", s.now().UnixMilli(), rand.Intn(1000000))
}

// normalize trims every string field and canonicalizes the SKU list so
// serialization is byte-stable for unchanged fields.
func normalize(b domain.Bundle) domain.Bundle {
	b.BundleID = strings.TrimSpace(b.BundleID)
	b.Title = strings.TrimSpace(b.Title)
	b.Description = strings.TrimSpace(b.Description)
	b.DiscountType = strings.TrimSpace(b.DiscountType)
	b.StartDate = strings.TrimSpace(b.StartDate)
	b.EndDate = strings.TrimSpace(b.EndDate)
	b.ImageURL = strings.TrimSpace(b.ImageURL)

	skus := make([]string, 0, len(b.SKUs))
	for _, sku := range b.SKUs {
		if trimmed := strings.TrimSpace(sku); trimmed != "" {
			skus = append(skus, trimmed)
		}
	}
	b.SKUs = skus
	return b
}

func serialize(b domain.Bundle) []interface{} {
	return []interface{}{
		b.BundleID,
		b.Title,
		b.Description,
		strings.Join(b.SKUs, ","),
		b.DiscountType,
		b.DiscountValue,
		inventory.BoolCell(b.Active),
		b.StartDate,
		b.EndDate,
		b.ImageURL,
	}
}

func parseRow(row []interface{}) (domain.Bundle, bool) {
	get := func(idx int) interface{} {
		if idx < 0 || idx >= len(row) {
			return nil
		}
		return row[idx]
	}

	id := inventory.CellString(get(colBundleID))
	if id == "" {
		return domain.Bundle{}, false
	}

	var skus []string
	for _, part := range strings.Split(inventory.CellString(get(colSKUs)), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skus = append(skus, trimmed)
		}
	}

	return domain.Bundle{
		BundleID:      id,
		Title:         inventory.CellString(get(colTitle)),
		Description:   inventory.CellString(get(colDescription)),
		SKUs:          skus,
		DiscountType:  inventory.CellString(get(colDiscountType)),
		DiscountValue: inventory.ToNumber(get(colDiscountValue)),
		Active:        inventory.ParseBool(get(colActive), true),
		StartDate:     inventory.CellString(get(colStartDate)),
		EndDate:       inventory.CellString(get(colEndDate)),
		ImageURL:      inventory.CellString(get(colImageURL)),
	}, true
}
