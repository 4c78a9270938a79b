// backend-go/internal/inventory/locator.go
package inventory

import (
	"context"
	"strings"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/sheets"
)

// Locator resolves a SKU to the 1-based sheet row that holds it. It is
// a linear scan over the key column each time: row numbers are only
// valid for the instant of the scan, and concurrent edits shifting rows
// are an accepted part of the consistency model.
type Locator struct {
	values    sheets.Values
	sheetName string
}

func NewLocator(values sheets.Values, sheetName string) *Locator {
	return &Locator{values: values, sheetName: sheetName}
}

func (l *Locator) FindRowBySKU(ctx context.Context, sku string) (int64, error) {
	target := strings.TrimSpace(sku)
	if target == "" {
		return 0, domain.MissingField("sku")
	}

	rows, err := l.values.Get(ctx, skuColumnRange(l.sheetName))
	if err != nil {
		return 0, err
	}

	for i, row := range rows {
		if CellString(cell(row, 0)) == target {
			// Data starts at sheet row 2, below the header.
			return int64(i) + 2, nil
		}
	}
	return 0, domain.NotFound("sku", target)
}
