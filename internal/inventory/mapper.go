// backend-go/internal/inventory/mapper.go
package inventory

import (
	"strings"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
)

func cell(row []interface{}, idx int) interface{} {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	return row[idx]
}

// MapRow converts one positional sheet row into a typed item. The
// second return is false when the row is excluded: both name and SKU
// empty, or a non-empty status other than "active".
func MapRow(row []interface{}) (domain.Item, bool) {
	name := CellString(cell(row, ColName))
	sku := CellString(cell(row, ColSKU))
	if name == "" && sku == "" {
		return domain.Item{}, false
	}

	status := CellString(cell(row, ColStatus))
	if status != "" && strings.ToLower(status) != "active" {
		return domain.Item{}, false
	}

	// The dedicated quantity column wins; the stock-on-hand column is
	// the fallback when it is empty.
	qtyCell := cell(row, ColQtyOnHand)
	if CellString(qtyCell) == "" {
		qtyCell = cell(row, ColStockOnHand)
	}

	qtyOnHand := ToNumber(qtyCell)
	reorderLevel := ToNumber(cell(row, ColReorderLevel))

	item := domain.Item{
		Name:           name,
		SKU:            sku,
		QtyOnHand:      qtyOnHand,
		ReorderLevel:   reorderLevel,
		StockOnHand:    ToNumber(cell(row, ColStockOnHand)),
		SellingPrice:   ParseMoney(cell(row, ColSellingPrice)),
		PurchasePrice:  ParseMoney(cell(row, ColPurchasePrice)),
		Unit:           CellString(cell(row, ColUnit)),
		Status:         status,
		ReferenceID:    CellString(cell(row, ColRefID)),
		IsLow:          reorderLevel > 0 && qtyOnHand <= reorderLevel,
		ImageURL:       CellString(cell(row, ColImageURL)),
		Category:       CellString(cell(row, ColCategory)),
		ParentID:       CellString(cell(row, ColParentID)),
		VariantOptions: CellString(cell(row, ColVariantOptions)),
		PromoPrice:     ParseMoney(cell(row, ColPromoPrice)),
		PromoStart:     CellString(cell(row, ColPromoStart)),
		PromoEnd:       CellString(cell(row, ColPromoEnd)),
		Featured:       ParseBool(cell(row, ColFeatured), false),
		Visible:        ParseBool(cell(row, ColVisible), true),
		SortOrder:      ToNumber(cell(row, ColSortOrder)),
	}
	return item, true
}

// BuildInventory maps the data rows into the filtered item list plus
// the summary aggregate, preserving input row order.
func BuildInventory(rows [][]interface{}) *domain.Inventory {
	inv := &domain.Inventory{Items: make([]domain.Item, 0, len(rows))}

	for _, row := range rows {
		item, ok := MapRow(row)
		if !ok {
			continue
		}

		inv.Summary.TotalStockQty += item.QtyOnHand
		inv.Summary.TotalStockValue += item.QtyOnHand * item.SellingPrice
		if item.IsLow {
			inv.Summary.LowStockCount++
		}
		inv.Items = append(inv.Items, item)
	}

	inv.Summary.TotalItems = len(inv.Items)
	return inv
}
