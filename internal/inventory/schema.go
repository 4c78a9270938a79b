// backend-go/internal/inventory/schema.go
package inventory

import "fmt"

// Column indexes (0-based) of the item sheet. The sheet layout is
// positional; nothing outside this package may index rows directly.
const (
	ColName = iota
	ColQtyOnHand
	ColReorderLevel
	ColStockOnHand
	ColSellingPrice
	ColSKU
	ColRefID
	ColPurchasePrice
	ColStatus
	ColUnit
	ColImageURL
	ColCategory
	ColParentID
	ColVariantOptions
	ColPromoPrice
	ColPromoStart
	ColPromoEnd
	ColFeatured
	ColVisible
	ColSortOrder

	ColumnCount
)

// DefaultSheetName matches the tab the dashboard has always lived in.
const DefaultSheetName = "WebsiteItems"

func dataRange(sheetName string) string {
	return fmt.Sprintf("%s!A2:T", sheetName)
}

func skuColumnRange(sheetName string) string {
	return fmt.Sprintf("%s!F2:F", sheetName)
}

func appendRange(sheetName string) string {
	return fmt.Sprintf("%s!A:T", sheetName)
}

func imageCell(sheetName string, row int64) string {
	return fmt.Sprintf("%s!K%d", sheetName, row)
}

func classificationRange(sheetName string, row int64) string {
	return fmt.Sprintf("%s!L%d:M%d", sheetName, row, row)
}

func metaRange(sheetName string, row int64) string {
	return fmt.Sprintf("%s!L%d:T%d", sheetName, row, row)
}
