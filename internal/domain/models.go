// backend-go/internal/domain/models.go
package domain

// Item is a single sellable product or variant backed by one sheet row.
// SKU is the business key; it is the only handle used to locate the row.
type Item struct {
	Name           string  `json:"name"`
	SKU            string  `json:"sku"`
	QtyOnHand      float64 `json:"qtyOnHand"`
	ReorderLevel   float64 `json:"reorderLevel"`
	StockOnHand    float64 `json:"stockOnHand"`
	SellingPrice   float64 `json:"sellingPrice"`
	PurchasePrice  float64 `json:"purchasePrice"`
	Unit           string  `json:"unit"`
	Status         string  `json:"status"`
	ReferenceID    string  `json:"referenceId"`
	IsLow          bool    `json:"isLow"`
	ImageURL       string  `json:"imageUrl"`
	Category       string  `json:"category"`
	ParentID       string  `json:"parentId"`
	VariantOptions string  `json:"variantOptions"`
	PromoPrice     float64 `json:"promoPrice"`
	PromoStart     string  `json:"promoStart"`
	PromoEnd       string  `json:"promoEnd"`
	Featured       bool    `json:"featured"`
	Visible        bool    `json:"visible"`
	SortOrder      float64 `json:"sortOrder"`
}

// Summary holds the aggregates computed over the included item set.
// TotalOrders and Revenue are always zero; they exist so dashboard
// payloads stay shape-compatible with older clients.
type Summary struct {
	TotalItems      int     `json:"totalItems"`
	TotalStockQty   float64 `json:"totalStockQty"`
	TotalStockValue float64 `json:"totalStockValue"`
	LowStockCount   int     `json:"lowStockCount"`
	TotalOrders     int     `json:"totalOrders"`
	Revenue         float64 `json:"revenue"`
}

// Inventory is the full dashboard payload.
type Inventory struct {
	Items   []Item  `json:"items"`
	Summary Summary `json:"summary"`
}

// Bundle is a named grouping of SKUs sold together, optionally
// discounted and time-boxed.
type Bundle struct {
	BundleID      string   `json:"bundleId"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	SKUs          []string `json:"skus"`
	DiscountType  string   `json:"discountType"`
	DiscountValue float64  `json:"discountValue"`
	Active        bool     `json:"active"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	ImageURL      string   `json:"imageUrl"`
}
