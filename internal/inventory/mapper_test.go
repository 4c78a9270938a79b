package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/inventory"
)

// itemRow builds a sheet row in column order with named overrides.
func itemRow(overrides map[int]interface{}) []interface{} {
	row := make([]interface{}, inventory.ColumnCount)
	for i := range row {
		row[i] = ""
	}
	for idx, v := range overrides {
		row[idx] = v
	}
	return row
}

func TestBuildInventoryStatusFiltering(t *testing.T) {
	rows := [][]interface{}{
		itemRow(map[int]interface{}{inventory.ColName: "Plain", inventory.ColSKU: "SKU-1"}),
		itemRow(map[int]interface{}{inventory.ColName: "Lower", inventory.ColSKU: "SKU-2", inventory.ColStatus: "active"}),
		itemRow(map[int]interface{}{inventory.ColName: "Upper", inventory.ColSKU: "SKU-3", inventory.ColStatus: "ACTIVE"}),
		itemRow(map[int]interface{}{inventory.ColName: "Mixed", inventory.ColSKU: "SKU-4", inventory.ColStatus: "Active"}),
		itemRow(map[int]interface{}{inventory.ColName: "Draft", inventory.ColSKU: "SKU-5", inventory.ColStatus: "Draft"}),
		itemRow(map[int]interface{}{inventory.ColName: "Gone", inventory.ColSKU: "SKU-6", inventory.ColStatus: "archived"}),
		itemRow(nil), // name and SKU both empty
	}

	inv := inventory.BuildInventory(rows)

	skus := make([]string, 0, len(inv.Items))
	for _, it := range inv.Items {
		skus = append(skus, it.SKU)
	}
	assert.Equal(t, []string{"SKU-1", "SKU-2", "SKU-3", "SKU-4"}, skus)
	assert.Equal(t, 4, inv.Summary.TotalItems)
}

func TestBuildInventoryPreservesRowOrder(t *testing.T) {
	rows := [][]interface{}{
		itemRow(map[int]interface{}{inventory.ColName: "Zebra", inventory.ColSKU: "Z-1"}),
		itemRow(map[int]interface{}{inventory.ColName: "Apple", inventory.ColSKU: "A-1"}),
	}

	inv := inventory.BuildInventory(rows)

	assert.Equal(t, "Z-1", inv.Items[0].SKU)
	assert.Equal(t, "A-1", inv.Items[1].SKU)
}

func TestMapRowIsLow(t *testing.T) {
	tests := []struct {
		name    string
		qty     interface{}
		reorder interface{}
		want    bool
	}{
		{"below reorder", "3", "5", true},
		{"at reorder", "5", "5", true},
		{"above reorder", "6", "5", false},
		{"zero reorder level", "0", "0", false},
		{"zero qty with reorder", "0", "5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := inventory.MapRow(itemRow(map[int]interface{}{
				inventory.ColName:         "Item",
				inventory.ColSKU:          "SKU",
				inventory.ColQtyOnHand:    tt.qty,
				inventory.ColReorderLevel: tt.reorder,
			}))
			assert.True(t, ok)
			assert.Equal(t, tt.want, item.IsLow)
		})
	}
}

func TestMapRowQtyFallsBackToStockOnHand(t *testing.T) {
	item, ok := inventory.MapRow(itemRow(map[int]interface{}{
		inventory.ColName:        "Item",
		inventory.ColSKU:         "SKU",
		inventory.ColQtyOnHand:   "",
		inventory.ColStockOnHand: "7",
	}))
	assert.True(t, ok)
	assert.Equal(t, 7.0, item.QtyOnHand)
	assert.Equal(t, 7.0, item.StockOnHand)

	item, _ = inventory.MapRow(itemRow(map[int]interface{}{
		inventory.ColName:        "Item",
		inventory.ColSKU:         "SKU",
		inventory.ColQtyOnHand:   "3",
		inventory.ColStockOnHand: "9",
	}))
	assert.Equal(t, 3.0, item.QtyOnHand)
}

func TestMapRowBooleanDefaults(t *testing.T) {
	item, _ := inventory.MapRow(itemRow(map[int]interface{}{
		inventory.ColName: "Item",
		inventory.ColSKU:  "SKU",
	}))
	assert.False(t, item.Featured)
	assert.True(t, item.Visible)

	item, _ = inventory.MapRow(itemRow(map[int]interface{}{
		inventory.ColName:     "Item",
		inventory.ColSKU:      "SKU",
		inventory.ColFeatured: "yes",
		inventory.ColVisible:  "NO",
	}))
	assert.True(t, item.Featured)
	assert.False(t, item.Visible)
}

func TestBuildInventorySummaryAggregates(t *testing.T) {
	rows := [][]interface{}{
		itemRow(map[int]interface{}{
			inventory.ColName: "A", inventory.ColSKU: "A-1",
			inventory.ColQtyOnHand: "10", inventory.ColSellingPrice: "$2.50",
			inventory.ColReorderLevel: "20",
		}),
		itemRow(map[int]interface{}{
			inventory.ColName: "B", inventory.ColSKU: "B-1",
			inventory.ColQtyOnHand: "4", inventory.ColSellingPrice: "100",
		}),
	}

	inv := inventory.BuildInventory(rows)

	assert.Equal(t, 2, inv.Summary.TotalItems)
	assert.Equal(t, 14.0, inv.Summary.TotalStockQty)
	assert.Equal(t, 10*2.5+4*100, inv.Summary.TotalStockValue)
	assert.Equal(t, 1, inv.Summary.LowStockCount)
	assert.Equal(t, 0, inv.Summary.TotalOrders)
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   interface{}
		want float64
	}{
		{"$1,234.50", 1234.5},
		{"abc", 0},
		{float64(1500), 1500},
		{"", 0},
		{nil, 0},
		{"JMD 99.99", 99.99},
		{"-5", -5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, inventory.ParseMoney(tt.in), "input %v", tt.in)
	}
}

func TestToNumber(t *testing.T) {
	assert.Equal(t, 0.0, inventory.ToNumber(nil))
	assert.Equal(t, 0.0, inventory.ToNumber(""))
	assert.Equal(t, 0.0, inventory.ToNumber("n/a"))
	assert.Equal(t, 12.5, inventory.ToNumber("12.5"))
	assert.Equal(t, 3.0, inventory.ToNumber(float64(3)))
}

func TestNumOrEmptyKeepsUnsetDistinctFromZero(t *testing.T) {
	assert.Equal(t, "", inventory.NumOrEmpty(""))
	assert.Equal(t, "", inventory.NumOrEmpty(nil))
	assert.Equal(t, 0.0, inventory.NumOrEmpty("0"))
	assert.Equal(t, 42.0, inventory.NumOrEmpty(42.0))
	assert.Equal(t, "", inventory.NumOrEmpty("abc"))
}
