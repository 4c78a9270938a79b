package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/inventory"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/sheets"
)

func seededService(t *testing.T) (*inventory.Service, *sheets.Memory) {
	t.Helper()

	mem := sheets.NewMemory()
	mem.Seed(inventory.DefaultSheetName, [][]interface{}{
		itemRow(map[int]interface{}{inventory.ColName: "Name"}), // header
		itemRow(map[int]interface{}{
			inventory.ColName: "Hoodie", inventory.ColSKU: "HOOD-1",
			inventory.ColQtyOnHand: "12", inventory.ColSellingPrice: "40",
		}),
		itemRow(map[int]interface{}{
			inventory.ColName: "Hoodie / Red / M", inventory.ColSKU: "HOOD-1-RM",
			inventory.ColParentID: "HOOD-1",
		}),
		itemRow(map[int]interface{}{
			inventory.ColName: "Mug", inventory.ColSKU: "MUG-1",
			inventory.ColQtyOnHand: "3", inventory.ColReorderLevel: "5",
		}),
	})
	return inventory.NewService(mem, "", nil), mem
}

func TestGetInventoryReadsSheet(t *testing.T) {
	svc, _ := seededService(t)

	inv, err := svc.GetInventory(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, inv.Summary.TotalItems)
	assert.Equal(t, 1, inv.Summary.LowStockCount)
	assert.Equal(t, 12*40.0, inv.Summary.TotalStockValue)
}

func TestClassifyWriteThenRead(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	err := svc.Classify(ctx, "MUG-1", "Drinkware", "")
	assert.NoError(t, err)

	inv, err := svc.GetInventory(ctx)
	assert.NoError(t, err)
	var mug domain.Item
	for _, it := range inv.Items {
		if it.SKU == "MUG-1" {
			mug = it
		}
	}
	assert.Equal(t, "Drinkware", mug.Category)
	assert.Equal(t, "", mug.ParentID)
}

func TestClassifyUnknownSKU(t *testing.T) {
	svc, _ := seededService(t)

	err := svc.Classify(context.Background(), "NOPE-1", "Cat", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateMetaWriteThenRead(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	featured := true
	err := svc.UpdateMeta(ctx, "HOOD-1", inventory.MetaUpdate{
		Category:   "Apparel",
		PromoPrice: "25.50",
		PromoStart: "2026-01-01",
		PromoEnd:   "2026-12-31",
		Featured:   &featured,
	})
	assert.NoError(t, err)

	inv, err := svc.GetInventory(ctx)
	assert.NoError(t, err)
	var hoodie domain.Item
	for _, it := range inv.Items {
		if it.SKU == "HOOD-1" {
			hoodie = it
		}
	}
	assert.Equal(t, "Apparel", hoodie.Category)
	assert.Equal(t, 25.5, hoodie.PromoPrice)
	assert.Equal(t, "2026-01-01", hoodie.PromoStart)
	assert.True(t, hoodie.Featured)
	// Visible was not sent, defaults to true on write as well.
	assert.True(t, hoodie.Visible)
}

func TestUpdateMetaEmptyPromoPriceStaysUnset(t *testing.T) {
	svc, mem := seededService(t)

	err := svc.UpdateMeta(context.Background(), "HOOD-1", inventory.MetaUpdate{PromoPrice: ""})
	assert.NoError(t, err)

	rows := mem.Rows(inventory.DefaultSheetName)
	assert.Equal(t, "", rows[1][inventory.ColPromoPrice])
}

func TestUpdateImage(t *testing.T) {
	svc, _ := seededService(t)

	res, err := svc.UpdateImage(context.Background(), "HOOD-1-RM", "  https://cdn.example.com/a.jpg ")
	assert.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "HOOD-1-RM", res.SKU)
	assert.Equal(t, int64(3), res.Row)
	assert.Equal(t, "https://cdn.example.com/a.jpg", res.ImageURL)

	inv, err := svc.GetInventory(context.Background())
	assert.NoError(t, err)
	for _, it := range inv.Items {
		if it.SKU == "HOOD-1-RM" {
			assert.Equal(t, "https://cdn.example.com/a.jpg", it.ImageURL)
		}
	}
}

func TestUpdateImageMissingURL(t *testing.T) {
	svc, _ := seededService(t)

	_, err := svc.UpdateImage(context.Background(), "HOOD-1", "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetVariants(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	variants, err := svc.GetVariants(ctx, "HOOD-1")
	assert.NoError(t, err)
	assert.Len(t, variants, 1)
	assert.Equal(t, "HOOD-1-RM", variants[0].SKU)

	variants, err = svc.GetVariants(ctx, "MUG-1")
	assert.NoError(t, err)
	assert.Empty(t, variants)

	_, err = svc.GetVariants(ctx, "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateItem(t *testing.T) {
	svc, mem := seededService(t)
	ctx := context.Background()

	err := svc.CreateItem(ctx, inventory.NewItem{
		Name:         "Poster",
		SKU:          "POST-1",
		QtyOnHand:    "20",
		SellingPrice: 15.0,
	})
	assert.NoError(t, err)

	inv, err := svc.GetInventory(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 4, inv.Summary.TotalItems)

	rows := mem.Rows(inventory.DefaultSheetName)
	last := rows[len(rows)-1]
	assert.Equal(t, "POST-1", last[inventory.ColSKU])
	assert.Equal(t, "Active", last[inventory.ColStatus])
	assert.Equal(t, "TRUE", last[inventory.ColVisible])
}

func TestCreateItemValidation(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	err := svc.CreateItem(ctx, inventory.NewItem{Name: "No SKU"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = svc.CreateItem(ctx, inventory.NewItem{SKU: "NEW-1"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = svc.CreateItem(ctx, inventory.NewItem{Name: "Dup", SKU: "HOOD-1"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUpstreamErrorPropagates(t *testing.T) {
	mem := sheets.NewMemory()
	mem.Err = domain.Upstream("values.get", assert.AnError)
	svc := inventory.NewService(mem, "", nil)

	_, err := svc.GetInventory(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
