// backend-go/internal/inventory/service.go
package inventory

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/cache"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/sheets"
)

// ImageUpdateResult echoes a successful image write back to the client.
type ImageUpdateResult struct {
	Success  bool   `json:"success"`
	SKU      string `json:"sku"`
	Row      int64  `json:"row"`
	ImageURL string `json:"imageUrl"`
}

// NewItem is the create-product payload. Status defaults to Active so
// the row is included on the next read.
type NewItem struct {
	Name          string      `json:"name"`
	SKU           string      `json:"sku"`
	QtyOnHand     interface{} `json:"qtyOnHand"`
	ReorderLevel  interface{} `json:"reorderLevel"`
	StockOnHand   interface{} `json:"stockOnHand"`
	SellingPrice  interface{} `json:"sellingPrice"`
	PurchasePrice interface{} `json:"purchasePrice"`
	Unit          string      `json:"unit"`
	ImageURL      string      `json:"imageUrl"`
	Category      string      `json:"category"`
	ParentID      string      `json:"parentId"`
}

// Service orchestrates reads and writes against the item sheet. The
// sheet is the sole source of truth; the service keeps no state beyond
// the optional snapshot cache, which is invalidated on every write.
type Service struct {
	values    sheets.Values
	locator   *Locator
	writer    *Writer
	cache     cache.InventoryCache
	sheetName string
}

func NewService(values sheets.Values, sheetName string, c cache.InventoryCache) *Service {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	if c == nil {
		c = cache.NewNoopInventoryCache()
	}
	return &Service{
		values:    values,
		locator:   NewLocator(values, sheetName),
		writer:    NewWriter(values, sheetName),
		cache:     c,
		sheetName: sheetName,
	}
}

func (s *Service) GetInventory(ctx context.Context) (*domain.Inventory, error) {
	if inv, hit, err := s.cache.Get(ctx); err != nil {
		log.Warn().Err(err).Msg("inventory cache read failed")
	} else if hit {
		return inv, nil
	}

	rows, err := s.values.Get(ctx, dataRange(s.sheetName))
	if err != nil {
		return nil, err
	}

	inv := BuildInventory(rows)
	if err := s.cache.Set(ctx, inv); err != nil {
		log.Warn().Err(err).Msg("inventory cache write failed")
	}
	return inv, nil
}

// GetVariants returns the items whose parent id references the given
// main product SKU.
func (s *Service) GetVariants(ctx context.Context, parentSKU string) ([]domain.Item, error) {
	parentSKU = strings.TrimSpace(parentSKU)
	if parentSKU == "" {
		return nil, domain.MissingField("parentSku")
	}

	inv, err := s.GetInventory(ctx)
	if err != nil {
		return nil, err
	}

	variants := make([]domain.Item, 0)
	for _, item := range inv.Items {
		if item.ParentID == parentSKU {
			variants = append(variants, item)
		}
	}
	return variants, nil
}

func (s *Service) Classify(ctx context.Context, sku, category, parentID string) error {
	row, err := s.locator.FindRowBySKU(ctx, sku)
	if err != nil {
		return err
	}
	if err := s.writer.UpdateClassification(ctx, row, category, parentID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) UpdateMeta(ctx context.Context, sku string, meta MetaUpdate) error {
	row, err := s.locator.FindRowBySKU(ctx, sku)
	if err != nil {
		return err
	}
	if err := s.writer.UpdateMeta(ctx, row, meta); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) UpdateImage(ctx context.Context, sku, imageURL string) (*ImageUpdateResult, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, domain.MissingField("imageUrl")
	}

	row, err := s.locator.FindRowBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if err := s.writer.UpdateImageURL(ctx, row, imageURL); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	return &ImageUpdateResult{
		Success:  true,
		SKU:      strings.TrimSpace(sku),
		Row:      row,
		ImageURL: strings.TrimSpace(imageURL),
	}, nil
}

// CreateItem appends a new product row. The SKU must be unique.
func (s *Service) CreateItem(ctx context.Context, item NewItem) error {
	sku := strings.TrimSpace(item.SKU)
	if sku == "" {
		return domain.MissingField("sku")
	}
	if strings.TrimSpace(item.Name) == "" {
		return domain.MissingField("name")
	}

	if _, err := s.locator.FindRowBySKU(ctx, sku); err == nil {
		return domain.Invalid("sku already exists: " + sku)
	}

	row := make([]interface{}, ColumnCount)
	for i := range row {
		row[i] = ""
	}
	row[ColName] = strings.TrimSpace(item.Name)
	row[ColQtyOnHand] = NumOrEmpty(item.QtyOnHand)
	row[ColReorderLevel] = NumOrEmpty(item.ReorderLevel)
	row[ColStockOnHand] = NumOrEmpty(item.StockOnHand)
	row[ColSellingPrice] = NumOrEmpty(item.SellingPrice)
	row[ColSKU] = sku
	row[ColPurchasePrice] = NumOrEmpty(item.PurchasePrice)
	row[ColStatus] = "Active"
	row[ColUnit] = strings.TrimSpace(item.Unit)
	row[ColImageURL] = strings.TrimSpace(item.ImageURL)
	row[ColCategory] = strings.TrimSpace(item.Category)
	row[ColParentID] = strings.TrimSpace(item.ParentID)
	row[ColVisible] = BoolCell(true)

	if err := s.writer.AppendItem(ctx, row); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("inventory cache invalidation failed")
	}
}
