// backend-go/internal/inventory/writer.go
package inventory

import (
	"context"
	"strings"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/sheets"
)

// MetaUpdate carries the full L..T column block for one row. Numeric
// fields arrive as raw JSON values so an empty string can stay an
// empty (unset) cell instead of a zero.
type MetaUpdate struct {
	Category       string
	ParentID       string
	VariantOptions string
	PromoPrice     interface{}
	PromoStart     string
	PromoEnd       string
	Featured       *bool
	Visible        *bool
	SortOrder      interface{}
}

// Writer issues cell-range writes for a located row. Each call mutates
// exactly one contiguous range; there is no read-modify-write merge, so
// callers own every column in the range they write.
type Writer struct {
	values    sheets.Values
	sheetName string
}

func NewWriter(values sheets.Values, sheetName string) *Writer {
	return &Writer{values: values, sheetName: sheetName}
}

func (w *Writer) UpdateImageURL(ctx context.Context, row int64, imageURL string) error {
	return w.values.Update(ctx, imageCell(w.sheetName, row), [][]interface{}{
		{strings.TrimSpace(imageURL)},
	})
}

func (w *Writer) UpdateClassification(ctx context.Context, row int64, category, parentID string) error {
	return w.values.Update(ctx, classificationRange(w.sheetName, row), [][]interface{}{
		{strings.TrimSpace(category), strings.TrimSpace(parentID)},
	})
}

func (w *Writer) UpdateMeta(ctx context.Context, row int64, meta MetaUpdate) error {
	featured := false
	if meta.Featured != nil {
		featured = *meta.Featured
	}
	visible := true
	if meta.Visible != nil {
		visible = *meta.Visible
	}

	return w.values.Update(ctx, metaRange(w.sheetName, row), [][]interface{}{{
		strings.TrimSpace(meta.Category),
		strings.TrimSpace(meta.ParentID),
		strings.TrimSpace(meta.VariantOptions),
		NumOrEmpty(meta.PromoPrice),
		strings.TrimSpace(meta.PromoStart),
		strings.TrimSpace(meta.PromoEnd),
		BoolCell(featured),
		BoolCell(visible),
		NumOrEmpty(meta.SortOrder),
	}})
}

// AppendItem appends a new product row covering the full column set.
func (w *Writer) AppendItem(ctx context.Context, row []interface{}) error {
	return w.values.Append(ctx, appendRange(w.sheetName), row)
}
