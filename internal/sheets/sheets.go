// backend-go/internal/sheets/sheets.go
package sheets

import "context"

// Values captures the slice of the spreadsheet values API the server
// uses. Ranges are A1 notation including the sheet title, e.g.
// "WebsiteItems!A2:T". Row numbers are 1-based sheet rows.
type Values interface {
	Get(ctx context.Context, rng string) ([][]interface{}, error)
	Update(ctx context.Context, rng string, values [][]interface{}) error
	Append(ctx context.Context, rng string, row []interface{}) error
	DeleteRow(ctx context.Context, sheetTitle string, rowNumber int64) error
	EnsureSheet(ctx context.Context, sheetTitle string, header []interface{}) error
}
