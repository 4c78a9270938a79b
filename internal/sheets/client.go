// backend-go/internal/sheets/client.go
package sheets

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2/google"
	sheetsapi "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
)

// Client implements Values on top of the Google Sheets v4 API using
// service-account credentials.
type Client struct {
	srv           *sheetsapi.Service
	spreadsheetID string
}

func NewClient(ctx context.Context, credentialsJSON, spreadsheetID string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(
		[]byte(credentialsJSON),
		sheetsapi.SpreadsheetsScope,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account credentials: %v", err)
	}

	httpClient := config.Client(ctx)

	srv, err := sheetsapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets client: %v", err)
	}

	return &Client{srv: srv, spreadsheetID: spreadsheetID}, nil
}

// checkConfig guards every call: the spreadsheet ID is resolved per
// request so a misconfigured deployment answers 500 instead of dying
// at boot.
func (c *Client) checkConfig() error {
	if c.spreadsheetID == "" {
		return domain.MissingConfig("SPREADSHEET_ID")
	}
	return nil
}

func (c *Client) Get(ctx context.Context, rng string) ([][]interface{}, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, domain.Upstream("sheets get "+rng, err)
	}
	return resp.Values, nil
}

func (c *Client) Update(ctx context.Context, rng string, values [][]interface{}) error {
	if err := c.checkConfig(); err != nil {
		return err
	}

	body := &sheetsapi.ValueRange{Values: values}
	_, err := c.srv.Spreadsheets.Values.Update(c.spreadsheetID, rng, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return domain.Upstream("sheets update "+rng, err)
	}
	return nil
}

func (c *Client) Append(ctx context.Context, rng string, row []interface{}) error {
	if err := c.checkConfig(); err != nil {
		return err
	}

	body := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, rng, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return domain.Upstream("sheets append "+rng, err)
	}
	return nil
}

func (c *Client) DeleteRow(ctx context.Context, sheetTitle string, rowNumber int64) error {
	if err := c.checkConfig(); err != nil {
		return err
	}

	sheetID, err := c.sheetIDByTitle(ctx, sheetTitle)
	if err != nil {
		return err
	}

	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			DeleteDimension: &sheetsapi.DeleteDimensionRequest{
				Range: &sheetsapi.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: rowNumber - 1,
					EndIndex:   rowNumber,
				},
			},
		}},
	}
	_, err = c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return domain.Upstream(fmt.Sprintf("sheets delete row %d in %s", rowNumber, sheetTitle), err)
	}
	return nil
}

func (c *Client) EnsureSheet(ctx context.Context, sheetTitle string, header []interface{}) error {
	if err := c.checkConfig(); err != nil {
		return err
	}

	_, err := c.sheetIDByTitle(ctx, sheetTitle)
	if err != nil {
		if !isNotFound(err) {
			return err
		}

		req := &sheetsapi.BatchUpdateSpreadsheetRequest{
			Requests: []*sheetsapi.Request{{
				AddSheet: &sheetsapi.AddSheetRequest{
					Properties: &sheetsapi.SheetProperties{Title: sheetTitle},
				},
			}},
		}
		if _, err := c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
			return domain.Upstream("sheets add sheet "+sheetTitle, err)
		}
	}

	// Backfill the header row when the sheet exists but is empty.
	headerRange := fmt.Sprintf("%s!A1:%s1", sheetTitle, columnLetter(len(header)-1))
	rows, err := c.Get(ctx, headerRange)
	if err != nil {
		return err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return c.Update(ctx, headerRange, [][]interface{}{header})
	}
	return nil
}

func (c *Client) sheetIDByTitle(ctx context.Context, title string) (int64, error) {
	meta, err := c.srv.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets(properties(sheetId,title))").
		Context(ctx).Do()
	if err != nil {
		return 0, domain.Upstream("sheets metadata", err)
	}

	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			return sh.Properties.SheetId, nil
		}
	}
	return 0, domain.NotFound("sheet", title)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// columnLetter converts a 0-based column index to its A1 letter(s).
func columnLetter(index int) string {
	letters := ""
	n := index
	for {
		letters = string(rune('A'+n%26)) + letters
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return letters
}
