// backend-go/cmd/seed/main.go
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/bundle"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/inventory"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/sheets"
)

func sheetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "spreadsheet-id",
			Usage:    "Spreadsheet holding the inventory collections",
			Required: true,
			EnvVars:  []string{"SPREADSHEET_ID"},
		},
		&cli.StringFlag{
			Name:    "credentials-json",
			Usage:   "Service account credentials JSON",
			EnvVars: []string{"GOOGLE_SHEETS_CREDENTIALS_JSON"},
		},
		&cli.StringFlag{
			Name:    "sheet-name",
			Usage:   "Item sheet tab name",
			Value:   inventory.DefaultSheetName,
			EnvVars: []string{"SHEET_NAME"},
		},
		&cli.StringFlag{
			Name:    "bundle-sheet-name",
			Usage:   "Bundle sheet tab name",
			Value:   bundle.DefaultSheetName,
			EnvVars: []string{"BUNDLE_SHEET_NAME"},
		},
	}
}

func newValues(c *cli.Context) (sheets.Values, error) {
	return sheets.NewClient(c.Context, c.String("credentials-json"), c.String("spreadsheet-id"))
}

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "seed",
		Usage: "Inventory sheet maintenance commands",
		Commands: []*cli.Command{
			{
				Name:  "import",
				Usage: "Append item rows from a CSV file to the item sheet",
				Flags: append(sheetFlags(), &cli.StringFlag{
					Name:     "file",
					Usage:    "CSV file with one record per item row (header skipped)",
					Required: true,
				}),
				Action: runImport,
			},
			{
				Name:  "export",
				Usage: "Export the item and bundle collections to CSV files",
				Flags: append(sheetFlags(), &cli.StringFlag{
					Name:  "out",
					Usage: "Output directory",
					Value: "./data/output",
				}),
				Action: runExport,
			},
			{
				Name:   "ensure-bundles",
				Usage:  "Create the bundle sheet and header row if absent",
				Flags:  sheetFlags(),
				Action: runEnsureBundles,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runImport(c *cli.Context) error {
	values, err := newValues(c)
	if err != nil {
		return err
	}

	f, err := os.Open(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) <= 1 {
		return fmt.Errorf("csv has no data rows")
	}

	writer := inventory.NewWriter(values, c.String("sheet-name"))
	imported := 0
	for _, record := range records[1:] {
		row := make([]interface{}, inventory.ColumnCount)
		for i := range row {
			if i < len(record) {
				row[i] = record[i]
			} else {
				row[i] = ""
			}
		}
		if inventory.CellString(row[inventory.ColSKU]) == "" {
			continue
		}
		if err := writer.AppendItem(c.Context, row); err != nil {
			return fmt.Errorf("failed to append row %d: %w", imported+2, err)
		}
		imported++
	}

	fmt.Printf("Imported %d item rows\n", imported)
	return nil
}

func runExport(c *cli.Context) error {
	values, err := newValues(c)
	if err != nil {
		return err
	}

	outDir := c.String("out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	var (
		inv     *domain.Inventory
		bundles []domain.Bundle
	)

	g, ctx := errgroup.WithContext(c.Context)
	g.Go(func() error {
		svc := inventory.NewService(values, c.String("sheet-name"), nil)
		var err error
		inv, err = svc.GetInventory(ctx)
		return err
	})
	g.Go(func() error {
		store := bundle.NewStore(values, c.String("bundle-sheet-name"))
		var err error
		bundles, err = store.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := exportItems(filepath.Join(outDir, "items.csv"), inv.Items); err != nil {
		return err
	}
	if err := exportBundles(filepath.Join(outDir, "bundles.csv"), bundles); err != nil {
		return err
	}

	fmt.Printf("Exported %d items and %d bundles to %s\n", len(inv.Items), len(bundles), outDir)
	return nil
}

func runEnsureBundles(c *cli.Context) error {
	values, err := newValues(c)
	if err != nil {
		return err
	}

	store := bundle.NewStore(values, c.String("bundle-sheet-name"))
	if err := store.EnsureSheet(c.Context); err != nil {
		return err
	}

	fmt.Println("Bundle sheet ready")
	return nil
}

func exportItems(path string, items []domain.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"SKU", "Name", "Qty On Hand", "Reorder Level", "Selling Price", "Status", "Category", "Parent ID", "Low Stock"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, it := range items {
		record := []string{
			it.SKU,
			it.Name,
			strconv.FormatFloat(it.QtyOnHand, 'f', -1, 64),
			strconv.FormatFloat(it.ReorderLevel, 'f', -1, 64),
			fmt.Sprintf("%.2f", it.SellingPrice),
			it.Status,
			it.Category,
			it.ParentID,
			strconv.FormatBool(it.IsLow),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func exportBundles(path string, bundles []domain.Bundle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"Bundle ID", "Title", "SKUs", "Discount Type", "Discount Value", "Active", "Start Date", "End Date"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, b := range bundles {
		record := []string{
			b.BundleID,
			b.Title,
			strings.Join(b.SKUs, ","),
			b.DiscountType,
			fmt.Sprintf("%g", b.DiscountValue),
			strconv.FormatBool(b.Active),
			b.StartDate,
			b.EndDate,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
