// backend-go/internal/sheets/memory.go
package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
)

// Memory is an in-process Values implementation. It backs package tests
// and local development without a real spreadsheet.
type Memory struct {
	mu   sync.Mutex
	tabs map[string][][]interface{}

	// Err, when set, is returned by every operation.
	Err error
}

func NewMemory() *Memory {
	return &Memory{tabs: make(map[string][][]interface{})}
}

// Seed replaces the contents of a sheet tab.
func (m *Memory) Seed(sheetTitle string, rows [][]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tabs[sheetTitle] = rows
}

// Rows returns a copy of the raw rows of a tab.
func (m *Memory) Rows(sheetTitle string) [][]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	src := m.tabs[sheetTitle]
	out := make([][]interface{}, len(src))
	for i, row := range src {
		out[i] = append([]interface{}(nil), row...)
	}
	return out
}

func (m *Memory) Get(ctx context.Context, rng string) ([][]interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	ref, err := parseRange(rng)
	if err != nil {
		return nil, err
	}
	data, ok := m.tabs[ref.sheet]
	if !ok {
		return nil, domain.NotFound("sheet", ref.sheet)
	}

	endRow := ref.endRow
	if endRow == 0 || endRow > len(data) {
		endRow = len(data)
	}

	var out [][]interface{}
	for i := ref.startRow - 1; i < endRow; i++ {
		if i < 0 || i >= len(data) {
			break
		}
		out = append(out, sliceCells(data[i], ref.startCol, ref.endCol))
	}
	return trimTrailingEmptyRows(out), nil
}

func (m *Memory) Update(ctx context.Context, rng string, values [][]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	ref, err := parseRange(rng)
	if err != nil {
		return err
	}
	data := m.tabs[ref.sheet]

	for r, rowValues := range values {
		rowIdx := ref.startRow - 1 + r
		for len(data) <= rowIdx {
			data = append(data, nil)
		}
		row := data[rowIdx]
		for c, v := range rowValues {
			colIdx := ref.startCol + c
			for len(row) <= colIdx {
				row = append(row, "")
			}
			row[colIdx] = v
		}
		data[rowIdx] = row
	}
	m.tabs[ref.sheet] = data
	return nil
}

func (m *Memory) Append(ctx context.Context, rng string, row []interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	ref, err := parseRange(rng)
	if err != nil {
		return err
	}
	m.tabs[ref.sheet] = append(m.tabs[ref.sheet], append([]interface{}(nil), row...))
	return nil
}

func (m *Memory) DeleteRow(ctx context.Context, sheetTitle string, rowNumber int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	data, ok := m.tabs[sheetTitle]
	if !ok {
		return domain.NotFound("sheet", sheetTitle)
	}
	idx := int(rowNumber) - 1
	if idx < 0 || idx >= len(data) {
		return domain.NotFound("row", fmt.Sprintf("%s:%d", sheetTitle, rowNumber))
	}
	m.tabs[sheetTitle] = append(data[:idx], data[idx+1:]...)
	return nil
}

func (m *Memory) EnsureSheet(ctx context.Context, sheetTitle string, header []interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	data, ok := m.tabs[sheetTitle]
	if !ok || len(data) == 0 {
		m.tabs[sheetTitle] = [][]interface{}{append([]interface{}(nil), header...)}
		return nil
	}
	if len(data[0]) == 0 || allEmpty(data[0]) {
		data[0] = append([]interface{}(nil), header...)
		m.tabs[sheetTitle] = data
	}
	return nil
}

// rangeRef is a parsed A1 range. Rows are 1-based; 0 means unbounded.
// Columns are 0-based indexes.
type rangeRef struct {
	sheet    string
	startCol int
	endCol   int
	startRow int
	endRow   int
}

func parseRange(rng string) (rangeRef, error) {
	bang := strings.LastIndex(rng, "!")
	if bang < 0 {
		return rangeRef{}, fmt.Errorf("range %q has no sheet title", rng)
	}

	ref := rangeRef{sheet: strings.Trim(rng[:bang], "'")}
	parts := strings.SplitN(rng[bang+1:], ":", 2)

	startCol, startRow, err := parseCellRef(parts[0])
	if err != nil {
		return rangeRef{}, err
	}
	ref.startCol, ref.startRow = startCol, startRow
	if ref.startRow == 0 {
		ref.startRow = 1
	}

	if len(parts) == 2 {
		endCol, endRow, err := parseCellRef(parts[1])
		if err != nil {
			return rangeRef{}, err
		}
		ref.endCol, ref.endRow = endCol, endRow
	} else {
		ref.endCol = ref.startCol
		ref.endRow = startRow
	}
	return ref, nil
}

func parseCellRef(ref string) (col int, row int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A'+1)
		i++
	}
	if col == 0 {
		return 0, 0, fmt.Errorf("cell ref %q has no column", ref)
	}
	col--

	if i < len(ref) {
		n := 0
		for ; i < len(ref); i++ {
			if ref[i] < '0' || ref[i] > '9' {
				return 0, 0, fmt.Errorf("bad cell ref %q", ref)
			}
			n = n*10 + int(ref[i]-'0')
		}
		row = n
	}
	return col, row, nil
}

func sliceCells(row []interface{}, startCol, endCol int) []interface{} {
	if startCol >= len(row) {
		return nil
	}
	end := endCol + 1
	if end > len(row) {
		end = len(row)
	}
	out := append([]interface{}(nil), row[startCol:end]...)
	// The real API omits trailing empty cells.
	for len(out) > 0 && isEmptyCell(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

func trimTrailingEmptyRows(rows [][]interface{}) [][]interface{} {
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func allEmpty(row []interface{}) bool {
	for _, v := range row {
		if !isEmptyCell(v) {
			return false
		}
	}
	return true
}

func isEmptyCell(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
