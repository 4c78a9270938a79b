package sheets

import (
	"context"
	"testing"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want rangeRef
	}{
		{"Items!A2:T", rangeRef{sheet: "Items", startCol: 0, endCol: 19, startRow: 2, endRow: 0}},
		{"Items!F2:F", rangeRef{sheet: "Items", startCol: 5, endCol: 5, startRow: 2, endRow: 0}},
		{"Items!K5", rangeRef{sheet: "Items", startCol: 10, endCol: 10, startRow: 5, endRow: 5}},
		{"Items!A:J", rangeRef{sheet: "Items", startCol: 0, endCol: 9, startRow: 1, endRow: 0}},
		{"'My Tab'!A1:B2", rangeRef{sheet: "My Tab", startCol: 0, endCol: 1, startRow: 1, endRow: 2}},
	}

	for _, tt := range tests {
		got, err := parseRange(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseRange("A2:T")
	assert.Error(t, err)
	_, err = parseRange("Items!2:4")
	assert.Error(t, err)
}

func TestGetMissingTab(t *testing.T) {
	m := NewMemory()

	_, err := m.Get(context.Background(), "Nope!A2:T")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePadsRowsAndCells(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	assert.NoError(t, m.Update(ctx, "Items!K3", [][]interface{}{{"https://img"}}))

	rows := m.Rows("Items")
	assert.Len(t, rows, 3)
	assert.Equal(t, "https://img", rows[2][10])

	got, err := m.Get(ctx, "Items!A2:T")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "https://img", got[1][10])
}

func TestGetTrimsTrailingEmpties(t *testing.T) {
	m := NewMemory()
	m.Seed("Items", [][]interface{}{
		{"header"},
		{"a", "", "c", "", ""},
		{"", "", ""},
	})

	got, err := m.Get(context.Background(), "Items!A2:T")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, []interface{}{"a", "", "c"}, got[0])
}
