package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablePrimaryKeyDuplicateDetection(t *testing.T) {
	tbl := NewTable("stops.txt")
	p0 := tbl.Append(Row{Number: 2, Values: map[string]any{"stop_id": "S1"}})
	prior := tbl.IndexPrimaryKey("S1", p0)
	assert.Empty(t, prior)

	p1 := tbl.Append(Row{Number: 3, Values: map[string]any{"stop_id": "S1"}})
	prior = tbl.IndexPrimaryKey("S1", p1)
	require.Len(t, prior, 1)
	assert.Equal(t, p0, prior[0])

	rows := tbl.RowsByPrimaryKey("S1")
	assert.Len(t, rows, 2, "both duplicate rows must be retained")
}

func TestTableSecondaryIndexPreservesInsertionOrder(t *testing.T) {
	tbl := NewTable("trips.txt")
	tbl.Append(Row{Number: 2, Values: map[string]any{"trip_id": "T1", "block_id": "B1"}})
	tbl.Append(Row{Number: 3, Values: map[string]any{"trip_id": "T2", "block_id": "B1"}})
	tbl.IndexSecondary("block_id", "B1", 0)
	tbl.IndexSecondary("block_id", "B1", 1)

	rows := tbl.RowsByIndex("block_id", "B1")
	require.Len(t, rows, 2)
	assert.Equal(t, "T1", rows[0].Values["trip_id"])
	assert.Equal(t, "T2", rows[1].Values["trip_id"])
}

func TestFeedGetAbsentFileReturnsEmptyTable(t *testing.T) {
	f := New()
	tbl := f.Get("stops.txt")
	assert.NotNil(t, tbl)
	assert.Empty(t, tbl.Rows)
	assert.False(t, f.Has("stops.txt"))
}

func TestFeedPutAndHas(t *testing.T) {
	f := New()
	f.Put(NewTable("routes.txt"))
	assert.True(t, f.Has("routes.txt"))
	assert.False(t, f.Has("trips.txt"))
}
