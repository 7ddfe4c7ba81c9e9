package csvreader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdata/gtfs-validator/internal/notice"
)

func TestHeaderAndRows(t *testing.T) {
	c := notice.NewContainer()
	r := New(strings.NewReader("stop_id,stop_name\nS1, Main St \nS2,\n"), "stops.txt", c)
	header, ok := r.Header()
	require.True(t, ok)
	assert.Equal(t, []string{"stop_id", "stop_name"}, header)

	row1, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 2, row1.Number)
	require.Len(t, row1.Cells, 2)
	assert.Equal(t, "S1", *row1.Cells[0])
	assert.Equal(t, "Main St", *row1.Cells[1])

	row2, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 3, row2.Number)
	assert.Nil(t, row2.Cells[1], "empty cell should be null, not empty string")

	_, ok = r.Next()
	assert.False(t, ok)
}

func TestEmptyFileNotice(t *testing.T) {
	c := notice.NewContainer()
	r := New(strings.NewReader(""), "stops.txt", c)
	_, ok := r.Header()
	assert.False(t, ok)
	groups := c.Export()
	require.Len(t, groups, 1)
	assert.Equal(t, notice.CodeEmptyFile, groups[0].Code)
}

func TestEmptyRowNoticeForTrailingWhitespaceLine(t *testing.T) {
	c := notice.NewContainer()
	r := New(strings.NewReader("a,b,c\nx,y,z\n   "), "trips.txt", c)
	_, ok := r.Header()
	require.True(t, ok)

	_, ok = r.Next()
	require.True(t, ok)

	row, ok := r.Next()
	require.True(t, ok)
	assert.True(t, row.IsEmpty())

	groups := c.Export()
	require.Len(t, groups, 1)
	assert.Equal(t, notice.CodeEmptyRow, groups[0].Code)
	assert.Equal(t, notice.SeverityWarning, groups[0].Severity)
}
