package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDescriptorHasCoreTables(t *testing.T) {
	d := Default()
	for _, file := range []string{"agency.txt", "stops.txt", "routes.txt", "trips.txt", "stop_times.txt"} {
		_, ok := d.Table(file)
		assert.True(t, ok, "expected %s in default descriptor", file)
	}
}

func TestStopsPrimaryKey(t *testing.T) {
	d := Default()
	stops, ok := d.Table("stops.txt")
	require.True(t, ok)
	assert.Equal(t, []string{"stop_id"}, stops.PrimaryKey())
}

func TestStopTimesCompositePrimaryKey(t *testing.T) {
	d := Default()
	st, ok := d.Table("stop_times.txt")
	require.True(t, ok)
	assert.Equal(t, []string{"trip_id", "stop_sequence"}, st.PrimaryKey())
}

func TestColumnIndexAndName(t *testing.T) {
	d := Default()
	trips, _ := d.Table("trips.txt")
	idx := trips.ColumnIndex("route_id")
	require.GreaterOrEqual(t, idx, 0)
	col, ok := trips.Column(idx)
	require.True(t, ok)
	assert.Equal(t, "route_id", col.Name)
	assert.Equal(t, -1, trips.ColumnIndex("no_such_column"))
}

func TestTripsForeignKeys(t *testing.T) {
	d := Default()
	trips, _ := d.Table("trips.txt")
	fks := trips.ForeignKeys()
	var sawRoute bool
	for _, fk := range fks {
		if fk.RemoteTable == "routes.txt" {
			sawRoute = true
			assert.Equal(t, []string{"route_id"}, fk.LocalColumns)
		}
	}
	assert.True(t, sawRoute)
}

func TestRequiredFiles(t *testing.T) {
	d := Default()
	required := d.RequiredFiles()
	assert.Contains(t, required, "stops.txt")
	assert.NotContains(t, required, "shapes.txt")
}

func TestEnumCodecUnrecognized(t *testing.T) {
	assert.True(t, wheelchairBoardingCodec.IsValid(1))
	assert.False(t, wheelchairBoardingCodec.IsValid(7))
	assert.Equal(t, 0, wheelchairBoardingCodec.Unrecognized)
}
