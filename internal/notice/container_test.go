package notice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddValidationNoticeQuota(t *testing.T) {
	c := NewContainerWithQuota(2)
	for i := 0; i < 5; i++ {
		c.AddValidationNotice(New(CodeInvalidDate, SeverityError, "stops.txt", i+2, "date", nil))
	}
	groups := c.Export()
	require.Len(t, groups, 1)
	assert.Equal(t, int64(5), groups[0].TotalNotices)
	assert.Len(t, groups[0].SampleNotices, 2)
}

func TestMergeCommutative(t *testing.T) {
	a := NewContainer()
	b := NewContainer()
	a.AddValidationNotice(New(CodeInvalidDate, SeverityError, "stops.txt", 2, "date", nil))
	b.AddValidationNotice(New(CodeInvalidDate, SeverityError, "stops.txt", 3, "date", nil))

	merged1 := NewContainer()
	merged1.Merge(a)
	merged1.Merge(b)

	merged2 := NewContainer()
	merged2.Merge(b)
	merged2.Merge(a)

	g1 := merged1.Export()
	g2 := merged2.Export()
	require.Len(t, g1, 1)
	require.Len(t, g2, 1)
	assert.Equal(t, g1[0].TotalNotices, g2[0].TotalNotices)
	assert.ElementsMatch(t, g1[0].SampleNotices, g2[0].SampleNotices)
}

func TestHasErrorExitStatus(t *testing.T) {
	c := NewContainer()
	assert.False(t, c.HasError())
	c.AddValidationNotice(New(CodeUnknownColumn, SeverityInfo, "stops.txt", 0, "extra", nil))
	assert.False(t, c.HasError())
	c.AddValidationNotice(New(CodeInvalidDate, SeverityError, "stops.txt", 2, "date", nil))
	assert.True(t, c.HasError())
}

func TestSystemErrorCapture(t *testing.T) {
	c := NewContainer()
	c.AddSystemError("stop_time_usage", errors.New("index out of range"))
	errs := c.SystemErrors()
	require.Len(t, errs, 1)
	assert.Equal(t, "stop_time_usage", errs[0].Validator)
	assert.NotEmpty(t, errs[0].RunID)
}

func TestExportDeterministicOrder(t *testing.T) {
	c := NewContainer()
	c.AddValidationNotice(New(CodeInvalidDate, SeverityError, "trips.txt", 5, "service_id", nil))
	c.AddValidationNotice(New(CodeInvalidDate, SeverityError, "stops.txt", 2, "date", nil))
	c.AddValidationNotice(New(CodeDuplicateKey, SeverityError, "stops.txt", 3, "stop_id", nil))

	groups := c.Export()
	require.Len(t, groups, 2)
	assert.Equal(t, CodeDuplicateKey, groups[0].Code)
	assert.Equal(t, CodeInvalidDate, groups[1].Code)
	require.Len(t, groups[1].SampleNotices, 2)
	assert.Equal(t, "stops.txt", groups[1].SampleNotices[0].File)
	assert.Equal(t, "trips.txt", groups[1].SampleNotices[1].File)
}
