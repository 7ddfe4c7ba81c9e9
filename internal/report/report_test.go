package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdata/gtfs-validator/internal/notice"
)

func TestExitCode_NoFindingsIsZero(t *testing.T) {
	assert.Equal(t, 0, ExitCode(ValidationReport{}, SystemErrorsReport{}))
}

func TestExitCode_ErrorSeverityIsNonZero(t *testing.T) {
	validation := ValidationReport{Notices: []notice.Group{
		{Code: "invalid_date", Severity: notice.SeverityError, TotalNotices: 1},
	}}
	assert.Equal(t, 1, ExitCode(validation, SystemErrorsReport{}))
}

func TestExitCode_WarningOnlyIsZero(t *testing.T) {
	validation := ValidationReport{Notices: []notice.Group{
		{Code: "empty_row", Severity: notice.SeverityWarning, TotalNotices: 1},
	}}
	assert.Equal(t, 0, ExitCode(validation, SystemErrorsReport{}))
}

func TestExitCode_SystemErrorIsNonZero(t *testing.T) {
	errs := SystemErrorsReport{Errors: []notice.SystemError{{Validator: "v", Message: "boom"}}}
	assert.Equal(t, 1, ExitCode(ValidationReport{}, errs))
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "report.json")
	validation := ValidationReport{Notices: []notice.Group{{Code: "invalid_date", Severity: notice.SeverityError, TotalNotices: 3}}}
	require.NoError(t, WriteJSON(path, validation))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "invalid_date")
}

func TestWriteHTML_RendersBothSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.html")
	validation := ValidationReport{Notices: []notice.Group{{Code: "invalid_date", Severity: notice.SeverityError, TotalNotices: 1}}}
	systemErrors := SystemErrorsReport{Errors: []notice.SystemError{{Validator: "stop_check", Message: "nil pointer"}}}
	require.NoError(t, WriteHTML(path, validation, systemErrors))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "invalid_date")
	assert.Contains(t, string(data), "stop_check")
}

func TestBuildReports_FromContainer(t *testing.T) {
	c := notice.NewContainer()
	c.AddValidationNotice(notice.New(notice.CodeInvalidDate, notice.SeverityError, "calendar.txt", 2, "start_date", nil))
	c.AddSystemError("broken_validator", assertError("boom"))

	validation := BuildValidationReport(c)
	require.Len(t, validation.Notices, 1)
	assert.Equal(t, notice.CodeInvalidDate, validation.Notices[0].Code)

	systemErrors := BuildSystemErrorsReport(c)
	require.Len(t, systemErrors.Errors, 1)
	assert.Equal(t, "broken_validator", systemErrors.Errors[0].Validator)
}

type simpleError string

func (e simpleError) Error() string { return string(e) }

func assertError(msg string) error { return simpleError(msg) }
