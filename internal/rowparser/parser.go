// Package rowparser converts CSV cells into their declared semantic types,
// emitting exactly one notice per failed cell and never aborting the row.
// Grounded directly on RowParser.java's accessor contract (asString, asId,
// asUrl, asFloat/asLatitude/asLongitude, asInteger, asColor, asEnum, asTime,
// asDate, checkRowLength) from the original implementation.
package rowparser

import (
	"strconv"
	"strings"
	"time"

	"github.com/transitdata/gtfs-validator/internal/csvreader"
	"github.com/transitdata/gtfs-validator/internal/gtfstype"
	"github.com/transitdata/gtfs-validator/internal/notice"
	"github.com/transitdata/gtfs-validator/internal/schema"
)

// Parser holds the per-file context (file name, header, country code for
// phone validation) shared across every row of that file.
type Parser struct {
	FileName    string
	Header      []string
	CountryCode CountryCode
}

// New constructs a Parser bound to one file's header.
func New(fileName string, header []string, country CountryCode) *Parser {
	return &Parser{FileName: fileName, Header: header, CountryCode: country}
}

// cellContext is the (file, row, field) triple carried with every notice.
type cellContext struct {
	file  string
	row   int
	field string
}

// Binding attaches a Parser to one concrete row and notice sink, mirroring
// RowParser.setRow: a single Parser is reused across many Bindings, one per
// row, so its header lookups aren't repeated.
type Binding struct {
	p       *Parser
	row     csvreader.Row
	notices *notice.Container
}

// Bind creates a Binding for row, recording notices into notices.
func (p *Parser) Bind(row csvreader.Row, notices *notice.Container) *Binding {
	return &Binding{p: p, row: row, notices: notices}
}

// RowNumber returns the bound row's 1-based CSV row number.
func (b *Binding) RowNumber() int { return b.row.Number }

// CheckRowLength reports whether the row's cell count matches the header's
// column count, recording an invalid_row_length error otherwise. Called
// before any typed parsing, per spec: a length mismatch skips typed parsing
// of the whole row.
func (b *Binding) CheckRowLength() bool {
	actual := len(b.row.Cells)
	expected := len(b.p.Header)
	if actual == 0 {
		return false
	}
	if b.row.IsEmpty() {
		// Already reported as empty_row by the reader; not a length mismatch.
		return false
	}
	if actual != expected {
		b.notices.AddValidationNotice(notice.New(notice.CodeInvalidRowLength, notice.SeverityError, b.p.FileName, b.row.Number, "",
			map[string]any{"actual": actual, "expected": expected}))
		return false
	}
	return true
}

func (b *Binding) columnName(columnIndex int) string {
	if columnIndex < 0 || columnIndex >= len(b.p.Header) {
		return ""
	}
	return b.p.Header[columnIndex]
}

func (b *Binding) ctx(columnIndex int) cellContext {
	return cellContext{file: b.p.FileName, row: b.row.Number, field: b.columnName(columnIndex)}
}

// AsString returns the raw cell value, applying missing-field-level notices.
// This is the base accessor every typed accessor builds on.
func (b *Binding) AsString(columnIndex int, level schema.Level) *string {
	if columnIndex < 0 || columnIndex >= len(b.row.Cells) {
		return b.missing(columnIndex, level)
	}
	cell := b.row.Cells[columnIndex]
	if cell == nil {
		return b.missing(columnIndex, level)
	}
	return cell
}

func (b *Binding) missing(columnIndex int, level schema.Level) *string {
	switch level {
	case schema.Required:
		b.notices.AddValidationNotice(notice.New(notice.CodeMissingRequiredField, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex), nil))
	case schema.Recommended:
		b.notices.AddValidationNotice(notice.New(notice.CodeMissingRecommendedField, notice.SeverityWarning, b.p.FileName, b.row.Number, b.columnName(columnIndex), nil))
	}
	return nil
}

// AsText is an alias for AsString; text columns carry no extra validation.
func (b *Binding) AsText(columnIndex int, level schema.Level) *string {
	return b.AsString(columnIndex, level)
}

// AsID validates id format (see fieldvalidators.go) and returns the value.
func (b *Binding) AsID(columnIndex int, level schema.Level) *string {
	return b.asValidatedString(columnIndex, level, validateID)
}

// AsURL requires a scheme and authority.
func (b *Binding) AsURL(columnIndex int, level schema.Level) *string {
	return b.asValidatedString(columnIndex, level, validateURL)
}

// AsEmail applies an RFC-5322-lite check.
func (b *Binding) AsEmail(columnIndex int, level schema.Level) *string {
	return b.asValidatedString(columnIndex, level, validateEmail)
}

// AsPhoneNumber validates against b.p.CountryCode; see fieldvalidators.go.
func (b *Binding) AsPhoneNumber(columnIndex int, level schema.Level) *string {
	s := b.AsString(columnIndex, level)
	if s == nil {
		return nil
	}
	validatePhoneNumber(*s, b.p.CountryCode, b.ctx(columnIndex), b.notices)
	return s
}

// AsLanguageCode validates a BCP-47-shaped tag without pulling in a full
// locale library: it requires a non-empty subtag sequence of letters and
// digits separated by single hyphens.
func (b *Binding) AsLanguageCode(columnIndex int, level schema.Level) *string {
	s := b.AsString(columnIndex, level)
	if s == nil {
		return nil
	}
	if !isValidLanguageTag(*s) {
		b.notices.AddValidationNotice(notice.New(notice.CodeInvalidLanguageCode, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex),
			map[string]any{"value": *s}))
		return nil
	}
	return s
}

func isValidLanguageTag(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, "-") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') {
				return false
			}
		}
	}
	return true
}

// AsTimezone validates against Go's IANA tzdata via time.LoadLocation.
func (b *Binding) AsTimezone(columnIndex int, level schema.Level) *string {
	s := b.AsString(columnIndex, level)
	if s == nil {
		return nil
	}
	if _, err := time.LoadLocation(*s); err != nil {
		b.notices.AddValidationNotice(notice.New(notice.CodeInvalidTimezone, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex),
			map[string]any{"value": *s}))
		return nil
	}
	return s
}

// AsCurrencyCode requires a 3-letter uppercase ISO 4217 code shape. The
// table of valid codes is deliberately not enforced beyond shape, matching
// the spirit of the original's Currency.getInstance() which throws only on
// malformed input, not unknown-but-well-formed codes.
func (b *Binding) AsCurrencyCode(columnIndex int, level schema.Level) *string {
	s := b.AsString(columnIndex, level)
	if s == nil {
		return nil
	}
	if len(*s) != 3 || strings.ToUpper(*s) != *s {
		b.notices.AddValidationNotice(notice.New(notice.CodeInvalidCurrency, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex),
			map[string]any{"value": *s}))
		return nil
	}
	for _, r := range *s {
		if r < 'A' || r > 'Z' {
			b.notices.AddValidationNotice(notice.New(notice.CodeInvalidCurrency, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex),
				map[string]any{"value": *s}))
			return nil
		}
	}
	return s
}

// Bounds restricts a numeric accessor beyond its semantic type.
type Bounds = schema.Bounds

const (
	NoBounds    = schema.NoBounds
	Positive    = schema.Positive
	NonNegative = schema.NonNegative
	NonZero     = schema.NonZero
)

// AsFloat parses an IEEE-754 float, optionally checking bounds.
func (b *Binding) AsFloat(columnIndex int, level schema.Level, bounds Bounds) *float64 {
	s := b.AsString(columnIndex, level)
	if s == nil {
		return nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		b.notices.AddValidationNotice(notice.New(notice.CodeInvalidFloat, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex),
			map[string]any{"value": *s}))
		return nil
	}
	b.checkFloatBounds(v, columnIndex, "float", bounds)
	return &v
}

// AsLatitude parses a float and checks the [-90, 90] range; the value is
// still returned when out of range, to support downstream diagnostics.
func (b *Binding) AsLatitude(columnIndex int, level schema.Level) *float64 {
	v := b.AsFloat(columnIndex, level, NoBounds)
	if v != nil && (*v < -90 || *v > 90) {
		b.notices.AddValidationNotice(notice.New(notice.CodeNumberOutOfRange, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex),
			map[string]any{"bound": "latitude within [-90, 90]", "value": *v}))
	}
	return v
}

// AsLongitude parses a float and checks the [-180, 180] range.
func (b *Binding) AsLongitude(columnIndex int, level schema.Level) *float64 {
	v := b.AsFloat(columnIndex, level, NoBounds)
	if v != nil && (*v < -180 || *v > 180) {
		b.notices.AddValidationNotice(notice.New(notice.CodeNumberOutOfRange, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex),
			map[string]any{"bound": "longitude within [-180, 180]", "value": *v}))
	}
	return v
}

// AsInteger parses a base-10 integer with full-range checking.
func (b *Binding) AsInteger(columnIndex int, level schema.Level, bounds Bounds) *int {
	s := b.AsString(columnIndex, level)
	if s == nil {
		return nil
	}
	v, err := strconv.Atoi(*s)
	if err != nil {
		b.notices.AddValidationNotice(notice.New(notice.CodeInvalidInteger, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex),
			map[string]any{"value": *s}))
		return nil
	}
	b.checkIntBounds(v, columnIndex, "integer", bounds)
	return &v
}

// AsDecimal parses an arbitrary-precision decimal. This module does not
// carry a big-decimal dependency from the corpus, so precision beyond
// float64 is not preserved; malformed input is still reported identically
// to AsFloat per spec (invalid_float).
func (b *Binding) AsDecimal(columnIndex int, level schema.Level, bounds Bounds) *float64 {
	return b.AsFloat(columnIndex, level, bounds)
}

func (b *Binding) checkFloatBounds(v float64, columnIndex int, typeName string, bounds Bounds) {
	switch bounds {
	case Positive:
		if v <= 0 {
			b.outOfRange(columnIndex, "positive "+typeName, v)
		}
	case NonNegative:
		if v < 0 {
			b.outOfRange(columnIndex, "non-negative "+typeName, v)
		}
	case NonZero:
		if v == 0 {
			b.outOfRange(columnIndex, "non-zero "+typeName, v)
		}
	}
}

func (b *Binding) checkIntBounds(v int, columnIndex int, typeName string, bounds Bounds) {
	switch bounds {
	case Positive:
		if v <= 0 {
			b.outOfRange(columnIndex, "positive "+typeName, v)
		}
	case NonNegative:
		if v < 0 {
			b.outOfRange(columnIndex, "non-negative "+typeName, v)
		}
	case NonZero:
		if v == 0 {
			b.outOfRange(columnIndex, "non-zero "+typeName, v)
		}
	}
}

func (b *Binding) outOfRange(columnIndex int, bound string, value any) {
	b.notices.AddValidationNotice(notice.New(notice.CodeNumberOutOfRange, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex),
		map[string]any{"bound": bound, "value": value}))
}

// AsColor parses 6 hex digits into a gtfstype.Color.
func (b *Binding) AsColor(columnIndex int, level schema.Level) *gtfstype.Color {
	s := b.AsString(columnIndex, level)
	if s == nil {
		return nil
	}
	c, err := gtfstype.ParseColor(*s)
	if err != nil {
		b.notices.AddValidationNotice(notice.New(notice.CodeInvalidColor, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex),
			map[string]any{"value": *s}))
		return nil
	}
	return &c
}

// AsTime parses "[H]H:MM:SS" into a gtfstype.Time.
func (b *Binding) AsTime(columnIndex int, level schema.Level) *gtfstype.Time {
	s := b.AsString(columnIndex, level)
	if s == nil {
		return nil
	}
	v, err := gtfstype.ParseTime(*s)
	if err != nil {
		b.notices.AddValidationNotice(notice.New(notice.CodeInvalidTime, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex),
			map[string]any{"value": *s}))
		return nil
	}
	return &v
}

// AsDate parses YYYYMMDD into a gtfstype.Date.
func (b *Binding) AsDate(columnIndex int, level schema.Level) *gtfstype.Date {
	s := b.AsString(columnIndex, level)
	if s == nil {
		return nil
	}
	v, err := gtfstype.ParseDate(*s)
	if err != nil {
		b.notices.AddValidationNotice(notice.New(notice.CodeInvalidDate, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex),
			map[string]any{"value": *s}))
		return nil
	}
	return &v
}

// AsEnum parses an integer and validates it against codec. On an
// unrecognized value it still returns codec.Unrecognized, per spec: the
// sentinel supports downstream diagnostics rather than aborting the row.
func (b *Binding) AsEnum(columnIndex int, level schema.Level, codec schema.EnumCodec) *int {
	v := b.AsInteger(columnIndex, level, NoBounds)
	if v == nil {
		return nil
	}
	if !codec.IsValid(*v) {
		b.notices.AddValidationNotice(notice.New(notice.CodeUnexpectedEnumValue, notice.SeverityError, b.p.FileName, b.row.Number, b.columnName(columnIndex),
			map[string]any{"value": *v}))
		u := codec.Unrecognized
		return &u
	}
	return v
}

// CheckMixedCaseStyle emits a style notice if value is present and a column
// flagged @mixed_case contains all-uppercase or all-lowercase Latin text.
func (b *Binding) CheckMixedCaseStyle(columnIndex int, value *string) {
	if value == nil {
		return
	}
	checkMixedCase(*value, b.ctx(columnIndex), b.notices)
}

func (b *Binding) asValidatedString(columnIndex int, level schema.Level, fn func(string, cellContext, *notice.Container)) *string {
	s := b.AsString(columnIndex, level)
	if s == nil {
		return nil
	}
	fn(*s, b.ctx(columnIndex), b.notices)
	return s
}
