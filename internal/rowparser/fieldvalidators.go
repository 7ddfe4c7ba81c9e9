package rowparser

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/transitdata/gtfs-validator/internal/notice"
)

// CountryCode configures phone-number validation. Unknown is distinguishable
// from any real ISO 3166 code so phone validation can fall back to
// E.164-prefix-only acceptance, per the spec's "unknown country code
// sentinel" design note.
type CountryCode string

// Unknown is the sentinel meaning no country code was configured.
const Unknown CountryCode = ""

var printableASCII = regexp.MustCompile(`^[\x20-\x7E]*$`)

// validateID checks id format: non-empty printable ASCII; a single
// leading/trailing space is a style warning (unreachable through the normal
// CSV pipeline since the reader trims cells, but kept as a direct,
// independently-testable check per the original tool's semantics); any
// internal whitespace is an error.
func validateID(value string, ctx cellContext, notices *notice.Container) {
	if !printableASCII.MatchString(value) {
		notices.AddValidationNotice(notice.New(notice.CodeInvalidID, notice.SeverityError, ctx.file, ctx.row, ctx.field,
			map[string]any{"value": value, "reason": "non-printable character"}))
		return
	}
	trimmed := strings.TrimSpace(value)
	if trimmed != value {
		notices.AddValidationNotice(notice.New(notice.CodeLeadingOrTrailingWhitespace, notice.SeverityWarning, ctx.file, ctx.row, ctx.field,
			map[string]any{"value": value}))
	}
	if strings.ContainsAny(trimmed, " \t") {
		notices.AddValidationNotice(notice.New(notice.CodeInvalidID, notice.SeverityError, ctx.file, ctx.row, ctx.field,
			map[string]any{"value": value, "reason": "internal whitespace"}))
	}
}

// validateURL requires a scheme and an authority component.
func validateURL(value string, ctx cellContext, notices *notice.Container) {
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		notices.AddValidationNotice(notice.New(notice.CodeInvalidURL, notice.SeverityError, ctx.file, ctx.row, ctx.field,
			map[string]any{"value": value}))
	}
}

// validateEmail applies a pragmatic RFC-5322-lite check via net/mail.
func validateEmail(value string, ctx cellContext, notices *notice.Container) {
	if _, err := mail.ParseAddress(value); err != nil {
		notices.AddValidationNotice(notice.New(notice.CodeInvalidEmail, notice.SeverityError, ctx.file, ctx.row, ctx.field,
			map[string]any{"value": value}))
	}
}

// validatePhoneNumber accepts E.164-prefixed numbers unconditionally; if a
// real country code is configured, it additionally accepts bare national
// numbers that are plausible for that country (digits only, 4-15 digits,
// matching the generic E.164 national-significant-number range, since this
// module is not importing a full libphonenumber-equivalent dependency).
func validatePhoneNumber(value string, country CountryCode, ctx cellContext, notices *notice.Container) {
	if strings.HasPrefix(value, "+") {
		digits := value[1:]
		if len(digits) >= 4 && len(digits) <= 15 && isAllDigits(digits) {
			return
		}
		notices.AddValidationNotice(notice.New(notice.CodeInvalidPhoneNumber, notice.SeverityError, ctx.file, ctx.row, ctx.field,
			map[string]any{"value": value}))
		return
	}
	if country == Unknown {
		notices.AddValidationNotice(notice.New(notice.CodeInvalidPhoneNumber, notice.SeverityError, ctx.file, ctx.row, ctx.field,
			map[string]any{"value": value, "reason": "unknown country code requires a +-prefixed number"}))
		return
	}
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, value)
	if len(digits) < 4 || len(digits) > 15 || !isAllDigits(digits) {
		notices.AddValidationNotice(notice.New(notice.CodeInvalidPhoneNumber, notice.SeverityError, ctx.file, ctx.row, ctx.field,
			map[string]any{"value": value}))
	}
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// checkMixedCase flags all-uppercase or all-lowercase Latin-script text in a
// column that the schema marks as conventionally mixed-case, e.g. route
// names and trip headsigns. Severity follows the spec's "preserve existing behavior"
// decision for this ambiguously-documented check: INFO, matching the
// original tool's style-only notices (see DESIGN.md).
func checkMixedCase(value string, ctx cellContext, notices *notice.Container) {
	hasLetter, hasLower, hasUpper := false, false, false
	for _, r := range value {
		if !unicode.Is(unicode.Latin, r) {
			continue
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	if !hasLetter {
		return
	}
	if hasUpper && !hasLower || hasLower && !hasUpper {
		notices.AddValidationNotice(notice.New(notice.CodeStyleMixedCase, notice.SeverityInfo, ctx.file, ctx.row, ctx.field,
			map[string]any{"value": value}))
	}
}
