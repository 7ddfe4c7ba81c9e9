package notice

// Stable notice codes. Names mirror the accessor/check that emits them so
// the report reads as a direct trace of the pipeline stage that fired.
const (
	CodeInvalidDate          = "invalid_date"
	CodeInvalidTime          = "invalid_time"
	CodeInvalidColor         = "invalid_color"
	CodeInvalidFloat         = "invalid_float"
	CodeInvalidInteger       = "invalid_integer"
	CodeInvalidURL           = "invalid_url"
	CodeInvalidEmail         = "invalid_email"
	CodeInvalidPhoneNumber   = "invalid_phone_number"
	CodeInvalidLanguageCode  = "invalid_language_code"
	CodeInvalidTimezone      = "invalid_timezone"
	CodeInvalidCurrency      = "invalid_currency"
	CodeInvalidID            = "invalid_id"
	CodeNumberOutOfRange     = "number_out_of_range"
	CodeUnexpectedEnumValue  = "unexpected_enum_value"
	CodeMissingRequiredField = "missing_required_field"
	CodeMissingRecommendedField = "missing_recommended_field"
	CodeEmptyRow             = "empty_row"
	CodeInvalidRowLength     = "invalid_row_length"
	CodeTooManyRows          = "too_many_rows"
	CodeEmptyFile            = "empty_file"
	CodeDuplicateKey         = "duplicate_key"
	CodeUnknownColumn        = "unknown_column"
	CodeMissingRequiredColumn     = "missing_required_column"
	CodeMissingRecommendedColumn  = "missing_recommended_column"
	CodeMissingRequiredFile       = "missing_required_file"
	CodeMissingRecommendedFile    = "missing_recommended_file"
	CodeUnknownFile               = "unknown_file"
	CodeLeadingOrTrailingWhitespace = "leading_or_trailing_whitespace"
	CodeStyleMixedCase        = "mixed_case_style"

	// C14 built-in validators.
	CodeForeignKeyViolation  = "foreign_key_violation"
	CodeMissingRouteName     = "missing_route_short_and_long_name"
	CodeStopTimeSequenceOutOfOrder = "stop_time_sequence_out_of_order"
	CodeMissingAgencyID      = "missing_agency_id_for_multi_agency_feed"
)
