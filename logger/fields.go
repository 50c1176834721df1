package logger

// Standard field names for structured logging.
const (
	FieldInput     = "input"
	FieldFormat    = "format"
	FieldValue     = "value"
	FieldNumeral   = "numeral"
	FieldLocale    = "locale"
	FieldMode      = "mode"
	FieldDirection = "direction"

	FieldFile  = "file"
	FieldOp    = "op"
	FieldCount = "count"

	FieldError = "error"
	FieldHint  = "hint"
)
