package errors

// Error codes for the Octo front end.
// These codes are used in diagnostics printed by the CLI and published by the
// language server so the same problem reads the same everywhere.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0800-E0899: Warning codes
// E0900-E0999: Tooling errors

const (
	// E0100: Input that no fragment accepts, or a malformed directive/statement
	ErrorSyntax = "E0100"

	// E0101: Numeral outside the 16-bit range
	ErrorNumeralRange = "E0101"

	// E0900: Source file could not be read
	ErrorIO = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorSyntax:
		return "Source text does not match any Octo fragment"
	case ErrorNumeralRange:
		return "Numeral does not fit in a 16-bit address or immediate"
	case ErrorIO:
		return "Source file could not be read"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code >= "E0800" && code < "E0900"
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0800" && code < "E0900":
		return "Warning"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
