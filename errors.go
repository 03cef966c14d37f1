package cli

import (
	"strings"

	"github.com/agilira/go-errors"
)

// Error codes carried by the errors returned from Parse. Codes render as a
// "[CODE]: message" prefix and can be recovered with ErrorCode.
const (
	ErrCodeInvalidArgument = "CLI_INVALID_ARGUMENT"
	ErrCodeInvalidValue    = "CLI_INVALID_VALUE"
	ErrCodeMissingValue    = "CLI_MISSING_VALUE"
	ErrCodeRequired        = "CLI_REQUIRED"
	ErrCodeHelp            = "CLI_HELP"
)

// ErrHelp indicates that -h or --help were provided and no declared option
// claimed them
var ErrHelp = errors.New(ErrCodeHelp, "help requested by user")

// ErrorCode extracts the code from an error returned by Parse. Returns the
// empty string for nil errors and for errors from other sources.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	// go-errors format: [CODE]: message
	s := err.Error()
	if len(s) > 3 && s[0] == '[' {
		if idx := strings.IndexByte(s, ']'); idx > 1 {
			return s[1:idx]
		}
	}
	return ""
}
