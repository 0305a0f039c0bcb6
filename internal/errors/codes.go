package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status the CLI uses for the code.
// Values follow sysexits.h where one fits.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument:
		return 64 // EX_USAGE
	case CodeNotFound:
		return 66 // EX_NOINPUT
	case CodeUnavailable, CodeDeadlineExceeded:
		return 69 // EX_UNAVAILABLE
	case CodePermissionDenied, CodeUnauthenticated:
		return 77 // EX_NOPERM
	case CodeFailedPrecondition:
		return 78 // EX_CONFIG
	case CodeCanceled:
		return 130
	default:
		return 70 // EX_SOFTWARE
	}
}
