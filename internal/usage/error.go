package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrUnexpectedToken
	ErrIncompleteCommand
	ErrHandlerFailed
	ErrFailedConfigPath
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Handler failed
//	  - Failed config path
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Unexpected token
//	  - Incomplete command
var exitCodes = map[ErrorKind]int{
	ErrUnknown:           1,
	ErrInvalidFlag:       2,
	ErrMissingArgument:   2,
	ErrUnknownCommand:    1,
	ErrUnexpectedToken:   2,
	ErrIncompleteCommand: 2,
	ErrHandlerFailed:     1,
	ErrFailedConfigPath:  1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero

	// Suggestions are candidate words shown under the message.
	Suggestions []string

	// Err is the handler error behind ErrHandlerFailed.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// ExitCode returns the exit code for err: 0 for nil, the code of a
// wrapped *Error, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var u *Error
	if errors.As(err, &u) {
		return u.GetExitCode()
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
