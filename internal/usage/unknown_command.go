package usage

import "fmt"

// UnknownCommand is returned when no command answers to the first word.
// similar holds the closest known names, if any.
func UnknownCommand(command string, similar ...string) *Error {
	return &Error{
		Kind:        ErrUnknownCommand,
		Message:     fmt.Sprintf("twig: '%s' is not a twig command. See '/help'.", command),
		Suggestions: similar,
	}
}

// FailedConfigPath is returned when the config file location cannot be resolved.
func FailedConfigPath(err error) *Error {
	return &Error{
		Kind:    ErrFailedConfigPath,
		Message: fmt.Sprintf("twig: cannot locate config file: %v", err),
		Err:     err,
	}
}
