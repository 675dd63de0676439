package model

import "fmt"

// FormatError reports malformed or out-of-range textual input to one of the
// parsers. It is always recoverable: callers show it and re-prompt.
type FormatError struct {
	Input string
	Want  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("model: invalid %s: %q", e.Want, e.Input)
}

// LogicError reports an input that parses but makes no sense, such as a
// record ending before it begins. It must be caught before persistence.
type LogicError struct {
	Message string
}

func (e *LogicError) Error() string {
	return "model: " + e.Message
}
