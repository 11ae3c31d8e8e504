package beamer

import "fmt"

// ParseError reports source text that could not be parsed at all: unreadable
// input, undecodable bytes, or text with no recoverable frames. Recoverable
// problems (unknown commands, unbalanced environments) never produce a
// ParseError; the parser degrades to partial structure instead.
type ParseError struct {
	Message string
	Path    string
	Line    int
	Snippet string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Snippet != "" {
		msg = fmt.Sprintf("%s (near %q)", msg, e.Snippet)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}
