package lang

import (
	"fmt"
	"strings"
)

// ErrorKind discriminates parse failures. The numeric values are stable
// and double as process exit codes.
type ErrorKind int

const (
	// UnexpectedToken reports a token that may not appear where it was
	// found.
	UnexpectedToken ErrorKind = iota + 1
	// RequiredTokenNotFound reports a token the grammar demands but the
	// input lacks.
	RequiredTokenNotFound
)

// ParseError is a structured parse diagnostic: the offending token, the
// token before it for context, and the set of kinds that were legal.
type ParseError struct {
	Kind     ErrorKind
	Found    Token
	After    Token
	Expected []TokenKind
}

// Code returns the error's stable numeric code, usable as a process
// exit status.
func (e *ParseError) Code() int {
	return int(e.Kind)
}

func (e *ParseError) Error() string {
	var b strings.Builder

	b.WriteString("expected ")
	for i, kind := range e.Expected {
		if i > 0 {
			b.WriteString(" or ")
		}
		b.WriteString(kind.String())
	}
	fmt.Fprintf(&b, ", not %s ", e.Found.Kind)

	if e.atEnd() {
		b.WriteString("at end")
	} else {
		fmt.Fprintf(&b, "after %q", e.After.Lexeme)
	}

	return b.String()
}

// atEnd reports whether the diagnostic should locate itself at the end
// of input: an unexpected token that is itself Eof, or a required token
// missing because the input ran out.
func (e *ParseError) atEnd() bool {
	if e.Kind == RequiredTokenNotFound {
		return e.After.Kind == Eof
	}
	return e.Found.Kind == Eof
}
