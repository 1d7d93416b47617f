package lang

// TokenKind classifies a scanned token.
type TokenKind uint8

// Token kinds produced by the Scanner. Eof is the zero value, so a zero
// Token reads as end of input.
const (
	Eof TokenKind = iota
	AndAnd
	And
	Part
	DollarSign
	Pipe
	OrOr
	Semicolon
	LeftBrace
	RightBrace
	ColonDash
)

// String returns the kind's spelling as used in diagnostics.
func (k TokenKind) String() string {
	switch k {
	case Eof:
		return "end of input"
	case AndAnd:
		return "'&&'"
	case And:
		return "'&'"
	case Part:
		return "word"
	case DollarSign:
		return "'$'"
	case Pipe:
		return "'|'"
	case OrOr:
		return "'||'"
	case Semicolon:
		return "';'"
	case LeftBrace:
		return "'{'"
	case RightBrace:
		return "'}'"
	case ColonDash:
		return "':-'"
	}
	return "unknown"
}

// Token is a classified fragment of input text. Pos is the offset just
// past the lexeme in the scanned line, in runes.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Pos    int
}
