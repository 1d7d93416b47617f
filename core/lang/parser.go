package lang

import (
	"fmt"
	"io"
	"os"
)

// Parser is a recursive-descent consumer of a token stream. It builds
// the ordered command sequence for one line of input.
type Parser struct {
	tokens  []Token
	current int
	diag    io.Writer
}

// NewParser builds a Parser over tokens. The stream must be
// Eof-terminated, as produced by Scanner.ScanTokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens, diag: os.Stderr}
}

// SetDiag redirects the parser's advisory notes, which default to
// os.Stderr.
func (p *Parser) SetDiag(w io.Writer) {
	p.diag = w
}

// Parse consumes the token stream and returns the ordered commands.
//
// Blank input yields a single zero Command. A line that reaches a
// recognized-but-unimplemented token is dropped wholesale: a note is
// written to the diagnostic writer and both results are nil, whatever
// depth the token was found at.
func (p *Parser) Parse() ([]Command, error) {
	var commands []Command
	var words []string

	if p.atEnd() {
		return []Command{{}}, nil
	}

	for !p.atEnd() {
		t := p.advance()
		switch t.Kind {
		case AndAnd:
			next := p.peek()
			switch next.Kind {
			case Pipe, And, AndAnd, Eof, OrOr, Semicolon:
				return nil, &ParseError{
					Kind:     UnexpectedToken,
					Found:    next,
					After:    t,
					Expected: []TokenKind{DollarSign, Part},
				}
			}

			rest, err := p.Parse()
			if err != nil {
				return nil, err
			}
			if rest == nil {
				return nil, nil
			}
			commands = append(commands, rest...)

		case Part:
			words = append(words, t.Lexeme)

		case DollarSign:
			word, err := p.expansion(t)
			if err != nil {
				return nil, err
			}
			words = append(words, word)

		default:
			fmt.Fprintf(p.diag, "%s is not implemented\n", t.Kind)
			return nil, nil
		}
	}

	var head Command
	if len(words) > 0 {
		head.Keyword = words[0]
		if len(words) > 1 {
			head.Args = words[1:]
		}
	}

	return append([]Command{head}, commands...), nil
}

// expansion handles the tokens after a DollarSign: $NAME, ${NAME} and
// ${NAME:-default}. A missing variable expands to the empty string, or
// to the default verbatim when one is given; a set-but-empty variable
// suppresses the default.
func (p *Parser) expansion(dollar Token) (string, error) {
	t := p.peek()
	switch t.Kind {
	case Part:
		return os.Getenv(p.advance().Lexeme), nil

	case LeftBrace:
		if !p.matchNext(Part) {
			return "", &ParseError{
				Kind:     RequiredTokenNotFound,
				Found:    p.peekNext(),
				After:    t,
				Expected: []TokenKind{Part},
			}
		}

		word, ok := os.LookupEnv(p.advance().Lexeme)
		if p.match(ColonDash) && p.match(Part) && !ok {
			word = p.previous().Lexeme
		}

		if !p.match(RightBrace) {
			return "", &ParseError{
				Kind:     RequiredTokenNotFound,
				Found:    p.peek(),
				After:    p.previous(),
				Expected: []TokenKind{RightBrace},
			}
		}
		return word, nil

	default:
		return "", &ParseError{
			Kind:     UnexpectedToken,
			Found:    t,
			After:    dollar,
			Expected: []TokenKind{Part, LeftBrace},
		}
	}
}

func (p *Parser) advance() Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind TokenKind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) checkNext(kind TokenKind) bool {
	if p.atEnd() {
		return false
	}
	return p.peekNext().Kind == kind
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == Eof
}

func (p *Parser) match(kind TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchNext(kind TokenKind) bool {
	if p.checkNext(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() Token {
	if p.current+1 >= len(p.tokens) {
		return Token{Pos: p.peek().Pos}
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() Token {
	if p.current == 0 {
		return Token{}
	}
	return p.tokens[p.current-1]
}
