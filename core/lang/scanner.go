package lang

import (
	"os"
	"strconv"
	"unicode"
)

// Expander supplies the scan-time substitution state: alias expansion
// text for assembled words and the previous exit code for "$?".
type Expander interface {
	LookupAlias(name string) (string, bool)
	LastExitCode() int
}

// Scanner converts one line of input into a Token stream. Malformed
// input degrades to best-effort tokens; scanning never fails.
type Scanner struct {
	start   int
	current int
	source  []rune
	tokens  []Token
	exp     Expander

	// cmdPos is true while the next word would sit in command
	// position: at the start of the line or right after "&&".
	cmdPos bool
}

// NewScanner builds a Scanner over source. exp may be nil, in which
// case no aliases exist and "$?" reads as 0.
func NewScanner(source string, exp Expander) *Scanner {
	return &Scanner{source: []rune(source), exp: exp, cmdPos: true}
}

// ScanTokens consumes the whole source and returns its tokens,
// terminated by exactly one Eof token.
func (s *Scanner) ScanTokens() []Token {
	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, Token{Kind: Eof, Pos: s.current})
	return s.tokens
}

func (s *Scanner) scanToken() {
	switch c := s.advance(); c {
	case '&':
		if s.match('&') {
			s.add(AndAnd)
		} else {
			s.add(And)
		}
	case '|':
		if s.match('|') {
			s.add(OrOr)
		} else {
			s.add(Pipe)
		}
	case '$':
		if s.match('?') {
			s.addLexeme(Part, strconv.Itoa(s.lastExit()))
		} else {
			s.add(DollarSign)
		}
	case '{':
		s.add(LeftBrace)
	case '}':
		s.add(RightBrace)
	case ':':
		// A bare colon is dropped; only ":-" is a token.
		if s.match('-') {
			s.add(ColonDash)
		}
	case ';':
		s.add(Semicolon)
	case ' ', '\t', '\r', '\n':
	case '~':
		s.tilde()
	default:
		s.part()
	}
}

// part scans a word. Quote characters switch into quoted mode, where
// everything up to the matching quote stays in the lexeme, spaces
// included; the quotes themselves stay in the lexeme too. A word in
// command position is looked up in the alias registry once it is
// assembled, and on a hit the expansion text replaces the lexeme
// wholesale. Words in argument position are never substituted, so
// "alias ll" still queries the alias rather than expanding it.
func (s *Scanner) part() {
	cmdPos := s.cmdPos

	if q := s.source[s.current-1]; isQuote(q) {
		s.quoted(q)
	}

	for {
		switch c := s.peek(); {
		case isQuote(c):
			s.advance()
			s.quoted(c)
		case isWordChar(c):
			s.advance()
		default:
			lexeme := string(s.source[s.start:s.current])
			if cmdPos {
				if text, ok := s.aliasFor(lexeme); ok {
					s.addLexeme(Part, text)
					return
				}
			}
			s.add(Part)
			return
		}
	}
}

// quoted consumes up to and including the matching close quote. An
// unterminated quote runs to the end of the input.
func (s *Scanner) quoted(q rune) {
	for !s.atEnd() && s.peek() != q {
		s.advance()
	}
	if !s.atEnd() {
		s.advance()
	}
}

// tilde emits $HOME plus any immediately following word characters as a
// single Part. The expansion is not alias-substituted.
func (s *Scanner) tilde() {
	for isWordChar(s.peek()) {
		s.advance()
	}
	rest := string(s.source[s.start+1 : s.current])
	s.addLexeme(Part, os.Getenv("HOME")+rest)
}

func (s *Scanner) add(kind TokenKind) {
	s.addLexeme(kind, string(s.source[s.start:s.current]))
}

func (s *Scanner) addLexeme(kind TokenKind, lexeme string) {
	s.tokens = append(s.tokens, Token{Kind: kind, Lexeme: lexeme, Pos: s.current})
	s.cmdPos = kind == AndAnd
}

func (s *Scanner) advance() rune {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) match(want rune) bool {
	if s.atEnd() || s.source[s.current] != want {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) aliasFor(name string) (string, bool) {
	if s.exp == nil {
		return "", false
	}
	return s.exp.LookupAlias(name)
}

func (s *Scanner) lastExit() int {
	if s.exp == nil {
		return 0
	}
	return s.exp.LastExitCode()
}

func isWordChar(r rune) bool {
	switch r {
	case '=', '.', '/', '_':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isQuote(r rune) bool {
	return r == '\'' || r == '"'
}
