// Package scanner turns Lox source text into a token stream, per
// spec.md §4.1: a single left-to-right pass with one-character lookahead.
package scanner

import (
	"strings"

	"github.com/josharian/intern"

	"github.com/loxscript/glox/internal/loxerr"
	"github.com/loxscript/glox/internal/token"
)

// Scanner reads a single source string into a token slice. Use New to
// construct one; the zero value is not usable.
type Scanner struct {
	source  string
	tokens  []*token.Token
	start   int
	current int
	line    int
}

// New returns a Scanner positioned at the start of source.
func New(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Scan runs the scanner to completion, returning the token stream
// (always terminated by an EOF token) or the first lex error encountered.
func Scan(source string) ([]*token.Token, error) {
	s := New(source)
	return s.ScanTokens()
}

// ScanTokens performs the scan described in spec.md §4.1.
func (s *Scanner) ScanTokens() ([]*token.Token, error) {
	for !s.atEnd() {
		s.start = s.current
		if err := s.scanOne(); err != nil {
			return nil, err
		}
	}
	s.tokens = append(s.tokens, &token.Token{Type: token.EOF, Lexeme: "", Line: s.line})
	return s.tokens, nil
}

func (s *Scanner) atEnd() bool { return s.current >= len(s.source) }

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }

func (s *Scanner) add(typ token.Type, literal interface{}) {
	lexeme := s.source[s.start:s.current]
	s.tokens = append(s.tokens, &token.Token{Type: typ, Lexeme: lexeme, Literal: literal, Line: s.line})
}

func (s *Scanner) scanOne() error {
	c := s.advance()
	switch c {
	case ' ', '\t', '\r':
		// discarded
	case '\n':
		s.line++
	case '(':
		s.add(token.LeftParen, nil)
	case ')':
		s.add(token.RightParen, nil)
	case '{':
		s.add(token.LeftBrace, nil)
	case '}':
		s.add(token.RightBrace, nil)
	case ',':
		s.add(token.Comma, nil)
	case '.':
		s.add(token.Dot, nil)
	case '-':
		s.add(token.Minus, nil)
	case '+':
		s.add(token.Plus, nil)
	case ';':
		s.add(token.Semicolon, nil)
	case '*':
		s.add(token.Star, nil)
	case '/':
		s.add(token.Slash, nil)
	case '!':
		if s.match('=') {
			s.add(token.BangEqual, nil)
		} else {
			s.add(token.Bang, nil)
		}
	case '=':
		if s.match('=') {
			s.add(token.EqualEqual, nil)
		} else {
			s.add(token.Equal, nil)
		}
	case '<':
		if s.match('=') {
			s.add(token.LessEqual, nil)
		} else {
			s.add(token.Less, nil)
		}
	case '>':
		if s.match('=') {
			s.add(token.GreaterEqual, nil)
		} else {
			s.add(token.Greater, nil)
		}
	case '"':
		return s.scanString()
	default:
		switch {
		case isDigit(c):
			return s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			return loxerr.NewLexError(s.line, "unexpected character '"+string(c)+"'")
		}
	}
	return nil
}

func (s *Scanner) scanString() error {
	startLine := s.line
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.current++
	}
	if s.atEnd() {
		return loxerr.NewLexError(startLine, "unterminated string")
	}
	// consume the closing quote
	s.current++
	raw := s.source[s.start+1 : s.current-1]
	s.add(token.StringTok, intern.String(raw))
	return nil
}

// scanNumber consumes a maximal run of [0-9], plus a single interior '.'.
// A letter/underscore during number mode is a lex error; a run ending in
// '.' is a lex error, per spec.md §4.1.
func (s *Scanner) scanNumber() error {
	sawDot := false
	for {
		c := s.peek()
		switch {
		case isDigit(c):
			s.current++
		case c == '.' && !sawDot:
			sawDot = true
			s.current++
		case isAlpha(c):
			return loxerr.NewLexError(s.line, "invalid character in number literal")
		default:
			goto done
		}
	}
done:
	lexeme := s.source[s.start:s.current]
	if strings.HasSuffix(lexeme, ".") {
		return loxerr.NewLexError(s.line, "number literal cannot end in '.'")
	}
	num, err := token.ParseNumber(lexeme)
	if err != nil {
		return loxerr.NewLexError(s.line, "malformed number literal: "+lexeme)
	}
	s.add(token.NumberTok, num)
	return nil
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.current++
	}
	text := s.source[s.start:s.current]
	if kw, ok := token.Keywords[text]; ok {
		s.add(kw, nil)
		return
	}
	s.add(token.Identifier, nil)
	// intern the lexeme itself so repeated occurrences of the same
	// identifier share one backing string, matching the "shared
	// immutable text" invariant spec.md assigns to Lox strings.
	s.tokens[len(s.tokens)-1].Lexeme = intern.String(text)
}
