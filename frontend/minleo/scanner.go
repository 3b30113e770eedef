package minleo

import (
	"fmt"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokInput
	tokLet
	tokAssert
	tokSemi
	tokAssign
	tokEq
	tokPlus
	tokMinus
	tokStar
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

var keywords = map[string]tokenKind{
	"input":  tokInput,
	"let":    tokLet,
	"assert": tokAssert,
}

type scanner struct {
	src  []rune
	pos  int
	line int
	col  int
}

func newScanner(src string) *scanner {
	return &scanner{src: []rune(src), line: 1, col: 1}
}

func (s *scanner) advance() rune {
	r := s.src[s.pos]
	s.pos++
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

func (s *scanner) peek() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) skipSpaceAndComments() {
	for s.pos < len(s.src) {
		r := s.peek()
		if unicode.IsSpace(r) {
			s.advance()
			continue
		}
		// line comments only
		if r == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/' {
			for s.pos < len(s.src) && s.peek() != '\n' {
				s.advance()
			}
			continue
		}
		return
	}
}

func (s *scanner) next() (token, error) {
	s.skipSpaceAndComments()
	if s.pos >= len(s.src) {
		return token{kind: tokEOF, line: s.line, col: s.col}, nil
	}
	line, col := s.line, s.col
	r := s.advance()

	switch {
	case unicode.IsLetter(r) || r == '_':
		text := string(r)
		for s.pos < len(s.src) && (unicode.IsLetter(s.peek()) || unicode.IsDigit(s.peek()) || s.peek() == '_') {
			text += string(s.advance())
		}
		if kind, ok := keywords[text]; ok {
			return token{kind: kind, text: text, line: line, col: col}, nil
		}
		return token{kind: tokIdent, text: text, line: line, col: col}, nil

	case unicode.IsDigit(r):
		text := string(r)
		for s.pos < len(s.src) && unicode.IsDigit(s.peek()) {
			text += string(s.advance())
		}
		return token{kind: tokNumber, text: text, line: line, col: col}, nil
	}

	switch r {
	case ';':
		return token{kind: tokSemi, text: ";", line: line, col: col}, nil
	case '+':
		return token{kind: tokPlus, text: "+", line: line, col: col}, nil
	case '-':
		return token{kind: tokMinus, text: "-", line: line, col: col}, nil
	case '*':
		return token{kind: tokStar, text: "*", line: line, col: col}, nil
	case '(':
		return token{kind: tokLParen, text: "(", line: line, col: col}, nil
	case ')':
		return token{kind: tokRParen, text: ")", line: line, col: col}, nil
	case '=':
		if s.peek() == '=' {
			s.advance()
			return token{kind: tokEq, text: "==", line: line, col: col}, nil
		}
		return token{kind: tokAssign, text: "=", line: line, col: col}, nil
	}

	return token{}, &scanError{line: line, col: col, message: fmt.Sprintf("unexpected character %q", r)}
}

type scanError struct {
	line    int
	col     int
	message string
}

func (e *scanError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.line, e.col, e.message)
}
