package minleo

import (
	"fmt"
	"math/big"
	"strings"
)

type parser struct {
	sc  *scanner
	tok token
}

type parseError struct {
	line    int
	col     int
	message string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.line, e.col, e.message)
}

func parse(src string) ([]Statement, error) {
	p := &parser{sc: newScanner(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var stmts []Statement
	for p.tok.kind != tokEOF {
		st, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	return stmts, nil
}

func (p *parser) advance() error {
	tok, err := p.sc.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	if p.tok.kind != kind {
		return token{}, p.errorf("expected %s, found %q", what, p.tok.text)
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return tok, nil
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &parseError{line: p.tok.line, col: p.tok.col, message: fmt.Sprintf(format, args...)}
}

func (p *parser) parseStatement() (Statement, error) {
	line := p.tok.line
	switch p.tok.kind {
	case tokInput:
		if err := p.advance(); err != nil {
			return Statement{}, err
		}
		name, err := p.expect(tokIdent, "input name")
		if err != nil {
			return Statement{}, err
		}
		if _, err := p.expect(tokSemi, "';'"); err != nil {
			return Statement{}, err
		}
		return Statement{Type: StInput, Name: name.text, Line: line}, nil

	case tokLet:
		if err := p.advance(); err != nil {
			return Statement{}, err
		}
		name, err := p.expect(tokIdent, "binding name")
		if err != nil {
			return Statement{}, err
		}
		if _, err := p.expect(tokAssign, "'='"); err != nil {
			return Statement{}, err
		}
		e, err := p.parseExpression()
		if err != nil {
			return Statement{}, err
		}
		if _, err := p.expect(tokSemi, "';'"); err != nil {
			return Statement{}, err
		}
		return Statement{Type: StLet, Name: name.text, Expr: e, Line: line}, nil

	case tokAssert:
		if err := p.advance(); err != nil {
			return Statement{}, err
		}
		left, err := p.parseExpression()
		if err != nil {
			return Statement{}, err
		}
		if _, err := p.expect(tokEq, "'=='"); err != nil {
			return Statement{}, err
		}
		right, err := p.parseExpression()
		if err != nil {
			return Statement{}, err
		}
		if _, err := p.expect(tokSemi, "';'"); err != nil {
			return Statement{}, err
		}
		return Statement{Type: StAssert, Expr: left, Right: right, Line: line}, nil
	}
	return Statement{}, p.errorf("expected statement, found %q", p.tok.text)
}

// parseExpression handles + and -; * binds tighter.
func (p *parser) parseExpression() (*Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokPlus || p.tok.kind == tokMinus {
		op := ExAdd
		if p.tok.kind == tokMinus {
			op = ExSub
		}
		line, col := p.tok.line, p.tok.col
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Expression{Type: op, Left: left, Right: right, Line: line, Col: col}
	}
	return left, nil
}

func (p *parser) parseTerm() (*Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokStar {
		line, col := p.tok.line, p.tok.col
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &Expression{Type: ExMul, Left: left, Right: right, Line: line, Col: col}
	}
	return left, nil
}

func (p *parser) parseFactor() (*Expression, error) {
	switch p.tok.kind {
	case tokIdent:
		e := &Expression{Type: ExIdent, Ident: p.tok.text, Line: p.tok.line, Col: p.tok.col}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return e, nil
	case tokNumber:
		v, ok := new(big.Int).SetString(p.tok.text, 10)
		if !ok {
			return nil, p.errorf("invalid number %q", p.tok.text)
		}
		e := &Expression{Type: ExNumber, Value: v, Line: p.tok.line, Col: p.tok.col}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return e, nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, p.errorf("expected expression, found %q", p.tok.text)
}

// parseBindings reads `name = value` lines from input or state text.
// Empty lines, `//` comments and `[section]` headers are skipped; a
// trailing semicolon is tolerated.
func parseBindings(text string) (map[string]*big.Int, error) {
	bindings := make(map[string]*big.Int)
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			continue
		}
		name, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("line %d: expected `name = value`, found %q", i+1, line)
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), ";"))
		v, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return nil, fmt.Errorf("line %d: invalid value %q", i+1, value)
		}
		bindings[name] = v
	}
	return bindings, nil
}
