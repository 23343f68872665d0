package draft

import (
	"fmt"

	"github.com/astcore/astcore/tree"
)

// ParseError is a fatal, row/column-carrying error for malformed draft
// input (spec §7: "ParseError — malformed draft description; fatal with
// row/column").
type ParseError struct {
	Row int
	Col int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("draft parse error at %d:%d: %s", e.Row, e.Col, e.Msg)
}

type parser struct {
	lex *lexer
	tok token
	has bool
}

func (p *parser) peek() (token, error) {
	if !p.has {
		t, err := p.lex.next()
		if err != nil {
			return token{}, err
		}

		p.tok = t
		p.has = true
	}

	return p.tok, nil
}

func (p *parser) take() (token, error) {
	t, err := p.peek()
	if err != nil {
		return token{}, err
	}

	p.has = false

	return t, nil
}

func (p *parser) expectEOF() error {
	t, err := p.peek()
	if err != nil {
		return err
	}

	if t.kind != tokEOF {
		return &ParseError{Row: t.row, Col: t.col, Msg: "unexpected trailing input"}
	}

	return nil
}

// parseNode parses a single `node := IDENT ['<' STRING '>'] ['(' [list] ')']`.
func (p *parser) parseNode() (*tree.Node, error) {
	ident, err := p.take()
	if err != nil {
		return nil, err
	}

	if ident.kind != tokIdent {
		return nil, &ParseError{Row: ident.row, Col: ident.col, Msg: "expected identifier"}
	}

	c := NewConstructor()
	c.SetName(ident.text)

	data, err := p.maybeParseData()
	if err != nil {
		return nil, err
	}

	c.SetData(data)

	children, err := p.maybeParseChildren()
	if err != nil {
		return nil, err
	}

	if !c.SetChildrenList(children) {
		return nil, &ParseError{Row: ident.row, Col: ident.col, Msg: "invalid child list"}
	}

	return c.CreateNode()
}

func (p *parser) maybeParseData() (string, error) {
	t, err := p.peek()
	if err != nil {
		return "", err
	}

	if t.kind != tokLAngle {
		return "", nil
	}

	if _, err := p.take(); err != nil {
		return "", err
	}

	str, err := p.take()
	if err != nil {
		return "", err
	}

	if str.kind != tokString {
		return "", &ParseError{Row: str.row, Col: str.col, Msg: "expected string literal after '<'"}
	}

	closeAngle, err := p.take()
	if err != nil {
		return "", err
	}

	if closeAngle.kind != tokRAngle {
		return "", &ParseError{Row: closeAngle.row, Col: closeAngle.col, Msg: "expected '>' to close data literal"}
	}

	return str.text, nil
}

func (p *parser) maybeParseChildren() ([]*tree.Node, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}

	if t.kind != tokLParen {
		return nil, nil
	}

	if _, err := p.take(); err != nil {
		return nil, err
	}

	t, err = p.peek()
	if err != nil {
		return nil, err
	}

	if t.kind == tokRParen {
		_, err := p.take()

		return nil, err
	}

	var list []*tree.Node

	for {
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}

		list = append(list, child)

		t, err := p.take()
		if err != nil {
			return nil, err
		}

		switch t.kind {
		case tokComma:
			continue
		case tokRParen:
			return list, nil
		default:
			return nil, &ParseError{Row: t.row, Col: t.col, Msg: "expected ',' or ')' in child list"}
		}
	}
}
