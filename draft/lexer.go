package draft

import "strings"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokLAngle
	tokRAngle
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind  tokenKind
	text  string
	row   int
	col   int
}

// lexer is a small hand-rolled scanner for the draft grammar. A generated
// PEG parser is not an option here (see DESIGN.md): the grammar is four
// productions, so a direct scanner is the right-sized tool, the same way
// the corpus's own hand-written DSL extractors fall back to manual scanning
// where code generation doesn't fit.
type lexer struct {
	input []rune
	pos   int
	row   int
	col   int
}

func newLexer(input string) *lexer {
	return &lexer{input: []rune(input), row: 1, col: 1}
}

func (l *lexer) peekRune() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}

	return l.input[l.pos], true
}

func (l *lexer) advance() rune {
	r := l.input[l.pos]
	l.pos++

	if r == '\n' {
		l.row++
		l.col = 1
	} else {
		l.col++
	}

	return r
}

func (l *lexer) skipWhitespace() {
	for {
		r, ok := l.peekRune()
		if !ok || !isSpace(r) {
			return
		}

		l.advance()
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

// next returns the next token, or a tokEOF token at end of input.
func (l *lexer) next() (token, error) {
	l.skipWhitespace()

	row, col := l.row, l.col

	r, ok := l.peekRune()
	if !ok {
		return token{kind: tokEOF, row: row, col: col}, nil
	}

	switch {
	case r == '<':
		l.advance()

		return token{kind: tokLAngle, text: "<", row: row, col: col}, nil
	case r == '>':
		l.advance()

		return token{kind: tokRAngle, text: ">", row: row, col: col}, nil
	case r == '(':
		l.advance()

		return token{kind: tokLParen, text: "(", row: row, col: col}, nil
	case r == ')':
		l.advance()

		return token{kind: tokRParen, text: ")", row: row, col: col}, nil
	case r == ',':
		l.advance()

		return token{kind: tokComma, text: ",", row: row, col: col}, nil
	case r == '"':
		return l.scanString(row, col)
	case isIdentStart(r):
		return l.scanIdent(row, col), nil
	default:
		return token{}, &ParseError{Row: row, Col: col, Msg: "unexpected character " + string(r)}
	}
}

func (l *lexer) scanIdent(row, col int) token {
	var buf strings.Builder

	for {
		r, ok := l.peekRune()
		if !ok || !isIdentCont(r) {
			break
		}

		buf.WriteRune(l.advance())
	}

	return token{kind: tokIdent, text: buf.String(), row: row, col: col}
}

func (l *lexer) scanString(row, col int) (token, error) {
	l.advance() // opening quote

	var buf strings.Builder

	for {
		r, ok := l.peekRune()
		if !ok {
			return token{}, &ParseError{Row: row, Col: col, Msg: "unterminated string literal"}
		}

		if r == '"' {
			l.advance()

			return token{kind: tokString, text: buf.String(), row: row, col: col}, nil
		}

		if r == '\\' {
			l.advance()

			esc, ok := l.peekRune()
			if !ok {
				return token{}, &ParseError{Row: row, Col: col, Msg: "unterminated escape sequence"}
			}

			l.advance()
			buf.WriteRune(unescape(esc))

			continue
		}

		buf.WriteRune(l.advance())
	}
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	default:
		return r
	}
}
