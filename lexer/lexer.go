package lexer

import (
	"strings"

	"github.com/nilsra/mlc/mlerr"
)

// stripComments replaces every "(* ... *)" block comment with whitespace of
// identical length, so every token's byte offset into the original source
// buffer stays faithful. Grounded on microml/lexer.py's regex pre-pass; nesting
// is not supported, matching the Python source's non-nesting regex.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	i := 0
	for i < len(src) {
		if src[i] == '(' && i+1 < len(src) && src[i+1] == '*' {
			start := i
			end := strings.Index(src[i+2:], "*)")
			if end == -1 {
				b.WriteString(strings.Repeat(" ", len(src)-start))
				i = len(src)
				break
			}
			closeAt := i + 2 + end + 2
			b.WriteString(strings.Repeat(" ", closeAt-start))
			i = closeAt
			continue
		}
		b.WriteByte(src[i])
		i++
	}
	return b.String()
}

// Lexer is a byte scanner over a source buffer.
type Lexer struct {
	input        string
	position     int // index of ch
	readPosition int // index of the next byte to read
	ch           byte
}

// New creates a lexer over src, after stripping block comments.
func New(src string) *Lexer {
	l := &Lexer{input: stripComments(src)}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isWordChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readInt() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// two consumes the current char plus one more, returning both as a string.
func (l *Lexer) two() string {
	s := string([]byte{l.ch, l.peekChar()})
	l.readChar()
	l.readChar()
	return s
}

func (l *Lexer) one() string {
	s := string(l.ch)
	l.readChar()
	return s
}

// NextToken scans and returns the next token, consuming it. Multi-char
// operators are checked before their single-char prefixes, per spec §4.1.
func (l *Lexer) NextToken() (TokenInfo, error) {
	l.skipWhitespace()
	offset := l.position

	switch {
	case l.ch == 0:
		return TokenInfo{Type: EOF, Literal: "", Offset: offset}, nil
	case l.ch == '-' && l.peekChar() == '>':
		return TokenInfo{Type: ARROW, Literal: l.two(), Offset: offset}, nil
	case l.ch == '!' && l.peekChar() == '=':
		return TokenInfo{Type: NEQ, Literal: l.two(), Offset: offset}, nil
	case l.ch == '=' && l.peekChar() == '=':
		return TokenInfo{Type: EQEQ, Literal: l.two(), Offset: offset}, nil
	case l.ch == '>' && l.peekChar() == '=':
		return TokenInfo{Type: GEQ, Literal: l.two(), Offset: offset}, nil
	case l.ch == '<' && l.peekChar() == '=':
		return TokenInfo{Type: LEQ, Literal: l.two(), Offset: offset}, nil
	case l.ch == '<':
		return TokenInfo{Type: LT, Literal: l.one(), Offset: offset}, nil
	case l.ch == '>':
		return TokenInfo{Type: GT, Literal: l.one(), Offset: offset}, nil
	case l.ch == '+':
		return TokenInfo{Type: PLUS, Literal: l.one(), Offset: offset}, nil
	case l.ch == '-':
		return TokenInfo{Type: MINUS, Literal: l.one(), Offset: offset}, nil
	case l.ch == '*':
		return TokenInfo{Type: TIMES, Literal: l.one(), Offset: offset}, nil
	case l.ch == '/':
		return TokenInfo{Type: DIV, Literal: l.one(), Offset: offset}, nil
	case l.ch == '(':
		return TokenInfo{Type: LPAREN, Literal: l.one(), Offset: offset}, nil
	case l.ch == ')':
		return TokenInfo{Type: RPAREN, Literal: l.one(), Offset: offset}, nil
	case l.ch == '=':
		return TokenInfo{Type: EQ, Literal: l.one(), Offset: offset}, nil
	case l.ch == ',':
		return TokenInfo{Type: COMMA, Literal: l.one(), Offset: offset}, nil
	case isLetter(l.ch):
		lit := l.readIdentifier()
		return TokenInfo{Type: Lookup(lit), Literal: lit, Offset: offset}, nil
	case isDigit(l.ch):
		lit := l.readInt()
		return TokenInfo{Type: INT, Literal: lit, Offset: offset}, nil
	default:
		bad := l.ch
		l.readChar()
		return TokenInfo{Type: ILLEGAL, Literal: string(bad), Offset: offset},
			mlerr.NewAt(mlerr.Lexer, offset, "unexpected character %q", bad)
	}
}

// Peek returns the next token without consuming it: the scan position is
// saved, one token is read, and the position is restored. Grounded on
// microml/lexer.py's Lexer.peek (save pos, call token(), restore pos).
func (l *Lexer) Peek() (TokenInfo, error) {
	savedPos, savedRead, savedCh := l.position, l.readPosition, l.ch
	tok, err := l.NextToken()
	l.position, l.readPosition, l.ch = savedPos, savedRead, savedCh
	return tok, err
}
