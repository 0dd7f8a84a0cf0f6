// Package parser is a plain recursive-descent parser over spec.md §4.2's
// grammar. Grounded directly on microml/parser.py's Parser class (decl/expr/
// expr_component/ifexpr/lambdaexpr/app), which is exactly this shape: no
// precedence climbing, since the grammar is non-recursive on the right.
package parser

import (
	"strconv"

	"github.com/nilsra/mlc/ast"
	"github.com/nilsra/mlc/lexer"
	"github.com/nilsra/mlc/mlerr"
)

// binOps is the closed set of binary operator tokens spec.md §4.2 names.
var binOps = map[lexer.Token]bool{
	lexer.NEQ: true, lexer.EQEQ: true, lexer.GEQ: true, lexer.LEQ: true,
	lexer.LT: true, lexer.GT: true, lexer.PLUS: true, lexer.MINUS: true,
	lexer.TIMES: true, lexer.DIV: true,
}

// Parser holds one token of lookahead (the "current token" of the teacher's
// currentToken/peekToken idiom, collapsed to one field since this grammar
// never needs two-token lookahead).
type Parser struct {
	lex *lexer.Lexer
	cur lexer.TokenInfo
	err error
}

// New creates a parser over l and reads its first token.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lex: l}
	p.advance()
	return p
}

func (p *Parser) advance() {
	if p.err != nil {
		return
	}
	tok, err := p.lex.NextToken()
	if err != nil {
		p.err = err
		return
	}
	p.cur = tok
}

func (p *Parser) fail(format string, args ...any) {
	if p.err == nil {
		p.err = mlerr.NewAt(mlerr.Parser, p.cur.Offset, format, args...)
	}
}

// match consumes the current token if it has type tt, else records a parser
// error naming the expected vs. found kind (spec.md §4.2 "Failure").
func (p *Parser) match(tt lexer.Token) (lexer.TokenInfo, bool) {
	if p.err != nil {
		return lexer.TokenInfo{}, false
	}
	if p.cur.Type != tt {
		p.fail("expected %s, found %s", tt, p.cur.Type)
		return lexer.TokenInfo{}, false
	}
	tok := p.cur
	p.advance()
	return tok, true
}

// ParseStrict parses exactly one top-level declaration from source and
// requires end-of-input to follow — spec.md §4.2's "strict termination".
// driver.CompileOne uses it for a source holding exactly one declaration.
func ParseStrict(source string) (*ast.Decl, error) {
	p := New(lexer.New(source))
	d := p.decl()
	if p.err != nil {
		return nil, p.err
	}
	if p.cur.Type != lexer.EOF {
		return nil, mlerr.NewAt(mlerr.Parser, p.cur.Offset,
			"unexpected trailing token %s after declaration", p.cur.Type)
	}
	return d, nil
}

// ParseInteractive parses one top-level declaration from source and returns
// the byte offset at which parsing stopped, without requiring end-of-input
// — spec.md §4.2's "interactive termination". driver.CompileAll uses the
// returned offset to continue with the remaining input of a multi-declaration
// source.
func ParseInteractive(source string) (*ast.Decl, int, error) {
	p := New(lexer.New(source))
	d := p.decl()
	if p.err != nil {
		return nil, 0, p.err
	}
	return d, p.cur.Offset, nil
}

// decl ::= ID ID* '=' expr
func (p *Parser) decl() *ast.Decl {
	nameTok, ok := p.match(lexer.IDENT)
	if !ok {
		return nil
	}
	var params []string
	for p.cur.Type == lexer.IDENT {
		params = append(params, p.cur.Literal)
		p.advance()
	}
	if _, ok := p.match(lexer.EQ); !ok {
		return nil
	}
	body := p.expr()
	if p.err != nil {
		return nil
	}
	if len(params) > 0 {
		body = ast.NewLambda(nameTok.Offset, params, body)
	}
	return ast.NewDecl(nameTok.Literal, body, nameTok.Offset)
}

// expr ::= component (binop component)?
func (p *Parser) expr() ast.Node {
	if p.err != nil {
		return nil
	}
	node := p.component()
	if p.err != nil {
		return nil
	}
	if binOps[p.cur.Type] {
		opTok := p.cur
		p.advance()
		rhs := p.component()
		if p.err != nil {
			return nil
		}
		return ast.NewBinOp(node.Offset(), opTok.Literal, node, rhs)
	}
	return node
}

// component ::= INT | TRUE | FALSE | ID | ID '(' args ')' | '(' expr ')'
//
//	| 'if' expr 'then' expr 'else' expr | 'lambda' ID* '->' expr
func (p *Parser) component() ast.Node {
	if p.err != nil {
		return nil
	}
	tok := p.cur
	switch tok.Type {
	case lexer.INT:
		p.advance()
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.fail("invalid integer literal %q", tok.Literal)
			return nil
		}
		return ast.NewIntLit(tok.Offset, tok.Literal, v)
	case lexer.TRUE, lexer.FALSE:
		p.advance()
		return ast.NewBoolLit(tok.Offset, tok.Type == lexer.TRUE)
	case lexer.IDENT:
		p.advance()
		if p.cur.Type == lexer.LPAREN {
			return p.app(tok)
		}
		return ast.NewIdent(tok.Offset, tok.Literal)
	case lexer.LPAREN:
		p.advance()
		e := p.expr()
		if p.err != nil {
			return nil
		}
		if _, ok := p.match(lexer.RPAREN); !ok {
			return nil
		}
		return e
	case lexer.IF:
		return p.ifExpr()
	case lexer.LAMBDA:
		return p.lambdaExpr()
	default:
		p.fail("unexpected token %s", tok.Type)
		return nil
	}
}

func (p *Parser) ifExpr() ast.Node {
	start := p.cur.Offset
	if _, ok := p.match(lexer.IF); !ok {
		return nil
	}
	cond := p.expr()
	if p.err != nil {
		return nil
	}
	if _, ok := p.match(lexer.THEN); !ok {
		return nil
	}
	then := p.expr()
	if p.err != nil {
		return nil
	}
	if _, ok := p.match(lexer.ELSE); !ok {
		return nil
	}
	els := p.expr()
	if p.err != nil {
		return nil
	}
	return ast.NewIf(start, cond, then, els)
}

func (p *Parser) lambdaExpr() ast.Node {
	start := p.cur.Offset
	if _, ok := p.match(lexer.LAMBDA); !ok {
		return nil
	}
	var params []string
	for p.cur.Type == lexer.IDENT {
		params = append(params, p.cur.Literal)
		p.advance()
	}
	if _, ok := p.match(lexer.ARROW); !ok {
		return nil
	}
	body := p.expr()
	if p.err != nil {
		return nil
	}
	return ast.NewLambda(start, params, body)
}

// app parses the argument list of a call whose callee is nameTok; the
// callee position syntactically requires an identifier (spec.md §4.2).
func (p *Parser) app(nameTok lexer.TokenInfo) ast.Node {
	if _, ok := p.match(lexer.LPAREN); !ok {
		return nil
	}
	var args []ast.Node
	for p.cur.Type != lexer.RPAREN {
		a := p.expr()
		if p.err != nil {
			return nil
		}
		args = append(args, a)
		if p.cur.Type == lexer.COMMA {
			p.advance()
		} else if p.cur.Type == lexer.RPAREN {
			break
		} else {
			p.fail("unexpected %s in application", p.cur.Type)
			return nil
		}
	}
	if _, ok := p.match(lexer.RPAREN); !ok {
		return nil
	}
	callee := ast.NewIdent(nameTok.Offset, nameTok.Literal)
	return ast.NewApp(nameTok.Offset, callee, args)
}
