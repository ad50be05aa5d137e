/*
File    : algebra-cas/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a Pratt (precedence-climbing) parser that turns
// a lexer.Lexer's token stream into a term.Node tree: one expression
// grammar, no statements, no blocks, one entry point.
package parser

import (
	"github.com/akashmaji946/algebra-cas/casErr"
	"github.com/akashmaji946/algebra-cas/lexer"
	"github.com/akashmaji946/algebra-cas/term"
)

// Parser holds the lexer it is draining. It is not reusable across inputs;
// build a new one per Parse call.
type Parser struct {
	lex *lexer.Lexer
}

// New wraps lex in a Parser.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

// Parse parses src as a single expression or equation, and requires the
// whole input be consumed (the final peeked token must be lexer.End).
func Parse(src string) (term.Node, error) {
	p := New(lexer.NewLexer(src))
	node, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != lexer.End {
		return nil, casErr.Newf(casErr.ParseError, "unexpected trailing token %q", tok.Lexeme)
	}
	return node, nil
}

// parseExpression is the Pratt loop: it parses one prefix term, then
// repeatedly folds in infix/implicit-multiply operators whose left binding
// power is at least minBP.
func (p *Parser) parseExpression(minBP float64) (term.Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}

		switch {
		case tok.Kind == lexer.End || tok.Kind == lexer.RParen:
			return left, nil

		case lexer.IsOperation(tok.Kind):
			leftBP, rightBP := lexer.BindingPower(tok.Kind)
			if leftBP < minBP {
				return left, nil
			}
			if _, err := p.lex.Next(); err != nil {
				return nil, err
			}
			right, err := p.parseExpression(rightBP)
			if err != nil {
				return nil, err
			}
			left = term.NewBinary(tok, left, right)

		case lexer.IsAtom(tok.Kind) || tok.Kind == lexer.LParen:
			// Implicit multiplication: "2x", "2(x+1)", "2x^2". The
			// lookahead is not consumed here — parsePrefix will consume
			// it when we recurse.
			mulTok := lexer.NewToken(lexer.Multiply, "*")
			leftBP, rightBP := lexer.BindingPower(lexer.Multiply)
			if leftBP < minBP {
				return left, nil
			}
			right, err := p.parseExpression(rightBP)
			if err != nil {
				return nil, err
			}
			left = term.NewBinary(mulTok, left, right)

		default:
			return left, nil
		}
	}
}

// parsePrefix consumes the single token (or parenthesized group, or unary
// operator application) that starts a new term.
func (p *Parser) parsePrefix() (term.Node, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return nil, err
	}

	switch {
	case lexer.IsAtom(tok.Kind):
		return term.NewAtom(tok), nil

	case tok.Kind == lexer.LParen:
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		closeTok, err := p.lex.Next()
		if err != nil {
			return nil, err
		}
		if closeTok.Kind != lexer.RParen {
			return nil, casErr.Newf(casErr.ParseError, "expected ')', got %q", closeTok.Lexeme)
		}
		return inner, nil

	case lexer.IsUnary(tok.Kind):
		_, rightBP := lexer.BindingPower(tok.Kind)
		operand, err := p.parseExpression(rightBP)
		if err != nil {
			return nil, err
		}
		return term.NewUnary(tok, operand), nil

	default:
		return nil, casErr.Newf(casErr.ParseError, "unexpected token %q", tok.Lexeme)
	}
}
