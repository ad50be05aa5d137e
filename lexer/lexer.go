/*
File    : algebra-cas/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "github.com/akashmaji946/algebra-cas/casErr"

// Lexer performs lexical analysis of an arithmetic expression or equation.
// It scans the source byte by byte, classifying runs of digits as Number
// tokens, runs of letter-led non-operator characters as Variable tokens,
// and single characters as the fixed operator/parenthesis alphabet.
//
// Fields:
//   - Src: the entire source text
//   - Current: the byte at Position, or 0 past the end
//   - Position: the current index into Src (0-indexed)
//   - SrcLength: len(Src), cached for advance's bounds check
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int

	peeked    *Token
	peekedErr error
}

// NewLexer creates a Lexer positioned at the first byte of src.
func NewLexer(src string) *Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
	}
}

// Next returns the next token and advances past it. Past the end of input
// it returns the End token repeatedly, never an error.
func (lex *Lexer) Next() (Token, error) {
	if lex.peeked != nil {
		tok, err := *lex.peeked, lex.peekedErr
		lex.peeked = nil
		lex.peekedErr = nil
		return tok, err
	}
	return lex.scan()
}

// Peek returns the next token without advancing, buffering it so the
// following Next call does not re-scan the input. This is the one-token
// lookahead the Pratt parser needs to decide whether to keep consuming a
// binary operator at the current precedence level.
func (lex *Lexer) Peek() (Token, error) {
	if lex.peeked == nil {
		tok, err := lex.scan()
		lex.peeked = &tok
		lex.peekedErr = err
	}
	return *lex.peeked, lex.peekedErr
}

// scan performs the actual tokenization, skipping whitespace first.
func (lex *Lexer) scan() (Token, error) {
	lex.skipWhitespace()

	if lex.Current == 0 {
		return NewToken(End, ""), nil
	}

	switch {
	case isDigit(lex.Current):
		return lex.number(), nil
	case isLetter(lex.Current) && !IsOperator(lex.Current):
		return lex.variable(), nil
	case lex.Current == '(':
		lex.advance()
		return NewToken(LParen, "("), nil
	case lex.Current == ')':
		lex.advance()
		return NewToken(RParen, ")"), nil
	case IsOperator(lex.Current):
		ch := lex.Current
		lex.advance()
		return NewToken(OperatorKind(ch), string(ch)), nil
	default:
		ch := lex.Current
		lex.advance()
		return Token{}, casErr.Newf(casErr.LexError, "unknown character %q", ch)
	}
}

// advance moves to the next byte of Src, setting Current to 0 past the end.
func (lex *Lexer) advance() {
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// skipWhitespace advances past any run of whitespace bytes.
func (lex *Lexer) skipWhitespace() {
	for isWhitespace(lex.Current) {
		lex.advance()
	}
}

// number consumes a run of digits and '.' characters, stopping at the next
// character that is neither a digit nor '.'. It does not check how many
// decimal points the run holds; NumericValue rejects a malformed lexeme.
func (lex *Lexer) number() Token {
	start := lex.Position
	for isDigit(lex.Current) || lex.Current == '.' {
		lex.advance()
	}
	return NewToken(Number, lex.Src[start:lex.Position])
}

// variable consumes a run of characters that are not whitespace, not an
// operator, and not a parenthesis, allowing multi-character variable names
// made of any non-whitespace non-operator non-parenthesis character.
func (lex *Lexer) variable() Token {
	start := lex.Position
	for lex.Current != 0 &&
		!isWhitespace(lex.Current) &&
		!IsOperator(lex.Current) &&
		lex.Current != '(' &&
		lex.Current != ')' {
		lex.advance()
	}
	return NewToken(Variable, lex.Src[start:lex.Position])
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
