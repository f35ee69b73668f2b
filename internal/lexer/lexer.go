// Package lexer tokenizes SDL documents on top of text/scanner.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/graph-gophers/sdlprint/ast"
	"github.com/graph-gophers/sdlprint/errors"
)

type syntaxError string

type Lexer struct {
	sc                    *scanner.Scanner
	next                  rune
	descComment           string
	useStringDescriptions bool
}

// New creates a lexer for s. If useStringDescriptions is set, descriptions
// are taken from string literals preceding a definition (June 2018 spec);
// otherwise `#` comments become descriptions, as in older schema documents.
func New(s string, useStringDescriptions bool) *Lexer {
	sc := &scanner.Scanner{
		Mode: scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings,
	}
	sc.Init(strings.NewReader(s))

	return &Lexer{sc: sc, useStringDescriptions: useStringDescriptions}
}

// CatchSyntaxError runs f and converts a syntax-error panic raised by the
// lexer into a returned *errors.SchemaError. Other panics propagate.
func (l *Lexer) CatchSyntaxError(f func()) (errRes *errors.SchemaError) {
	defer func() {
		if err := recover(); err != nil {
			if err, ok := err.(syntaxError); ok {
				errRes = errors.Errorf("syntax error: %s", err)
				errRes.Locations = []errors.Location{l.Location()}
				return
			}
			panic(err)
		}
	}()

	f()
	return
}

func (l *Lexer) Peek() rune {
	return l.next
}

// ConsumeWhitespace consumes whitespace and tokens equivalent to whitespace
// (e.g. commas and comments).
//
// Consumed comment characters build the description for the next type or
// field encountered. The description is available from DescComment(), and is
// reset every time ConsumeWhitespace() is executed unless
// l.useStringDescriptions is set.
func (l *Lexer) ConsumeWhitespace() {
	if !l.useStringDescriptions {
		l.descComment = ""
	}
	for {
		l.next = l.sc.Scan()

		if l.next == ',' {
			// Similar to white space and line terminators, commas are used to
			// improve legibility and separate lexical tokens but are otherwise
			// syntactically and semantically insignificant.
			//
			// http://spec.graphql.org/draft/#sec-Insignificant-Commas
			continue
		}

		if l.next == '#' {
			// A comment consists of all code points starting with '#' up to
			// but not including the line terminator.
			l.consumeComment()
			continue
		}

		break
	}
}

// consumeDescription optionally consumes a string-literal description, per the
// June 2018 spec. Single quote strings are single line; triple quote strings
// can be multi-line and are whitespace trimmed on both ends.
//
// http://spec.graphql.org/June2018/#sec-Descriptions
func (l *Lexer) consumeDescription() bool {
	if l.next != scanner.String {
		return false
	}
	// A triple quote string scans as an empty "" followed by an open quote
	// because the scanner treats strings as one token.
	l.descComment = ""
	tokenText := l.sc.TokenText()
	if l.sc.Peek() == '"' {
		l.next = l.sc.Next() // consume the third quote
		l.consumeTripleQuoteComment()
	} else {
		l.consumeStringComment(tokenText)
	}
	return true
}

func (l *Lexer) ConsumeIdent() string {
	name := l.sc.TokenText()
	l.ConsumeToken(scanner.Ident)
	return name
}

func (l *Lexer) ConsumeIdentWithLoc() ast.Ident {
	loc := l.Location()
	name := l.sc.TokenText()
	l.ConsumeToken(scanner.Ident)
	return ast.Ident{Name: name, Loc: loc}
}

func (l *Lexer) ConsumeKeyword(keyword string) {
	if l.next != scanner.Ident || l.sc.TokenText() != keyword {
		l.SyntaxError(fmt.Sprintf("unexpected %q, expecting %q", l.sc.TokenText(), keyword))
	}
	l.ConsumeWhitespace()
}

func (l *Lexer) ConsumeLiteral() *ast.PrimitiveValue {
	lit := &ast.PrimitiveValue{Type: l.next, Text: l.sc.TokenText()}
	l.ConsumeWhitespace()
	return lit
}

func (l *Lexer) ConsumeToken(expected rune) {
	if l.next != expected {
		l.SyntaxError(fmt.Sprintf("unexpected %q, expecting %s", l.sc.TokenText(), scanner.TokenString(expected)))
	}
	l.ConsumeWhitespace()
}

func (l *Lexer) DescComment() string {
	if l.useStringDescriptions {
		if l.consumeDescription() {
			l.ConsumeWhitespace()
		}
	}
	return l.descComment
}

func (l *Lexer) SyntaxError(message string) {
	panic(syntaxError(message))
}

func (l *Lexer) Location() errors.Location {
	return errors.Location{
		Line:   l.sc.Line,
		Column: l.sc.Column,
	}
}

func (l *Lexer) consumeTripleQuoteComment() {
	if l.next != '"' {
		panic("consumeTripleQuoteComment used in wrong context: no third quote?")
	}

	var comment strings.Builder
	numQuotes := 0
	for {
		l.next = l.sc.Next()
		if l.next == '"' {
			numQuotes++
		} else {
			numQuotes = 0
		}
		comment.WriteRune(l.next)
		if numQuotes == 3 || l.next == scanner.EOF {
			break
		}
	}
	text := comment.String()
	if l.descComment != "" {
		l.descComment += "\n"
	}
	l.descComment += strings.TrimSpace(text[:len(text)-numQuotes])
}

func (l *Lexer) consumeStringComment(str string) {
	value, err := strconv.Unquote(str)
	if err != nil {
		panic(err)
	}
	if l.descComment != "" {
		l.descComment += "\n"
	}
	l.descComment += value
}

// consumeComment consumes all characters from `#` to the first encountered
// line terminator. The characters are appended to l.descComment.
func (l *Lexer) consumeComment() {
	if l.next != '#' {
		panic("consumeComment used in wrong context")
	}

	// TODO: count and trim whitespace so we can dedent any following lines.
	if l.sc.Peek() == ' ' {
		l.sc.Next()
	}

	var comment strings.Builder
	if l.descComment != "" && !l.useStringDescriptions {
		comment.WriteByte('\n')
	}

	for {
		next := l.sc.Next()
		if next == '\r' || next == '\n' || next == scanner.EOF {
			break
		}

		if !l.useStringDescriptions {
			comment.WriteRune(next)
		}
	}

	l.descComment += comment.String()
}
