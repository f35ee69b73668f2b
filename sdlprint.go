// Package sdlprint renders a GraphQL schema model as canonical SDL text.
//
// The printer is a pure transformation over the read-only model in package
// ast: it owns nothing, mutates nothing, and is safe to call concurrently on
// the same schema. Two prints of the same schema are byte-identical.
package sdlprint

import (
	"github.com/graph-gophers/sdlprint/ast"
	"github.com/graph-gophers/sdlprint/internal/schema"
)

// Opt is a printing option.
type Opt func(*printer)

// WithDeprecationReason sets the sentinel reason that renders as a bare
// `@deprecated`. It defaults to ast.DefaultDeprecationReason.
func WithDeprecationReason(reason string) Opt {
	return func(p *printer) {
		p.defaultDeprecationReason = reason
	}
}

// WithValueText swaps the service that renders literal values (argument
// defaults and deprecation reasons) as SDL text. The default uses the
// value's own String method.
func WithValueText(fn func(ast.Value) string) Opt {
	return func(p *printer) {
		p.valueText = fn
	}
}

func newPrinter(opts ...Opt) *printer {
	p := &printer{
		defaultDeprecationReason: ast.DefaultDeprecationReason,
		valueText:                func(v ast.Value) string { return v.String() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PrintSchema renders the public SDL of s: every type except the
// introspection types and the builtin scalars, and every directive except the
// specification directives.
func PrintSchema(s *ast.Schema, opts ...Opt) string {
	p := newPrinter(opts...)
	return p.printFilteredSchema(s,
		func(name string) bool { return !isSpecDirective(name) },
		isDefinedType,
	)
}

// PrintIntrospectionSchema renders the meta side of s: only the
// introspection types and only the specification directives.
func PrintIntrospectionSchema(s *ast.Schema, opts ...Opt) string {
	p := newPrinter(opts...)
	return p.printFilteredSchema(s, isSpecDirective, isIntrospectionType)
}

// ParseOpt is a parsing option.
type ParseOpt func(*parseConfig)

type parseConfig struct {
	useStringDescriptions bool
}

// CommentDescriptions restores the pre-June-2018 behavior of taking
// descriptions from `#` comments instead of string literals.
func CommentDescriptions() ParseOpt {
	return func(c *parseConfig) {
		c.useStringDescriptions = false
	}
}

// ParseSchema parses an SDL document into a schema model, seeded with the
// builtin scalars, the specification directives and the introspection types.
func ParseSchema(sdl string, opts ...ParseOpt) (*ast.Schema, error) {
	c := &parseConfig{useStringDescriptions: true}
	for _, opt := range opts {
		opt(c)
	}

	s := schema.New()
	if err := schema.Parse(s, sdl, c.useStringDescriptions); err != nil {
		return nil, err
	}
	return s, nil
}

// MustParseSchema is like ParseSchema but panics on error.
func MustParseSchema(sdl string, opts ...ParseOpt) *ast.Schema {
	s, err := ParseSchema(sdl, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
