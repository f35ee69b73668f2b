package ast

import "github.com/graph-gophers/sdlprint/errors"

// DefaultDeprecationReason is the declared default for the `reason` argument
// of the @deprecated directive.
//
// http://spec.graphql.org/draft/#sec--deprecated
const DefaultDeprecationReason = "No longer supported"

// DirectiveDefinition declares a directive: `directive @name(args) on LOCS`.
//
// http://spec.graphql.org/draft/#sec-Type-System.Directives
type DirectiveDefinition struct {
	Name      string
	Desc      string
	Locations []string
	Arguments InputValueList
	Loc       errors.Location
}

// DirectiveDefinitionList preserves declaration order.
type DirectiveDefinitionList []*DirectiveDefinition

func (l DirectiveDefinitionList) Get(name string) *DirectiveDefinition {
	for _, d := range l {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// Directive is a directive applied to a schema element, e.g.
// `@deprecated(reason: "use newField")`.
type Directive struct {
	Name      Ident
	Arguments ArgumentList
}

type DirectiveList []*Directive

func (l DirectiveList) Get(name string) *Directive {
	for _, d := range l {
		if d.Name.Name == name {
			return d
		}
	}
	return nil
}

// Argument is a name/value pair supplied to an applied directive.
type Argument struct {
	Name  Ident
	Value Value
}

type ArgumentList []*Argument

func (l ArgumentList) Get(name string) (Value, bool) {
	for _, arg := range l {
		if arg.Name.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}

func (l ArgumentList) MustGet(name string) Value {
	value, ok := l.Get(name)
	if !ok {
		panic("argument not found")
	}
	return value
}
