/*
Package ast holds the schema model rendered by sdlprint.

The names of the Go types, whenever possible, match 1:1 with the names from
the GraphQL specification. The model is read-only as far as printing is
concerned: the printer walks it and mutates nothing.
*/
package ast

import "github.com/graph-gophers/sdlprint/errors"

// Schema represents a GraphQL service's collective type system capabilities.
// A schema is defined in terms of the types and directives it supports as well
// as the root operation types for each kind of operation: `query`, `mutation`,
// and `subscription`.
//
// http://spec.graphql.org/draft/#sec-Schema
type Schema struct {
	// EntryPoints determines the place in the type system where `query`,
	// `mutation`, and `subscription` operations begin.
	//
	// http://spec.graphql.org/draft/#sec-Root-Operation-Types
	EntryPoints map[string]NamedType

	// Types are the fundamental unit of any GraphQL schema.
	// There are six kinds of named type definitions in GraphQL, and two
	// wrapping types.
	//
	// http://spec.graphql.org/draft/#sec-Types
	Types map[string]NamedType

	// Directives are declaration-ordered. Printing preserves that order, so a
	// name-keyed map would not do here.
	//
	// http://spec.graphql.org/#sec-Type-System.Directives
	Directives DirectiveDefinitionList
}

// Resolve looks up a named type. It implements the Resolver used when
// resolving type references after parsing.
func (s *Schema) Resolve(name string) Type {
	t, ok := s.Types[name]
	if !ok {
		return nil
	}
	return t
}

// Type is any type reference appearing in a schema: a named type or a
// List/NonNull wrapper around one.
type Type interface {
	// Kind returns one of the __TypeKind enum values defined by the
	// specification.
	Kind() string
	// String returns the SDL spelling of the type reference, e.g. `[Int!]`.
	String() string
}

// NamedType is one of the six kinds of type definitions.
type NamedType interface {
	Type
	TypeName() string
	Description() string
	Location() errors.Location
}

// Scalar types represent primitive leaf values (e.g. a string or an integer)
// in a GraphQL type system.
//
// http://spec.graphql.org/draft/#sec-Scalars
type Scalar struct {
	Name string
	Desc string
	Loc  errors.Location
}

// Object types represent a list of named fields, each of which yields a value
// of a specific type.
//
// http://spec.graphql.org/draft/#sec-Objects
type Object struct {
	Name       string
	Interfaces []*Interface
	Fields     FieldList
	Desc       string
	Loc        errors.Location

	// InterfaceNames are the declared `implements` names, resolved into
	// Interfaces after the whole document has been parsed.
	InterfaceNames []string
}

// Interface types represent a list of named fields and their arguments.
//
// http://spec.graphql.org/draft/#sec-Interfaces
type Interface struct {
	Name          string
	PossibleTypes []*Object
	Fields        FieldList
	Desc          string
	Loc           errors.Location
}

// Union types represent an object that could be one of a list of object
// types.
//
// http://spec.graphql.org/draft/#sec-Unions
type Union struct {
	Name          string
	PossibleTypes []*Object
	Desc          string
	Loc           errors.Location

	// TypeNames are the declared member names, in declaration order. The
	// resolved PossibleTypes keep the same order.
	TypeNames []string
}

// Enum types describe the set of possible values.
//
// http://spec.graphql.org/draft/#sec-Enums
type Enum struct {
	Name   string
	Values []*EnumValue
	Desc   string
	Loc    errors.Location
}

// EnumValue is a possible value of an Enum.
type EnumValue struct {
	Name       string
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

// InputObject types define a set of input fields; the input fields are either
// scalars, enums, or other input objects.
//
// http://spec.graphql.org/draft/#sec-Input-Objects
type InputObject struct {
	Name   string
	Values InputValueList
	Desc   string
	Loc    errors.Location
}

// Field is a field of an Object or Interface.
type Field struct {
	Name       string
	Args       InputValueList
	Type       Type
	Directives DirectiveList
	Desc       string
}

type FieldList []*Field

func (l FieldList) Get(name string) *Field {
	for _, f := range l {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (l FieldList) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name
	}
	return names
}

// InputValue is an argument of a field or directive, or a field of an input
// object. A nil Default means no default was declared; an explicit `= null`
// default is a non-nil *NullValue.
type InputValue struct {
	Name    Ident
	Type    Type
	Default Value
	Desc    string
	Loc     errors.Location
	TypeLoc errors.Location
}

type InputValueList []*InputValue

func (l InputValueList) Get(name string) *InputValue {
	for _, v := range l {
		if v.Name.Name == name {
			return v
		}
	}
	return nil
}

// List is a wrapping type indicating a list of the underlying type.
//
// http://spec.graphql.org/draft/#sec-List
type List struct {
	OfType Type
}

// NonNull is a wrapping type declaring the underlying type to be non-nullable.
//
// http://spec.graphql.org/draft/#sec-Non-Null
type NonNull struct {
	OfType Type
}

// TypeName is an unresolved reference to a named type. References are
// replaced by the types they name once the whole document has been parsed;
// a TypeName reaching the printer is a bug.
type TypeName struct {
	Ident
}

// Ident is a name together with its source location.
type Ident struct {
	Name string
	Loc  errors.Location
}

func (*Scalar) Kind() string      { return "SCALAR" }
func (*Object) Kind() string      { return "OBJECT" }
func (*Interface) Kind() string   { return "INTERFACE" }
func (*Union) Kind() string       { return "UNION" }
func (*Enum) Kind() string        { return "ENUM" }
func (*InputObject) Kind() string { return "INPUT_OBJECT" }
func (*List) Kind() string        { return "LIST" }
func (*NonNull) Kind() string     { return "NON_NULL" }
func (*TypeName) Kind() string    { panic("TypeName needs to be resolved to actual type") }

func (t *Scalar) String() string      { return t.Name }
func (t *Object) String() string      { return t.Name }
func (t *Interface) String() string   { return t.Name }
func (t *Union) String() string       { return t.Name }
func (t *Enum) String() string        { return t.Name }
func (t *InputObject) String() string { return t.Name }
func (t *List) String() string        { return "[" + t.OfType.String() + "]" }
func (t *NonNull) String() string     { return t.OfType.String() + "!" }
func (t *TypeName) String() string    { return t.Name }

func (t *Scalar) TypeName() string      { return t.Name }
func (t *Object) TypeName() string      { return t.Name }
func (t *Interface) TypeName() string   { return t.Name }
func (t *Union) TypeName() string       { return t.Name }
func (t *Enum) TypeName() string        { return t.Name }
func (t *InputObject) TypeName() string { return t.Name }

func (t *Scalar) Description() string      { return t.Desc }
func (t *Object) Description() string      { return t.Desc }
func (t *Interface) Description() string   { return t.Desc }
func (t *Union) Description() string       { return t.Desc }
func (t *Enum) Description() string        { return t.Desc }
func (t *InputObject) Description() string { return t.Desc }

func (t *Scalar) Location() errors.Location      { return t.Loc }
func (t *Object) Location() errors.Location      { return t.Loc }
func (t *Interface) Location() errors.Location   { return t.Loc }
func (t *Union) Location() errors.Location       { return t.Loc }
func (t *Enum) Location() errors.Location        { return t.Loc }
func (t *InputObject) Location() errors.Location { return t.Loc }
