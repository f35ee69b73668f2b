package ast

import (
	"strconv"
	"strings"
	"text/scanner"

	"github.com/graph-gophers/sdlprint/errors"
)

// Value is a literal appearing in a schema document, e.g. a default value of
// an input value. String returns the SDL spelling of the literal; it is the
// default literal-text service used by the printer.
//
// http://spec.graphql.org/draft/#sec-Input-Values
type Value interface {
	String() string
	Deserialize() interface{}
	Location() errors.Location
}

// PrimitiveValue represents one of the scalar literals: Int, Float, String or
// an enum value. Type is the text/scanner token class; Text is the literal as
// written, quotes included for strings.
type PrimitiveValue struct {
	Type rune
	Text string
	Loc  errors.Location
}

func (v *PrimitiveValue) String() string            { return v.Text }
func (v *PrimitiveValue) Location() errors.Location { return v.Loc }

func (v *PrimitiveValue) Deserialize() interface{} {
	switch v.Type {
	case scanner.Int:
		value, err := strconv.ParseInt(v.Text, 10, 64)
		if err != nil {
			panic(err)
		}
		return value
	case scanner.Float:
		value, err := strconv.ParseFloat(v.Text, 64)
		if err != nil {
			panic(err)
		}
		return value
	case scanner.String:
		value, err := strconv.Unquote(v.Text)
		if err != nil {
			panic(err)
		}
		return value
	case scanner.Ident:
		switch v.Text {
		case "true":
			return true
		case "false":
			return false
		default:
			return v.Text
		}
	default:
		panic("invalid literal value")
	}
}

// ListValue is a list literal, e.g. `[1, 2, 3]`.
type ListValue struct {
	Values []Value
	Loc    errors.Location
}

func (v *ListValue) String() string {
	texts := make([]string, len(v.Values))
	for i, entry := range v.Values {
		texts[i] = entry.String()
	}
	return "[" + strings.Join(texts, ", ") + "]"
}

func (v *ListValue) Location() errors.Location { return v.Loc }

func (v *ListValue) Deserialize() interface{} {
	values := make([]interface{}, len(v.Values))
	for i, entry := range v.Values {
		values[i] = entry.Deserialize()
	}
	return values
}

// ObjectValue is an input object literal, e.g. `{x: 1, y: 2}`.
type ObjectValue struct {
	Fields []*ObjectField
	Loc    errors.Location
}

type ObjectField struct {
	Name  Ident
	Value Value
}

func (v *ObjectValue) String() string {
	texts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		texts[i] = f.Name.Name + ": " + f.Value.String()
	}
	return "{" + strings.Join(texts, ", ") + "}"
}

func (v *ObjectValue) Location() errors.Location { return v.Loc }

func (v *ObjectValue) Deserialize() interface{} {
	fields := make(map[string]interface{}, len(v.Fields))
	for _, f := range v.Fields {
		fields[f.Name.Name] = f.Value.Deserialize()
	}
	return fields
}

// NullValue is the literal `null`. It is distinct from an absent value.
type NullValue struct {
	Loc errors.Location
}

func (v *NullValue) String() string            { return "null" }
func (v *NullValue) Location() errors.Location { return v.Loc }
func (v *NullValue) Deserialize() interface{}  { return nil }

// StringValue builds the string literal for s, quoting and escaping it. The
// deprecation annotator uses it to render reason texts through the same
// literal machinery as any other value.
func StringValue(s string) *PrimitiveValue {
	return &PrimitiveValue{Type: scanner.String, Text: strconv.Quote(s)}
}
