package ast

import (
	"testing"
	"text/scanner"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"int", &PrimitiveValue{Type: scanner.Int, Text: "42"}, "42"},
		{"float", &PrimitiveValue{Type: scanner.Float, Text: "1.5"}, "1.5"},
		{"string", StringValue(`say "hi"`), `"say \"hi\""`},
		{"enum value", &PrimitiveValue{Type: scanner.Ident, Text: "RED"}, "RED"},
		{"null", &NullValue{}, "null"},
		{
			"list",
			&ListValue{Values: []Value{
				&PrimitiveValue{Type: scanner.Int, Text: "1"},
				&PrimitiveValue{Type: scanner.Int, Text: "2"},
			}},
			"[1, 2]",
		},
		{
			"object",
			&ObjectValue{Fields: []*ObjectField{
				{Name: Ident{Name: "x"}, Value: &PrimitiveValue{Type: scanner.Int, Text: "1"}},
				{Name: Ident{Name: "y"}, Value: &NullValue{}},
			}},
			"{x: 1, y: null}",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.value.String(); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestValueDeserialize(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  interface{}
	}{
		{"int", &PrimitiveValue{Type: scanner.Int, Text: "42"}, int64(42)},
		{"float", &PrimitiveValue{Type: scanner.Float, Text: "1.5"}, 1.5},
		{"string", &PrimitiveValue{Type: scanner.String, Text: `"hi"`}, "hi"},
		{"true", &PrimitiveValue{Type: scanner.Ident, Text: "true"}, true},
		{"false", &PrimitiveValue{Type: scanner.Ident, Text: "false"}, false},
		{"enum value", &PrimitiveValue{Type: scanner.Ident, Text: "RED"}, "RED"},
		{"null", &NullValue{}, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.value.Deserialize(); got != test.want {
				t.Errorf("got %#v, want %#v", got, test.want)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	elem := &Scalar{Name: "Int"}
	tests := []struct {
		typ  Type
		want string
	}{
		{elem, "Int"},
		{&NonNull{OfType: elem}, "Int!"},
		{&List{OfType: elem}, "[Int]"},
		{&NonNull{OfType: &List{OfType: &NonNull{OfType: elem}}}, "[Int!]!"},
	}

	for _, test := range tests {
		if got := test.typ.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}
