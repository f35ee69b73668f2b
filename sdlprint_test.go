package sdlprint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	gqlast "github.com/vektah/gqlparser/v2/ast"

	"github.com/graph-gophers/sdlprint"
)

func TestPrintSchemaHelloWorld(t *testing.T) {
	s := sdlprint.MustParseSchema(`
		schema {
			query: Query
		}

		type Query {
			hello: String
		}
	`)

	want := "schema {\n" +
		"  query: Query\n" +
		"}\n" +
		"\n" +
		"type Query {\n" +
		"  hello: String\n" +
		"}\n"
	assert.Equal(t, want, sdlprint.PrintSchema(s))
}

func TestPrintSchemaSortsTypesKeepsFieldOrder(t *testing.T) {
	s := sdlprint.MustParseSchema(`
		type Query {
			zebra: Beta
			alpha: Alpha
		}

		type Beta {
			b: Int
		}

		type Alpha {
			a: Int
		}
	`)

	want := "schema {\n" +
		"  query: Query\n" +
		"}\n" +
		"\n" +
		"type Alpha {\n" +
		"  a: Int\n" +
		"}\n" +
		"\n" +
		"type Beta {\n" +
		"  b: Int\n" +
		"}\n" +
		"\n" +
		"type Query {\n" +
		"  zebra: Beta\n" +
		"  alpha: Alpha\n" +
		"}\n"
	assert.Equal(t, want, sdlprint.PrintSchema(s))
}

func TestPrintSchemaAllKinds(t *testing.T) {
	s := sdlprint.MustParseSchema(`
		schema {
			query: Query
			mutation: Mutation
		}

		type Query {
			node(id: ID!): Node
			search(term: String, limit: Int = 10): [Node!]
		}

		type Mutation {
			touch(id: ID!): Node
		}

		interface Node {
			id: ID!
		}

		type User implements Node {
			id: ID!
			name: String
			friends: [User]
		}

		type Bot implements Node {
			id: ID!
		}

		union Actor = User | Bot

		enum Color {
			RED
			GREEN
			BLUE
		}

		input Filter {
			color: Color = RED
			limit: Int
		}

		scalar Time

		directive @cacheControl(maxAge: Int) on FIELD_DEFINITION | OBJECT
	`)

	want := "schema {\n" +
		"  query: Query\n" +
		"  mutation: Mutation\n" +
		"}\n" +
		"\n" +
		"directive @cacheControl(maxAge: Int) on FIELD_DEFINITION | OBJECT\n" +
		"\n" +
		"union Actor = User | Bot\n" +
		"\n" +
		"type Bot implements Node {\n" +
		"  id: ID!\n" +
		"}\n" +
		"\n" +
		"enum Color {\n" +
		"  RED\n" +
		"  GREEN\n" +
		"  BLUE\n" +
		"}\n" +
		"\n" +
		"input Filter {\n" +
		"  color: Color = RED\n" +
		"  limit: Int\n" +
		"}\n" +
		"\n" +
		"type Mutation {\n" +
		"  touch(id: ID!): Node\n" +
		"}\n" +
		"\n" +
		"interface Node {\n" +
		"  id: ID!\n" +
		"}\n" +
		"\n" +
		"type Query {\n" +
		"  node(id: ID!): Node\n" +
		"  search(term: String, limit: Int = 10): [Node!]\n" +
		"}\n" +
		"\n" +
		"scalar Time\n" +
		"\n" +
		"type User implements Node {\n" +
		"  id: ID!\n" +
		"  name: String\n" +
		"  friends: [User]\n" +
		"}\n"
	assert.Equal(t, want, sdlprint.PrintSchema(s))
}

func TestPrintSchemaDeprecation(t *testing.T) {
	s := sdlprint.MustParseSchema(`
		type Query {
			color: Color
			old: String @deprecated(reason: "")
			ancient: String @deprecated(reason: "No longer supported")
		}

		enum Color {
			RED
			GREEN @deprecated(reason: "use GREEN2")
			BLUE @deprecated
		}
	`)

	out := sdlprint.PrintSchema(s)
	assert.Contains(t, out, "  GREEN @deprecated(reason: \"use GREEN2\")\n")
	assert.Contains(t, out, "  BLUE @deprecated\n")
	assert.Contains(t, out, "  old: String @deprecated\n")
	assert.Contains(t, out, "  ancient: String @deprecated\n")
	assert.NotContains(t, out, "No longer supported")
}

func TestPrintSchemaCustomDeprecationSentinel(t *testing.T) {
	s := sdlprint.MustParseSchema(`
		type Query {
			old: String @deprecated(reason: "gone")
		}
	`)

	out := sdlprint.PrintSchema(s, sdlprint.WithDeprecationReason("gone"))
	assert.Contains(t, out, "  old: String @deprecated\n")
	assert.NotContains(t, out, "gone")
}

func TestPrintSchemaFiltersBuiltins(t *testing.T) {
	s := sdlprint.MustParseSchema(`
		type Query {
			hello: String
			id: ID
			n: Int
			f: Float
			ok: Boolean
		}
	`)

	out := sdlprint.PrintSchema(s)
	for _, scalar := range []string{"String", "Boolean", "Int", "Float", "ID"} {
		assert.NotContains(t, out, "scalar "+scalar)
	}
	assert.NotContains(t, out, "__")
	assert.NotContains(t, out, "directive @skip")
	assert.NotContains(t, out, "directive @include")
	assert.NotContains(t, out, "directive @deprecated")
}

func TestPrintIntrospectionSchema(t *testing.T) {
	s := sdlprint.MustParseSchema(`
		type Query {
			hello: String
		}
	`)

	out := sdlprint.PrintIntrospectionSchema(s)

	// Exactly the introspection types, in sorted order.
	var typeNames []string
	for _, line := range strings.Split(out, "\n") {
		if name, ok := strings.CutPrefix(line, "type "); ok {
			typeNames = append(typeNames, strings.TrimSuffix(name, " {"))
		} else if name, ok := strings.CutPrefix(line, "enum "); ok {
			typeNames = append(typeNames, strings.TrimSuffix(name, " {"))
		}
	}
	assert.Equal(t, []string{
		"__Directive",
		"__DirectiveLocation",
		"__EnumValue",
		"__Field",
		"__InputValue",
		"__Schema",
		"__Type",
		"__TypeKind",
	}, typeNames)

	// Only the specification directives, in declaration order.
	include := strings.Index(out, "directive @include")
	skip := strings.Index(out, "directive @skip")
	deprecated := strings.Index(out, "directive @deprecated")
	require.True(t, include >= 0 && skip >= 0 && deprecated >= 0)
	assert.Less(t, include, skip)
	assert.Less(t, skip, deprecated)

	assert.NotContains(t, out, "type Query")
	assert.NotContains(t, out, "\nscalar ")
}

func TestPrintSchemaDeterministic(t *testing.T) {
	sdl := `
		type Query {
			node(id: ID!): String
		}

		enum Color {
			RED
			GREEN
		}

		input Filter {
			color: Color
		}
	`

	first := sdlprint.PrintSchema(sdlprint.MustParseSchema(sdl))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, sdlprint.PrintSchema(sdlprint.MustParseSchema(sdl)))
	}
}

func TestPrintSchemaEmptySchemaBlock(t *testing.T) {
	// No root types still emits the wrapper. Intentionally preserved.
	s := sdlprint.MustParseSchema(`
		type Standalone {
			x: String
		}
	`)

	want := "schema {\n" +
		"\n" +
		"}\n" +
		"\n" +
		"type Standalone {\n" +
		"  x: String\n" +
		"}\n"
	assert.Equal(t, want, sdlprint.PrintSchema(s))
}

func TestPrintSchemaDescriptions(t *testing.T) {
	s := sdlprint.MustParseSchema(`
		"The root query type."
		type Query {
			"Current time."
			now: Time
			"Latest news."
			news: String
		}

		"Time is an RFC 3339 timestamp."
		scalar Time
	`)

	want := "schema {\n" +
		"  query: Query\n" +
		"}\n" +
		"\n" +
		"\"\"\"The root query type.\"\"\"\n" +
		"type Query {\n" +
		"  \"\"\"Current time.\"\"\"\n" +
		"  now: Time\n" +
		"  \"\"\"Latest news.\"\"\"\n" +
		"  news: String\n" +
		"}\n" +
		"\n" +
		"\"\"\"Time is an RFC 3339 timestamp.\"\"\"\n" +
		"scalar Time\n"
	assert.Equal(t, want, sdlprint.PrintSchema(s))
}

func TestPrintSchemaArgumentDescriptions(t *testing.T) {
	s := sdlprint.MustParseSchema(`
		type Query {
			profile(
				"The profile id."
				id: ID!
				size: Int = 50
			): String
		}
	`)

	want := "type Query {\n" +
		"  profile(\n" +
		"  \"\"\"The profile id.\"\"\"\n" +
		"  id: ID!\n" +
		"  size: Int = 50\n" +
		"): String\n" +
		"}\n"
	assert.Contains(t, sdlprint.PrintSchema(s), want)
}

func TestPrintSchemaEscapesBlockQuotes(t *testing.T) {
	s := sdlprint.MustParseSchema(`
		"Contains \"\"\" inside."
		type Query {
			hello: String
		}
	`)

	out := sdlprint.PrintSchema(s)
	assert.Contains(t, out, `Contains \"""`)
	assert.NotContains(t, out, `Contains """`)
}

func TestPrintSchemaOutputIsValidSDL(t *testing.T) {
	s := sdlprint.MustParseSchema(`
		schema {
			query: Query
		}

		"The root query type."
		type Query {
			user(id: ID!): User
		}

		"A registered person."
		type User {
			id: ID!
			name: String
			role: Role
		}

		enum Role {
			ADMIN
			MEMBER @deprecated(reason: "use ADMIN")
		}
	`)

	out := sdlprint.PrintSchema(s)
	var parsed *gqlast.Schema
	require.NotPanics(t, func() {
		parsed = gqlparser.MustLoadSchema(&gqlast.Source{Name: "printed.graphql", Input: out})
	})
	require.NotNil(t, parsed.Types["User"])
}
