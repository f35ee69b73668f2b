package sdlprint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/graph-gophers/sdlprint/ast"
)

// builtinScalars are defined by the specification and never printed as part
// of the public schema.
var builtinScalars = map[string]bool{
	"String":  true,
	"Boolean": true,
	"Int":     true,
	"Float":   true,
	"ID":      true,
}

// isSpecDirective reports whether name is one of the three directives defined
// by the specification.
func isSpecDirective(name string) bool {
	switch name {
	case "skip", "include", "deprecated":
		return true
	}
	return false
}

func isIntrospectionType(name string) bool {
	return strings.HasPrefix(name, "__")
}

func isDefinedType(name string) bool {
	return !isIntrospectionType(name) && !builtinScalars[name]
}

type printer struct {
	defaultDeprecationReason string
	valueText                func(ast.Value) string
}

// printFilteredSchema renders the schema definition block, the directives
// passing directiveFilter in declaration order, and the types passing
// typeFilter sorted by name. Blocks are separated by one blank line and the
// result carries exactly one trailing newline.
func (p *printer) printFilteredSchema(s *ast.Schema, directiveFilter, typeFilter func(string) bool) string {
	blocks := []string{p.schemaDefinition(s)}

	for _, d := range s.Directives {
		if directiveFilter(d.Name) {
			blocks = append(blocks, p.directive(d))
		}
	}

	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if typeFilter(name) {
			blocks = append(blocks, p.printType(s.Types[name]))
		}
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

// schemaDefinition emits the `schema { ... }` wrapper listing the present
// root types. The wrapper is emitted even when no root type is present.
func (p *printer) schemaDefinition(s *ast.Schema) string {
	var operationTypes []string

	if q, ok := s.EntryPoints["query"]; ok {
		operationTypes = append(operationTypes, "  query: "+q.TypeName())
	}
	if m, ok := s.EntryPoints["mutation"]; ok {
		operationTypes = append(operationTypes, "  mutation: "+m.TypeName())
	}
	if sub, ok := s.EntryPoints["subscription"]; ok {
		operationTypes = append(operationTypes, "  subscription: "+sub.TypeName())
	}

	return "schema {\n" + strings.Join(operationTypes, "\n") + "\n}"
}

// printType dispatches over the six type kinds. The variant is closed; any
// other type reaching this point is a bug, not a printable schema.
func (p *printer) printType(t ast.NamedType) string {
	switch t := t.(type) {
	case *ast.Scalar:
		return p.scalar(t)
	case *ast.Object:
		return p.object(t)
	case *ast.Interface:
		return p.interfaceType(t)
	case *ast.Union:
		return p.union(t)
	case *ast.Enum:
		return p.enum(t)
	case *ast.InputObject:
		return p.inputObject(t)
	default:
		panic(fmt.Sprintf("sdlprint: unexpected type %T", t))
	}
}

func (p *printer) scalar(t *ast.Scalar) string {
	return p.description(t.Desc, "", true) + "scalar " + t.Name
}

func (p *printer) object(t *ast.Object) string {
	var implements string
	if len(t.Interfaces) > 0 {
		names := make([]string, len(t.Interfaces))
		for i, intf := range t.Interfaces {
			names[i] = intf.Name
		}
		implements = " implements " + strings.Join(names, ", ")
	}

	return p.description(t.Desc, "", true) + "type " + t.Name + implements + " {\n" + p.fields(t.Fields) + "\n}"
}

func (p *printer) interfaceType(t *ast.Interface) string {
	return p.description(t.Desc, "", true) + "interface " + t.Name + " {\n" + p.fields(t.Fields) + "\n}"
}

func (p *printer) union(t *ast.Union) string {
	members := make([]string, len(t.PossibleTypes))
	for i, obj := range t.PossibleTypes {
		members[i] = obj.Name
	}

	return p.description(t.Desc, "", true) + "union " + t.Name + " = " + strings.Join(members, " | ")
}

func (p *printer) enum(t *ast.Enum) string {
	lines := make([]string, len(t.Values))
	for i, v := range t.Values {
		lines[i] = p.description(v.Desc, "  ", i == 0) + "  " + v.Name + p.deprecated(v.Directives)
	}

	return p.description(t.Desc, "", true) + "enum " + t.Name + " {\n" + strings.Join(lines, "\n") + "\n}"
}

func (p *printer) inputObject(t *ast.InputObject) string {
	lines := make([]string, len(t.Values))
	for i, v := range t.Values {
		lines[i] = p.description(v.Desc, "  ", i == 0) + "  " + p.inputValue(v)
	}

	return p.description(t.Desc, "", true) + "input " + t.Name + " {\n" + strings.Join(lines, "\n") + "\n}"
}

// fields renders one line per field, in declared order. A field's multi-line
// description ends with its own line break, so no blank lines are inserted
// between field lines.
func (p *printer) fields(fields ast.FieldList) string {
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = p.description(f.Desc, "  ", i == 0) + "  " + f.Name + p.args(f.Args) + ": " + f.Type.String() + p.deprecated(f.Directives)
	}
	return strings.Join(lines, "\n")
}

// args renders a parenthesized argument list: inline when no argument has a
// description, one argument per line otherwise.
func (p *printer) args(args ast.InputValueList) string {
	if len(args) == 0 {
		return ""
	}

	allUndescribed := true
	for _, arg := range args {
		if arg.Desc != "" {
			allUndescribed = false
			break
		}
	}

	if allUndescribed {
		texts := make([]string, len(args))
		for i, arg := range args {
			texts[i] = p.inputValue(arg)
		}
		return "(" + strings.Join(texts, ", ") + ")"
	}

	lines := make([]string, len(args))
	for i, arg := range args {
		lines[i] = p.description(arg.Desc, "  ", i == 0) + "  " + p.inputValue(arg)
	}
	return "(\n" + strings.Join(lines, "\n") + "\n)"
}

// inputValue renders `name: Type` plus ` = default` when a default was
// declared. An explicit null default is a declared default and prints as
// `= null`.
func (p *printer) inputValue(v *ast.InputValue) string {
	var defaultValue string
	if v.Default != nil {
		defaultValue = " = " + p.valueText(v.Default)
	}

	return v.Name.Name + ": " + v.Type.String() + defaultValue
}

// deprecated renders the @deprecated annotation for a field or enum value.
// A missing reason argument or one equal to the default reason renders the
// bare form.
func (p *printer) deprecated(directives ast.DirectiveList) string {
	d := directives.Get("deprecated")
	if d == nil {
		return ""
	}

	value, ok := d.Arguments.Get("reason")
	if !ok {
		return " @deprecated"
	}
	if _, isNull := value.(*ast.NullValue); isNull {
		return ""
	}

	reason, _ := value.Deserialize().(string)
	if reason == "" || reason == p.defaultDeprecationReason {
		return " @deprecated"
	}
	return " @deprecated(reason: " + p.valueText(ast.StringValue(reason)) + ")"
}

func (p *printer) directive(d *ast.DirectiveDefinition) string {
	return p.description(d.Desc, "", true) + "directive @" + d.Name + p.args(d.Arguments) + " on " + strings.Join(d.Locations, " | ")
}
