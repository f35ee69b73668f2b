// Package schema parses SDL documents into the ast model.
package schema

import (
	"fmt"
	"strings"
	"text/scanner"

	"github.com/graph-gophers/sdlprint/ast"
	"github.com/graph-gophers/sdlprint/errors"
	"github.com/graph-gophers/sdlprint/internal/lexer"
)

// New creates an empty schema seeded with the meta types and directives every
// schema carries: the builtin scalars, the specification directives and the
// introspection types.
func New() *ast.Schema {
	s := &ast.Schema{
		EntryPoints: make(map[string]ast.NamedType),
		Types:       make(map[string]ast.NamedType),
	}
	for n, t := range Meta.Types {
		s.Types[n] = t
	}
	s.Directives = append(s.Directives, Meta.Directives...)
	return s
}

// Parse appends the declarations in sdl to s and resolves all references.
// If useStringDescriptions is false, `#` comments become descriptions, as in
// pre-June-2018 schema documents.
func Parse(s *ast.Schema, sdl string, useStringDescriptions bool) error {
	l := lexer.New(sdl, useStringDescriptions)

	d := &document{schema: s, entryPointNames: make(map[string]ast.Ident)}
	var err error
	syntaxErr := l.CatchSyntaxError(func() {
		l.ConsumeWhitespace()
		err = parseSchema(d, l)
	})
	if syntaxErr != nil {
		return syntaxErr
	}
	if err != nil {
		return err
	}

	return d.resolve()
}

// document carries the intermediate state of one Parse call: declared names
// that still need resolving against the completed type map.
type document struct {
	schema          *ast.Schema
	entryPointNames map[string]ast.Ident
	objects         []*ast.Object
	unions          []*ast.Union
	enums           []*ast.Enum
}

func (d *document) resolve() error {
	s := d.schema

	for _, t := range s.Types {
		if err := resolveNamedType(s, t); err != nil {
			return err
		}
	}
	for _, dir := range s.Directives {
		for _, arg := range dir.Arguments {
			t, err := resolveType(arg.Type, s.Resolve)
			if err != nil {
				return err
			}
			arg.Type = t
		}
	}

	for name, ident := range d.entryPointNames {
		t, ok := s.Types[ident.Name]
		if !ok {
			return errors.Errorf("type %q not found", ident.Name)
		}
		s.EntryPoints[name] = t
	}
	// Types named after the default root operation types serve as entry
	// points when the schema block is omitted.
	//
	// http://spec.graphql.org/draft/#sec-Root-Operation-Types.Default-Root-Operation-Type-Names
	if len(d.entryPointNames) == 0 {
		for _, op := range [][2]string{{"query", "Query"}, {"mutation", "Mutation"}, {"subscription", "Subscription"}} {
			if t, ok := s.Types[op[1]]; ok {
				s.EntryPoints[op[0]] = t
			}
		}
	}

	for _, obj := range d.objects {
		obj.Interfaces = make([]*ast.Interface, len(obj.InterfaceNames))
		for i, intfName := range obj.InterfaceNames {
			t, ok := s.Types[intfName]
			if !ok {
				return errors.Errorf("interface %q not found", intfName)
			}
			intf, ok := t.(*ast.Interface)
			if !ok {
				return errors.Errorf("type %q is not an interface", intfName)
			}
			obj.Interfaces[i] = intf
			intf.PossibleTypes = append(intf.PossibleTypes, obj)
		}
	}

	for _, union := range d.unions {
		union.PossibleTypes = make([]*ast.Object, len(union.TypeNames))
		for i, name := range union.TypeNames {
			t, ok := s.Types[name]
			if !ok {
				return errors.Errorf("object type %q not found", name)
			}
			obj, ok := t.(*ast.Object)
			if !ok {
				return errors.Errorf("type %q is not an object", name)
			}
			union.PossibleTypes[i] = obj
		}
	}

	for _, enum := range d.enums {
		for _, value := range enum.Values {
			if err := resolveDirectives(s, value.Directives); err != nil {
				return err
			}
		}
	}

	return nil
}

func resolveNamedType(s *ast.Schema, t ast.NamedType) error {
	switch t := t.(type) {
	case *ast.Object:
		for _, f := range t.Fields {
			if err := resolveField(s, f); err != nil {
				return err
			}
		}
	case *ast.Interface:
		for _, f := range t.Fields {
			if err := resolveField(s, f); err != nil {
				return err
			}
		}
	case *ast.InputObject:
		if err := resolveInputValues(s, t.Values); err != nil {
			return err
		}
	}
	return nil
}

func resolveField(s *ast.Schema, f *ast.Field) error {
	t, err := resolveType(f.Type, s.Resolve)
	if err != nil {
		return err
	}
	f.Type = t
	if err := resolveDirectives(s, f.Directives); err != nil {
		return err
	}
	return resolveInputValues(s, f.Args)
}

// resolveDirectives checks applied directives against their declarations and
// fills in declared argument defaults, so a bare `@deprecated` carries the
// default reason afterwards.
func resolveDirectives(s *ast.Schema, directives ast.DirectiveList) error {
	for _, d := range directives {
		dirName := d.Name.Name
		dd := s.Directives.Get(dirName)
		if dd == nil {
			return errors.Errorf("directive %q not found", dirName)
		}
		for _, arg := range d.Arguments {
			if dd.Arguments.Get(arg.Name.Name) == nil {
				return errors.Errorf("invalid argument %q for directive %q", arg.Name.Name, dirName)
			}
		}
		for _, arg := range dd.Arguments {
			if _, ok := d.Arguments.Get(arg.Name.Name); !ok && arg.Default != nil {
				d.Arguments = append(d.Arguments, &ast.Argument{Name: arg.Name, Value: arg.Default})
			}
		}
	}
	return nil
}

func resolveInputValues(s *ast.Schema, values ast.InputValueList) error {
	for _, v := range values {
		t, err := resolveType(v.Type, s.Resolve)
		if err != nil {
			return err
		}
		v.Type = t
	}
	return nil
}

// resolveType recursively unwraps List and NonNull types and replaces the
// TypeName at the core with the type it names.
func resolveType(t ast.Type, resolver func(name string) ast.Type) (ast.Type, *errors.SchemaError) {
	switch t := t.(type) {
	case *ast.List:
		ofType, err := resolveType(t.OfType, resolver)
		if err != nil {
			return nil, err
		}
		return &ast.List{OfType: ofType}, nil
	case *ast.NonNull:
		ofType, err := resolveType(t.OfType, resolver)
		if err != nil {
			return nil, err
		}
		return &ast.NonNull{OfType: ofType}, nil
	case *ast.TypeName:
		refT := resolver(t.Name)
		if refT == nil {
			err := errors.Errorf("Unknown type %q.", t.Name)
			err.Rule = "KnownTypeNames"
			err.Locations = []errors.Location{t.Loc}
			return nil, err
		}
		return refT, nil
	default:
		return t, nil
	}
}

func parseSchema(d *document, l *lexer.Lexer) error {
	s := d.schema

	for l.Peek() != scanner.EOF {
		desc := l.DescComment()
		switch x := l.ConsumeIdent(); x {
		case "schema":
			l.ConsumeToken('{')
			for l.Peek() != '}' {
				ident := l.ConsumeIdentWithLoc()
				l.ConsumeToken(':')
				typeIdent := l.ConsumeIdentWithLoc()
				if err := validateEntryPointName(d, ident); err != nil {
					return err
				}
				d.entryPointNames[ident.Name] = typeIdent
			}
			l.ConsumeToken('}')
		case "type":
			obj := parseObjectDef(l)
			obj.Desc = desc
			if err := validateTypeName(s, obj); err != nil {
				return err
			}
			s.Types[obj.Name] = obj
			d.objects = append(d.objects, obj)
		case "interface":
			intf := parseInterfaceDef(l)
			intf.Desc = desc
			if err := validateTypeName(s, intf); err != nil {
				return err
			}
			s.Types[intf.Name] = intf
		case "union":
			union := parseUnionDef(l)
			union.Desc = desc
			if err := validateTypeName(s, union); err != nil {
				return err
			}
			s.Types[union.Name] = union
			d.unions = append(d.unions, union)
		case "enum":
			enum := parseEnumDef(l)
			enum.Desc = desc
			if err := validateTypeName(s, enum); err != nil {
				return err
			}
			s.Types[enum.Name] = enum
			d.enums = append(d.enums, enum)
		case "input":
			input := parseInputDef(l)
			input.Desc = desc
			if err := validateTypeName(s, input); err != nil {
				return err
			}
			s.Types[input.Name] = input
		case "scalar":
			ident := l.ConsumeIdentWithLoc()
			sc := &ast.Scalar{Name: ident.Name, Desc: desc, Loc: ident.Loc}
			if err := validateTypeName(s, sc); err != nil {
				return err
			}
			s.Types[sc.Name] = sc
		case "directive":
			directive := parseDirectiveDef(l)
			directive.Desc = desc
			if err := validateDirectiveName(s, directive); err != nil {
				return err
			}
			s.Directives = append(s.Directives, directive)
		default:
			l.SyntaxError(fmt.Sprintf(`unexpected %q, expecting "schema", "type", "enum", "interface", "union", "input", "scalar" or "directive"`, x))
		}
	}
	return nil
}

func validateEntryPointName(d *document, ident ast.Ident) error {
	if d.schema == Meta {
		return nil
	}
	switch name := ident.Name; name {
	case "query", "mutation", "subscription":
		if prev, ok := d.entryPointNames[name]; ok {
			return &errors.SchemaError{
				Message:   fmt.Sprintf("%q type provided more than once", name),
				Locations: []errors.Location{prev.Loc, ident.Loc},
			}
		}
	default:
		return &errors.SchemaError{
			Message:   fmt.Sprintf(`unexpected %q, expected "query", "mutation" or "subscription"`, name),
			Locations: []errors.Location{ident.Loc},
		}
	}
	return nil
}

func validateTypeName(s *ast.Schema, t ast.NamedType) error {
	if s == Meta {
		return nil
	}
	name := t.TypeName()
	if strings.HasPrefix(name, "__") {
		return &errors.SchemaError{
			Message:   fmt.Sprintf(`%q must not begin with "__", reserved for introspection types`, name),
			Locations: []errors.Location{t.Location()},
		}
	}
	if _, ok := Meta.Types[name]; ok {
		return &errors.SchemaError{
			Message:   fmt.Sprintf("built-in type %q redefined", name),
			Locations: []errors.Location{t.Location()},
		}
	}
	if prev, ok := s.Types[name]; ok {
		return &errors.SchemaError{
			Message:   fmt.Sprintf("%q defined more than once", name),
			Locations: []errors.Location{prev.Location(), t.Location()},
		}
	}
	return nil
}

func validateDirectiveName(s *ast.Schema, directive *ast.DirectiveDefinition) error {
	if s == Meta {
		return nil
	}
	name := directive.Name
	if Meta.Directives.Get(name) != nil {
		return &errors.SchemaError{
			Message:   fmt.Sprintf("built-in directive %q redefined", name),
			Locations: []errors.Location{directive.Loc},
		}
	}
	if prev := s.Directives.Get(name); prev != nil {
		return &errors.SchemaError{
			Message:   fmt.Sprintf("%q defined more than once", name),
			Locations: []errors.Location{prev.Loc, directive.Loc},
		}
	}
	return nil
}

func parseObjectDef(l *lexer.Lexer) *ast.Object {
	o := &ast.Object{}
	ident := l.ConsumeIdentWithLoc()
	o.Name = ident.Name
	o.Loc = ident.Loc
	if l.Peek() == scanner.Ident {
		l.ConsumeKeyword("implements")
		for {
			o.InterfaceNames = append(o.InterfaceNames, l.ConsumeIdent())
			if l.Peek() == '{' {
				break
			}
			if l.Peek() == '&' {
				l.ConsumeToken('&')
			}
		}
	}
	l.ConsumeToken('{')
	o.Fields = parseFieldsDef(l)
	l.ConsumeToken('}')
	return o
}

func parseInterfaceDef(l *lexer.Lexer) *ast.Interface {
	i := &ast.Interface{}
	ident := l.ConsumeIdentWithLoc()
	i.Name = ident.Name
	i.Loc = ident.Loc
	l.ConsumeToken('{')
	i.Fields = parseFieldsDef(l)
	l.ConsumeToken('}')
	return i
}

func parseUnionDef(l *lexer.Lexer) *ast.Union {
	union := &ast.Union{}
	ident := l.ConsumeIdentWithLoc()
	union.Name = ident.Name
	union.Loc = ident.Loc
	l.ConsumeToken('=')
	union.TypeNames = []string{l.ConsumeIdent()}
	for l.Peek() == '|' {
		l.ConsumeToken('|')
		union.TypeNames = append(union.TypeNames, l.ConsumeIdent())
	}
	return union
}

func parseInputDef(l *lexer.Lexer) *ast.InputObject {
	i := &ast.InputObject{}
	ident := l.ConsumeIdentWithLoc()
	i.Name = ident.Name
	i.Loc = ident.Loc
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		i.Values = append(i.Values, parseInputValueDef(l))
	}
	l.ConsumeToken('}')
	return i
}

func parseEnumDef(l *lexer.Lexer) *ast.Enum {
	enum := &ast.Enum{}
	ident := l.ConsumeIdentWithLoc()
	enum.Name = ident.Name
	enum.Loc = ident.Loc
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		v := &ast.EnumValue{}
		v.Desc = l.DescComment()
		v.Loc = l.Location()
		v.Name = l.ConsumeIdent()
		v.Directives = parseDirectives(l)
		enum.Values = append(enum.Values, v)
	}
	l.ConsumeToken('}')
	return enum
}

func parseDirectiveDef(l *lexer.Lexer) *ast.DirectiveDefinition {
	d := &ast.DirectiveDefinition{}
	l.ConsumeToken('@')
	ident := l.ConsumeIdentWithLoc()
	d.Name = ident.Name
	d.Loc = ident.Loc
	if l.Peek() == '(' {
		l.ConsumeToken('(')
		for l.Peek() != ')' {
			d.Arguments = append(d.Arguments, parseInputValueDef(l))
		}
		l.ConsumeToken(')')
	}
	l.ConsumeKeyword("on")
	for {
		loc := l.ConsumeIdent()
		d.Locations = append(d.Locations, loc)
		if l.Peek() != '|' {
			break
		}
		l.ConsumeToken('|')
	}
	return d
}

func parseFieldsDef(l *lexer.Lexer) ast.FieldList {
	var fields ast.FieldList
	for l.Peek() != '}' {
		f := &ast.Field{}
		f.Desc = l.DescComment()
		f.Name = l.ConsumeIdent()
		if l.Peek() == '(' {
			l.ConsumeToken('(')
			for l.Peek() != ')' {
				f.Args = append(f.Args, parseInputValueDef(l))
			}
			l.ConsumeToken(')')
		}
		l.ConsumeToken(':')
		f.Type = parseType(l)
		f.Directives = parseDirectives(l)
		fields = append(fields, f)
	}
	return fields
}

func parseInputValueDef(l *lexer.Lexer) *ast.InputValue {
	v := &ast.InputValue{}
	v.Loc = l.Location()
	v.Desc = l.DescComment()
	v.Name = l.ConsumeIdentWithLoc()
	l.ConsumeToken(':')
	v.TypeLoc = l.Location()
	v.Type = parseType(l)
	if l.Peek() == '=' {
		l.ConsumeToken('=')
		v.Default = parseLiteral(l)
	}
	return v
}

func parseDirectives(l *lexer.Lexer) ast.DirectiveList {
	var directives ast.DirectiveList
	for l.Peek() == '@' {
		l.ConsumeToken('@')
		d := &ast.Directive{}
		d.Name = l.ConsumeIdentWithLoc()
		d.Name.Loc.Column--
		if l.Peek() == '(' {
			l.ConsumeToken('(')
			for l.Peek() != ')' {
				name := l.ConsumeIdentWithLoc()
				l.ConsumeToken(':')
				value := parseLiteral(l)
				d.Arguments = append(d.Arguments, &ast.Argument{Name: name, Value: value})
			}
			l.ConsumeToken(')')
		}
		directives = append(directives, d)
	}
	return directives
}

func parseType(l *lexer.Lexer) ast.Type {
	t := parseNullType(l)
	if l.Peek() == '!' {
		l.ConsumeToken('!')
		return &ast.NonNull{OfType: t}
	}
	return t
}

func parseNullType(l *lexer.Lexer) ast.Type {
	if l.Peek() == '[' {
		l.ConsumeToken('[')
		ofType := parseType(l)
		l.ConsumeToken(']')
		return &ast.List{OfType: ofType}
	}

	return &ast.TypeName{Ident: l.ConsumeIdentWithLoc()}
}

// parseLiteral parses a const value. Variables are not valid in schema
// documents, so `$` falls through to the syntax error.
func parseLiteral(l *lexer.Lexer) ast.Value {
	loc := l.Location()
	switch l.Peek() {
	case scanner.Int, scanner.Float, scanner.String, scanner.Ident:
		lit := l.ConsumeLiteral()
		if lit.Type == scanner.Ident && lit.Text == "null" {
			return &ast.NullValue{Loc: loc}
		}
		lit.Loc = loc
		return lit
	case '-':
		l.ConsumeToken('-')
		lit := l.ConsumeLiteral()
		lit.Text = "-" + lit.Text
		lit.Loc = loc
		return lit
	case '[':
		l.ConsumeToken('[')
		var list []ast.Value
		for l.Peek() != ']' {
			list = append(list, parseLiteral(l))
		}
		l.ConsumeToken(']')
		return &ast.ListValue{Values: list, Loc: loc}
	case '{':
		l.ConsumeToken('{')
		var fields []*ast.ObjectField
		for l.Peek() != '}' {
			name := l.ConsumeIdentWithLoc()
			l.ConsumeToken(':')
			value := parseLiteral(l)
			fields = append(fields, &ast.ObjectField{Name: name, Value: value})
		}
		l.ConsumeToken('}')
		return &ast.ObjectValue{Fields: fields, Loc: loc}
	default:
		l.SyntaxError("invalid value")
		panic("unreachable")
	}
}
