package graphql

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/nexograph/nexograph/compiler/gen"
)

// objectDefinition builds the schema definition for a projected model.
func objectDefinition(t *gen.ProjectedType) *ast.Definition {
	def := &ast.Definition{
		Kind:        ast.Object,
		Name:        t.Name,
		Description: t.Documentation,
	}
	for _, f := range t.Fields {
		def.Fields = append(def.Fields, &ast.FieldDefinition{
			Name:        f.Name,
			Description: f.Documentation,
			Type:        astType(f.Type),
		})
	}
	return def
}

// enumDefinition builds the schema definition for a projected enum.
func enumDefinition(e *gen.ProjectedEnum) *ast.Definition {
	def := &ast.Definition{
		Kind:        ast.Enum,
		Name:        e.Name,
		Description: e.Documentation,
	}
	for _, v := range e.Values {
		def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
			Name:        v.Name,
			Description: v.Documentation,
		})
	}
	return def
}

// astType maps a type reference onto the gqlparser AST. Lists carry the
// nullability of the reference on both the list and its elements.
func astType(ref gen.TypeRef) *ast.Type {
	switch {
	case ref.List && ref.Required:
		return ast.NonNullListType(ast.NonNullNamedType(ref.Name, nil), nil)
	case ref.List:
		return ast.ListType(ast.NamedType(ref.Name, nil), nil)
	case ref.Required:
		return ast.NonNullNamedType(ref.Name, nil)
	default:
		return ast.NamedType(ref.Name, nil)
	}
}

// RenderSDL renders the projected schema as a GraphQL schema document:
// custom scalar declarations first, then enums, then object types, each in
// declared order. The result is checked against the gqlparser grammar before
// being returned.
func RenderSDL(ps *gen.ProjectedSchema) (string, error) {
	var b strings.Builder
	for _, s := range ps.Scalars {
		b.WriteString("scalar " + s + "\n\n")
	}
	for _, e := range ps.Enums {
		writeDescription(&b, e.Documentation, "")
		if len(e.Values) == 0 {
			b.WriteString("enum " + e.Name + "\n\n")
			continue
		}
		b.WriteString("enum " + e.Name + " {\n")
		for _, v := range e.Values {
			writeDescription(&b, v.Documentation, "  ")
			b.WriteString("  " + v.Name + "\n")
		}
		b.WriteString("}\n\n")
	}
	for _, t := range ps.Types {
		writeDescription(&b, t.Documentation, "")
		// Empty braces do not parse, so fieldless types are declared bare.
		if len(t.Fields) == 0 {
			b.WriteString("type " + t.Name + "\n\n")
			continue
		}
		b.WriteString("type " + t.Name + " {\n")
		for _, f := range t.Fields {
			writeDescription(&b, f.Documentation, "  ")
			b.WriteString("  " + f.Name + ": " + f.Type.String() + "\n")
		}
		b.WriteString("}\n\n")
	}

	sdl := strings.TrimSuffix(b.String(), "\n")
	if _, err := parser.ParseSchema(&ast.Source{Name: "schema.graphql", Input: sdl}); err != nil {
		return "", gen.NewEmissionError("schema.graphql", "", "rendered schema does not parse", err)
	}
	return sdl, nil
}

// writeDescription writes a triple-quoted description block. Single-line
// descriptions stay on one line; multi-line ones open and close on their own
// lines with each line indented.
func writeDescription(b *strings.Builder, doc, indent string) {
	if doc == "" {
		return
	}
	if !strings.Contains(doc, "\n") {
		b.WriteString(indent + `"""` + doc + `"""` + "\n")
		return
	}
	b.WriteString(indent + `"""` + "\n")
	for _, line := range strings.Split(doc, "\n") {
		b.WriteString(indent + line + "\n")
	}
	b.WriteString(indent + `"""` + "\n")
}
