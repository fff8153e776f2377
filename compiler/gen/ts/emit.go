// Package ts renders a projected schema into distributable TypeScript and
// JavaScript modules: a type declaration, a CommonJS module, and an ESM
// module. Rendering is pure; the three modules are built from one shared set
// of descriptor literals so exported names and field order always agree.
package ts

import (
	"strconv"
	"strings"

	"github.com/nexograph/nexograph/compiler/gen"
)

// Modules holds the three pairwise-consistent text artifacts of one run.
type Modules struct {
	// Declaration is the TypeScript declaration module (index.d.ts).
	Declaration string
	// CJS is the CommonJS runtime module (index.js).
	CJS string
	// ESM is the ES module variant with identical semantics (index.mjs).
	ESM string
}

// reservedWords are identifiers that cannot be used as export names in the
// emitted module formats.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true, "yield": true, "let": true, "static": true,
	"await": true,
}

// Emit renders the three modules for the projected schema.
// It fails with an EmissionError when an export name collides with a
// reserved identifier or with another export.
func Emit(ps *gen.ProjectedSchema, cfg *gen.Config) (*Modules, error) {
	if err := checkExports(ps); err != nil {
		return nil, err
	}
	header := cfg.Gentime.Header
	return &Modules{
		Declaration: renderDeclaration(ps, header),
		CJS:         renderRuntime(ps, header, false),
		ESM:         renderRuntime(ps, header, true),
	}, nil
}

// Emitter adapts Emit to the generator pipeline.
type Emitter struct{}

// Emit implements gen.Emitter.
func (Emitter) Emit(ps *gen.ProjectedSchema, cfg *gen.Config) ([]gen.Artifact, error) {
	m, err := Emit(ps, cfg)
	if err != nil {
		return nil, err
	}
	return []gen.Artifact{
		{Name: "index.d.ts", Content: []byte(m.Declaration)},
		{Name: "index.js", Content: []byte(m.CJS)},
		{Name: "index.mjs", Content: []byte(m.ESM)},
	}, nil
}

func checkExports(ps *gen.ProjectedSchema) error {
	seen := make(map[string]bool, len(ps.Types)+len(ps.Enums))
	check := func(name string) error {
		if reservedWords[name] {
			return gen.NewEmissionError("index.js", name, "name collides with a reserved identifier", nil)
		}
		if seen[name] {
			return gen.NewEmissionError("index.js", name, "duplicate export name", nil)
		}
		seen[name] = true
		return nil
	}
	for _, t := range ps.Types {
		if err := check(t.Name); err != nil {
			return err
		}
	}
	for _, e := range ps.Enums {
		if err := check(e.Name); err != nil {
			return err
		}
	}
	return nil
}

func renderDeclaration(ps *gen.ProjectedSchema, header string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(`export interface FieldDescriptor {
  name: string;
  type: string;
  isList: boolean;
  isRequired: boolean;
  isId: boolean;
  relation?: { target: string; cardinality: "one" | "many" };
  documentation?: string;
}

export interface ModelDescriptor {
  $name: string;
  $doc?: string;
  $queryField: string;
  fields: FieldDescriptor[];
  field(name: string): FieldDescriptor | undefined;
}

export interface EnumDescriptor {
  $name: string;
  $doc?: string;
  values: string[];
}
`)
	for _, t := range ps.Types {
		b.WriteString("\n")
		if t.Documentation != "" {
			b.WriteString("/** " + t.Documentation + " */\n")
		}
		b.WriteString("export declare const " + t.Name + ": ModelDescriptor;\n")
	}
	for _, e := range ps.Enums {
		b.WriteString("\n")
		if e.Documentation != "" {
			b.WriteString("/** " + e.Documentation + " */\n")
		}
		b.WriteString("export declare const " + e.Name + ": EnumDescriptor;\n")
	}
	return b.String()
}

// renderRuntime renders the CJS or ESM module. Both call into the same
// literal builders, which is what keeps the two variants consistent.
func renderRuntime(ps *gen.ProjectedSchema, header string, esm bool) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	if !esm {
		b.WriteString(`"use strict";` + "\n")
	}
	b.WriteString(`
function model(desc) {
  desc.field = function (name) {
    for (var i = 0; i < desc.fields.length; i++) {
      if (desc.fields[i].name === name) return desc.fields[i];
    }
    return undefined;
  };
  return desc;
}
`)
	exports := make([]string, 0, len(ps.Types)+len(ps.Enums))
	for _, t := range ps.Types {
		b.WriteString("\n")
		if esm {
			b.WriteString("export ")
		}
		b.WriteString("const " + t.Name + " = model(" + modelLiteral(t) + ");\n")
		exports = append(exports, t.Name)
	}
	for _, e := range ps.Enums {
		b.WriteString("\n")
		if esm {
			b.WriteString("export ")
		}
		b.WriteString("const " + e.Name + " = " + enumLiteral(e) + ";\n")
		exports = append(exports, e.Name)
	}
	if !esm {
		b.WriteString("\nmodule.exports = { " + strings.Join(exports, ", ") + " };\n")
	}
	return b.String()
}

func modelLiteral(t *gen.ProjectedType) string {
	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString("  $name: " + quote(t.Name) + ",\n")
	if t.Documentation != "" {
		b.WriteString("  $doc: " + quote(t.Documentation) + ",\n")
	}
	b.WriteString("  $queryField: " + quote(gen.QueryFieldName(t.Name)) + ",\n")
	b.WriteString("  fields: [\n")
	for _, f := range t.Fields {
		b.WriteString("    " + fieldLiteral(f) + ",\n")
	}
	b.WriteString("  ],\n")
	b.WriteString("}")
	return b.String()
}

func fieldLiteral(f *gen.ProjectedField) string {
	var b strings.Builder
	b.WriteString("{ name: " + quote(f.Name))
	b.WriteString(", type: " + quote(f.Type.String()))
	b.WriteString(", isList: " + boolLit(f.Type.List))
	b.WriteString(", isRequired: " + boolLit(f.Type.Required))
	b.WriteString(", isId: " + boolLit(f.IsID))
	if f.Relation != nil {
		b.WriteString(", relation: { target: " + quote(f.Relation.Target) +
			", cardinality: " + quote(string(f.Relation.Cardinality)) + " }")
	}
	if f.Documentation != "" {
		b.WriteString(", documentation: " + quote(f.Documentation))
	}
	b.WriteString(" }")
	return b.String()
}

func enumLiteral(e *gen.ProjectedEnum) string {
	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString("  $name: " + quote(e.Name) + ",\n")
	if e.Documentation != "" {
		b.WriteString("  $doc: " + quote(e.Documentation) + ",\n")
	}
	values := make([]string, 0, len(e.Values))
	for _, v := range e.Values {
		values = append(values, quote(v.Name))
	}
	b.WriteString("  values: [" + strings.Join(values, ", ") + "],\n")
	b.WriteString("}")
	return b.String()
}

// quote renders a JS string literal. Go's quoting rules are a superset of
// what descriptor names and documentation need.
func quote(s string) string {
	return strconv.Quote(s)
}

func boolLit(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
