// Package golang renders a projected schema into Go model bindings: one
// struct per model and one string-based constant set per enum. The bindings
// mirror the emitted JavaScript descriptors and give Go callers typed access
// to records returned by a data-access client.
package golang

import (
	"bytes"

	"github.com/dave/jennifer/jen"

	"github.com/nexograph/nexograph/compiler/gen"
	"github.com/nexograph/nexograph/dmmf"
)

// Emitter renders models.go for the projected schema.
type Emitter struct{}

// Emit implements gen.Emitter.
func (Emitter) Emit(ps *gen.ProjectedSchema, cfg *gen.Config) ([]gen.Artifact, error) {
	f := jen.NewFile(cfg.Gentime.Package)
	f.HeaderComment(commentText(cfg.Gentime.Header))

	for _, e := range ps.Enums {
		emitEnum(f, e)
	}
	for _, t := range ps.Types {
		if err := emitModel(f, t); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, gen.NewEmissionError("models.go", "", "render bindings", err)
	}
	return []gen.Artifact{{Name: "models.go", Content: buf.Bytes()}}, nil
}

func emitEnum(f *jen.File, e *gen.ProjectedEnum) {
	if e.Documentation != "" {
		f.Comment(e.Name + ": " + e.Documentation)
	}
	f.Type().Id(e.Name).String()
	defs := make([]jen.Code, 0, len(e.Values))
	for _, v := range e.Values {
		defs = append(defs, jen.Id(e.Name+gen.Pascal(v.Name)).Id(e.Name).Op("=").Lit(v.Name))
	}
	f.Const().Defs(defs...)
}

func emitModel(f *jen.File, t *gen.ProjectedType) error {
	fields := make([]jen.Code, 0, len(t.Fields))
	for _, pf := range t.Fields {
		code, err := fieldCode(pf)
		if err != nil {
			return err
		}
		fields = append(fields, code)
	}
	if t.Documentation != "" {
		f.Comment(t.Name + ": " + t.Documentation)
	}
	f.Type().Id(t.Name).Struct(fields...)
	return nil
}

func fieldCode(pf *gen.ProjectedField) (jen.Code, error) {
	stmt := jen.Id(gen.Pascal(pf.Source))
	base, err := baseType(pf)
	if err != nil {
		return nil, err
	}
	switch {
	case pf.Type.List:
		stmt.Index().Add(base)
	case !pf.Type.Required && pf.Kind != dmmf.KindRelation:
		stmt.Op("*").Add(base)
	case pf.Kind == dmmf.KindRelation:
		// To-one relations are pointers so absent records stay distinguishable.
		stmt.Op("*").Add(base)
	default:
		stmt.Add(base)
	}
	tag := pf.Source
	if !pf.Type.Required {
		tag += ",omitempty"
	}
	stmt.Tag(map[string]string{"json": tag})
	return stmt, nil
}

func baseType(pf *gen.ProjectedField) (jen.Code, error) {
	switch pf.Kind {
	case dmmf.KindEnum:
		return jen.Id(pf.Type.Name), nil
	case dmmf.KindRelation:
		return jen.Id(pf.Relation.Target), nil
	case dmmf.KindScalar:
		switch pf.Type.Name {
		case "ID", "String", "Decimal":
			return jen.String(), nil
		case "Int":
			return jen.Int(), nil
		case "BigInt":
			return jen.Int64(), nil
		case "Float":
			return jen.Float64(), nil
		case "Boolean":
			return jen.Bool(), nil
		case "DateTime":
			return jen.Qual("time", "Time"), nil
		case "JSON":
			return jen.Qual("encoding/json", "RawMessage"), nil
		case "Bytes":
			return jen.Index().Byte(), nil
		}
	}
	return nil, gen.NewEmissionError("models.go", pf.Source, "unmapped field type "+pf.Type.Name, nil)
}

// commentText strips the leading comment marker; jennifer adds its own.
func commentText(header string) string {
	if len(header) > 3 && header[:3] == "// " {
		return header[3:]
	}
	return header
}
