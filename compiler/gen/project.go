package gen

import (
	"strings"

	"github.com/nexograph/nexograph/dmmf"
)

// TypeRef is the GraphQL-facing type of a single projected field. Nullability
// and list-ness are orthogonal flags; String renders the four combinations as
// distinct GraphQL type strings.
type TypeRef struct {
	// Name is the named GraphQL type (scalar, enum, or object type).
	Name string
	// List marks the type as a list of the named type.
	List bool
	// Required marks the type as non-null.
	Required bool
}

// String renders the GraphQL type string: T, T!, [T], or [T!]!.
func (r TypeRef) String() string {
	if r.List {
		if r.Required {
			return "[" + r.Name + "!]!"
		}
		return "[" + r.Name + "]"
	}
	if r.Required {
		return r.Name + "!"
	}
	return r.Name
}

// RelationRef carries the target and cardinality of a projected relation
// field. The target is resolved by name against the same projected schema.
type RelationRef struct {
	Target      string
	Cardinality dmmf.Cardinality
}

// ProjectedField is the GraphQL-facing shape of one model field.
type ProjectedField struct {
	// Name is the projected field name after the naming strategy.
	Name string
	// Source is the field name as declared in the data model; resolvers read
	// record values under this key.
	Source string
	// Kind is the source field kind.
	Kind dmmf.FieldKind
	// Type is the projected GraphQL type.
	Type TypeRef
	// IsID marks the model's identifier field.
	IsID bool
	// Relation is set for relation fields only.
	Relation *RelationRef
	// Documentation is the trimmed documentation text, if any.
	Documentation string
}

// ProjectedType is the GraphQL object type projected from one model.
type ProjectedType struct {
	Name          string
	Documentation string
	// Fields preserves the model's declared field order end to end.
	Fields []*ProjectedField

	fields map[string]*ProjectedField
}

// Field returns the projected field with the given (projected) name, or nil
// if absent. This is the accessor the binding layer resolves fields through.
func (t *ProjectedType) Field(name string) *ProjectedField {
	return t.fields[name]
}

// ProjectedEnumValue is a single projected enum member.
type ProjectedEnumValue struct {
	Name          string
	Documentation string
}

// ProjectedEnum is the GraphQL enum type projected from one source enum.
type ProjectedEnum struct {
	Name          string
	Documentation string
	// Values preserves the declared member order.
	Values []ProjectedEnumValue
}

// ProjectedSchema is the full projection of one data-model document: one
// object type per model and one enum type per enum, plus name indexes that
// let relation fields resolve their target type by lookup.
type ProjectedSchema struct {
	Types []*ProjectedType
	Enums []*ProjectedEnum
	// Scalars lists the non-built-in scalar type names the projection uses,
	// in order of first use. SDL rendering declares them up front.
	Scalars []string

	types map[string]*ProjectedType
	enums map[string]*ProjectedEnum
}

// Type returns the projected object type with the given name, or nil.
func (s *ProjectedSchema) Type(name string) *ProjectedType {
	return s.types[name]
}

// Enum returns the projected enum type with the given name, or nil.
func (s *ProjectedSchema) Enum(name string) *ProjectedEnum {
	return s.enums[name]
}

// scalarTypes is the fixed lookup table from data-model scalar names to
// GraphQL type names.
var scalarTypes = map[string]string{
	"String":   "String",
	"Int":      "Int",
	"Float":    "Float",
	"Boolean":  "Boolean",
	"DateTime": "DateTime",
	"Json":     "JSON",
	"BigInt":   "BigInt",
	"Decimal":  "Decimal",
	"Bytes":    "Bytes",
}

// builtinScalars are part of the GraphQL spec and need no scalar declaration.
var builtinScalars = map[string]bool{
	"String":  true,
	"Int":     true,
	"Float":   true,
	"Boolean": true,
	"ID":      true,
}

// Project computes the GraphQL-facing shape of every enum and model in the
// graph. It is a pure function of the graph and its resolved settings: the
// same inputs always produce a structurally identical schema, and nothing is
// cached across runs. Enums are projected first so enum references resolve
// within the same pass.
func Project(g *Graph) (*ProjectedSchema, error) {
	ps := &ProjectedSchema{
		types: make(map[string]*ProjectedType, len(g.Models)),
		enums: make(map[string]*ProjectedEnum, len(g.Enums)),
	}
	seenScalar := make(map[string]bool)

	for _, e := range g.Enums {
		pe := &ProjectedEnum{
			Name:          e.Name,
			Documentation: strings.TrimSpace(e.Documentation),
			Values:        make([]ProjectedEnumValue, 0, len(e.Values)),
		}
		for _, v := range e.Values {
			pe.Values = append(pe.Values, ProjectedEnumValue{
				Name:          v.Name,
				Documentation: strings.TrimSpace(v.Documentation),
			})
		}
		ps.Enums = append(ps.Enums, pe)
		ps.enums[e.Name] = pe
	}

	for _, m := range g.Models {
		pt := &ProjectedType{
			Name:          m.Name,
			Documentation: strings.TrimSpace(m.Documentation),
			Fields:        make([]*ProjectedField, 0, len(m.Fields)),
			fields:        make(map[string]*ProjectedField, len(m.Fields)),
		}
		for i := range m.Fields {
			f := &m.Fields[i]
			pf, err := projectField(g, ps, m, f)
			if err != nil {
				return nil, err
			}
			if f.IsScalar() && !builtinScalars[pf.Type.Name] && !seenScalar[pf.Type.Name] {
				seenScalar[pf.Type.Name] = true
				ps.Scalars = append(ps.Scalars, pf.Type.Name)
			}
			// The naming strategy can map distinct source fields onto one
			// projected name; a collision would drop a field from the name
			// index, the resolver map, and consumers of the emitted schema.
			if prev, ok := pt.fields[pf.Name]; ok {
				return nil, NewSchemaError(m.Name, f.Name,
					"projected name "+pf.Name+" collides with field "+prev.Source, nil)
			}
			pt.Fields = append(pt.Fields, pf)
			pt.fields[pf.Name] = pf
		}
		ps.Types = append(ps.Types, pt)
		ps.types[m.Name] = pt
	}
	return ps, nil
}

func projectField(g *Graph, ps *ProjectedSchema, m *dmmf.Model, f *dmmf.Field) (*ProjectedField, error) {
	pf := &ProjectedField{
		Name:          projectedName(g.Config, f.Name),
		Source:        f.Name,
		Kind:          f.Kind,
		IsID:          f.IsID,
		Documentation: strings.TrimSpace(f.Documentation),
	}
	ref := TypeRef{List: f.List, Required: !f.Nullable}
	switch f.Kind {
	case dmmf.KindScalar:
		if f.IsID && g.Config.Gentime.IDMapping {
			ref.Name = "ID"
			break
		}
		name, ok := scalarTypes[f.Type]
		if !ok {
			return nil, NewSchemaError(m.Name, f.Name, "unmapped scalar type "+f.Type, nil)
		}
		ref.Name = name
	case dmmf.KindEnum:
		// The graph already rejects dangling enum references; the same check
		// runs here against the current pass so Project stands alone.
		if _, ok := ps.enums[f.EnumName]; !ok {
			return nil, NewUnknownEnumError(m.Name, f.Name, f.EnumName)
		}
		ref.Name = f.EnumName
	case dmmf.KindRelation:
		if g.Model(f.RelationTarget) == nil {
			return nil, NewUnknownModelError(m.Name, f.Name, f.RelationTarget)
		}
		ref.Name = f.RelationTarget
		if f.RelationCardinality == dmmf.Many {
			ref.List = true
		}
		pf.Relation = &RelationRef{
			Target:      f.RelationTarget,
			Cardinality: f.RelationCardinality,
		}
	default:
		return nil, NewSchemaError(m.Name, f.Name, "unknown field kind "+string(f.Kind), nil)
	}
	pf.Type = ref
	return pf, nil
}
