package gen

import (
	"github.com/nexograph/nexograph/dmmf"
)

// Graph is the validated view of a data-model document. It indexes models
// and enums by name so relation and enum references resolve by lookup, never
// by recursive expansion; self-referencing relations are therefore legal.
type Graph struct {
	Config *Config

	// Models and Enums preserve the document's declared order.
	Models []*dmmf.Model
	Enums  []*dmmf.Enum

	models map[string]*dmmf.Model
	enums  map[string]*dmmf.Enum
}

// NewGraph validates the document against the data-model invariants and
// returns its indexed view. Validation is all-or-nothing: the first
// violation fails the whole build.
func NewGraph(doc *dmmf.Document, cfg *Config) (*Graph, error) {
	if doc == nil {
		return nil, NewSchemaError("", "", "nil document", nil)
	}
	if cfg == nil {
		return nil, NewConfigError("config", nil, "nil config; call gen.NewConfig or gen.Resolve first")
	}
	g := &Graph{
		Config: cfg,
		models: make(map[string]*dmmf.Model, len(doc.Models)),
		enums:  make(map[string]*dmmf.Enum, len(doc.Enums)),
	}
	for i := range doc.Enums {
		e := &doc.Enums[i]
		if e.Name == "" {
			return nil, NewSchemaError("", "", "enum with empty name", nil)
		}
		if _, ok := g.enums[e.Name]; ok {
			return nil, NewSchemaError("", "", "duplicate enum name "+e.Name, nil)
		}
		seen := make(map[string]bool, len(e.Values))
		for _, v := range e.Values {
			if v.Name == "" {
				return nil, NewSchemaError("", "", "enum "+e.Name+" has a member with empty name", nil)
			}
			if seen[v.Name] {
				return nil, NewSchemaError("", "", "enum "+e.Name+" has duplicate member "+v.Name, nil)
			}
			seen[v.Name] = true
		}
		g.enums[e.Name] = e
		g.Enums = append(g.Enums, e)
	}
	for i := range doc.Models {
		m := &doc.Models[i]
		if m.Name == "" {
			return nil, NewSchemaError("", "", "model with empty name", nil)
		}
		if _, ok := g.models[m.Name]; ok {
			return nil, NewSchemaError(m.Name, "", "duplicate model name", nil)
		}
		if err := validateFields(m); err != nil {
			return nil, err
		}
		g.models[m.Name] = m
		g.Models = append(g.Models, m)
	}
	// Reference checks run after both indexes exist so declaration order
	// between referrer and referent does not matter.
	for _, m := range g.Models {
		for _, f := range m.Fields {
			switch f.Kind {
			case dmmf.KindEnum:
				if _, ok := g.enums[f.EnumName]; !ok {
					return nil, NewUnknownEnumError(m.Name, f.Name, f.EnumName)
				}
			case dmmf.KindRelation:
				if _, ok := g.models[f.RelationTarget]; !ok {
					return nil, NewUnknownModelError(m.Name, f.Name, f.RelationTarget)
				}
			}
		}
	}
	return g, nil
}

func validateFields(m *dmmf.Model) error {
	seen := make(map[string]bool, len(m.Fields))
	for _, f := range m.Fields {
		if f.Name == "" {
			return NewSchemaError(m.Name, "", "field with empty name", nil)
		}
		if seen[f.Name] {
			return NewSchemaError(m.Name, f.Name, "duplicate field name", nil)
		}
		seen[f.Name] = true
		switch f.Kind {
		case dmmf.KindScalar:
			if f.Type == "" {
				return NewSchemaError(m.Name, f.Name, "scalar field without a type", nil)
			}
		case dmmf.KindEnum:
			if f.EnumName == "" {
				return NewSchemaError(m.Name, f.Name, "enum field without an enum name", nil)
			}
		case dmmf.KindRelation:
			if f.RelationTarget == "" {
				return NewSchemaError(m.Name, f.Name, "relation field without a target", nil)
			}
			switch f.RelationCardinality {
			case dmmf.One, dmmf.Many:
			default:
				return NewSchemaError(m.Name, f.Name, "relation field without a cardinality", nil)
			}
		default:
			return NewSchemaError(m.Name, f.Name, "unknown field kind "+string(f.Kind), nil)
		}
	}
	return nil
}

// Model returns the model with the given name, or nil if absent.
func (g *Graph) Model(name string) *dmmf.Model {
	return g.models[name]
}

// Enum returns the enum with the given name, or nil if absent.
func (g *Graph) Enum(name string) *dmmf.Enum {
	return g.enums[name]
}

// IDField returns the ID-flagged field of a model, or nil if it has none.
func (g *Graph) IDField(m *dmmf.Model) *dmmf.Field {
	for i := range m.Fields {
		if m.Fields[i].IsID {
			return &m.Fields[i]
		}
	}
	return nil
}
