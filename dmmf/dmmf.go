// Package dmmf holds the in-memory representation of a Prisma data-model
// document: models, fields, enums, and their documentation. The document is
// read-only input to the projection pipeline; this package decodes it but
// performs no validation — reference checking belongs to compiler/gen.
package dmmf

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// FieldKind discriminates the three field variants of the data model.
type FieldKind string

const (
	// KindScalar marks a field of a built-in scalar type.
	KindScalar FieldKind = "scalar"
	// KindEnum marks a field referencing an enum declared in the same document.
	KindEnum FieldKind = "enum"
	// KindRelation marks a field referencing another model.
	KindRelation FieldKind = "relation"
)

// Cardinality describes the arity of a relation field.
type Cardinality string

const (
	// One is a to-one relation.
	One Cardinality = "one"
	// Many is a to-many relation.
	Many Cardinality = "many"
)

// Document is the root of a data-model document.
type Document struct {
	Models []Model `json:"models"`
	Enums  []Enum  `json:"enums"`
}

// Model is a named entity with an ordered set of uniquely-named fields.
type Model struct {
	Name          string  `json:"name"`
	Documentation string  `json:"documentation,omitempty"`
	Fields        []Field `json:"fields"`
}

// Field belongs to exactly one model. The Kind determines which of the
// variant members are meaningful: Type for scalars, EnumName for enum
// references, RelationTarget and RelationCardinality for relations.
type Field struct {
	Name          string    `json:"name"`
	Kind          FieldKind `json:"kind"`
	Type          string    `json:"type,omitempty"`
	Nullable      bool      `json:"nullable"`
	List          bool      `json:"list"`
	IsID          bool      `json:"isId,omitempty"`
	Documentation string    `json:"documentation,omitempty"`

	EnumName            string      `json:"enumName,omitempty"`
	RelationTarget      string      `json:"relationTarget,omitempty"`
	RelationCardinality Cardinality `json:"relationCardinality,omitempty"`
}

// IsScalar reports whether the field is a scalar field.
func (f Field) IsScalar() bool { return f.Kind == KindScalar }

// IsEnum reports whether the field references an enum.
func (f Field) IsEnum() bool { return f.Kind == KindEnum }

// IsRelation reports whether the field references another model.
func (f Field) IsRelation() bool { return f.Kind == KindRelation }

// Enum is a named entity with an ordered set of uniquely-named members.
type Enum struct {
	Name          string      `json:"name"`
	Documentation string      `json:"documentation,omitempty"`
	Values        []EnumValue `json:"values"`
}

// EnumValue is a single enum member.
type EnumValue struct {
	Name          string `json:"name"`
	Documentation string `json:"documentation,omitempty"`
}

// Decode reads a JSON data-model document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("dmmf: decode document: %w", err)
	}
	return &doc, nil
}

// ReadFile reads and decodes a JSON data-model document from path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dmmf: open document: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Model returns the model with the given name, or nil if absent.
func (d *Document) Model(name string) *Model {
	for i := range d.Models {
		if d.Models[i].Name == name {
			return &d.Models[i]
		}
	}
	return nil
}

// Enum returns the enum with the given name, or nil if absent.
func (d *Document) Enum(name string) *Enum {
	for i := range d.Enums {
		if d.Enums[i].Name == name {
			return &d.Enums[i]
		}
	}
	return nil
}
