package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexograph/nexograph/dmmf"
)

func TestNewGraph(t *testing.T) {
	t.Parallel()

	cfg := MustNewConfig()

	t.Run("indexes models and enums by name", func(t *testing.T) {
		g, err := NewGraph(blogDocument(), cfg)
		require.NoError(t, err)
		assert.NotNil(t, g.Model("User"))
		assert.NotNil(t, g.Model("Post"))
		assert.NotNil(t, g.Enum("Role"))
		assert.Nil(t, g.Model("Comment"))
	})

	t.Run("preserves declaration order", func(t *testing.T) {
		g, err := NewGraph(blogDocument(), cfg)
		require.NoError(t, err)
		require.Len(t, g.Models, 2)
		assert.Equal(t, "User", g.Models[0].Name)
		assert.Equal(t, "Post", g.Models[1].Name)
	})

	t.Run("finds the id field", func(t *testing.T) {
		g, err := NewGraph(blogDocument(), cfg)
		require.NoError(t, err)
		id := g.IDField(g.Model("User"))
		require.NotNil(t, id)
		assert.Equal(t, "id", id.Name)
	})

	t.Run("nil document fails", func(t *testing.T) {
		_, err := NewGraph(nil, cfg)
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("nil config fails", func(t *testing.T) {
		_, err := NewGraph(blogDocument(), nil)
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestNewGraphValidation(t *testing.T) {
	t.Parallel()

	cfg := MustNewConfig()

	tests := []struct {
		name  string
		doc   *dmmf.Document
		check func(error) bool
	}{
		{
			name: "duplicate model names",
			doc: &dmmf.Document{Models: []dmmf.Model{
				{Name: "User"}, {Name: "User"},
			}},
			check: IsSchemaError,
		},
		{
			name: "duplicate field names",
			doc: &dmmf.Document{Models: []dmmf.Model{{
				Name: "User",
				Fields: []dmmf.Field{
					{Name: "id", Kind: dmmf.KindScalar, Type: "Int"},
					{Name: "id", Kind: dmmf.KindScalar, Type: "String"},
				},
			}}},
			check: IsSchemaError,
		},
		{
			name: "duplicate enum members",
			doc: &dmmf.Document{Enums: []dmmf.Enum{{
				Name:   "Role",
				Values: []dmmf.EnumValue{{Name: "A"}, {Name: "A"}},
			}}},
			check: IsSchemaError,
		},
		{
			name: "scalar field without type",
			doc: &dmmf.Document{Models: []dmmf.Model{{
				Name:   "User",
				Fields: []dmmf.Field{{Name: "x", Kind: dmmf.KindScalar}},
			}}},
			check: IsSchemaError,
		},
		{
			name: "relation field without cardinality",
			doc: &dmmf.Document{Models: []dmmf.Model{{
				Name:   "User",
				Fields: []dmmf.Field{{Name: "x", Kind: dmmf.KindRelation, RelationTarget: "User"}},
			}}},
			check: IsSchemaError,
		},
		{
			name: "unknown field kind",
			doc: &dmmf.Document{Models: []dmmf.Model{{
				Name:   "User",
				Fields: []dmmf.Field{{Name: "x", Kind: "virtual"}},
			}}},
			check: IsSchemaError,
		},
		{
			name: "relation to missing model",
			doc: &dmmf.Document{Models: []dmmf.Model{{
				Name:   "User",
				Fields: []dmmf.Field{{Name: "x", Kind: dmmf.KindRelation, RelationTarget: "Ghost", RelationCardinality: dmmf.One}},
			}}},
			check: IsUnknownModelError,
		},
		{
			name: "enum reference to missing enum",
			doc: &dmmf.Document{Models: []dmmf.Model{{
				Name:   "User",
				Fields: []dmmf.Field{{Name: "x", Kind: dmmf.KindEnum, EnumName: "Ghost"}},
			}}},
			check: IsUnknownEnumError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGraph(tt.doc, cfg)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error type: %v", err)
		})
	}

	t.Run("forward references are legal", func(t *testing.T) {
		// Post is declared after User but referenced by it.
		doc := &dmmf.Document{Models: []dmmf.Model{
			{Name: "User", Fields: []dmmf.Field{
				{Name: "posts", Kind: dmmf.KindRelation, RelationTarget: "Post", RelationCardinality: dmmf.Many},
			}},
			{Name: "Post"},
		}}
		_, err := NewGraph(doc, cfg)
		assert.NoError(t, err)
	})
}
