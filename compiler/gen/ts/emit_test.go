package ts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/nexograph/nexograph/compiler/gen"
	"github.com/nexograph/nexograph/compiler/gen/ts"
	"github.com/nexograph/nexograph/dmmf"
)

func tagDocument() *dmmf.Document {
	return &dmmf.Document{
		Models: []dmmf.Model{{
			Name: "Tag",
			Fields: []dmmf.Field{
				{Name: "id", Kind: dmmf.KindScalar, Type: "Int", IsID: true},
				{Name: "name", Kind: dmmf.KindScalar, Type: "String", Documentation: "Display name"},
			},
		}},
		Enums: []dmmf.Enum{{
			Name:          "Color",
			Documentation: "Palette",
			Values:        []dmmf.EnumValue{{Name: "RED"}, {Name: "GREEN"}},
		}},
	}
}

func emit(t *testing.T, doc *dmmf.Document, opts ...gen.Option) *ts.Modules {
	t.Helper()
	cfg := gen.MustNewConfig(opts...)
	g, err := gen.NewGraph(doc, cfg)
	require.NoError(t, err)
	ps, err := gen.Project(g)
	require.NoError(t, err)
	m, err := ts.Emit(ps, cfg)
	require.NoError(t, err)
	return m
}

func TestEmitGolden(t *testing.T) {
	t.Parallel()

	ar, err := txtar.ParseFile("testdata/modules.txtar")
	require.NoError(t, err)
	golden := make(map[string]string, len(ar.Files))
	for _, f := range ar.Files {
		golden[f.Name] = string(f.Data)
	}

	m := emit(t, tagDocument())
	assert.Equal(t, golden["index.d.ts"], m.Declaration)
	assert.Equal(t, golden["index.js"], m.CJS)
	assert.Equal(t, golden["index.mjs"], m.ESM)
}

func TestEmitConsistency(t *testing.T) {
	t.Parallel()

	doc := &dmmf.Document{
		Models: []dmmf.Model{
			{Name: "User", Fields: []dmmf.Field{
				{Name: "id", Kind: dmmf.KindScalar, Type: "Int", IsID: true},
				{Name: "posts", Kind: dmmf.KindRelation, RelationTarget: "Post", RelationCardinality: dmmf.Many},
			}},
			{Name: "Post", Fields: []dmmf.Field{
				{Name: "id", Kind: dmmf.KindScalar, Type: "Int", IsID: true},
				{Name: "author", Kind: dmmf.KindRelation, RelationTarget: "User", RelationCardinality: dmmf.One},
			}},
		},
	}
	m := emit(t, doc)

	t.Run("same exports in declaration and both runtimes", func(t *testing.T) {
		for _, name := range []string{"User", "Post"} {
			assert.Contains(t, m.Declaration, "export declare const "+name)
			assert.Contains(t, m.CJS, "const "+name+" = model(")
			assert.Contains(t, m.ESM, "export const "+name+" = model(")
		}
	})

	t.Run("runtime bodies are identical up to the module system", func(t *testing.T) {
		cjs := strings.ReplaceAll(m.CJS, `"use strict";`+"\n", "")
		cjs = strings.ReplaceAll(cjs, "const ", "export const ")
		cjs = strings.TrimSuffix(cjs, "\nmodule.exports = { User, Post };\n")
		assert.Equal(t, m.ESM, cjs)
	})

	t.Run("query field name is the camel plural of the model", func(t *testing.T) {
		assert.Contains(t, m.CJS, `$queryField: "users"`)
		assert.Contains(t, m.ESM, `$queryField: "posts"`)
	})

	t.Run("relation fields carry target and cardinality", func(t *testing.T) {
		assert.Contains(t, m.CJS, `relation: { target: "Post", cardinality: "many" }`)
		assert.Contains(t, m.CJS, `relation: { target: "User", cardinality: "one" }`)
	})

	t.Run("type strings carry nullability and list-ness", func(t *testing.T) {
		assert.Contains(t, m.CJS, `type: "[Post!]!"`)
		assert.Contains(t, m.CJS, `type: "User!"`)
	})
}

func TestEmitDeterminism(t *testing.T) {
	t.Parallel()

	a := emit(t, tagDocument())
	b := emit(t, tagDocument())
	assert.Equal(t, a, b, "two runs over the same inputs are byte-identical")
}

func TestEmitReservedNames(t *testing.T) {
	t.Parallel()

	cfg := gen.MustNewConfig()

	t.Run("reserved model name fails", func(t *testing.T) {
		doc := &dmmf.Document{Models: []dmmf.Model{{Name: "default"}}}
		g, err := gen.NewGraph(doc, cfg)
		require.NoError(t, err)
		ps, err := gen.Project(g)
		require.NoError(t, err)

		_, err = ts.Emit(ps, cfg)
		require.Error(t, err)
		assert.True(t, gen.IsEmissionError(err))
		assert.ErrorIs(t, err, gen.ErrEmissionFailed)
	})

	t.Run("model and enum sharing a name fails", func(t *testing.T) {
		doc := &dmmf.Document{
			Models: []dmmf.Model{{Name: "Status"}},
			Enums:  []dmmf.Enum{{Name: "Status", Values: []dmmf.EnumValue{{Name: "OK"}}}},
		}
		g, err := gen.NewGraph(doc, cfg)
		require.NoError(t, err)
		ps, err := gen.Project(g)
		require.NoError(t, err)

		_, err = ts.Emit(ps, cfg)
		require.Error(t, err)
		assert.True(t, gen.IsEmissionError(err))
	})
}

func TestEmitEmptyModel(t *testing.T) {
	t.Parallel()

	doc := &dmmf.Document{Models: []dmmf.Model{{Name: "Empty"}}}
	m := emit(t, doc)

	// The emitter does not suppress zero-field models.
	assert.Contains(t, m.CJS, `$name: "Empty"`)
	assert.Contains(t, m.CJS, "fields: [\n  ],")
}
