package graphql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexograph/nexograph/compiler/gen"
	"github.com/nexograph/nexograph/dmmf"
)

func renderSDL(t *testing.T, doc *dmmf.Document, opts ...gen.Option) string {
	t.Helper()
	cfg, err := gen.NewConfig(opts...)
	require.NoError(t, err)
	g, err := gen.NewGraph(doc, cfg)
	require.NoError(t, err)
	ps, err := gen.Project(g)
	require.NoError(t, err)
	sdl, err := RenderSDL(ps)
	require.NoError(t, err)
	return sdl
}

func TestRenderSDL(t *testing.T) {
	sdl := renderSDL(t, blogDocument())

	t.Run("scalar declarations come first", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(sdl, "scalar DateTime\n"))
	})
	t.Run("enum shape", func(t *testing.T) {
		assert.Contains(t, sdl, "enum Role {\n  ADMIN\n  USER\n}")
	})
	t.Run("enum description", func(t *testing.T) {
		assert.Contains(t, sdl, "\"\"\"Access level\"\"\"\nenum Role {")
	})
	t.Run("object fields", func(t *testing.T) {
		assert.Contains(t, sdl, "type User {\n  id: ID!\n  email: String!\n  joinedAt: DateTime!\n  role: Role!\n  posts: [Post!]!\n}")
	})
	t.Run("nullable and required references", func(t *testing.T) {
		assert.Contains(t, sdl, "  author: User!\n")
		assert.Contains(t, sdl, "  editor: User\n")
	})
	t.Run("declaration order follows the document", func(t *testing.T) {
		assert.Less(t, strings.Index(sdl, "enum Role"), strings.Index(sdl, "type User"))
		assert.Less(t, strings.Index(sdl, "type User"), strings.Index(sdl, "type Post"))
	})
}

func TestRenderSDLDescriptions(t *testing.T) {
	doc := &dmmf.Document{
		Models: []dmmf.Model{
			{
				Name:          "Tag",
				Documentation: "A label.\nAttached to posts.",
				Fields: []dmmf.Field{
					{Name: "id", Kind: dmmf.KindScalar, Type: "Int", IsID: true, Documentation: "Primary key"},
				},
			},
		},
	}
	sdl := renderSDL(t, doc)
	assert.Contains(t, sdl, "\"\"\"\nA label.\nAttached to posts.\n\"\"\"\ntype Tag {")
	assert.Contains(t, sdl, "  \"\"\"Primary key\"\"\"\n  id: ID!")
}

func TestRenderSDLEmptyModel(t *testing.T) {
	doc := &dmmf.Document{
		Models: []dmmf.Model{{Name: "Empty"}},
	}
	sdl := renderSDL(t, doc)
	assert.Equal(t, "type Empty\n", sdl)
}

func TestRenderSDLDeterminism(t *testing.T) {
	first := renderSDL(t, blogDocument())
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, renderSDL(t, blogDocument()))
	}
}

func TestRenderSDLUnparsable(t *testing.T) {
	doc := &dmmf.Document{
		Models: []dmmf.Model{
			{Name: "Bad Name", Fields: []dmmf.Field{
				{Name: "id", Kind: dmmf.KindScalar, Type: "Int", IsID: true},
			}},
		},
	}
	cfg, err := gen.NewConfig()
	require.NoError(t, err)
	g, err := gen.NewGraph(doc, cfg)
	require.NoError(t, err)
	ps, err := gen.Project(g)
	require.NoError(t, err)
	_, err = RenderSDL(ps)
	assert.True(t, gen.IsEmissionError(err))
}
