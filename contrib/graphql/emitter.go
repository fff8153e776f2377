package graphql

import (
	"gopkg.in/yaml.v3"

	"github.com/nexograph/nexograph/compiler/gen"
)

// SchemaEmitter plugs SDL rendering into the code-generation pipeline. It
// emits schema.graphql, and a gqlgen.yml binding file when a model package
// is configured.
type SchemaEmitter struct {
	filename     string
	modelPackage string
	gqlgenFile   string
}

// SchemaOption configures the SchemaEmitter.
type SchemaOption func(*SchemaEmitter)

// WithSchemaFilename overrides the emitted schema file name.
func WithSchemaFilename(name string) SchemaOption {
	return func(e *SchemaEmitter) {
		e.filename = name
	}
}

// WithGQLGen enables gqlgen.yml emission, autobinding the given Go model
// package.
func WithGQLGen(modelPackage string) SchemaOption {
	return func(e *SchemaEmitter) {
		e.modelPackage = modelPackage
		e.gqlgenFile = "gqlgen.yml"
	}
}

// NewSchemaEmitter creates a SchemaEmitter with the given options.
func NewSchemaEmitter(opts ...SchemaOption) *SchemaEmitter {
	e := &SchemaEmitter{filename: "schema.graphql"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit implements gen.Emitter.
func (e *SchemaEmitter) Emit(ps *gen.ProjectedSchema, _ *gen.Config) ([]gen.Artifact, error) {
	sdl, err := RenderSDL(ps)
	if err != nil {
		return nil, err
	}
	artifacts := []gen.Artifact{
		{Name: e.filename, Content: []byte(sdl + "\n")},
	}
	if e.gqlgenFile != "" {
		cfg := &GQLGenConfig{}
		cfg.InjectBindings(e.modelPackage, e.filename)
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, gen.NewEmissionError(e.gqlgenFile, "", "marshal gqlgen config", err)
		}
		artifacts = append(artifacts, gen.Artifact{Name: e.gqlgenFile, Content: data})
	}
	return artifacts, nil
}
