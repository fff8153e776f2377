package graphql

import (
	"context"

	"github.com/nexograph/nexograph"
	"github.com/nexograph/nexograph/compiler/gen"
	"github.com/nexograph/nexograph/dmmf"
	"github.com/vektah/gqlparser/v2/ast"
)

// TypeKind discriminates the produced type configurations.
type TypeKind string

const (
	// KindObject is an object type configuration with field resolvers.
	KindObject TypeKind = "OBJECT"
	// KindEnum is an enum type configuration.
	KindEnum TypeKind = "ENUM"
)

// FieldResolver resolves a single field of a parent record.
type FieldResolver func(ctx context.Context, source map[string]any) (any, error)

// TypeConfig is the executable configuration for one GraphQL type.
type TypeConfig struct {
	// Kind is the type configuration kind.
	Kind TypeKind
	// Definition is the type's schema definition.
	Definition *ast.Definition
	// Resolvers maps field names to resolvers. Nil for enum configurations.
	Resolvers map[string]FieldResolver
}

// Option configures the binding adapter.
type Option func(*options)

type options struct {
	client nexograph.Client
}

// WithClient fixes the data-access client used by relation resolvers. It is
// required when Runtime.ClientSource is "direct" and ignored otherwise.
func WithClient(c nexograph.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// clientFunc resolves the data-access client for a request.
type clientFunc func(ctx context.Context) (nexograph.Client, error)

// CreateTypeConfigurations builds one type configuration per projected model
// and enum. Object configurations resolve scalar and enum fields off the
// parent record and relation fields through the data-access client selected
// by cfg.Runtime.ClientSource.
func CreateTypeConfigurations(ps *gen.ProjectedSchema, cfg *gen.Config, opts ...Option) (map[string]*TypeConfig, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	clientFor, err := resolveClientSource(cfg, &o)
	if err != nil {
		return nil, err
	}

	configs := make(map[string]*TypeConfig, len(ps.Types)+len(ps.Enums))
	for _, e := range ps.Enums {
		configs[e.Name] = &TypeConfig{
			Kind:       KindEnum,
			Definition: enumDefinition(e),
		}
	}
	for _, t := range ps.Types {
		resolvers := make(map[string]FieldResolver, len(t.Fields))
		for _, f := range t.Fields {
			resolvers[f.Name] = fieldResolver(t, f, clientFor)
		}
		configs[t.Name] = &TypeConfig{
			Kind:       KindObject,
			Definition: objectDefinition(t),
			Resolvers:  resolvers,
		}
	}
	return configs, nil
}

// resolveClientSource turns the runtime settings into a client lookup. A
// strategy that can never produce a client is rejected here rather than on
// the first request.
func resolveClientSource(cfg *gen.Config, o *options) (clientFunc, error) {
	switch cfg.Runtime.ClientSource {
	case gen.ClientSourceContext:
		key := cfg.Runtime.ContextKey
		if key == "" {
			return nil, NewBindingError("", "", "client source is context but context key is empty")
		}
		return func(ctx context.Context) (nexograph.Client, error) {
			c, ok := nexograph.FromContext(ctx, key)
			if !ok {
				return nil, &BindingError{Message: "no client on context under key " + key, Cause: nexograph.ErrNoClient}
			}
			return c, nil
		}, nil
	case gen.ClientSourceDirect:
		if o.client == nil {
			return nil, &BindingError{Message: "client source is direct but no client was supplied", Cause: nexograph.ErrNoClient}
		}
		c := o.client
		return func(context.Context) (nexograph.Client, error) {
			return c, nil
		}, nil
	default:
		return nil, NewBindingError("", "", "unknown client source "+cfg.Runtime.ClientSource)
	}
}

func fieldResolver(t *gen.ProjectedType, f *gen.ProjectedField, clientFor clientFunc) FieldResolver {
	if f.Kind == dmmf.KindRelation {
		if f.Relation.Cardinality == dmmf.Many {
			return toManyResolver(t, f, clientFor)
		}
		return toOneResolver(f, clientFor)
	}
	source := f.Source
	return func(_ context.Context, parent map[string]any) (any, error) {
		return normalizeValue(parent[source]), nil
	}
}

// toOneResolver fetches the related record by the conventional foreign key
// column <source>Id. A preloaded value on the parent short-circuits the
// lookup.
func toOneResolver(f *gen.ProjectedField, clientFor clientFunc) FieldResolver {
	target := f.Relation.Target
	fk := f.Source + "Id"
	required := f.Type.Required
	return func(ctx context.Context, parent map[string]any) (any, error) {
		if v, ok := parent[f.Source]; ok && v != nil {
			return v, nil
		}
		id, ok := parent[fk]
		if !ok || id == nil {
			if required {
				return nil, nexograph.NewNotFoundError(target)
			}
			return nil, nil
		}
		client, err := clientFor(ctx)
		if err != nil {
			return nil, err
		}
		where := map[string]any{"id": id}
		rec, err := client.FindUnique(ctx, target, where)
		if err != nil {
			if nexograph.IsNotFound(err) && !required {
				return nil, nil
			}
			return nil, err
		}
		if rec == nil {
			if required {
				return nil, nexograph.NewNotFoundErrorWhere(target, where)
			}
			return nil, nil
		}
		return rec, nil
	}
}

// toManyResolver lists related records keyed by the parent's conventional
// foreign key column <camel(parent)>Id.
func toManyResolver(t *gen.ProjectedType, f *gen.ProjectedField, clientFor clientFunc) FieldResolver {
	target := f.Relation.Target
	fk := gen.Camel(t.Name) + "Id"
	idSource := idSourceOf(t)
	return func(ctx context.Context, parent map[string]any) (any, error) {
		if v, ok := parent[f.Source]; ok && v != nil {
			return v, nil
		}
		client, err := clientFor(ctx)
		if err != nil {
			return nil, err
		}
		recs, err := client.FindMany(ctx, target, map[string]any{fk: parent[idSource]})
		if err != nil {
			return nil, err
		}
		if recs == nil {
			recs = []map[string]any{}
		}
		return recs, nil
	}
}

// idSourceOf returns the source column of the model's ID field, defaulting
// to "id" for models without one.
func idSourceOf(t *gen.ProjectedType) string {
	for _, f := range t.Fields {
		if f.IsID {
			return f.Source
		}
	}
	return "id"
}
