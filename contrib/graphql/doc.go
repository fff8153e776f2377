// Package graphql turns a projected nexograph schema into GraphQL type
// configurations and a schema document (SDL) for use with gqlparser and
// gqlgen.
//
// The adapter produces one configuration per model and enum. Object type
// configurations carry the type's AST definition together with field
// resolvers: scalar and enum fields resolve off the parent record, relation
// fields fetch through a nexograph.Client obtained from the request context
// (or a fixed client supplied with WithClient).
//
// # Usage
//
//	cfg, err := gen.NewConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, err := gen.NewGraph(doc, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ps, err := gen.Project(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	types, err := graphql.CreateTypeConfigurations(ps, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The request handler stores the per-request client on the context under the
// configured key:
//
//	ctx = nexograph.NewContext(ctx, cfg.Runtime.ContextKey, client)
//
// RenderSDL renders the matching schema document, and SchemaEmitter plugs the
// rendering into the code-generation pipeline so schema.graphql (and
// optionally gqlgen.yml) land next to the emitted modules.
package graphql
