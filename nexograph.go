// Package nexograph is the runtime contract between generated GraphQL
// bindings and the data-access layer that backs them.
//
// The code generator (compiler/gen and contrib/graphql) projects a Prisma
// data-model document into GraphQL type configurations whose field resolvers
// read records through the Client interface defined here. The package holds
// no generation logic itself; it exists so generated resolvers and user
// applications can share one small, dependency-free surface.
package nexograph

import "context"

// Client is the request-scoped data-access interface used by generated
// relation resolvers. Implementations are expected to be safe for concurrent
// use; every method receives the model name the lookup is scoped to.
//
// Records are plain maps keyed by field name. The binding layer never
// inspects values beyond the fields declared in the data model.
type Client interface {
	// FindUnique returns the single record of the given model matching the
	// where conditions, or an error wrapping ErrNotFound if none exists.
	FindUnique(ctx context.Context, model string, where map[string]any) (map[string]any, error)

	// FindMany returns all records of the given model matching the where
	// conditions, preserving the store's natural ordering.
	FindMany(ctx context.Context, model string, where map[string]any) ([]map[string]any, error)
}

// clientKey is the context key type for Client values. The configured key
// name participates in equality, so multiple clients can coexist in one
// context under different names.
type clientKey struct{ name string }

// NewContext returns a new context carrying the client under the given key
// name. The key name comes from the resolved runtime settings and must match
// the one the generated resolvers were configured with.
func NewContext(ctx context.Context, key string, c Client) context.Context {
	return context.WithValue(ctx, clientKey{name: key}, c)
}

// FromContext returns the client stored under the given key name.
func FromContext(ctx context.Context, key string) (Client, bool) {
	c, ok := ctx.Value(clientKey{name: key}).(Client)
	return c, ok
}
