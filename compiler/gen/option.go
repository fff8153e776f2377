package gen

import "errors"

// Option configures a generation run.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each emitted module.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Gentime.Header = header
		return nil
	}
}

// WithPackage sets the namespace of the emitted modules.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("package", nil, "package cannot be empty")
		}
		c.Gentime.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory for emitted artifacts.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("target", nil, "target directory cannot be empty")
		}
		c.Gentime.Target = dir
		return nil
	}
}

// WithIDMapping controls whether ID-flagged fields project to the GraphQL ID
// type instead of their declared scalar.
func WithIDMapping(enabled bool) Option {
	return func(c *Config) error {
		c.Gentime.IDMapping = enabled
		return nil
	}
}

// WithNaming sets the projected field-name strategy.
// Supported strategies: "preserve", "camel".
func WithNaming(strategy string) Option {
	return func(c *Config) error {
		switch strategy {
		case NamingPreserve, NamingCamel:
			c.Gentime.Naming = strategy
			return nil
		default:
			return NewConfigError("naming", strategy, "unsupported naming strategy; use preserve or camel")
		}
	}
}

// WithGoBindings enables the supplemental Go struct emitter.
func WithGoBindings(enabled bool) Option {
	return func(c *Config) error {
		c.Gentime.GoBindings = enabled
		return nil
	}
}

// WithClientSource sets the client lookup strategy for generated resolvers.
// Supported sources: "context", "direct".
func WithClientSource(source string) Option {
	return func(c *Config) error {
		switch source {
		case ClientSourceContext, ClientSourceDirect:
			c.Runtime.ClientSource = source
			return nil
		default:
			return NewConfigError("client_source", source, "unsupported client source; use context or direct")
		}
	}
}

// WithContextKey names the context entry holding the client when the client
// source is "context".
func WithContextKey(key string) Option {
	return func(c *Config) error {
		if key == "" {
			return NewConfigError("context_key", nil, "context key cannot be empty")
		}
		c.Runtime.ContextKey = key
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig builds a fresh default settings value and applies the given
// options to it.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig builds a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
