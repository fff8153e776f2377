package gen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Naming strategies for projected field names.
const (
	// NamingPreserve keeps field names exactly as declared in the data model.
	NamingPreserve = "preserve"
	// NamingCamel converts field names to lowerCamelCase.
	NamingCamel = "camel"
)

// Client source strategies for generated relation resolvers.
const (
	// ClientSourceContext reads the data-access client off the request
	// context under the configured context key.
	ClientSourceContext = "context"
	// ClientSourceDirect uses a client handed to the binding adapter at
	// configuration time.
	ClientSourceDirect = "direct"
)

// GentimeConfig controls naming and output shape of a generation run.
// It is resolved once per run and never mutated afterward.
type GentimeConfig struct {
	// Package is the namespace of the emitted modules.
	Package string `yaml:"package"`
	// Target is the output directory for emitted artifacts.
	Target string `yaml:"target"`
	// Header is the comment placed at the top of each emitted module.
	Header string `yaml:"header"`
	// IDMapping projects ID-flagged fields to the GraphQL ID type.
	IDMapping bool `yaml:"id_mapping"`
	// Naming selects the projected field-name strategy.
	Naming string `yaml:"naming"`
	// GoBindings enables the supplemental Go struct emitter.
	GoBindings bool `yaml:"go_bindings"`
}

// RuntimeConfig controls how generated resolvers locate the data-access
// client at request time.
type RuntimeConfig struct {
	// ClientSource selects the client lookup strategy.
	ClientSource string `yaml:"client_source"`
	// ContextKey names the context entry holding the client when
	// ClientSource is "context".
	ContextKey string `yaml:"context_key"`
}

// Config is the resolved settings value threaded through the whole pipeline.
// Generation-time and runtime settings are disjoint namespaces; they never
// merge with each other.
type Config struct {
	Gentime GentimeConfig `yaml:"gentime"`
	Runtime RuntimeConfig `yaml:"runtime"`
}

// DefaultConfig returns a fresh settings value with the documented defaults.
// Every generation run builds its own value; there is no process-wide
// default store to leak state between runs.
func DefaultConfig() *Config {
	return &Config{
		Gentime: GentimeConfig{
			Package:   "nexograph",
			Target:    "generated",
			Header:    "// Code generated by nexograph. DO NOT EDIT.",
			IDMapping: true,
			Naming:    NamingPreserve,
		},
		Runtime: RuntimeConfig{
			ClientSource: ClientSourceContext,
			ContextKey:   "nexograph:client",
		},
	}
}

// Resolve merges user overrides over a fresh default value. Explicit
// overrides always win over defaults. Unrecognized keys fail with a
// ConfigError rather than being ignored.
func Resolve(gentime, runtime map[string]any) (*Config, error) {
	c := DefaultConfig()
	for key, val := range gentime {
		if err := c.applyGentime(key, val); err != nil {
			return nil, err
		}
	}
	for key, val := range runtime {
		if err := c.applyRuntime(key, val); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyGentime(key string, val any) error {
	switch key {
	case "package":
		return assignString(key, val, &c.Gentime.Package)
	case "target":
		return assignString(key, val, &c.Gentime.Target)
	case "header":
		return assignString(key, val, &c.Gentime.Header)
	case "id_mapping":
		return assignBool(key, val, &c.Gentime.IDMapping)
	case "naming":
		return assignString(key, val, &c.Gentime.Naming)
	case "go_bindings":
		return assignBool(key, val, &c.Gentime.GoBindings)
	default:
		return NewConfigError(key, val, "unrecognized gentime option")
	}
}

func (c *Config) applyRuntime(key string, val any) error {
	switch key {
	case "client_source":
		return assignString(key, val, &c.Runtime.ClientSource)
	case "context_key":
		return assignString(key, val, &c.Runtime.ContextKey)
	default:
		return NewConfigError(key, val, "unrecognized runtime option")
	}
}

func assignString(key string, val any, dst *string) error {
	s, ok := val.(string)
	if !ok {
		return NewConfigError(key, val, "expected a string value")
	}
	*dst = s
	return nil
}

func assignBool(key string, val any, dst *bool) error {
	b, ok := val.(bool)
	if !ok {
		return NewConfigError(key, val, "expected a boolean value")
	}
	*dst = b
	return nil
}

// Validate checks the resolved settings for internally-consistent values.
func (c *Config) Validate() error {
	switch c.Gentime.Naming {
	case NamingPreserve, NamingCamel:
	default:
		return NewConfigError("naming", c.Gentime.Naming, "unsupported naming strategy; use preserve or camel")
	}
	switch c.Runtime.ClientSource {
	case ClientSourceContext, ClientSourceDirect:
	default:
		return NewConfigError("client_source", c.Runtime.ClientSource, "unsupported client source; use context or direct")
	}
	if c.Gentime.Package == "" {
		return NewConfigError("package", nil, "package cannot be empty")
	}
	if c.Gentime.Target == "" {
		return NewConfigError("target", nil, "target directory cannot be empty")
	}
	return nil
}

// configFile mirrors the on-disk settings layout. Values are decoded into
// untyped maps so Resolve can reject unrecognized keys.
type configFile struct {
	Gentime map[string]any `yaml:"gentime"`
	Runtime map[string]any `yaml:"runtime"`
}

// LoadConfigFile reads a yaml settings file and resolves it against the
// defaults. A missing file resolves to the plain defaults.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Resolve(nil, nil)
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	var f configFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, NewConfigError(path, nil, "parse settings file: "+err.Error())
	}
	return Resolve(f.Gentime, f.Runtime)
}
