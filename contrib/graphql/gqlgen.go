package graphql

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// GQLGenConfig represents the subset of gqlgen.yml configuration the adapter
// reads and updates for model bindings.
type GQLGenConfig struct {
	// SchemaFilename is the path(s) to the GraphQL schema file(s).
	SchemaFilename StringList `yaml:"schema,omitempty"`

	// Exec configures the generated executor.
	Exec ExecConfig `yaml:"exec,omitempty"`

	// Model configures the generated models.
	Model ModelConfig `yaml:"model,omitempty"`

	// Autobind is a list of packages to autobind types from.
	Autobind []string `yaml:"autobind,omitempty"`

	// Models is a map of GraphQL type name to model configuration.
	Models map[string]TypeMapEntry `yaml:"models,omitempty"`
}

// ExecConfig configures the executor generation.
type ExecConfig struct {
	Filename string `yaml:"filename,omitempty"`
	Package  string `yaml:"package,omitempty"`
}

// ModelConfig configures the model generation.
type ModelConfig struct {
	Filename string `yaml:"filename,omitempty"`
	Package  string `yaml:"package,omitempty"`
}

// TypeMapEntry is the configuration for a single GraphQL type.
type TypeMapEntry struct {
	// Model is the Go model(s) to bind to this GraphQL type.
	Model StringList `yaml:"model,omitempty"`
}

// StringList is a YAML type that can be either a string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("expected string or list, got %v", node.Kind)
	}
}

// MarshalYAML implements yaml.Marshaler for StringList.
func (s StringList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}

// LoadGQLGenConfig loads a gqlgen.yml configuration file. A missing file
// yields an empty configuration.
func LoadGQLGenConfig(path string) (*GQLGenConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GQLGenConfig{Models: make(map[string]TypeMapEntry)}, nil
		}
		return nil, fmt.Errorf("read gqlgen config: %w", err)
	}

	var cfg GQLGenConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse gqlgen config: %w", err)
	}
	if cfg.Models == nil {
		cfg.Models = make(map[string]TypeMapEntry)
	}
	return &cfg, nil
}

// SaveGQLGenConfig saves a gqlgen.yml configuration file, creating the
// target directory if needed.
func SaveGQLGenConfig(path string, cfg *GQLGenConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal gqlgen config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// AddSchemaPath adds a schema path to the configuration if not already present.
func (c *GQLGenConfig) AddSchemaPath(path string) {
	if !slices.Contains(c.SchemaFilename, path) {
		c.SchemaFilename = append(c.SchemaFilename, path)
	}
}

// AddAutobind adds a package to the autobind list if not already present.
func (c *GQLGenConfig) AddAutobind(pkg string) {
	if !slices.Contains(c.Autobind, pkg) {
		c.Autobind = append(c.Autobind, pkg)
	}
}

// SetModel sets the model binding for a GraphQL type.
func (c *GQLGenConfig) SetModel(typeName string, modelPath string) {
	if c.Models == nil {
		c.Models = make(map[string]TypeMapEntry)
	}
	entry := c.Models[typeName]
	if !slices.Contains(entry.Model, modelPath) {
		entry.Model = append(entry.Model, modelPath)
	}
	c.Models[typeName] = entry
}

// InjectBindings adds the schema path, the autobind package for the emitted
// Go bindings, and scalar model mappings for the custom scalars gqlgen ships
// marshalers for.
func (c *GQLGenConfig) InjectBindings(modelPackage, schemaPath string) {
	if schemaPath != "" {
		c.AddSchemaPath(schemaPath)
	}
	if modelPackage != "" {
		c.AddAutobind(modelPackage)
	}
	c.SetModel("DateTime", "github.com/99designs/gqlgen/graphql.Time")
	c.SetModel("JSON", "github.com/99designs/gqlgen/graphql.Map")
	c.SetModel("BigInt", "github.com/99designs/gqlgen/graphql.Int64")
	c.SetModel("Bytes", "github.com/99designs/gqlgen/graphql.String")
	c.SetModel("Decimal", "github.com/99designs/gqlgen/graphql.String")
}
