package gen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Artifact is one emitted text file. Emitters are pure: they return
// artifacts and never touch the filesystem themselves.
type Artifact struct {
	// Dir is the subdirectory under the target, empty for the target root.
	Dir string
	// Name is the file name.
	Name string
	// Content is the rendered file content.
	Content []byte
}

// Emitter renders a projected schema into one or more artifacts.
// The ts, golang, and contrib/graphql packages implement it.
type Emitter interface {
	Emit(ps *ProjectedSchema, cfg *Config) ([]Artifact, error)
}

// EmitFunc adapts a function to the Emitter interface.
type EmitFunc func(ps *ProjectedSchema, cfg *Config) ([]Artifact, error)

// Emit calls f.
func (f EmitFunc) Emit(ps *ProjectedSchema, cfg *Config) ([]Artifact, error) {
	return f(ps, cfg)
}

// Generator runs emitters over a projected schema and writes their artifacts
// under the configured target directory. Emission is sequential and
// deterministic; only the file writes run in parallel, after every emitter
// has succeeded, so a failing emitter never leaves partial output behind.
type Generator struct {
	ps       *ProjectedSchema
	cfg      *Config
	outDir   string
	workers  int
	emitters []Emitter
}

// NewGenerator creates a generator writing to the config's target directory.
// Add at least one emitter with WithEmitters before calling Generate.
func NewGenerator(ps *ProjectedSchema, cfg *Config) *Generator {
	return &Generator{
		ps:      ps,
		cfg:     cfg,
		outDir:  cfg.Gentime.Target,
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers sets the number of parallel file writers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithTarget overrides the output directory from the config.
func (g *Generator) WithTarget(dir string) *Generator {
	if dir != "" {
		g.outDir = dir
	}
	return g
}

// WithEmitters appends emitters to the run.
func (g *Generator) WithEmitters(emitters ...Emitter) *Generator {
	g.emitters = append(g.emitters, emitters...)
	return g
}

// Emit runs all emitters and returns the collected artifacts without writing
// anything. Artifact order follows emitter registration order.
func (g *Generator) Emit() ([]Artifact, error) {
	if len(g.emitters) == 0 {
		return nil, NewConfigError("emitters", nil, "no emitters set: call WithEmitters() before Generate()")
	}
	var artifacts []Artifact
	for _, e := range g.emitters {
		out, err := e.Emit(g.ps, g.cfg)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, out...)
	}
	return artifacts, nil
}

// Generate emits all artifacts and writes them to disk in parallel.
func (g *Generator) Generate(ctx context.Context) error {
	artifacts, err := g.Emit()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return err
	}
	errg, _ := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, a := range artifacts {
		a := a
		errg.Go(func() error {
			return g.writeFile(a)
		})
	}
	return errg.Wait()
}

// writeFile writes one artifact under the target directory.
func (g *Generator) writeFile(a Artifact) error {
	dir := g.outDir
	if a.Dir != "" {
		dir = filepath.Join(g.outDir, a.Dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(filepath.Join(dir, a.Name), a.Content, 0o644)
}
