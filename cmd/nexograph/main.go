// nexograph reads a data-model document and generates the runtime modules,
// GraphQL schema, and optional Go bindings for it.
//
// Usage:
//
//	nexograph -schema datamodel.json [flags]
//
// With -watch the command stays running and regenerates whenever the schema
// file changes; unchanged documents are skipped by fingerprint comparison.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"github.com/nexograph/nexograph/compiler/gen"
	"github.com/nexograph/nexograph/compiler/gen/golang"
	"github.com/nexograph/nexograph/compiler/gen/ts"
	"github.com/nexograph/nexograph/contrib/graphql"
	"github.com/nexograph/nexograph/dmmf"
)

func main() {
	schemaPath := flag.String("schema", "datamodel.json", "path to the data-model document")
	configPath := flag.String("config", "", "path to a nexograph settings file")
	target := flag.String("target", "", "output directory (default: target from settings)")
	goBindings := flag.Bool("go", false, "also emit Go model bindings")
	goPackage := flag.String("go-package", "", "import path of the emitted Go bindings, used for gqlgen autobind")
	watch := flag.Bool("watch", false, "regenerate whenever the schema file changes")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *target, *goBindings)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}

	if err := generate(*schemaPath, cfg, *goPackage, false); err != nil {
		log.Fatalf("generate: %v", err)
	}
	log.Printf("generated into %s", cfg.Gentime.Target)

	if !*watch {
		return
	}
	if err := watchSchema(*schemaPath, cfg, *goPackage); err != nil {
		log.Fatalf("watch: %v", err)
	}
}

func loadConfig(path, target string, goBindings bool) (*gen.Config, error) {
	cfg, err := gen.LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	opts := []gen.Option{}
	if target != "" {
		opts = append(opts, gen.WithTarget(target))
	}
	if goBindings {
		opts = append(opts, gen.WithGoBindings(true))
	}
	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// generate runs the full pipeline for one document. With skipUnchanged set it
// consults the snapshot first and does nothing for an unmodified document.
func generate(schemaPath string, cfg *gen.Config, goPackage string, skipUnchanged bool) error {
	doc, err := dmmf.ReadFile(schemaPath)
	if err != nil {
		return err
	}
	if skipUnchanged {
		changed, err := gen.Changed(cfg.Gentime.Target, doc)
		if err != nil {
			return err
		}
		if !changed {
			log.Printf("schema unchanged, skipping")
			return nil
		}
	}

	g, err := gen.NewGraph(doc, cfg)
	if err != nil {
		return err
	}
	ps, err := gen.Project(g)
	if err != nil {
		return err
	}

	schemaOpts := []graphql.SchemaOption{}
	if goPackage != "" {
		schemaOpts = append(schemaOpts, graphql.WithGQLGen(goPackage))
	}
	emitters := []gen.Emitter{
		ts.Emitter{},
		graphql.NewSchemaEmitter(schemaOpts...),
	}
	if cfg.Gentime.GoBindings {
		emitters = append(emitters, golang.Emitter{})
	}

	gr := gen.NewGenerator(ps, cfg).WithEmitters(emitters...)
	if err := gr.Generate(context.Background()); err != nil {
		return err
	}
	return gen.WriteSnapshot(cfg.Gentime.Target, doc)
}

// watchSchema regenerates on every write to the schema file until
// interrupted. Editors replace files on save, so the parent directory is
// watched and events are filtered by name.
func watchSchema(schemaPath string, cfg *gen.Config, goPackage string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(schemaPath)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	log.Printf("watching %s", schemaPath)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	base := filepath.Base(schemaPath)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := generate(schemaPath, cfg, goPackage, true); err != nil {
				log.Printf("generate: %v", err)
				continue
			}
			log.Printf("regenerated into %s", cfg.Gentime.Target)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		case <-sig:
			log.Printf("stopping")
			return nil
		}
	}
}
