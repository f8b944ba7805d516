package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/typedoc/internal/api"
	"github.com/dgallion1/typedoc/internal/config"
	"github.com/dgallion1/typedoc/internal/diag"
	"github.com/dgallion1/typedoc/internal/emit"
	"github.com/dgallion1/typedoc/internal/render"
	"github.com/dgallion1/typedoc/internal/schema"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	schemaPath := flag.String("schema", cfg.SchemaPath, "path to the YAML schema file")
	typeName := flag.String("type", "", "name of the type to document")
	out := flag.String("out", cfg.Output, "output file path")
	format := flag.String("format", cfg.Format, "output format: markdown or docx")
	serve := flag.Bool("serve", false, "serve documentation over HTTP instead of writing a file")
	flag.Parse()

	cfg.SchemaPath = *schemaPath
	cfg.Output = *out
	cfg.Format = *format
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.SchemaPath == "" {
		log.Error("no schema file given (use -schema or TYPEDOC_SCHEMA)")
		os.Exit(1)
	}

	reg, err := schema.LoadFile(cfg.SchemaPath)
	if err != nil {
		log.Error("loading schema failed", "error", err)
		os.Exit(1)
	}

	if *serve {
		runServer(reg, log, cfg)
		return
	}

	if *typeName == "" {
		log.Error("no type given (use -type)")
		os.Exit(1)
	}
	if err := generate(reg, *typeName, cfg, log); err != nil {
		log.Error("generation failed", "type", *typeName, "error", err)
		os.Exit(1)
	}
	log.Info("document written", "type", *typeName, "output", cfg.Output)
}

// generate renders one document and writes the output file only after the
// whole run succeeded, so a fatal error never leaves a partial file behind.
func generate(reg *schema.Registry, typeName string, cfg config.Config, log *slog.Logger) error {
	desc, ok := reg.Lookup(typeName)
	if !ok {
		return fmt.Errorf("type %q is not declared in %s", typeName, cfg.SchemaPath)
	}

	disp := render.NewDispatcher(diag.NewLogSink(log))

	if cfg.Format == "docx" {
		doc := emit.NewDocx()
		if err := render.NewEngine(disp, doc).Render(desc); err != nil {
			return err
		}
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = doc.WriteTo(f)
		return err
	}

	var buf bytes.Buffer
	if err := render.NewEngine(disp, emit.NewMarkdown(&buf)).Render(desc); err != nil {
		return err
	}
	return os.WriteFile(cfg.Output, buf.Bytes(), 0o644)
}

func runServer(reg *schema.Registry, log *slog.Logger, cfg config.Config) {
	srv := api.NewServer(reg, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting typedoc", "port", cfg.Port, "types", len(reg.Names()))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
