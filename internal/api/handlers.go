package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgallion1/typedoc/internal/diag"
	"github.com/dgallion1/typedoc/internal/doctree"
	"github.com/dgallion1/typedoc/internal/emit"
	"github.com/dgallion1/typedoc/internal/render"
	"github.com/dgallion1/typedoc/internal/schema"
	"github.com/go-chi/chi/v5"
)

// handleListTypes lists the names of all documentable types.
func (s *Server) handleListTypes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"types": s.reg.Names()})
}

// handleTypeDoc generates the document for one registered type. Engines are
// single-use, so every request gets a fresh one.
func (s *Server) handleTypeDoc(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	desc, ok := s.reg.Lookup(name)
	if !ok {
		jsonError(w, "unknown type: "+name, http.StatusNotFound)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "markdown"
	}

	if format == "docx" {
		doc := emit.NewDocx()
		if err := s.render(desc, doc); err != nil {
			s.renderError(w, name, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.docx"`)
		doc.WriteTo(w)
		return
	}

	var buf bytes.Buffer
	if err := s.render(desc, emit.NewMarkdown(&buf)); err != nil {
		s.renderError(w, name, err)
		return
	}

	switch format {
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write(buf.Bytes())
	case "html":
		out, err := markdownToHTML(buf.Bytes())
		if err != nil {
			jsonError(w, "render html: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(out)
	case "text":
		out, err := markdownToText(buf.Bytes())
		if err != nil {
			jsonError(w, "render text: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(out))
	default:
		jsonError(w, "unsupported format: "+format, http.StatusBadRequest)
	}
}

func (s *Server) render(desc schema.Descriptor, out emit.Writer) error {
	disp := render.NewDispatcher(diag.NewLogSink(s.log))
	return render.NewEngine(disp, out).Render(desc)
}

// renderError maps schema problems to 422 and everything else to 500.
func (s *Server) renderError(w http.ResponseWriter, name string, err error) {
	s.log.Error("documentation failed", "type", name, "error", err)

	var recursive *doctree.RecursiveTypeError
	var unsupported *schema.UnsupportedTypeError
	var misconfigured *render.ConfigurationError
	if errors.As(err, &recursive) || errors.As(err, &unsupported) || errors.As(err, &misconfigured) {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	jsonError(w, "generation failed: "+err.Error(), http.StatusInternalServerError)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
