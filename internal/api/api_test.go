package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dgallion1/typedoc/internal/config"
	"github.com/dgallion1/typedoc/internal/schema"
	"golang.org/x/net/html"
)

func testRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	reg := schema.NewRegistry()
	r2 := &schema.Record{Name: "R2", Doc: "A nested record.", Fields: []*schema.Field{
		{Name: "c", Doc: "A string.", Type: schema.String, Required: true},
	}}
	root := &schema.Record{Name: "R", Doc: "The root record.", Fields: []*schema.Field{
		{Name: "a", Doc: "An integer.", Type: schema.Int, Required: true},
		{Name: "b", Doc: "Nested records.", Type: &schema.List{Elem: r2}},
	}}
	loop := &schema.Record{Name: "Loop", Doc: "Self referential."}
	loop.Fields = []*schema.Field{{Name: "self", Doc: "Itself.", Type: loop}}

	for name, d := range map[string]schema.Descriptor{"R": root, "R2": r2, "Loop": loop} {
		if err := reg.Register(name, d); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	return reg
}

func testServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(NewServer(testRegistry(t), log, cfg))
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestHealth(t *testing.T) {
	ts := testServer(t, config.Config{})
	status, body := get(t, ts.URL+"/health")
	if status != http.StatusOK || !strings.Contains(body, "ok") {
		t.Errorf("expected healthy response, got %d %q", status, body)
	}
}

func TestListTypes(t *testing.T) {
	ts := testServer(t, config.Config{})
	status, body := get(t, ts.URL+"/api/types")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var payload struct {
		Types []string `json:"types"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Types) != 3 || payload.Types[0] != "Loop" {
		t.Errorf("unexpected type listing: %v", payload.Types)
	}
}

func TestTypeDocMarkdown(t *testing.T) {
	ts := testServer(t, config.Config{})
	status, body := get(t, ts.URL+"/api/types/R/doc")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if !strings.Contains(body, "# R\n") || !strings.Contains(body, "# R2\n") {
		t.Errorf("expected both sections in the document:\n%s", body)
	}
	if !strings.Contains(body, "[R2](#R2)") {
		t.Errorf("expected a cross reference to R2:\n%s", body)
	}
}

func TestTypeDocHTML(t *testing.T) {
	ts := testServer(t, config.Config{})
	status, body := get(t, ts.URL+"/api/types/R/doc?format=html")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("response is not parseable html: %v", err)
	}
	var h1 string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "h1" && h1 == "" {
			if n.FirstChild != nil {
				h1 = n.FirstChild.Data
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if h1 != "R" {
		t.Errorf("expected first h1 to be R, got %q", h1)
	}
	if !strings.Contains(body, "<table>") {
		t.Errorf("expected the field table to render as html:\n%s", body)
	}
}

func TestTypeDocText(t *testing.T) {
	ts := testServer(t, config.Config{})
	status, body := get(t, ts.URL+"/api/types/R2/doc?format=text")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if strings.Contains(body, "<") || !strings.Contains(body, "R2") {
		t.Errorf("expected plain text, got:\n%s", body)
	}
}

func TestTypeDocUnknownType(t *testing.T) {
	ts := testServer(t, config.Config{})
	status, body := get(t, ts.URL+"/api/types/Missing/doc")
	if status != http.StatusNotFound {
		t.Errorf("expected 404, got %d: %s", status, body)
	}
}

func TestTypeDocRecursiveType(t *testing.T) {
	ts := testServer(t, config.Config{})
	status, body := get(t, ts.URL+"/api/types/Loop/doc")
	if status != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for a recursive type, got %d: %s", status, body)
	}
	if !strings.Contains(body, "recursive") {
		t.Errorf("expected the error to name the problem: %s", body)
	}
}

func TestTypeDocBadFormat(t *testing.T) {
	ts := testServer(t, config.Config{})
	status, _ := get(t, ts.URL+"/api/types/R/doc?format=pdf")
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for unsupported format, got %d", status)
	}
}

func TestAuthRequiredWhenKeySet(t *testing.T) {
	ts := testServer(t, config.Config{APIKey: "secret"})

	status, _ := get(t, ts.URL+"/api/types")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", status)
	}

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/types", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer secret")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 with the api key, got %d", resp.StatusCode)
	}

	// Health stays public.
	if status, _ := get(t, ts.URL+"/health"); status != http.StatusOK {
		t.Errorf("expected public health endpoint, got %d", status)
	}
}
