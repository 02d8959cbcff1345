package input

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/digitalbazaar/jsonld-cli/internal/config"
	"github.com/digitalbazaar/jsonld-cli/internal/loader"
)

// newTestResolver builds a Resolver with the given config and stdin text.
func newTestResolver(cfg *config.Config, stdin string) *Resolver {
	return NewResolver(cfg, loader.NewFetcher(cfg), strings.NewReader(stdin))
}

// TestResolveStdin tests stdin resolution for "-" and the empty argument.
func TestResolveStdin(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"-", ""} {
		t.Run("arg "+arg, func(t *testing.T) {
			t.Parallel()

			r := newTestResolver(config.NewConfig(), `{"@context":{},"name":"Alice"}`)
			doc, err := r.Resolve(context.Background(), arg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if doc.URL != "" {
				t.Errorf("stdin input should have no URL, got %q", doc.URL)
			}
			if doc.Type != TypeJSON {
				t.Errorf("got type %v, expected TypeJSON", doc.Type)
			}
			m, ok := doc.Data.(map[string]interface{})
			if !ok {
				t.Fatalf("expected a map, got %T", doc.Data)
			}
			if m["name"] != "Alice" {
				t.Errorf("unexpected parsed document: %v", m)
			}
		})
	}
}

// TestResolveFile tests file resolution, type detection, and the file URL.
func TestResolveFile(t *testing.T) {
	t.Parallel()

	t.Run("jsonld file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.jsonld")
		if err := os.WriteFile(path, []byte(`{"@id":"http://example.com/a"}`), 0600); err != nil {
			t.Fatal(err)
		}

		r := newTestResolver(config.NewConfig(), "")
		doc, err := r.Resolve(context.Background(), path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(doc.URL, "file://") {
			t.Errorf("expected a file URL, got %q", doc.URL)
		}
		if doc.Type != TypeJSON {
			t.Errorf("got type %v, expected TypeJSON", doc.Type)
		}
	})

	t.Run("turtle file stays raw", func(t *testing.T) {
		t.Parallel()

		content := `<http://example.com/a> <http://example.com/b> "c" .`
		path := filepath.Join(t.TempDir(), "data.ttl")
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		r := newTestResolver(config.NewConfig(), "")
		doc, err := r.Resolve(context.Background(), path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Type != TypeTurtle {
			t.Errorf("got type %v, expected TypeTurtle", doc.Type)
		}
		if doc.Data != nil {
			t.Error("RDF input should not be parsed to a tree")
		}
		if string(doc.Raw) != content {
			t.Errorf("raw bytes altered: %s", doc.Raw)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		r := newTestResolver(config.NewConfig(), "")
		if _, err := r.Resolve(context.Background(), filepath.Join(t.TempDir(), "missing.jsonld")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}

// TestResolveURL tests network resolution of the primary input.
func TestResolveURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/ld+json")
		_, _ = w.Write([]byte(`{"@context":"https://schema.org","name":"Bob"}`))
	}))
	defer srv.Close()

	r := newTestResolver(config.NewConfig(), "")
	doc, err := r.Resolve(context.Background(), srv.URL+"/doc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.URL != srv.URL+"/doc" {
		t.Errorf("got URL %q", doc.URL)
	}
	if doc.Type != TypeJSON {
		t.Errorf("got type %v, expected TypeJSON", doc.Type)
	}
}

// TestResolveHTML tests extraction of embedded JSON-LD from HTML input.
func TestResolveHTML(t *testing.T) {
	t.Parallel()

	t.Run("single script becomes the document", func(t *testing.T) {
		t.Parallel()

		page := `<html><head><script type="application/ld+json">{"name":"Carol"}</script></head></html>`
		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte(page), 0600); err != nil {
			t.Fatal(err)
		}

		r := newTestResolver(config.NewConfig(), "")
		doc, err := r.Resolve(context.Background(), path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m, ok := doc.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("expected a map, got %T", doc.Data)
		}
		if m["name"] != "Carol" {
			t.Errorf("unexpected document: %v", m)
		}
	})

	t.Run("multiple scripts merge into an array", func(t *testing.T) {
		t.Parallel()

		page := `<html><head>
<script type="application/ld+json">{"@id":"a"}</script>
<script type="application/ld+json">[{"@id":"b"},{"@id":"c"}]</script>
</head></html>`
		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte(page), 0600); err != nil {
			t.Fatal(err)
		}

		r := newTestResolver(config.NewConfig(), "")
		doc, err := r.Resolve(context.Background(), path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		arr, ok := doc.Data.([]interface{})
		if !ok {
			t.Fatalf("expected an array, got %T", doc.Data)
		}
		if len(arr) != 3 {
			t.Errorf("got %d nodes, expected 3 (top-level arrays flatten)", len(arr))
		}
	})
}

// TestResolveYAML tests YAML-LD conversion to a JSON tree.
func TestResolveYAML(t *testing.T) {
	t.Parallel()

	content := `"@context":
  name: http://schema.org/name
name: Dave
`
	path := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	r := newTestResolver(config.NewConfig(), "")
	doc, err := r.Resolve(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := doc.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected a map, got %T", doc.Data)
	}
	if m["name"] != "Dave" {
		t.Errorf("unexpected document: %v", m)
	}
	if _, ok := m["@context"]; !ok {
		t.Error("expected @context to survive conversion")
	}
}

// TestResolveTypeOverride tests that --type beats detection.
func TestResolveTypeOverride(t *testing.T) {
	t.Parallel()

	// A .txt file holding JSON parses once the type is forced.
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(`{"@id":"x"}`), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := config.NewConfig()
	cfg.InputType = "json"
	r := newTestResolver(cfg, "")
	doc, err := r.Resolve(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Type != TypeJSON {
		t.Errorf("got type %v, expected TypeJSON", doc.Type)
	}

	t.Run("bad override value errors", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.InputType = "docx"
		r := newTestResolver(cfg, "")
		if _, err := r.Resolve(context.Background(), path); err == nil {
			t.Error("expected an error for an unknown --type value")
		}
	})
}

// TestResolveAuxiliary tests --context/--frame argument resolution.
func TestResolveAuxiliary(t *testing.T) {
	t.Parallel()

	t.Run("inline JSON object", func(t *testing.T) {
		t.Parallel()

		r := newTestResolver(config.NewConfig(), "")
		v, err := r.ResolveAuxiliary(context.Background(), `{"name":"http://schema.org/name"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := v.(map[string]interface{}); !ok {
			t.Errorf("expected a map, got %T", v)
		}
	})

	t.Run("inline JSON string context IRI", func(t *testing.T) {
		t.Parallel()

		r := newTestResolver(config.NewConfig(), "")
		v, err := r.ResolveAuxiliary(context.Background(), `"https://schema.org"`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "https://schema.org" {
			t.Errorf("got %v", v)
		}
	})

	t.Run("context file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "ctx.jsonld")
		if err := os.WriteFile(path, []byte(`{"@context":{"name":"http://schema.org/name"}}`), 0600); err != nil {
			t.Fatal(err)
		}

		r := newTestResolver(config.NewConfig(), "")
		v, err := r.ResolveAuxiliary(context.Background(), path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			t.Fatalf("expected a map, got %T", v)
		}
		if _, has := m["@context"]; !has {
			t.Errorf("expected @context key, got %v", m)
		}
	})
}

// TestResolveInvalidJSON tests that malformed JSON fails resolution.
func TestResolveInvalidJSON(t *testing.T) {
	t.Parallel()

	r := newTestResolver(config.NewConfig(), `{"unterminated": `)
	if _, err := r.Resolve(context.Background(), "-"); err == nil {
		t.Error("expected a parse error")
	}
}
