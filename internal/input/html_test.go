package input

import (
	"strings"
	"testing"
)

// TestExtractScripts tests JSON-LD script extraction from HTML.
func TestExtractScripts(t *testing.T) {
	t.Parallel()

	t.Run("single script", func(t *testing.T) {
		t.Parallel()

		page := `<!DOCTYPE html><html><head>
<script type="application/ld+json">{"@context":"https://schema.org","name":"Alice"}</script>
</head><body></body></html>`

		scripts, err := ExtractScripts([]byte(page))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(scripts) != 1 {
			t.Fatalf("got %d scripts, expected 1", len(scripts))
		}
		if !strings.Contains(string(scripts[0]), `"name":"Alice"`) {
			t.Errorf("unexpected script content: %s", scripts[0])
		}
	})

	t.Run("multiple scripts in document order", func(t *testing.T) {
		t.Parallel()

		page := `<html><head>
<script type="application/ld+json">{"@id":"first"}</script>
<script type="application/ld+json">{"@id":"second"}</script>
</head></html>`

		scripts, err := ExtractScripts([]byte(page))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(scripts) != 2 {
			t.Fatalf("got %d scripts, expected 2", len(scripts))
		}
		if !strings.Contains(string(scripts[0]), "first") || !strings.Contains(string(scripts[1]), "second") {
			t.Errorf("scripts out of order: %s / %s", scripts[0], scripts[1])
		}
	})

	t.Run("media type parameters are tolerated", func(t *testing.T) {
		t.Parallel()

		page := `<html><head><script type="application/ld+json; charset=utf-8">{}</script></head></html>`
		scripts, err := ExtractScripts([]byte(page))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(scripts) != 1 {
			t.Errorf("got %d scripts, expected 1", len(scripts))
		}
	})

	t.Run("other script types are ignored", func(t *testing.T) {
		t.Parallel()

		page := `<html><head><script type="text/javascript">alert(1)</script></head></html>`
		if _, err := ExtractScripts([]byte(page)); err == nil {
			t.Error("expected an error when no JSON-LD scripts are present")
		}
	})
}
