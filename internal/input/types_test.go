package input

import "testing"

// TestParseType tests --type flag value parsing.
func TestParseType(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		value    string
		expected Type
		wantErr  bool
	}{
		{"json", TypeJSON, false},
		{"jsonld", TypeJSON, false},
		{"application/ld+json", TypeJSON, false},
		{"html", TypeHTML, false},
		{"text/html", TypeHTML, false},
		{"yaml", TypeYAML, false},
		{"nquads", TypeNQuads, false},
		{"application/n-quads", TypeNQuads, false},
		{"turtle", TypeTurtle, false},
		{"text/turtle", TypeTurtle, false},
		{"ntriples", TypeNTriples, false},
		{"trig", TypeTriG, false},
		{"TURTLE", TypeTurtle, false},
		{"pdf", TypeUnknown, true},
		{"", TypeUnknown, true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Parallel()
			got, err := ParseType(tc.value)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseType(%q) expected an error", tc.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q) unexpected error: %v", tc.value, err)
			}
			if got != tc.expected {
				t.Errorf("ParseType(%q) = %v, expected %v", tc.value, got, tc.expected)
			}
		})
	}
}

// TestDetectContentType tests HTTP Content-Type detection.
func TestDetectContentType(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		header   string
		expected Type
	}{
		{"application/ld+json", TypeJSON},
		{"application/json; charset=utf-8", TypeJSON},
		{"application/activity+json", TypeJSON},
		{"text/html; charset=utf-8", TypeHTML},
		{"text/turtle", TypeTurtle},
		{"application/n-quads", TypeNQuads},
		{"application/octet-stream", TypeUnknown},
		{"", TypeUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.header, func(t *testing.T) {
			t.Parallel()
			if got := DetectContentType(tc.header); got != tc.expected {
				t.Errorf("DetectContentType(%q) = %v, expected %v", tc.header, got, tc.expected)
			}
		})
	}
}

// TestDetectPath tests filename extension detection.
func TestDetectPath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		path     string
		expected Type
	}{
		{"doc.jsonld", TypeJSON},
		{"doc.json", TypeJSON},
		{"page.html", TypeHTML},
		{"doc.yaml", TypeYAML},
		{"data.nq", TypeNQuads},
		{"data.ttl", TypeTurtle},
		{"data.nt", TypeNTriples},
		{"data.trig", TypeTriG},
		{"README", TypeUnknown},
		{"archive.zip", TypeUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			if got := DetectPath(tc.path); got != tc.expected {
				t.Errorf("DetectPath(%q) = %v, expected %v", tc.path, got, tc.expected)
			}
		})
	}
}

// TestTypeIsRDF tests the RDF classification.
func TestTypeIsRDF(t *testing.T) {
	t.Parallel()

	rdf := []Type{TypeNQuads, TypeTurtle, TypeNTriples, TypeTriG}
	for _, typ := range rdf {
		if !typ.IsRDF() {
			t.Errorf("%v should be RDF", typ)
		}
	}
	for _, typ := range []Type{TypeJSON, TypeHTML, TypeYAML, TypeUnknown} {
		if typ.IsRDF() {
			t.Errorf("%v should not be RDF", typ)
		}
	}
}
