package lint

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"golang.org/x/text/language"

	"github.com/digitalbazaar/jsonld-cli/internal/model"
)

// Linter runs the structural checks over one JSON document.
type Linter struct {
	// base is the base IRI available to the document (--base or the
	// document's own URL). When empty, relative @id values have nothing
	// to resolve against and are flagged.
	base string
}

// New creates a Linter. base may be empty.
func New(base string) *Linter {
	return &Linter{base: base}
}

// Lint checks raw and returns the report. source names the input for the
// report header. A document that fails to parse gets a single
// invalid-json finding; the remaining checks need a tree to walk.
func (l *Linter) Lint(source string, raw []byte) *model.LintReport {
	report := &model.LintReport{
		Source:    source,
		CheckedAt: time.Now(),
	}

	tree, ok := l.checkSyntax(raw, report)
	if !ok {
		return report
	}

	// A document with no top-level @context still expands (to nothing,
	// usually), which is legal but rarely what the author meant.
	// The leading backslash keeps gjson from reading @context as one of
	// its modifiers.
	if top := gjson.GetBytes(raw, `\@context`); !top.Exists() {
		if _, isObject := tree.(map[string]interface{}); isObject {
			report.Findings = append(report.Findings, model.Finding{
				Check:    "no-context",
				Severity: model.SeverityInfo,
				Message:  "document has no top-level @context; terms will not expand",
			})
		}
	}

	l.walk(tree, "", l.base, report)
	return report
}

// checkSyntax tokenizes raw, reporting malformed JSON, duplicate keys,
// empty keys, and keyword lookalikes. It returns the parsed tree and
// whether parsing succeeded.
//
// Duplicate keys have to be caught here: by the time the document is a
// map, the later value has silently won.
func (l *Linter) checkSyntax(raw []byte, report *model.LintReport) (interface{}, bool) {
	type frame struct {
		object bool
		seen   map[string]bool
		key    string
		hasKey bool
		index  int
	}
	var stack []*frame

	// path names the location of a key being checked. The final frame is
	// always the object owning the key; frames above it contribute their
	// open key or current array index.
	path := func(key string) string {
		var parts []string
		for i, f := range stack {
			if i == len(stack)-1 {
				parts = append(parts, key)
				break
			}
			if f.object {
				parts = append(parts, f.key)
			} else {
				parts = append(parts, fmt.Sprintf("%d", f.index))
			}
		}
		return strings.Join(parts, ".")
	}

	// completeValue marks the end of one value in the enclosing frame.
	completeValue := func() {
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		if top.object {
			top.hasKey = false
		} else {
			top.index++
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Findings = append(report.Findings, model.Finding{
				Check:    "invalid-json",
				Severity: model.SeverityError,
				Message:  "input is not valid JSON: " + err.Error(),
			})
			return nil, false
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, &frame{object: true, seen: make(map[string]bool)})
			case '[':
				stack = append(stack, &frame{})
			case '}', ']':
				stack = stack[:len(stack)-1]
				completeValue()
			}

		case string:
			top := (*frame)(nil)
			if len(stack) > 0 {
				top = stack[len(stack)-1]
			}
			if top != nil && top.object && !top.hasKey {
				// v is a key.
				l.checkKey(v, path(v), top.seen, report)
				top.seen[v] = true
				top.key = v
				top.hasKey = true
				continue
			}
			completeValue()

		default:
			completeValue()
		}
	}

	// Tokenization succeeded; decode the tree for the value checks.
	var tree interface{}
	d := json.NewDecoder(bytes.NewReader(raw))
	d.UseNumber()
	if err := d.Decode(&tree); err != nil {
		report.Findings = append(report.Findings, model.Finding{
			Check:    "invalid-json",
			Severity: model.SeverityError,
			Message:  "input is not valid JSON: " + err.Error(),
		})
		return nil, false
	}
	return tree, true
}

// checkKey runs the key-shape checks for one object key.
func (l *Linter) checkKey(key, path string, seen map[string]bool, report *model.LintReport) {
	if key == "" {
		report.Findings = append(report.Findings, model.Finding{
			Check:    "empty-key",
			Severity: model.SeverityError,
			Path:     path,
			Message:  "empty object keys are not valid JSON-LD terms",
		})
		return
	}

	if seen[key] {
		report.Findings = append(report.Findings, model.Finding{
			Check:    "duplicate-key",
			Severity: model.SeverityError,
			Path:     path,
			Message:  fmt.Sprintf("duplicate key %q: the earlier value is silently discarded", key),
		})
	}

	if looksLikeKeyword(key) && !isKeyword(key) {
		report.Findings = append(report.Findings, model.Finding{
			Check:    "keyword-lookalike",
			Severity: model.SeverityWarning,
			Path:     path,
			Message:  fmt.Sprintf("%q looks like a JSON-LD keyword but is not one; processors ignore it silently", key),
		})
	}
}

// walk runs the value checks over the parsed tree. base is the effective
// base IRI at this node: the linter's own base (--base or the document
// URL) unless an enclosing @context declared @base.
func (l *Linter) walk(node interface{}, path, base string, report *model.LintReport) {
	switch v := node.(type) {
	case map[string]interface{}:
		base = effectiveBase(v, base)
		for key, value := range v {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			l.checkEntry(key, value, childPath, base, report)
			l.walk(value, childPath, base, report)
		}
	case []interface{}:
		for i, value := range v {
			childPath := fmt.Sprintf("%s.%d", path, i)
			if path == "" {
				childPath = fmt.Sprintf("%d", i)
			}
			l.walk(value, childPath, base, report)
		}
	}
}

// effectiveBase returns the base IRI in force inside node: an @base
// declared in the node's @context wins over the inherited base, and an
// explicit "@base": null clears it.
func effectiveBase(node map[string]interface{}, inherited string) string {
	ctx, ok := node["@context"].(map[string]interface{})
	if !ok {
		return inherited
	}
	declared, present := ctx["@base"]
	if !present {
		return inherited
	}
	if s, ok := declared.(string); ok {
		return s
	}
	if declared == nil {
		return ""
	}
	return inherited
}

// checkEntry checks one key/value pair for keyword-specific rules.
func (l *Linter) checkEntry(key string, value interface{}, path, base string, report *model.LintReport) {
	add := func(check string, severity model.Severity, format string, args ...interface{}) {
		report.Findings = append(report.Findings, model.Finding{
			Check:    check,
			Severity: severity,
			Path:     path,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	switch key {
	case "@language":
		tag, ok := value.(string)
		if !ok {
			return
		}
		if _, err := language.Parse(tag); err != nil {
			add("language-tag", model.SeverityWarning,
				"%q is not a well-formed BCP 47 language tag; processors drop such strings", tag)
		}

	case "@direction":
		dir, ok := value.(string)
		if !ok {
			return
		}
		if dir != "ltr" && dir != "rtl" {
			add("direction", model.SeverityError, `@direction must be "ltr" or "rtl", not %q`, dir)
		}

	case "@version":
		num, ok := value.(json.Number)
		if !ok || num.String() != "1.1" {
			add("version", model.SeverityError, "@version must be the number 1.1, not %v", value)
		}

	case "@container":
		switch c := value.(type) {
		case string:
			if !containerValues[c] {
				add("container", model.SeverityError, "%q is not a valid @container value", c)
			}
		case []interface{}:
			for _, entry := range c {
				if s, ok := entry.(string); ok && !containerValues[s] {
					add("container", model.SeverityError, "%q is not a valid @container value", s)
				}
			}
		}

	case "@id":
		id, ok := value.(string)
		if !ok {
			return
		}
		if isRelativeIRI(id, base) {
			add("relative-iri", model.SeverityWarning,
				"relative IRI %q with no base to resolve against (set --base or declare @base)", id)
		}

	case "@type":
		switch t := value.(type) {
		case string:
			if isRelativeIRI(t, base) {
				add("relative-iri", model.SeverityWarning,
					"relative @type IRI %q with no base to resolve against (set --base or declare @base)", t)
			}
		case []interface{}:
			for _, entry := range t {
				if s, ok := entry.(string); ok && isRelativeIRI(s, base) {
					add("relative-iri", model.SeverityWarning,
						"relative @type IRI %q with no base to resolve against (set --base or declare @base)", s)
				}
			}
		}
	}
}

// isRelativeIRI reports whether s is a relative IRI reference that has no
// base to resolve against. Absolute IRIs, compact IRIs, and blank node
// identifiers all carry a colon; keywords (such as @json in @type) are
// not IRIs at all.
func isRelativeIRI(s, base string) bool {
	if base != "" || s == "" {
		return false
	}
	if strings.HasPrefix(s, "@") {
		return false
	}
	return !strings.Contains(s, ":")
}
