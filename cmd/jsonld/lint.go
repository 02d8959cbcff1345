package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	json "github.com/goccy/go-json"

	"github.com/digitalbazaar/jsonld-cli/internal/input"
	"github.com/digitalbazaar/jsonld-cli/internal/lint"
	"github.com/digitalbazaar/jsonld-cli/internal/report"
)

// errLintFindings signals blocking findings without printing an extra
// error line: the report itself already describes them.
var errLintFindings = errors.New("lint reported blocking findings")

// NewLintCmd creates the lint command.
func NewLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [input]",
		Short: "Run structural JSON-LD checks over a document",
		Long: `Lint checks a JSON-LD document for structural problems: broken JSON,
duplicate or empty keys, keys shaped like JSON-LD keywords, malformed
@language tags, unsupported @version values, unknown @container values,
and relative IRIs with no base to resolve against.

Algorithmic validation stays with the JSON-LD processor; lint flags what
a processor would silently drop or misread.

Exits 1 when any finding of warning severity or higher is present.

Examples:
  jsonld lint document.jsonld
  jsonld lint --format json document.jsonld
  jsonld lint --format markdown document.jsonld > report.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLintCmd,
	}

	cmd.Flags().StringP("format", "f", "text",
		"Report format: text, json, or markdown")

	return cmd
}

// runLintCmd executes the lint command.
func runLintCmd(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	rt, err := setupRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	arg := inputArg(args)
	source := sourceName(arg)

	// Raw resolution: a syntactically broken document must reach the
	// linter as bytes so invalid JSON becomes a finding, not a crash.
	doc, err := rt.resolver.ResolveRaw(cmd.Context(), arg)
	if err != nil {
		return err
	}

	raw, err := lintableBytes(rt, doc)
	if err != nil {
		return err
	}

	rep := lint.New(lintBase(rt.cfg, doc)).Lint(source, raw)

	w, err := report.NewWriter(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if _, err := w.Write(rep); err != nil {
		return err
	}

	if rep.HasBlocking() {
		return errLintFindings
	}
	return nil
}

// lintableBytes returns the JSON text to lint. JSON inputs are linted as
// written; HTML and YAML inputs are decoded and linted as the equivalent
// JSON tree, which skips the byte-level checks but keeps the structural
// ones. RDF serializations have nothing for a JSON-LD linter to check.
func lintableBytes(rt *runtime, doc *input.Document) ([]byte, error) {
	switch {
	case doc.Type == input.TypeJSON:
		return doc.Raw, nil

	case doc.Type.IsRDF():
		return nil, errors.Errorf("lint requires a JSON-LD input, got %s", doc.Type)

	default:
		if err := rt.resolver.Decode(doc); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(doc.Data)
		return raw, errors.Wrap(err, "failed to re-serialize input for linting")
	}
}
