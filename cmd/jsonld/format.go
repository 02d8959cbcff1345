package main

import (
	"github.com/spf13/cobra"

	"github.com/digitalbazaar/jsonld-cli/internal/processor"
	"github.com/digitalbazaar/jsonld-cli/internal/rdfio"
)

// NewFormatCmd creates the format command.
func NewFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [input]",
		Short: "Parse a document and re-emit it formatted",
		Long: `Format parses the input (JSON-LD, HTML with embedded JSON-LD, YAML-LD,
or an RDF serialization) and re-emits it in the requested format.

The default output is pretty-printed JSON. Selecting an RDF media type
converts the document to an RDF dataset first; an RDF input with JSON
output is converted to JSON-LD expanded form.

Examples:
  # Pretty-print a JSON-LD file
  jsonld format document.jsonld

  # Extract and format JSON-LD embedded in a web page
  jsonld format https://example.com/page.html

  # Convert JSON-LD to Turtle
  jsonld format --format text/turtle document.jsonld

  # Convert N-Quads to JSON-LD with native JSON types
  jsonld format --native-types dataset.nq`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFormatCmd,
	}

	cmd.Flags().StringP("format", "f", "json",
		"Output format: json, application/n-quads, text/turtle, application/n-triples, or application/trig")
	cmd.Flags().Bool("native-types", false,
		"Convert recognized RDF literal datatypes to native JSON values")
	cmd.Flags().Bool("rdf-type", false,
		"Keep rdf:type as a property instead of folding it into @type")

	return cmd
}

// runFormatCmd executes the format command.
func runFormatCmd(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	nativeTypes, err := cmd.Flags().GetBool("native-types")
	if err != nil {
		return err
	}
	rdfType, err := cmd.Flags().GetBool("rdf-type")
	if err != nil {
		return err
	}

	rt, err := setupRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	arg := inputArg(args)
	doc, err := rt.resolver.Resolve(cmd.Context(), arg)
	if err != nil {
		return err
	}
	if err := checkSafe(rt, doc, sourceName(arg)); err != nil {
		return err
	}

	if format == "" || format == "json" {
		if !doc.Type.IsRDF() {
			return writeJSON(cmd, rt.cfg, doc.Data)
		}

		converted, err := rt.proc.FromRDF(doc, processor.FromRDFOptions{
			NativeTypes: nativeTypes,
			UseRdfType:  rdfType,
		})
		if err != nil {
			return err
		}
		return writeJSON(cmd, rt.cfg, converted)
	}

	target, err := rdfio.MediaTypeFormat(format)
	if err != nil {
		return err
	}

	// RDF to RDF is a pure re-serialization; no JSON-LD algorithm runs.
	if doc.Type.IsRDF() {
		from, err := rdfio.MediaTypeFormat(doc.Type.String())
		if err != nil {
			return err
		}
		serialized, err := rdfio.ConvertString(string(doc.Raw), from, target)
		if err != nil {
			return err
		}
		return writeRaw(cmd, rt.cfg, serialized)
	}

	serialized, err := rt.proc.ToRDF(doc, processor.ToRDFOptions{Format: format})
	if err != nil {
		return err
	}
	return writeRaw(cmd, rt.cfg, serialized)
}
