package main

import (
	"github.com/spf13/cobra"

	"github.com/digitalbazaar/jsonld-cli/internal/processor"
)

// NewToRDFCmd creates the toRdf command.
func NewToRDFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toRdf [input]",
		Short: "Serialize a JSON-LD document as an RDF dataset",
		Long: `ToRdf deserializes a JSON-LD document to an RDF dataset and prints it
in the requested serialization.

Examples:
  # N-Quads (the default)
  jsonld toRdf document.jsonld

  # Turtle
  jsonld toRdf --format text/turtle document.jsonld

  # Permit generalized RDF (blank node predicates)
  jsonld toRdf --generalized document.jsonld`,
		Args: cobra.MaximumNArgs(1),
		RunE: runToRDFCmd,
	}

	cmd.Flags().StringP("format", "f", "application/n-quads",
		"Output serialization: application/n-quads, text/turtle, application/n-triples, or application/trig")
	cmd.Flags().Bool("generalized", false,
		"Permit generalized RDF (blank node predicates)")

	return cmd
}

// runToRDFCmd executes the toRdf command.
func runToRDFCmd(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	generalized, err := cmd.Flags().GetBool("generalized")
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
	if err := requireJSONInput(doc, "toRdf"); err != nil {
		return err
	}
	if err := checkSafe(rt, doc, sourceName(arg)); err != nil {
		return err
	}

	serialized, err := rt.proc.ToRDF(doc, processor.ToRDFOptions{
		Format:      format,
		Generalized: generalized,
	})
	if err != nil {
		return err
	}
	return writeRaw(cmd, rt.cfg, serialized)
}
