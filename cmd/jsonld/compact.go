package main

import (
	"github.com/spf13/cobra"
)

// NewCompactCmd creates the compact command.
func NewCompactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compact [input]",
		Short: "Compact a JSON-LD document against a context",
		Long: `Compact shortens IRIs in a JSON-LD document to terms defined by the
given context and folds value objects back into plain values.

The context may be a file path, a URL, or inline JSON.

Examples:
  # Compact against a local context
  jsonld compact -c context.jsonld document.jsonld

  # Compact against a published context
  jsonld compact -c https://schema.org document.jsonld

  # Inline context, result wrapped in @graph
  jsonld compact -c '{"name": "http://schema.org/name"}' --graph document.jsonld`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompactCmd,
	}

	cmd.Flags().StringP("context", "c", "",
		"Context to compact against: file path, URL, or inline JSON (required)")
	cmd.Flags().Bool("graph", false,
		"Always wrap the result in a top-level @graph")
	_ = cmd.MarkFlagRequired("context")

	return cmd
}

// runCompactCmd executes the compact command.
func runCompactCmd(cmd *cobra.Command, args []string) error {
	contextArg, err := cmd.Flags().GetString("context")
	if err != nil {
		return err
	}
	graph, err := cmd.Flags().GetBool("graph")
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
	if err := requireJSONInput(doc, "compact"); err != nil {
		return err
	}
	if err := checkSafe(rt, doc, sourceName(arg)); err != nil {
		return err
	}

	context, err := rt.resolver.ResolveAuxiliary(cmd.Context(), contextArg)
	if err != nil {
		return err
	}

	compacted, err := rt.proc.Compact(doc, context, graph)
	if err != nil {
		return err
	}
	return writeJSON(cmd, rt.cfg, compacted)
}
