package main

import (
	"github.com/spf13/cobra"
)

// NewExpandCmd creates the expand command.
func NewExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand [input]",
		Short: "Expand a JSON-LD document to expanded form",
		Long: `Expand removes context from a JSON-LD document, replacing every term
with its full IRI and every value with an explicit value object.

Examples:
  # Expand a local file
  jsonld expand document.jsonld

  # Expand a remote document
  jsonld expand https://example.com/doc.jsonld

  # Expand from stdin
  cat doc.json | jsonld expand`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExpandCmd,
	}
}

// runExpandCmd executes the expand command.
func runExpandCmd(cmd *cobra.Command, args []string) error {
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
	if err := requireJSONInput(doc, "expand"); err != nil {
		return err
	}
	if err := checkSafe(rt, doc, sourceName(arg)); err != nil {
		return err
	}

	expanded, err := rt.proc.Expand(doc)
	if err != nil {
		return err
	}
	return writeJSON(cmd, rt.cfg, expanded)
}
