package main

import (
	"github.com/spf13/cobra"
)

// NewFlattenCmd creates the flatten command.
func NewFlattenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flatten [input]",
		Short: "Flatten a JSON-LD document",
		Long: `Flatten collects all properties of each node into a single node object
and labels every blank node, producing a flat @graph array.

Without --context the result stays in expanded form; with --context it is
additionally compacted.

Examples:
  # Flatten to expanded form
  jsonld flatten document.jsonld

  # Flatten and compact the result
  jsonld flatten --context context.jsonld document.jsonld`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFlattenCmd,
	}

	cmd.Flags().StringP("context", "c", "",
		"Optional context to compact the flattened output against")

	return cmd
}

// runFlattenCmd executes the flatten command.
func runFlattenCmd(cmd *cobra.Command, args []string) error {
	contextArg, err := cmd.Flags().GetString("context")
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
	if err := requireJSONInput(doc, "flatten"); err != nil {
		return err
	}
	if err := checkSafe(rt, doc, sourceName(arg)); err != nil {
		return err
	}

	var context interface{}
	if contextArg != "" {
		context, err = rt.resolver.ResolveAuxiliary(cmd.Context(), contextArg)
		if err != nil {
			return err
		}
	}

	flattened, err := rt.proc.Flatten(doc, context)
	if err != nil {
		return err
	}
	return writeJSON(cmd, rt.cfg, flattened)
}
