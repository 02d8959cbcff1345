package main

import (
	"github.com/spf13/cobra"
)

// NewFrameCmd creates the frame command.
func NewFrameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frame [input]",
		Short: "Frame a JSON-LD document",
		Long: `Frame reshapes a JSON-LD document to match the structure of the given
frame, selecting and embedding nodes as the frame prescribes.

The frame may be a file path, a URL, or inline JSON.

Examples:
  # Frame against a local frame document
  jsonld frame -f frame.jsonld document.jsonld

  # Inline frame
  jsonld frame -f '{"@type": "http://schema.org/Person"}' document.jsonld`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFrameCmd,
	}

	cmd.Flags().StringP("frame", "f", "",
		"Frame to apply: file path, URL, or inline JSON (required)")
	_ = cmd.MarkFlagRequired("frame")

	return cmd
}

// runFrameCmd executes the frame command.
func runFrameCmd(cmd *cobra.Command, args []string) error {
	frameArg, err := cmd.Flags().GetString("frame")
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
	if err := requireJSONInput(doc, "frame"); err != nil {
		return err
	}
	if err := checkSafe(rt, doc, sourceName(arg)); err != nil {
		return err
	}

	frame, err := rt.resolver.ResolveAuxiliary(cmd.Context(), frameArg)
	if err != nil {
		return err
	}

	framed, err := rt.proc.Frame(doc, frame)
	if err != nil {
		return err
	}
	return writeJSON(cmd, rt.cfg, framed)
}
