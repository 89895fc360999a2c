package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/pkg/layer"
	"github.com/layerforge/layerforge/pkg/render/treeviz"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	format   string // dot, svg, or png
	detailed bool   // include bounds and paint status in labels
	output   string // output file ("" writes DOT to stdout)
}

// newInspectCmd creates the inspect command. It renders a layer tree as a
// Graphviz diagram so a selector can be chosen with the structure in view.
func newInspectCmd() *cobra.Command {
	opts := inspectOpts{format: "dot"}

	cmd := &cobra.Command{
		Use:   "inspect [tree.json]",
		Short: "Render a layer tree as a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case "dot", "svg", "png":
			default:
				return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png)", opts.format)
			}
			return runInspect(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include bounds and paint status in labels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout for dot)")

	return cmd
}

func runInspect(ctx context.Context, path string, opts *inspectOpts) error {
	tree, err := layer.ReadTreeFile(path)
	if err != nil {
		return err
	}

	dot := treeviz.ToDOT(tree, treeviz.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case "svg":
		if data, err = treeviz.RenderSVG(dot); err != nil {
			return err
		}
	case "png":
		if data, err = treeviz.RenderPNG(dot); err != nil {
			return err
		}
	default:
		data = []byte(dot)
	}

	if opts.output == "" {
		if opts.format != "dot" {
			return fmt.Errorf("--output is required for %s", opts.format)
		}
		fmt.Print(dot)
		return nil
	}

	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return err
	}

	stats := layer.TreeStats(tree)
	printSuccess("Rendered %s diagram", strings.ToUpper(opts.format))
	printStats(stats.Nodes, stats.MaxDepth, false)
	printFile(opts.output)
	return nil
}
