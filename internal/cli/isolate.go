package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/pkg/layer"
	"github.com/layerforge/layerforge/pkg/pipeline"
)

// isolateOpts holds the command-line flags for the isolate command.
type isolateOpts struct {
	selector string // element id or id attribute to isolate
	output   string // output file path ("" writes to stdout)
	refresh  bool   // bypass the tree cache
}

// newIsolateCmd creates the isolate command. It extracts the selected
// subtree from a captured layer tree, rebases its coordinates, and writes
// the component tree as JSON.
//
// When no --selector is given and stdout is a terminal, an interactive
// picker lists the tree's elements.
func newIsolateCmd() *cobra.Command {
	var opts isolateOpts

	cmd := &cobra.Command{
		Use:   "isolate [tree.json]",
		Short: "Extract and normalize a component subtree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIsolate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.selector, "selector", "s", "", "element id (or id attribute) to isolate")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache")

	return cmd
}

func runIsolate(ctx context.Context, path string, opts *isolateOpts) error {
	logger := loggerFromContext(ctx)

	tree, err := layer.ReadTreeFile(path)
	if err != nil {
		return err
	}

	selector := opts.selector
	if selector == "" {
		selector, err = pickElement(tree)
		if err != nil {
			return err
		}
	}

	runner, err := newRunner(ctx, false)
	if err != nil {
		return err
	}
	defer runner.Close(ctx)

	p := newProgress(logger)
	component, hit, err := runner.IsolateWithCacheInfo(ctx, tree, pipeline.Options{
		Selector: selector,
		Refresh:  opts.refresh,
	})
	if err != nil {
		return err
	}
	stats := layer.TreeStats(component)
	p.done(fmt.Sprintf("Isolated %q", component.ElementID))

	if opts.output == "" {
		if err := layer.WriteTree(component, os.Stdout); err != nil {
			return err
		}
	} else {
		if err := layer.WriteTreeFile(component, opts.output); err != nil {
			return err
		}
		printSuccess("Isolated component %s", StyleHighlight.Render(component.ElementID))
		printStats(stats.Nodes, stats.MaxDepth, hit)
		printFile(opts.output)
		printNextStep("Generate code", fmt.Sprintf("layerforge generate %s -s %s -t react", path, selector))
	}

	return nil
}
