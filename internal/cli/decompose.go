package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/pkg/codegen"
	"github.com/layerforge/layerforge/pkg/layer"
	"github.com/layerforge/layerforge/pkg/pipeline"
)

// decomposeOpts holds the command-line flags for the decompose command.
type decomposeOpts struct {
	selector    string // element to isolate first
	target      string // target recorded on the generation tasks
	componentID string // override for the component id (default: element id)
}

// newDecomposeCmd creates the decompose command. It isolates a component
// and enqueues its fixed worker task batch in the configured store.
func newDecomposeCmd() *cobra.Command {
	var opts decomposeOpts

	cmd := &cobra.Command{
		Use:   "decompose [tree.json]",
		Short: "Break a component into its worker task batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.selector == "" {
				return fmt.Errorf("--selector is required")
			}
			if err := codegen.ValidateTarget(opts.target); err != nil {
				return err
			}
			return runDecompose(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.selector, "selector", "s", "", "element id (or id attribute) to isolate")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "react", "target for the generation tasks")
	cmd.Flags().StringVar(&opts.componentID, "component-id", "", "component id (default: isolated element id)")

	return cmd
}

func runDecompose(ctx context.Context, path string, opts *decomposeOpts) error {
	logger := loggerFromContext(ctx)

	tree, err := layer.ReadTreeFile(path)
	if err != nil {
		return err
	}

	runner, err := newRunner(ctx, true)
	if err != nil {
		return err
	}
	defer runner.Close(ctx)

	component, err := runner.Isolate(ctx, tree, pipeline.Options{Selector: opts.selector})
	if err != nil {
		return err
	}

	componentID := opts.componentID
	if componentID == "" {
		componentID = component.ElementID
	}

	p := newProgress(logger)
	batch, err := runner.DecomposeAndSave(ctx, componentID, component, opts.target)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Enqueued %d tasks", len(batch)))

	printSuccess("Decomposed %s into %d tasks", StyleHighlight.Render(componentID), len(batch))
	for _, task := range batch {
		printDetail("%d. %-25s %s", task.Priority, task.Type, task.Description)
	}

	return nil
}
