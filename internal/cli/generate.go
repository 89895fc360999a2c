package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/pkg/codegen"
	"github.com/layerforge/layerforge/pkg/layer"
	"github.com/layerforge/layerforge/pkg/pipeline"
)

// artifactExt maps a target to its source file extension.
var artifactExt = map[string]string{
	codegen.TargetReact: ".tsx",
	codegen.TargetVue:   ".vue",
	codegen.TargetHTML:  ".html",
	codegen.TargetSVG:   ".svg",
}

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	selector   string // element to isolate before emission
	targets    string // comma-separated targets
	name       string // component name
	styleGuide string // style guide identifier forwarded to emitters
	noStyles   bool   // skip stylesheet emission
	noA11y     bool   // skip ARIA/role passthrough
	responsive bool   // emit responsive stylesheet rules
	refresh    bool   // bypass caches
	noPersist  bool   // skip saving code mappings
	output     string // output directory
	decompose  bool   // also enqueue the worker task batch
}

// newGenerateCmd creates the generate command, the main entry point of the
// CLI. It runs the full pipeline: isolate, normalize, emit one artifact per
// target, and save code mappings to the configured store.
//
// Default settings:
//   - targets: react
//   - styles and accessibility passthrough: enabled
//   - output: current directory
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{output: "."}

	cmd := &cobra.Command{
		Use:   "generate [tree.json]",
		Short: "Generate code for a component subtree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.selector == "" {
				return fmt.Errorf("--selector is required")
			}
			return runGenerate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.selector, "selector", "s", "", "element id (or id attribute) to isolate")
	cmd.Flags().StringVarP(&opts.targets, "target", "t", "react", "target(s): react, vue, html, svg (comma-separated)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "component name (default: GeneratedComponent)")
	cmd.Flags().StringVar(&opts.styleGuide, "style-guide", "", "style guide identifier recorded with the artifacts")
	cmd.Flags().BoolVar(&opts.noStyles, "no-styles", false, "skip stylesheet emission")
	cmd.Flags().BoolVar(&opts.noA11y, "no-a11y", false, "skip ARIA/role attribute passthrough")
	cmd.Flags().BoolVar(&opts.responsive, "responsive", false, "emit responsive stylesheet rules")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass caches")
	cmd.Flags().BoolVar(&opts.noPersist, "no-persist", false, "do not save code mappings")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().BoolVar(&opts.decompose, "decompose", false, "also enqueue the worker task batch")

	return cmd
}

func runGenerate(ctx context.Context, path string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	tree, err := layer.ReadTreeFile(path)
	if err != nil {
		return err
	}

	runner, err := newRunner(ctx, !opts.noPersist)
	if err != nil {
		return err
	}
	defer runner.Close(ctx)

	targets := strings.Split(opts.targets, ",")
	for i := range targets {
		targets[i] = strings.TrimSpace(targets[i])
	}

	pipelineOpts := pipeline.Options{
		Selector:          opts.selector,
		Targets:           targets,
		ComponentName:     opts.name,
		StyleGuide:        opts.styleGuide,
		SkipStyles:        opts.noStyles,
		SkipAccessibility: opts.noA11y,
		Responsive:        opts.responsive,
		Refresh:           opts.refresh,
		SkipPersist:       opts.noPersist,
		Logger:            logger,
	}

	spinner := newSpinnerWithContext(ctx, "Generating artifacts...")
	spinner.Start()

	result, err := runner.Execute(ctx, tree, pipelineOpts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Generated %d artifact(s) for %s",
		len(result.Artifacts), StyleHighlight.Render(result.Component.ElementID)))
	printStats(result.Stats.NodeCount, result.Stats.MaxDepth, result.CacheInfo.TreeHit)

	if err := os.MkdirAll(opts.output, 0755); err != nil {
		return err
	}

	base := strings.ToLower(result.Component.ElementID)
	for _, target := range targets {
		artifact := result.Artifacts[target]
		file := filepath.Join(opts.output, base+artifactExt[target])
		if err := os.WriteFile(file, []byte(artifact.Code), 0644); err != nil {
			return err
		}
		printFile(file)

		if artifact.Styles != "" {
			cssFile := filepath.Join(opts.output, base+"."+target+".css")
			if err := os.WriteFile(cssFile, []byte(artifact.Styles), 0644); err != nil {
				return err
			}
			printFile(cssFile)
		}

		for _, warning := range artifact.Warnings {
			printWarning("%s", warning)
		}
	}

	if opts.decompose {
		batch, err := runner.DecomposeAndSave(ctx, result.Component.ElementID, result.Component, targets[0])
		if err != nil {
			return err
		}
		printInfo("Enqueued %d worker tasks", len(batch))
	} else {
		printNextStep("Queue worker tasks",
			fmt.Sprintf("layerforge decompose %s -s %s -t %s", path, opts.selector, targets[0]))
	}

	return nil
}
