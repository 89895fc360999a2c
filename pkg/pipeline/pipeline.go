// Package pipeline provides the core translation pipeline for LayerForge.
//
// This package implements the complete isolate → normalize → generate →
// persist pipeline that can be used by CLI, API, and worker components.
// By centralizing this logic, we ensure consistent behavior across all
// entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Isolate: Extract the selected subtree from a captured layer tree
//     and rebase its coordinates so the component stands alone
//  2. Generate: Emit source artifacts for each requested target
//  3. Persist: Save generated code mappings to the configured store
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, store, logger)
//	opts := pipeline.Options{
//	    Selector: "#hero",
//	    Targets:  []string{"react", "svg"},
//	}
//	result, err := runner.Execute(ctx, tree, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	code := result.Artifacts["react"].Code
//
// Run individual stages:
//
//	// Isolate only
//	component, err := runner.Isolate(ctx, tree, opts)
//
//	// Generate with an existing component
//	artifacts, err := runner.Generate(ctx, component, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/layerforge/layerforge/pkg/cache"
	"github.com/layerforge/layerforge/pkg/codegen"
	"github.com/layerforge/layerforge/pkg/errors"
	"github.com/layerforge/layerforge/pkg/layer"
	"github.com/layerforge/layerforge/pkg/tasks"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

// DefaultTargets is used when no targets are requested.
var DefaultTargets = []string{codegen.TargetReact}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the translation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Isolate options
	Selector string `json:"selector"`
	Refresh  bool   `json:"refresh,omitempty"`

	// Generate options
	Targets           []string `json:"targets,omitempty"`
	ComponentName     string   `json:"component_name,omitempty"`
	StyleGuide        string   `json:"style_guide,omitempty"`
	SkipStyles        bool     `json:"skip_styles,omitempty"`        // Skip stylesheet emission (default: false = emit)
	SkipAccessibility bool     `json:"skip_accessibility,omitempty"` // Skip ARIA/role passthrough (default: false = pass through)
	Responsive        bool     `json:"responsive,omitempty"`

	// Persist options
	SkipPersist bool `json:"skip_persist,omitempty"` // Do not write code mappings

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Component is the isolated, normalized subtree.
	Component *layer.Node

	// ComponentHash is the content hash of the component tree.
	ComponentHash string

	// Artifacts contains generated outputs keyed by target.
	Artifacts map[string]codegen.Artifact

	// Props is the component's extracted prop interface.
	Props []codegen.Prop

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	MaxDepth     int
	IsolateTime  time.Duration
	GenerateTime time.Duration
	PersistTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	TreeHit      bool            // Whether the isolated component came from cache
	ArtifactHits map[string]bool // Per-target artifact cache hits
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Selector == "" {
		return errors.New(errors.ErrCodeInvalidSelector, "selector is required")
	}
	if len(o.Targets) == 0 {
		o.Targets = append([]string(nil), DefaultTargets...)
	}
	for _, target := range o.Targets {
		if err := codegen.ValidateTarget(target); err != nil {
			return err
		}
	}
	if o.ComponentName == "" {
		o.ComponentName = codegen.DefaultComponentName
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// CodegenOptions returns the emission options for one target.
func (o *Options) CodegenOptions(target string) codegen.Options {
	return codegen.Options{
		Target:               target,
		ComponentName:        o.ComponentName,
		StyleGuide:           o.StyleGuide,
		IncludeStyles:        !o.SkipStyles,
		IncludeAccessibility: !o.SkipAccessibility,
		Responsive:           o.Responsive,
	}
}

// ArtifactKeyOpts returns cache key options for one target's artifact.
func (o *Options) ArtifactKeyOpts(target string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Target:               target,
		ComponentName:        o.ComponentName,
		StyleGuide:           o.StyleGuide,
		IncludeStyles:        !o.SkipStyles,
		IncludeAccessibility: !o.SkipAccessibility,
		Responsive:           o.Responsive,
	}
}

// TaskCount returns the number of tasks a decomposition produces.
// Exposed so API responses can report it without decomposing.
func TaskCount() int { return tasks.PipelineLength }
