package pipeline

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/layerforge/layerforge/pkg/cache"
	"github.com/layerforge/layerforge/pkg/codegen"
	"github.com/layerforge/layerforge/pkg/errors"
	"github.com/layerforge/layerforge/pkg/layer"
	"github.com/layerforge/layerforge/pkg/layer/transform"
	"github.com/layerforge/layerforge/pkg/observability"
	"github.com/layerforge/layerforge/pkg/store"
	"github.com/layerforge/layerforge/pkg/tasks"
)

// Runner encapsulates pipeline execution with caching and persistence.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for its collaborators - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Store  store.Store
	Logger *log.Logger
}

// NewRunner creates a runner with the given collaborators.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If st is nil, persistence is skipped.
func NewRunner(c cache.Cache, keyer cache.Keyer, st store.Store, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Store:  st,
		Logger: logger,
	}
}

// Execute runs the complete isolate → generate → persist pipeline.
func (r *Runner) Execute(ctx context.Context, root *layer.Node, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string]codegen.Artifact),
	}

	// Stage 1: Isolate
	isolateStart := time.Now()
	component, treeHit, err := r.IsolateWithCacheInfo(ctx, root, opts)
	if err != nil {
		return nil, err
	}
	result.Component = component
	result.Stats.IsolateTime = time.Since(isolateStart)
	result.CacheInfo.TreeHit = treeHit

	treeStats := layer.TreeStats(component)
	result.Stats.NodeCount = treeStats.Nodes
	result.Stats.MaxDepth = treeStats.MaxDepth

	// Compute component hash for cache keys and API responses
	if data, err := layer.MarshalTree(component); err == nil {
		result.ComponentHash = cache.Hash(data)
	}

	r.Logger.Info("isolated component",
		"selector", opts.Selector,
		"nodes", treeStats.Nodes,
		"depth", treeStats.MaxDepth,
		"duration", result.Stats.IsolateTime)

	// Stage 2: Generate
	generateStart := time.Now()
	artifacts, hits, err := r.GenerateWithCacheInfo(ctx, component, result.ComponentHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.GenerateTime = time.Since(generateStart)
	result.CacheInfo.ArtifactHits = hits
	result.Props = codegen.ExtractProps(component)

	r.Logger.Info("generated artifacts",
		"targets", opts.Targets,
		"duration", result.Stats.GenerateTime)

	// Stage 3: Persist
	if r.Store != nil && !opts.SkipPersist {
		persistStart := time.Now()
		if err := r.persistMappings(ctx, component, artifacts); err != nil {
			return nil, err
		}
		result.Stats.PersistTime = time.Since(persistStart)

		r.Logger.Info("saved code mappings",
			"element", component.ElementID,
			"targets", len(artifacts),
			"duration", result.Stats.PersistTime)
	}

	return result, nil
}

// IsolateWithCacheInfo extracts and normalizes the selected subtree with
// caching, and returns cache hit info.
func (r *Runner) IsolateWithCacheInfo(ctx context.Context, root *layer.Node, opts Options) (*layer.Node, bool, error) {
	if opts.Selector == "" {
		return nil, false, errors.New(errors.ErrCodeInvalidSelector, "selector is required")
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnIsolateStart(ctx, opts.Selector)

	// Compute cache key from the source tree content
	treeData, err := layer.MarshalTree(root)
	if err != nil {
		observability.Pipeline().OnIsolateComplete(ctx, opts.Selector, 0, time.Since(start), err)
		return nil, false, err
	}
	cacheKey := r.Keyer.TreeKey(cache.Hash(treeData), opts.Selector)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if component, err := layer.UnmarshalTree(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "tree")
				observability.Pipeline().OnIsolateComplete(ctx, opts.Selector, component.Count(), time.Since(start), nil)
				return component, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "tree")
	}

	// Isolate and normalize
	component, err := transform.Isolate(root, opts.Selector)
	if err != nil {
		observability.Pipeline().OnIsolateComplete(ctx, opts.Selector, 0, time.Since(start), err)
		return nil, false, err
	}
	component = transform.Normalize(component)

	// Cache the result
	if data, err := layer.MarshalTree(component); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLTree)
		observability.Cache().OnCacheSet(ctx, "tree", len(data))
	}

	observability.Pipeline().OnIsolateComplete(ctx, opts.Selector, component.Count(), time.Since(start), nil)
	return component, false, nil // Cache miss
}

// Isolate is a convenience wrapper that calls IsolateWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Isolate(ctx context.Context, root *layer.Node, opts Options) (*layer.Node, error) {
	component, _, err := r.IsolateWithCacheInfo(ctx, root, opts)
	return component, err
}

// GenerateWithCacheInfo emits artifacts for every requested target with
// per-target caching and returns per-target cache hit info.
//
// Targets are emitted concurrently; emission is pure so the only shared
// state is the result map, guarded by a mutex.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, component *layer.Node, componentHash string, opts Options) (map[string]codegen.Artifact, map[string]bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}
	r.applyLogger(&opts)

	if componentHash == "" {
		data, err := layer.MarshalTree(component)
		if err != nil {
			return nil, nil, err
		}
		componentHash = cache.Hash(data)
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		firstErr  error
		artifacts = make(map[string]codegen.Artifact, len(opts.Targets))
		hits      = make(map[string]bool, len(opts.Targets))
	)

	for _, target := range opts.Targets {
		wg.Add(1)
		go func(target string) {
			defer wg.Done()

			artifact, hit, err := r.generateOne(ctx, component, componentHash, target, opts)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			artifacts[target] = artifact
			hits[target] = hit
		}(target)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, nil, firstErr
	}
	return artifacts, hits, nil
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, component *layer.Node, opts Options) (map[string]codegen.Artifact, error) {
	artifacts, _, err := r.GenerateWithCacheInfo(ctx, component, "", opts)
	return artifacts, err
}

// generateOne emits a single target, consulting the artifact cache first.
func (r *Runner) generateOne(ctx context.Context, component *layer.Node, componentHash, target string, opts Options) (codegen.Artifact, bool, error) {
	if err := ctx.Err(); err != nil {
		return codegen.Artifact{}, false, err
	}

	start := time.Now()
	observability.Pipeline().OnGenerateStart(ctx, target, opts.ComponentName)

	cacheKey := r.Keyer.ArtifactKey(componentHash, opts.ArtifactKeyOpts(target))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var artifact codegen.Artifact
			if err := json.Unmarshal(data, &artifact); err == nil {
				observability.Cache().OnCacheHit(ctx, "artifact")
				observability.Pipeline().OnGenerateComplete(ctx, target, opts.ComponentName, time.Since(start), nil)
				return artifact, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	artifact, err := codegen.Generate(component, opts.CodegenOptions(target))
	if err != nil {
		observability.Pipeline().OnGenerateComplete(ctx, target, opts.ComponentName, time.Since(start), err)
		return codegen.Artifact{}, false, err
	}

	if data, err := json.Marshal(artifact); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	observability.Pipeline().OnGenerateComplete(ctx, target, opts.ComponentName, time.Since(start), nil)
	return artifact, false, nil // Cache miss
}

// persistMappings upserts one code mapping per generated target. Writes
// are awaited with bounded retry so transient store failures do not drop
// generated code silently.
func (r *Runner) persistMappings(ctx context.Context, component *layer.Node, artifacts map[string]codegen.Artifact) error {
	for target, artifact := range artifacts {
		mapping := store.CodeMapping{
			ElementID: component.ElementID,
			Target:    target,
			Code:      artifact.Code,
			UpdatedAt: time.Now().UTC(),
		}

		start := time.Now()
		err := store.RetryWithBackoff(ctx, func() error {
			return r.Store.SaveCodeMapping(ctx, mapping)
		})
		if err != nil {
			observability.Store().OnSaveError(ctx, "code_mappings", err)
			return err
		}
		observability.Store().OnSave(ctx, "code_mappings", time.Since(start))
	}
	return nil
}

// DecomposeAndSave breaks a component into its fixed worker task batch and
// persists every task. The returned slice is ordered by priority.
func (r *Runner) DecomposeAndSave(ctx context.Context, componentID string, component *layer.Node, target string) ([]tasks.Task, error) {
	start := time.Now()
	observability.Pipeline().OnDecomposeStart(ctx, componentID)

	batch := tasks.Decompose(componentID, component, target)

	if r.Store != nil {
		for _, task := range batch {
			saveStart := time.Now()
			err := store.RetryWithBackoff(ctx, func() error {
				return r.Store.SaveWorkerTask(ctx, task)
			})
			if err != nil {
				observability.Store().OnSaveError(ctx, "worker_tasks", err)
				observability.Pipeline().OnDecomposeComplete(ctx, componentID, 0, time.Since(start), err)
				return nil, err
			}
			observability.Store().OnSave(ctx, "worker_tasks", time.Since(saveStart))
		}
	}

	r.Logger.Info("decomposed component",
		"component", componentID,
		"tasks", len(batch),
		"duration", time.Since(start))

	observability.Pipeline().OnDecomposeComplete(ctx, componentID, len(batch), time.Since(start), nil)
	return batch, nil
}

// Close releases resources held by the runner (the cache and the store).
func (r *Runner) Close(ctx context.Context) error {
	var firstErr error
	if r.Cache != nil {
		firstErr = r.Cache.Close()
	}
	if r.Store != nil {
		if err := r.Store.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
