package cli

import (
	"context"

	"github.com/layerforge/layerforge/internal/config"
	"github.com/layerforge/layerforge/pkg/cache"
	"github.com/layerforge/layerforge/pkg/pipeline"
	"github.com/layerforge/layerforge/pkg/store"
)

// newRunner builds a pipeline runner from the loaded configuration.
// The returned runner owns its cache and store; callers must Close it.
func newRunner(ctx context.Context, withStore bool) (*pipeline.Runner, error) {
	cfg, err := config.Load(configPathFromContext(ctx))
	if err != nil {
		return nil, err
	}

	c, err := buildCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}

	var st store.Store
	if withStore {
		st, err = buildStore(ctx, cfg.Store)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	return pipeline.NewRunner(c, nil, st, loggerFromContext(ctx)), nil
}

// buildCache constructs the configured cache backend.
func buildCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	case config.CacheNone:
		return cache.NewNullCache(), nil
	default:
		dir := cfg.Dir
		if dir == "" {
			d, err := config.DefaultCacheDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	}
}

// buildStore constructs the configured persistence backend.
// The "none" backend returns nil, which disables persistence entirely.
func buildStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case config.StoreMongo:
		return store.NewMongoStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	case config.StoreNone:
		return nil, nil
	default:
		return store.NewMemoryStore(), nil
	}
}

// cacheDir resolves the active file cache directory for cache management
// commands, honoring a configured override.
func cacheDir(ctx context.Context) (string, error) {
	cfg, err := config.Load(configPathFromContext(ctx))
	if err != nil {
		return "", err
	}
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	return config.DefaultCacheDir()
}
