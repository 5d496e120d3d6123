// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, and source persistence.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation using go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured JSON logger built on logrus
// - store/sqlite: SQLite-backed source configuration store
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(1 * time.Hour)
//	err := cache.Set(ctx, "key", []byte("value"), 5*time.Minute)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	})
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://shop.example.com/wp-json/wc/v3/products")
//	if err != nil {
//	    // Handle error
//	}
//
// # Source Store
//
// The SQLite store persists the configured remote stores in their admin-given
// order:
//
//	store, err := sqlite.NewStore("sources.db")
//	sources, err := store.List(ctx)
package infrastructure
