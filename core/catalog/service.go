// ABOUTME: Catalog service aggregates products across every configured remote store
// ABOUTME: Fans out one query per source, then merges, sorts, paginates, and caches

package catalog

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"multistore-products-api/core/domain"
	"multistore-products-api/core/interfaces"
)

const (
	// cacheTTL is how long a computed page stays valid. Entries expire by
	// elapsed time only; the admin bulk clear is the one explicit
	// invalidation path.
	cacheTTL = 300 * time.Second

	// fetchTimeout bounds each per-source request
	fetchTimeout = 10 * time.Second

	// maxPerSourceLimit caps the over-fetch so deep pagination cannot make
	// every source return its entire catalog
	maxPerSourceLimit = 100

	// maxConcurrentFetches bounds parallel outbound requests per query
	maxConcurrentFetches = 10
)

// CatalogService merges independently hosted product catalogs into one
// globally sorted, globally paginated result set.
type CatalogService struct {
	deps interfaces.Dependencies
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(deps interfaces.Dependencies) *CatalogService {
	return &CatalogService{
		deps: deps,
	}
}

// GetProducts answers one aggregation query. It always produces a page:
// a source that fails or times out simply contributes nothing, and total
// failure yields the defined empty page. Nothing here returns an error to
// the caller; per-source failures are logged and skipped.
func (s *CatalogService) GetProducts(ctx context.Context, query domain.Query) domain.PageResult {
	query.ApplyDefaults()

	cacheKey := queryCacheKey(query)
	if cached := s.getCachedPage(ctx, cacheKey); cached != nil {
		return *cached
	}

	sources := s.resolveQuerySources(ctx, query)
	if len(sources) == 0 {
		// Cached like any other response so a misconfiguration does not
		// turn into a fan-out storm on every request
		empty := domain.EmptyPageResult()
		s.cachePage(ctx, cacheKey, empty)
		return empty
	}

	limit := perSourceLimit(query.Page, query.PerPage)
	all, total := s.fanOut(ctx, sources, query, limit)

	if len(all) == 0 {
		empty := domain.EmptyPageResult()
		s.cachePage(ctx, cacheKey, empty)
		return empty
	}

	sortProducts(all, query.OrderBy, query.Order)

	result := domain.PageResult{
		Items:    paginateProducts(all, query.Page, query.PerPage),
		Total:    total,
		MaxPages: (total + query.PerPage - 1) / query.PerPage,
	}

	s.cachePage(ctx, cacheKey, result)

	return result
}

// perSourceLimit computes the capped over-fetch size. Sources only know
// their own local ordering, so the engine asks each one for enough records
// to cover every page up to the requested one, assuming each source's
// top-N under the shared sort is a superset of its share of the global
// top-N. Known limitation: past maxPerSourceLimit/perPage pages the cap
// wins and deep pages may be incomplete. That is an accepted bounded-cost
// trade-off, not a bug to fix quietly.
func perSourceLimit(page, perPage int) int {
	limit := page * perPage
	if limit > maxPerSourceLimit {
		return maxPerSourceLimit
	}
	return limit
}

// resolveQuerySources loads the configured sources and narrows them to the
// query's subset. A store read failure degrades to zero sources.
func (s *CatalogService) resolveQuerySources(ctx context.Context, query domain.Query) []domain.Source {
	if s.deps.Sources == nil {
		return nil
	}

	all, err := s.deps.Sources.List(ctx)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Error("Failed to load configured sources", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil
	}

	return resolveSources(all, query.Sources)
}

// fanOut runs one fetch per source concurrently and accumulates every
// successful source's items and reported total. The join waits for all
// fetches to settle before returning; a failed source contributes zero to
// both and does not cancel its siblings.
func (s *CatalogService) fanOut(ctx context.Context, sources []domain.Source, query domain.Query, limit int) ([]domain.Product, int) {
	type sourceResult struct {
		sourceID string
		result   *fetchResult
		err      error
	}

	resultsChan := make(chan sourceResult, len(sources))
	semaphore := make(chan struct{}, maxConcurrentFetches)

	var wg sync.WaitGroup

	for _, source := range sources {
		wg.Add(1)
		go func(src domain.Source) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
			defer cancel()

			result, err := s.fetchSourceProducts(fetchCtx, src, query, limit)
			resultsChan <- sourceResult{sourceID: src.ID, result: result, err: err}
		}(source)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	all := make([]domain.Product, 0, limit*len(sources))
	total := 0

	for res := range resultsChan {
		if res.err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Error("Failed to fetch products from source", map[string]interface{}{
					"source": res.sourceID,
					"error":  res.err.Error(),
				})
			}
			continue
		}

		all = append(all, res.result.items...)
		total += res.result.total
	}

	return all, total
}

// getCachedPage returns the cached page for a key, or nil on miss or any
// cache error
func (s *CatalogService) getCachedPage(ctx context.Context, key string) *domain.PageResult {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var result domain.PageResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}

	return &result
}

// cachePage stores a complete page under its fingerprint, ignoring cache
// errors: a failed store only costs a recomputation later
func (s *CatalogService) cachePage(ctx context.Context, key string, result domain.PageResult) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}

	if err := s.deps.Cache.Set(ctx, key, data, cacheTTL); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Failed to cache page result", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
}
