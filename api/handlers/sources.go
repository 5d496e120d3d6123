// ABOUTME: Admin handlers for source configuration and cache management
// ABOUTME: Every record is sanitized and validated before it reaches the store

package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"multistore-products-api/api/dto/mappers"
	"multistore-products-api/api/dto/requests"
	"multistore-products-api/api/dto/responses"
	"multistore-products-api/core/catalog"
	"multistore-products-api/core/domain"
	"multistore-products-api/core/interfaces"
)

// AdminHandler handles source configuration and cache administration
type AdminHandler struct {
	sources  interfaces.SourceStore
	cache    interfaces.Cache
	logger   interfaces.Logger
	validate *validator.Validate
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(sources interfaces.SourceStore, cache interfaces.Cache, logger interfaces.Logger) *AdminHandler {
	return &AdminHandler{
		sources:  sources,
		cache:    cache,
		logger:   logger,
		validate: validator.New(),
	}
}

// RegisterRoutes registers all admin routes
func (h *AdminHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listSources",
		Method:      http.MethodGet,
		Path:        "/admin/sources",
		Summary:     "List configured stores",
		Description: "Returns every configured store in stored order with credentials redacted.",
		Tags:        []string{"Admin"},
	}, h.ListSources)

	huma.Register(api, huma.Operation{
		OperationID: "saveSources",
		Method:      http.MethodPut,
		Path:        "/admin/sources",
		Summary:     "Replace the store configuration",
		Description: "Persists the given list as the complete new configuration after sanitizing every record.",
		Tags:        []string{"Admin"},
	}, h.SaveSources)

	huma.Register(api, huma.Operation{
		OperationID: "clearProductCache",
		Method:      http.MethodPost,
		Path:        "/admin/cache/clear",
		Summary:     "Clear the aggregated product cache",
		Description: "Drops every cached page result. The only explicit invalidation path; entries otherwise expire by TTL.",
		Tags:        []string{"Admin"},
	}, h.ClearCache)
}

// ListSourcesOutput defines the output for the ListSources operation
type ListSourcesOutput struct {
	Body responses.ListSourcesResponse
}

// ListSources handles the GET /admin/sources endpoint
func (h *AdminHandler) ListSources(ctx context.Context, _ *struct{}) (*ListSourcesOutput, error) {
	sources, err := h.sources.List(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListSourcesOutput{
		Body: responses.ListSourcesResponse{
			Sources: mappers.ToSourceResponses(sources),
		},
	}, nil
}

// SaveSourcesInput defines the input for the SaveSources operation
type SaveSourcesInput struct {
	Body requests.SaveSourcesRequest
}

// SaveSourcesOutput defines the output for the SaveSources operation
type SaveSourcesOutput struct {
	Body responses.SaveSourcesResponse
}

// SaveSources handles the PUT /admin/sources endpoint
func (h *AdminHandler) SaveSources(ctx context.Context, input *SaveSourcesInput) (*SaveSourcesOutput, error) {
	input.Body.ApplyDefaults()

	sources := make([]domain.Source, 0, len(input.Body.Sources))
	for i := range input.Body.Sources {
		record := &input.Body.Sources[i]

		if err := h.validate.Struct(record); err != nil {
			return nil, huma.Error400BadRequest(fmt.Sprintf("invalid source at index %d: %v", i, err))
		}

		if record.ID == "" {
			record.ID = uuid.New().String()
		}

		src := mappers.ToSource(record)
		if err := src.Validate(); err != nil {
			return nil, huma.Error400BadRequest(fmt.Sprintf("invalid source at index %d: %v", i, err))
		}

		sources = append(sources, src)
	}

	if err := h.sources.Replace(ctx, sources); err != nil {
		return nil, toHumaError(err)
	}

	h.logger.Info("Source configuration replaced", map[string]interface{}{
		"count": len(sources),
	})

	// Configured stores changed, so every cached page may be stale
	if err := h.cache.DeletePrefix(ctx, catalog.CacheKeyPrefix); err != nil {
		h.logger.Warn("Failed to clear product cache after configuration change", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return &SaveSourcesOutput{
		Body: responses.SaveSourcesResponse{Saved: len(sources)},
	}, nil
}

// ClearCacheOutput defines the output for the ClearCache operation
type ClearCacheOutput struct {
	Body responses.ClearCacheResponse
}

// ClearCache handles the POST /admin/cache/clear endpoint
func (h *AdminHandler) ClearCache(ctx context.Context, _ *struct{}) (*ClearCacheOutput, error) {
	if err := h.cache.DeletePrefix(ctx, catalog.CacheKeyPrefix); err != nil {
		return nil, toHumaError(err)
	}

	h.logger.Info("Product cache cleared", nil)

	return &ClearCacheOutput{
		Body: responses.ClearCacheResponse{Cleared: true},
	}, nil
}
