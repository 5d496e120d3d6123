// ABOUTME: Product aggregation handler for the Huma API
// ABOUTME: Exposes the one storefront-facing operation: a globally paginated product listing

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"multistore-products-api/api/dto/mappers"
	"multistore-products-api/api/dto/responses"
	"multistore-products-api/core/domain"
)

// ProductService interface defines the methods needed from the catalog service
type ProductService interface {
	GetProducts(ctx context.Context, query domain.Query) domain.PageResult
}

// ProductsHandler handles product aggregation HTTP requests
type ProductsHandler struct {
	service ProductService
}

// NewProductsHandler creates a new products handler
func NewProductsHandler(service ProductService) *ProductsHandler {
	return &ProductsHandler{
		service: service,
	}
}

// RegisterRoutes registers the product aggregation routes
func (h *ProductsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getProducts",
		Method:      http.MethodGet,
		Path:        "/products",
		Summary:     "List products across all configured stores",
		Description: "Fans out to every resolved store, merges the results into one globally sorted ordering, and returns the requested page.",
		Tags:        []string{"Products"},
	}, h.GetProducts)
}

// GetProductsInput defines the input for the GetProducts operation
type GetProductsInput struct {
	Stores   []string `query:"stores" doc:"Restrict to specific store IDs; empty means every enabled store"`
	Page     int      `query:"page,omitempty" minimum:"1" default:"1" doc:"Page number (1-based)"`
	PerPage  int      `query:"per_page,omitempty" minimum:"1" maximum:"100" default:"12" doc:"Items per page"`
	OrderBy  string   `query:"orderby,omitempty" default:"date" doc:"Sort field: date, price, title"`
	Order    string   `query:"order,omitempty" enum:"ASC,DESC,asc,desc" default:"DESC" doc:"Sort direction"`
	Category string   `query:"category,omitempty" doc:"Category filter forwarded to each store"`
	Tag      string   `query:"tag,omitempty" doc:"Tag filter forwarded to each store"`
	MinPrice string   `query:"min_price,omitempty" doc:"Minimum price filter"`
	MaxPrice string   `query:"max_price,omitempty" doc:"Maximum price filter"`
}

// GetProductsOutput defines the output for the GetProducts operation
type GetProductsOutput struct {
	Body responses.ProductsPageResponse
}

// GetProducts handles the GET /products endpoint. Partial source failure
// is not surfaced here: the service always answers with a best-effort page.
func (h *ProductsHandler) GetProducts(ctx context.Context, input *GetProductsInput) (*GetProductsOutput, error) {
	query := domain.Query{
		Sources:  input.Stores,
		Page:     input.Page,
		PerPage:  input.PerPage,
		OrderBy:  input.OrderBy,
		Order:    input.Order,
		Category: input.Category,
		Tag:      input.Tag,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
	}

	result := h.service.GetProducts(ctx, query)

	return &GetProductsOutput{
		Body: mappers.ToProductsPageResponse(result),
	}, nil
}
