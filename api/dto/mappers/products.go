// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"multistore-products-api/api/dto/responses"
	"multistore-products-api/core/domain"
)

// ToProductResponse converts a domain Product to a ProductResponse DTO
func ToProductResponse(p *domain.Product) responses.ProductResponse {
	return responses.ProductResponse{
		ID:               p.ID,
		StoreID:          p.SourceID,
		StoreName:        p.SourceName,
		Name:             p.Name,
		Slug:             p.Slug,
		Permalink:        p.Permalink,
		Price:            p.Price,
		RegularPrice:     p.RegularPrice,
		SalePrice:        p.SalePrice,
		Image:            p.Image,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Categories:       p.Categories,
		Tags:             p.Tags,
		StockStatus:      p.StockStatus,
		DateCreated:      p.DateCreated,
		DateModified:     p.DateModified,
	}
}

// ToProductsPageResponse converts a domain PageResult to its response DTO
func ToProductsPageResponse(result domain.PageResult) responses.ProductsPageResponse {
	items := make([]responses.ProductResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, ToProductResponse(&result.Items[i]))
	}

	return responses.ProductsPageResponse{
		Items:    items,
		Total:    result.Total,
		MaxPages: result.MaxPages,
	}
}
