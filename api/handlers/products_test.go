package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"multistore-products-api/api/dto/responses"
	"multistore-products-api/core/domain"
)

// mockProductService is a mock implementation of the catalog service
type mockProductService struct {
	getProductsFunc func(ctx context.Context, query domain.Query) domain.PageResult
}

func (m *mockProductService) GetProducts(ctx context.Context, query domain.Query) domain.PageResult {
	if m.getProductsFunc != nil {
		return m.getProductsFunc(ctx, query)
	}
	return domain.EmptyPageResult()
}

func TestProductsHandler_RegisterRoutes(t *testing.T) {
	handler := NewProductsHandler(&mockProductService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	if openapi.Paths == nil || openapi.Paths["/products"] == nil {
		t.Fatal("GET /products endpoint not registered")
	}
	if openapi.Paths["/products"].Get == nil {
		t.Error("GET method not registered for /products")
	}
}

func TestProductsHandler_GetProducts_PassesQuery(t *testing.T) {
	var captured domain.Query

	handler := NewProductsHandler(&mockProductService{
		getProductsFunc: func(ctx context.Context, query domain.Query) domain.PageResult {
			captured = query
			return domain.EmptyPageResult()
		},
	})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/products?stores=s1,s2&page=2&per_page=6&orderby=price&order=ASC&category=shoes")
	if resp.Code != 200 {
		t.Fatalf("status = %d, want 200", resp.Code)
	}

	if len(captured.Sources) != 2 || captured.Sources[0] != "s1" || captured.Sources[1] != "s2" {
		t.Errorf("Sources = %v, want [s1 s2]", captured.Sources)
	}
	if captured.Page != 2 || captured.PerPage != 6 {
		t.Errorf("Page/PerPage = %d/%d, want 2/6", captured.Page, captured.PerPage)
	}
	if captured.OrderBy != "price" || captured.Order != "ASC" {
		t.Errorf("OrderBy/Order = %s/%s, want price/ASC", captured.OrderBy, captured.Order)
	}
	if captured.Category != "shoes" {
		t.Errorf("Category = %s, want shoes", captured.Category)
	}
}

func TestProductsHandler_GetProducts_ResponseShape(t *testing.T) {
	price := 19.99

	handler := NewProductsHandler(&mockProductService{
		getProductsFunc: func(ctx context.Context, query domain.Query) domain.PageResult {
			return domain.PageResult{
				Items: []domain.Product{{
					ID:         7,
					SourceID:   "s1",
					SourceName: "Store One",
					Name:       "Widget",
					Price:      &price,
					Categories: []string{"Gadgets"},
					Tags:       []string{},
				}},
				Total:    13,
				MaxPages: 2,
			}
		},
	})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/products")
	if resp.Code != 200 {
		t.Fatalf("status = %d, want 200", resp.Code)
	}

	var body responses.ProductsPageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unparseable body: %v", err)
	}

	if body.Total != 13 || body.MaxPages != 2 {
		t.Errorf("total/max_num_pages = %d/%d, want 13/2", body.Total, body.MaxPages)
	}
	if len(body.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(body.Items))
	}
	item := body.Items[0]
	if item.ID != 7 || item.StoreID != "s1" || item.StoreName != "Store One" {
		t.Errorf("item attribution wrong: %+v", item)
	}
	if item.Price == nil || *item.Price != 19.99 {
		t.Errorf("item price = %v, want 19.99", item.Price)
	}
}

func TestProductsHandler_GetProducts_RejectsInvalidPage(t *testing.T) {
	handler := NewProductsHandler(&mockProductService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/products?page=0")
	if resp.Code != 422 {
		t.Errorf("status = %d, want 422 for page below minimum", resp.Code)
	}
}
