// ABOUTME: Response DTOs for product aggregation endpoints
// ABOUTME: JSON keys mirror the normalized record shape consumed by the storefront widget

package responses

// ProductResponse represents one normalized product in API responses
type ProductResponse struct {
	ID               int64    `json:"id" doc:"Product identifier in the owning store"`
	StoreID          string   `json:"store_id" doc:"Identifier of the owning store"`
	StoreName        string   `json:"store_name" doc:"Display name of the owning store"`
	Name             string   `json:"name" doc:"Product title"`
	Slug             string   `json:"slug" doc:"URL-safe product name"`
	Permalink        string   `json:"permalink" doc:"Product page URL on the owning store"`
	Price            *float64 `json:"price" doc:"Effective price, null when the store reported none"`
	RegularPrice     *float64 `json:"regular_price" doc:"Non-discounted price, null when absent"`
	SalePrice        *float64 `json:"sale_price" doc:"Discounted price, null when absent"`
	Image            string   `json:"image" doc:"First product image URL"`
	ShortDescription string   `json:"short_description" doc:"Short description, markup stripped"`
	Description      string   `json:"description" doc:"Full description"`
	Categories       []string `json:"categories" doc:"Category names"`
	Tags             []string `json:"tags" doc:"Tag names"`
	StockStatus      string   `json:"stock_status" doc:"Store-reported stock status"`
	DateCreated      string   `json:"date_created" doc:"Creation timestamp, source-native format"`
	DateModified     string   `json:"date_modified" doc:"Modification timestamp, source-native format"`
}

// ProductsPageResponse is one globally sorted, globally paginated page
type ProductsPageResponse struct {
	Items    []ProductResponse `json:"items" doc:"Products on this page"`
	Total    int               `json:"total" doc:"Total items across all queried stores"`
	MaxPages int               `json:"max_num_pages" doc:"Total page count"`
}
