// ABOUTME: Product domain model represents a normalized product from any remote store
// ABOUTME: Every field has a defined default so normalization never fails on sparse records

package domain

// Product is the normalized representation of a remote catalog record.
// Price fields are pointers because a missing upstream price must stay
// distinguishable from a free (zero-priced) item.
type Product struct {
	// ID is the product identifier in the owning store
	ID int64

	// SourceID identifies the store this product came from
	SourceID string

	// SourceName is the display name of the owning store
	SourceName string

	// Name is the product title
	Name string

	// Slug is the URL-safe product name
	Slug string

	// Permalink is the product page URL on the owning store
	Permalink string

	// Price is the effective price, nil when the store reported none
	Price *float64

	// RegularPrice is the non-discounted price, nil when absent
	RegularPrice *float64

	// SalePrice is the discounted price, nil when absent
	SalePrice *float64

	// Image is the first product image URL; remaining images are discarded
	Image string

	// ShortDescription is the short description with markup stripped
	ShortDescription string

	// Description is the full description as delivered by the store
	Description string

	// Categories holds category names only
	Categories []string

	// Tags holds tag names only
	Tags []string

	// StockStatus is the store-reported stock status (e.g. "instock")
	StockStatus string

	// DateCreated is the creation timestamp in the store's native string
	// format. It is compared lexically for date sorting, never parsed.
	DateCreated string

	// DateModified is the modification timestamp, same caveat as DateCreated
	DateModified string
}
