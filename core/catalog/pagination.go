// ABOUTME: Pagination window over the globally sorted product union
// ABOUTME: Slices the fetched superset; correctness depends on the per-source over-fetch

package catalog

import "multistore-products-api/core/domain"

// paginateProducts returns the [offset, offset+perPage) window of the
// sorted union, where offset = (page-1)*perPage.
func paginateProducts(products []domain.Product, page, perPage int) []domain.Product {
	if page < 1 {
		page = 1
	}

	if perPage < 1 {
		perPage = 1
	}

	start := (page - 1) * perPage
	if start >= len(products) {
		return []domain.Product{}
	}

	end := start + perPage
	if end > len(products) {
		end = len(products)
	}

	return products[start:end]
}
