// ABOUTME: Global sort over the accumulated product union
// ABOUTME: Stable sort keeps accumulation order among equal keys; DESC is the default

package catalog

import (
	"sort"
	"strconv"
	"strings"

	"multistore-products-api/core/domain"
)

// sortProducts orders the union in place by the query's sort field.
//
// Price sorting treats a nil price as zero, so unpriced items group with
// free ones at the low end of an ascending sort. Date sorting is a lexical
// compare of the source-native timestamp strings: stores are expected to
// emit sortable ISO-8601-like values, and a store that does not will sort
// out of chronological order. That mirrors the observed behavior and is
// intentionally not replaced with real date parsing.
func sortProducts(products []domain.Product, orderBy, order string) {
	ascending := strings.ToUpper(order) == domain.OrderAsc

	sort.SliceStable(products, func(i, j int) bool {
		cmp := compareProducts(&products[i], &products[j], orderBy)
		if ascending {
			return cmp < 0
		}
		return cmp > 0
	})
}

// compareProducts returns a three-way comparison on the given field
func compareProducts(a, b *domain.Product, orderBy string) int {
	switch orderBy {
	case domain.OrderByPrice:
		return compareFloats(priceOrZero(a), priceOrZero(b))
	case domain.OrderByTitle, domain.OrderByName:
		return strings.Compare(a.Name, b.Name)
	case domain.OrderByDate:
		return strings.Compare(a.DateCreated, b.DateCreated)
	}

	rawA := rawFieldValue(a, orderBy)
	rawB := rawFieldValue(b, orderBy)

	// Numeric values compare numerically when both sides parse (e.g. id)
	if numA, errA := strconv.ParseFloat(rawA, 64); errA == nil {
		if numB, errB := strconv.ParseFloat(rawB, 64); errB == nil {
			return compareFloats(numA, numB)
		}
	}

	return strings.Compare(rawA, rawB)
}

// priceOrZero is the documented nil-price policy: nil compares as zero
func priceOrZero(p *domain.Product) float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// compareFloats returns a three-way comparison of two floats
func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// rawFieldValue resolves an arbitrary sort field name to its raw string
// value on the product, empty when the field is unknown.
func rawFieldValue(p *domain.Product, field string) string {
	switch field {
	case "id":
		return strconv.FormatInt(p.ID, 10)
	case "slug":
		return p.Slug
	case "permalink":
		return p.Permalink
	case "stock_status":
		return p.StockStatus
	case "date_modified", "modified":
		return p.DateModified
	case "store", "store_name":
		return p.SourceName
	default:
		return ""
	}
}
