// ABOUTME: Query fingerprinting for cache keys
// ABOUTME: Equivalent queries must hash identically regardless of input ordering

package catalog

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"multistore-products-api/core/domain"
)

// CacheKeyPrefix is prepended to every fingerprint. The admin bulk clear
// deletes by this prefix, so it must stay in sync with the cache backends.
const CacheKeyPrefix = "products:"

// fingerprintPayload is the canonical form hashed into a cache key. Field
// order is fixed by the struct, source IDs are sorted, and the direction is
// upper-cased, so equivalent queries collide.
type fingerprintPayload struct {
	Sources  []string `json:"stores"`
	Page     int      `json:"page"`
	PerPage  int      `json:"per_page"`
	OrderBy  string   `json:"orderby"`
	Order    string   `json:"order"`
	Category string   `json:"category"`
	Tag      string   `json:"tag"`
	MinPrice string   `json:"min_price"`
	MaxPrice string   `json:"max_price"`
}

// queryCacheKey computes the cache key for a query
func queryCacheKey(q domain.Query) string {
	sources := make([]string, len(q.Sources))
	copy(sources, q.Sources)
	sort.Strings(sources)

	payload := fingerprintPayload{
		Sources:  sources,
		Page:     q.Page,
		PerPage:  q.PerPage,
		OrderBy:  q.OrderBy,
		Order:    strings.ToUpper(q.Order),
		Category: q.Category,
		Tag:      q.Tag,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
	}

	// Marshaling a flat struct of strings and ints cannot fail
	data, _ := json.Marshal(payload)
	hash := md5.Sum(data)

	return CacheKeyPrefix + hex.EncodeToString(hash[:])
}
