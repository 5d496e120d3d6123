// ABOUTME: Source client issues one listing request against one remote store
// ABOUTME: Every failure mode becomes a typed per-source error value, never a panic

package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strconv"
	"strings"

	"multistore-products-api/core/domain"
	coreerrors "multistore-products-api/core/errors"
)

// totalCountHeader is the response header carrying the source's reported
// catalog total. When absent, the number of returned records is used.
const totalCountHeader = "X-WP-Total"

// fetchResult is one source's contribution to a query: normalized items
// plus the total that source reports for the filtered catalog.
type fetchResult struct {
	items []domain.Product
	total int
}

// fetchSourceProducts requests one page of up to limit records from a
// single source and normalizes the response. The caller owns the context
// deadline; this function never outlives it.
func (s *CatalogService) fetchSourceProducts(ctx context.Context, source domain.Source, query domain.Query, limit int) (*fetchResult, error) {
	requestURL, err := buildListingURL(source, query, limit)
	if err != nil {
		return nil, err
	}

	resp, err := s.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return nil, &coreerrors.SourceTransportError{SourceID: source.ID, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.SourceHTTPError{SourceID: source.ID, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.SourceTransportError{SourceID: source.ID, Err: err}
	}

	// The listing endpoint returns a JSON array of records. Anything else
	// (an error object, an HTML page) is an invalid response.
	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &coreerrors.SourceInvalidResponseError{SourceID: source.ID, Reason: "body is not a product list"}
	}

	total := len(records)
	if header := resp.Header(totalCountHeader); header != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(header)); err == nil {
			total = parsed
		}
	}

	items := make([]domain.Product, 0, len(records))
	for _, record := range records {
		items = append(items, normalizeProduct(record, source))
	}

	return &fetchResult{items: items, total: total}, nil
}

// buildListingURL assembles the remote listing request: always the first
// remote page, capped at limit records, published products only, with the
// query's sort and filters forwarded and the credential pair appended.
func buildListingURL(source domain.Source, query domain.Query, limit int) (string, error) {
	if source.BaseURL == "" {
		return "", &coreerrors.SourceMisconfiguredError{SourceID: source.ID, Reason: "base URL is empty"}
	}
	if source.ConsumerKey == "" || source.ConsumerSecret == "" {
		return "", &coreerrors.SourceMisconfiguredError{SourceID: source.ID, Reason: "credentials are empty"}
	}

	version := source.APIVersion
	if version == "" {
		version = domain.DefaultAPIVersion
	}

	endpoint := strings.TrimRight(source.BaseURL, "/") + "/wp-json/" + version + "/products"

	params := url.Values{}
	params.Set("page", "1")
	params.Set("per_page", strconv.Itoa(limit))
	params.Set("status", "publish")
	params.Set("orderby", query.OrderBy)
	params.Set("order", query.Order)

	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Tag != "" {
		params.Set("tag", query.Tag)
	}
	if query.MinPrice != "" {
		params.Set("min_price", query.MinPrice)
	}
	if query.MaxPrice != "" {
		params.Set("max_price", query.MaxPrice)
	}

	params.Set("consumer_key", source.ConsumerKey)
	params.Set("consumer_secret", source.ConsumerSecret)

	return endpoint + "?" + params.Encode(), nil
}
