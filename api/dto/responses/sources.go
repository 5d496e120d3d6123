// ABOUTME: Response DTOs for the admin source configuration endpoints
// ABOUTME: Credentials are redacted; the full secret never leaves the store

package responses

// SourceResponse represents one configured store in admin responses
type SourceResponse struct {
	ID         string `json:"id" doc:"Stable source identifier"`
	Name       string `json:"name" doc:"Display name"`
	BaseURL    string `json:"base_url" doc:"Store root URL"`
	APIVersion string `json:"version" doc:"Listing API version tag"`
	// ConsumerKey is truncated to a recognizable prefix
	ConsumerKey string `json:"consumer_key" doc:"Redacted consumer key"`
	Enabled     bool   `json:"enabled" doc:"Whether the source participates in aggregation"`
}

// ListSourcesResponse is the admin source listing
type ListSourcesResponse struct {
	Sources []SourceResponse `json:"sources" doc:"Configured sources in stored order"`
}

// SaveSourcesResponse acknowledges a configuration replace
type SaveSourcesResponse struct {
	Saved int `json:"saved" doc:"Number of sources persisted"`
}

// ClearCacheResponse acknowledges a bulk cache clear
type ClearCacheResponse struct {
	Cleared bool `json:"cleared" doc:"Whether the product cache prefix was cleared"`
}
