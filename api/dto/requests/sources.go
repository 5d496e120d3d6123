// ABOUTME: Request DTOs for the admin source configuration endpoints
// ABOUTME: Provides sanitization and defaults applied before validation and persistence

package requests

import "strings"

// SourceRecord is one store in a configuration save request
type SourceRecord struct {
	// ID is the stable identifier; generated when empty
	ID string `json:"id,omitempty" doc:"Stable source identifier, generated when omitted"`

	// Name is the display name
	Name string `json:"name" validate:"required" doc:"Display name"`

	// BaseURL is the store root, without the API path
	BaseURL string `json:"base_url" validate:"required,url" doc:"Store root URL"`

	// APIVersion defaults to wc/v3 when omitted
	APIVersion string `json:"version,omitempty" doc:"Listing API version tag"`

	// ConsumerKey and ConsumerSecret form the credential pair
	ConsumerKey    string `json:"consumer_key" validate:"required" doc:"API consumer key"`
	ConsumerSecret string `json:"consumer_secret" validate:"required" doc:"API consumer secret"`

	// Enabled controls whether the source participates in aggregation
	Enabled bool `json:"enabled" doc:"Whether the source participates in aggregation"`
}

// SaveSourcesRequest replaces the complete source configuration
type SaveSourcesRequest struct {
	Sources []SourceRecord `json:"sources" doc:"Complete new source configuration"`
}

// ApplyDefaults trims whitespace and fills per-record defaults
func (r *SaveSourcesRequest) ApplyDefaults() {
	for i := range r.Sources {
		src := &r.Sources[i]

		src.ID = strings.TrimSpace(src.ID)
		src.Name = strings.TrimSpace(src.Name)
		src.BaseURL = strings.TrimSpace(src.BaseURL)
		src.APIVersion = strings.TrimSpace(src.APIVersion)
		src.ConsumerKey = strings.TrimSpace(src.ConsumerKey)
		src.ConsumerSecret = strings.TrimSpace(src.ConsumerSecret)
	}
}
