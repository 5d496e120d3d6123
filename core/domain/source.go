// ABOUTME: Source domain model represents one configured remote store
// ABOUTME: Provides validation used by the admin surface before persisting

package domain

import (
	"errors"
	"net/url"
)

// DefaultAPIVersion is the listing API version used when a source does not
// specify one.
const DefaultAPIVersion = "wc/v3"

// Source is one independently hosted catalog with its own endpoint and
// credentials. The aggregation engine only ever reads a snapshot; all
// mutation goes through the admin surface.
type Source struct {
	// ID is the stable operator-assigned identifier
	ID string

	// Name is the display name shown alongside aggregated products
	Name string

	// BaseURL is the store root, without the API path
	BaseURL string

	// APIVersion is the listing API version tag (e.g. "wc/v3")
	APIVersion string

	// ConsumerKey and ConsumerSecret form the credential pair
	ConsumerKey    string
	ConsumerSecret string

	// Enabled controls whether the source participates in aggregation
	Enabled bool
}

// Validate checks that the source carries everything a fetch needs
func (s *Source) Validate() error {
	if s.ID == "" {
		return errors.New("source id cannot be empty")
	}

	if s.Name == "" {
		return errors.New("source name cannot be empty")
	}

	if s.BaseURL == "" {
		return errors.New("source base URL cannot be empty")
	}

	parsed, err := url.Parse(s.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("source base URL is not valid format")
	}

	if s.ConsumerKey == "" || s.ConsumerSecret == "" {
		return errors.New("source credentials cannot be empty")
	}

	return nil
}
