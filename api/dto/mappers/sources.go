// ABOUTME: Mappers between admin source DTOs and the domain Source model
// ABOUTME: Outbound mapping redacts the credential pair

package mappers

import (
	"multistore-products-api/api/dto/requests"
	"multistore-products-api/api/dto/responses"
	"multistore-products-api/core/domain"
)

// redactedKeyLength is how many leading characters of a consumer key the
// admin listing exposes
const redactedKeyLength = 8

// ToSource converts a sanitized admin record to a domain Source
func ToSource(record *requests.SourceRecord) domain.Source {
	version := record.APIVersion
	if version == "" {
		version = domain.DefaultAPIVersion
	}

	return domain.Source{
		ID:             record.ID,
		Name:           record.Name,
		BaseURL:        record.BaseURL,
		APIVersion:     version,
		ConsumerKey:    record.ConsumerKey,
		ConsumerSecret: record.ConsumerSecret,
		Enabled:        record.Enabled,
	}
}

// ToSourceResponse converts a domain Source to its admin listing DTO
func ToSourceResponse(src *domain.Source) responses.SourceResponse {
	return responses.SourceResponse{
		ID:          src.ID,
		Name:        src.Name,
		BaseURL:     src.BaseURL,
		APIVersion:  src.APIVersion,
		ConsumerKey: redactKey(src.ConsumerKey),
		Enabled:     src.Enabled,
	}
}

// ToSourceResponses converts multiple sources preserving stored order
func ToSourceResponses(sources []domain.Source) []responses.SourceResponse {
	out := make([]responses.SourceResponse, 0, len(sources))
	for i := range sources {
		out = append(out, ToSourceResponse(&sources[i]))
	}
	return out
}

// redactKey keeps a recognizable prefix and masks the rest
func redactKey(key string) string {
	if len(key) <= redactedKeyLength {
		return key
	}
	return key[:redactedKeyLength] + "..."
}
