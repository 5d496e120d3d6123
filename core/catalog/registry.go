// ABOUTME: Source registry resolution over the configured store snapshot
// ABOUTME: Unknown requested IDs are dropped silently so stale widgets degrade gracefully

package catalog

import "multistore-products-api/core/domain"

// resolveSources selects which configured sources a query targets. An empty
// request resolves to every enabled source in stored order; otherwise only
// enabled sources whose ID is requested are returned. Requested IDs that
// match nothing are ignored rather than failing the query.
func resolveSources(all []domain.Source, requested []string) []domain.Source {
	enabled := make([]domain.Source, 0, len(all))
	for _, src := range all {
		if src.Enabled {
			enabled = append(enabled, src)
		}
	}

	if len(requested) == 0 {
		return enabled
	}

	wanted := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		wanted[id] = struct{}{}
	}

	selected := make([]domain.Source, 0, len(enabled))
	for _, src := range enabled {
		if _, ok := wanted[src.ID]; ok {
			selected = append(selected, src)
		}
	}

	return selected
}
