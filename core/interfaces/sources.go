// ABOUTME: Source configuration store interface for persisting remote stores
// ABOUTME: The engine reads snapshots; the admin surface owns the write path

package interfaces

import (
	"context"

	"multistore-products-api/core/domain"
)

// SourceStore defines the interface for source configuration persistence.
// List order is the registry's stored order and must be stable across calls.
type SourceStore interface {
	// List returns every configured source, enabled or not, in stored order.
	List(ctx context.Context) ([]domain.Source, error)

	// Replace persists the given sources as the complete new configuration,
	// dropping anything previously stored.
	Replace(ctx context.Context, sources []domain.Source) error
}
