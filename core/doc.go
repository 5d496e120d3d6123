// Package core contains the business logic for the Multistore Products API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Product, Source, Query, etc.)
// - catalog: Multi-store product aggregation service
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, source store)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "multistore-products-api/core/catalog"
//	    "multistore-products-api/core/domain"
//	    "multistore-products-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	    Sources:    mySources,    // implements interfaces.SourceStore
//	}
//
//	// Create service
//	service := catalog.NewCatalogService(deps)
//
//	// Fetch one aggregated page
//	page := service.GetProducts(ctx, domain.Query{
//	    Page:    1,
//	    PerPage: 12,
//	    OrderBy: domain.OrderByPrice,
//	    Order:   domain.OrderAsc,
//	})
package core
