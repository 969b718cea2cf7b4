package web

import "errors"

// Sentinel errors for the web adapter.
var (
	// ErrMissingCatalogService indicates the catalog service was not provided.
	ErrMissingCatalogService = errors.New("web: catalog service is required")

	// ErrMissingApplicationService indicates the application service was not provided.
	ErrMissingApplicationService = errors.New("web: application service is required")
)
