package tui

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")

// ErrMissingApplicationService is returned when the application service is not provided.
var ErrMissingApplicationService = errors.New("tui: application service is required")
