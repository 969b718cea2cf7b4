// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// benefits portal. It lets AI assistants browse the service catalog.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
