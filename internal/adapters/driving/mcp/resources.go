package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for portal resources.
	uriScheme = "portal://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "services",
		Name:        "services",
		Description: "The full government services catalog",
		MIMEType:    "application/json",
	}, s.handleServicesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "services/{serviceId}",
		Name:        "service",
		Description: "A single catalog entry",
		MIMEType:    "application/json",
	}, s.handleServiceResource)
}

// handleServicesResource returns the whole catalog.
func (s *Server) handleServicesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	services := s.ports.Catalog.List()
	out := make([]ServiceOutput, len(services))
	for i := range services {
		out[i] = toServiceOutput(services[i])
	}
	return jsonResource(req.Params.URI, out)
}

// handleServiceResource returns one catalog entry.
func (s *Server) handleServiceResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractServiceID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	svc, err := s.ports.Catalog.Get(id)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, toServiceOutput(*svc))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractServiceID extracts the service ID from a URI like portal://services/{serviceId}.
func extractServiceID(uri string) string {
	const prefix = uriScheme + "services/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
