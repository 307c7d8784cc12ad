// Package tools registers the MCP tools exposed by the facade.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/metalops/ironic-aio/internal/health"
	"github.com/metalops/ironic-aio/internal/ironic"
)

// RegisterAll registers every MCP tool on the server.
func RegisterAll(server *mcp.Server, svc *health.Service, client *ironic.Client) {
	registerHealth(server, svc)
	registerNodes(server, client)
}
