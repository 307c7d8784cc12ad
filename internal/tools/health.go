package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/metalops/ironic-aio/internal/health"
)

func registerHealth(server *mcp.Server, svc *health.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_health",
		Description: "Check the health of the ironic-aio API and its Ironic dependency. Reports degraded when Ironic is unreachable.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, health.Record, error) {
		return nil, svc.Check(ctx), nil
	})
}
