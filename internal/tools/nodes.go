package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/metalops/ironic-aio/internal/ironic"
)

// GetNodeInput selects a node by UUID or name.
type GetNodeInput struct {
	Node string `json:"node" jsonschema:"the node UUID or name"`
}

// NodesOutput wraps a node list for structured tool output.
type NodesOutput struct {
	Nodes []ironic.Node `json:"nodes"`
}

// NodeOutput wraps a single node for structured tool output.
type NodeOutput struct {
	Node *ironic.Node `json:"node"`
}

// The node tools surface ironic.ErrNotImplemented as a tool error so
// agent callers can tell "feature absent" from "Ironic unreachable".
func registerNodes(server *mcp.Server, client *ironic.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_nodes",
		Description: "List all Ironic baremetal nodes.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, NodesOutput, error) {
		nodes, err := client.ListNodes(ctx)
		if err != nil {
			return nil, NodesOutput{}, err
		}
		return nil, NodesOutput{Nodes: nodes}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_node",
		Description: "Get one Ironic baremetal node by UUID or name.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input GetNodeInput) (*mcp.CallToolResult, NodeOutput, error) {
		node, err := client.GetNode(ctx, input.Node)
		if err != nil {
			return nil, NodeOutput{}, err
		}
		return nil, NodeOutput{Node: node}, nil
	})
}
