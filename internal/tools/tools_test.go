package tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/metalops/ironic-aio/internal/config"
	"github.com/metalops/ironic-aio/internal/health"
	"github.com/metalops/ironic-aio/internal/ironic"
)

type fakeChecker struct {
	connected bool
}

func (f fakeChecker) CheckConnectivity(ctx context.Context) bool {
	return f.connected
}

func testSettings() config.Settings {
	return config.Settings{
		ServiceName:      "ironic-aio-api",
		ServiceVersion:   "0.1.0",
		IronicAPIURL:     "http://localhost:6385",
		IronicAPIVersion: "1.82",
		ConnectTimeout:   time.Second,
	}
}

// connectSession wires a client to a server with all tools registered
// over in-memory transports.
func connectSession(t *testing.T, connected bool) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	settings := testSettings()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    settings.ServiceName,
		Version: settings.ServiceVersion,
	}, nil)
	svc := health.NewService(settings, fakeChecker{connected: connected})
	RegisterAll(server, svc, ironic.New(settings, nil))

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func TestToolsRegistered(t *testing.T) {
	session := connectSession(t, true)
	result, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}

	names := make(map[string]bool, len(result.Tools))
	for _, tool := range result.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"check_health", "list_nodes", "get_node"} {
		if !names[want] {
			t.Errorf("tool %q not registered, have %v", want, names)
		}
	}
}

func TestCheckHealthTool(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		session := connectSession(t, true)
		result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "check_health"})
		if err != nil {
			t.Fatalf("CallTool: %v", err)
		}
		if result.IsError {
			t.Fatalf("check_health must not fail: %v", result.Content)
		}

		payload, ok := result.StructuredContent.(map[string]any)
		if !ok {
			t.Fatalf("structured content = %T", result.StructuredContent)
		}
		if payload["status"] != "healthy" {
			t.Errorf("status = %v", payload["status"])
		}
		if payload["ironic_connected"] != true {
			t.Errorf("ironic_connected = %v", payload["ironic_connected"])
		}
		if payload["ironic_api_version"] != "1.82" {
			t.Errorf("ironic_api_version = %v", payload["ironic_api_version"])
		}
	})

	t.Run("disconnected", func(t *testing.T) {
		session := connectSession(t, false)
		result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "check_health"})
		if err != nil {
			t.Fatalf("CallTool: %v", err)
		}
		if result.IsError {
			t.Fatalf("check_health must not fail when ironic is down: %v", result.Content)
		}

		payload, ok := result.StructuredContent.(map[string]any)
		if !ok {
			t.Fatalf("structured content = %T", result.StructuredContent)
		}
		if payload["status"] != "degraded" {
			t.Errorf("status = %v", payload["status"])
		}
		if payload["ironic_connected"] != false {
			t.Errorf("ironic_connected = %v", payload["ironic_connected"])
		}
	})
}

func TestNodeToolsReportNotImplemented(t *testing.T) {
	session := connectSession(t, true)

	for _, call := range []*mcp.CallToolParams{
		{Name: "list_nodes"},
		{Name: "get_node", Arguments: map[string]any{"node": "node-1"}},
	} {
		t.Run(call.Name, func(t *testing.T) {
			result, err := session.CallTool(context.Background(), call)
			if err != nil {
				t.Fatalf("CallTool: %v", err)
			}
			if !result.IsError {
				t.Fatalf("%s should surface a tool error", call.Name)
			}
			var text string
			for _, content := range result.Content {
				if tc, ok := content.(*mcp.TextContent); ok {
					text += tc.Text
				}
			}
			if !strings.Contains(text, "not implemented") {
				t.Errorf("error text = %q, should name the not-implemented condition", text)
			}
		})
	}
}
