package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/metalops/ironic-aio/internal/config"
	"github.com/metalops/ironic-aio/internal/health"
	"github.com/metalops/ironic-aio/internal/ironic"
	"github.com/metalops/ironic-aio/internal/server"
	"github.com/metalops/ironic-aio/internal/tools"
)

func main() {
	// Load .env if present; env vars already set win.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		runServe(settings)
	case "check":
		runCheck(settings)
	case "version":
		fmt.Println(settings.ServiceName + " " + settings.ServiceVersion)
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ironic-aio - business process API for OpenStack Ironic

Usage:
  ironic-aio serve [--port PORT] [--stdio] [--config FILE]  HTTP + MCP + A2A server (or stdio MCP)
  ironic-aio check [--json] [--config FILE]                 One-shot health check
  ironic-aio version                                        Print version
`)
}

// loadSettings resolves settings from the optional --config file plus
// IRONIC_AIO_* environment variables. Malformed values are fatal.
func loadSettings() (config.Settings, error) {
	if path := getFlagValue("--config"); path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func runServe(settings config.Settings) {
	stdio := hasFlag("--stdio")
	if p := getFlagValue("--port"); p != "" {
		settings.HTTPPort = p
		settings.BaseURL = "http://localhost:" + p
	}

	logWriter := os.Stdout
	if stdio {
		logWriter = os.Stderr
	}
	level := slog.LevelInfo
	if settings.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	client := ironic.New(settings, logger)
	svc := health.NewService(settings, client)

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    settings.ServiceName,
		Version: settings.ServiceVersion,
	}, nil)
	tools.RegisterAll(mcpServer, svc, client)

	logger.Info("ironic-aio",
		slog.String("version", settings.ServiceVersion),
		slog.String("ironic_api", settings.IronicAPIURL),
		slog.String("microversion", settings.IronicAPIVersion))

	sigCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if stdio {
		logger.Info("running in stdio mode")
		if err := mcpServer.Run(sigCtx, &mcp.StdioTransport{}); err != nil {
			logger.Error("stdio server failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	srv := server.New(settings, svc, mcpServer, logger)
	if err := srv.Run(sigCtx); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func runCheck(settings config.Settings) {
	ctx := context.Background()
	asJSON := hasFlag("--json")

	client := ironic.New(settings, slog.Default())
	svc := health.NewService(settings, client)
	record := svc.Check(ctx)

	if asJSON {
		data, _ := json.MarshalIndent(record, "", "  ")
		fmt.Println(string(data))
	} else {
		fmt.Printf("status:    %s\n", record.Status)
		fmt.Printf("version:   %s\n", record.Version)
		fmt.Printf("timestamp: %s\n", record.Timestamp.Format("2006-01-02T15:04:05Z07:00"))
		fmt.Printf("ironic:    connected=%v", record.IronicConnected)
		if record.IronicAPIVersion != nil {
			fmt.Printf(" api_version=%s", *record.IronicAPIVersion)
		}
		fmt.Println()
	}

	if record.Status != health.StatusHealthy {
		os.Exit(1)
	}
}

// hasFlag checks if a flag exists in os.Args.
func hasFlag(flag string) bool {
	for _, a := range os.Args[2:] {
		if a == flag {
			return true
		}
	}
	return false
}

// getFlagValue returns the value after a flag (--flag value or --flag=value).
func getFlagValue(flag string) string {
	if len(os.Args) < 2 {
		return ""
	}
	args := os.Args[2:]
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(a, flag+"=") {
			return strings.TrimPrefix(a, flag+"=")
		}
	}
	return ""
}
