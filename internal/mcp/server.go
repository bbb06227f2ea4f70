package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/lumina/internal/domain/asset"
	"github.com/ganot/lumina/internal/domain/flow"
)

const serverInstructions = `Lumina generates complete brand identity packages: concepts with logos,
typography, color palettes, moodboards, application mockups, and a launch
campaign. Start with create_project, then open_concept to walk the reveal
steps. Image slots generate asynchronously; poll get_project to watch
assets settle. Failed slots can be retried with generate_asset.`

// Config contains server configuration.
type Config struct {
	Projects  ProjectService
	Store     asset.Store
	Generator flow.AssetGenerator
	Logger    *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and
// middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "lumina",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(debugTraffic(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(debugTraffic(cfg.Logger, "outbound"))

	handler := NewHandler(cfg.Projects, cfg.Store, cfg.Generator, cfg.Logger)
	registerTools(server, handler)

	return server
}
