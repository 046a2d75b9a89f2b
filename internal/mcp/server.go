package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sonicseer/internal/forecast"
)

const (
	serverName    = "sonicseer"
	serverVersion = "0.1.0"
)

// Server exposes the forecast pipeline as MCP tools.
type Server struct {
	forecaster          *forecast.Service
	enableMermaidCharts bool
	daysBack            int

	mcp    *sdk.Server
	logger zerolog.Logger
}

// NewServer creates a new MCP server with all tools registered.
// daysBack is the history window applied when a caller omits days_back.
func NewServer(forecaster *forecast.Service, enableMermaidCharts bool, daysBack int) *Server {
	s := &Server{
		forecaster:          forecaster,
		enableMermaidCharts: enableMermaidCharts,
		daysBack:            daysBack,
		mcp:                 sdk.NewServer(&sdk.Implementation{Name: serverName, Version: serverVersion}, nil),
		logger:              log.With().Str("component", "mcp").Logger(),
	}
	s.registerTools()
	return s
}

// Start runs the stdio loop until the client disconnects or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info().Msg("MCP Server starting Stdio loop")
	return s.mcp.Run(ctx, &sdk.StdioTransport{})
}
