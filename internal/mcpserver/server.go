package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"card-admin/internal/app/admins"
	"card-admin/internal/report"
	"card-admin/internal/settlement"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type Server struct {
	engine  *settlement.Engine
	reports *report.Aggregator
	admins  *admins.Service

	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
}

func New(engine *settlement.Engine, reports *report.Aggregator, adminSvc *admins.Service) *Server {
	mcpSrv := server.NewMCPServer(
		"card-admin",
		"0.1.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithResourceRecovery(),
	)
	s := &Server{
		engine:     engine,
		reports:    reports,
		admins:     adminSvc,
		mcpServer:  mcpSrv,
		httpServer: server.NewStreamableHTTPServer(mcpSrv, server.WithStateLess(true), server.WithDisableStreaming(true)),
	}
	s.registerSettlementTools()
	s.registerReportTools()
	s.registerResources()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.httpServer
}

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"admin://{admin_id}/profile",
			"admin_profile",
			mcp.WithTemplateDescription("Admin profile and wallet balance"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			raw := request.Params.URI
			if !strings.HasPrefix(raw, "admin://") || !strings.HasSuffix(raw, "/profile") {
				return nil, nil
			}
			adminID := strings.TrimSuffix(strings.TrimPrefix(raw, "admin://"), "/profile")
			if adminID == "" {
				return nil, nil
			}
			profile, err := s.admins.Profile(ctx, adminID)
			if err != nil {
				return nil, err
			}
			payload, err := json.Marshal(profile)
			if err != nil {
				return nil, err
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      raw,
					MIMEType: "application/json",
					Text:     string(payload),
				},
			}, nil
		},
	)
}
