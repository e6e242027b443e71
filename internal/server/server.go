package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/leavedesk/leavedesk-mcp/internal/employee"
	"github.com/leavedesk/leavedesk-mcp/internal/leave"
	"github.com/leavedesk/leavedesk-mcp/internal/store"
	"github.com/leavedesk/leavedesk-mcp/internal/tools"
	"github.com/leavedesk/leavedesk-mcp/pkg/project"
	"github.com/leavedesk/leavedesk-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

var _ types.Server = &LeavedeskServer{}

// LeavedeskServer represents the leave management MCP server
type LeavedeskServer struct {
	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
	store      *store.Store
	config     *types.Config
	logger     *zap.Logger
}

// NewLeavedeskServer creates a new leave management MCP server
func NewLeavedeskServer(config *types.Config, logger ...*zap.Logger) *LeavedeskServer {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	mcpServer := server.NewMCPServer(
		project.Name,
		project.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithRecovery(),
	)

	return &LeavedeskServer{
		mcpServer: mcpServer,
		config:    config,
		logger:    l.Named("server"),
	}
}

// Serve opens the database, registers every tool and resource, and serves
// MCP over the configured transport. It blocks until the transport stops.
func (s *LeavedeskServer) Serve(ctx context.Context) error {
	s.logger.Info("starting leave management MCP server",
		zap.String("db_path", s.config.DBPath),
		zap.String("transport", s.config.Transport),
	)

	st, err := store.Open(s.config.DBPath, s.logger)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	s.store = st

	if err := st.Setup(ctx); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	if s.config.Seed {
		if err := st.Seed(ctx); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	leaveService := leave.NewService(st, leave.NewRepository(st.Goqu()), nil, s.logger)
	employeeService := employee.NewService(employee.NewRepository(st.Goqu()), s.logger)

	s.registerTools(leaveService, employeeService)
	s.registerResources()

	switch s.config.Transport {
	case types.TransportHTTP:
		s.httpServer = server.NewStreamableHTTPServer(s.mcpServer)
		s.logger.Info("serving MCP over streamable HTTP", zap.String("addr", s.config.HTTPAddr))
		if err := s.httpServer.Start(s.config.HTTPAddr); err != nil {
			return fmt.Errorf("serving MCP over HTTP: %w", err)
		}
	default:
		s.logger.Info("serving MCP over stdio")
		if err := server.ServeStdio(s.mcpServer); err != nil {
			return fmt.Errorf("serving MCP over stdio: %w", err)
		}
	}

	return nil
}

func (s *LeavedeskServer) registerTools(leaveService leave.Service, employeeService employee.Service) {
	balanceTool := tools.NewGetLeaveBalanceTool(leaveService)
	s.mcpServer.AddTool(balanceTool.GetTool(), balanceTool.Handle)

	applyTool := tools.NewApplyLeaveTool(leaveService)
	s.mcpServer.AddTool(applyTool.GetTool(), applyTool.Handle)

	historyTool := tools.NewGetLeaveHistoryTool(leaveService)
	s.mcpServer.AddTool(historyTool.GetTool(), historyTool.Handle)

	listRequestsTool := tools.NewListLeaveRequestsTool(leaveService)
	s.mcpServer.AddTool(listRequestsTool.GetTool(), listRequestsTool.Handle)

	approveTool := tools.NewApproveLeaveTool(leaveService)
	s.mcpServer.AddTool(approveTool.GetTool(), approveTool.Handle)

	rejectTool := tools.NewRejectLeaveTool(leaveService)
	s.mcpServer.AddTool(rejectTool.GetTool(), rejectTool.Handle)

	cancelTool := tools.NewCancelLeaveTool(leaveService)
	s.mcpServer.AddTool(cancelTool.GetTool(), cancelTool.Handle)

	employeeTool := tools.NewGetEmployeeTool(employeeService, leaveService)
	s.mcpServer.AddTool(employeeTool.GetTool(), employeeTool.Handle)

	listEmployeesTool := tools.NewListEmployeesTool(employeeService)
	s.mcpServer.AddTool(listEmployeesTool.GetTool(), listEmployeesTool.Handle)
}

func (s *LeavedeskServer) registerResources() {
	leaveTypes := mcp.NewResource(
		"leave://types",
		"Leave types",
		mcp.WithResourceDescription("Leave types the server accepts, and whether each one draws down a balance"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcpServer.AddResource(leaveTypes, handleLeaveTypesResource)

	greeting := mcp.NewResourceTemplate(
		"greeting://{name}",
		"Personalized greeting",
		mcp.WithTemplateDescription("Greets the caller by name"),
		mcp.WithTemplateMIMEType("text/plain"),
	)
	s.mcpServer.AddResourceTemplate(greeting, handleGreetingResource)
}

func handleLeaveTypesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	type leaveTypeInfo struct {
		Name           string `json:"name"`
		BalanceTracked bool   `json:"balance_tracked"`
	}

	infos := make([]leaveTypeInfo, 0, len(leave.AllTypes))
	for _, lt := range leave.AllTypes {
		infos = append(infos, leaveTypeInfo{Name: lt, BalanceTracked: leave.BalanceTracked(lt)})
	}

	jsonBytes, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

func handleGreetingResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	name := strings.TrimPrefix(req.Params.URI, "greeting://")
	if name == "" {
		name = "there"
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Hello, %s! How can I assist you with leave management today?", name),
		},
	}, nil
}

// Shutdown gracefully shuts down the server
func (s *LeavedeskServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Warn("error shutting down HTTP server", zap.Error(err))
		}
	}

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			return fmt.Errorf("closing store: %w", err)
		}
	}

	return nil
}
