// Package mcp exposes the curator over the Model Context Protocol so tool
// clients can submit cases and browse the fraud type registry.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/JaimeStill/curator/internal/curator"
	"github.com/JaimeStill/curator/internal/fraudtypes"
)

// Analyzer runs a single case analysis.
type Analyzer interface {
	AnalyzeCase(ctx context.Context, input curator.TextInput, similarCases []string) (*curator.FraudAnalysis, error)
}

// Catalog lists the registered fraud types.
type Catalog interface {
	List(ctx context.Context) ([]fraudtypes.FraudType, error)
}

// Server wraps the MCP SDK server with the curator tools registered.
type Server struct {
	MCPServer *sdkmcp.Server

	analyzer Analyzer
	catalog  Catalog
	logger   *slog.Logger
}

// NewServer creates an MCP server named "curator" backed by analyzer and catalog.
func NewServer(version string, analyzer Analyzer, catalog Catalog, logger *slog.Logger) *Server {
	s := &Server{
		MCPServer: sdkmcp.NewServer(
			&sdkmcp.Implementation{Name: "curator", Version: version},
			nil,
		),
		analyzer: analyzer,
		catalog:  catalog,
		logger:   logger.With("system", "mcp"),
	}
	s.registerTools()
	return s
}

// Run serves the MCP protocol over stdin/stdout until ctx is canceled or
// the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting curator MCP server over stdio")
	return s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "analyze_case",
		Description: "Analyze text for fraud. Returns whether it is fraud, the fraud category, and an explanation.",
	}, s.handleAnalyzeCase)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_fraud_types",
		Description: "List the known fraud type categories the classifier chooses from.",
	}, s.handleListFraudTypes)
}

type analyzeCaseInput struct {
	Text         string   `json:"text" jsonschema:"case text to analyze"`
	SimilarCases []string `json:"similar_cases,omitempty" jsonschema:"previously seen cases that resemble this one"`
}

type analyzeCaseOutput struct {
	IsFraud      bool     `json:"is_fraud"`
	FraudType    string   `json:"fraud_type"`
	Explanation  string   `json:"explanation"`
	SimilarCases []string `json:"similar_cases,omitempty"`
	Timestamp    string   `json:"timestamp"`
	NewTypeName  string   `json:"new_type_name,omitempty"`
	WarningSigns []string `json:"warning_signs,omitempty"`
	Precautions  []string `json:"precautions,omitempty"`
}

type listFraudTypesInput struct{}

type fraudTypeOutput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type listFraudTypesOutput struct {
	FraudTypes []fraudTypeOutput `json:"fraud_types"`
	Total      int               `json:"total"`
}

func (s *Server) handleAnalyzeCase(ctx context.Context, _ *sdkmcp.CallToolRequest, input analyzeCaseInput) (*sdkmcp.CallToolResult, analyzeCaseOutput, error) {
	result, err := s.analyzer.AnalyzeCase(ctx, curator.TextInput{Text: input.Text}, input.SimilarCases)
	if err != nil {
		s.logger.Error("analyze_case failed", "error", err)
		return nil, analyzeCaseOutput{}, fmt.Errorf("analyze_case: %w", err)
	}

	s.logger.Info("analyze_case complete", "is_fraud", result.IsFraud, "fraud_type", result.FraudType)

	return nil, analyzeCaseOutput{
		IsFraud:      result.IsFraud,
		FraudType:    result.FraudType,
		Explanation:  result.Explanation,
		SimilarCases: result.SimilarCases,
		Timestamp:    result.Timestamp.Format(time.RFC3339),
		NewTypeName:  result.NewTypeName,
		WarningSigns: result.WarningSigns,
		Precautions:  result.Precautions,
	}, nil
}

func (s *Server) handleListFraudTypes(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listFraudTypesInput) (*sdkmcp.CallToolResult, listFraudTypesOutput, error) {
	types, err := s.catalog.List(ctx)
	if err != nil {
		return nil, listFraudTypesOutput{}, fmt.Errorf("list_fraud_types: %w", err)
	}

	out := listFraudTypesOutput{
		FraudTypes: make([]fraudTypeOutput, 0, len(types)),
		Total:      len(types),
	}
	for _, t := range types {
		out.FraudTypes = append(out.FraudTypes, fraudTypeOutput{
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return nil, out, nil
}
