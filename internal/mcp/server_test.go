package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/JaimeStill/curator/internal/curator"
	"github.com/JaimeStill/curator/internal/fraudtypes"
	"github.com/JaimeStill/curator/internal/mcp"
)

type fakeAnalyzer struct {
	result *curator.FraudAnalysis
	err    error

	gotText    string
	gotSimilar []string
}

func (f *fakeAnalyzer) AnalyzeCase(_ context.Context, input curator.TextInput, similar []string) (*curator.FraudAnalysis, error) {
	f.gotText = input.Text
	f.gotSimilar = similar
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func connect(t *testing.T, ctx context.Context, srv *mcp.Server) *sdkmcp.ClientSession {
	t.Helper()
	t1, t2 := sdkmcp.NewInMemoryTransports()
	if _, err := srv.MCPServer.Connect(ctx, t1, nil); err != nil {
		t.Fatalf("server.Connect: %v", err)
	}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	if err != nil {
		t.Fatalf("client.Connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func callTool(t *testing.T, ctx context.Context, session *sdkmcp.ClientSession, name string, args map[string]any) (map[string]any, string) {
	t.Helper()
	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return nil, err.Error()
	}

	var text string
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			text = tc.Text
			break
		}
	}

	if res.IsError {
		return nil, text
	}

	result := make(map[string]any)
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatalf("unmarshal tool result: %v (text: %s)", err, text)
	}
	return result, ""
}

func TestAnalyzeCaseTool(t *testing.T) {
	ctx := context.Background()
	analyzer := &fakeAnalyzer{
		result: &curator.FraudAnalysis{
			IsFraud:      true,
			FraudType:    "PHISHING",
			Explanation:  "Credential harvesting message.",
			SimilarCases: []string{"bank login email"},
			Timestamp:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			WarningSigns: []string{"urgent tone"},
		},
	}
	srv := mcp.NewServer("test", analyzer, fraudtypes.NewMemory(discard()), discard())
	session := connect(t, ctx, srv)

	got, errText := callTool(t, ctx, session, "analyze_case", map[string]any{
		"text":          "Verify your account now",
		"similar_cases": []string{"bank login email"},
	})
	if errText != "" {
		t.Fatalf("analyze_case error: %s", errText)
	}

	if analyzer.gotText != "Verify your account now" {
		t.Errorf("analyzer text = %q", analyzer.gotText)
	}
	if len(analyzer.gotSimilar) != 1 || analyzer.gotSimilar[0] != "bank login email" {
		t.Errorf("analyzer similar = %v", analyzer.gotSimilar)
	}

	if got["is_fraud"] != true {
		t.Errorf("is_fraud = %v, want true", got["is_fraud"])
	}
	if got["fraud_type"] != "PHISHING" {
		t.Errorf("fraud_type = %v, want PHISHING", got["fraud_type"])
	}
	if got["timestamp"] != "2026-01-02T03:04:05Z" {
		t.Errorf("timestamp = %v", got["timestamp"])
	}
	if _, ok := got["new_type_name"]; ok {
		t.Errorf("new_type_name present for known category: %v", got["new_type_name"])
	}
}

func TestAnalyzeCaseToolError(t *testing.T) {
	ctx := context.Background()
	analyzer := &fakeAnalyzer{err: errors.New("model unavailable")}
	srv := mcp.NewServer("test", analyzer, fraudtypes.NewMemory(discard()), discard())
	session := connect(t, ctx, srv)

	_, errText := callTool(t, ctx, session, "analyze_case", map[string]any{"text": "hello"})
	if !strings.Contains(errText, "model unavailable") {
		t.Errorf("error = %q, want it to contain %q", errText, "model unavailable")
	}
}

func TestListFraudTypesTool(t *testing.T) {
	ctx := context.Background()
	catalog := fraudtypes.NewMemory(discard())
	if _, err := catalog.Seed(ctx, []fraudtypes.RegisterCommand{
		{Name: "PHISHING", Description: "Credential theft"},
		{Name: "ADVANCE FEE"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	srv := mcp.NewServer("test", &fakeAnalyzer{}, catalog, discard())
	session := connect(t, ctx, srv)

	got, errText := callTool(t, ctx, session, "list_fraud_types", map[string]any{})
	if errText != "" {
		t.Fatalf("list_fraud_types error: %s", errText)
	}

	if got["total"] != float64(2) {
		t.Errorf("total = %v, want 2", got["total"])
	}

	items, ok := got["fraud_types"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("fraud_types = %v, want 2 entries", got["fraud_types"])
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.(map[string]any)["name"].(string))
	}
	if names[0] != "ADVANCE FEE" || names[1] != "PHISHING" {
		t.Errorf("names = %v, want [ADVANCE FEE PHISHING]", names)
	}
}
