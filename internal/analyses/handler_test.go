package analyses_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/curator/internal/analyses"
	"github.com/JaimeStill/curator/internal/curator"
	"github.com/JaimeStill/curator/internal/workflow"
	"github.com/JaimeStill/curator/pkg/pagination"
	"github.com/JaimeStill/curator/pkg/routes"
)

type mockSystem struct {
	listFn    func(ctx context.Context, page pagination.PageRequest, filters analyses.Filters) (*pagination.PageResult[analyses.Analysis], error)
	findFn    func(ctx context.Context, id uuid.UUID) (*analyses.Analysis, error)
	analyzeFn func(ctx context.Context, cmd analyses.AnalyzeCommand) (*analyses.Analysis, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockSystem) Handler() *analyses.Handler {
	return newTestHandler(m)
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters analyses.Filters) (*pagination.PageResult[analyses.Analysis], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*analyses.Analysis, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Analyze(ctx context.Context, cmd analyses.AnalyzeCommand) (*analyses.Analysis, error) {
	return m.analyzeFn(ctx, cmd)
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func newTestHandler(sys analyses.System) *analyses.Handler {
	return analyses.NewHandler(
		sys,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
	)
}

func setupMux(sys *mockSystem) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, "", sys.Handler().Routes())
	return mux
}

func sampleAnalysis() analyses.Analysis {
	return analyses.Analysis{
		ID:   uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Text: "reset your password here",
		FraudAnalysis: curator.FraudAnalysis{
			IsFraud:      true,
			FraudType:    "PHISHING",
			Explanation:  "A phishing email.",
			SimilarCases: []string{},
			Timestamp:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		Model:    "gpt-4o-mini",
		Provider: "openai",
	}
}

func TestHandlerList(t *testing.T) {
	a := sampleAnalysis()

	var (
		capturedPage    pagination.PageRequest
		capturedFilters analyses.Filters
	)
	sys := &mockSystem{
		listFn: func(_ context.Context, page pagination.PageRequest, f analyses.Filters) (*pagination.PageResult[analyses.Analysis], error) {
			capturedPage = page
			capturedFilters = f
			result := pagination.NewPageResult([]analyses.Analysis{a}, 1, page.Page, page.PageSize)
			return &result, nil
		},
	}

	rec := httptest.NewRecorder()
	setupMux(sys).ServeHTTP(rec, httptest.NewRequest("GET", "/analyses?page=2&page_size=500&is_fraud=true", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result pagination.PageResult[analyses.Analysis]
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(result.Data) != 1 || result.Data[0].FraudType != "PHISHING" {
		t.Errorf("data = %+v", result.Data)
	}
	if capturedPage.Page != 2 || capturedPage.PageSize != 100 {
		t.Errorf("page = %+v, want page 2 size 100", capturedPage)
	}
	if capturedFilters.IsFraud == nil || !*capturedFilters.IsFraud {
		t.Errorf("filters = %+v, want is_fraud true", capturedFilters)
	}
}

func TestHandlerFind(t *testing.T) {
	a := sampleAnalysis()
	sys := &mockSystem{
		findFn: func(_ context.Context, id uuid.UUID) (*analyses.Analysis, error) {
			if id == a.ID {
				return &a, nil
			}
			return nil, analyses.ErrNotFound
		},
	}
	mux := setupMux(sys)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"found", "/analyses/" + a.ID.String(), http.StatusOK},
		{"not found", "/analyses/" + uuid.New().String(), http.StatusNotFound},
		{"invalid id", "/analyses/nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHandlerAnalyze(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var captured analyses.AnalyzeCommand
		a := sampleAnalysis()
		sys := &mockSystem{
			analyzeFn: func(_ context.Context, cmd analyses.AnalyzeCommand) (*analyses.Analysis, error) {
				captured = cmd
				return &a, nil
			},
		}

		body := `{"text": "reset your password here", "similar_cases": ["bank lure"]}`
		rec := httptest.NewRecorder()
		setupMux(sys).ServeHTTP(rec, httptest.NewRequest("POST", "/analyses", bytes.NewBufferString(body)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		if captured.Text != "reset your password here" || len(captured.SimilarCases) != 1 {
			t.Errorf("command = %+v", captured)
		}

		var got map[string]any
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got["fraud_type"] != "PHISHING" || got["is_fraud"] != true {
			t.Errorf("body = %v, want flattened fraud analysis", got)
		}
	})

	errorTests := []struct {
		name string
		err  error
		body string
		want int
	}{
		{"empty text", curator.ErrEmptyText, `{"text": ""}`, http.StatusBadRequest},
		{"validation failure", workflow.ErrValidationFailed, `{"text": "x"}`, http.StatusBadGateway},
		{"invalid json", nil, `{`, http.StatusBadRequest},
	}

	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &mockSystem{
				analyzeFn: func(context.Context, analyses.AnalyzeCommand) (*analyses.Analysis, error) {
					return nil, tt.err
				},
			}

			rec := httptest.NewRecorder()
			setupMux(sys).ServeHTTP(rec, httptest.NewRequest("POST", "/analyses", bytes.NewBufferString(tt.body)))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHandlerDelete(t *testing.T) {
	id := uuid.New()
	sys := &mockSystem{
		deleteFn: func(_ context.Context, got uuid.UUID) error {
			if got == id {
				return nil
			}
			return analyses.ErrNotFound
		},
	}
	mux := setupMux(sys)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/analyses/"+id.String(), nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/analyses/"+uuid.New().String(), nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
