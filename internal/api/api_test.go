package api

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/curator/internal/analyses"
	"github.com/JaimeStill/curator/internal/fraudtypes"
	"github.com/JaimeStill/curator/internal/infrastructure"
	"github.com/JaimeStill/curator/pkg/lifecycle"
	"github.com/JaimeStill/curator/pkg/pagination"
)

type stubAnalyses struct{}

func (s stubAnalyses) Handler() *analyses.Handler {
	return analyses.NewHandler(s, slog.New(slog.DiscardHandler), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func (stubAnalyses) List(_ context.Context, page pagination.PageRequest, _ analyses.Filters) (*pagination.PageResult[analyses.Analysis], error) {
	result := pagination.NewPageResult[analyses.Analysis](nil, 0, page.Page, page.PageSize)
	return &result, nil
}

func (stubAnalyses) Find(context.Context, uuid.UUID) (*analyses.Analysis, error) {
	return nil, analyses.ErrNotFound
}

func (stubAnalyses) Analyze(context.Context, analyses.AnalyzeCommand) (*analyses.Analysis, error) {
	return nil, analyses.ErrNotFound
}

func (stubAnalyses) Delete(context.Context, uuid.UUID) error {
	return analyses.ErrNotFound
}

func TestModuleRoutes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	domain := &Domain{
		FraudTypes: fraudtypes.NewMemory(logger),
		Analyses:   stubAnalyses{},
	}
	runtime := &Runtime{Infrastructure: &infrastructure.Infrastructure{Logger: logger}}

	m := newModule("/api", domain, runtime)
	mux := http.NewServeMux()
	m.Mount(mux)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"list fraud types", "GET", "/api/fraud-types", http.StatusOK},
		{"list analyses", "GET", "/api/analyses", http.StatusOK},
		{"find analysis", "GET", "/api/analyses/" + uuid.New().String(), http.StatusNotFound},
		{"outside base path", "GET", "/fraud-types", http.StatusNotFound},
		{"unknown route", "GET", "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
			}
		})
	}
}

func TestSeedOnStartupReadiness(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("seed succeeds", func(t *testing.T) {
		lc := lifecycle.New()
		sys := fraudtypes.NewMemory(logger)

		seedOnStartup(lc, sys, "", logger)
		lc.WaitForStartup()

		if err := lc.Check(context.Background()); err != nil {
			t.Errorf("Check = %v, want nil", err)
		}

		types, err := sys.List(context.Background())
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(types) == 0 {
			t.Error("registry empty after seed")
		}
	})

	t.Run("seed fails", func(t *testing.T) {
		lc := lifecycle.New()
		sys := fraudtypes.NewMemory(logger)

		seedOnStartup(lc, sys, filepath.Join(t.TempDir(), "absent.yaml"), logger)
		lc.WaitForStartup()

		err := lc.Check(context.Background())
		if err == nil {
			t.Fatal("Check = nil, want seed failure")
		}
		if !strings.HasPrefix(err.Error(), "fraud_types: ") {
			t.Errorf("Check = %v, want fraud_types probe error", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Check = %v, want wrapped fs.ErrNotExist", err)
		}
	})
}
