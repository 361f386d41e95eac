package fraudtypes_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/JaimeStill/curator/internal/fraudtypes"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fraudtypes.ErrNotFound, http.StatusNotFound},
		{"duplicate", fraudtypes.ErrDuplicate, http.StatusConflict},
		{"invalid name", fraudtypes.ErrInvalidName, http.StatusBadRequest},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped duplicate", fmt.Errorf("insert failed: %w", fraudtypes.ErrDuplicate), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fraudtypes.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"phishing", "PHISHING"},
		{"  advance   fee ", "ADVANCE FEE"},
		{"Synthetic Identity\tLoan Stacking", "SYNTHETIC IDENTITY LOAN STACKING"},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := fraudtypes.NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMemoryRegister(t *testing.T) {
	ctx := context.Background()
	sys := fraudtypes.NewMemory(discardLogger())

	ft, err := sys.Register(ctx, fraudtypes.RegisterCommand{Name: " romance scam ", Description: " fake relationship "})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if ft.Name != "ROMANCE SCAM" {
		t.Errorf("Name = %q, want ROMANCE SCAM", ft.Name)
	}
	if ft.Description != "fake relationship" {
		t.Errorf("Description = %q", ft.Description)
	}
	if ft.ID == uuid.Nil {
		t.Error("ID not assigned")
	}

	t.Run("duplicate is case insensitive", func(t *testing.T) {
		if _, err := sys.Register(ctx, fraudtypes.RegisterCommand{Name: "Romance Scam"}); !errors.Is(err, fraudtypes.ErrDuplicate) {
			t.Errorf("Register error = %v, want ErrDuplicate", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		if _, err := sys.Register(ctx, fraudtypes.RegisterCommand{Name: "  "}); !errors.Is(err, fraudtypes.ErrInvalidName) {
			t.Errorf("Register error = %v, want ErrInvalidName", err)
		}
	})

	t.Run("find by id and name", func(t *testing.T) {
		got, err := sys.Find(ctx, ft.ID)
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if diff := cmp.Diff(*ft, *got); diff != "" {
			t.Errorf("Find mismatch (-want +got):\n%s", diff)
		}

		byName, err := sys.FindByName(ctx, "romance scam")
		if err != nil {
			t.Fatalf("FindByName: %v", err)
		}
		if byName.ID != ft.ID {
			t.Errorf("FindByName id = %v, want %v", byName.ID, ft.ID)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := sys.Delete(ctx, ft.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := sys.Find(ctx, ft.ID); !errors.Is(err, fraudtypes.ErrNotFound) {
			t.Errorf("Find after delete error = %v, want ErrNotFound", err)
		}
		if err := sys.Delete(ctx, ft.ID); !errors.Is(err, fraudtypes.ErrNotFound) {
			t.Errorf("second Delete error = %v, want ErrNotFound", err)
		}
	})
}

func TestMemorySeed(t *testing.T) {
	ctx := context.Background()
	sys := fraudtypes.NewMemory(discardLogger())

	cmds := []fraudtypes.RegisterCommand{
		{Name: "phishing"},
		{Name: "advance fee"},
		{Name: "PHISHING"},
	}

	added, err := sys.Seed(ctx, cmds)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}

	again, err := sys.Seed(ctx, cmds)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if again != 0 {
		t.Errorf("second seed added = %d, want 0", again)
	}

	names, err := sys.Names(ctx)
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if diff := cmp.Diff([]string{"ADVANCE FEE", "PHISHING"}, names); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}

	if _, err := sys.Seed(ctx, []fraudtypes.RegisterCommand{{Name: ""}}); !errors.Is(err, fraudtypes.ErrInvalidSeed) {
		t.Errorf("Seed blank error = %v, want ErrInvalidSeed", err)
	}
}

func TestDefaultSeed(t *testing.T) {
	cmds, err := fraudtypes.DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed: %v", err)
	}

	if len(cmds) == 0 {
		t.Fatal("DefaultSeed returned no fraud types")
	}

	seen := make(map[string]bool)
	for _, cmd := range cmds {
		name := fraudtypes.NormalizeName(cmd.Name)
		if name != cmd.Name {
			t.Errorf("seed name %q is not normalized", cmd.Name)
		}
		if seen[name] {
			t.Errorf("seed name %q repeated", name)
		}
		seen[name] = true
		if cmd.Description == "" {
			t.Errorf("seed %q has no description", name)
		}
	}

	if !seen["PHISHING"] {
		t.Error("default seed missing PHISHING")
	}
}

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "seed.yaml")
		data := "fraud_types:\n  - name: CHECK FRAUD\n    description: Forged or altered checks.\n"
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}

		cmds, err := fraudtypes.LoadSeed(path)
		if err != nil {
			t.Fatalf("LoadSeed: %v", err)
		}

		want := []fraudtypes.RegisterCommand{{Name: "CHECK FRAUD", Description: "Forged or altered checks."}}
		if diff := cmp.Diff(want, cmds); diff != "" {
			t.Errorf("LoadSeed mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("fraud_types:\n  - description: nameless\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := fraudtypes.LoadSeed(path); !errors.Is(err, fraudtypes.ErrInvalidSeed) {
			t.Errorf("LoadSeed error = %v, want ErrInvalidSeed", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		if _, err := fraudtypes.ParseSeed([]byte("fraud_types: [")); !errors.Is(err, fraudtypes.ErrInvalidSeed) {
			t.Errorf("ParseSeed error = %v, want ErrInvalidSeed", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := fraudtypes.LoadSeed(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Error("LoadSeed succeeded for missing file")
		}
	})
}
