package infrastructure_test

import (
	"testing"

	"github.com/JaimeStill/curator/internal/config"
	"github.com/JaimeStill/curator/internal/infrastructure"
	"github.com/JaimeStill/curator/pkg/database"
)

func validConfig() *config.Config {
	return &config.Config{
		Database: database.Config{
			Host:            "localhost",
			Port:            5432,
			Name:            "curator",
			User:            "curator",
			Password:        "curator",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: "15m",
			ConnTimeout:     "5s",
		},
		Version: "0.1.0",
	}
}

func TestNew(t *testing.T) {
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if infra.Lifecycle == nil {
		t.Error("Lifecycle is nil")
	}
	if infra.Logger == nil {
		t.Error("Logger is nil")
	}
	if infra.Database == nil || infra.Database.Connection() == nil {
		t.Error("Database is nil")
	}
}

func TestScoped(t *testing.T) {
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	scoped := infra.Scoped("module", "api")

	if scoped == infra {
		t.Fatal("Scoped should return a copy")
	}
	if scoped.Lifecycle != infra.Lifecycle {
		t.Error("Lifecycle should be shared")
	}
	if scoped.Database != infra.Database {
		t.Error("Database should be shared")
	}
	if scoped.Logger == infra.Logger {
		t.Error("Logger should be scoped")
	}
}
