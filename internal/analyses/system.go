package analyses

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/curator/internal/curator"
	"github.com/JaimeStill/curator/internal/fraudtypes"
	"github.com/JaimeStill/curator/pkg/pagination"
)

// System defines the contract for analysis operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Analysis], error)
	Find(ctx context.Context, id uuid.UUID) (*Analysis, error)
	Analyze(ctx context.Context, cmd AnalyzeCommand) (*Analysis, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Analyzer runs a single case analysis.
type Analyzer interface {
	AnalyzeCase(ctx context.Context, input curator.TextInput, similarCases []string) (*curator.FraudAnalysis, error)
}

// Registrar records newly proposed fraud types.
type Registrar interface {
	Register(ctx context.Context, cmd fraudtypes.RegisterCommand) (*fraudtypes.FraudType, error)
}

// Options describes the model behind an Analyzer and whether NEW
// categories are registered automatically.
type Options struct {
	Model        string
	Provider     string
	AutoRegister bool
}
