package fraudtypes

import (
	"context"

	"github.com/google/uuid"
)

// System defines the contract for fraud type registry operations.
// Names satisfies the classifier's registry interface.
type System interface {
	Handler() *Handler

	List(ctx context.Context) ([]FraudType, error)
	Names(ctx context.Context) ([]string, error)
	Find(ctx context.Context, id uuid.UUID) (*FraudType, error)
	FindByName(ctx context.Context, name string) (*FraudType, error)
	Register(ctx context.Context, cmd RegisterCommand) (*FraudType, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Seed registers every command whose name is not already known and
	// returns how many were added.
	Seed(ctx context.Context, cmds []RegisterCommand) (int, error)
}
