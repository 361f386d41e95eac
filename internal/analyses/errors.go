package analyses

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/curator/internal/agents"
	"github.com/JaimeStill/curator/internal/curator"
	"github.com/JaimeStill/curator/internal/workflow"
	"github.com/JaimeStill/curator/pkg/repository"
)

// Domain errors for analysis operations.
var (
	ErrNotFound  = errors.New("analysis not found")
	ErrDuplicate = errors.New("analysis already exists")
)

var dbErrors = repository.Errors{NotFound: ErrNotFound, Duplicate: ErrDuplicate}

// MapHTTPStatus maps analysis and curator errors to appropriate HTTP status
// codes. Model failures and rejected model output map to 502.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, curator.ErrEmptyText):
		return http.StatusBadRequest
	case errors.Is(err, workflow.ErrValidationFailed), errors.Is(err, agents.ErrProcessing):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
