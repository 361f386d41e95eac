package fraudtypes

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/curator/pkg/repository"
)

// Domain errors for fraud type operations.
var (
	ErrNotFound    = errors.New("fraud type not found")
	ErrDuplicate   = errors.New("fraud type name already exists")
	ErrInvalidName = errors.New("fraud type name is required")
	ErrInvalidSeed = errors.New("invalid fraud type seed")
)

var dbErrors = repository.Errors{
	NotFound:  ErrNotFound,
	Duplicate: ErrDuplicate,
	Invalid:   ErrInvalidName,
}

// MapHTTPStatus maps fraud type domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidName) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
