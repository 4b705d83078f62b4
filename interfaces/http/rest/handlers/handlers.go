// Package handlers contains the HTTP handlers of the REST API.
package handlers

import (
	"net/http"

	"github.com/omercangizik/AniKutusu1/pkg/api"
	appErrors "github.com/omercangizik/AniKutusu1/pkg/errors"

	"go.uber.org/zap"
)

// respondServiceError maps a service error to an HTTP status. Validation,
// unauthorized and not-found errors carry a user-facing message; anything
// else is logged server-side and answered with the generic fallback.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error, fallback string) {
	switch {
	case appErrors.IsValidation(err):
		api.Error(w, http.StatusBadRequest, appErrors.Message(err, fallback))
	case appErrors.IsUnauthorized(err):
		api.Error(w, http.StatusUnauthorized, appErrors.Message(err, fallback))
	case appErrors.IsNotFound(err):
		api.Error(w, http.StatusNotFound, appErrors.Message(err, fallback))
	default:
		logger.Error("Request failed", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, fallback)
	}
}
