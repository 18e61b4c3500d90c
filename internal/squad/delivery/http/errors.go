package http

import (
	"errors"
	"net/http"

	"gatherup-api/internal/squad"
	pkgErrors "gatherup-api/pkg/errors"
	postgresPkg "gatherup-api/pkg/postgre"
)

func (h *Handler) mapError(err error) error {
	// IsUUID wraps the sentinel with the parse detail.
	if errors.Is(err, postgresPkg.ErrInvalidUUID) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid squad ID")
	}

	switch err {
	case squad.ErrSquadNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Squad not found")
	case squad.ErrInvalidTransition:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid status transition")
	case squad.ErrUnknownStatus:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Unknown squad status")
	case squad.ErrPermissionDenied:
		return pkgErrors.NewForbiddenHTTPError()
	default:
		panic(err)
	}
}
