package http

import (
	"errors"
	"net/http"

	"gatherup-api/internal/notification"
	pkgErrors "gatherup-api/pkg/errors"
	postgresPkg "gatherup-api/pkg/postgre"
)

func (h *Handler) mapError(err error) error {
	// IsUUID wraps the sentinel with the parse detail.
	if errors.Is(err, postgresPkg.ErrInvalidUUID) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}

	switch err {
	case notification.ErrNotificationNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Notification not found")
	default:
		panic(err)
	}
}
