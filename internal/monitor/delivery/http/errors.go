package http

import (
	"net/http"

	"gatherup-api/internal/monitor"
	"gatherup-api/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case monitor.ErrScanFailed:
		return errors.NewHTTPError(http.StatusInternalServerError, "Monitor scan failed")
	default:
		panic(err)
	}
}
