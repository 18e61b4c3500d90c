package http

import (
	"net/http"
	"testing"

	"gatherup-api/internal/squad"
	pkgErrors "gatherup-api/pkg/errors"
	postgresPkg "gatherup-api/pkg/postgre"
)

func TestMapError(t *testing.T) {
	h := &Handler{}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "not found",
			err:        squad.ErrSquadNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid transition",
			err:        squad.ErrInvalidTransition,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown status",
			err:        squad.ErrUnknownStatus,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "permission denied",
			err:        squad.ErrPermissionDenied,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "malformed ID",
			err:        postgresPkg.IsUUID("not-a-uuid"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := h.mapError(tt.err)

			httpErr, ok := mapped.(*pkgErrors.HTTPError)
			if !ok {
				t.Fatalf("expected *HTTPError, got %T", mapped)
			}
			if httpErr.StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, httpErr.StatusCode)
			}
		})
	}
}
