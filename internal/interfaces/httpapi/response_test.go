package httpapi

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/rbarros/matchday/internal/usecase"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: bad", usecase.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantReason: "invalidInput"},
		{name: "unknown competition", err: fmt.Errorf("%w: x", usecase.ErrUnknownCompetition), wantStatus: http.StatusBadRequest, wantReason: "unknownCompetition"},
		{name: "not found", err: fmt.Errorf("%w: fixture=1", usecase.ErrNotFound), wantStatus: http.StatusNotFound, wantReason: "notFound"},
		{name: "dependency unavailable", err: fmt.Errorf("%w: provider down", usecase.ErrDependencyUnavailable), wantStatus: http.StatusServiceUnavailable, wantReason: "dependencyUnavailable"},
		{name: "unclassified", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError, wantReason: "internalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapError(tt.err)
			if mapped.HTTPStatus != tt.wantStatus || mapped.Reason != tt.wantReason {
				t.Fatalf("mapError(%v) = %+v", tt.err, mapped)
			}
		})
	}
}
