package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

var errNotReady = errors.New("inbox missing")

func TestServer_Handler(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name       string
		ready      ReadyFunc
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "healthz", path: "/healthz", wantStatus: http.StatusOK, wantBody: "OK"},
		{name: "readyz without check", path: "/readyz", wantStatus: http.StatusOK, wantBody: "OK"},
		{
			name:       "readyz failing",
			ready:      func(context.Context) error { return errNotReady },
			path:       "/readyz",
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "inbox missing",
		},
		{name: "metrics", path: "/metrics", wantStatus: http.StatusOK, wantBody: "assessment_batches_processed_total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(0, tt.ready, &logger)
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.True(t, strings.Contains(rec.Body.String(), tt.wantBody), "body %q lacks %q", rec.Body.String(), tt.wantBody)
		})
	}
}
