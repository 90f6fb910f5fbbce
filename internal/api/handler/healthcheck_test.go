package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name         string
		db           Pinger
		wantStatus   int
		wantDatabase string
	}{
		{name: "sem banco configurado", db: nil, wantStatus: http.StatusOK},
		{name: "banco disponível", db: stubPinger{}, wantStatus: http.StatusOK, wantDatabase: "ok"},
		{name: "banco indisponível", db: stubPinger{err: errors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable, wantDatabase: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tt.db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			require.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			_, err := time.Parse(time.RFC3339, body["time"])
			assert.NoError(t, err)
			assert.Equal(t, tt.wantDatabase, body["database"])
		})
	}
}
