package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/retail-sales-insights-api/internal/api/handler/router"
	"github.com/vfg2006/retail-sales-insights-api/internal/scheduler"
)

type fakeCronJob struct {
	triggerErr error
	triggered  int
}

func (f *fakeCronJob) TriggerManualSync() error {
	f.triggered++
	return f.triggerErr
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": false, "triggered": f.triggered}
}

func cronRouter(services CronJobServices) http.Handler {
	return router.New(router.WithRoutes(
		router.Route{Path: "/v1/cron/:type/run", Method: http.MethodPost, Handler: RunCronJob(services)},
		router.Route{Path: "/v1/cron/status", Method: http.MethodGet, Handler: GetCronStatus(services)},
	))
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name          string
		cronType      string
		triggerErr    error
		wantStatus    int
		wantTriggered int
	}{
		{name: "snapshot disparado", cronType: CronJobTypeForecastSnapshot, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "todas as jobs", cronType: CronJobTypeAll, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "sincronização em andamento", cronType: CronJobTypeForecastSnapshot, triggerErr: scheduler.ErrSyncInProgress, wantStatus: http.StatusConflict, wantTriggered: 1},
		{name: "falha ao disparar", cronType: CronJobTypeForecastSnapshot, triggerErr: errors.New("scheduler parado"), wantStatus: http.StatusInternalServerError, wantTriggered: 1},
		{name: "tipo inválido", cronType: "meta-insights", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{triggerErr: tt.triggerErr}
			rec := httptest.NewRecorder()

			cronRouter(CronJobServices{ForecastSnapshotSyncService: job}).
				ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggered, job.triggered)
		})
	}

	t.Run("resposta de sucesso é JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		cronRouter(CronJobServices{ForecastSnapshotSyncService: &fakeCronJob{}}).
			ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/forecast-snapshot/run", nil))

		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), `"type":"forecast-snapshot"`)
	})

	t.Run("serviço ausente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		cronRouter(CronJobServices{}).
			ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/forecast-snapshot/run", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetCronStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	cronRouter(CronJobServices{ForecastSnapshotSyncService: &fakeCronJob{}}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, CronJobTypeForecastSnapshot)
}
