package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/retail-sales-insights-api/internal/config"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	"github.com/vfg2006/retail-sales-insights-api/internal/usecases/forecasting/mocks"
)

var testForecastConfig = config.Forecast{
	DefaultHorizon: 6,
	MaxHorizon:     36,
	RequestTimeout: time.Second,
}

func sampleReport(horizon int, field domain.TargetField) *domain.ForecastReport {
	return &domain.ForecastReport{
		Horizon:     horizon,
		TargetField: field,
		Forecasts: []domain.ForecastPoint{
			{
				TargetMonthDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
				PredictedValue:  1000,
				StrategyLabel:   "Linear",
			},
		},
		Accuracy: map[string]domain.AccuracyScore{
			"Linear": {StrategyLabel: "Linear", MeanAbsolutePercentageError: 0, Formatted: "0.00%"},
		},
		History: domain.MonthlySeries{},
	}
}

type stubSnapshotReader struct {
	snapshot *domain.ForecastSnapshot
	err      error
	field    domain.TargetField
}

func (s *stubSnapshotReader) LatestSnapshot(_ context.Context, field domain.TargetField) (*domain.ForecastSnapshot, error) {
	s.field = field
	return s.snapshot, s.err
}

func TestGetForecasts(t *testing.T) {
	t.Run("usa horizonte padrão e total_sales", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := mocks.NewMockForecaster(ctrl)
		forecaster.EXPECT().
			GetForecastsFor(gomock.Any(), 6, domain.TargetTotalSales).
			Return(sampleReport(6, domain.TargetTotalSales), nil)

		rec := httptest.NewRecorder()
		GetForecasts(forecaster, testForecastConfig).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/forecasts", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body domain.ForecastReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 6, body.Horizon)
		assert.Len(t, body.Forecasts, 1)
		assert.Contains(t, body.Accuracy, "Linear")
	})

	t.Run("repassa horizonte e campo alvo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := mocks.NewMockForecaster(ctrl)
		forecaster.EXPECT().
			GetForecastsFor(gomock.Any(), 12, domain.TargetOrderCount).
			Return(sampleReport(12, domain.TargetOrderCount), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/forecasts?horizon=12&target=order_count", nil)
		GetForecasts(forecaster, testForecastConfig).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	invalid := []struct {
		name  string
		query string
	}{
		{name: "horizonte não numérico", query: "horizon=abc"},
		{name: "horizonte zero", query: "horizon=0"},
		{name: "horizonte acima do máximo", query: "horizon=37"},
		{name: "campo alvo desconhecido", query: "target=discount"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			forecaster := mocks.NewMockForecaster(ctrl)

			rec := httptest.NewRecorder()
			GetForecasts(forecaster, testForecastConfig).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/forecasts?"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VAL_001")
		})
	}

	t.Run("timeout vira 504", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := mocks.NewMockForecaster(ctrl)
		forecaster.EXPECT().
			GetForecastsFor(gomock.Any(), 6, domain.TargetTotalSales).
			DoAndReturn(func(ctx context.Context, horizon int, field domain.TargetField) (*domain.ForecastReport, error) {
				<-ctx.Done()
				return sampleReport(horizon, field), nil
			})

		cfg := testForecastConfig
		cfg.RequestTimeout = 10 * time.Millisecond

		rec := httptest.NewRecorder()
		GetForecasts(forecaster, cfg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/forecasts", nil))

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
		assert.Contains(t, rec.Body.String(), "SRV_005")
	})

	t.Run("erro inesperado vira 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := mocks.NewMockForecaster(ctrl)
		forecaster.EXPECT().
			GetForecastsFor(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("falha"))

		rec := httptest.NewRecorder()
		GetForecasts(forecaster, testForecastConfig).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/forecasts", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestExportForecasts(t *testing.T) {
	t.Run("csv por padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := mocks.NewMockForecaster(ctrl)
		forecaster.EXPECT().
			GetForecastsFor(gomock.Any(), 6, domain.TargetTotalSales).
			Return(sampleReport(6, domain.TargetTotalSales), nil)

		rec := httptest.NewRecorder()
		ExportForecasts(forecaster, testForecastConfig).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/forecasts/export", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), "attachment; filename=\"forecast_"))

		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "target_month_date,strategy_label,predicted_value", lines[0])
		assert.Equal(t, "2024-01-31,Linear,1000.00", lines[1])
	})

	t.Run("formato não suportado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := mocks.NewMockForecaster(ctrl)

		rec := httptest.NewRecorder()
		ExportForecasts(forecaster, testForecastConfig).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/forecasts/export?format=pdf", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_004")
	})
}

func TestGetLatestSnapshot(t *testing.T) {
	t.Run("sem snapshot", func(t *testing.T) {
		reader := &stubSnapshotReader{}

		rec := httptest.NewRecorder()
		GetLatestSnapshot(reader).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/forecasts/snapshots/latest", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domain.TargetTotalSales, reader.field)
	})

	t.Run("snapshot encontrado", func(t *testing.T) {
		reader := &stubSnapshotReader{snapshot: &domain.ForecastSnapshot{
			ID:          "abc123",
			Horizon:     6,
			TargetField: domain.TargetTotalProfit,
			Report:      sampleReport(6, domain.TargetTotalProfit),
		}}

		rec := httptest.NewRecorder()
		GetLatestSnapshot(reader).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/forecasts/snapshots/latest?target=total_profit", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.TargetTotalProfit, reader.field)
		assert.Contains(t, rec.Body.String(), "abc123")
	})

	t.Run("erro do repositório", func(t *testing.T) {
		reader := &stubSnapshotReader{err: errors.New("conexão perdida")}

		rec := httptest.NewRecorder()
		GetLatestSnapshot(reader).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/forecasts/snapshots/latest", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "SRV_002")
	})
}
