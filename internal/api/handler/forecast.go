package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/retail-sales-insights-api/internal/config"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	"github.com/vfg2006/retail-sales-insights-api/internal/export"
	"github.com/vfg2006/retail-sales-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/retail-sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-insights-api/pkg/log"
)

// SnapshotReader fornece o último snapshot de previsão persistido
type SnapshotReader interface {
	LatestSnapshot(ctx context.Context, field domain.TargetField) (*domain.ForecastSnapshot, error)
}

// forecastParams lê horizon e target da query string
func forecastParams(r *http.Request, cfg config.Forecast) (int, domain.TargetField, error) {
	horizon := cfg.DefaultHorizon
	if horizon <= 0 {
		horizon = forecasting.DefaultHorizon
	}
	if raw := r.URL.Query().Get("horizon"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, "", fmt.Errorf("horizonte inválido: %s", raw)
		}
		horizon = parsed
	}

	maxHorizon := cfg.MaxHorizon
	if maxHorizon < horizon && r.URL.Query().Get("horizon") == "" {
		maxHorizon = horizon
	}
	if horizon < 1 || horizon > maxHorizon {
		return 0, "", fmt.Errorf("horizonte deve estar entre 1 e %d", maxHorizon)
	}

	field, err := domain.ParseTargetField(r.URL.Query().Get("target"))
	if err != nil {
		return 0, "", err
	}

	return horizon, field, nil
}

// runForecast executa o agregador dentro do timeout configurado
func runForecast(ctx context.Context, service forecasting.Forecaster, cfg config.Forecast, horizon int, field domain.TargetField) (*domain.ForecastReport, error) {
	if cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()
	}

	report, err := service.GetForecastsFor(ctx, horizon, field)
	if err != nil {
		return nil, err
	}

	// O provedor absorve o cancelamento como série vazia; aqui ele vira erro de timeout
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, ctx.Err()
	}

	return report, nil
}

func writeForecastError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		apiErrors.WriteError(w, apiErrors.ErrTimeout, "Tempo limite excedido ao gerar a previsão", nil)
	case errors.Is(err, forecasting.ErrInvalidTargetField):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar previsão", nil)
	}
}

// GetForecasts retorna a tabela combinada de previsões, a acurácia e o histórico
func GetForecasts(service forecasting.Forecaster, cfg config.Forecast) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		horizon, field, err := forecastParams(r, cfg)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"horizon":      horizon,
			"target_field": field,
		}).Info("forecasts: gerando previsão")

		report, err := runForecast(r.Context(), service, cfg, horizon, field)
		if err != nil {
			logger.WithError(err).Error("forecasts: erro ao gerar previsão")
			writeForecastError(w, err)
			return
		}

		writeJSON(w, r, report)
	})
}

// ExportForecasts gera o arquivo de download (csv ou xlsx) com o relatório de previsão
func ExportForecasts(service forecasting.Forecaster, cfg config.Forecast) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		format, err := export.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedExport, err.Error(), nil)
			return
		}

		horizon, field, err := forecastParams(r, cfg)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		report, err := runForecast(r.Context(), service, cfg, horizon, field)
		if err != nil {
			logger.WithError(err).Error("forecasts-export: erro ao gerar previsão")
			writeForecastError(w, err)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(format, time.Now())))

		if err := export.Write(w, format, report); err != nil {
			logger.WithError(err).Error("forecasts-export: erro ao escrever arquivo")
		}
	})
}

// GetLatestSnapshot retorna o último snapshot salvo pelo agendador
func GetLatestSnapshot(reader SnapshotReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		field, err := domain.ParseTargetField(r.URL.Query().Get("target"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		snapshot, err := reader.LatestSnapshot(r.Context(), field)
		if err != nil {
			logger.WithError(err).Error("forecast-snapshots: erro ao buscar snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshot", nil)
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Nenhum snapshot encontrado", nil)
			return
		}

		writeJSON(w, r, snapshot)
	})
}
