package forecasting

import (
	"context"
	"time"

	"github.com/vfg2006/retail-sales-insights-api/internal/config"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	"github.com/vfg2006/retail-sales-insights-api/pkg/log"
)

// DefaultHorizon é o horizonte usado quando nenhum valor positivo é informado
const DefaultHorizon = 6

const (
	OutcomeAvailable = "available"
	OutcomeEmpty     = "empty"
)

// Service combina a série mensal, as estratégias e o backtest em um único relatório
type Service struct {
	builder        *SeriesBuilder
	strategies     []Strategy
	evaluator      *Evaluator
	defaultHorizon int
	observer       RunObserver
}

// NewService cria o agregador de previsões. Cada chamada constrói a própria série; nada é compartilhado entre requisições.
func NewService(provider MonthlySalesProvider, cfg *config.Config) *Service {
	horizon := DefaultHorizon
	if cfg != nil && cfg.Forecast.DefaultHorizon > 0 {
		horizon = cfg.Forecast.DefaultHorizon
	}

	return &Service{
		builder:        NewSeriesBuilder(provider),
		strategies:     DefaultStrategies(),
		evaluator:      NewEvaluator(),
		defaultHorizon: horizon,
	}
}

// WithObserver registra um observador para as execuções (métricas)
func (s *Service) WithObserver(observer RunObserver) *Service {
	s.observer = observer
	return s
}

// GetForecasts executa o caminho padrão sobre total_sales
func (s *Service) GetForecasts(ctx context.Context, horizon int) *domain.ForecastReport {
	report, _ := s.GetForecastsFor(ctx, horizon, domain.TargetTotalSales)
	return report
}

// GetForecastsFor executa as quatro estratégias e o backtest sobre o campo alvo.
// Só retorna erro para um campo alvo desconhecido; falta de dados resulta em relatório vazio.
func (s *Service) GetForecastsFor(ctx context.Context, horizon int, field domain.TargetField) (*domain.ForecastReport, error) {
	if _, err := domain.ParseTargetField(string(field)); err != nil || field == "" {
		return nil, ErrInvalidTargetField
	}

	if horizon <= 0 {
		horizon = s.defaultHorizon
	}

	start := time.Now()
	logger := log.ForContext(ctx)

	report := &domain.ForecastReport{
		Horizon:     horizon,
		TargetField: field,
		Forecasts:   []domain.ForecastPoint{},
		Accuracy:    map[string]domain.AccuracyScore{},
		History:     domain.MonthlySeries{},
	}

	result := s.builder.Build(ctx)
	series, ok := result.Ok()
	if !ok {
		logger.WithError(result.Reason).Warn("Previsão sem dados históricos")
		s.observe(OutcomeEmpty, start)
		return report, nil
	}

	for _, strategy := range s.strategies {
		points := strategy.Forecast(series, horizon, field)
		report.Forecasts = append(report.Forecasts, points...)
	}

	report.Accuracy = s.evaluator.Evaluate(series, field)
	report.History = series

	logger.WithFields(log.Fields{
		"horizon":      horizon,
		"target_field": field,
		"months":       len(series),
		"points":       len(report.Forecasts),
		"scored":       len(report.Accuracy),
		"duration_ms":  time.Since(start).Milliseconds(),
	}).Info("Previsão de vendas gerada")

	s.observe(OutcomeAvailable, start)
	return report, nil
}

func (s *Service) observe(outcome string, start time.Time) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveForecastRun(outcome, time.Since(start))
}

var _ Forecaster = (*Service)(nil)
