package forecasting

import (
	"context"
	"time"

	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
)

// MonthlySalesProvider define a fonte das agregações mensais de vendas
type MonthlySalesProvider interface {
	// GetMonthlyAggregates retorna uma linha por mês, em ordem crescente
	GetMonthlyAggregates(ctx context.Context) ([]*domain.MonthlySalesRow, error)
}

// Strategy define um método de previsão sem estado
type Strategy interface {
	// Label identifica a estratégia (e seus parâmetros) nas previsões e na acurácia
	Label() string

	// Forecast retorna exatamente horizon pontos, ou nenhum quando a série não atende aos requisitos
	Forecast(series domain.MonthlySeries, horizon int, field domain.TargetField) []domain.ForecastPoint
}

// RunObserver recebe o resultado de cada execução de previsão
type RunObserver interface {
	ObserveForecastRun(outcome string, duration time.Duration)
}

// Forecaster é a interface pública do agregador de previsões
type Forecaster interface {
	// GetForecasts executa todas as estratégias sobre total_sales
	GetForecasts(ctx context.Context, horizon int) *domain.ForecastReport

	// GetForecastsFor executa todas as estratégias sobre o campo alvo informado
	GetForecastsFor(ctx context.Context, horizon int, field domain.TargetField) (*domain.ForecastReport, error)
}
