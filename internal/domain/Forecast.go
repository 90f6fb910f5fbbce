package domain

import (
	"fmt"
	"time"
)

// TargetField identifica qual métrica mensal será prevista
type TargetField string

const (
	TargetTotalSales  TargetField = "total_sales"
	TargetTotalProfit TargetField = "total_profit"
	TargetOrderCount  TargetField = "order_count"
)

// ParseTargetField converte o texto recebido em TargetField. Vazio equivale a total_sales.
func ParseTargetField(s string) (TargetField, error) {
	switch TargetField(s) {
	case "", TargetTotalSales:
		return TargetTotalSales, nil
	case TargetTotalProfit:
		return TargetTotalProfit, nil
	case TargetOrderCount:
		return TargetOrderCount, nil
	}
	return "", fmt.Errorf("campo alvo inválido: %s", s)
}

// ForecastPoint representa um valor previsto para um mês futuro
type ForecastPoint struct {
	TargetMonthDate time.Time `json:"target_month_date"`
	PredictedValue  float64   `json:"predicted_value"`
	StrategyLabel   string    `json:"strategy_label"`
}

// AccuracyScore representa o erro percentual médio absoluto (MAPE) de uma estratégia no backtest
type AccuracyScore struct {
	StrategyLabel               string  `json:"strategy_label"`
	MeanAbsolutePercentageError float64 `json:"mean_absolute_percentage_error"`
	Formatted                   string  `json:"formatted"` // Ex: 12.34%
}

// ForecastReport reúne as previsões combinadas, a acurácia por estratégia e o histórico utilizado
type ForecastReport struct {
	Horizon     int                      `json:"horizon"`
	TargetField TargetField              `json:"target_field"`
	Forecasts   []ForecastPoint          `json:"forecasts"`
	Accuracy    map[string]AccuracyScore `json:"accuracy"`
	History     MonthlySeries            `json:"history"`
}

// IsEmpty indica se o relatório não possui dados históricos
func (r *ForecastReport) IsEmpty() bool {
	return r == nil || len(r.History) == 0
}
