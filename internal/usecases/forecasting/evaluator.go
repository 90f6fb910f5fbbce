package forecasting

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
)

// BacktestHoldout é a quantidade de meses mais recentes reservados para o backtest
const BacktestHoldout = 6

// Evaluator mede a acurácia das estratégias contra os últimos meses conhecidos
type Evaluator struct {
	strategies []Strategy
}

// NewEvaluator cria o avaliador com as estratégias de tendência e média móvel.
// A estratégia sazonal não participa do backtest.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		strategies: []Strategy{
			LinearTrend{},
			PolynomialTrend{Degree: polynomialDegree},
			MovingAverage{Window: movingAverageWindow},
		},
	}
}

// Evaluate reajusta cada estratégia sem os últimos 6 meses e compara as previsões com os valores reais.
// O mapa é indexado pelo label da estratégia; estratégias não avaliáveis ficam de fora.
func (e *Evaluator) Evaluate(series domain.MonthlySeries, field domain.TargetField) map[string]domain.AccuracyScore {
	scores := make(map[string]domain.AccuracyScore)

	if len(series) < BacktestHoldout {
		return scores
	}

	split := len(series) - BacktestHoldout
	train := series[:split]
	test := series[split:]
	if len(train) < minTrendHistory {
		logrus.WithField("train_months", len(train)).Debug("Backtest ignorado: treino insuficiente")
		return scores
	}

	actual := test.Values(field)
	for _, strategy := range e.strategies {
		points := strategy.Forecast(train, BacktestHoldout, field)
		if len(points) != BacktestHoldout {
			continue
		}

		predicted := make([]float64, len(points))
		for i, p := range points {
			predicted[i] = p.PredictedValue
		}

		mape, ok := MeanAbsolutePercentageError(actual, predicted)
		if !ok {
			logrus.WithField("strategy", strategy.Label()).Debug("Backtest sem valores reais diferentes de zero")
			continue
		}

		scores[strategy.Label()] = domain.AccuracyScore{
			StrategyLabel:               strategy.Label(),
			MeanAbsolutePercentageError: mape,
			Formatted:                   FormatPercentage(mape),
		}
	}

	return scores
}

// MeanAbsolutePercentageError calcula o MAPE ignorando os pares cujo valor real é zero.
// Retorna false quando nenhum par pode ser usado.
func MeanAbsolutePercentageError(actual, predicted []float64) (float64, bool) {
	if len(actual) != len(predicted) {
		return 0, false
	}

	sum := 0.0
	used := 0
	for i := range actual {
		if actual[i] == 0 {
			continue
		}
		sum += math.Abs(actual[i]-predicted[i]) / math.Abs(actual[i]) * 100
		used++
	}

	if used == 0 {
		return 0, false
	}
	return sum / float64(used), true
}

// FormatPercentage formata o erro com duas casas decimais. Ex: 12.34%
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}
