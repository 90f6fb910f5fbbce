package forecasting

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
)

const (
	LabelLinear        = "Linear"
	LabelPolynomial    = "Polynomial (degree 2)"
	LabelMovingAverage = "Moving Average (3 months)"
	LabelSeasonal      = "Seasonal"
)

const (
	minTrendHistory     = 3
	movingAverageWindow = 3
	polynomialDegree    = 2
	minSeasonalHistory  = 12
)

// DefaultStrategies retorna as estratégias na ordem em que aparecem no relatório combinado
func DefaultStrategies() []Strategy {
	return []Strategy{
		LinearTrend{},
		PolynomialTrend{Degree: polynomialDegree},
		MovingAverage{Window: movingAverageWindow},
		SeasonalAverage{},
	}
}

// regressionInputs extrai x (month_index) e y (campo alvo) da série
func regressionInputs(series domain.MonthlySeries, field domain.TargetField) ([]float64, []float64) {
	xs := make([]float64, len(series))
	for i, obs := range series {
		xs[i] = float64(obs.MonthIndex)
	}
	return xs, series.Values(field)
}

// buildPoints projeta os valores nas datas futuras
func buildPoints(series domain.MonthlySeries, horizon int, label string, predict func(step int, date time.Time) float64) []domain.ForecastPoint {
	last, _ := series.Last()
	dates := futureDates(last.MonthDate, horizon)

	points := make([]domain.ForecastPoint, horizon)
	for i, date := range dates {
		points[i] = domain.ForecastPoint{
			TargetMonthDate: date,
			PredictedValue:  predict(i+1, date),
			StrategyLabel:   label,
		}
	}
	return points
}

func skipStrategy(label string, months, required int) {
	logrus.WithFields(logrus.Fields{
		"strategy": label,
		"months":   months,
		"required": required,
	}).Debug("Histórico insuficiente para a estratégia")
}

// LinearTrend ajusta uma reta do campo alvo contra month_index
type LinearTrend struct{}

func (LinearTrend) Label() string { return LabelLinear }

func (s LinearTrend) Forecast(series domain.MonthlySeries, horizon int, field domain.TargetField) []domain.ForecastPoint {
	if horizon <= 0 {
		return nil
	}
	if len(series) < minTrendHistory {
		skipStrategy(s.Label(), len(series), minTrendHistory)
		return nil
	}

	xs, ys := regressionInputs(series, field)
	intercept, slope, err := fitLine(xs, ys)
	if err != nil {
		logrus.WithError(err).WithField("strategy", s.Label()).Debug("Regressão linear sem solução")
		return nil
	}

	last, _ := series.Last()
	return buildPoints(series, horizon, s.Label(), func(step int, _ time.Time) float64 {
		return intercept + slope*float64(last.MonthIndex+step)
	})
}

// PolynomialTrend ajusta um polinômio sobre a base {1, x, x², ...}
type PolynomialTrend struct {
	Degree int
}

func (s PolynomialTrend) Label() string {
	if s.degree() == polynomialDegree {
		return LabelPolynomial
	}
	return "Polynomial (degree " + strconv.Itoa(s.Degree) + ")"
}

func (s PolynomialTrend) Forecast(series domain.MonthlySeries, horizon int, field domain.TargetField) []domain.ForecastPoint {
	if horizon <= 0 {
		return nil
	}
	if len(series) < minTrendHistory {
		skipStrategy(s.Label(), len(series), minTrendHistory)
		return nil
	}

	xs, ys := regressionInputs(series, field)
	coefficients, err := fitPolynomial(xs, ys, s.degree())
	if err != nil {
		logrus.WithError(err).WithField("strategy", s.Label()).Debug("Regressão polinomial sem solução")
		return nil
	}

	last, _ := series.Last()
	return buildPoints(series, horizon, s.Label(), func(step int, _ time.Time) float64 {
		return evaluatePolynomial(coefficients, float64(last.MonthIndex+step))
	})
}

func (s PolynomialTrend) degree() int {
	if s.Degree <= 0 {
		return polynomialDegree
	}
	return s.Degree
}

// MovingAverage repete a média das últimas Window observações em todo o horizonte
type MovingAverage struct {
	Window int
}

func (s MovingAverage) Label() string {
	if s.window() == movingAverageWindow {
		return LabelMovingAverage
	}
	return "Moving Average (" + strconv.Itoa(s.Window) + " months)"
}

func (s MovingAverage) Forecast(series domain.MonthlySeries, horizon int, field domain.TargetField) []domain.ForecastPoint {
	window := s.window()
	if horizon <= 0 {
		return nil
	}
	if len(series) < window {
		skipStrategy(s.Label(), len(series), window)
		return nil
	}

	values := series.Values(field)
	average := mean(values[len(values)-window:])

	return buildPoints(series, horizon, s.Label(), func(int, time.Time) float64 {
		return average
	})
}

func (s MovingAverage) window() int {
	if s.Window <= 0 {
		return movingAverageWindow
	}
	return s.Window
}

// SeasonalAverage usa a média histórica de cada mês do ano
type SeasonalAverage struct{}

func (SeasonalAverage) Label() string { return LabelSeasonal }

func (s SeasonalAverage) Forecast(series domain.MonthlySeries, horizon int, field domain.TargetField) []domain.ForecastPoint {
	if horizon <= 0 {
		return nil
	}
	if len(series) < minSeasonalHistory {
		skipStrategy(s.Label(), len(series), minSeasonalHistory)
		return nil
	}

	sums := make(map[time.Month]float64, 12)
	counts := make(map[time.Month]int, 12)
	values := series.Values(field)
	for i, obs := range series {
		month := obs.MonthDate.Month()
		sums[month] += values[i]
		counts[month]++
	}
	overall := mean(values)

	return buildPoints(series, horizon, s.Label(), func(_ int, date time.Time) float64 {
		count, ok := counts[date.Month()]
		if !ok || count == 0 {
			return overall
		}
		return sums[date.Month()] / float64(count)
	})
}
