package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
)

func TestStrategies_MinimumHistory(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		months   int
		wantLen  int
	}{
		{name: "Linear com 2 meses", strategy: LinearTrend{}, months: 2, wantLen: 0},
		{name: "Linear com 3 meses", strategy: LinearTrend{}, months: 3, wantLen: 6},
		{name: "Polinomial com 2 meses", strategy: PolynomialTrend{Degree: 2}, months: 2, wantLen: 0},
		{name: "Polinomial com 3 meses", strategy: PolynomialTrend{Degree: 2}, months: 3, wantLen: 6},
		{name: "Média móvel com 2 meses", strategy: MovingAverage{Window: 3}, months: 2, wantLen: 0},
		{name: "Média móvel com 3 meses", strategy: MovingAverage{Window: 3}, months: 3, wantLen: 6},
		{name: "Sazonal com 11 meses", strategy: SeasonalAverage{}, months: 11, wantLen: 0},
		{name: "Sazonal com 12 meses", strategy: SeasonalAverage{}, months: 12, wantLen: 6},
		{name: "Série vazia", strategy: LinearTrend{}, months: 0, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]float64, tt.months)
			for i := range values {
				values[i] = float64(100 + 10*i)
			}

			points := tt.strategy.Forecast(buildSeries(values...), 6, domain.TargetTotalSales)
			assert.Len(t, points, tt.wantLen)
		})
	}
}

func TestStrategies_NonPositiveHorizon(t *testing.T) {
	series := buildSeries(constantValues(12, 100)...)
	for _, strategy := range DefaultStrategies() {
		assert.Empty(t, strategy.Forecast(series, 0, domain.TargetTotalSales), strategy.Label())
		assert.Empty(t, strategy.Forecast(series, -1, domain.TargetTotalSales), strategy.Label())
	}
}

func TestStrategies_Labels(t *testing.T) {
	labels := make([]string, 0, 4)
	for _, strategy := range DefaultStrategies() {
		labels = append(labels, strategy.Label())
	}

	assert.Equal(t, []string{"Linear", "Polynomial (degree 2)", "Moving Average (3 months)", "Seasonal"}, labels)
	assert.Equal(t, "Moving Average (3 months)", MovingAverage{}.Label())
	assert.Equal(t, "Polynomial (degree 2)", PolynomialTrend{}.Label())
}

func TestStrategies_FutureDatesStepThirtyDays(t *testing.T) {
	values := make([]float64, 14)
	for i := range values {
		values[i] = float64(1000 + 25*i)
	}
	series := buildSeries(values...)
	last, _ := series.Last()

	for _, strategy := range DefaultStrategies() {
		points := strategy.Forecast(series, 8, domain.TargetTotalSales)
		require.Len(t, points, 8, strategy.Label())

		for i, p := range points {
			assert.Equal(t, last.MonthDate.AddDate(0, 0, 30*(i+1)), p.TargetMonthDate, strategy.Label())
			assert.Equal(t, strategy.Label(), p.StrategyLabel)
			if i > 0 {
				assert.Equal(t, 30*24*time.Hour, p.TargetMonthDate.Sub(points[i-1].TargetMonthDate))
			}
		}
	}
}

func TestLinearTrend_Forecast(t *testing.T) {
	// y = 100 + 10x
	series := buildSeries(100, 110, 120, 130, 140)

	points := LinearTrend{}.Forecast(series, 3, domain.TargetTotalSales)

	require.Len(t, points, 3)
	assert.InDeltaSlice(t, []float64{150, 160, 170}, predictedValues(points), 1e-9)
}

func TestLinearTrend_UsesTargetField(t *testing.T) {
	series := buildSeries(1000, 2000, 3000)

	sales := LinearTrend{}.Forecast(series, 1, domain.TargetTotalSales)
	profit := LinearTrend{}.Forecast(series, 1, domain.TargetTotalProfit)
	orders := LinearTrend{}.Forecast(series, 1, domain.TargetOrderCount)

	require.Len(t, sales, 1)
	require.Len(t, profit, 1)
	require.Len(t, orders, 1)
	assert.InDelta(t, 4000, sales[0].PredictedValue, 1e-9)
	assert.InDelta(t, 400, profit[0].PredictedValue, 1e-9)
	assert.InDelta(t, 40, orders[0].PredictedValue, 1e-9)
}

func TestPolynomialTrend_Forecast(t *testing.T) {
	// y = 50 + 2x + 3x²
	values := make([]float64, 8)
	for i := range values {
		x := float64(i)
		values[i] = 50 + 2*x + 3*x*x
	}

	points := PolynomialTrend{Degree: 2}.Forecast(buildSeries(values...), 2, domain.TargetTotalSales)

	require.Len(t, points, 2)
	assert.InDelta(t, 50+2*8+3*64, points[0].PredictedValue, 1e-6)
	assert.InDelta(t, 50+2*9+3*81, points[1].PredictedValue, 1e-6)
}

func TestMovingAverage_Forecast(t *testing.T) {
	series := buildSeries(900, 50, 100, 200, 300)

	points := MovingAverage{Window: 3}.Forecast(series, 6, domain.TargetTotalSales)

	require.Len(t, points, 6)
	for _, p := range points {
		assert.Equal(t, 200.0, p.PredictedValue)
	}
}

func TestSeasonalAverage_Forecast(t *testing.T) {
	values := make([]float64, 24)
	for i := range values {
		month := time.Month(i%12 + 1)
		if month == time.January {
			values[i] = 500
			continue
		}
		values[i] = float64(100 * int(month))
	}
	series := buildSeries(values...)

	// A partir de 2023-12-01: 2023-12-31, 2024-01-30, 2024-02-29
	points := SeasonalAverage{}.Forecast(series, 3, domain.TargetTotalSales)

	require.Len(t, points, 3)
	assert.Equal(t, time.December, points[0].TargetMonthDate.Month())
	assert.Equal(t, 1200.0, points[0].PredictedValue)
	assert.Equal(t, time.January, points[1].TargetMonthDate.Month())
	assert.Equal(t, 500.0, points[1].PredictedValue)
	assert.Equal(t, time.February, points[2].TargetMonthDate.Month())
	assert.Equal(t, 200.0, points[2].PredictedValue)
}

func TestSeasonalAverage_FallsBackToOverallMean(t *testing.T) {
	// 12 observações, todas em janeiro de anos diferentes
	series := buildSeries(constantValues(12, 120)...)
	for i := range series {
		series[i].MonthDate = time.Date(2020+i, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	// 2031-01-01 + 60 dias = 2031-03-02
	points := SeasonalAverage{}.Forecast(series, 2, domain.TargetTotalSales)

	require.Len(t, points, 2)
	assert.Equal(t, time.March, points[1].TargetMonthDate.Month())
	assert.Equal(t, 120.0, points[1].PredictedValue)
}

func TestStrategies_DoNotMutateSeries(t *testing.T) {
	series := buildSeries(10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 130)
	snapshot := append(domain.MonthlySeries(nil), series...)

	for _, strategy := range DefaultStrategies() {
		strategy.Forecast(series, 4, domain.TargetTotalSales)
	}

	assert.Equal(t, snapshot, series)
}
