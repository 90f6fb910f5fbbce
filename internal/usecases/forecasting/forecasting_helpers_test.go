package forecasting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
)

var seriesStart = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

// buildSeries cria uma série mensal consecutiva com total_sales igual aos valores informados
func buildSeries(values ...float64) domain.MonthlySeries {
	series := make(domain.MonthlySeries, len(values))
	for i, v := range values {
		series[i] = domain.MonthlyObservation{
			MonthIndex:  i,
			MonthDate:   seriesStart.AddDate(0, i, 0),
			TotalSales:  decimal.NewFromFloat(v),
			TotalProfit: decimal.NewFromFloat(v / 10),
			OrderCount:  int(v) / 100,
		}
	}
	return series
}

func buildRows(values ...float64) []*domain.MonthlySalesRow {
	rows := make([]*domain.MonthlySalesRow, len(values))
	for i, v := range values {
		rows[i] = &domain.MonthlySalesRow{
			MonthDate:     seriesStart.AddDate(0, i, 0),
			MonthlySales:  decimal.NewFromFloat(v),
			MonthlyProfit: decimal.NewFromFloat(v / 10),
			MonthlyOrders: int(v) / 100,
		}
	}
	return rows
}

func constantValues(n int, value float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}
	return values
}

func predictedValues(points []domain.ForecastPoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.PredictedValue
	}
	return values
}
