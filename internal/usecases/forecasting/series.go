package forecasting

import (
	"context"

	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	"github.com/vfg2006/retail-sales-insights-api/pkg/log"
)

// SeriesBuilder monta a série mensal a partir do provedor de agregações
type SeriesBuilder struct {
	provider MonthlySalesProvider
}

func NewSeriesBuilder(provider MonthlySalesProvider) *SeriesBuilder {
	return &SeriesBuilder{provider: provider}
}

// Build consulta o provedor uma única vez e numera os meses de 0 a N-1.
// Falhas do provedor nunca são propagadas: resultam em SeriesEmpty com o motivo.
func (b *SeriesBuilder) Build(ctx context.Context) domain.SeriesResult {
	logger := log.ForContext(ctx)

	rows, err := b.provider.GetMonthlyAggregates(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar agregação mensal de vendas")
		return domain.NewEmptySeries(&SeriesError{Err: ErrDataUnavailable, Cause: err})
	}

	series := make(domain.MonthlySeries, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		series = append(series, domain.MonthlyObservation{
			MonthIndex:  len(series),
			MonthDate:   row.MonthDate,
			TotalSales:  row.MonthlySales,
			TotalProfit: row.MonthlyProfit,
			OrderCount:  row.MonthlyOrders,
		})
	}

	if len(series) == 0 {
		logger.Warn("Nenhum mês encontrado na agregação de vendas")
		return domain.NewEmptySeries(&SeriesError{Err: ErrNoHistory})
	}

	logger.WithFields(log.Fields{
		"months": len(series),
		"first":  series[0].MonthDate.Format("2006-01"),
		"last":   series[len(series)-1].MonthDate.Format("2006-01"),
	}).Debug("Série mensal construída")

	return domain.NewAvailableSeries(series)
}
