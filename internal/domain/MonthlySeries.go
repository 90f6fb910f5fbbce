// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySalesRow representa uma linha da agregação mensal retornada pelo banco
type MonthlySalesRow struct {
	MonthDate     time.Time       `json:"month_date"`
	MonthlySales  decimal.Decimal `json:"monthly_sales"`
	MonthlyProfit decimal.Decimal `json:"monthly_profit"`
	MonthlyOrders int             `json:"monthly_orders"`
}

// MonthlyObservation representa um mês da série histórica de vendas
type MonthlyObservation struct {
	MonthIndex  int             `json:"month_index"`
	MonthDate   time.Time       `json:"month_date"` // Sempre o primeiro dia do mês
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	OrderCount  int             `json:"order_count"`
}

// Value retorna o valor do campo alvo como float64
func (o MonthlyObservation) Value(field TargetField) float64 {
	switch field {
	case TargetTotalProfit:
		return o.TotalProfit.InexactFloat64()
	case TargetOrderCount:
		return float64(o.OrderCount)
	default:
		return o.TotalSales.InexactFloat64()
	}
}

// MonthlySeries é a série mensal em ordem cronológica. Não deve ser alterada depois de construída.
type MonthlySeries []MonthlyObservation

// Last retorna a última observação da série
func (s MonthlySeries) Last() (MonthlyObservation, bool) {
	if len(s) == 0 {
		return MonthlyObservation{}, false
	}
	return s[len(s)-1], true
}

// Values extrai o campo alvo de todas as observações
func (s MonthlySeries) Values(field TargetField) []float64 {
	values := make([]float64, len(s))
	for i, obs := range s {
		values[i] = obs.Value(field)
	}
	return values
}

// SeriesOutcome indica se a construção da série produziu dados
type SeriesOutcome int

const (
	SeriesAvailable SeriesOutcome = iota
	SeriesEmpty
)

// SeriesResult é o resultado da construção da série: disponível ou vazia (com o motivo)
type SeriesResult struct {
	Outcome SeriesOutcome
	Series  MonthlySeries
	Reason  error
}

// NewAvailableSeries cria um resultado com série disponível
func NewAvailableSeries(series MonthlySeries) SeriesResult {
	return SeriesResult{Outcome: SeriesAvailable, Series: series}
}

// NewEmptySeries cria um resultado vazio com o motivo
func NewEmptySeries(reason error) SeriesResult {
	return SeriesResult{Outcome: SeriesEmpty, Reason: reason}
}

// Ok retorna a série e true quando há dados
func (r SeriesResult) Ok() (MonthlySeries, bool) {
	if r.Outcome != SeriesAvailable {
		return nil, false
	}
	return r.Series, true
}
