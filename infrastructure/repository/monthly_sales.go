package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/retail-sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
)

const (
	salesTable      = "sales s"
	ordersJoin      = "orders o ON s.order_id = o.order_id"
	orderMonthTrunc = "DATE_TRUNC('month', o.order_date)"
)

// MonthlySalesRepository agrega os fatos de venda por mês calendário
type MonthlySalesRepository interface {
	GetMonthlyAggregates(ctx context.Context) ([]*domain.MonthlySalesRow, error)
}

type monthlySalesRepository struct {
	conn postgres.Queryer
}

func NewMonthlySalesRepository(conn postgres.Queryer) MonthlySalesRepository {
	return &monthlySalesRepository{
		conn: conn,
	}
}

// monthlyAggregatesQuery soma vendas e lucro e conta pedidos distintos por mês, em ordem crescente
func monthlyAggregatesQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(
			orderMonthTrunc+"::date AS month_date",
			"COALESCE(SUM(s.sales), 0) AS monthly_sales",
			"COALESCE(SUM(s.profit), 0) AS monthly_profit",
			"COUNT(DISTINCT s.order_id) AS monthly_orders",
		).
		From(salesTable).
		Join(ordersJoin).
		GroupBy(orderMonthTrunc).
		OrderBy("month_date ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *monthlySalesRepository) GetMonthlyAggregates(ctx context.Context) ([]*domain.MonthlySalesRow, error) {
	query, args, err := monthlyAggregatesQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	aggregates := make([]*domain.MonthlySalesRow, 0)
	for rows.Next() {
		row := &domain.MonthlySalesRow{}
		if err := rows.Scan(
			&row.MonthDate,
			&row.MonthlySales,
			&row.MonthlyProfit,
			&row.MonthlyOrders,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear agregação mensal: %w", err)
		}
		aggregates = append(aggregates, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if err := ValidateMonthlyRows(aggregates); err != nil {
		return nil, err
	}

	return aggregates, nil
}

// ValidateMonthlyRows normaliza as datas para o primeiro dia do mês (UTC) e garante
// que as linhas estejam em ordem estritamente crescente, sem meses repetidos
func ValidateMonthlyRows(rows []*domain.MonthlySalesRow) error {
	var previous time.Time
	for i, row := range rows {
		if row == nil {
			return fmt.Errorf("linha %d da agregação mensal está vazia", i)
		}
		if row.MonthlyOrders < 0 {
			return fmt.Errorf("linha %d com quantidade de pedidos negativa: %d", i, row.MonthlyOrders)
		}

		row.MonthDate = time.Date(row.MonthDate.Year(), row.MonthDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		if i > 0 && !row.MonthDate.After(previous) {
			return fmt.Errorf("agregação mensal fora de ordem: %s após %s",
				row.MonthDate.Format(time.DateOnly), previous.Format(time.DateOnly))
		}
		previous = row.MonthDate
	}

	return nil
}
