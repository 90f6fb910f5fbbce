package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
)

// SalesAnalyticsRepository expõe as visões analíticas sobre vendas, pedidos e produtos
type SalesAnalyticsRepository interface {
	GetOverview(ctx context.Context, startDate, endDate time.Time) (*domain.SalesOverview, error)
	GetMonthlyTrend(ctx context.Context) ([]*domain.MonthlyTrendItem, error)
	GetSalesByCategory(ctx context.Context) ([]*domain.CategorySales, error)
	GetSalesByRegion(ctx context.Context) ([]*domain.RegionSales, error)
	GetTopCustomers(ctx context.Context, limit int) ([]*domain.CustomerValue, error)
	GetTopProducts(ctx context.Context, limit int) ([]*domain.ProductSales, error)
	GetCustomerSegments(ctx context.Context, limit int) ([]*domain.CustomerSegmentation, error)
	GetCustomerLifetimeValue(ctx context.Context, limit int) ([]*domain.CustomerLifetimeValue, error)
	GetCohortRetention(ctx context.Context) ([]*domain.CohortRetention, error)
	GetFilteredSales(ctx context.Context, filter domain.SalesFilter) ([]*domain.RegionCategorySales, error)
}

const productsJoin = "products p ON s.product_id = p.product_id"

type salesAnalyticsRepository struct {
	conn postgres.Queryer
}

func NewSalesAnalyticsRepository(conn postgres.Queryer) SalesAnalyticsRepository {
	return &salesAnalyticsRepository{
		conn: conn,
	}
}

func overviewQuery(startDate, endDate time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"COALESCE(SUM(s.sales), 0) AS total_sales",
			"COALESCE(SUM(s.profit), 0) AS total_profit",
			"COUNT(DISTINCT s.order_id) AS total_orders",
		).
		From(salesTable).
		Join(ordersJoin).
		Where(squirrel.GtOrEq{"o.order_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"o.order_date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesAnalyticsRepository) GetOverview(ctx context.Context, startDate, endDate time.Time) (*domain.SalesOverview, error) {
	query, args, err := overviewQuery(startDate, endDate).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	overview := &domain.SalesOverview{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&overview.TotalSales,
		&overview.TotalProfit,
		&overview.TotalOrders,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear visão geral: %w", err)
	}

	overview.AvgOrderValue = decimal.Zero
	if overview.TotalOrders > 0 {
		overview.AvgOrderValue = overview.TotalSales.
			Div(decimal.NewFromInt(int64(overview.TotalOrders))).
			Round(2)
	}

	return overview, nil
}

func (r *salesAnalyticsRepository) GetMonthlyTrend(ctx context.Context) ([]*domain.MonthlyTrendItem, error) {
	query, args, err := squirrel.
		Select(
			orderMonthTrunc+"::date AS sales_month",
			"COALESCE(SUM(s.sales), 0) AS monthly_sales",
			"COALESCE(SUM(s.profit), 0) AS monthly_profit",
		).
		From(salesTable).
		Join(ordersJoin).
		GroupBy(orderMonthTrunc).
		OrderBy("sales_month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	trend := make([]*domain.MonthlyTrendItem, 0)
	for rows.Next() {
		item := &domain.MonthlyTrendItem{}
		if err := rows.Scan(&item.SalesMonth, &item.MonthlySales, &item.MonthlyProfit); err != nil {
			return nil, fmt.Errorf("erro ao escanear tendência mensal: %w", err)
		}
		trend = append(trend, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return trend, nil
}

func (r *salesAnalyticsRepository) GetSalesByCategory(ctx context.Context) ([]*domain.CategorySales, error) {
	query, args, err := squirrel.
		Select(
			"p.category",
			"COALESCE(SUM(s.sales), 0) AS total_sales",
			"COALESCE(SUM(s.profit), 0) AS total_profit",
			"COALESCE(SUM(s.quantity), 0) AS total_quantity",
		).
		From(salesTable).
		Join(productsJoin).
		GroupBy("p.category").
		OrderBy("total_sales DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.CategorySales, 0)
	for rows.Next() {
		item := &domain.CategorySales{}
		if err := rows.Scan(&item.Category, &item.TotalSales, &item.TotalProfit, &item.TotalQuantity); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por categoria: %w", err)
		}
		categories = append(categories, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

func regionQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"o.region",
			"o.state",
			"COUNT(DISTINCT o.customer_id) AS unique_customers",
			"COUNT(DISTINCT s.order_id) AS total_orders",
			"COALESCE(SUM(s.sales), 0) AS total_sales",
			"COALESCE(SUM(s.profit), 0) AS total_profit",
			"COALESCE(AVG(s.sales), 0) AS avg_sale_amount",
			"COALESCE(SUM(s.profit) / NULLIF(SUM(s.sales), 0) * 100, 0) AS profit_margin_pct",
		).
		From(salesTable).
		Join(ordersJoin).
		GroupBy("o.region", "o.state").
		OrderBy("total_sales DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesAnalyticsRepository) GetSalesByRegion(ctx context.Context) ([]*domain.RegionSales, error) {
	query, args, err := regionQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	regions := make([]*domain.RegionSales, 0)
	for rows.Next() {
		item := &domain.RegionSales{}
		err := rows.Scan(
			&item.Region,
			&item.State,
			&item.Customers,
			&item.Orders,
			&item.TotalSales,
			&item.TotalProfit,
			&item.AvgSaleAmount,
			&item.ProfitMarginPct,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por região: %w", err)
		}
		item.AvgSaleAmount = item.AvgSaleAmount.Round(2)
		item.ProfitMarginPct = item.ProfitMarginPct.Round(2)
		regions = append(regions, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return regions, nil
}

func (r *salesAnalyticsRepository) GetTopCustomers(ctx context.Context, limit int) ([]*domain.CustomerValue, error) {
	query, args, err := squirrel.
		Select(
			"o.customer_id",
			"o.customer_name",
			"COALESCE(SUM(s.sales), 0) AS total_sales",
			"COUNT(DISTINCT s.order_id) AS total_orders",
		).
		From(salesTable).
		Join(ordersJoin).
		GroupBy("o.customer_id", "o.customer_name").
		OrderBy("total_sales DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.CustomerValue, 0, limit)
	for rows.Next() {
		item := &domain.CustomerValue{}
		if err := rows.Scan(&item.CustomerID, &item.CustomerName, &item.TotalSales, &item.TotalOrders); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}

		item.AvgOrderValue = decimal.Zero
		if item.TotalOrders > 0 {
			item.AvgOrderValue = item.TotalSales.Div(decimal.NewFromInt(int64(item.TotalOrders))).Round(2)
		}
		customers = append(customers, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

func (r *salesAnalyticsRepository) GetTopProducts(ctx context.Context, limit int) ([]*domain.ProductSales, error) {
	query, args, err := squirrel.
		Select(
			"p.product_id",
			"p.product_name",
			"p.category",
			"COALESCE(SUM(s.sales), 0) AS total_sales",
			"COALESCE(SUM(s.quantity), 0) AS total_quantity",
		).
		From(salesTable).
		Join(productsJoin).
		GroupBy("p.product_id", "p.product_name", "p.category").
		OrderBy("total_sales DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.ProductSales, 0, limit)
	for rows.Next() {
		item := &domain.ProductSales{}
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Category, &item.TotalSales, &item.TotalQuantity); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func segmentationQuery(limit int) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"o.customer_id",
			"o.customer_name",
			"COUNT(DISTINCT s.order_id) AS order_frequency",
			"COALESCE(SUM(s.sales), 0) AS total_sales",
			"COALESCE(AVG(s.sales), 0) AS avg_order_value",
			"(CURRENT_DATE - MAX(o.order_date)::date) AS days_since_last_order",
		).
		From(salesTable).
		Join(ordersJoin).
		GroupBy("o.customer_id", "o.customer_name").
		OrderBy("total_sales DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
}

// GetCustomerSegments classifica os clientes de maior venda pelo segmento de frequência e valor
func (r *salesAnalyticsRepository) GetCustomerSegments(ctx context.Context, limit int) ([]*domain.CustomerSegmentation, error) {
	query, args, err := segmentationQuery(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.CustomerSegmentation, 0, limit)
	for rows.Next() {
		item := &domain.CustomerSegmentation{}
		err := rows.Scan(
			&item.CustomerID,
			&item.CustomerName,
			&item.OrderFrequency,
			&item.TotalSales,
			&item.AvgOrderValue,
			&item.DaysSinceLastOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear segmento de cliente: %w", err)
		}
		item.AvgOrderValue = item.AvgOrderValue.Round(2)
		item.Segment = domain.ClassifyCustomer(item.OrderFrequency, item.TotalSales)
		customers = append(customers, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

func lifetimeValueQuery(limit int) squirrel.SelectBuilder {
	customerSales := squirrel.
		Select(
			"o.customer_id",
			"o.customer_name",
			"SUM(s.sales) AS total_sales",
			"COUNT(DISTINCT s.order_id) AS total_orders",
			"(MAX(o.order_date)::date - MIN(o.order_date)::date) AS lifespan_days",
		).
		From(salesTable).
		Join(ordersJoin).
		GroupBy("o.customer_id", "o.customer_name")

	return squirrel.
		Select(
			"cs.customer_id",
			"cs.customer_name",
			"cs.total_sales",
			"cs.total_orders",
			"ROW_NUMBER() OVER (ORDER BY cs.total_sales DESC) AS sales_rank",
			"cs.lifespan_days",
			"CASE WHEN cs.lifespan_days > 0 THEN cs.total_sales / cs.lifespan_days * 365 ELSE cs.total_sales END AS estimated_annual_value",
		).
		FromSelect(customerSales, "cs").
		OrderBy("estimated_annual_value DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
}

// GetCustomerLifetimeValue projeta o valor anual dos clientes a partir do tempo de relacionamento.
// Clientes com um único dia de compras têm o total de vendas como valor anual.
func (r *salesAnalyticsRepository) GetCustomerLifetimeValue(ctx context.Context, limit int) ([]*domain.CustomerLifetimeValue, error) {
	query, args, err := lifetimeValueQuery(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.CustomerLifetimeValue, 0, limit)
	for rows.Next() {
		item := &domain.CustomerLifetimeValue{}
		err := rows.Scan(
			&item.CustomerID,
			&item.CustomerName,
			&item.TotalSales,
			&item.TotalOrders,
			&item.SalesRank,
			&item.LifespanDays,
			&item.EstimatedAnnualValue,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear valor do cliente: %w", err)
		}

		item.AvgOrderValue = decimal.Zero
		if item.TotalOrders > 0 {
			item.AvgOrderValue = item.TotalSales.Div(decimal.NewFromInt(int64(item.TotalOrders))).Round(2)
		}
		item.EstimatedAnnualValue = item.EstimatedAnnualValue.Round(2)
		customers = append(customers, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

// A coorte é o mês da primeira compra do cliente
const cohortCTE = `WITH customer_months AS (
	SELECT DISTINCT o.customer_id, DATE_TRUNC('month', o.order_date)::date AS order_month
	FROM orders o
),
customer_cohorts AS (
	SELECT customer_id, order_month, MIN(order_month) OVER (PARTITION BY customer_id) AS cohort_month
	FROM customer_months
),
cohort_sizes AS (
	SELECT cohort_month, COUNT(DISTINCT customer_id) AS cohort_size
	FROM customer_cohorts
	GROUP BY cohort_month
)`

func cohortQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"cc.cohort_month",
			"cc.order_month",
			"COUNT(DISTINCT cc.customer_id) AS customers",
			"cs.cohort_size",
		).
		Prefix(cohortCTE).
		From("customer_cohorts cc").
		Join("cohort_sizes cs ON cc.cohort_month = cs.cohort_month").
		GroupBy("cc.cohort_month", "cc.order_month", "cs.cohort_size").
		OrderBy("cc.cohort_month", "cc.order_month").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesAnalyticsRepository) GetCohortRetention(ctx context.Context) ([]*domain.CohortRetention, error) {
	query, args, err := cohortQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	cohorts := make([]*domain.CohortRetention, 0)
	for rows.Next() {
		var cohortMonth, orderMonth time.Time
		var customers, cohortSize int
		if err := rows.Scan(&cohortMonth, &orderMonth, &customers, &cohortSize); err != nil {
			return nil, fmt.Errorf("erro ao escanear coorte: %w", err)
		}
		cohorts = append(cohorts, domain.NewCohortRetention(cohortMonth, orderMonth, customers, cohortSize))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return cohorts, nil
}

func filteredSalesQuery(filter domain.SalesFilter) squirrel.SelectBuilder {
	query := squirrel.
		Select(
			"o.region",
			"p.category",
			"COALESCE(SUM(s.sales), 0) AS total_sales",
			"COALESCE(SUM(s.profit), 0) AS total_profit",
			"COUNT(*) AS transaction_count",
		).
		From(salesTable).
		Join(ordersJoin).
		Join(productsJoin)

	if filter.Region != "" {
		query = query.Where(squirrel.Eq{"o.region": filter.Region})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"p.category": filter.Category})
	}
	if filter.MinSales != nil && filter.MinSales.IsPositive() {
		query = query.Where(squirrel.GtOrEq{"s.sales": filter.MinSales.String()})
	}

	return query.
		GroupBy("o.region", "p.category").
		OrderBy("total_sales DESC").
		PlaceholderFormat(squirrel.Dollar)
}

// GetFilteredSales agrega vendas por região e categoria aplicando apenas os filtros informados
func (r *salesAnalyticsRepository) GetFilteredSales(ctx context.Context, filter domain.SalesFilter) ([]*domain.RegionCategorySales, error) {
	query, args, err := filteredSalesQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.RegionCategorySales, 0)
	for rows.Next() {
		item := &domain.RegionCategorySales{}
		err := rows.Scan(
			&item.Region,
			&item.Category,
			&item.TotalSales,
			&item.TotalProfit,
			&item.TransactionCount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas filtradas: %w", err)
		}
		sales = append(sales, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}
