package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsFilters representa os filtros de período das consultas analíticas
type AnalyticsFilters struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// SalesOverview representa os indicadores gerais de vendas de um período
type SalesOverview struct {
	TotalSales    decimal.Decimal   `json:"total_sales"`
	TotalProfit   decimal.Decimal   `json:"total_profit"`
	TotalOrders   int               `json:"total_orders"`
	AvgOrderValue decimal.Decimal   `json:"avg_order_value"`
	Filters       *AnalyticsFilters `json:"filters"`
}

// MonthlyTrendItem representa vendas e lucro de um mês
type MonthlyTrendItem struct {
	SalesMonth    time.Time       `json:"sales_month"`
	MonthlySales  decimal.Decimal `json:"monthly_sales"`
	MonthlyProfit decimal.Decimal `json:"monthly_profit"`
}

// CategorySales representa o desempenho de vendas de uma categoria
type CategorySales struct {
	Category      string          `json:"category"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	TotalQuantity int             `json:"total_quantity"`
}

// RegionSales representa o desempenho de vendas de um estado dentro da sua região
type RegionSales struct {
	Region          string          `json:"region"`
	State           string          `json:"state"`
	Customers       int             `json:"customers"`
	Orders          int             `json:"orders"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	AvgSaleAmount   decimal.Decimal `json:"avg_sale_amount"`
	ProfitMarginPct decimal.Decimal `json:"profit_margin_pct"`
}

// CustomerValue representa o valor de um cliente ao longo do tempo
type CustomerValue struct {
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalOrders   int             `json:"total_orders"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

// ProductSales representa as vendas de um produto
type ProductSales struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Category      string          `json:"category"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalQuantity int             `json:"total_quantity"`
}

// CustomerSegment é a classificação de um cliente por frequência e valor de compras
type CustomerSegment string

const (
	SegmentVIP     CustomerSegment = "VIP"
	SegmentLoyal   CustomerSegment = "Loyal"
	SegmentRegular CustomerSegment = "Regular"
	SegmentNew     CustomerSegment = "New"
)

// segmentRule exige os dois mínimos ao mesmo tempo
type segmentRule struct {
	segment   CustomerSegment
	minOrders int
	minSales  decimal.Decimal
}

var segmentRules = []segmentRule{
	{segment: SegmentVIP, minOrders: 10, minSales: decimal.NewFromInt(1000)},
	{segment: SegmentLoyal, minOrders: 5, minSales: decimal.NewFromInt(500)},
	{segment: SegmentRegular, minOrders: 2, minSales: decimal.NewFromInt(200)},
}

// ClassifyCustomer devolve o primeiro segmento cujos mínimos são atendidos
func ClassifyCustomer(orderFrequency int, totalSales decimal.Decimal) CustomerSegment {
	for _, rule := range segmentRules {
		if orderFrequency >= rule.minOrders && totalSales.GreaterThanOrEqual(rule.minSales) {
			return rule.segment
		}
	}
	return SegmentNew
}

// CustomerSegmentation representa as métricas de recência e frequência de um cliente
type CustomerSegmentation struct {
	CustomerID         string          `json:"customer_id"`
	CustomerName       string          `json:"customer_name"`
	OrderFrequency     int             `json:"order_frequency"`
	TotalSales         decimal.Decimal `json:"total_sales"`
	AvgOrderValue      decimal.Decimal `json:"avg_order_value"`
	DaysSinceLastOrder int             `json:"days_since_last_order"`
	Segment            CustomerSegment `json:"customer_segment"`
}

// CustomerLifetimeValue representa o valor projetado de um cliente em um ano
type CustomerLifetimeValue struct {
	CustomerID           string          `json:"customer_id"`
	CustomerName         string          `json:"customer_name"`
	TotalSales           decimal.Decimal `json:"total_sales"`
	TotalOrders          int             `json:"total_orders"`
	SalesRank            int             `json:"sales_rank"`
	LifespanDays         int             `json:"customer_lifespan_days"`
	AvgOrderValue        decimal.Decimal `json:"average_order_value"`
	EstimatedAnnualValue decimal.Decimal `json:"estimated_annual_value"`
}

// CohortRetention representa quantos clientes de uma coorte voltaram a comprar em um mês
type CohortRetention struct {
	CohortMonth   time.Time `json:"cohort_month"`
	OrderMonth    time.Time `json:"order_month"`
	MonthOffset   int       `json:"month_offset"`
	Customers     int       `json:"customers"`
	CohortSize    int       `json:"cohort_size"`
	RetentionRate float64   `json:"retention_rate"`
}

// NewCohortRetention calcula a distância em meses até a coorte e a taxa de retenção em %
func NewCohortRetention(cohortMonth, orderMonth time.Time, customers, cohortSize int) *CohortRetention {
	item := &CohortRetention{
		CohortMonth: cohortMonth,
		OrderMonth:  orderMonth,
		MonthOffset: (orderMonth.Year()-cohortMonth.Year())*12 + int(orderMonth.Month()-cohortMonth.Month()),
		Customers:   customers,
		CohortSize:  cohortSize,
	}
	if cohortSize > 0 {
		item.RetentionRate = decimal.NewFromInt(int64(customers)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(cohortSize))).
			Round(2).
			InexactFloat64()
	}
	return item
}

// SalesFilter restringe a visão de vendas por região e categoria. Campos vazios não filtram.
type SalesFilter struct {
	Region   string           `json:"region,omitempty"`
	Category string           `json:"category,omitempty"`
	MinSales *decimal.Decimal `json:"min_sales,omitempty"`
}

// RegionCategorySales representa o desempenho de uma categoria dentro de uma região
type RegionCategorySales struct {
	Region           string          `json:"region"`
	Category         string          `json:"category"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
	TransactionCount int             `json:"transaction_count"`
}
