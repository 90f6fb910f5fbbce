package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	"github.com/vfg2006/retail-sales-insights-api/internal/usecases/analytics"
	"github.com/vfg2006/retail-sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-insights-api/pkg/log"
	"github.com/vfg2006/retail-sales-insights-api/pkg/utils"
)

func writeAnalyticsError(w http.ResponseWriter, r *http.Request, view string, err error) {
	if errors.Is(err, analytics.ErrMissingDateRange) ||
		errors.Is(err, analytics.ErrInvalidDateRange) ||
		errors.Is(err, analytics.ErrInvalidLimit) ||
		errors.Is(err, analytics.ErrInvalidMinSales) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Errorf("analytics: erro ao buscar %s", view)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dados de vendas", nil)
}

func GetSalesOverview(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		overview, err := service.GetOverview(r.Context(), &domain.AnalyticsFilters{
			StartDate: startDate,
			EndDate:   endDate,
		})
		if err != nil {
			writeAnalyticsError(w, r, "visão geral", err)
			return
		}

		writeJSON(w, r, overview)
	})
}

func GetMonthlyTrend(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trend, err := service.GetMonthlyTrend(r.Context())
		if err != nil {
			writeAnalyticsError(w, r, "tendência mensal", err)
			return
		}
		writeJSON(w, r, trend)
	})
}

func GetSalesByCategory(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.GetSalesByCategory(r.Context())
		if err != nil {
			writeAnalyticsError(w, r, "categorias", err)
			return
		}
		writeJSON(w, r, categories)
	})
}

func GetSalesByRegion(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		regions, err := service.GetSalesByRegion(r.Context())
		if err != nil {
			writeAnalyticsError(w, r, "regiões", err)
			return
		}
		writeJSON(w, r, regions)
	})
}

// limitParam lê o parâmetro limit. Ausente equivale a zero (limite padrão).
func limitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func GetTopCustomers(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := limitParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número inteiro", nil)
			return
		}

		customers, err := service.GetTopCustomers(r.Context(), limit)
		if err != nil {
			writeAnalyticsError(w, r, "clientes", err)
			return
		}
		writeJSON(w, r, customers)
	})
}

func GetTopProducts(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := limitParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número inteiro", nil)
			return
		}

		products, err := service.GetTopProducts(r.Context(), limit)
		if err != nil {
			writeAnalyticsError(w, r, "produtos", err)
			return
		}
		writeJSON(w, r, products)
	})
}

func GetCustomerSegments(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := limitParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número inteiro", nil)
			return
		}

		segments, err := service.GetCustomerSegments(r.Context(), limit)
		if err != nil {
			writeAnalyticsError(w, r, "segmentos de clientes", err)
			return
		}
		writeJSON(w, r, segments)
	})
}

func GetCustomerLifetimeValue(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := limitParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número inteiro", nil)
			return
		}

		customers, err := service.GetCustomerLifetimeValue(r.Context(), limit)
		if err != nil {
			writeAnalyticsError(w, r, "valor do cliente", err)
			return
		}
		writeJSON(w, r, customers)
	})
}

func GetCohortRetention(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cohorts, err := service.GetCohortRetention(r.Context())
		if err != nil {
			writeAnalyticsError(w, r, "coortes", err)
			return
		}
		writeJSON(w, r, cohorts)
	})
}

// GetFilteredSales aceita region, category e min_sales como query params opcionais
func GetFilteredSales(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := domain.SalesFilter{
			Region:   query.Get("region"),
			Category: query.Get("category"),
		}

		if raw := query.Get("min_sales"); raw != "" {
			minSales, err := decimal.NewFromString(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "min_sales deve ser numérico", nil)
				return
			}
			filter.MinSales = &minSales
		}

		sales, err := service.GetFilteredSales(r.Context(), filter)
		if err != nil {
			writeAnalyticsError(w, r, "vendas filtradas", err)
			return
		}
		writeJSON(w, r, sales)
	})
}
