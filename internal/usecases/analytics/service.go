package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/retail-sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	"github.com/vfg2006/retail-sales-insights-api/pkg/log"
)

const (
	DefaultRankingLimit = 20
	DefaultSegmentLimit = 100
	MaxRankingLimit     = 100
)

// allValues é o valor de filtro que equivale a não filtrar
const allValues = "all"

// Analyzer define as visões analíticas de vendas
type Analyzer interface {
	GetOverview(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.SalesOverview, error)
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

type Service struct {
	repo repository.SalesAnalyticsRepository
}

func NewService(repo repository.SalesAnalyticsRepository) Analyzer {
	return &Service{repo: repo}
}

// GetOverview retorna os indicadores gerais do período informado
func (s *Service) GetOverview(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.SalesOverview, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, ErrMissingDateRange
	}

	if filters.StartDate.After(*filters.EndDate) {
		return nil, ErrInvalidDateRange
	}

	overview, err := s.repo.GetOverview(ctx, *filters.StartDate, *filters.EndDate)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar visão geral de vendas")
		return nil, err
	}

	overview.Filters = filters
	return overview, nil
}

func (s *Service) GetMonthlyTrend(ctx context.Context) ([]*domain.MonthlyTrendItem, error) {
	return s.repo.GetMonthlyTrend(ctx)
}

func (s *Service) GetSalesByCategory(ctx context.Context) ([]*domain.CategorySales, error) {
	return s.repo.GetSalesByCategory(ctx)
}

func (s *Service) GetSalesByRegion(ctx context.Context) ([]*domain.RegionSales, error) {
	return s.repo.GetSalesByRegion(ctx)
}

// GetTopCustomers retorna os clientes com maior valor de vendas. Limite zero usa o padrão.
func (s *Service) GetTopCustomers(ctx context.Context, limit int) ([]*domain.CustomerValue, error) {
	limit, err := normalizeLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.repo.GetTopCustomers(ctx, limit)
}

// GetTopProducts retorna os produtos mais vendidos. Limite zero usa o padrão.
func (s *Service) GetTopProducts(ctx context.Context, limit int) ([]*domain.ProductSales, error) {
	limit, err := normalizeLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.repo.GetTopProducts(ctx, limit)
}

// GetCustomerSegments classifica os clientes de maior venda. Limite zero usa DefaultSegmentLimit.
func (s *Service) GetCustomerSegments(ctx context.Context, limit int) ([]*domain.CustomerSegmentation, error) {
	if limit == 0 {
		limit = DefaultSegmentLimit
	}
	limit, err := normalizeLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.repo.GetCustomerSegments(ctx, limit)
}

func (s *Service) GetCustomerLifetimeValue(ctx context.Context, limit int) ([]*domain.CustomerLifetimeValue, error) {
	limit, err := normalizeLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.repo.GetCustomerLifetimeValue(ctx, limit)
}

func (s *Service) GetCohortRetention(ctx context.Context) ([]*domain.CohortRetention, error) {
	return s.repo.GetCohortRetention(ctx)
}

// GetFilteredSales agrega vendas por região e categoria. "All" em região ou categoria não filtra.
func (s *Service) GetFilteredSales(ctx context.Context, filter domain.SalesFilter) ([]*domain.RegionCategorySales, error) {
	if filter.MinSales != nil && filter.MinSales.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMinSales, filter.MinSales.String())
	}

	filter.Region = normalizeFilterValue(filter.Region)
	filter.Category = normalizeFilterValue(filter.Category)

	sales, err := s.repo.GetFilteredSales(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar vendas filtradas")
		return nil, err
	}
	return sales, nil
}

func normalizeFilterValue(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, allValues) {
		return ""
	}
	return value
}

func normalizeLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultRankingLimit, nil
	}
	if limit < 0 || limit > MaxRankingLimit {
		return 0, fmt.Errorf("%w: %d (máximo %d)", ErrInvalidLimit, limit, MaxRankingLimit)
	}
	return limit, nil
}
