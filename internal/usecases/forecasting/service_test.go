package forecasting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-insights-api/internal/config"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	"github.com/vfg2006/retail-sales-insights-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_GetForecasts_ConstantSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockMonthlySalesProvider(ctrl)
	provider.EXPECT().GetMonthlyAggregates(gomock.Any()).Return(buildRows(constantValues(14, 1000)...), nil)

	report := NewService(provider, nil).GetForecasts(context.Background(), 6)

	require.NotNil(t, report)
	assert.Equal(t, 6, report.Horizon)
	assert.Equal(t, domain.TargetTotalSales, report.TargetField)
	assert.Len(t, report.History, 14)
	require.Len(t, report.Forecasts, 24)

	for _, p := range report.Forecasts {
		assert.InDelta(t, 1000, p.PredictedValue, 1e-6, p.StrategyLabel)
	}

	require.Len(t, report.Accuracy, 3)
	for label, score := range report.Accuracy {
		assert.Equal(t, label, score.StrategyLabel)
		assert.InDelta(t, 0, score.MeanAbsolutePercentageError, 1e-6)
	}
}

func TestService_GetForecasts_StrategyOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	values := make([]float64, 14)
	for i := range values {
		values[i] = float64(800 + 40*i)
	}
	provider := mocks.NewMockMonthlySalesProvider(ctrl)
	provider.EXPECT().GetMonthlyAggregates(gomock.Any()).Return(buildRows(values...), nil)

	report := NewService(provider, nil).GetForecasts(context.Background(), 2)

	labels := make([]string, 0, len(report.Forecasts))
	for _, p := range report.Forecasts {
		labels = append(labels, p.StrategyLabel)
	}
	assert.Equal(t, []string{
		LabelLinear, LabelLinear,
		LabelPolynomial, LabelPolynomial,
		LabelMovingAverage, LabelMovingAverage,
		LabelSeasonal, LabelSeasonal,
	}, labels)
}

func TestService_GetForecasts_ShortHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 5 meses: sem sazonal e sem backtest
	provider := mocks.NewMockMonthlySalesProvider(ctrl)
	provider.EXPECT().GetMonthlyAggregates(gomock.Any()).Return(buildRows(100, 200, 300, 400, 500), nil)

	report := NewService(provider, nil).GetForecasts(context.Background(), 4)

	assert.Len(t, report.Forecasts, 12)
	assert.Empty(t, report.Accuracy)
	assert.Len(t, report.History, 5)
}

func TestService_GetForecasts_EmptySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		rows []*domain.MonthlySalesRow
		err  error
	}{
		{name: "Falha do provedor", err: errors.New("pq: password authentication failed")},
		{name: "Sem linhas", rows: []*domain.MonthlySalesRow{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mocks.NewMockMonthlySalesProvider(ctrl)
			provider.EXPECT().GetMonthlyAggregates(gomock.Any()).Return(tt.rows, tt.err)

			observer := mocks.NewMockRunObserver(ctrl)
			observer.EXPECT().ObserveForecastRun(OutcomeEmpty, gomock.Any())

			report := NewService(provider, nil).WithObserver(observer).GetForecasts(context.Background(), 6)

			require.NotNil(t, report)
			assert.True(t, report.IsEmpty())
			assert.NotNil(t, report.Forecasts)
			assert.Empty(t, report.Forecasts)
			assert.Empty(t, report.Accuracy)
			assert.Empty(t, report.History)
		})
	}
}

func TestService_GetForecasts_DefaultHorizon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name    string
		cfg     *config.Config
		horizon int
		want    int
	}{
		{name: "Sem configuração usa 6", cfg: nil, horizon: 0, want: 6},
		{name: "Horizonte negativo usa o padrão configurado", cfg: &config.Config{Forecast: config.Forecast{DefaultHorizon: 3}}, horizon: -2, want: 3},
		{name: "Horizonte informado prevalece", cfg: &config.Config{Forecast: config.Forecast{DefaultHorizon: 3}}, horizon: 9, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mocks.NewMockMonthlySalesProvider(ctrl)
			provider.EXPECT().GetMonthlyAggregates(gomock.Any()).Return(buildRows(100, 200, 300), nil)

			report := NewService(provider, tt.cfg).GetForecasts(context.Background(), tt.horizon)

			assert.Equal(t, tt.want, report.Horizon)
			// Linear, polinomial e média móvel
			assert.Len(t, report.Forecasts, 3*tt.want)
		})
	}
}

func TestService_GetForecasts_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	values := []float64{1200, 980, 1430, 1610, 1320, 1700, 1550, 1980, 2100, 1890, 2300, 2450, 2200, 2600, 2750}
	provider := mocks.NewMockMonthlySalesProvider(ctrl)
	provider.EXPECT().GetMonthlyAggregates(gomock.Any()).Return(buildRows(values...), nil).Times(2)

	service := NewService(provider, nil)
	first := service.GetForecasts(context.Background(), 6)
	second := service.GetForecasts(context.Background(), 6)

	assert.Equal(t, first.Forecasts, second.Forecasts)
	assert.Equal(t, first.Accuracy, second.Accuracy)
}

func TestService_GetForecastsFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Campo alvo de lucro", func(t *testing.T) {
		provider := mocks.NewMockMonthlySalesProvider(ctrl)
		provider.EXPECT().GetMonthlyAggregates(gomock.Any()).Return(buildRows(1000, 2000, 3000), nil)

		observer := mocks.NewMockRunObserver(ctrl)
		observer.EXPECT().ObserveForecastRun(OutcomeAvailable, gomock.Any())

		report, err := NewService(provider, nil).WithObserver(observer).GetForecastsFor(context.Background(), 1, domain.TargetTotalProfit)

		require.NoError(t, err)
		assert.Equal(t, domain.TargetTotalProfit, report.TargetField)
		require.NotEmpty(t, report.Forecasts)
		assert.InDelta(t, 400, report.Forecasts[0].PredictedValue, 1e-9)
	})

	t.Run("Campo alvo inválido não consulta o provedor", func(t *testing.T) {
		provider := mocks.NewMockMonthlySalesProvider(ctrl)

		report, err := NewService(provider, nil).GetForecastsFor(context.Background(), 6, domain.TargetField("revenue"))

		assert.ErrorIs(t, err, ErrInvalidTargetField)
		assert.Nil(t, report)
	})
}
