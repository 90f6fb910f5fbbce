package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-insights-api/internal/config"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	forecastmocks "github.com/vfg2006/retail-sales-insights-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

type statusRecorder struct {
	statuses []string
}

func (r *statusRecorder) ObserveSnapshotSync(status string) {
	r.statuses = append(r.statuses, status)
}

func newTestSyncService(forecaster *forecastmocks.MockForecaster, repo *mocks.MockForecastSnapshotRepository, retentionDays int) *ForecastSnapshotSyncService {
	cfg := &config.Config{
		ForecastSnapshotSync: config.ForecastSnapshotSync{
			CronSchedule:  "0 2 1 * *",
			Horizon:       6,
			RetentionDays: retentionDays,
			Enabled:       true,
		},
	}

	service := NewForecastSnapshotSyncService(forecaster, repo, cfg)
	service.generateID = func() (string, error) { return "snap00000001", nil }
	service.now = func() time.Time { return time.Date(2024, 7, 1, 2, 0, 0, 0, time.UTC) }
	return service
}

func availableReport() *domain.ForecastReport {
	return &domain.ForecastReport{
		Horizon:     6,
		TargetField: domain.TargetTotalSales,
		Forecasts:   []domain.ForecastPoint{{PredictedValue: 1000, StrategyLabel: "Linear"}},
		Accuracy:    map[string]domain.AccuracyScore{},
		History:     domain.MonthlySeries{{MonthIndex: 0}},
	}
}

func TestForecastSnapshotSyncService_SyncSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		retentionDays int
		setup         func(forecaster *forecastmocks.MockForecaster, repo *mocks.MockForecastSnapshotRepository)
		wantErr       bool
		wantStatus    string
	}{
		{
			name:          "Relatório disponível é salvo e snapshots antigos removidos",
			retentionDays: 365,
			setup: func(forecaster *forecastmocks.MockForecaster, repo *mocks.MockForecastSnapshotRepository) {
				forecaster.EXPECT().GetForecasts(gomock.Any(), 6).Return(availableReport())
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, snapshot *domain.ForecastSnapshot) error {
					assert.Equal(t, "snap00000001", snapshot.ID)
					assert.Equal(t, 6, snapshot.Horizon)
					assert.Equal(t, domain.TargetTotalSales, snapshot.TargetField)
					assert.Equal(t, time.Date(2024, 7, 1, 2, 0, 0, 0, time.UTC), snapshot.GeneratedAt)
					require.NotNil(t, snapshot.Report)
					return nil
				})
				repo.EXPECT().DeleteOlderThan(gomock.Any(), 365).Return(int64(2), nil)
			},
			wantStatus: SyncStatusSuccess,
		},
		{
			name:          "Relatório vazio não é salvo",
			retentionDays: 30,
			setup: func(forecaster *forecastmocks.MockForecaster, repo *mocks.MockForecastSnapshotRepository) {
				forecaster.EXPECT().GetForecasts(gomock.Any(), 6).Return(&domain.ForecastReport{Horizon: 6})
				repo.EXPECT().DeleteOlderThan(gomock.Any(), 30).Return(int64(0), nil)
			},
			wantStatus: SyncStatusEmpty,
		},
		{
			name:          "Erro ao salvar",
			retentionDays: 30,
			setup: func(forecaster *forecastmocks.MockForecaster, repo *mocks.MockForecastSnapshotRepository) {
				forecaster.EXPECT().GetForecasts(gomock.Any(), 6).Return(availableReport())
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr:    true,
			wantStatus: SyncStatusFailed,
		},
		{
			name:          "Erro na limpeza não falha a sincronização",
			retentionDays: 90,
			setup: func(forecaster *forecastmocks.MockForecaster, repo *mocks.MockForecastSnapshotRepository) {
				forecaster.EXPECT().GetForecasts(gomock.Any(), 6).Return(availableReport())
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().DeleteOlderThan(gomock.Any(), 90).Return(int64(0), errors.New("lock timeout"))
			},
			wantStatus: SyncStatusSuccess,
		},
		{
			name:          "Retenção zero não remove nada",
			retentionDays: 0,
			setup: func(forecaster *forecastmocks.MockForecaster, repo *mocks.MockForecastSnapshotRepository) {
				forecaster.EXPECT().GetForecasts(gomock.Any(), 6).Return(availableReport())
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: SyncStatusSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecaster := forecastmocks.NewMockForecaster(ctrl)
			repo := mocks.NewMockForecastSnapshotRepository(ctrl)
			tt.setup(forecaster, repo)

			recorder := &statusRecorder{}
			service := newTestSyncService(forecaster, repo, tt.retentionDays).WithObserver(recorder)

			err := service.SyncSnapshot(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.NotEmpty(t, service.GetStatus()["last_sync_error"])
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "", service.GetStatus()["last_sync_error"])
			}
			assert.Equal(t, []string{tt.wantStatus}, recorder.statuses)
			assert.Equal(t, false, service.GetStatus()["sync_running"])
		})
	}
}

func TestForecastSnapshotSyncService_RejectsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestSyncService(forecastmocks.NewMockForecaster(ctrl), mocks.NewMockForecastSnapshotRepository(ctrl), 30)
	service.syncRunning = true

	assert.ErrorIs(t, service.SyncSnapshot(context.Background()), ErrSyncInProgress)
	assert.ErrorIs(t, service.TriggerManualSync(), ErrSyncInProgress)
}

func TestForecastSnapshotSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	forecaster := forecastmocks.NewMockForecaster(ctrl)
	repo := mocks.NewMockForecastSnapshotRepository(ctrl)

	done := make(chan struct{})
	forecaster.EXPECT().GetForecasts(gomock.Any(), 6).Return(availableReport())
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().DeleteOlderThan(gomock.Any(), 30).DoAndReturn(func(context.Context, int) (int64, error) {
		close(done)
		return 0, nil
	})

	service := newTestSyncService(forecaster, repo, 30)
	require.NoError(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não executou")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, time.Second, 10*time.Millisecond)
}

func TestForecastSnapshotSyncService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Desabilitado não agenda", func(t *testing.T) {
		service := newTestSyncService(forecastmocks.NewMockForecaster(ctrl), mocks.NewMockForecastSnapshotRepository(ctrl), 30)
		service.config.SyncEnabled = false

		assert.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		service := newTestSyncService(forecastmocks.NewMockForecaster(ctrl), mocks.NewMockForecastSnapshotRepository(ctrl), 30)
		service.config.CronSchedule = "isso não é cron"

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Agenda e para com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		service := newTestSyncService(forecastmocks.NewMockForecaster(ctrl), mocks.NewMockForecastSnapshotRepository(ctrl), 30)

		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
		cancel()
	})
}

func TestForecastSnapshotSyncService_LatestSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockForecastSnapshotRepository(ctrl)
	repo.EXPECT().GetLatest(gomock.Any(), domain.TargetTotalSales).Return(&domain.ForecastSnapshot{ID: "abc"}, nil)

	service := newTestSyncService(forecastmocks.NewMockForecaster(ctrl), repo, 30)
	snapshot, err := service.LatestSnapshot(context.Background(), domain.TargetTotalSales)

	require.NoError(t, err)
	assert.Equal(t, "abc", snapshot.ID)
}
