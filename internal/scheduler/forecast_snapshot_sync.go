package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-insights-api/internal/config"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	"github.com/vfg2006/retail-sales-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/retail-sales-insights-api/pkg/utils"
)

const (
	SyncStatusSuccess = "success"
	SyncStatusEmpty   = "empty"
	SyncStatusFailed  = "failed"
)

// ErrSyncInProgress indica que já existe uma sincronização em execução
var ErrSyncInProgress = errors.New("sincronização de snapshots já em andamento")

// SyncObserver recebe o status de cada execução da sincronização
type SyncObserver interface {
	ObserveSnapshotSync(status string)
}

// ForecastSnapshotSyncConfig representa a configuração do agendador de snapshots de previsão
type ForecastSnapshotSyncConfig struct {
	CronSchedule  string
	Horizon       int
	RetentionDays int
	SyncEnabled   bool
}

// ForecastSnapshotSyncService gera e persiste periodicamente o relatório de previsão padrão
type ForecastSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              ForecastSnapshotSyncConfig
	forecaster          forecasting.Forecaster
	snapshotRepo        repository.ForecastSnapshotRepository
	observer            SyncObserver
	generateID          func() (string, error)
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewForecastSnapshotSyncService cria uma nova instância do serviço de snapshots de previsão
func NewForecastSnapshotSyncService(
	forecaster forecasting.Forecaster,
	snapshotRepo repository.ForecastSnapshotRepository,
	appConfig *config.Config,
) *ForecastSnapshotSyncService {
	syncConfig := ForecastSnapshotSyncConfig{
		CronSchedule:  appConfig.ForecastSnapshotSync.CronSchedule,
		Horizon:       appConfig.ForecastSnapshotSync.Horizon,
		RetentionDays: appConfig.ForecastSnapshotSync.RetentionDays,
		SyncEnabled:   appConfig.ForecastSnapshotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"horizon":        syncConfig.Horizon,
		"retention_days": syncConfig.RetentionDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de previsão carregada")

	return &ForecastSnapshotSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		forecaster:   forecaster,
		snapshotRepo: snapshotRepo,
		generateID:   utils.GenerateID,
		now:          time.Now,
	}
}

// WithObserver registra um observador para as execuções (métricas)
func (s *ForecastSnapshotSyncService) WithObserver(observer SyncObserver) *ForecastSnapshotSyncService {
	s.observer = observer
	return s
}

// Start inicia o agendador
func (s *ForecastSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshot de previsões desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de previsão")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncSnapshot(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("Erro na sincronização agendada de snapshots")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de previsões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de previsão")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncSnapshot gera o relatório padrão, persiste o snapshot e remove os antigos
func (s *ForecastSnapshotSyncService) SyncSnapshot(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de previsões já em andamento, ignorando")
		return ErrSyncInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	status, err := s.runSync(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if s.observer != nil {
		s.observer.ObserveSnapshotSync(status)
	}

	return err
}

func (s *ForecastSnapshotSyncService) runSync(ctx context.Context) (string, error) {
	startTime := s.now()
	logrus.WithField("horizon", s.config.Horizon).Info("Iniciando snapshot de previsões")

	report := s.forecaster.GetForecasts(ctx, s.config.Horizon)
	status := SyncStatusEmpty

	if report.IsEmpty() {
		logrus.Warn("Relatório de previsão vazio, snapshot não será salvo")
	} else {
		id, err := s.generateID()
		if err != nil {
			return SyncStatusFailed, fmt.Errorf("erro ao gerar ID do snapshot: %w", err)
		}

		snapshot := &domain.ForecastSnapshot{
			ID:          id,
			Horizon:     report.Horizon,
			TargetField: report.TargetField,
			Report:      report,
			GeneratedAt: startTime,
		}

		if err := s.snapshotRepo.Save(ctx, snapshot); err != nil {
			return SyncStatusFailed, fmt.Errorf("erro ao salvar snapshot %s: %w", id, err)
		}

		status = SyncStatusSuccess
		logrus.WithFields(logrus.Fields{
			"snapshot_id": id,
			"points":      len(report.Forecasts),
		}).Info("Snapshot de previsões salvo")
	}

	if s.config.RetentionDays > 0 {
		deleted, err := s.snapshotRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
		if err != nil {
			// A limpeza não invalida o snapshot recém salvo
			logrus.WithError(err).Warn("Erro ao remover snapshots antigos")
		} else if deleted > 0 {
			logrus.WithField("deleted", deleted).Info("Snapshots antigos removidos")
		}
	}

	logrus.WithField("duration", s.now().Sub(startTime).String()).Info("Snapshot de previsões concluído")
	return status, nil
}

// TriggerManualSync dispara uma sincronização em segundo plano
func (s *ForecastSnapshotSyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de previsões já em andamento, ignorando solicitação manual")
		return ErrSyncInProgress
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual de previsões")
	go func() {
		if err := s.SyncSnapshot(context.Background()); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("Erro na sincronização manual de snapshots")
		}
	}()

	return nil
}

// LatestSnapshot retorna o último snapshot persistido para o campo alvo
func (s *ForecastSnapshotSyncService) LatestSnapshot(ctx context.Context, field domain.TargetField) (*domain.ForecastSnapshot, error) {
	return s.snapshotRepo.GetLatest(ctx, field)
}

// GetStatus retorna o status atual da sincronização
func (s *ForecastSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"horizon":                s.config.Horizon,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
