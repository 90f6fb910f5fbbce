package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/retail-sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
)

const (
	forecastSnapshotsTable = "forecast_snapshots fs"
)

type ForecastSnapshotRepository interface {
	Save(ctx context.Context, snapshot *domain.ForecastSnapshot) error
	GetLatest(ctx context.Context, targetField domain.TargetField) (*domain.ForecastSnapshot, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type forecastSnapshotRepository struct {
	conn postgres.Queryer
}

func NewForecastSnapshotRepository(conn postgres.Queryer) ForecastSnapshotRepository {
	return &forecastSnapshotRepository{
		conn: conn,
	}
}

func (r *forecastSnapshotRepository) Save(ctx context.Context, snapshot *domain.ForecastSnapshot) error {
	var reportJSON []byte
	var err error

	if snapshot.Report != nil {
		reportJSON, err = json.Marshal(snapshot.Report)
		if err != nil {
			return fmt.Errorf("erro ao serializar relatório de previsão para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("forecast_snapshots").
		Columns("id", "horizon", "target_field", "report", "generated_at").
		Values(
			snapshot.ID,
			snapshot.Horizon,
			string(snapshot.TargetField),
			reportJSON,
			snapshot.GeneratedAt,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				report = EXCLUDED.report,
				generated_at = EXCLUDED.generated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *forecastSnapshotRepository) GetLatest(ctx context.Context, targetField domain.TargetField) (*domain.ForecastSnapshot, error) {
	query, args, err := squirrel.
		Select("fs.id, fs.horizon, fs.target_field, fs.report, fs.generated_at, fs.created_at").
		From(forecastSnapshotsTable).
		Where(squirrel.Eq{"fs.target_field": string(targetField)}).
		OrderBy("fs.generated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot de previsão: %w", err)
	}

	return snapshot, nil
}

func (r *forecastSnapshotRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("forecast_snapshots").
		Where(squirrel.Lt{"generated_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *forecastSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.ForecastSnapshot, error) {
	snapshot := &domain.ForecastSnapshot{}
	var reportJSON []byte
	var targetField string

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Horizon,
		&targetField,
		&reportJSON,
		&snapshot.GeneratedAt,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	snapshot.TargetField = domain.TargetField(targetField)

	if reportJSON != nil {
		report := &domain.ForecastReport{}
		if err := json.Unmarshal(reportJSON, report); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do relatório: %w", err)
		}
		snapshot.Report = report
	}

	return snapshot, nil
}
