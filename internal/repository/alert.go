package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/tourist_safety/internal/models"
	"github.com/shenikar/tourist_safety/internal/service"
)

const alertColumns = `id, tourist_id, tourist_name, alert_type, risk_score, reason, latitude, longitude,
	status, assigned_officer, created_at, resolved_at`

type AlertRepository struct {
	db DBTX
}

func NewAlertRepository(db DBTX) service.AlertRepository {
	return &AlertRepository{db: db}
}

// Create сохраняет новую тревогу
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		alert.ID,
		alert.TouristID,
		alert.TouristName,
		alert.AlertType,
		alert.RiskScore,
		alert.Reason,
		alert.Latitude,
		alert.Longitude,
		alert.Status,
		alert.AssignedOfficer,
		alert.CreatedAt,
		alert.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetByID возвращает тревогу по UUID
func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1;`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// UpdateStatus обновляет статус условно: строка меняется, только если статус все еще from
func (r *AlertRepository) UpdateStatus(ctx context.Context, alert *models.Alert, from models.AlertStatus) error {
	query := `
		UPDATE alerts SET
			status = $1,
			assigned_officer = $2,
			resolved_at = $3
		WHERE id = $4 AND status = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		alert.Status,
		alert.AssignedOfficer,
		alert.ResolvedAt,
		alert.ID,
		from,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s is no longer %s: %w", alert.ID, from, service.ErrConflict)
	}
	return nil
}

// List возвращает тревоги от новых к старым. Пустой touristID снимает фильтр.
func (r *AlertRepository) List(ctx context.Context, touristID string) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE ($1::text = '' OR tourist_id = $1)
		ORDER BY created_at DESC, id;
	`
	rows, err := r.db.Query(ctx, query, touristID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alert iteration: %w", err)
	}
	return alerts, nil
}

// CountByStatus возвращает число тревог в статусе
func (r *AlertRepository) CountByStatus(ctx context.Context, status models.AlertStatus) (int, error) {
	query := `SELECT COUNT(*) FROM alerts WHERE status = $1;`
	var count int
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count alerts by status: %w", err)
	}
	return count, nil
}

// CountPerDay возвращает число тревог по дням (UTC, YYYY-MM-DD) начиная с since
func (r *AlertRepository) CountPerDay(ctx context.Context, since time.Time) (map[string]int, error) {
	query := `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		FROM alerts
		WHERE created_at >= $1
		GROUP BY day
		ORDER BY day;
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count alerts per day: %w", err)
	}
	defer rows.Close()

	perDay := make(map[string]int)
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan alerts per day row: %w", err)
		}
		perDay[day] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alerts per day iteration: %w", err)
	}
	return perDay, nil
}

// AvgResolutionMinutes возвращает среднее время от создания до закрытия тревоги в минутах
func (r *AlertRepository) AvgResolutionMinutes(ctx context.Context, since time.Time) (float64, error) {
	query := `
		SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (resolved_at - created_at)) / 60), 0)::float8
		FROM alerts
		WHERE status = 'resolved' AND created_at >= $1;
	`
	var avg float64
	if err := r.db.QueryRow(ctx, query, since).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to compute average resolution time: %w", err)
	}
	return avg, nil
}

func scanAlert(row pgx.Row) (*models.Alert, error) {
	alert := &models.Alert{}
	err := row.Scan(
		&alert.ID,
		&alert.TouristID,
		&alert.TouristName,
		&alert.AlertType,
		&alert.RiskScore,
		&alert.Reason,
		&alert.Latitude,
		&alert.Longitude,
		&alert.Status,
		&alert.AssignedOfficer,
		&alert.CreatedAt,
		&alert.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}
