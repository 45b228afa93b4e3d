package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/tourist_safety/internal/models"
	"github.com/shenikar/tourist_safety/internal/service"
)

// TouristRepository - реестр туристов поверх таблицы tourists
type TouristRepository struct {
	db DBTX
}

func NewTouristRepository(db DBTX) service.TouristRegistry {
	return &TouristRepository{db: db}
}

// GetByID возвращает туриста по идентификатору
func (r *TouristRepository) GetByID(ctx context.Context, touristID string) (*models.Tourist, error) {
	query := `
		SELECT tourist_id, name, status, safety_score
		FROM tourists
		WHERE tourist_id = $1;
	`
	tourist := &models.Tourist{}
	err := r.db.QueryRow(ctx, query, touristID).Scan(
		&tourist.TouristID,
		&tourist.Name,
		&tourist.Status,
		&tourist.SafetyScore,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("tourist %s: %w", touristID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tourist by id: %w", err)
	}
	return tourist, nil
}

// UpdateSafetyScore записывает новую оценку безопасности одной строкой
func (r *TouristRepository) UpdateSafetyScore(ctx context.Context, touristID string, score float64) error {
	query := `UPDATE tourists SET safety_score = $1 WHERE tourist_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, score, touristID)
	if err != nil {
		return fmt.Errorf("failed to update safety score: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("tourist %s for score update: %w", touristID, service.ErrNotFound)
	}
	return nil
}

// CountActive возвращает число активных туристов
func (r *TouristRepository) CountActive(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM tourists WHERE status = 'active';`
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active tourists: %w", err)
	}
	return count, nil
}
