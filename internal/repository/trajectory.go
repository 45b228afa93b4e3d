package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/tourist_safety/internal/models"
	"github.com/shenikar/tourist_safety/internal/service"
)

type TrajectoryRepository struct {
	db DBTX
}

func NewTrajectoryRepository(db DBTX) service.TrajectoryRepository {
	return &TrajectoryRepository{db: db}
}

// Append добавляет точку траектории, точки никогда не изменяются
func (r *TrajectoryRepository) Append(ctx context.Context, point *models.LocationPoint) error {
	query := `
		INSERT INTO location_points (tourist_id, latitude, longitude, recorded_at)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		point.TouristID,
		point.Latitude,
		point.Longitude,
		point.Timestamp,
	).Scan(&point.ID)
	if err != nil {
		return fmt.Errorf("failed to append location point: %w", err)
	}
	return nil
}

// RecentWindow возвращает до limit последних точек туриста, от новых к старым
func (r *TrajectoryRepository) RecentWindow(ctx context.Context, touristID string, limit int) ([]*models.LocationPoint, error) {
	query := `
		SELECT id, tourist_id, latitude, longitude, recorded_at
		FROM location_points
		WHERE tourist_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, touristID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read trajectory window: %w", err)
	}
	defer rows.Close()

	points := make([]*models.LocationPoint, 0, limit)
	for rows.Next() {
		point := &models.LocationPoint{}
		if err := rows.Scan(
			&point.ID,
			&point.TouristID,
			&point.Latitude,
			&point.Longitude,
			&point.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan location point row: %w", err)
		}
		points = append(points, point)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error trajectory iteration: %w", err)
	}
	return points, nil
}
