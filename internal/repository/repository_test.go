package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shenikar/tourist_safety/internal/models"
	"github.com/shenikar/tourist_safety/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

var alertCols = []string{
	"id", "tourist_id", "tourist_name", "alert_type", "risk_score", "reason", "latitude", "longitude",
	"status", "assigned_officer", "created_at", "resolved_at",
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func f64(v float64) *float64 { return &v }

func TestTrajectoryRepository_Append(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTrajectoryRepository(mock)
	point := &models.LocationPoint{TouristID: "tourist-1", Latitude: 28.6, Longitude: 77.2, Timestamp: testNow}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO location_points")).
		WithArgs("tourist-1", 28.6, 77.2, testNow).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(17)))

	require.NoError(t, repo.Append(context.Background(), point))
	assert.Equal(t, int64(17), point.ID)
}

func TestTrajectoryRepository_RecentWindow(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTrajectoryRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "tourist_id", "latitude", "longitude", "recorded_at"}).
		AddRow(int64(2), "tourist-1", 28.61, 77.21, testNow).
		AddRow(int64(1), "tourist-1", 28.60, 77.20, testNow.Add(-time.Minute))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY recorded_at DESC, id DESC")).
		WithArgs("tourist-1", 50).
		WillReturnRows(rows)

	points, err := repo.RecentWindow(context.Background(), "tourist-1", 50)

	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, int64(2), points[0].ID)
	assert.True(t, points[0].Timestamp.After(points[1].Timestamp))
}

func TestTrajectoryRepository_RecentWindowError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTrajectoryRepository(mock)

	mock.ExpectQuery("SELECT id, tourist_id").WithArgs("tourist-1", 50).WillReturnError(errors.New("connection reset"))

	_, err := repo.RecentWindow(context.Background(), "tourist-1", 50)

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read trajectory window")
}

func TestTouristRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTouristRepository(mock)

	mock.ExpectQuery("FROM tourists").
		WithArgs("tourist-1").
		WillReturnRows(pgxmock.NewRows([]string{"tourist_id", "name", "status", "safety_score"}).
			AddRow("tourist-1", "Анна", "active", 85.0))

	tourist, err := repo.GetByID(context.Background(), "tourist-1")

	require.NoError(t, err)
	assert.Equal(t, &models.Tourist{TouristID: "tourist-1", Name: "Анна", Status: "active", SafetyScore: 85}, tourist)
}

func TestTouristRepository_GetByIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTouristRepository(mock)

	mock.ExpectQuery("FROM tourists").WithArgs("ghost").WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestTouristRepository_UpdateSafetyScore(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTouristRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tourists SET safety_score")).
		WithArgs(72.5, "tourist-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE tourists SET safety_score")).
		WithArgs(72.5, "ghost").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.UpdateSafetyScore(context.Background(), "tourist-1", 72.5))
	assert.ErrorIs(t, repo.UpdateSafetyScore(context.Background(), "ghost", 72.5), service.ErrNotFound)
}

func TestTouristRepository_CountActive(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTouristRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tourists")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountActive(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestGeoZoneRepository_HighRiskZonesWithoutCache(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGeoZoneRepository(mock, nil)
	id := uuid.New()

	rows := pgxmock.NewRows([]string{"id", "name", "risk_level", "center_lat", "center_lng", "radius", "description", "created_at"}).
		AddRow(id, "High Crime Area - Downtown", models.RiskLevelHigh, 28.6139, 77.2090, 0.05, "Known for petty theft", testNow)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE risk_level = 'high'")).WillReturnRows(rows)

	zones, err := repo.HighRiskZones(context.Background())

	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, id, zones[0].ID)
	assert.Equal(t, models.RiskLevelHigh, zones[0].RiskLevel)
	assert.Equal(t, 0.05, zones[0].Radius)
}

func TestGeoZoneRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGeoZoneRepository(mock, nil)
	zone := &models.GeoZone{ID: uuid.New(), Name: "Zone", RiskLevel: models.RiskLevelLow, CenterLat: 1, CenterLng: 2, Radius: 0.1, CreatedAt: testNow}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO geo_zones")).
		WithArgs(zone.ID, zone.Name, zone.RiskLevel, zone.CenterLat, zone.CenterLng, zone.Radius, zone.Description, zone.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), zone))
}

func TestGeoZoneRepository_SeedDefaults(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGeoZoneRepository(mock, nil)
	zones := []*models.GeoZone{
		{ID: uuid.New(), Name: "A", RiskLevel: models.RiskLevelHigh, Radius: 0.05, CreatedAt: testNow},
		{ID: uuid.New(), Name: "B", RiskLevel: models.RiskLevelLow, Radius: 0.03, CreatedAt: testNow},
	}

	mock.ExpectExec(regexp.QuoteMeta("WHERE NOT EXISTS (SELECT 1 FROM geo_zones)")).
		WithArgs(pgxmock.AnyArg(), []string{"A", "B"}, []string{"high", "low"}, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectExec(regexp.QuoteMeta("WHERE NOT EXISTS (SELECT 1 FROM geo_zones)")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	inserted, err := repo.SeedDefaults(context.Background(), zones)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// повторный запуск на непустой таблице ничего не вставляет
	inserted, err = repo.SeedDefaults(context.Background(), zones)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestAlertRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAlertRepository(mock)
	alert := &models.Alert{
		ID:        uuid.New(),
		TouristID: "tourist-1",
		AlertType: models.AlertTypePanic,
		RiskScore: 100,
		Reason:    "Emergency panic button activated by tourist",
		Status:    models.AlertStatusPending,
		CreatedAt: testNow,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO alerts")).
		WithArgs(alert.ID, alert.TouristID, alert.TouristName, alert.AlertType, alert.RiskScore, alert.Reason,
			alert.Latitude, alert.Longitude, alert.Status, alert.AssignedOfficer, alert.CreatedAt, alert.ResolvedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), alert))
}

func TestAlertRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAlertRepository(mock)
	id := uuid.New()

	rows := pgxmock.NewRows(alertCols).
		AddRow(id, "tourist-1", "Анна", models.AlertTypeAIAnomaly, 42.0, "Low safety score detected by AI analysis",
			f64(28.6), f64(77.2), models.AlertStatusPending, nil, testNow, nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM alerts WHERE id = $1")).WithArgs(id).WillReturnRows(rows)

	alert, err := repo.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, alert.ID)
	assert.Equal(t, models.AlertStatusPending, alert.Status)
	assert.Equal(t, 28.6, *alert.Latitude)
	assert.Nil(t, alert.AssignedOfficer)
	assert.Nil(t, alert.ResolvedAt)
}

func TestAlertRepository_GetByIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAlertRepository(mock)
	id := uuid.New()

	mock.ExpectQuery("FROM alerts").WithArgs(id).WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestAlertRepository_UpdateStatus(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAlertRepository(mock)
	resolvedAt := testNow
	alert := &models.Alert{ID: uuid.New(), Status: models.AlertStatusResolved, ResolvedAt: &resolvedAt}

	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $4 AND status = $5")).
		WithArgs(alert.Status, alert.AssignedOfficer, alert.ResolvedAt, alert.ID, models.AlertStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $4 AND status = $5")).
		WithArgs(alert.Status, alert.AssignedOfficer, alert.ResolvedAt, alert.ID, models.AlertStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.UpdateStatus(context.Background(), alert, models.AlertStatusPending))
	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), alert, models.AlertStatusPending), service.ErrConflict)
}

func TestAlertRepository_List(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAlertRepository(mock)
	newer, older := uuid.New(), uuid.New()
	officer := "officer-7"

	rows := pgxmock.NewRows(alertCols).
		AddRow(newer, "tourist-1", "Анна", models.AlertTypePanic, 100.0, "panic", nil, nil,
			models.AlertStatusAssigned, &officer, testNow, nil).
		AddRow(older, "tourist-1", "Анна", models.AlertTypeAIAnomaly, 40.0, "anomaly", f64(1), f64(2),
			models.AlertStatusResolved, nil, testNow.Add(-time.Hour), &testNow)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).WithArgs("tourist-1").WillReturnRows(rows)

	alerts, err := repo.List(context.Background(), "tourist-1")

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, newer, alerts[0].ID)
	assert.Equal(t, "officer-7", *alerts[0].AssignedOfficer)
	assert.Nil(t, alerts[0].Latitude)
	assert.Equal(t, testNow, *alerts[1].ResolvedAt)
}

func TestAlertRepository_Stats(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAlertRepository(mock)
	since := testNow.AddDate(0, 0, -7)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM alerts WHERE status = $1")).
		WithArgs(models.AlertStatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY day")).
		WithArgs(since).
		WillReturnRows(pgxmock.NewRows([]string{"day", "count"}).AddRow("2024-02-29", 2).AddRow("2024-03-01", 1))
	mock.ExpectQuery(regexp.QuoteMeta("EXTRACT(EPOCH FROM (resolved_at - created_at))")).
		WithArgs(since).
		WillReturnRows(pgxmock.NewRows([]string{"avg"}).AddRow(12.5))

	ctx := context.Background()
	pending, err := repo.CountByStatus(ctx, models.AlertStatusPending)
	require.NoError(t, err)
	assert.Equal(t, 3, pending)

	perDay, err := repo.CountPerDay(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2024-02-29": 2, "2024-03-01": 1}, perDay)

	avg, err := repo.AvgResolutionMinutes(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, 12.5, avg)
}
