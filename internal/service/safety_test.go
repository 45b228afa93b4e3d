package service

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety/internal/models"
	"github.com/shenikar/tourist_safety/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type safetyMocks struct {
	trajectories *mocks.MockTrajectoryRepository
	zones        *mocks.MockGeoZoneRepository
	alerts       *mocks.MockAlertRepository
	tourists     *mocks.MockTouristRegistry
	evaluator    *mocks.MockRiskEvaluator
	engine       *mocks.MockAlertEngine
}

// newTestSafetyService - вспомогательная функция для создания сервиса с моками.
func newTestSafetyService(t *testing.T) (*safetyService, *safetyMocks) {
	ctrl := gomock.NewController(t)
	m := &safetyMocks{
		trajectories: mocks.NewMockTrajectoryRepository(ctrl),
		zones:        mocks.NewMockGeoZoneRepository(ctrl),
		alerts:       mocks.NewMockAlertRepository(ctrl),
		tourists:     mocks.NewMockTouristRegistry(ctrl),
		evaluator:    mocks.NewMockRiskEvaluator(ctrl),
		engine:       mocks.NewMockAlertEngine(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	opts := SafetyOptions{AlertThreshold: 50, DashboardWindowDays: 7}
	svc := NewSafetyService(m.trajectories, m.zones, m.alerts, m.tourists, m.evaluator, m.engine, opts, logger).(*safetyService)
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func TestRecordLocation_HighScoreNoAlert(t *testing.T) {
	// Подготовка
	svc, m := newTestSafetyService(t)
	ctx := context.Background()
	tourist := &models.Tourist{TouristID: "tourist-1", Name: "Анна"}

	// Ожидания
	m.tourists.EXPECT().GetByID(ctx, "tourist-1").Return(tourist, nil).Times(1)
	m.trajectories.EXPECT().
		Append(ctx, gomock.Any()).
		Do(func(ctx context.Context, point *models.LocationPoint) {
			assert.Equal(t, "tourist-1", point.TouristID)
			assert.Equal(t, 28.6, point.Latitude)
			assert.Equal(t, 77.2, point.Longitude)
			assert.Equal(t, fixedNow, point.Timestamp)
		}).Return(nil).Times(1)
	m.evaluator.EXPECT().Evaluate(ctx, "tourist-1").Return(85.0, nil).Times(1)
	m.tourists.EXPECT().UpdateSafetyScore(ctx, "tourist-1", 85.0).Return(nil).Times(1)
	m.engine.EXPECT().TriggerAnomalyAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	score, err := svc.RecordLocation(ctx, touristPrincipal, 28.6, 77.2)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 85.0, score)
}

func TestRecordLocation_LowScoreTriggersAlert(t *testing.T) {
	svc, m := newTestSafetyService(t)
	ctx := context.Background()
	tourist := &models.Tourist{TouristID: "tourist-1", Name: "Анна"}

	m.tourists.EXPECT().GetByID(ctx, "tourist-1").Return(tourist, nil).Times(1)
	m.trajectories.EXPECT().Append(ctx, gomock.Any()).Return(nil).Times(1)
	m.evaluator.EXPECT().Evaluate(ctx, "tourist-1").Return(45.0, nil).Times(1)
	m.tourists.EXPECT().UpdateSafetyScore(ctx, "tourist-1", 45.0).Return(nil).Times(1)
	m.engine.EXPECT().TriggerAnomalyAlert(ctx, tourist, 45.0, 28.6, 77.2).Return(&models.Alert{}, nil).Times(1)

	score, err := svc.RecordLocation(ctx, touristPrincipal, 28.6, 77.2)

	require.NoError(t, err)
	assert.Equal(t, 45.0, score)
}

func TestRecordLocation_ScoreAtThresholdDoesNotAlert(t *testing.T) {
	svc, m := newTestSafetyService(t)
	ctx := context.Background()
	tourist := &models.Tourist{TouristID: "tourist-1"}

	m.tourists.EXPECT().GetByID(ctx, "tourist-1").Return(tourist, nil).Times(1)
	m.trajectories.EXPECT().Append(ctx, gomock.Any()).Return(nil).Times(1)
	m.evaluator.EXPECT().Evaluate(ctx, "tourist-1").Return(50.0, nil).Times(1)
	m.tourists.EXPECT().UpdateSafetyScore(ctx, "tourist-1", 50.0).Return(nil).Times(1)
	m.engine.EXPECT().TriggerAnomalyAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.RecordLocation(ctx, touristPrincipal, 1, 1)

	require.NoError(t, err)
}

func TestRecordLocation_AlertFailureFailsRequest(t *testing.T) {
	svc, m := newTestSafetyService(t)
	ctx := context.Background()
	tourist := &models.Tourist{TouristID: "tourist-1"}

	m.tourists.EXPECT().GetByID(ctx, "tourist-1").Return(tourist, nil).Times(1)
	m.trajectories.EXPECT().Append(ctx, gomock.Any()).Return(nil).Times(1)
	m.evaluator.EXPECT().Evaluate(ctx, "tourist-1").Return(10.0, nil).Times(1)
	m.tourists.EXPECT().UpdateSafetyScore(ctx, "tourist-1", 10.0).Return(nil).Times(1)
	m.engine.EXPECT().TriggerAnomalyAlert(ctx, tourist, 10.0, 1.0, 1.0).Return(nil, fmt.Errorf("service: could not create alert: boom")).Times(1)

	_, err := svc.RecordLocation(ctx, touristPrincipal, 1, 1)

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create alert")
}

func TestRecordLocation_ScorePersistFailure(t *testing.T) {
	svc, m := newTestSafetyService(t)
	ctx := context.Background()
	tourist := &models.Tourist{TouristID: "tourist-1"}

	m.tourists.EXPECT().GetByID(ctx, "tourist-1").Return(tourist, nil).Times(1)
	m.trajectories.EXPECT().Append(ctx, gomock.Any()).Return(nil).Times(1)
	m.evaluator.EXPECT().Evaluate(ctx, "tourist-1").Return(20.0, nil).Times(1)
	m.tourists.EXPECT().UpdateSafetyScore(ctx, "tourist-1", 20.0).Return(fmt.Errorf("timeout")).Times(1)
	m.engine.EXPECT().TriggerAnomalyAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.RecordLocation(ctx, touristPrincipal, 1, 1)

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not update safety score")
}

func TestRecordLocation_EvaluateFailure(t *testing.T) {
	svc, m := newTestSafetyService(t)
	ctx := context.Background()

	m.tourists.EXPECT().GetByID(ctx, "tourist-1").Return(&models.Tourist{TouristID: "tourist-1"}, nil).Times(1)
	m.trajectories.EXPECT().Append(ctx, gomock.Any()).Return(nil).Times(1)
	m.evaluator.EXPECT().Evaluate(ctx, "tourist-1").Return(0.0, fmt.Errorf("db down")).Times(1)
	m.tourists.EXPECT().UpdateSafetyScore(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.RecordLocation(ctx, touristPrincipal, 1, 1)

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not evaluate safety score")
}

func TestRecordLocation_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		principal models.Principal
		lat, lon  float64
		wantErr   error
	}{
		{name: "police cannot record", principal: policePrincipal, lat: 1, lon: 1, wantErr: ErrForbidden},
		{name: "latitude out of range", principal: touristPrincipal, lat: -90.5, lon: 1, wantErr: ErrValidation},
		{name: "longitude out of range", principal: touristPrincipal, lat: 1, lon: 181, wantErr: ErrValidation},
		{name: "nan", principal: touristPrincipal, lat: math.NaN(), lon: 1, wantErr: ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestSafetyService(t)
			m.tourists.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
			m.trajectories.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.RecordLocation(context.Background(), tt.principal, tt.lat, tt.lon)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordLocation_UnknownTourist(t *testing.T) {
	svc, m := newTestSafetyService(t)
	ctx := context.Background()

	m.tourists.EXPECT().GetByID(ctx, "tourist-1").Return(nil, fmt.Errorf("tourist tourist-1: %w", ErrNotFound)).Times(1)
	m.trajectories.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.RecordLocation(ctx, touristPrincipal, 1, 1)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListLocations(t *testing.T) {
	svc, m := newTestSafetyService(t)
	ctx := context.Background()
	points := []*models.LocationPoint{{ID: 2, TouristID: "tourist-1"}, {ID: 1, TouristID: "tourist-1"}}

	m.trajectories.EXPECT().RecentWindow(ctx, "tourist-1", LocationHistoryLimit).Return(points, nil).Times(2)

	got, err := svc.ListLocations(ctx, touristPrincipal, "tourist-1")
	require.NoError(t, err)
	assert.Equal(t, points, got)

	got, err = svc.ListLocations(ctx, policePrincipal, "tourist-1")
	require.NoError(t, err)
	assert.Equal(t, points, got)

	_, err = svc.ListLocations(ctx, touristPrincipal, "tourist-2")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateGeoZone_Success(t *testing.T) {
	svc, m := newTestSafetyService(t)
	ctx := context.Background()
	zone := &models.GeoZone{Name: "Night market", RiskLevel: models.RiskLevelMedium, CenterLat: 28.65, CenterLng: 77.23, Radius: 0.01}

	m.zones.EXPECT().Create(ctx, zone).Return(nil).Times(1)

	err := svc.CreateGeoZone(ctx, officerPrincipal, zone)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, zone.ID)
	assert.Equal(t, fixedNow, zone.CreatedAt)
}

func TestCreateGeoZone_Rejections(t *testing.T) {
	valid := models.GeoZone{Name: "Zone", RiskLevel: models.RiskLevelHigh, CenterLat: 1, CenterLng: 1, Radius: 0.1}
	tests := []struct {
		name      string
		principal models.Principal
		mutate    func(z *models.GeoZone)
		wantErr   error
	}{
		{name: "tourist forbidden", principal: touristPrincipal, mutate: func(z *models.GeoZone) {}, wantErr: ErrForbidden},
		{name: "empty name", principal: policePrincipal, mutate: func(z *models.GeoZone) { z.Name = " " }, wantErr: ErrValidation},
		{name: "bad risk level", principal: policePrincipal, mutate: func(z *models.GeoZone) { z.RiskLevel = "extreme" }, wantErr: ErrValidation},
		{name: "zero radius", principal: policePrincipal, mutate: func(z *models.GeoZone) { z.Radius = 0 }, wantErr: ErrValidation},
		{name: "bad center", principal: policePrincipal, mutate: func(z *models.GeoZone) { z.CenterLng = 200 }, wantErr: ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestSafetyService(t)
			m.zones.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			zone := valid
			tt.mutate(&zone)

			err := svc.CreateGeoZone(context.Background(), tt.principal, &zone)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSeedDefaultZones(t *testing.T) {
	svc, m := newTestSafetyService(t)
	ctx := context.Background()

	m.zones.EXPECT().
		SeedDefaults(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, zones []*models.GeoZone) (int, error) {
			require.Len(t, zones, 2)
			for _, z := range zones {
				assert.NotEqual(t, uuid.Nil, z.ID)
			}
			return len(zones), nil
		}).Times(1)

	require.NoError(t, svc.SeedDefaultZones(ctx))
}

func TestGetDashboard_Success(t *testing.T) {
	// Подготовка
	svc, m := newTestSafetyService(t)
	ctx := context.Background()
	since := fixedNow.AddDate(0, 0, -7)
	perDay := map[string]int{"2024-02-29": 3, "2024-03-01": 1}

	// Ожидания
	m.tourists.EXPECT().CountActive(gomock.Any()).Return(12, nil).Times(1)
	m.alerts.EXPECT().CountByStatus(gomock.Any(), models.AlertStatusPending).Return(4, nil).Times(1)
	m.alerts.EXPECT().CountPerDay(gomock.Any(), since).Return(perDay, nil).Times(1)
	m.zones.EXPECT().HighRiskZones(gomock.Any()).Return([]*models.GeoZone{{}, {}}, nil).Times(1)
	m.alerts.EXPECT().AvgResolutionMinutes(gomock.Any(), since).Return(17.5, nil).Times(1)

	// Действие
	stats, err := svc.GetDashboard(ctx, policePrincipal)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, &models.DashboardStats{
		TotalTourists:      12,
		ActiveAlerts:       4,
		AlertsPerDay:       perDay,
		HighRiskZonesCount: 2,
		AvgResponseMinutes: 17.5,
	}, stats)
}

func TestGetDashboard_Failures(t *testing.T) {
	svc, m := newTestSafetyService(t)
	ctx := context.Background()

	_, err := svc.GetDashboard(ctx, touristPrincipal)
	assert.ErrorIs(t, err, ErrForbidden)

	m.tourists.EXPECT().CountActive(gomock.Any()).Return(0, fmt.Errorf("db down")).Times(1)
	m.alerts.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	m.alerts.EXPECT().CountPerDay(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.zones.EXPECT().HighRiskZones(gomock.Any()).Return(nil, nil).AnyTimes()
	m.alerts.EXPECT().AvgResolutionMinutes(gomock.Any(), gomock.Any()).Return(0.0, nil).AnyTimes()

	_, err = svc.GetDashboard(ctx, policePrincipal)
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not collect dashboard stats")
}
