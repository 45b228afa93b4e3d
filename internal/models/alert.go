package models

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertTypePanic     AlertType = "panic"
	AlertTypeAIAnomaly AlertType = "ai_anomaly"
)

type AlertStatus string

const (
	AlertStatusPending  AlertStatus = "pending"
	AlertStatusAssigned AlertStatus = "assigned"
	AlertStatusResolved AlertStatus = "resolved"
)

// Valid сообщает, является ли статус одним из известных значений
func (s AlertStatus) Valid() bool {
	switch s {
	case AlertStatusPending, AlertStatusAssigned, AlertStatusResolved:
		return true
	}
	return false
}

// CanTransitionTo проверяет допустимость перехода статуса.
// Допустимы pending -> assigned -> resolved и pending -> resolved; из resolved выхода нет.
// assigned -> assigned разрешен для переназначения офицера.
func (s AlertStatus) CanTransitionTo(next AlertStatus) bool {
	switch s {
	case AlertStatusPending:
		return next == AlertStatusAssigned || next == AlertStatusResolved
	case AlertStatusAssigned:
		return next == AlertStatusAssigned || next == AlertStatusResolved
	case AlertStatusResolved:
		return false
	}
	return false
}

// Alert - тревога по туристу. Опциональные поля представлены указателями.
type Alert struct {
	ID              uuid.UUID   `json:"id"`
	TouristID       string      `json:"tourist_id"`
	TouristName     string      `json:"tourist_name"`
	AlertType       AlertType   `json:"alert_type"`
	RiskScore       float64     `json:"risk_score"`
	Reason          string      `json:"reason"`
	Latitude        *float64    `json:"latitude,omitempty"`
	Longitude       *float64    `json:"longitude,omitempty"`
	Status          AlertStatus `json:"status"`
	AssignedOfficer *string     `json:"assigned_officer,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	ResolvedAt      *time.Time  `json:"resolved_at,omitempty"`
}
