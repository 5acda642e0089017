package model

import "time"

type QuarterlyReport struct {
	ID                     int64   `gorm:"primaryKey"`
	PlanID                 int64   `gorm:"not null;index"`
	Plan                   *Plan   `gorm:"foreignKey:PlanID"`
	ReportingUserID        int64   `gorm:"not null;index"`
	ReportingUser          *User   `gorm:"foreignKey:ReportingUserID"`
	AssessedByUserID       *int64
	AssessedByUser         *User   `gorm:"foreignKey:AssessedByUserID"`
	Year                   int     `gorm:"not null"`
	Quarter                int     `gorm:"not null"`
	ActualValue            float64 `gorm:"type:numeric(14,2)"`
	AnalystAssessmentScore *int
	CreatedAt              time.Time
}
