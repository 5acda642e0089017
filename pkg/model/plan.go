package model

import "time"

type Plan struct {
	ID              int64   `gorm:"primaryKey"`
	Name            string  `gorm:"not null"`
	Description     string  `gorm:"type:text"`
	TargetValue     float64 `gorm:"type:numeric(14,2)"`
	StartDate       time.Time `gorm:"type:date"`
	EndDate         time.Time `gorm:"type:date"`
	CreatedByUserID int64     `gorm:"not null;index"`
	CreatedBy       *User     `gorm:"foreignKey:CreatedByUserID"`
	Executors       []User    `gorm:"many2many:plan_executors"`
	CreatedAt       time.Time
}

// ExecutorIDs returns the executor set as ids, order unspecified.
func (p *Plan) ExecutorIDs() []int64 {
	ids := make([]int64, 0, len(p.Executors))
	for _, u := range p.Executors {
		ids = append(ids, u.ID)
	}
	return ids
}
