package model

type Document struct {
	ID               int64            `gorm:"primaryKey"`
	ReportID         int64            `gorm:"not null;index"`
	Report           *QuarterlyReport `gorm:"foreignKey:ReportID"`
	UploadedByUserID int64            `gorm:"not null;index"`
	UploadedBy       *User            `gorm:"foreignKey:UploadedByUserID"`
	Filename         string           `gorm:"not null"`
	FilePath         string           `gorm:"not null"`
}
