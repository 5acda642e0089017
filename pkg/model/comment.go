package model

type Comment struct {
	ID       int64            `gorm:"primaryKey"`
	ReportID int64            `gorm:"not null;index"`
	Report   *QuarterlyReport `gorm:"foreignKey:ReportID"`
	UserID   int64            `gorm:"not null;index"`
	User     *User            `gorm:"foreignKey:UserID"`
	Text     string           `gorm:"type:text;not null"`
}
