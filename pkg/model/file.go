package model

// FileMetadata maps a generated stored filename to its absolute path in
// the upload directory.
type FileMetadata struct {
	ID       int64  `gorm:"primaryKey"`
	Filename string `gorm:"uniqueIndex;not null"`
	FilePath string `gorm:"not null"`
}
