package model

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleAnalyst  UserRole = "ANALYST"
	RoleExecutor UserRole = "EXECUTOR"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleAnalyst, RoleExecutor:
		return true
	}
	return false
}

// User email is stored lower-cased so the unique index doubles as the
// case-insensitive collision check.
type User struct {
	ID           int64    `gorm:"primaryKey"`
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	FullName     string
	Role         UserRole `gorm:"type:varchar(20);not null"`
}
