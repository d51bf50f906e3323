package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleUser       = "USER"
)

// User representa un usuario que consume la API.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"` // bcrypt, nunca en texto plano
	Name         string `gorm:"size:255"`
	Role         string `gorm:"size:50;not null"`
	Active       bool   `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

// Roles devuelve el conjunto de roles del usuario tal como viaja en el token.
func (u *User) Roles() []string {
	return []string{u.Role}
}
