package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser      = "USER"
	RoleSuperuser = "SUPER-ADMIN"
)

type User struct {
	gorm.Model
	Username  string    `gorm:"unique;not null" json:"username"`
	FirstName string    `gorm:"default:''" json:"firstName"`
	LastName  string    `gorm:"default:''" json:"lastName"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Role      string    `gorm:"default:'USER'" json:"role"` // USER or SUPER-ADMIN
	Password  string    `gorm:"not null" json:"-"`
	LastLogin time.Time `gorm:"default:NULL" json:"lastLogin"`
}

// IsSuperuser reports whether the user holds the elevated admin role.
func (u *User) IsSuperuser() bool {
	return u.Role == RoleSuperuser
}
