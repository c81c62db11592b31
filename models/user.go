package models

import "time"

type Role string

const (
	RoleCustomer Role = "Customer"
	RoleManager  Role = "Manager"
	RoleAdmin    Role = "Admin"
)

// ParseRole maps a request string to a Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleManager, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

type User struct {
	Username     string    `gorm:"primaryKey" json:"username"`
	Name         string    `gorm:"not null" json:"name"`
	Surname      string    `gorm:"not null" json:"surname"`
	Role         Role      `gorm:"type:VARCHAR(20);not null" json:"role"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Address      string    `json:"address"`
	Birthdate    string    `json:"birthdate"` // YYYY-MM-DD
	CreatedAt    time.Time `json:"-"`
}
