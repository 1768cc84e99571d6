package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	OrganizationID uint           `json:"organization_id" gorm:"not null;index"`
	Username       string         `json:"username" gorm:"unique;not null"`
	Email          string         `json:"email"`
	Name           string         `json:"name" gorm:"not null"`
	Role           string         `json:"role" gorm:"not null;default:'operator'"`
	PasswordHash   string         `json:"-" gorm:"not null"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// Actor returns the audit identity for mutations performed by this user.
func (u *User) Actor() Actor {
	return Actor{UserID: u.ID, Name: u.Name, Role: u.Role}
}
