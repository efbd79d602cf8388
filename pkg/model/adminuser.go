package model

import "time"

type AdminUser struct {
	ID             int64     `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	FullName       *string   `json:"full_name" db:"full_name"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
