package model

import "time"

type Visitor struct {
	ID        int64     `json:"id" db:"id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     *string   `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	IDNumber  *string   `json:"id_number" db:"id_number"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
