package model

type Host struct {
	ID         int64   `json:"id" db:"id"`
	FullName   string  `json:"full_name" db:"full_name"`
	Email      string  `json:"email" db:"email"`
	Phone      *string `json:"phone" db:"phone"`
	Department *string `json:"department" db:"department"`
}
