package domain

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" gorm:"size:150;uniqueIndex" validate:"required"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-"`
	IsSuperuser  bool      `json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
