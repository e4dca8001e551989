package models

import "time"

type Manager struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"index;not null"`
	User       *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	FirstName  string     `json:"first_name" gorm:"not null"`
	LastName   string     `json:"last_name" gorm:"not null"`
	Phone      string     `json:"phone" gorm:"not null"`
	Department string     `json:"department,omitempty"`
	HireDate   *time.Time `json:"hire_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
