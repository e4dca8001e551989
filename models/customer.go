package models

import "time"

// Address is stored inline on the customer row as JSON
type Address struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

// Customer is the dealership-facing profile of a User. One profile per user,
// enforced by a pre-create check rather than a unique index.
type Customer struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	User           *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	FirstName      string    `json:"first_name" gorm:"not null"`
	LastName       string    `json:"last_name" gorm:"not null"`
	Phone          string    `json:"phone,omitempty"`
	Address        *Address  `json:"address,omitempty" gorm:"serializer:json"`
	FavoriteBrands []string  `json:"favorite_brands,omitempty" gorm:"serializer:json"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
