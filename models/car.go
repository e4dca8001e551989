package models

import "time"

type Car struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Brand        string    `json:"brand" gorm:"not null"`
	CarModel     string    `json:"car_model" gorm:"not null"`
	Year         int       `json:"year" gorm:"not null"`
	Price        float64   `json:"price" gorm:"not null"`
	Color        string    `json:"color,omitempty"`
	Mileage      int       `json:"mileage"`
	CategoryID   *uint     `json:"category_id"`
	Category     *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Features     []string  `json:"features,omitempty" gorm:"serializer:json"`
	Availability bool      `json:"availability" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
