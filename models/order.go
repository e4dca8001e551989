package models

import "time"

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "cash"
	PaymentCredit  PaymentMethod = "credit"
	PaymentFinance PaymentMethod = "finance"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	CustomerID    uint          `json:"customer_id" gorm:"not null"`
	Customer      *Customer     `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CarID         uint          `json:"car_id" gorm:"not null"`
	Car           *Car          `json:"car,omitempty" gorm:"foreignKey:CarID"`
	ManagerID     *uint         `json:"manager_id"`
	Manager       *Manager      `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
	Price         float64       `json:"price" gorm:"not null"` // snapshot of the car price at order time
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"not null"`
	Status        OrderStatus   `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
