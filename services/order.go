package services

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"car-dealership-api/models"
	"car-dealership-api/utils"
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

type OrderInput struct {
	CarID         uint
	ManagerID     *uint
	PaymentMethod models.PaymentMethod
}

type OrderUpdateInput struct {
	ManagerID *uint
	Status    *models.OrderStatus
}

// Create places an order for the customer profile linked to the caller.
// The car price is snapshotted onto the order and the car is marked
// unavailable with a separate non-validating update. The read-check-flip
// sequence is not guarded; two concurrent orders on one car can both pass
// the availability check.
func (s *OrderService) Create(userID uint, in OrderInput) (*models.Order, error) {
	var customer models.Customer
	if err := s.db.Where("user_id = ?", userID).First(&customer).Error; err != nil {
		return nil, utils.NotFound("Customer profile not found")
	}

	var car models.Car
	if err := s.db.First(&car, in.CarID).Error; err != nil {
		return nil, utils.NotFound("Car not found")
	}
	if !car.Availability {
		return nil, utils.BadRequest("Car is not available")
	}

	if in.ManagerID != nil {
		var manager models.Manager
		if err := s.db.First(&manager, *in.ManagerID).Error; err != nil {
			return nil, utils.NotFound("Manager not found")
		}
	}

	order := models.Order{
		CustomerID:    customer.ID,
		CarID:         car.ID,
		ManagerID:     in.ManagerID,
		Price:         car.Price,
		PaymentMethod: in.PaymentMethod,
		Status:        models.OrderPending,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Car{}).Where("id = ?", car.ID).Update("availability", false).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"customer_id": customer.ID,
		"car_id":      car.ID,
		"price":       order.Price,
	}).Info("order created, car marked unavailable")

	return s.GetByID(order.ID)
}

func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.
		Preload("Customer").
		Preload("Customer.User", preloadUser).
		Preload("Car").
		Preload("Manager").
		First(&order, id).Error
	if err != nil {
		return nil, utils.NotFound("Order not found")
	}
	return &order, nil
}

// ListForUser returns the orders of the caller's customer profile.
func (s *OrderService) ListForUser(userID uint, filter map[string]any, opts utils.ListOptions) ([]models.Order, int64, error) {
	var customer models.Customer
	if err := s.db.Where("user_id = ?", userID).First(&customer).Error; err != nil {
		return nil, 0, utils.NotFound("Customer profile not found")
	}

	if filter == nil {
		filter = map[string]any{}
	}
	filter["customer_id"] = customer.ID

	var orders []models.Order
	total, err := utils.Paginate(s.db, &models.Order{}, filter, opts, &orders)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (s *OrderService) Update(id uint, in OrderUpdateInput) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, utils.NotFound("Order not found")
	}

	if in.ManagerID != nil {
		var manager models.Manager
		if err := s.db.First(&manager, *in.ManagerID).Error; err != nil {
			return nil, utils.NotFound("Manager not found")
		}
		order.ManagerID = in.ManagerID
	}
	if in.Status != nil {
		order.Status = *in.Status
	}

	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes the order and restores the referenced car's availability,
// whatever else changed on the car since the order was placed.
func (s *OrderService) Delete(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, utils.NotFound("Order not found")
	}

	if err := s.db.Delete(&models.Order{}, id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Car{}).Where("id = ?", order.CarID).Update("availability", true).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": id,
		"car_id":   order.CarID,
	}).Info("order deleted, car availability restored")

	return &order, nil
}
