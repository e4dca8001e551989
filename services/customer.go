package services

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"car-dealership-api/models"
	"car-dealership-api/utils"
)

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

type CustomerInput struct {
	FirstName      string
	LastName       string
	Phone          string
	Address        *models.Address
	FavoriteBrands []string
}

type CustomerUpdateInput struct {
	FirstName      *string
	LastName       *string
	Phone          *string
	Address        *models.Address
	FavoriteBrands []string
}

// preloadUser limits the populated user to its public columns.
func preloadUser(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "email", "role")
}

// Create adds a profile for the given user; at most one per user, checked
// before insert rather than by a unique index.
func (s *CustomerService) Create(userID uint, in CustomerInput) (*models.Customer, error) {
	var existing models.Customer
	if err := s.db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return nil, utils.Conflict("Customer profile already exists for this user")
	}

	customer := models.Customer{
		UserID:         userID,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Phone:          in.Phone,
		Address:        in.Address,
		FavoriteBrands: in.FavoriteBrands,
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return s.GetByID(customer.ID)
}

func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Preload("User", preloadUser).First(&customer, id).Error; err != nil {
		return nil, utils.NotFound("Customer not found")
	}
	return &customer, nil
}

func (s *CustomerService) GetByUserID(userID uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Preload("User", preloadUser).Where("user_id = ?", userID).First(&customer).Error; err != nil {
		return nil, utils.NotFound("Customer not found")
	}
	return &customer, nil
}

func (s *CustomerService) List(filter map[string]any, opts utils.ListOptions) ([]models.Customer, int64, error) {
	var customers []models.Customer
	total, err := utils.Paginate(s.db, &models.Customer{}, filter, opts, &customers)
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (s *CustomerService) Update(id uint, in CustomerUpdateInput) (*models.Customer, error) {
	customer, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		customer.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		customer.LastName = *in.LastName
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = in.Address
	}
	if in.FavoriteBrands != nil {
		customer.FavoriteBrands = in.FavoriteBrands
	}

	customer.User = nil
	if err := s.db.Save(customer).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes the profile and cascades to its linked user account.
func (s *CustomerService) Delete(id uint) (*models.Customer, error) {
	customer, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&models.Customer{}, id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.User{}, customer.UserID).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": id,
		"user_id":     customer.UserID,
	}).Info("customer profile and linked user deleted")

	return customer, nil
}
