package services

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"car-dealership-api/models"
	"car-dealership-api/utils"
)

type ManagerService struct {
	db *gorm.DB
}

func NewManagerService(db *gorm.DB) *ManagerService {
	return &ManagerService{db: db}
}

type ManagerInput struct {
	FirstName  string
	LastName   string
	Phone      string
	Department string
	HireDate   *time.Time
}

type ManagerUpdateInput struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	Department *string
	HireDate   *time.Time
}

// Create adds a manager profile for the given user and promotes that
// user's role to manager.
func (s *ManagerService) Create(userID uint, in ManagerInput) (*models.Manager, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, utils.NotFound("User not found")
	}

	var existing models.Manager
	if err := s.db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return nil, utils.Conflict("Manager profile already exists for this user")
	}

	manager := models.Manager{
		UserID:     userID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Phone:      in.Phone,
		Department: in.Department,
		HireDate:   in.HireDate,
	}
	if err := s.db.Create(&manager).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Update("role", models.RoleManager).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"manager_id": manager.ID,
		"user_id":    userID,
	}).Info("manager profile created, user promoted")

	return s.GetByID(manager.ID)
}

func (s *ManagerService) GetByID(id uint) (*models.Manager, error) {
	var manager models.Manager
	if err := s.db.Preload("User", preloadUser).First(&manager, id).Error; err != nil {
		return nil, utils.NotFound("Manager not found")
	}
	return &manager, nil
}

func (s *ManagerService) GetByUserID(userID uint) (*models.Manager, error) {
	var manager models.Manager
	if err := s.db.Preload("User", preloadUser).Where("user_id = ?", userID).First(&manager).Error; err != nil {
		return nil, utils.NotFound("Manager not found")
	}
	return &manager, nil
}

func (s *ManagerService) List(filter map[string]any, opts utils.ListOptions) ([]models.Manager, int64, error) {
	var managers []models.Manager
	total, err := utils.Paginate(s.db, &models.Manager{}, filter, opts, &managers)
	if err != nil {
		return nil, 0, err
	}
	return managers, total, nil
}

func (s *ManagerService) Update(id uint, in ManagerUpdateInput) (*models.Manager, error) {
	manager, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		manager.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		manager.LastName = *in.LastName
	}
	if in.Phone != nil {
		manager.Phone = *in.Phone
	}
	if in.Department != nil {
		manager.Department = *in.Department
	}
	if in.HireDate != nil {
		manager.HireDate = in.HireDate
	}

	manager.User = nil
	if err := s.db.Save(manager).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes the profile and cascades to its linked user account.
func (s *ManagerService) Delete(id uint) (*models.Manager, error) {
	manager, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&models.Manager{}, id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.User{}, manager.UserID).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"manager_id": id,
		"user_id":    manager.UserID,
	}).Info("manager profile and linked user deleted")

	return manager, nil
}
