package services

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"car-dealership-api/models"
	"car-dealership-api/utils"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     models.Role
}

// Register creates a user with a bcrypt-hashed password. Email and username
// duplicates share one message.
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ? OR username = ?", in.Email, in.Username).First(&existing).Error; err == nil {
		return nil, utils.Conflict("Email or username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user := models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user registered")

	return &user, nil
}

// Login verifies credentials. Unknown email and wrong password share the
// same message so accounts cannot be enumerated.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, utils.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, utils.Unauthorized("Invalid email or password")
	}
	return &user, nil
}
