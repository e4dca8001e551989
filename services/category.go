package services

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"car-dealership-api/models"
	"car-dealership-api/utils"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

type CategoryInput struct {
	Name        string
	Description string
}

type CategoryUpdateInput struct {
	Name        *string
	Description *string
}

func (s *CategoryService) Create(in CategoryInput) (*models.Category, error) {
	var existing models.Category
	if err := s.db.Where("name = ?", in.Name).First(&existing).Error; err == nil {
		return nil, utils.Conflict("Category with this name already exists")
	}

	category := models.Category{Name: in.Name, Description: in.Description}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, utils.NotFound("Category not found")
	}
	return &category, nil
}

func (s *CategoryService) List(filter map[string]any, opts utils.ListOptions) ([]models.Category, int64, error) {
	var categories []models.Category
	total, err := utils.Paginate(s.db, &models.Category{}, filter, opts, &categories)
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (s *CategoryService) Update(id uint, in CategoryUpdateInput) (*models.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != category.Name {
		var existing models.Category
		if err := s.db.Where("name = ?", *in.Name).First(&existing).Error; err == nil {
			return nil, utils.Conflict("Category with this name already exists")
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}

	if err := s.db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category and unsets the reference on dependent cars;
// the cars themselves survive.
func (s *CategoryService) Delete(id uint) (*models.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(category).Error; err != nil {
		return nil, err
	}

	result := s.db.Model(&models.Car{}).Where("category_id = ?", id).Update("category_id", nil)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		logrus.WithFields(logrus.Fields{
			"category_id":   id,
			"cars_affected": result.RowsAffected,
		}).Info("category deleted, car references cleared")
	}

	return category, nil
}
