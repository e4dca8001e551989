package services

import (
	"gorm.io/gorm"

	"car-dealership-api/models"
	"car-dealership-api/utils"
)

type CarService struct {
	db *gorm.DB
}

func NewCarService(db *gorm.DB) *CarService {
	return &CarService{db: db}
}

type CarInput struct {
	Brand      string
	CarModel   string
	Year       int
	Price      float64
	Color      string
	Mileage    int
	CategoryID uint
	Features   []string
}

type CarUpdateInput struct {
	Brand        *string
	CarModel     *string
	Year         *int
	Price        *float64
	Color        *string
	Mileage      *int
	CategoryID   *uint
	Features     []string
	Availability *bool
}

func (s *CarService) Create(in CarInput) (*models.Car, error) {
	var category models.Category
	if err := s.db.First(&category, in.CategoryID).Error; err != nil {
		return nil, utils.NotFound("Category not found")
	}

	car := models.Car{
		Brand:        in.Brand,
		CarModel:     in.CarModel,
		Year:         in.Year,
		Price:        in.Price,
		Color:        in.Color,
		Mileage:      in.Mileage,
		CategoryID:   &in.CategoryID,
		Features:     in.Features,
		Availability: true,
	}
	if err := s.db.Create(&car).Error; err != nil {
		return nil, err
	}
	car.Category = &category
	return &car, nil
}

func (s *CarService) GetByID(id uint) (*models.Car, error) {
	var car models.Car
	if err := s.db.Preload("Category").First(&car, id).Error; err != nil {
		return nil, utils.NotFound("Car not found")
	}
	return &car, nil
}

func (s *CarService) List(filter map[string]any, opts utils.ListOptions) ([]models.Car, int64, error) {
	var cars []models.Car
	total, err := utils.Paginate(s.db, &models.Car{}, filter, opts, &cars)
	if err != nil {
		return nil, 0, err
	}
	return cars, total, nil
}

func (s *CarService) Update(id uint, in CarUpdateInput) (*models.Car, error) {
	car, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, *in.CategoryID).Error; err != nil {
			return nil, utils.NotFound("Category not found")
		}
		car.CategoryID = in.CategoryID
	}
	if in.Brand != nil {
		car.Brand = *in.Brand
	}
	if in.CarModel != nil {
		car.CarModel = *in.CarModel
	}
	if in.Year != nil {
		car.Year = *in.Year
	}
	if in.Price != nil {
		car.Price = *in.Price
	}
	if in.Color != nil {
		car.Color = *in.Color
	}
	if in.Mileage != nil {
		car.Mileage = *in.Mileage
	}
	if in.Features != nil {
		car.Features = in.Features
	}
	if in.Availability != nil {
		car.Availability = *in.Availability
	}

	// Save without the preloaded association so the category row is not
	// touched by a car update.
	car.Category = nil
	if err := s.db.Save(car).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *CarService) Delete(id uint) (*models.Car, error) {
	car, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(car).Error; err != nil {
		return nil, err
	}
	return car, nil
}
