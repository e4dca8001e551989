package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"car-dealership-api/services"
	"car-dealership-api/utils"
)

type CarHandler struct {
	cars *services.CarService
}

func NewCarHandler(cars *services.CarService) *CarHandler {
	return &CarHandler{cars: cars}
}

type CarCreateRequest struct {
	Brand      string   `json:"brand" binding:"required,min=2"`
	CarModel   string   `json:"car_model" binding:"required"`
	Year       int      `json:"year" binding:"required,gte=1900"`
	Price      float64  `json:"price" binding:"required,gte=0"`
	Color      string   `json:"color"`
	Mileage    int      `json:"mileage" binding:"omitempty,gte=0"`
	CategoryID uint     `json:"category_id" binding:"required"`
	Features   []string `json:"features"`
}

type CarUpdateRequest struct {
	Brand        *string  `json:"brand" binding:"omitempty,min=2"`
	CarModel     *string  `json:"car_model"`
	Year         *int     `json:"year" binding:"omitempty,gte=1900"`
	Price        *float64 `json:"price" binding:"omitempty,gte=0"`
	Color        *string  `json:"color"`
	Mileage      *int     `json:"mileage" binding:"omitempty,gte=0"`
	CategoryID   *uint    `json:"category_id"`
	Features     []string `json:"features"`
	Availability *bool    `json:"availability"`
}

func (h *CarHandler) Create(c *gin.Context) {
	var req CarCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	car, err := h.cars.Create(services.CarInput{
		Brand:      req.Brand,
		CarModel:   req.CarModel,
		Year:       req.Year,
		Price:      req.Price,
		Color:      req.Color,
		Mileage:    req.Mileage,
		CategoryID: req.CategoryID,
		Features:   req.Features,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusCreated, "Car created successfully", car)
}

func (h *CarHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	car, err := h.cars.GetByID(id)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Car retrieved successfully", car)
}

// List supports exact filters plus price/year/mileage ranges.
func (h *CarHandler) List(c *gin.Context) {
	filter := map[string]any{}
	if v := c.Query("brand"); v != "" {
		filter["brand"] = v
	}
	if v := c.Query("car_model"); v != "" {
		filter["car_model"] = v
	}
	if v := c.Query("color"); v != "" {
		filter["color"] = v
	}
	if v := c.Query("category_id"); v != "" {
		filter["category_id"] = v
	}
	if v := c.Query("availability"); v != "" {
		filter["availability"] = v == "true"
	}
	if r, ok := queryRange(c, "min_price", "max_price"); ok {
		filter["price"] = r
	}
	if r, ok := queryRange(c, "min_year", "max_year"); ok {
		filter["year"] = r
	}
	if r, ok := queryRange(c, "min_mileage", "max_mileage"); ok {
		filter["mileage"] = r
	}
	opts := utils.ListOptionsFromQuery(c)

	cars, total, err := h.cars.List(filter, opts)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.SendPaginated(c, http.StatusOK, "Cars retrieved successfully", cars,
		utils.NewPagination(total, opts.Page, opts.Limit))
}

func (h *CarHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	var req CarUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	car, err := h.cars.Update(id, services.CarUpdateInput{
		Brand:        req.Brand,
		CarModel:     req.CarModel,
		Year:         req.Year,
		Price:        req.Price,
		Color:        req.Color,
		Mileage:      req.Mileage,
		CategoryID:   req.CategoryID,
		Features:     req.Features,
		Availability: req.Availability,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Car updated successfully", car)
}

func (h *CarHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	car, err := h.cars.Delete(id)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Car deleted successfully", car)
}
