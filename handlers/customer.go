package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"car-dealership-api/middleware"
	"car-dealership-api/models"
	"car-dealership-api/services"
	"car-dealership-api/utils"
)

type CustomerHandler struct {
	customers *services.CustomerService
}

func NewCustomerHandler(customers *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type CustomerCreateRequest struct {
	FirstName      string          `json:"first_name" binding:"required,min=2"`
	LastName       string          `json:"last_name" binding:"required,min=2"`
	Phone          string          `json:"phone"`
	Address        *models.Address `json:"address"`
	FavoriteBrands []string        `json:"favorite_brands"`
}

type CustomerUpdateRequest struct {
	FirstName      *string         `json:"first_name" binding:"omitempty,min=2"`
	LastName       *string         `json:"last_name" binding:"omitempty,min=2"`
	Phone          *string         `json:"phone"`
	Address        *models.Address `json:"address"`
	FavoriteBrands []string        `json:"favorite_brands"`
}

// Create adds a customer profile for the authenticated user.
func (h *CustomerHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Error(c, utils.Unauthorized("Not logged in"))
		return
	}

	var req CustomerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	customer, err := h.customers.Create(user.ID, services.CustomerInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Address:        req.Address,
		FavoriteBrands: req.FavoriteBrands,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusCreated, "Customer profile created successfully", customer)
}

// Me returns the authenticated user's own customer profile.
func (h *CustomerHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Error(c, utils.Unauthorized("Not logged in"))
		return
	}
	customer, err := h.customers.GetByUserID(user.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Customer profile retrieved successfully", customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	customer, err := h.customers.GetByID(id)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Customer retrieved successfully", customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	filter := map[string]any{}
	if v := c.Query("first_name"); v != "" {
		filter["first_name"] = v
	}
	if v := c.Query("last_name"); v != "" {
		filter["last_name"] = v
	}
	if v := c.Query("phone"); v != "" {
		filter["phone"] = v
	}
	opts := utils.ListOptionsFromQuery(c)

	customers, total, err := h.customers.List(filter, opts)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.SendPaginated(c, http.StatusOK, "Customers retrieved successfully", customers,
		utils.NewPagination(total, opts.Page, opts.Limit))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	var req CustomerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	customer, err := h.customers.Update(id, services.CustomerUpdateInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Address:        req.Address,
		FavoriteBrands: req.FavoriteBrands,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Customer updated successfully", customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	customer, err := h.customers.Delete(id)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Customer deleted successfully", customer)
}
