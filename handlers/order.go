package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"car-dealership-api/middleware"
	"car-dealership-api/models"
	"car-dealership-api/services"
	"car-dealership-api/utils"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type OrderCreateRequest struct {
	CarID         uint                 `json:"car_id" binding:"required"`
	ManagerID     *uint                `json:"manager_id"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required,oneof=cash credit finance"`
}

type OrderUpdateRequest struct {
	ManagerID *uint               `json:"manager_id"`
	Status    *models.OrderStatus `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
}

// Create places an order for the caller's customer profile.
func (h *OrderHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Error(c, utils.Unauthorized("Not logged in"))
		return
	}

	var req OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	order, err := h.orders.Create(user.ID, services.OrderInput{
		CarID:         req.CarID,
		ManagerID:     req.ManagerID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusCreated, "Order created successfully", order)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	order, err := h.orders.GetByID(id)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Order retrieved successfully", order)
}

// List returns the caller's own orders.
func (h *OrderHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Error(c, utils.Unauthorized("Not logged in"))
		return
	}

	filter := map[string]any{}
	if v := c.Query("status"); v != "" {
		filter["status"] = v
	}
	if v := c.Query("car_id"); v != "" {
		filter["car_id"] = v
	}
	opts := utils.ListOptionsFromQuery(c)

	orders, total, err := h.orders.ListForUser(user.ID, filter, opts)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.SendPaginated(c, http.StatusOK, "Orders retrieved successfully", orders,
		utils.NewPagination(total, opts.Page, opts.Limit))
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	var req OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	order, err := h.orders.Update(id, services.OrderUpdateInput{
		ManagerID: req.ManagerID,
		Status:    req.Status,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Order updated successfully", order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	order, err := h.orders.Delete(id)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Order deleted successfully", order)
}
