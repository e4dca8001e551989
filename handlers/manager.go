package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"car-dealership-api/middleware"
	"car-dealership-api/services"
	"car-dealership-api/utils"
)

type ManagerHandler struct {
	managers *services.ManagerService
}

func NewManagerHandler(managers *services.ManagerService) *ManagerHandler {
	return &ManagerHandler{managers: managers}
}

type ManagerCreateRequest struct {
	UserID     *uint      `json:"user_id"`
	FirstName  string     `json:"first_name" binding:"required,min=2"`
	LastName   string     `json:"last_name" binding:"required,min=2"`
	Phone      string     `json:"phone" binding:"required,min=10"`
	Department string     `json:"department"`
	HireDate   *time.Time `json:"hire_date"`
}

type ManagerUpdateRequest struct {
	FirstName  *string    `json:"first_name" binding:"omitempty,min=2"`
	LastName   *string    `json:"last_name" binding:"omitempty,min=2"`
	Phone      *string    `json:"phone" binding:"omitempty,min=10"`
	Department *string    `json:"department"`
	HireDate   *time.Time `json:"hire_date"`
}

// Create adds a manager profile. The target user defaults to the caller
// when user_id is not supplied.
func (h *ManagerHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Error(c, utils.Unauthorized("Not logged in"))
		return
	}

	var req ManagerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	targetUser := user.ID
	if req.UserID != nil {
		targetUser = *req.UserID
	}

	manager, err := h.managers.Create(targetUser, services.ManagerInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Department: req.Department,
		HireDate:   req.HireDate,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusCreated, "Manager profile created successfully", manager)
}

// Me returns the authenticated user's own manager profile.
func (h *ManagerHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Error(c, utils.Unauthorized("Not logged in"))
		return
	}
	manager, err := h.managers.GetByUserID(user.ID)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Manager profile retrieved successfully", manager)
}

func (h *ManagerHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	manager, err := h.managers.GetByID(id)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Manager retrieved successfully", manager)
}

func (h *ManagerHandler) List(c *gin.Context) {
	filter := map[string]any{}
	if v := c.Query("department"); v != "" {
		filter["department"] = v
	}
	if v := c.Query("first_name"); v != "" {
		filter["first_name"] = v
	}
	if v := c.Query("last_name"); v != "" {
		filter["last_name"] = v
	}
	opts := utils.ListOptionsFromQuery(c)

	managers, total, err := h.managers.List(filter, opts)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.SendPaginated(c, http.StatusOK, "Managers retrieved successfully", managers,
		utils.NewPagination(total, opts.Page, opts.Limit))
}

func (h *ManagerHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	var req ManagerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	manager, err := h.managers.Update(id, services.ManagerUpdateInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Department: req.Department,
		HireDate:   req.HireDate,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Manager updated successfully", manager)
}

func (h *ManagerHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	manager, err := h.managers.Delete(id)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Manager deleted successfully", manager)
}
