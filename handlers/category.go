package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"car-dealership-api/services"
	"car-dealership-api/utils"
)

type CategoryHandler struct {
	categories *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type CategoryCreateRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Description string `json:"description"`
}

type CategoryUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2"`
	Description *string `json:"description"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	category, err := h.categories.Create(services.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusCreated, "Category created successfully", category)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	category, err := h.categories.GetByID(id)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Category retrieved successfully", category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	filter := map[string]any{}
	if v := c.Query("name"); v != "" {
		filter["name"] = v
	}
	opts := utils.ListOptionsFromQuery(c)

	categories, total, err := h.categories.List(filter, opts)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.SendPaginated(c, http.StatusOK, "Categories retrieved successfully", categories,
		utils.NewPagination(total, opts.Page, opts.Limit))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	category, err := h.categories.Update(id, services.CategoryUpdateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Category updated successfully", category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.Error(c, err)
		return
	}
	category, err := h.categories.Delete(id)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Send(c, http.StatusOK, "Category deleted successfully", category)
}
