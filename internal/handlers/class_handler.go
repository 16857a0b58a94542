package handlers

import (
	"net/http"

	"fitpath_backend/internal/middleware"
	"fitpath_backend/internal/models"
	"fitpath_backend/internal/services"
	"fitpath_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ClassHandler struct {
	*BaseHandler
	classService services.ClassService
}

func NewClassHandler(base *BaseHandler, classService services.ClassService) *ClassHandler {
	return &ClassHandler{
		BaseHandler:  base,
		classService: classService,
	}
}

func (h *ClassHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/classes", h.ListClasses)
	r.GET("/paginated-classes", h.ListPage)

	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("/classes", h.CreateClass)
	}
}

func (h *ClassHandler) ListClasses(c *gin.Context) {
	classes, err := h.classService.ListAll(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) ListPage(c *gin.Context) {
	page, limit := ParsePagination(c, services.ForumPageSize)

	resp, err := h.classService.Page(h.GetDB(c), page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req dto.CreateClassRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	class, err := h.classService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, class)
}
