package handlers

import (
	"net/http"

	"fitpath_backend/internal/middleware"
	"fitpath_backend/internal/models"
	"fitpath_backend/internal/services"
	"fitpath_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/applied-trainers", h.Submit)
		authed.GET("/my-applications/:email", h.MyApplications)
	}

	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/applied-trainers", h.ListPending)
		admin.POST("/confirm-trainer/:id", h.Confirm)
		admin.DELETE("/reject-trainer/:id", h.Reject)
	}
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Submit(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) ListPending(c *gin.Context) {
	apps, err := h.applicationService.ListPending(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Confirm(c *gin.Context) {
	user, err := h.applicationService.Confirm(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Trainer confirmed",
		"user":    user,
	})
}

func (h *ApplicationHandler) Reject(c *gin.Context) {
	var req dto.RejectApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.applicationService.Reject(h.GetDB(c), c.Param("id"), req.Feedback); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application rejected"})
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	email := c.Param("email")
	if !h.RequireOwnerOrAdmin(c, email) {
		return
	}

	items, err := h.applicationService.MyApplications(h.GetDB(c), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
