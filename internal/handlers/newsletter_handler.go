package handlers

import (
	"net/http"

	"fitpath_backend/internal/middleware"
	"fitpath_backend/internal/models"
	"fitpath_backend/internal/services"
	"fitpath_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	*BaseHandler
	newsletterService services.NewsletterService
}

func NewNewsletterHandler(base *BaseHandler, newsletterService services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		BaseHandler:       base,
		newsletterService: newsletterService,
	}
}

func (h *NewsletterHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/newsletter-subscribe", h.Subscribe)

	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/newsletter-subscribers", h.ListSubscribers)
	}
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.newsletterService.Subscribe(h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed successfully"})
}

func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	subs, err := h.newsletterService.ListSubscribers(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subs)
}
