package handlers

import (
	"net/http"

	"fitpath_backend/internal/middleware"
	"fitpath_backend/internal/models"
	"fitpath_backend/internal/services"
	"fitpath_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/users", h.CreateUser)
	r.GET("/users/role/:email", h.GetRole)

	r.GET("/trainers", h.ListTrainers)
	r.GET("/trainers/:id", h.GetTrainer)
	r.GET("/trainers/email/:email", h.GetTrainerByEmail)

	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.PATCH("/trainers/demote/:email", h.DemoteTrainer)
	}
}

// CreateUser is idempotent by email: a known email returns the stored record.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, created, err := h.userService.CreateOrGet(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListAll(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetRole answers {"role": null} for unknown emails rather than a 404, so the
// frontend can branch without error handling.
func (h *UserHandler) GetRole(c *gin.Context) {
	resp, err := h.userService.GetRoleByEmail(h.GetDB(c), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.userService.ListTrainers(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trainers)
}

func (h *UserHandler) GetTrainer(c *gin.Context) {
	trainer, err := h.userService.GetTrainerByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trainer)
}

func (h *UserHandler) GetTrainerByEmail(c *gin.Context) {
	trainer, err := h.userService.GetTrainerByEmail(h.GetDB(c), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trainer)
}

func (h *UserHandler) DemoteTrainer(c *gin.Context) {
	if err := h.userService.DemoteTrainer(h.GetDB(c), c.Param("email")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trainer demoted to member"})
}
