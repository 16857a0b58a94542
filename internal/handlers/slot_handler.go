package handlers

import (
	"net/http"

	"fitpath_backend/internal/middleware"
	"fitpath_backend/internal/models"
	"fitpath_backend/internal/services"
	"fitpath_backend/internal/services/dto"
	"fitpath_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	*BaseHandler
	slotService services.SlotService
}

func NewSlotHandler(base *BaseHandler, slotService services.SlotService) *SlotHandler {
	return &SlotHandler{
		BaseHandler: base,
		slotService: slotService,
	}
}

func (h *SlotHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/available-slots", h.ListAvailable)
	r.GET("/slots/:id", h.GetSlot)
	r.GET("/slots/trainer/:email", h.ListByTrainer)
	r.PATCH("/slots/book/:id", h.IncrementBookings)

	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/book-slot", h.Book)
	}

	trainer := r.Group("/")
	trainer.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleTrainer))
	{
		trainer.POST("/slots", h.CreateSlot)
		trainer.GET("/slots", h.MySlots)
		trainer.DELETE("/slots/:id", h.DeleteSlot)
	}
}

func (h *SlotHandler) CreateSlot(c *gin.Context) {
	var req dto.CreateSlotRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	trainerID := c.GetString(middleware.ContextUserID)
	slot, err := h.slotService.Create(h.GetDB(c), trainerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

func (h *SlotHandler) GetSlot(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid slot id"))
		return
	}

	slot, err := h.slotService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}

func (h *SlotHandler) ListAvailable(c *gin.Context) {
	slots, err := h.slotService.ListAvailable(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

// MySlots lists the caller's own slots. A trainer may pass ?email= but the
// token email wins when the query is absent.
func (h *SlotHandler) MySlots(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = middleware.GetUserEmail(c)
	}
	if email == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Email is required"))
		return
	}

	slots, err := h.slotService.ListByTrainerEmail(h.GetDB(c), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *SlotHandler) ListByTrainer(c *gin.Context) {
	slots, err := h.slotService.ListByTrainerEmail(h.GetDB(c), c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *SlotHandler) Book(c *gin.Context) {
	var req dto.BookSlotRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.slotService.Book(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *SlotHandler) IncrementBookings(c *gin.Context) {
	if err := h.slotService.IncrementBookings(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking recorded"})
}

func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	if err := h.slotService.Delete(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted"})
}
