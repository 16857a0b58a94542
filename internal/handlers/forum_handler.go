package handlers

import (
	"errors"
	"net/http"

	"fitpath_backend/internal/models"
	"fitpath_backend/internal/services"
	"fitpath_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ForumHandler struct {
	*BaseHandler
	forumService services.ForumService
}

func NewForumHandler(base *BaseHandler, forumService services.ForumService) *ForumHandler {
	return &ForumHandler{
		BaseHandler:  base,
		forumService: forumService,
	}
}

func (h *ForumHandler) RegisterRoutes(r *gin.RouterGroup) {
	forums := r.Group("/forums")
	{
		forums.GET("", h.ListPage)
		forums.GET("/latest", h.Latest)
		forums.POST("", h.CreatePost)
		forums.PATCH("/vote/:id", h.Vote)
	}
}

func (h *ForumHandler) ListPage(c *gin.Context) {
	page, limit := ParsePagination(c, services.ForumPageSize)

	resp, err := h.forumService.Page(h.GetDB(c), page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ForumHandler) Latest(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", services.ForumPageSize)

	posts, err := h.forumService.Latest(h.GetDB(c), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *ForumHandler) CreatePost(c *gin.Context) {
	var req dto.CreateForumPostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	// The author badge shows the stored role of the posting email.
	role := models.UserRoleMember
	var author models.User
	err := db.Where("email = ?", req.AuthorEmail).First(&author).Error
	if err == nil {
		role = author.Role
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.HandleServiceError(c, err)
		return
	}

	post, err := h.forumService.Create(db, role, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *ForumHandler) Vote(c *gin.Context) {
	var req dto.VoteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.forumService.Vote(h.GetDB(c), c.Param("id"), req.Direction); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded"})
}
