package handlers

import (
	"fmt"
	"strconv"

	"fitpath_backend/internal/logger"
	"fitpath_backend/internal/middleware"
	"fitpath_backend/internal/models"
	"fitpath_backend/internal/validator"
	"fitpath_backend/pkg/apperrors"
	"fitpath_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB extracts the *gorm.DB (pool or transaction) placed by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context", "key", dbKey)
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context is not *gorm.DB", "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}

	return db
}

func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if appErr, ok := apperrors.AsAppError(err); ok {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// RequireOwnerOrAdmin allows the request through only when the :email path
// parameter belongs to the authenticated user, or the caller's STORED role is
// admin. Token claims are not consulted for the admin escape hatch.
func (h *BaseHandler) RequireOwnerOrAdmin(c *gin.Context, email string) bool {
	callerEmail := c.GetString(middleware.ContextUserEmail)
	if callerEmail != "" && callerEmail == email {
		return true
	}

	var caller models.User
	err := h.GetDB(c).Where("email = ?", callerEmail).First(&caller).Error
	if err == nil && caller.Role == models.UserRoleAdmin {
		return true
	}

	logger.CtxWarn(c.Request.Context(), "Forbidden resource access",
		"caller", callerEmail,
		"resource", email,
		"path", c.Request.URL.Path,
	)
	apperrors.HandleError(c, apperrors.NewForbiddenError("Forbidden access"))
	return false
}

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func ParsePagination(c *gin.Context, defaultSize int) (page int, limit int) {
	const maxPageSize = 50

	page = ParseQueryInt(c, "page", 1)
	if page <= 0 {
		page = 1
	}

	limit = ParseQueryInt(c, "limit", defaultSize)
	if limit <= 0 {
		limit = defaultSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return page, limit
}
