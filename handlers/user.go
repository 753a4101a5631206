package handlers

import (
	"net/http"

	"clinicportal/models"
	"clinicportal/services/user"
	"clinicportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves user listing, creation and the admin operations.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler returns a handler bound to the user service.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// GetUsersHandler handles GET /users.
func (h *UserHandler) GetUsersHandler(c *gin.Context) {
	users, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list users", err.Error())
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// CreateUserHandler handles POST /users.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var usr models.User
	if err := c.ShouldBindJSON(&usr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Service.Create(c.Request.Context(), &usr)
	if err != nil {
		utils.GetLogger().Error("Failed to create user", zap.String("email", usr.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

// PromoteUserHandler handles PUT /users/admin/:id.
func (h *UserHandler) PromoteUserHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Promote(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Failed to promote user", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to promote user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// DemoteUserHandler handles DELETE /users/admin/:id.
func (h *UserHandler) DemoteUserHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Demote(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Failed to remove user", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to remove user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// CheckAdminHandler handles GET /users/admin/:email. A missing user answers
// false, never an error.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Service.IsAdmin(c.Request.Context(), email)
	if err != nil {
		utils.GetLogger().Error("Failed role lookup", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed role lookup", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}
