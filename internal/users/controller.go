package users

import (
	"net/http"

	"cinepass/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetProfile returns the authenticated user's profile
func (c *Controller) GetProfile(ctx *gin.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "user not found in context", nil)
		return
	}

	profile, err := c.service.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(ctx, http.StatusNotFound, "User not found", nil)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to fetch profile", nil)
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Profile fetched successfully", profile)
}

// ListUsers returns all users (admin)
func (c *Controller) ListUsers(ctx *gin.Context) {
	result, err := c.service.ListUsers(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch users", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Users fetched successfully", result)
}

// GetUser returns a single user by id (admin)
func (c *Controller) GetUser(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	user, err := c.service.GetUser(ctx.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(ctx, http.StatusNotFound, "User not found", nil)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to fetch user", nil)
		}
		return
	}

	response.Success(ctx, http.StatusOK, "User fetched successfully", user)
}

// UpdateUser updates profile fields of a user (admin)
func (c *Controller) UpdateUser(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := c.service.UpdateUser(ctx.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(ctx, http.StatusNotFound, "User not found", nil)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to update user", nil)
		}
		return
	}

	response.Success(ctx, http.StatusOK, "User updated successfully", user)
}

// PromoteToAdmin grants the admin role to a user (admin)
func (c *Controller) PromoteToAdmin(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	user, err := c.service.PromoteToAdmin(ctx.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(ctx, http.StatusNotFound, "User not found", nil)
		case ErrAlreadyAdmin:
			response.Error(ctx, http.StatusConflict, "User is already an admin", nil)
		case ErrRoleNotFound:
			response.Error(ctx, http.StatusInternalServerError, "Admin role is not seeded", nil)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to promote user", nil)
		}
		return
	}

	response.Success(ctx, http.StatusOK, "User promoted to admin successfully", user)
}

// DeleteUser removes a user (admin)
func (c *Controller) DeleteUser(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	if err := c.service.DeleteUser(ctx.Request.Context(), id); err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(ctx, http.StatusNotFound, "User not found", nil)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to delete user", nil)
		}
		return
	}

	response.Success(ctx, http.StatusOK, "User deleted successfully", nil)
}

// contextUserID extracts the authenticated user id set by the JWT middleware
func contextUserID(ctx *gin.Context) (uuid.UUID, bool) {
	value, exists := ctx.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	raw, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
