package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/apiserver/middleware"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/auth"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/service"
)

type UserHandler struct {
	users  *service.UserService
	tokens *auth.TokenManager
	logger *zap.Logger
}

func NewUserHandler(users *service.UserService, tokens *auth.TokenManager, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, tokens: tokens, logger: logger}
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName"`
	UserRole string `json:"userRole" binding:"required"`
}

type partialUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"fullName"`
	UserRole *string `json:"userRole"`
}

type authRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	UserRole string `json:"userRole"`
}

func mapUser(user *model.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		UserRole: string(user.Role),
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	user, err := h.users.Create(c.Request.Context(), service.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     model.UserRole(req.UserRole),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, mapUser(user))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapUser(user))
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response := make([]userResponse, 0, len(users))
	for i := range users {
		response = append(response, mapUser(&users[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password"`
		FullName string `json:"fullName"`
		UserRole string `json:"userRole" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, service.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     model.UserRole(req.UserRole),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapUser(user))
}

func (h *UserHandler) PartialUpdate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req partialUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var role *model.UserRole
	if req.UserRole != nil {
		value := model.UserRole(*req.UserRole)
		role = &value
	}

	user, err := h.users.PartialUpdate(c.Request.Context(), id, service.PartialUserUpdate{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     role,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapUser(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Authenticate verifies credentials and returns the profile plus a
// bearer token. Failures carry a safe human-readable message.
func (h *UserHandler) Authenticate(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case service.KindUnauthorized:
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		default:
			h.logger.Error("authentication failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		}
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  mapUser(user),
		"token": token,
	})
}

// Me returns the profile behind the bearer token.
func (h *UserHandler) Me(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapUser(user))
}
