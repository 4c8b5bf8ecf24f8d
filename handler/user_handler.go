package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Trungproe/ResVibe/dto"
	"github.com/Trungproe/ResVibe/logger"
	"github.com/Trungproe/ResVibe/middleware"
	"github.com/Trungproe/ResVibe/service"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const accessTokenTTL = 60 * time.Minute

type UserHandler struct {
	svc       service.UserService
	jwtSecret string
}

func NewUserHandler(svc service.UserService, jwtSecret string) *UserHandler {
	return &UserHandler{svc: svc, jwtSecret: jwtSecret}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine, authLimiter *middleware.RateLimiter) {
	user := r.Group("/user")

	user.POST("/register", authLimiter.Middleware(), h.Register)
	user.POST("/login", authLimiter.Middleware(), h.Login)

	auth := middleware.AuthMiddleware(h.jwtSecret)
	user.GET("/me", auth, h.Me)
	user.PUT("/me", auth, h.UpdateProfile)
	user.POST("/me/toggle-like/:songId", auth, h.ToggleLikeSong)
	user.GET("/me/liked-songs", auth, h.GetLikedSongs)

	admin := user.Group("/users", auth, middleware.AdminOnly())
	admin.GET("", h.ListUsers)
	admin.GET("/search", h.SearchUsers)
	admin.POST("/:id/promote", h.Promote)
	admin.POST("/:id/demote", h.Demote)
	admin.POST("/:id/ban", h.Ban)
	admin.POST("/:id/unban", h.Unban)
	admin.DELETE("/:id", h.DeleteUser)
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info(logger.EventGeneral, "New user registered", logger.Fields(
		"user_id", user.ID,
		"ip", c.ClientIP(),
	))
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user_id": user.ID})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.Authenticate(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		logger.Security(logger.EventLoginFailure, "Login failed", logger.Fields(
			"identifier", req.Identifier,
			"ip", c.ClientIP(),
			"reason", err.Error(),
		))
		if errors.Is(err, service.ErrAccountBanned) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	logger.Security(logger.EventLoginSuccess, "User logged in", logger.Fields(
		"user_id", user.ID,
		"ip", c.ClientIP(),
	))
	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
	})
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.svc.GetByID(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.UpdateProfile(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ToggleLikeSong(c *gin.Context) {
	liked, err := h.svc.ToggleLikeSong(c.Request.Context(), c.GetString("user_id"), c.Param("songId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likedSongs": liked})
}

func (h *UserHandler) GetLikedSongs(c *gin.Context) {
	songs, err := h.svc.GetLikedSongs(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": songs})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	users, err := h.svc.SearchUsers(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) Promote(c *gin.Context) {
	h.setRole(c, "admin", "User promoted to admin")
}

func (h *UserHandler) Demote(c *gin.Context) {
	h.setRole(c, "user", "User demoted to user")
}

func (h *UserHandler) setRole(c *gin.Context, role, message string) {
	id := c.Param("id")
	ok, err := h.svc.SetRole(c.Request.Context(), id, role)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	logger.Security(logger.EventAdminActivity, message, logger.Fields(
		"target_user_id", id,
		"admin_id", c.GetString("user_id"),
	))
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *UserHandler) Ban(c *gin.Context) {
	h.setBanned(c, true, "User banned")
}

func (h *UserHandler) Unban(c *gin.Context) {
	h.setBanned(c, false, "User unbanned")
}

func (h *UserHandler) setBanned(c *gin.Context, banned bool, message string) {
	id := c.Param("id")
	ok, err := h.svc.SetBanned(c.Request.Context(), id, banned)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	logger.Security(logger.EventAdminActivity, message, logger.Fields(
		"target_user_id", id,
		"admin_id", c.GetString("user_id"),
	))
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.svc.DeleteUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	logger.Security(logger.EventAdminActivity, "User deleted", logger.Fields(
		"target_user_id", id,
		"admin_id", c.GetString("user_id"),
	))
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
