package auth

import (
	"errors"
	"net/http"

	"hotelbooking/internal/middleware"
	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.Me)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, http.StatusBadRequest, validator.BindingErrors(err))
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		var pwErr *PasswordError
		switch {
		case errors.As(err, &pwErr):
			response.FieldErrors(c, http.StatusBadRequest, map[string][]string{
				"password": pwErr.Problems,
			})
		case errors.Is(err, ErrDuplicateEmail):
			response.FieldError(c, http.StatusBadRequest, "email", "Email already exists.")
		case errors.Is(err, ErrDuplicateUsername):
			response.FieldError(c, http.StatusBadRequest, "username", "A user with that username already exists.")
		default:
			response.Detail(c, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	c.JSON(http.StatusCreated, UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Detail(c, http.StatusNotFound, "Not found.")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, http.StatusBadRequest, validator.BindingErrors(err))
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Detail(c, http.StatusUnauthorized, "Invalid username or password.")
			return
		}
		response.Detail(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	})
}
