package booking

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"hotelbooking/internal/domain"
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
	rg.POST("/bookings", h.CheckIn)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/:id", h.Get)
	rg.PUT("/bookings/:id", h.Update)
	rg.DELETE("/bookings/:id", h.Delete)
	rg.POST("/bookings/checkout", h.CheckOut)
}

func (h *Handler) CheckIn(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, http.StatusBadRequest, validator.BindingErrors(err))
		return
	}

	b, err := h.service.CheckIn(c.Request.Context(), middleware.UserID(c), req.RoomNumber)
	if err != nil {
		h.writeError(c, err, req.RoomNumber)
		return
	}

	c.JSON(http.StatusCreated, toResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, toResponseList(bookings))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, toResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, http.StatusBadRequest, validator.BindingErrors(err))
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, middleware.UserID(c), UpdateInput{
		RoomNumber: req.RoomNumber,
		CheckOut:   req.CheckOut,
	})
	if err != nil {
		h.writeError(c, err, req.RoomNumber)
		return
	}
	c.JSON(http.StatusOK, toResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		h.writeError(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CheckOut(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, http.StatusBadRequest, validator.BindingErrors(err))
		return
	}

	b, err := h.service.CheckOut(c.Request.Context(), middleware.UserID(c), req.RoomNumber)
	if err != nil {
		h.writeError(c, err, req.RoomNumber)
		return
	}
	c.JSON(http.StatusOK, toResponse(b))
}

// writeError maps lifecycle errors onto the API surface: validation failures
// become field-scoped 400s, missing bookings a generic 404 detail that does
// not reveal whether the room exists.
func (h *Handler) writeError(c *gin.Context, err error, roomNumber string) {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		response.FieldError(c, http.StatusBadRequest, "room_number",
			fmt.Sprintf("Room %s does not exist.", roomNumber))
	case errors.Is(err, domain.ErrRoomNotAvailable):
		response.FieldError(c, http.StatusBadRequest, "room_number",
			fmt.Sprintf("Room %s is not available.", roomNumber))
	case errors.Is(err, domain.ErrPastDate):
		response.FieldError(c, http.StatusBadRequest, "check_in",
			"Check-in date cannot be in the past.")
	case errors.Is(err, domain.ErrInvalidDateRange):
		response.FieldError(c, http.StatusBadRequest, "check_out",
			"Check-out date must be after check-in date.")
	case errors.Is(err, domain.ErrBookingNotActive):
		response.FieldError(c, http.StatusBadRequest, "status",
			"Booking is not active.")
	case errors.Is(err, domain.ErrBookingNotFound):
		response.Detail(c, http.StatusNotFound, "Booking not found.")
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal server error.")
	}
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusNotFound, "Booking not found.")
		return 0, false
	}
	return id, true
}
