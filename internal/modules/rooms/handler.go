package rooms

import (
	"errors"
	"net/http"
	"strconv"

	"hotelbooking/internal/domain"
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
	rg.GET("/rooms", h.List)
	rg.POST("/rooms", h.Create)
	rg.GET("/rooms/available", h.ListAvailable)
	rg.GET("/rooms/:id", h.Get)
	rg.PUT("/rooms/:id", h.Update)
	rg.DELETE("/rooms/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponseList(list))
}

func (h *Handler) ListAvailable(c *gin.Context) {
	list, err := h.service.ListAvailable(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponseList(list))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}
	room, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(room))
}

func (h *Handler) Create(c *gin.Context) {
	req, ok := bindRoom(c)
	if !ok {
		return
	}

	room, err := h.service.Create(c.Request.Context(), req.Number, *req.Price, availableOrDefault(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(room))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}
	req, ok := bindRoom(c)
	if !ok {
		return
	}

	room, err := h.service.Update(c.Request.Context(), id, req.Number, *req.Price, availableOrDefault(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(room))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindRoom(c *gin.Context) (*RoomRequest, bool) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, http.StatusBadRequest, validator.BindingErrors(err))
		return nil, false
	}
	return &req, true
}

func availableOrDefault(req *RoomRequest) bool {
	if req.IsAvailable == nil {
		return true
	}
	return *req.IsAvailable
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		response.Detail(c, http.StatusNotFound, "Not found.")
	case errors.Is(err, domain.ErrRoomNumberTaken):
		response.FieldError(c, http.StatusBadRequest, "number", "Room with this number already exists.")
	case errors.Is(err, ErrNegativePrice):
		response.FieldError(c, http.StatusBadRequest, "price", "Ensure this value is greater than or equal to 0.")
	case errors.Is(err, domain.ErrRoomOccupied):
		response.Detail(c, http.StatusConflict, "Room has an active booking.")
	default:
		response.Detail(c, http.StatusInternalServerError, "Internal server error.")
	}
}

func roomID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusNotFound, "Not found.")
		return 0, false
	}
	return id, true
}
