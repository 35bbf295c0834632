package catalog

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roombook/internal/pkg/response"
	"roombook/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/rooms/:id", h.GetRoom)
	rg.POST("/rooms", h.CreateRoom)
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		log.Printf("error fetching rooms: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		default:
			log.Printf("error fetching room %d: %v", id, err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room fields", fields)
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidRoomType:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown room type")
		default:
			log.Printf("error creating room: %v", err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}
	c.JSON(http.StatusCreated, room)
}
