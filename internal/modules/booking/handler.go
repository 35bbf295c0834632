package booking

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roombook/internal/domain"
	"roombook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings", h.CreateBooking)
	rg.PUT("/bookings/:id", h.UpdateBooking)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
	rg.PUT("/bookings/:id/status", h.ChangeStatus)
	rg.GET("/bookings/:id/history", h.GetHistory)
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return 0, false
	}
	return id, true
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		log.Printf("error fetching bookings: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			log.Printf("error fetching booking %d: %v", id, err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrRoomNotFound:
			response.Error(c, http.StatusBadRequest, "ROOM_NOT_FOUND", "Room not found")
		default:
			log.Printf("error creating booking: %v", err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdateBooking(c.Request.Context(), id, req); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			log.Printf("error updating booking %d: %v", id, err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			log.Printf("error deleting booking %d: %v", id, err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ChangeStatus(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	status := domain.BookingStatus(*req.Status)
	if !status.Valid() {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status value")
		return
	}

	_, err := h.service.ChangeStatus(c.Request.Context(), id, domain.StatusChange{
		NewStatus:       status,
		ApprovedBy:      req.ApprovedBy,
		RejectionReason: req.RejectionReason,
		Notes:           req.Notes,
		ChangedBy:       req.ChangedBy,
	})
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			log.Printf("error updating booking status %d: %v", id, err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetHistory(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	history, err := h.service.History(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			log.Printf("error fetching booking history %d: %v", id, err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, history)
}
