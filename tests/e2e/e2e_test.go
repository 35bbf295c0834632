package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roombook/internal/database"
	"roombook/internal/middleware"
	"roombook/internal/modules/booking"
	"roombook/internal/modules/catalog"
	"roombook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomBody struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	Type        int    `json:"type"`
	IsAvailable bool   `json:"isAvailable"`
}

type bookingBody struct {
	ID              int64      `json:"id"`
	RoomID          int64      `json:"roomId"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         time.Time  `json:"endTime"`
	BookedBy        string     `json:"bookedBy"`
	Status          int        `json:"status"`
	ApprovedBy      string     `json:"approvedBy"`
	RejectionReason string     `json:"rejectionReason"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}

type historyBody struct {
	ID             int64     `json:"id"`
	BookingID      int64     `json:"bookingId"`
	PreviousStatus int       `json:"previousStatus"`
	NewStatus      int       `json:"newStatus"`
	Notes          string    `json:"notes"`
	ChangedBy      string    `json:"changedBy"`
	ChangedAt      time.Time `json:"changedAt"`
}

func setupRouter(t *testing.T) *gin.Engine {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))

	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	catalogHandler := catalog.NewHandler(catalog.NewService(roomRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, roomRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	catalogHandler.RegisterRoutes(api)
	bookingHandler.RegisterRoutes(api)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createRoom(t *testing.T, r *gin.Engine, name string, capacity int) roomBody {
	w := doJSON(t, r, http.MethodPost, "/api/rooms", gin.H{
		"name":     name,
		"location": "Floor 1",
		"capacity": capacity,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[roomBody](t, w)
}

func createBooking(t *testing.T, r *gin.Engine, roomID int64, title, bookedBy string) bookingBody {
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"roomId":    roomID,
		"title":     title,
		"startTime": start,
		"endTime":   start.Add(time.Hour),
		"bookedBy":  bookedBy,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[bookingBody](t, w)
}

func TestRoomCatalog(t *testing.T) {
	r := setupRouter(t)

	room := createRoom(t, r, "A", 10)
	assert.NotZero(t, room.ID)
	assert.Equal(t, 1, room.Type) // MeetingRoom default
	assert.True(t, room.IsAvailable)

	w := doJSON(t, r, http.MethodGet, "/api/rooms", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	rooms := decode[[]roomBody](t, w)
	assert.Len(t, rooms, 1)

	w = doJSON(t, r, http.MethodGet, "/api/rooms/999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBooking_UnknownRoom(t *testing.T) {
	r := setupRouter(t)

	start := time.Now().UTC()
	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"roomId":    999999,
		"title":     "Sync",
		"startTime": start,
		"endTime":   start.Add(time.Hour),
		"bookedBy":  "Bob",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingRejectionFlow(t *testing.T) {
	r := setupRouter(t)

	room := createRoom(t, r, "A", 10)
	b := createBooking(t, r, room.ID, "Sync", "Bob")
	assert.Equal(t, 0, b.Status) // Pending
	assert.Empty(t, b.ApprovedBy)
	assert.Nil(t, b.UpdatedAt)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/1/status", gin.H{
		"status":          2, // Rejected
		"rejectionReason": "Conflict",
	})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/bookings/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[bookingBody](t, w)
	assert.Equal(t, 2, got.Status)
	assert.Equal(t, "Conflict", got.RejectionReason)
	assert.NotNil(t, got.UpdatedAt)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/1/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := decode[[]historyBody](t, w)
	require.Len(t, history, 1)
	assert.Equal(t, 0, history[0].PreviousStatus)
	assert.Equal(t, 2, history[0].NewStatus)
	assert.Equal(t, "System", history[0].ChangedBy)
}

func TestApprovalSetsApprover(t *testing.T) {
	r := setupRouter(t)

	room := createRoom(t, r, "A", 10)
	createBooking(t, r, room.ID, "Sync", "Bob")

	w := doJSON(t, r, http.MethodPut, "/api/bookings/1/status", gin.H{
		"status":     1, // Approved
		"approvedBy": "Alice",
		"changedBy":  "Alice",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/1", nil)
	got := decode[bookingBody](t, w)
	assert.Equal(t, 1, got.Status)
	assert.Equal(t, "Alice", got.ApprovedBy)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/1/history", nil)
	history := decode[[]historyBody](t, w)
	require.Len(t, history, 1)
	assert.Equal(t, "Alice", history[0].ChangedBy)
}

func TestUpdateBooking_IgnoresImmutableFields(t *testing.T) {
	r := setupRouter(t)

	room := createRoom(t, r, "A", 10)
	other := createRoom(t, r, "B", 20)
	b := createBooking(t, r, room.ID, "Sync", "Bob")

	start := time.Date(2026, 9, 16, 9, 0, 0, 0, time.UTC)
	w := doJSON(t, r, http.MethodPut, "/api/bookings/1", gin.H{
		"title":       "Renamed",
		"description": "Updated",
		"startTime":   start,
		"endTime":     start.Add(time.Hour),
		// must all be ignored
		"roomId":   other.ID,
		"bookedBy": "Mallory",
		"status":   4,
	})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/bookings/1", nil)
	got := decode[bookingBody](t, w)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, b.RoomID, got.RoomID)
	assert.Equal(t, "Bob", got.BookedBy)
	assert.Equal(t, 0, got.Status)
	assert.NotNil(t, got.UpdatedAt)
}

func TestDeleteThenChangeStatus(t *testing.T) {
	r := setupRouter(t)

	room := createRoom(t, r, "A", 10)
	createBooking(t, r, room.ID, "Sync", "Bob")

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/bookings/1/status", gin.H{"status": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChangeStatus_UnknownValue(t *testing.T) {
	r := setupRouter(t)

	room := createRoom(t, r, "A", 10)
	createBooking(t, r, room.ID, "Sync", "Bob")

	w := doJSON(t, r, http.MethodPut, "/api/bookings/1/status", gin.H{"status": 42})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
