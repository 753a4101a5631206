package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicportal/models"
	"clinicportal/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubBookingService struct {
	created *models.Booking
	result  *models.BookingResult
	err     error
	byID    *models.Booking
}

func (s *stubBookingService) Create(ctx context.Context, candidate *models.Booking) (*models.BookingResult, error) {
	s.created = candidate
	return s.result, s.err
}

func (s *stubBookingService) ByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingService) ByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.byID, nil
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.POST(path, handler)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBookingHandlerAcknowledges(t *testing.T) {
	svc := &stubBookingService{result: &models.BookingResult{Acknowledged: true, InsertedID: "abc"}}
	h := NewBookingHandler(svc)

	w := postJSON(t, h.CreateBookingHandler, "/booking", models.Booking{
		AppointmentDate: "2026-09-01",
		Treatment:       "Teeth Cleaning",
		Slot:            "08.00 AM - 08.30 AM",
		Email:           "patient@example.com",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var result models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.True(t, result.Acknowledged)
	require.Equal(t, "abc", result.InsertedID)
}

// A duplicate tuple is a business rejection: HTTP 200 with
// acknowledged:false, never an error status.
func TestCreateBookingHandlerConflictIsSoft(t *testing.T) {
	svc := &stubBookingService{err: booking.NewConflictError("2026-09-01")}
	h := NewBookingHandler(svc)

	w := postJSON(t, h.CreateBookingHandler, "/booking", models.Booking{
		AppointmentDate: "2026-09-01",
		Treatment:       "Teeth Cleaning",
		Email:           "patient@example.com",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var result models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.False(t, result.Acknowledged)
	require.Equal(t, "You already have an appointment booked on 2026-09-01", result.Message)
}

func TestGetBookingByIDHandlerNotFound(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	router := gin.New()
	router.GET("/bookings/:id", h.GetBookingByIDHandler)

	req := httptest.NewRequest(http.MethodGet, "/bookings/000000000000000000000001", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

type stubUserService struct {
	admins map[string]bool
}

func (s *stubUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.admins[email], nil
}

func (s *stubUserService) GetAll(ctx context.Context) ([]models.User, error) { return nil, nil }

func (s *stubUserService) Create(ctx context.Context, user *models.User) (string, error) {
	return "", nil
}

func (s *stubUserService) Promote(ctx context.Context, id string) error { return nil }

func (s *stubUserService) Demote(ctx context.Context, id string) error { return nil }

func TestCheckAdminHandler(t *testing.T) {
	h := NewUserHandler(&stubUserService{admins: map[string]bool{"boss@example.com": true}})

	router := gin.New()
	router.GET("/users/admin/:email", h.CheckAdminHandler)

	for email, want := range map[string]bool{
		"boss@example.com":  true,
		"ghost@example.com": false,
	} {
		req := httptest.NewRequest(http.MethodGet, "/users/admin/"+email, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			IsAdmin bool `json:"isAdmin"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, want, resp.IsAdmin, email)
	}
}
