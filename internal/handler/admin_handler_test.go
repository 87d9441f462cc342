package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"myshop/internal/admin"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminHandler(t *testing.T, backendURL string) (*AdminHandler, *admin.Sessions) {
	t.Helper()
	sessions := admin.NewSessions("admin@demo.com", "admin123", zerolog.Nop())
	aggregator := admin.NewAggregator(backendURL, zerolog.Nop())
	return NewAdminHandler(sessions, aggregator, zerolog.Nop()), sessions
}

func TestAdminHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "Valid credentials",
			body:           `{"email":"admin@demo.com","password":"admin123"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Wrong password",
			body:           `{"email":"admin@demo.com","password":"nope"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid JSON",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, sessions := newAdminHandler(t, "http://unused.example")

			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp LoginResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.NotEmpty(t, resp.Token)
				assert.True(t, sessions.Valid(resp.Token))
			}
		})
	}
}

func TestAdminHandler_Logout(t *testing.T) {
	h, sessions := newAdminHandler(t, "http://unused.example")

	token, err := sessions.Login("admin@demo.com", "admin123")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	req.Header.Set("X-Admin-Token", token)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, sessions.Valid(token))
}

func TestAdminHandler_Summary(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ecommerce/products":
			w.Write([]byte(`{"data":{"products":[{"_id":"p1","name":"Desk","price":10}]}}`))
		case "/ecommerce/orders":
			w.Write([]byte(`{"data":{"orders":[{"_id":"o1","totalPrice":10},{"_id":"o2","totalPrice":5}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer backend.Close()

	h, _ := newAdminHandler(t, backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/summary", nil)
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary admin.Summary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
	assert.Equal(t, 1, summary.ProductCount)
	assert.Equal(t, 2, summary.OrderCount)
	assert.Equal(t, "15", summary.TotalRevenue.String())
}

func TestAdminHandler_Summary_BackendDown(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	h, _ := newAdminHandler(t, backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/summary", nil)
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
