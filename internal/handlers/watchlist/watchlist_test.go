package watchlist

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	watchservice "github.com/veldmarket/auction-engine/internal/service/watchservice"
	"github.com/veldmarket/auction-engine/pkg/auth"
)

func NewMock(t *testing.T) (*WatchlistHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, body string, userID int, auctionID string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, "/api/auctions/"+auctionID+"/watch", bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, "/api/auctions/"+auctionID+"/watch", nil)
	}

	ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("auctionID", auctionID)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestWatchHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		auctionID     string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Watch with preferences",
			body:      `{"notify_outbid":true,"notify_status":false}`,
			auctionID: "1",
			prepareMock: func(service *MockService) {
				service.EXPECT().Watch(gomock.Any(), 1, 101, true, false).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Malformed body",
			body:          `{`,
			auctionID:     "1",
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid auction id",
			body:          `{"notify_outbid":true,"notify_status":true}`,
			auctionID:     "x",
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid auction id",
		},
		{
			name:      "Unknown auction",
			body:      `{"notify_outbid":true,"notify_status":true}`,
			auctionID: "1",
			prepareMock: func(service *MockService) {
				service.EXPECT().Watch(gomock.Any(), 1, 101, true, true).Return(watchservice.ErrAuctionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "Internal server error",
			body:      `{"notify_outbid":true,"notify_status":true}`,
			auctionID: "1",
			prepareMock: func(service *MockService) {
				service.EXPECT().Watch(gomock.Any(), 1, 101, true, true).Return(errors.New("connection reset"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(service)
			}

			w := httptest.NewRecorder()
			handler.Watch(w, newRequest(http.MethodPost, tt.body, 101, tt.auctionID))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestUnwatchHandler(t *testing.T) {
	t.Run("Stop watching", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Unwatch(gomock.Any(), 1, 101).Return(nil)

		w := httptest.NewRecorder()
		handler.Unwatch(w, newRequest(http.MethodDelete, "", 101, "1"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Not watching", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Unwatch(gomock.Any(), 1, 101).Return(watchservice.ErrNotWatching)

		w := httptest.NewRecorder()
		handler.Unwatch(w, newRequest(http.MethodDelete, "", 101, "1"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
