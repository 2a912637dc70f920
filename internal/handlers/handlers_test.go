package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/veldmarket/auction-engine/docs"
	"github.com/veldmarket/auction-engine/pkg/auth"
)

func newTestHandlers(t *testing.T) *Handlers {
	ctrl := gomock.NewController(t)

	mockAuctionHandler := NewMockAuctionHandler(ctrl)
	mockBidHandler := NewMockBidHandler(ctrl)
	mockProxyHandler := NewMockProxyHandler(ctrl)
	mockRegistrationHandler := NewMockRegistrationHandler(ctrl)
	mockWatchlistHandler := NewMockWatchlistHandler(ctrl)
	mockStreamHandler := NewMockStreamHandler(ctrl)

	mockAuctionHandler.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().GetAuction(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().Approve(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().Reject(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuctionHandler.EXPECT().Cancel(gomock.Any(), gomock.Any()).AnyTimes()
	mockBidHandler.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockBidHandler.EXPECT().GetHighBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockBidHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockProxyHandler.EXPECT().SetProxyBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockProxyHandler.EXPECT().GetProxyBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockProxyHandler.EXPECT().PauseProxyBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockProxyHandler.EXPECT().ResumeProxyBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockProxyHandler.EXPECT().CancelProxyBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockRegistrationHandler.EXPECT().ConfirmFee(gomock.Any(), gomock.Any()).AnyTimes()
	mockRegistrationHandler.EXPECT().MyRegistrations(gomock.Any(), gomock.Any()).AnyTimes()
	mockWatchlistHandler.EXPECT().Watch(gomock.Any(), gomock.Any()).AnyTimes()
	mockWatchlistHandler.EXPECT().Unwatch(gomock.Any(), gomock.Any()).AnyTimes()
	mockStreamHandler.EXPECT().Stream(gomock.Any(), gomock.Any()).AnyTimes()

	return &Handlers{
		AuctionHandler:      mockAuctionHandler,
		BidHandler:          mockBidHandler,
		ProxyHandler:        mockProxyHandler,
		RegistrationHandler: mockRegistrationHandler,
		WatchlistHandler:    mockWatchlistHandler,
		StreamHandler:       mockStreamHandler,
		jwtService:          auth.NewJWTService("test-secret"),
		keyVerifier:         &auth.KeyVerifier{},
		adminKey:            "",
	}
}

func TestInitRoutes(t *testing.T) {
	h := newTestHandlers(t)

	router := chi.NewRouter()
	h.InitRoutes(router)

	token, err := h.jwtService.GenerateJWT(101, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	tests := []struct {
		name   string
		method string
		url    string
		auth   bool
		status int
	}{
		{"Auction snapshot is public", http.MethodGet, "/api/auctions/1", false, http.StatusOK},
		{"Bid history is public", http.MethodGet, "/api/auctions/1/bids", false, http.StatusOK},
		{"High bid is public", http.MethodGet, "/api/auctions/1/bids/high", false, http.StatusOK},
		{"Event stream requires auth", http.MethodGet, "/api/stream", false, http.StatusUnauthorized},
		{"Event stream with a token", http.MethodGet, "/api/stream", true, http.StatusOK},
		{"Placing a bid requires auth", http.MethodPost, "/api/auctions/1/bids", false, http.StatusUnauthorized},
		{"Placing a bid with a token", http.MethodPost, "/api/auctions/1/bids", true, http.StatusOK},
		{"Creating an auction requires auth", http.MethodPost, "/api/auctions/", false, http.StatusUnauthorized},
		{"Proxy bid with a token", http.MethodPut, "/api/auctions/1/proxy/", true, http.StatusOK},
		{"Watching with a token", http.MethodPost, "/api/auctions/1/watch", true, http.StatusOK},
		{"Registrations require auth", http.MethodGet, "/api/registrations", false, http.StatusUnauthorized},
		{"Fee webhook requires the admin key", http.MethodPost, "/api/registrations/confirm", false, http.StatusForbidden},
		{"Approve requires the admin key", http.MethodPost, "/api/admin/auctions/1/approve", true, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.auth {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
