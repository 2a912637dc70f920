package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/veldmarket/auction-engine/internal/domain"
	"github.com/veldmarket/auction-engine/internal/dto"
	registrationservice "github.com/veldmarket/auction-engine/internal/service/registrationservice"
	"github.com/veldmarket/auction-engine/pkg/auth"
)

func NewMock(t *testing.T) (*RegistrationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestConfirmFeeHandler(t *testing.T) {
	validBody := `{"auction_id":1,"user_id":102,"fee_amount":"5.00","payment_ref":"79927398713"}`

	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Paid fee creates the registration",
			body: validBody,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					ConfirmFee(gomock.Any(), 1, 102, int64(500), "79927398713").
					Return(&domain.Registration{
						ID:            10,
						AuctionID:     1,
						UserID:        102,
						FeeAmount:     500,
						PaymentRef:    "79927398713",
						PaymentStatus: domain.PaymentPaid,
						CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Malformed body",
			body:          `{`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Malformed fee amount",
			body:          `{"auction_id":1,"user_id":102,"fee_amount":"free","payment_ref":"79927398713"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid fee amount",
		},
		{
			name: "Payment reference fails the checksum",
			body: validBody,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					ConfirmFee(gomock.Any(), 1, 102, int64(500), "79927398713").
					Return(nil, registrationservice.ErrInvalidPaymentRef)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown auction",
			body: validBody,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					ConfirmFee(gomock.Any(), 1, 102, int64(500), "79927398713").
					Return(nil, registrationservice.ErrAuctionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already registered",
			body: validBody,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					ConfirmFee(gomock.Any(), 1, 102, int64(500), "79927398713").
					Return(nil, registrationservice.ErrRegistrationExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Registration closed",
			body: validBody,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					ConfirmFee(gomock.Any(), 1, 102, int64(500), "79927398713").
					Return(nil, registrationservice.ErrRegistrationClosed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: validBody,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					ConfirmFee(gomock.Any(), 1, 102, int64(500), "79927398713").
					Return(nil, errors.New("connection reset"))
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

			r := httptest.NewRequest(http.MethodPost, "/api/registrations/confirm", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.ConfirmFee(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var resp dto.RegistrationResponseDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, 10, resp.ID)
				assert.Equal(t, "5.00", resp.FeeAmount)
				assert.Equal(t, domain.PaymentPaid, resp.PaymentStatus)
			}
		})
	}
}

func TestMyRegistrationsHandler(t *testing.T) {
	newRequest := func(userID int) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/api/registrations", nil)
		return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
	}

	t.Run("Registrations listed", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListForUser(gomock.Any(), 102).Return([]domain.Registration{
			{ID: 10, AuctionID: 1, UserID: 102, FeeAmount: 500, PaymentStatus: domain.PaymentPaid},
			{ID: 11, AuctionID: 2, UserID: 102, FeeAmount: 1000, PaymentStatus: domain.PaymentPaid, IsWinner: true, DepositApplied: true},
		}, nil)

		w := httptest.NewRecorder()
		handler.MyRegistrations(w, newRequest(102))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []dto.RegistrationResponseDTO
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		assert.True(t, resp[1].IsWinner)
		assert.True(t, resp[1].DepositApplied)
	})

	t.Run("No registrations", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListForUser(gomock.Any(), 102).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.MyRegistrations(w, newRequest(102))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Internal server error", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListForUser(gomock.Any(), 102).Return(nil, errors.New("connection reset"))

		w := httptest.NewRecorder()
		handler.MyRegistrations(w, newRequest(102))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
