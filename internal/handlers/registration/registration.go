package registration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/veldmarket/auction-engine/internal/domain"
	"github.com/veldmarket/auction-engine/internal/dto"
	registrationservice "github.com/veldmarket/auction-engine/internal/service/registrationservice"
	"github.com/veldmarket/auction-engine/pkg/auth"
	"github.com/veldmarket/auction-engine/pkg/money"
	"github.com/veldmarket/auction-engine/pkg/utils"
)

type Service interface {
	ConfirmFee(ctx context.Context, auctionID, userID int, feeAmount int64, paymentRef string) (*domain.Registration, error)
	ListForUser(ctx context.Context, userID int) ([]domain.Registration, error)
}

type RegistrationHandler struct {
	registrationService Service
}

func New(registrationService Service) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
	}
}

// ConfirmFee godoc
//
//	@Summary		Confirm a registration fee payment
//	@Description	Payment collaborator webhook: a confirmed fee creates the paid registration that lets the user bid.
//	@Tags			Registrations
//	@Accept			json
//	@Produce		json
//	@Param			payment	body	dto.ConfirmFeeRequestDTO	true	"Confirmed payment"
//	@Security		AdminKey
//	@Success		201	{object}	dto.RegistrationResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed request or payment reference"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Auction not found"
//	@Failure		409	{object}	utils.Response	"User already registered or registration closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/registrations/confirm [post]
func (h *RegistrationHandler) ConfirmFee(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmFeeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	feeAmount, err := money.ParseCents(req.FeeAmount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid fee amount")
		return
	}

	reg, err := h.registrationService.ConfirmFee(r.Context(), req.AuctionID, req.UserID, feeAmount, req.PaymentRef)
	if err != nil {
		switch {
		case errors.Is(err, registrationservice.ErrInvalidPaymentRef),
			errors.Is(err, registrationservice.ErrInvalidFee):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, registrationservice.ErrAuctionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, registrationservice.ErrRegistrationExists),
			errors.Is(err, registrationservice.ErrRegistrationClosed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, registrationToDTO(reg))
}

// MyRegistrations godoc
//
//	@Summary		List the caller's registrations
//	@Tags			Registrations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.RegistrationResponseDTO
//	@Failure		204	{object}	utils.Response	"No registrations"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/registrations [get]
func (h *RegistrationHandler) MyRegistrations(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	regs, err := h.registrationService.ListForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(regs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No registrations")
		return
	}

	var response []dto.RegistrationResponseDTO
	for i := range regs {
		response = append(response, registrationToDTO(&regs[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func registrationToDTO(reg *domain.Registration) dto.RegistrationResponseDTO {
	return dto.RegistrationResponseDTO{
		ID:             reg.ID,
		AuctionID:      reg.AuctionID,
		UserID:         reg.UserID,
		FeeAmount:      money.FormatCents(reg.FeeAmount),
		PaymentStatus:  reg.PaymentStatus,
		IsWinner:       reg.IsWinner,
		DepositApplied: reg.DepositApplied,
		CreatedAt:      reg.CreatedAt.Format(time.RFC3339),
	}
}
