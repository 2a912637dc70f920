package bids

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/veldmarket/auction-engine/internal/domain"
	"github.com/veldmarket/auction-engine/internal/dto"
	biddingservice "github.com/veldmarket/auction-engine/internal/service/biddingservice"
	"github.com/veldmarket/auction-engine/pkg/auth"
	"github.com/veldmarket/auction-engine/pkg/money"
	"github.com/veldmarket/auction-engine/pkg/utils"
)

type Service interface {
	PlaceBid(ctx context.Context, auctionID, bidderID int, amount int64) (*biddingservice.BidResult, error)
	GetCurrentHighBid(ctx context.Context, auctionID int) (int64, int, bool, error)
	GetBidHistory(ctx context.Context, auctionID int) ([]domain.Bid, error)
}

type BidHandler struct {
	biddingService Service
	limits         *limiterStore
}

func New(biddingService Service, ratePerSec float64, burst int) *BidHandler {
	return &BidHandler{
		biddingService: biddingService,
		limits:         newLimiterStore(ratePerSec, burst),
	}
}

// PlaceBid godoc
//
//	@Summary		Place a bid
//	@Description	Commit a bid on an active auction. The response reflects the settled state after any proxy counter-bids.
//	@Tags			Bids
//	@Accept			json
//	@Produce		json
//	@Param			auctionID	path	int						true	"Auction ID"
//	@Param			bid			body	dto.PlaceBidRequestDTO	true	"Bid amount"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PlaceBidResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed amount"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"User not registered for this auction"
//	@Failure		404	{object}	utils.Response	"Auction not found"
//	@Failure		409	{object}	utils.Response	"Auction not accepting bids or bid contested"
//	@Failure		422	{object}	utils.Response	"Bid below the minimum acceptable amount"
//	@Failure		429	{object}	utils.Response	"Too many bids"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/bids [post]
func (h *BidHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	if !h.limits.allow(userID) {
		utils.RespondWithError(w, http.StatusTooManyRequests, "Too many bids")
		return
	}

	var req dto.PlaceBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amount, err := money.ParseCents(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bid amount")
		return
	}

	result, err := h.biddingService.PlaceBid(r.Context(), auctionID, userID, amount)
	if err != nil {
		switch {
		case errors.Is(err, biddingservice.ErrAuctionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, biddingservice.ErrNotRegistered):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, biddingservice.ErrBidTooLow):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, biddingservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, biddingservice.ErrAuctionNotActive),
			errors.Is(err, biddingservice.ErrOutsideTimeWindow),
			errors.Is(err, biddingservice.ErrContested):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	resp := dto.PlaceBidResponseDTO{
		BidID:      result.Bid.ID,
		Amount:     money.FormatCents(result.Bid.Amount),
		HighBid:    money.FormatCents(result.FinalAmount),
		HighBidder: result.FinalBidder,
		Outbid:     result.WasOutbid,
	}
	if result.WasOutbid {
		resp.OutbidAmount = money.FormatCents(result.OutbidAmount)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetHighBid godoc
//
//	@Summary		Current high bid
//	@Description	Return the auction's current high bid and bidder.
//	@Tags			Bids
//	@Produce		json
//	@Param			auctionID	path	int	true	"Auction ID"
//	@Success		200	{object}	dto.HighBidResponseDTO
//	@Failure		404	{object}	utils.Response	"Auction not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/bids/high [get]
func (h *BidHandler) GetHighBid(w http.ResponseWriter, r *http.Request) {
	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	amount, bidderID, hasBid, err := h.biddingService.GetCurrentHighBid(r.Context(), auctionID)
	if err != nil {
		if errors.Is(err, biddingservice.ErrAuctionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.HighBidResponseDTO{HasBid: hasBid}
	if hasBid {
		resp.Amount = money.FormatCents(amount)
		resp.BidderID = &bidderID
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetHistory godoc
//
//	@Summary		Bid history
//	@Description	Return the auction's bid ledger, oldest first.
//	@Tags			Bids
//	@Produce		json
//	@Param			auctionID	path	int	true	"Auction ID"
//	@Success		200	{array}		dto.BidHistoryResponseDTO
//	@Failure		204	{object}	utils.Response	"No bids yet"
//	@Failure		404	{object}	utils.Response	"Auction not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/bids [get]
func (h *BidHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	bidsList, err := h.biddingService.GetBidHistory(r.Context(), auctionID)
	if err != nil {
		if errors.Is(err, biddingservice.ErrAuctionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(bidsList) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No bids yet")
		return
	}

	var response []dto.BidHistoryResponseDTO
	for _, bid := range bidsList {
		response = append(response, dto.BidHistoryResponseDTO{
			BidID:    bid.ID,
			BidderID: bid.BidderID,
			Amount:   money.FormatCents(bid.Amount),
			IsProxy:  bid.IsProxy,
			PlacedAt: bid.PlacedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
