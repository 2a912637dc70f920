package auctions

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
	auctionservice "github.com/veldmarket/auction-engine/internal/service/auctionservice"
	"github.com/veldmarket/auction-engine/pkg/auth"
	"github.com/veldmarket/auction-engine/pkg/money"
	"github.com/veldmarket/auction-engine/pkg/utils"
)

type Service interface {
	CreateAuction(ctx context.Context, auction *domain.Auction) (*domain.Auction, error)
	GetAuction(ctx context.Context, auctionID int) (*domain.Auction, error)
	Approve(ctx context.Context, auctionID int) error
	Reject(ctx context.Context, auctionID int) error
	Cancel(ctx context.Context, auctionID int) error
}

type AuctionHandler struct {
	auctionService Service
}

func New(auctionService Service) *AuctionHandler {
	return &AuctionHandler{
		auctionService: auctionService,
	}
}

// CreateAuction godoc
//
//	@Summary		Create an auction
//	@Description	Create a pending auction for a listing. It becomes biddable after moderation and its start time.
//	@Tags			Auctions
//	@Accept			json
//	@Produce		json
//	@Param			auction	body	dto.CreateAuctionRequestDTO	true	"Auction parameters"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.AuctionResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Invalid schedule or amounts"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions [post]
func (h *AuctionHandler) CreateAuction(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateAuctionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	auction, err := auctionFromRequest(&req, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.auctionService.CreateAuction(r.Context(), auction)
	if err != nil {
		if errors.Is(err, auctionservice.ErrInvalidSchedule) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, AuctionToDTO(created))
}

// GetAuction godoc
//
//	@Summary		Auction snapshot
//	@Description	Return the auction's status, schedule and current high bid.
//	@Tags			Auctions
//	@Produce		json
//	@Param			auctionID	path	int	true	"Auction ID"
//	@Success		200	{object}	dto.AuctionResponseDTO
//	@Failure		404	{object}	utils.Response	"Auction not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID} [get]
func (h *AuctionHandler) GetAuction(w http.ResponseWriter, r *http.Request) {
	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	auction, err := h.auctionService.GetAuction(r.Context(), auctionID)
	if err != nil {
		if errors.Is(err, auctionservice.ErrAuctionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, AuctionToDTO(auction))
}

// Approve godoc
//
//	@Summary		Approve an auction
//	@Description	Move a pending auction into the schedulable pool. Admin only.
//	@Tags			Admin
//	@Produce		json
//	@Param			auctionID	path	int	true	"Auction ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Auction not found"
//	@Failure		409	{object}	utils.Response	"Auction not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/auctions/{auctionID}/approve [post]
func (h *AuctionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.auctionService.Approve, "Auction approved")
}

// Reject godoc
//
//	@Summary		Reject an auction
//	@Description	Reject a pending auction. Admin only.
//	@Tags			Admin
//	@Produce		json
//	@Param			auctionID	path	int	true	"Auction ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Auction not found"
//	@Failure		409	{object}	utils.Response	"Auction not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/auctions/{auctionID}/reject [post]
func (h *AuctionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.auctionService.Reject, "Auction rejected")
}

// Cancel godoc
//
//	@Summary		Cancel an auction
//	@Description	Withdraw an approved or active auction. Admin only.
//	@Tags			Admin
//	@Produce		json
//	@Param			auctionID	path	int	true	"Auction ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Auction not found"
//	@Failure		409	{object}	utils.Response	"Auction already finished"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/auctions/{auctionID}/cancel [post]
func (h *AuctionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.auctionService.Cancel, "Auction cancelled")
}

func (h *AuctionHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, int) error, message string) {
	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	if err := op(r.Context(), auctionID); err != nil {
		switch {
		case errors.Is(err, auctionservice.ErrAuctionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, auctionservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

func auctionFromRequest(req *dto.CreateAuctionRequestDTO, sellerID int) (*domain.Auction, error) {
	startingBid, err := money.ParseCents(req.StartingBid)
	if err != nil {
		return nil, errors.New("invalid starting bid")
	}
	minIncrement, err := money.ParseCents(req.MinIncrement)
	if err != nil {
		return nil, errors.New("invalid minimum increment")
	}

	var reserve int64
	if req.ReservePrice != "" {
		reserve, err = money.ParseCents(req.ReservePrice)
		if err != nil {
			return nil, errors.New("invalid reserve price")
		}
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, errors.New("invalid start time")
	}

	var endTime *time.Time
	if req.EndTime != "" {
		t, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			return nil, errors.New("invalid end time")
		}
		endTime = &t
	}

	return &domain.Auction{
		ListingID:    req.ListingID,
		SellerID:     sellerID,
		StartingBid:  startingBid,
		ReservePrice: reserve,
		MinIncrement: minIncrement,
		StartTime:    startTime,
		EndTime:      endTime,
	}, nil
}

// AuctionToDTO renders an auction snapshot with decimal amounts.
func AuctionToDTO(a *domain.Auction) dto.AuctionResponseDTO {
	resp := dto.AuctionResponseDTO{
		ID:            a.ID,
		ListingID:     a.ListingID,
		SellerID:      a.SellerID,
		StartingBid:   money.FormatCents(a.StartingBid),
		MinIncrement:  money.FormatCents(a.MinIncrement),
		MinNextBid:    money.FormatCents(a.MinAcceptable()),
		CurrentBidder: a.CurrentBidder,
		StartTime:     a.StartTime.Format(time.RFC3339),
		Status:        a.Status,
		WinnerID:      a.WinnerID,
	}
	if a.CurrentBid != nil {
		resp.CurrentBid = money.FormatCents(*a.CurrentBid)
	}
	if a.EndTime != nil {
		resp.EndTime = a.EndTime.Format(time.RFC3339)
	}
	if a.WinningBid != nil {
		resp.WinningBid = money.FormatCents(*a.WinningBid)
	}
	return resp
}
