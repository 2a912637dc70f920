package proxy

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
	proxyservice "github.com/veldmarket/auction-engine/internal/service/proxyservice"
	"github.com/veldmarket/auction-engine/pkg/auth"
	"github.com/veldmarket/auction-engine/pkg/money"
	"github.com/veldmarket/auction-engine/pkg/utils"
)

type Service interface {
	SetProxyBid(ctx context.Context, auctionID, userID int, maxAmount int64) (*domain.ProxyBid, error)
	GetProxyBid(ctx context.Context, auctionID, userID int) (*domain.ProxyBid, error)
	PauseProxyBid(ctx context.Context, auctionID, userID int) error
	ResumeProxyBid(ctx context.Context, auctionID, userID int) error
	CancelProxyBid(ctx context.Context, auctionID, userID int) error
}

type ProxyHandler struct {
	proxyService Service
}

func New(proxyService Service) *ProxyHandler {
	return &ProxyHandler{
		proxyService: proxyService,
	}
}

// SetProxyBid godoc
//
//	@Summary		Set a proxy bid
//	@Description	Create or replace the caller's standing maximum for an auction. The engine bids on their behalf up to this amount.
//	@Tags			Proxy
//	@Accept			json
//	@Produce		json
//	@Param			auctionID	path	int							true	"Auction ID"
//	@Param			proxy		body	dto.SetProxyBidRequestDTO	true	"Maximum amount"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProxyBidResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed amount"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Auction not found"
//	@Failure		409	{object}	utils.Response	"Auction no longer accepts proxy bids"
//	@Failure		422	{object}	utils.Response	"Maximum below the minimum acceptable bid"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/proxy [put]
func (h *ProxyHandler) SetProxyBid(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	var req dto.SetProxyBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	maxAmount, err := money.ParseCents(req.MaxAmount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid maximum amount")
		return
	}

	proxyBid, err := h.proxyService.SetProxyBid(r.Context(), auctionID, userID, maxAmount)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, proxyToDTO(proxyBid))
}

// GetProxyBid godoc
//
//	@Summary		Get the caller's proxy bid
//	@Tags			Proxy
//	@Produce		json
//	@Param			auctionID	path	int	true	"Auction ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProxyBidResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No proxy bid set"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/proxy [get]
func (h *ProxyHandler) GetProxyBid(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	proxyBid, err := h.proxyService.GetProxyBid(r.Context(), auctionID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, proxyToDTO(proxyBid))
}

// PauseProxyBid godoc
//
//	@Summary		Pause the caller's proxy bid
//	@Tags			Proxy
//	@Produce		json
//	@Param			auctionID	path	int	true	"Auction ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No proxy bid set"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/proxy/pause [post]
func (h *ProxyHandler) PauseProxyBid(w http.ResponseWriter, r *http.Request) {
	h.simpleOp(w, r, h.proxyService.PauseProxyBid, "Proxy bid paused")
}

// ResumeProxyBid godoc
//
//	@Summary		Resume the caller's proxy bid
//	@Tags			Proxy
//	@Produce		json
//	@Param			auctionID	path	int	true	"Auction ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No proxy bid set"
//	@Failure		422	{object}	utils.Response	"Maximum below the minimum acceptable bid"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/proxy/resume [post]
func (h *ProxyHandler) ResumeProxyBid(w http.ResponseWriter, r *http.Request) {
	h.simpleOp(w, r, h.proxyService.ResumeProxyBid, "Proxy bid resumed")
}

// CancelProxyBid godoc
//
//	@Summary		Cancel the caller's proxy bid
//	@Tags			Proxy
//	@Produce		json
//	@Param			auctionID	path	int	true	"Auction ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No proxy bid set"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/proxy [delete]
func (h *ProxyHandler) CancelProxyBid(w http.ResponseWriter, r *http.Request) {
	h.simpleOp(w, r, h.proxyService.CancelProxyBid, "Proxy bid cancelled")
}

func (h *ProxyHandler) simpleOp(w http.ResponseWriter, r *http.Request, op func(context.Context, int, int) error, message string) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	if err := op(r.Context(), auctionID, userID); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

func (h *ProxyHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, proxyservice.ErrAuctionNotFound),
		errors.Is(err, proxyservice.ErrProxyNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, proxyservice.ErrAuctionClosed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, proxyservice.ErrProxyTooLow):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func proxyToDTO(p *domain.ProxyBid) dto.ProxyBidResponseDTO {
	return dto.ProxyBidResponseDTO{
		AuctionID: p.AuctionID,
		MaxAmount: money.FormatCents(p.MaxAmount),
		Active:    p.Active,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
