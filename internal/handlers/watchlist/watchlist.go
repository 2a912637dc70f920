package watchlist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/veldmarket/auction-engine/internal/dto"
	watchservice "github.com/veldmarket/auction-engine/internal/service/watchservice"
	"github.com/veldmarket/auction-engine/pkg/auth"
	"github.com/veldmarket/auction-engine/pkg/utils"
)

type Service interface {
	Watch(ctx context.Context, auctionID, userID int, notifyOutbid, notifyStatus bool) error
	Unwatch(ctx context.Context, auctionID, userID int) error
}

type WatchlistHandler struct {
	watchService Service
}

func New(watchService Service) *WatchlistHandler {
	return &WatchlistHandler{
		watchService: watchService,
	}
}

// Watch godoc
//
//	@Summary		Watch an auction
//	@Description	Add the auction to the caller's watchlist with per-event notification preferences.
//	@Tags			Watchlist
//	@Accept			json
//	@Produce		json
//	@Param			auctionID	path	int					true	"Auction ID"
//	@Param			prefs		body	dto.WatchRequestDTO	true	"Notification preferences"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Auction not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/watch [post]
func (h *WatchlistHandler) Watch(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	var req dto.WatchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.watchService.Watch(r.Context(), auctionID, userID, req.NotifyOutbid, req.NotifyStatus); err != nil {
		if errors.Is(err, watchservice.ErrAuctionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Watching auction"})
}

// Unwatch godoc
//
//	@Summary		Stop watching an auction
//	@Tags			Watchlist
//	@Produce		json
//	@Param			auctionID	path	int	true	"Auction ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Not watching"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{auctionID}/watch [delete]
func (h *WatchlistHandler) Unwatch(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	auctionID, err := strconv.Atoi(chi.URLParam(r, "auctionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction id")
		return
	}

	if err := h.watchService.Unwatch(r.Context(), auctionID, userID); err != nil {
		if errors.Is(err, watchservice.ErrNotWatching) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Stopped watching auction"})
}
