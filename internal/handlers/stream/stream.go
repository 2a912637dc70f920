// Package stream exposes the notification fan-out over a websocket. Each
// connection gets its own bus subscription; a connection that cannot keep up
// loses events rather than slowing the bid path.
package stream

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/veldmarket/auction-engine/internal/events"
	"github.com/veldmarket/auction-engine/pkg/auth"
	"github.com/veldmarket/auction-engine/pkg/utils"
)

const (
	subscriptionBuffer = 64
	writeTimeout       = 10 * time.Second
)

type Subscriber interface {
	Subscribe(buffer int) (<-chan events.Event, func())
}

// TargetResolver decides which users an event is addressed to, so an outbid
// notice reaches the displaced bidder and opted-in watchers and nobody else.
type TargetResolver interface {
	TargetsFor(ctx context.Context, e events.Event) ([]int, error)
}

type StreamHandler struct {
	bus      Subscriber
	resolver TargetResolver
	upgrader websocket.Upgrader
}

func New(bus Subscriber, resolver TargetResolver) *StreamHandler {
	return &StreamHandler{
		bus:      bus,
		resolver: resolver,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Stream godoc
//
//	@Summary		Event stream
//	@Description	Upgrade to a websocket delivering the caller's auction events as JSON. Each event is addressed: outbid notices go to the displaced bidder and opted-in watchers only. An optional auction_id query restricts the feed to one auction.
//	@Tags			Stream
//	@Security		BearerAuth
//	@Param			auction_id	query	int	false	"Only deliver events for this auction"
//	@Success		101	{string}	string	"Switching protocols"
//	@Failure		400	{object}	utils.Response	"Malformed auction_id"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Router			/api/stream [get]
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	auctionFilter := 0
	if raw := r.URL.Query().Get("auction_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid auction_id")
			return
		}
		auctionFilter = id
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ch, cancel := h.bus.Subscribe(subscriptionBuffer)
	defer cancel()

	// The read loop only watches for the peer closing.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			if auctionFilter != 0 && e.AuctionID != auctionFilter {
				continue
			}
			if !h.addressedTo(r.Context(), e, userID) {
				continue
			}
			if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				return
			}
			if err := conn.WriteJSON(e); err != nil {
				zap.L().Debug("websocket write failed, dropping connection", zap.Error(err))
				return
			}
		}
	}
}

// addressedTo reports whether the event's recipient list includes the
// connected user. A resolver failure drops the event for this connection
// rather than leaking it to a non-recipient.
func (h *StreamHandler) addressedTo(ctx context.Context, e events.Event, userID int) bool {
	targets, err := h.resolver.TargetsFor(ctx, e)
	if err != nil {
		zap.L().Warn("failed to resolve event recipients",
			zap.String("eventID", e.ID),
			zap.Int("auctionID", e.AuctionID),
			zap.Error(err),
		)
		return false
	}
	for _, target := range targets {
		if target == userID {
			return true
		}
	}
	return false
}
