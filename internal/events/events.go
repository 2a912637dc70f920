// Package events is the notification fan-out of the auction engine. State
// changes are published here as typed events; delivery transports (websocket
// feed, Kafka mirror, the marketplace's own email/push pipeline) subscribe
// and handle delivery on their side.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Type string

const (
	TypeNewHighBid    Type = "new_high_bid"
	TypeOutbid        Type = "outbid"
	TypeStatusChanged Type = "status_changed"
	TypeAuctionWon    Type = "auction_won"
	TypeSettlement    Type = "settlement"
)

// Event is a single fan-out message. Exactly one of the payload pointers is
// set, matching Type.
type Event struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	AuctionID int       `json:"auction_id"`
	At        time.Time `json:"at"`

	NewHighBid    *NewHighBidPayload    `json:"new_high_bid,omitempty"`
	Outbid        *OutbidPayload        `json:"outbid,omitempty"`
	StatusChanged *StatusChangedPayload `json:"status_changed,omitempty"`
	AuctionWon    *AuctionWonPayload    `json:"auction_won,omitempty"`
	Settlement    *SettlementPayload    `json:"settlement,omitempty"`
}

type NewHighBidPayload struct {
	BidderID int   `json:"bidder_id"`
	Amount   int64 `json:"amount"`
	IsProxy  bool  `json:"is_proxy"`
}

type OutbidPayload struct {
	PreviousBidder int   `json:"previous_bidder"`
	PreviousAmount int64 `json:"previous_amount"`
	NewAmount      int64 `json:"new_amount"`
}

type StatusChangedPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type AuctionWonPayload struct {
	WinnerID   int   `json:"winner_id"`
	WinningBid int64 `json:"winning_bid"`
}

// SettlementPayload is the handoff consumed by the order system: it turns
// this into a payable order and applies the registration deposit.
type SettlementPayload struct {
	ListingID  int   `json:"listing_id"`
	WinnerID   int   `json:"winner_id"`
	WinningBid int64 `json:"winning_bid"`
}

func New(t Type, auctionID int) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		AuctionID: auctionID,
		At:        time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(e Event)
}

// Bus is an in-process fan-out: every subscriber gets every event. Publish
// never blocks; a subscriber that falls behind loses events rather than
// stalling the bid path.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]chan Event
	next int
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[int]chan Event),
	}
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		select {
		case ch <- e:
		default:
			zap.L().Warn("event dropped for slow subscriber",
				zap.Int("subscriber", id),
				zap.String("type", string(e.Type)),
				zap.Int("auctionID", e.AuctionID),
			)
		}
	}
}

// Subscribe registers a buffered subscription. The returned cancel func must
// be called to release it; the channel is closed on cancel.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, buffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}
