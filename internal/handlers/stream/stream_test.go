package stream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldmarket/auction-engine/internal/events"
	"github.com/veldmarket/auction-engine/pkg/auth"
)

// routedResolver addresses events by type; an empty map means nobody
// receives anything.
type routedResolver struct {
	byType map[events.Type][]int
}

func (r routedResolver) TargetsFor(_ context.Context, e events.Event) ([]int, error) {
	return r.byType[e.Type], nil
}

func everyoneFor(userID int) routedResolver {
	return routedResolver{byType: map[events.Type][]int{
		events.TypeNewHighBid:    {userID},
		events.TypeOutbid:        {userID},
		events.TypeStatusChanged: {userID},
		events.TypeAuctionWon:    {userID},
		events.TypeSettlement:    {userID},
	}}
}

// newStreamServer serves the handler as the auth middleware would, with the
// bidder identity already on the request context.
func newStreamServer(bus *events.Bus, resolver TargetResolver, userID int) *httptest.Server {
	h := New(bus, resolver)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
		h.Stream(w, r.WithContext(ctx))
	}))
}

func dialStream(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(server.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) events.Event {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var e events.Event
	require.NoError(t, conn.ReadJSON(&e))
	return e
}

func TestStreamDeliversEvents(t *testing.T) {
	bus := events.NewBus()
	server := newStreamServer(bus, everyoneFor(101), 101)
	defer server.Close()

	conn := dialStream(t, server, "")
	defer conn.Close()

	// The subscription is registered during the upgrade handshake, but give
	// the handler goroutine a moment to reach its select loop.
	time.Sleep(50 * time.Millisecond)

	e := events.New(events.TypeStatusChanged, 1)
	e.StatusChanged = &events.StatusChangedPayload{From: "approved", To: "active"}
	bus.Publish(e)

	got := readEvent(t, conn)
	assert.Equal(t, events.TypeStatusChanged, got.Type)
	assert.Equal(t, 1, got.AuctionID)
	require.NotNil(t, got.StatusChanged)
	assert.Equal(t, "active", got.StatusChanged.To)
}

func TestStreamAuctionFilter(t *testing.T) {
	bus := events.NewBus()
	server := newStreamServer(bus, everyoneFor(101), 101)
	defer server.Close()

	conn := dialStream(t, server, "?auction_id=2")
	defer conn.Close()

	time.Sleep(50 * time.Millisecond)

	bus.Publish(events.New(events.TypeNewHighBid, 1))
	bus.Publish(events.New(events.TypeNewHighBid, 2))

	// Only the auction 2 event comes through.
	got := readEvent(t, conn)
	assert.Equal(t, 2, got.AuctionID)
}

func TestStreamDeliversOnlyToRecipients(t *testing.T) {
	bus := events.NewBus()
	resolver := routedResolver{byType: map[events.Type][]int{
		events.TypeOutbid:        {101},
		events.TypeStatusChanged: {101, 102},
	}}

	outbidServer := newStreamServer(bus, resolver, 101)
	defer outbidServer.Close()
	watcherServer := newStreamServer(bus, resolver, 102)
	defer watcherServer.Close()

	outbidConn := dialStream(t, outbidServer, "")
	defer outbidConn.Close()
	watcherConn := dialStream(t, watcherServer, "")
	defer watcherConn.Close()

	time.Sleep(50 * time.Millisecond)

	outbid := events.New(events.TypeOutbid, 1)
	outbid.Outbid = &events.OutbidPayload{PreviousBidder: 101, PreviousAmount: 12000, NewAmount: 13000}
	bus.Publish(outbid)

	status := events.New(events.TypeStatusChanged, 1)
	status.StatusChanged = &events.StatusChangedPayload{From: "active", To: "ended"}
	bus.Publish(status)

	// The displaced bidder sees both; the watcher must never see the outbid
	// notice, so the status change is their first event.
	got := readEvent(t, outbidConn)
	assert.Equal(t, events.TypeOutbid, got.Type)
	got = readEvent(t, outbidConn)
	assert.Equal(t, events.TypeStatusChanged, got.Type)

	got = readEvent(t, watcherConn)
	assert.Equal(t, events.TypeStatusChanged, got.Type)
}

func TestStreamRejectsBadFilter(t *testing.T) {
	bus := events.NewBus()
	server := newStreamServer(bus, everyoneFor(101), 101)
	defer server.Close()

	resp, err := http.Get(server.URL + "?auction_id=abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
