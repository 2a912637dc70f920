package domain

import "time"

// Auction statuses. An auction holds exactly one status at a time and only
// moves along pending → approved → active → ended → sold/unsold, with
// rejected and cancelled as administrative exits.
const (
	StatusPending   string = "pending"
	StatusApproved  string = "approved"
	StatusActive    string = "active"
	StatusEnded     string = "ended"
	StatusSold      string = "sold"
	StatusUnsold    string = "unsold"
	StatusRejected  string = "rejected"
	StatusCancelled string = "cancelled"
)

// Registration payment statuses.
const (
	PaymentPending  string = "pending"
	PaymentPaid     string = "paid"
	PaymentRefunded string = "refunded"
)

// Auction is the single shared mutable resource of the engine. CurrentBid and
// CurrentBidder change only through the compare-and-set commit path; all
// amounts are in minor units (cents).
type Auction struct {
	ID            int        `db:"id"`
	ListingID     int        `db:"listing_id"`
	SellerID      int        `db:"seller_id"`
	StartingBid   int64      `db:"starting_bid"`
	ReservePrice  int64      `db:"reserve_price"`
	MinIncrement  int64      `db:"min_increment"`
	CurrentBid    *int64     `db:"current_bid"`
	CurrentBidder *int       `db:"current_bidder"`
	StartTime     time.Time  `db:"start_time"`
	EndTime       *time.Time `db:"end_time"`
	Status        string     `db:"status"`
	WinnerID      *int       `db:"winner_id"`
	WinningBid    *int64     `db:"winning_bid"`
	CreatedAt     time.Time  `db:"created_at"`
}

// HighBid returns the current high bid, reporting false until the first bid
// has been committed.
func (a *Auction) HighBid() (int64, bool) {
	if a.CurrentBid == nil {
		return 0, false
	}
	return *a.CurrentBid, true
}

// MinAcceptable is the lowest amount the ladder accepts next: the starting
// bid while no bid exists, current high plus one increment afterwards.
func (a *Auction) MinAcceptable() int64 {
	if a.CurrentBid == nil {
		return a.StartingBid
	}
	return *a.CurrentBid + a.MinIncrement
}

// Bid is an append-only ledger row. Bids are never edited or deleted.
type Bid struct {
	ID        string    `db:"id"`
	AuctionID int       `db:"auction_id"`
	BidderID  int       `db:"bidder_id"`
	Amount    int64     `db:"amount"`
	IsProxy   bool      `db:"is_proxy"`
	PlacedAt  time.Time `db:"placed_at"`
}

// Registration gates bidding eligibility: a bid is accepted only when a paid
// registration exists for the (auction, user) pair.
type Registration struct {
	ID             int       `db:"id"`
	AuctionID      int       `db:"auction_id"`
	UserID         int       `db:"user_id"`
	FeeAmount      int64     `db:"fee_amount"`
	PaymentRef     string    `db:"payment_ref"`
	PaymentStatus  string    `db:"payment_status"`
	IsWinner       bool      `db:"is_winner"`
	DepositApplied bool      `db:"deposit_applied"`
	CreatedAt      time.Time `db:"created_at"`
}

// ProxyBid is a user's standing maximum for one auction. An inactive proxy is
// kept but skipped by evaluation; the user can resume it later.
type ProxyBid struct {
	ID        int       `db:"id"`
	AuctionID int       `db:"auction_id"`
	UserID    int       `db:"user_id"`
	MaxAmount int64     `db:"max_amount"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// WatchlistEntry is read-only input for notification targeting.
type WatchlistEntry struct {
	ID           int       `db:"id"`
	AuctionID    int       `db:"auction_id"`
	UserID       int       `db:"user_id"`
	NotifyOutbid bool      `db:"notify_outbid"`
	NotifyStatus bool      `db:"notify_status"`
	CreatedAt    time.Time `db:"created_at"`
}
