package dto

type PlaceBidRequestDTO struct {
	Amount string `json:"amount" example:"130.00"`
}

type PlaceBidResponseDTO struct {
	BidID        string `json:"bid_id" example:"8f14e45f-ea3e-4f6b-b9a5-1c1a2b3c4d5e"`
	Amount       string `json:"amount" example:"130.00"`
	HighBid      string `json:"high_bid" example:"140.00"`
	HighBidder   int    `json:"high_bidder" example:"102"`
	Outbid       bool   `json:"outbid" example:"true"`
	OutbidAmount string `json:"outbid_amount,omitempty" example:"140.00"`
}

type HighBidResponseDTO struct {
	Amount   string `json:"amount,omitempty" example:"130.00"`
	BidderID *int   `json:"bidder_id,omitempty" example:"102"`
	HasBid   bool   `json:"has_bid" example:"true"`
}

type BidHistoryResponseDTO struct {
	BidID    string `json:"bid_id" example:"8f14e45f-ea3e-4f6b-b9a5-1c1a2b3c4d5e"`
	BidderID int    `json:"bidder_id" example:"102"`
	Amount   string `json:"amount" example:"130.00"`
	IsProxy  bool   `json:"is_proxy" example:"false"`
	PlacedAt string `json:"placed_at" example:"2026-03-01T12:30:00Z"`
}
