package dto

type CreateAuctionRequestDTO struct {
	ListingID    int    `json:"listing_id" example:"77"`
	StartingBid  string `json:"starting_bid" example:"100.00"`
	ReservePrice string `json:"reserve_price,omitempty" example:"150.00"`
	MinIncrement string `json:"min_increment" example:"10.00"`
	StartTime    string `json:"start_time" example:"2026-03-01T12:00:00Z"`
	EndTime      string `json:"end_time,omitempty" example:"2026-03-08T12:00:00Z"`
}

type AuctionResponseDTO struct {
	ID            int    `json:"id" example:"1"`
	ListingID     int    `json:"listing_id" example:"77"`
	SellerID      int    `json:"seller_id" example:"5"`
	StartingBid   string `json:"starting_bid" example:"100.00"`
	MinIncrement  string `json:"min_increment" example:"10.00"`
	CurrentBid    string `json:"current_bid,omitempty" example:"130.00"`
	CurrentBidder *int   `json:"current_bidder,omitempty" example:"102"`
	MinNextBid    string `json:"min_next_bid" example:"140.00"`
	StartTime     string `json:"start_time" example:"2026-03-01T12:00:00Z"`
	EndTime       string `json:"end_time,omitempty" example:"2026-03-08T12:00:00Z"`
	Status        string `json:"status" example:"active"`
	WinnerID      *int   `json:"winner_id,omitempty" example:"102"`
	WinningBid    string `json:"winning_bid,omitempty" example:"160.00"`
}
