package dto

type SetProxyBidRequestDTO struct {
	MaxAmount string `json:"max_amount" example:"150.00"`
}

type ProxyBidResponseDTO struct {
	AuctionID int    `json:"auction_id" example:"1"`
	MaxAmount string `json:"max_amount" example:"150.00"`
	Active    bool   `json:"active" example:"true"`
	CreatedAt string `json:"created_at" example:"2026-03-01T12:00:00Z"`
}
