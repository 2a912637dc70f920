package dto

type ConfirmFeeRequestDTO struct {
	AuctionID  int    `json:"auction_id" example:"1"`
	UserID     int    `json:"user_id" example:"102"`
	FeeAmount  string `json:"fee_amount" example:"5.00"`
	PaymentRef string `json:"payment_ref" example:"79927398713"`
}

type RegistrationResponseDTO struct {
	ID             int    `json:"id" example:"10"`
	AuctionID      int    `json:"auction_id" example:"1"`
	UserID         int    `json:"user_id" example:"102"`
	FeeAmount      string `json:"fee_amount" example:"5.00"`
	PaymentStatus  string `json:"payment_status" example:"paid"`
	IsWinner       bool   `json:"is_winner" example:"false"`
	DepositApplied bool   `json:"deposit_applied" example:"false"`
	CreatedAt      string `json:"created_at" example:"2026-03-01T12:00:00Z"`
}

type WatchRequestDTO struct {
	NotifyOutbid bool `json:"notify_outbid" example:"true"`
	NotifyStatus bool `json:"notify_status" example:"true"`
}
