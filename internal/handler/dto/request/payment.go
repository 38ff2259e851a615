package request

type SubmitPaymentRequest struct {
	ListingID int64  `json:"listing_id" binding:"required"`
	LeaseTerm string `json:"lease_term" binding:"required"`
}
