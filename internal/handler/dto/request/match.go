package request

type DecideRequest struct {
	ListingID int64  `json:"listing_id" binding:"required"`
	Direction string `json:"direction" binding:"required"`
}

type ToggleCompareRequest struct {
	ListingID int64 `json:"listing_id" binding:"required"`
}

type ToggleFavoriteRequest struct {
	ListingID int64 `json:"listing_id" binding:"required"`
}
