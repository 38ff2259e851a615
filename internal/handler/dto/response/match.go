package response

import "arbitat/internal/usecase/queries"

type DecideResponse struct {
	ListingID int64  `json:"listing_id"`
	Status    string `json:"status"`
	Changed   bool   `json:"changed"`
}

type ToggleCompareResponse struct {
	ListingID int64 `json:"listing_id"`
	Selected  bool  `json:"selected"`
	Changed   bool  `json:"changed"`
	Size      int   `json:"size"`
	Limit     int   `json:"limit"`
}

type ToggleFavoriteResponse struct {
	ListingID int64 `json:"listing_id"`
	Favorite  bool  `json:"favorite"`
}

type CompareResponse struct {
	Listings []queries.ListingView `json:"listings"`
}
